package registry

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gypsum = `Material,
  Gypsum Board,            !- Name
  MediumSmooth,            !- Roughness
  0.0127,                  !- Thickness {m}
  0.16,                    !- Conductivity {W/m-K}
  800,                     !- Density {kg/m3}
  1090;                    !- Specific Heat {J/kg-K}`

const clearGlass = `WindowMaterial:Glazing,
  Clear 3mm,               !- Name
  SpectralAverage,         !- Optical Data Type
  ,                        !- Window Glass Spectral Data Set Name
  0.003;                   !- Thickness {m}`

const library = `! sample library
Version,9.6;

Material,
  Gypsum Board,            !- Name
  MediumSmooth,            !- Roughness
  0.0127,                  !- Thickness {m}
  0.16,                    !- Conductivity {W/m-K}
  800,                     !- Density {kg/m3}
  1090;                    !- Specific Heat {J/kg-K}

Material:NoMass, R13LAYER, Rough, 2.29, 0.9, 0.75, 0.75;

WindowMaterial:Glazing,
  Clear 3mm,               !- Name; semicolon in a comment
  SpectralAverage,         !- Optical Data Type
  ,                        !- Window Glass Spectral Data Set Name
  0.003;                   !- Thickness {m}

Construction,
  Wall,                    !- Name
  Gypsum Board;            !- Outside Layer
`

func TestParseDefinition(t *testing.T) {
	m, err := ParseDefinition(gypsum)
	require.NoError(t, err)
	assert.Equal(t, "GYPSUM BOARD", m.Name)
	assert.Equal(t, "Material", m.Keyword)
	assert.Equal(t, Opaque, m.Category)
	assert.Equal(t, gypsum, m.Definition)

	m, err = ParseDefinition(clearGlass)
	require.NoError(t, err)
	assert.Equal(t, "CLEAR 3MM", m.Name)
	assert.Equal(t, Window, m.Category)
}

func TestParseDefinitionErrors(t *testing.T) {
	_, err := ParseDefinition("Material,\n  Gypsum Board")
	assert.ErrorIs(t, err, ErrNotTerminated)

	_, err = ParseDefinition("Construction,\n  Wall,\n  Gypsum Board;")
	assert.ErrorIs(t, err, ErrNotMaterial)

	_, err = ParseDefinition("Material,\n  ,\n  Rough;")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestIsDefinition(t *testing.T) {
	assert.False(t, IsDefinition("Gypsum Board"))
	assert.False(t, IsDefinition("  Gypsum Board\n"))
	assert.True(t, IsDefinition(gypsum))
}

func TestStoreRegisterOrOverwrite(t *testing.T) {
	s := NewStore()
	m, err := s.RegisterOrOverwrite(gypsum)
	require.NoError(t, err)
	assert.Equal(t, "GYPSUM BOARD", m.Name)

	got, ok := s.Lookup("gypsum board")
	require.True(t, ok)
	assert.Equal(t, m, got)

	thicker := strings.Replace(gypsum, "0.0127", "0.0159", 1)
	_, err = s.RegisterOrOverwrite(thicker)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())

	got, _ = s.Lookup("GYPSUM BOARD")
	assert.Contains(t, got.Definition, "0.0159")

	_, ok = s.Lookup("concrete")
	assert.False(t, ok)
}

func TestStoreLoad(t *testing.T) {
	s := NewStore()
	n, err := s.Load(strings.NewReader(library))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "CLEAR 3MM", list[0].Name)
	assert.Equal(t, Window, list[0].Category)
	assert.Equal(t, "GYPSUM BOARD", list[1].Name)
	assert.Equal(t, "R13LAYER", list[2].Name)
	assert.Equal(t, "Material:NoMass", list[2].Keyword)

	_, ok := s.Lookup("wall")
	assert.False(t, ok, "constructions are not materials")
}

func TestSplitObjects(t *testing.T) {
	objs, err := SplitObjects(strings.NewReader("A,1; B,2; !c\nC,\n 3;\n"))
	require.NoError(t, err)
	require.Len(t, objs, 3)
	assert.Equal(t, "A,1;", objs[0])
	assert.Equal(t, "B,2; !c", objs[1])
	assert.Equal(t, "C,\n 3;", objs[2])
}

func TestLockNameSerializesSameName(t *testing.T) {
	s := NewStore()
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.LockName("gypsum board")
			defer unlock()
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()
			_, _ = s.RegisterOrOverwrite(gypsum)
			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
}

type plainRegistry map[string]Material

func (p plainRegistry) Lookup(name string) (Material, bool) {
	m, ok := p[Key(name)]
	return m, ok
}

func (p plainRegistry) RegisterOrOverwrite(definition string) (Material, error) {
	m, err := ParseDefinition(definition)
	if err != nil {
		return Material{}, err
	}
	p[m.Name] = m
	return m, nil
}

func TestRegister(t *testing.T) {
	s := NewStore()
	m, err := Register(s, clearGlass)
	require.NoError(t, err)
	assert.Equal(t, Window, m.Category)
	_, ok := s.Lookup("clear 3mm")
	assert.True(t, ok)

	// the name lock is released once the write is done
	unlock := s.LockName("clear 3mm")
	unlock()

	p := plainRegistry{}
	_, err = Register(p, gypsum)
	require.NoError(t, err)
	assert.Len(t, p, 1)

	_, err = Register(s, "Construction,\n  Wall;")
	assert.ErrorIs(t, err, ErrNotMaterial)
}
