// Package registry is the named material store the phase change builder
// resolves names against. Names are case-insensitive; every key is stored
// upper-cased.
package registry

import (
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

type Category string

const (
	Opaque Category = "opaque"
	Window Category = "window"
)

var (
	ErrNotMaterial   = errors.New("not a material definition")
	ErrMalformed     = errors.New("malformed definition")
	ErrNotTerminated = errors.New("definition is not terminated by ';'")
)

type Material struct {
	Name       string // upper-cased
	Keyword    string
	Category   Category
	Definition string
}

// Registry is the store consumed by the builders.
type Registry interface {
	Lookup(name string) (Material, bool)
	RegisterOrOverwrite(definition string) (Material, error)
}

// NameLocker is implemented by registries that can serialize work on one
// material name, so a register-then-lookup sequence is not interleaved with
// another writer of the same name.
type NameLocker interface {
	LockName(name string) (unlock func())
}

// Store is an in-memory Registry safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	materials map[string]Material

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		materials: make(map[string]Material),
		locks:     make(map[string]*sync.Mutex),
	}
}

func Key(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func (s *Store) Lookup(name string) (Material, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.materials[Key(name)]
	return m, ok
}

// RegisterOrOverwrite parses definition and stores it under its name,
// replacing any earlier material of that name.
func (s *Store) RegisterOrOverwrite(definition string) (Material, error) {
	m, err := ParseDefinition(definition)
	if err != nil {
		return Material{}, err
	}
	s.put(m)
	return m, nil
}

// Register stores definition in reg. When reg is a NameLocker the write is
// done under the lock of the material name.
func Register(reg Registry, definition string) (Material, error) {
	m, err := ParseDefinition(definition)
	if err != nil {
		return Material{}, err
	}
	if locker, ok := reg.(NameLocker); ok {
		unlock := locker.LockName(m.Name)
		defer unlock()
	}
	return reg.RegisterOrOverwrite(definition)
}

func (s *Store) put(m Material) {
	s.mu.Lock()
	_, existed := s.materials[m.Name]
	s.materials[m.Name] = m
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"material":    m.Name,
		"category":    m.Category,
		"overwritten": existed,
	}).Debug("material registered")
}

func (s *Store) LockName(name string) func() {
	key := Key(name)
	s.locksMu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	s.locksMu.Unlock()

	l.Lock()
	return l.Unlock
}

// List returns every material sorted by name.
func (s *Store) List() []Material {
	s.mu.RLock()
	list := make([]Material, 0, len(s.materials))
	for _, m := range s.materials {
		list = append(list, m)
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.materials)
}

// Load registers every material object found in an IDF document and skips
// all other objects. It returns the number of materials registered.
func (s *Store) Load(r io.Reader) (int, error) {
	objects, err := SplitObjects(r)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, obj := range objects {
		m, err := ParseDefinition(obj)
		if errors.Is(err, ErrNotMaterial) {
			continue
		}
		if err != nil {
			return n, err
		}
		s.put(m)
		n++
	}
	return n, nil
}

// Lister is implemented by registries that can enumerate their materials.
type Lister interface {
	List() []Material
}
