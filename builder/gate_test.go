package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionGate(t *testing.T) {
	companions := func(hb, lb string) VersionGate {
		return VersionGate{Companions: []Companion{
			{Name: "honeybee", Required: "0.0.56", Installed: hb},
			{Name: "ladybug", Required: "0.0.59", Installed: lb},
		}}
	}

	assert.NoError(t, companions("0.0.60", "0.0.59").Check())
	assert.NoError(t, companions("v0.0.56", "v0.1.0").Check())

	err := companions("0.0.55", "0.0.60").Check()
	assert.ErrorIs(t, err, ErrIncompatible)
	assert.Contains(t, err.Error(), "newer version of honeybee")

	err = companions("", "").Check()
	assert.ErrorIs(t, err, ErrIncompatible)
	assert.Contains(t, err.Error(), "honeybee and ladybug")

	err = companions("latest", "0.0.60").Check()
	assert.ErrorIs(t, err, ErrIncompatible)
	assert.Contains(t, err.Error(), "invalid version")
}

func TestOpenGate(t *testing.T) {
	assert.NoError(t, Open.Check())
	assert.NoError(t, VersionGate{}.Check())
}
