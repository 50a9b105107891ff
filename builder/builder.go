// Package builder validates host inputs and turns them into EnergyPlus
// records. Builds are synchronous; the only shared state is the injected
// material registry.
package builder

import (
	"epconf/diagnostic"
	"epconf/registry"
)

// Result is the outcome of one build. Text is empty whenever Diagnostics is
// not.
type Result struct {
	Text        string
	Diagnostics diagnostic.Diagnostics
}

func (r Result) OK() bool {
	return r.Diagnostics.Empty()
}

type Builder struct {
	gate     Gate
	registry registry.Registry
}

type Option func(*Builder)

// WithGate installs the compatibility gate checked before every build.
func WithGate(g Gate) Option {
	return func(b *Builder) {
		b.gate = g
	}
}

// New returns a Builder resolving materials against reg. A nil registry is
// replaced by an empty store.
func New(reg registry.Registry, opts ...Option) *Builder {
	if reg == nil {
		reg = registry.NewStore()
	}
	b := &Builder{
		gate:     Open,
		registry: reg,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) Registry() registry.Registry {
	return b.registry
}

func rejected(diags diagnostic.Diagnostics) Result {
	return Result{Diagnostics: diags}
}
