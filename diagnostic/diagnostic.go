// Package diagnostic holds the user-facing problems reported by the builders.
// A diagnostic is the only feedback a canvas host shows, so every message
// names the offending field and, where it applies, the legal values.
package diagnostic

import (
	"fmt"
	"strings"
)

type Kind string

const (
	InvalidChoice               Kind = "InvalidChoice"
	OutOfRange                  Kind = "OutOfRange"
	TypeMismatch                Kind = "TypeMismatch"
	UnpairedField               Kind = "UnpairedField"
	TooManyPairs                Kind = "TooManyPairs"
	BelowAbsoluteZero           Kind = "BelowAbsoluteZero"
	NonMonotonicTemperature     Kind = "NonMonotonicTemperature"
	UnknownMaterial             Kind = "UnknownMaterial"
	UnsupportedMaterialCategory Kind = "UnsupportedMaterialCategory"
	MissingRequiredField        Kind = "MissingRequiredField"
)

// Diagnostic describes why one input was rejected.
type Diagnostic struct {
	Kind    Kind   `json:"kind"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`

	// Previous is set for NonMonotonicTemperature and names the earlier field
	// the current one was compared against.
	Previous string `json:"previous,omitempty"`
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	if d.Field == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s (%s): %s", d.Kind, d.Field, d.Message)
}

func New(kind Kind, field, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Diagnostics accumulates problems for one record.
type Diagnostics []Diagnostic

// Add appends d.
func (ds *Diagnostics) Add(d Diagnostic) {
	*ds = append(*ds, d)
}

// Addf builds and appends a diagnostic.
func (ds *Diagnostics) Addf(kind Kind, field, format string, args ...interface{}) {
	ds.Add(New(kind, field, format, args...))
}

// Merge appends every diagnostic of other.
func (ds *Diagnostics) Merge(other Diagnostics) {
	*ds = append(*ds, other...)
}

func (ds Diagnostics) Empty() bool {
	return len(ds) == 0
}

// Has reports whether a diagnostic of the given kind was recorded.
func (ds Diagnostics) Has(kind Kind) bool {
	return ds.Find(kind) != nil
}

// Find returns the first diagnostic of the given kind, or nil.
func (ds Diagnostics) Find(kind Kind) *Diagnostic {
	for i := range ds {
		if ds[i].Kind == kind {
			return &ds[i]
		}
	}
	return nil
}

// Messages returns the bare messages in order, the form a host shows as
// runtime warnings.
func (ds Diagnostics) Messages() []string {
	msgs := make([]string, 0, len(ds))
	for _, d := range ds {
		msgs = append(msgs, d.Message)
	}
	return msgs
}

// Err returns nil when there are no diagnostics and an error listing all of
// them otherwise.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	return &Error{Diagnostics: ds}
}

// Error wraps a non-empty Diagnostics as a single error value.
type Error struct {
	Diagnostics Diagnostics
}

func (e *Error) Error() string {
	if len(e.Diagnostics) == 1 {
		return e.Diagnostics[0].Error()
	}
	parts := make([]string, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		parts = append(parts, d.Error())
	}
	return fmt.Sprintf("%d problems: %s", len(e.Diagnostics), strings.Join(parts, "; "))
}
