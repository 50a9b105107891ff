package validator

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"epconf/diagnostic"
	"epconf/model"
)

type Constraint int

const (
	FreeText Constraint = iota
	ClosedEnum
	NumericRange
	NumericUnbounded
)

// FieldSpec declares how one host field is checked and defaulted.
type FieldSpec struct {
	Name       string
	Constraint Constraint
	Required   bool
	Default    interface{} // string for FreeText/ClosedEnum, float64 otherwise
	Choices    []string    // ClosedEnum
	Min, Max   float64     // NumericRange, both inclusive
}

// Value is a normalized field value.
type Value struct {
	Text      string
	Number    float64
	Defaulted bool
}

type Values map[string]Value

func (vs Values) Text(name string) string {
	return vs[name].Text
}

func (vs Values) Number(name string) float64 {
	return vs[name].Number
}

// Defaulted returns the sorted names of the fields that fell back to their
// default.
func (vs Values) Defaulted() []string {
	var names []string
	for name, v := range vs {
		if v.Defaulted {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Validate checks every spec against raw and returns the normalized values.
// All fields are checked, so the diagnostics describe every rejected input.
// The values are only meaningful when the diagnostics are empty.
func Validate(raw model.RawFields, specs []FieldSpec) (Values, diagnostic.Diagnostics) {
	values := make(Values, len(specs))
	var diags diagnostic.Diagnostics
	for _, spec := range specs {
		v, d := Check(spec, raw[spec.Name])
		if d != nil {
			log.WithFields(log.Fields{
				"field":      spec.Name,
				"constraint": spec.Constraint.String(),
				"kind":       d.Kind,
			}).Debug("field rejected")
			diags.Add(*d)
			continue
		}
		values[spec.Name] = v
	}
	return values, diags
}

// Check validates a single raw value against spec. A nil raw value is unset.
func Check(spec FieldSpec, raw interface{}) (Value, *diagnostic.Diagnostic) {
	if IsUnset(raw) {
		if spec.Required {
			d := diagnostic.New(diagnostic.MissingRequiredField, spec.Name,
				"'%s' is required, please connect a value", spec.Name)
			return Value{}, &d
		}
		return defaultValue(spec), nil
	}

	switch spec.Constraint {
	case ClosedEnum:
		s, ok := raw.(string)
		if !ok {
			d := diagnostic.New(diagnostic.TypeMismatch, spec.Name,
				"invalid '%s' input %v, please select from %s", spec.Name, raw, quoteAll(spec.Choices))
			return Value{}, &d
		}
		for _, c := range spec.Choices {
			if s == c {
				return Value{Text: c}, nil
			}
		}
		d := diagnostic.New(diagnostic.InvalidChoice, spec.Name,
			"invalid '%s' input %q, please select from %s", spec.Name, s, quoteAll(spec.Choices))
		return Value{}, &d

	case NumericRange, NumericUnbounded:
		n, ok := ParseNumber(raw)
		if !ok {
			d := diagnostic.New(diagnostic.TypeMismatch, spec.Name,
				"invalid input %v for '%s', please input a valid number", raw, spec.Name)
			return Value{}, &d
		}
		if spec.Constraint == NumericRange && (n < spec.Min || n > spec.Max) {
			d := diagnostic.New(diagnostic.OutOfRange, spec.Name,
				"invalid input for '%s', the number should be between %s and %s, got %s",
				spec.Name, formatBound(spec.Min), formatBound(spec.Max), formatBound(n))
			return Value{}, &d
		}
		return Value{Number: n}, nil

	default:
		s, ok := raw.(string)
		if !ok {
			d := diagnostic.New(diagnostic.TypeMismatch, spec.Name,
				"invalid input %v for '%s', expected text", raw, spec.Name)
			return Value{}, &d
		}
		return Value{Text: s}, nil
	}
}

// ParseNumber accepts any Go numeric type, json.Number or a numeric string.
// NaN and infinities are rejected.
func ParseNumber(raw interface{}) (float64, bool) {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int8:
		n = float64(v)
	case int16:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint8:
		n = float64(v)
	case uint16:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// IsUnset treats nil and blank strings as a field left unconnected.
func IsUnset(raw interface{}) bool {
	if raw == nil {
		return true
	}
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		return true
	}
	return false
}

func defaultValue(spec FieldSpec) Value {
	switch d := spec.Default.(type) {
	case string:
		return Value{Text: d, Defaulted: true}
	case float64:
		return Value{Number: d, Defaulted: true}
	}
	return Value{Defaulted: true}
}

func quoteAll(choices []string) string {
	quoted := make([]string, len(choices))
	for i, c := range choices {
		quoted[i] = strconv.Quote(c)
	}
	return strings.Join(quoted, ", ")
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String names the constraint kind.
func (c Constraint) String() string {
	switch c {
	case ClosedEnum:
		return "closedEnum"
	case NumericRange:
		return "numericRange"
	case NumericUnbounded:
		return "numericUnbounded"
	}
	return "freeText"
}
