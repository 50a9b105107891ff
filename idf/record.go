// Package idf renders objects in the EnergyPlus input data file grammar:
// a keyword, comma separated positional fields and a terminating semicolon,
// each field optionally followed by a "!-" comment naming it.
package idf

import (
	"math"
	"strconv"
	"strings"
)

const DefaultPadding = 4

type Field struct {
	Value   string
	Comment string // rendered after "!- ", carries no meaning for the engine
}

type Record struct {
	Keyword string
	Fields  []Field
	Padding int // spaces between a field's terminator and its comment
}

// NewRecord returns a record with the default comment padding.
func NewRecord(keyword string) *Record {
	return &Record{Keyword: keyword, Padding: DefaultPadding}
}

// Add appends a field and returns the record for chaining.
func (r *Record) Add(value, comment string) *Record {
	r.Fields = append(r.Fields, Field{Value: value, Comment: comment})
	return r
}

// AddNumber appends a numeric field.
func (r *Record) AddNumber(value float64, comment string) *Record {
	return r.Add(FormatNumber(value), comment)
}

// String renders the record. A record holding a single uncommented field is
// written on one line ("Keyword,Value;"), anything else puts the keyword and
// every field on lines of their own.
func (r Record) String() string {
	var b strings.Builder
	if len(r.Fields) == 1 && r.Fields[0].Comment == "" {
		b.WriteString(r.Keyword)
		b.WriteByte(',')
		b.WriteString(r.Fields[0].Value)
		b.WriteString(";\n")
		return b.String()
	}

	b.WriteString(r.Keyword)
	if len(r.Fields) == 0 {
		b.WriteString(";\n")
		return b.String()
	}
	b.WriteString(",\n")
	pad := strings.Repeat(" ", r.Padding)
	for i, f := range r.Fields {
		b.WriteString(f.Value)
		if i == len(r.Fields)-1 {
			b.WriteByte(';')
		} else {
			b.WriteByte(',')
		}
		if f.Comment != "" {
			b.WriteString(pad)
			b.WriteString("!- ")
			b.WriteString(f.Comment)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render joins records into one text block, separated by blank lines.
func Render(records ...*Record) string {
	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, "\n")
}

// FormatNumber writes f the way the engine's legacy front ends always did:
// whole numbers keep a trailing ".0", plain decimals between 1e-4 and 1e16,
// exponent form outside that range ("1e-07").
func FormatNumber(f float64) string {
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	abs := math.Abs(f)
	if abs >= 1e-4 && abs < 1e16 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(f, 'e', -1, 64)
}
