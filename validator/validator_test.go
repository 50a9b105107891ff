package validator

import (
	"encoding/json"
	"math"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epconf/diagnostic"
	"epconf/model"
)

var specs = []FieldSpec{
	{Name: "mode_", Constraint: ClosedEnum, Choices: []string{"A", "B"}, Default: "B"},
	{Name: "factor_", Constraint: NumericRange, Min: 0.5, Max: 2, Default: 1.0},
	{Name: "scale_", Constraint: NumericUnbounded, Default: 3.0},
	{Name: "_label", Constraint: FreeText, Required: true},
}

func TestValidateDefaults(t *testing.T) {
	values, diags := Validate(model.RawFields{"_label": "x"}, specs)
	require.True(t, diags.Empty(), "%v", diags)
	assert.Equal(t, Value{Text: "B", Defaulted: true}, values["mode_"])
	assert.Equal(t, 1.0, values.Number("factor_"))
	assert.True(t, values["factor_"].Defaulted)
	assert.Equal(t, 3.0, values.Number("scale_"))
	assert.Equal(t, "x", values.Text("_label"))
	assert.False(t, values["_label"].Defaulted)
}

func TestValuesDefaulted(t *testing.T) {
	values, diags := Validate(model.RawFields{"_label": "x", "factor_": 0.75}, specs)
	require.True(t, diags.Empty(), "%v", diags)
	assert.Equal(t, []string{"mode_", "scale_"}, values.Defaulted())

	values, _ = Validate(model.RawFields{"_label": "x", "mode_": "A", "factor_": 1, "scale_": 2}, specs)
	assert.Empty(t, values.Defaulted())
}

func TestValidateLogsConstraint(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	level := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	defer log.SetLevel(level)

	_, diags := Validate(model.RawFields{"_label": "x", "factor_": 5}, specs)
	require.Len(t, diags, 1)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "field rejected", entry.Message)
	assert.Equal(t, "factor_", entry.Data["field"])
	assert.Equal(t, "numericRange", entry.Data["constraint"])
	assert.Equal(t, diagnostic.OutOfRange, entry.Data["kind"])
}

func TestValidateBlankIsUnset(t *testing.T) {
	values, diags := Validate(model.RawFields{"mode_": "  ", "_label": "x"}, specs)
	require.True(t, diags.Empty())
	assert.Equal(t, "B", values.Text("mode_"))
}

func TestValidateRequired(t *testing.T) {
	_, diags := Validate(model.RawFields{}, specs)
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostic.MissingRequiredField, diags[0].Kind)
	assert.Equal(t, "_label", diags[0].Field)
}

func TestCheckEnumIsCaseSensitive(t *testing.T) {
	_, d := Check(specs[0], "a")
	require.NotNil(t, d)
	assert.Equal(t, diagnostic.InvalidChoice, d.Kind)
	assert.Contains(t, d.Message, `"A", "B"`)

	v, d := Check(specs[0], "A")
	require.Nil(t, d)
	assert.Equal(t, "A", v.Text)
}

func TestCheckRangeInclusive(t *testing.T) {
	for _, n := range []interface{}{0.5, 2, "2.0", json.Number("1.25"), float32(0.75), int64(1)} {
		_, d := Check(specs[1], n)
		assert.Nil(t, d, "%v", n)
	}
	for _, n := range []interface{}{0.49, 2.01, -1} {
		_, d := Check(specs[1], n)
		require.NotNil(t, d, "%v", n)
		assert.Equal(t, diagnostic.OutOfRange, d.Kind)
	}
}

func TestCheckTypeMismatch(t *testing.T) {
	for _, raw := range []interface{}{"abc", true, []int{1}, math.NaN(), math.Inf(1)} {
		_, d := Check(specs[2], raw)
		require.NotNil(t, d, "%v", raw)
		assert.Equal(t, diagnostic.TypeMismatch, d.Kind)
	}
	_, d := Check(specs[3], 12)
	require.NotNil(t, d)
	assert.Equal(t, diagnostic.TypeMismatch, d.Kind)
}

func TestParseNumber(t *testing.T) {
	n, ok := ParseNumber(" 3.5 ")
	assert.True(t, ok)
	assert.Equal(t, 3.5, n)

	n, ok = ParseNumber(uint8(7))
	assert.True(t, ok)
	assert.Equal(t, 7.0, n)

	_, ok = ParseNumber(nil)
	assert.False(t, ok)
}
