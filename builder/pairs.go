package builder

import (
	"errors"
	"fmt"

	"epconf/diagnostic"
	"epconf/model"
	"epconf/validator"
)

// ErrTooManyPairs is a structural limit of MaterialProperty:PhaseChange, not
// a problem with any single input.
var ErrTooManyPairs = errors.New("too many temperature-enthalpy pairs")

// PairsFromSequence converts the flat host sequence
// [temp1, enthalpy1, temp2, enthalpy2, ...] into typed pairs.
func PairsFromSequence(values []interface{}) ([]model.PairInput, *diagnostic.Diagnostic) {
	if len(values) > model.MaxPhaseChangeFields-2 {
		d := tooManyPairs(len(values)/2 + len(values)%2)
		return nil, &d
	}
	if len(values)%2 != 0 {
		n := len(values)/2 + 1
		d := diagnostic.New(diagnostic.UnpairedField, model.TempKey(n),
			"each temperature value must have its corresponding enthalpy value, '%s' has no '%s'",
			model.TempKey(n), model.EnthalpyKey(n))
		return nil, &d
	}

	pairs := make([]model.PairInput, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		pairs = append(pairs, model.PairInput{Temperature: values[i], Enthalpy: values[i+1]})
	}
	return pairs, nil
}

// CheckPairs validates the temperature-enthalpy table. Temperatures may not
// fall below absolute zero and may not decrease from one pair to the next.
// The returned error is only set for ErrTooManyPairs.
func CheckPairs(inputs []model.PairInput) ([]model.Pair, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics
	if len(inputs) > model.MaxPairs {
		diags.Add(tooManyPairs(len(inputs)))
		return nil, diags, fmt.Errorf("%w: got %d, the limit is %d", ErrTooManyPairs, len(inputs), model.MaxPairs)
	}
	if len(inputs) < model.MinPairs {
		diags.Addf(diagnostic.MissingRequiredField, model.TempKey(len(inputs)+1),
			"at least %d temperature-enthalpy pairs are required, got %d", model.MinPairs, len(inputs))
	}

	pairs := make([]model.Pair, len(inputs))
	prevOK := false
	for i, in := range inputs {
		tKey, hKey := model.TempKey(i+1), model.EnthalpyKey(i+1)

		tUnset, hUnset := validator.IsUnset(in.Temperature), validator.IsUnset(in.Enthalpy)
		switch {
		case tUnset && hUnset:
			diags.Addf(diagnostic.MissingRequiredField, tKey,
				"'%s' and '%s' are required, please connect values", tKey, hKey)
			prevOK = false
			continue
		case tUnset:
			diags.Addf(diagnostic.UnpairedField, tKey,
				"each enthalpy value must have its corresponding temperature value, '%s' has no '%s'", hKey, tKey)
		case hUnset:
			diags.Addf(diagnostic.UnpairedField, hKey,
				"each temperature value must have its corresponding enthalpy value, '%s' has no '%s'", tKey, hKey)
		}

		if !hUnset {
			h, ok := validator.ParseNumber(in.Enthalpy)
			if !ok {
				diags.Addf(diagnostic.TypeMismatch, hKey,
					"invalid input %v for '%s', please input a valid number", in.Enthalpy, hKey)
			}
			pairs[i].Enthalpy = h
		}

		if tUnset {
			prevOK = false
			continue
		}
		t, ok := validator.ParseNumber(in.Temperature)
		if !ok {
			diags.Addf(diagnostic.TypeMismatch, tKey,
				"invalid input %v for '%s', please input a valid number", in.Temperature, tKey)
			prevOK = false
			continue
		}
		pairs[i].Temperature = t

		if t < model.AbsoluteZero {
			diags.Addf(diagnostic.BelowAbsoluteZero, tKey,
				"the value %v for '%s' can't be lower than absolute zero (%v C)", t, tKey, model.AbsoluteZero)
		}
		if i > 0 && prevOK && t < pairs[i-1].Temperature {
			prevKey := model.TempKey(i)
			diags.Add(diagnostic.Diagnostic{
				Kind:     diagnostic.NonMonotonicTemperature,
				Field:    tKey,
				Previous: prevKey,
				Message: fmt.Sprintf("the temperature for '%s' can't be lower than the temperature for '%s'",
					tKey, prevKey),
			})
		}
		prevOK = true
	}
	return pairs, diags, nil
}

func tooManyPairs(n int) diagnostic.Diagnostic {
	return diagnostic.New(diagnostic.TooManyPairs, "",
		"the maximum number of temperature-enthalpy pairs in EnergyPlus is %d, please limit the pairs to %d (got %d)",
		model.MaxPairs, model.MaxPairs, n)
}
