package builder

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"epconf/diagnostic"
	"epconf/idf"
	"epconf/model"
	"epconf/validator"
)

var phaseChangeSpecs = []validator.FieldSpec{
	{
		Name:       model.KeyName,
		Constraint: validator.FreeText,
		Required:   true,
	},
	{
		Name:       model.KeyCoefficient,
		Constraint: validator.NumericUnbounded,
		Default:    0.0,
	},
}

// PhaseChange validates in, resolves the referenced material and renders one
// MaterialProperty:PhaseChange record.
//
// The material is only resolved, and a supplied definition only registered,
// once every other input is valid. An ErrTooManyPairs or ErrIncompatible
// error means the build could not be attempted at all.
func (b *Builder) PhaseChange(in model.PhaseChangeInput) (Result, error) {
	if err := b.gate.Check(); err != nil {
		return Result{}, fmt.Errorf("phase change material: %w", err)
	}

	values, diags := validator.Validate(model.RawFields{
		model.KeyName:        in.Name,
		model.KeyCoefficient: in.Coefficient,
	}, phaseChangeSpecs)

	inputs := in.Pairs
	if len(inputs) == 0 && len(in.Values) > 0 {
		var d *diagnostic.Diagnostic
		inputs, d = PairsFromSequence(in.Values)
		if d != nil {
			diags.Add(*d)
			if d.Kind == diagnostic.TooManyPairs {
				log.WithField("values", len(in.Values)).Error("phase change table exceeds the record limit")
				return rejected(diags), fmt.Errorf("phase change material: %w", ErrTooManyPairs)
			}
			return b.reject(diags), nil
		}
	}

	pairs, pairDiags, err := CheckPairs(inputs)
	diags.Merge(pairDiags)
	if err != nil {
		log.WithField("pairs", len(inputs)).Error("phase change table exceeds the record limit")
		return rejected(diags), fmt.Errorf("phase change material: %w", err)
	}
	if !diags.Empty() {
		return b.reject(diags), nil
	}

	name, d := ResolveMaterial(values.Text(model.KeyName), b.registry)
	if d != nil {
		return b.reject(diagnostic.Diagnostics{*d}), nil
	}

	m := model.PhaseChangeMaterial{
		Name:        name,
		Coefficient: values.Number(model.KeyCoefficient),
		Pairs:       pairs,
	}
	log.WithFields(log.Fields{
		"record":   "MaterialProperty:PhaseChange",
		"material": m.Name,
		"pairs":    len(m.Pairs),
	}).Debug("build finished")
	return Result{Text: SerializePhaseChange(m)}, nil
}

func (b *Builder) reject(diags diagnostic.Diagnostics) Result {
	log.WithFields(log.Fields{
		"record":      "MaterialProperty:PhaseChange",
		"diagnostics": len(diags),
		"reasons":     diags.Messages(),
	}).Warn("build rejected")
	return rejected(diags)
}

// SerializePhaseChange renders m with its pairs in the given order.
func SerializePhaseChange(m model.PhaseChangeMaterial) string {
	r := idf.NewRecord("MaterialProperty:PhaseChange").
		Add(m.Name, "Name").
		AddNumber(m.Coefficient, "Temperature Coefficient for Thermal Conductivity {W/m-K2}")
	for i, p := range m.Pairs {
		n := strconv.Itoa(i + 1)
		r.AddNumber(p.Temperature, "Temperature "+n+" {C}").
			AddNumber(p.Enthalpy, "Enthalpy "+n+" {J/kg}")
	}
	return idf.Render(r)
}
