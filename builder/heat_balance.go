package builder

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"epconf/diagnostic"
	"epconf/idf"
	"epconf/model"
	"epconf/validator"
)

const heatBalancePadding = 19

var heatBalanceSpecs = []validator.FieldSpec{
	{
		Name:       model.KeySurfConvInside,
		Constraint: validator.ClosedEnum,
		Choices:    []string{"Simple", "TARP", "CeilingDiffuser", "AdaptiveConvectionAlgorithm"},
		Default:    "TARP",
	},
	{
		Name:       model.KeySurfConvOutside,
		Constraint: validator.ClosedEnum,
		Choices:    []string{"SimpleCombined", "TARP", "MoWiTT", "DOE-2", "AdaptiveConvectionAlgorithm"},
		Default:    "DOE-2",
	},
	{
		// the only algorithm able to simulate phase change materials
		Name:       model.KeyHeatBalanceAlgo,
		Constraint: validator.ClosedEnum,
		Choices:    []string{"ConductionFiniteDifference"},
		Default:    "ConductionFiniteDifference",
	},
	{
		Name:       model.KeyDifferenceScheme,
		Constraint: validator.ClosedEnum,
		Choices:    []string{"CrankNicholsonSecondOrder", "FullyImplicitFirstOrder"},
		Default:    "FullyImplicitFirstOrder",
	},
	{
		Name:       model.KeyDiscretization,
		Constraint: validator.NumericUnbounded,
		Default:    3.0,
	},
	{
		Name:       model.KeyRelaxationFactor,
		Constraint: validator.NumericRange,
		Min:        0.01,
		Max:        1.0,
		Default:    1.0,
	},
	{
		Name:       model.KeyInsideFaceTempConv,
		Constraint: validator.NumericRange,
		Min:        1e-7,
		Max:        1e-2,
		Default:    0.002,
	},
}

// HeatBalanceFields returns the field declarations of the heat balance
// builder.
func HeatBalanceFields() []validator.FieldSpec {
	specs := make([]validator.FieldSpec, len(heatBalanceSpecs))
	copy(specs, heatBalanceSpecs)
	return specs
}

// ValidateHeatBalance checks raw and fills in defaults for unset fields.
func ValidateHeatBalance(raw model.RawFields) (model.HeatBalanceSettings, diagnostic.Diagnostics) {
	values, diags := validator.Validate(raw, heatBalanceSpecs)
	if !diags.Empty() {
		return model.HeatBalanceSettings{}, diags
	}
	if defaulted := values.Defaulted(); len(defaulted) > 0 {
		log.WithField("defaulted", defaulted).Debug("heat balance defaults applied")
	}
	return model.HeatBalanceSettings{
		SurfaceConvectionInside:          values.Text(model.KeySurfConvInside),
		SurfaceConvectionOutside:         values.Text(model.KeySurfConvOutside),
		HeatBalanceAlgorithm:             values.Text(model.KeyHeatBalanceAlgo),
		DifferenceScheme:                 values.Text(model.KeyDifferenceScheme),
		SpaceDiscretizationConstant:      values.Number(model.KeyDiscretization),
		RelaxationFactor:                 values.Number(model.KeyRelaxationFactor),
		InsideFaceSurfaceTempConvergence: values.Number(model.KeyInsideFaceTempConv),
	}, nil
}

// SerializeHeatBalance renders the surface convection, heat balance
// algorithm and finite difference settings records, in that order.
func SerializeHeatBalance(s model.HeatBalanceSettings) string {
	cfd := &idf.Record{
		Keyword: "HeatBalanceSettings:ConductionFiniteDifference",
		Padding: heatBalancePadding,
	}
	cfd.Add(s.DifferenceScheme, "Difference Scheme").
		AddNumber(s.SpaceDiscretizationConstant, "Space Discretization Constant").
		AddNumber(s.RelaxationFactor, "Relaxation Factor").
		AddNumber(s.InsideFaceSurfaceTempConvergence, "Inside Face Surface Temperature Convergence Criteria")

	return idf.Render(
		idf.NewRecord("SurfaceConvectionAlgorithm:Inside").Add(s.SurfaceConvectionInside, ""),
		idf.NewRecord("SurfaceConvectionAlgorithm:Outside").Add(s.SurfaceConvectionOutside, ""),
		idf.NewRecord("HeatBalanceAlgorithm").Add(s.HeatBalanceAlgorithm, ""),
		cfd,
	)
}

// HeatBalance validates raw and renders the heat balance records. Invalid
// inputs are reported in the result; the error is only set when the gate
// refuses the build.
func (b *Builder) HeatBalance(raw model.RawFields) (Result, error) {
	if err := b.gate.Check(); err != nil {
		return Result{}, fmt.Errorf("heat balance settings: %w", err)
	}

	settings, diags := ValidateHeatBalance(raw)
	if !diags.Empty() {
		log.WithFields(log.Fields{
			"record":      "HeatBalanceSettings",
			"diagnostics": len(diags),
			"reasons":     diags.Messages(),
		}).Warn("build rejected")
		return rejected(diags), nil
	}

	log.WithFields(log.Fields{
		"record":     "HeatBalanceSettings",
		"inside":     settings.SurfaceConvectionInside,
		"outside":    settings.SurfaceConvectionOutside,
		"scheme":     settings.DifferenceScheme,
		"relaxation": settings.RelaxationFactor,
	}).Debug("build finished")
	return Result{Text: SerializeHeatBalance(settings)}, nil
}
