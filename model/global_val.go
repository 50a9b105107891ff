package model

import "strconv"

// host field keys of the heat balance builder
const (
	KeySurfConvInside     = "surfConvAlgoInside_"
	KeySurfConvOutside    = "surfConvAlgoOutside_"
	KeyHeatBalanceAlgo    = "heatBalanceAlgorithm_"
	KeyDifferenceScheme   = "differenceScheme_"
	KeyDiscretization     = "discretizationConst_"
	KeyRelaxationFactor   = "relaxationFactor_"
	KeyInsideFaceTempConv = "insideFaceSurfTempConv_"
)

// host field keys of the phase change builder
const (
	KeyName        = "_name"
	KeyCoefficient = "coeff_"
)

const (
	MinPairs     = 3
	MaxPairs     = 16
	AbsoluteZero = -273.15 // C

	// _name + coeff_ + temperature/enthalpy fields
	MaxPhaseChangeFields = 2 + 2*MaxPairs
)

// TempKey returns the host key of the i-th temperature, counting from 1.
func TempKey(i int) string {
	return "_temp" + strconv.Itoa(i)
}

// EnthalpyKey returns the host key of the i-th enthalpy, counting from 1.
func EnthalpyKey(i int) string {
	return "_enthalpy" + strconv.Itoa(i)
}
