package model

import "epconf/diagnostic"

// Msg is exchanged with websocket hosts. Content is a JSON document whose shape depends on Type
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// RawFields maps a host field key to its raw value. A missing key or a nil
// value means the field was left unset.
type RawFields map[string]interface{}

// HeatBalanceSettings is the validated set of global heat-balance options.
type HeatBalanceSettings struct {
	SurfaceConvectionInside          string  // SurfaceConvectionAlgorithm:Inside
	SurfaceConvectionOutside         string  // SurfaceConvectionAlgorithm:Outside
	HeatBalanceAlgorithm             string  // HeatBalanceAlgorithm
	DifferenceScheme                 string  // Difference Scheme
	SpaceDiscretizationConstant      float64 // Space Discretization Constant
	RelaxationFactor                 float64 // Relaxation Factor
	InsideFaceSurfaceTempConvergence float64 // Inside Face Surface Temperature Convergence Criteria
}

// Pair is one row of a temperature-enthalpy table.
type Pair struct {
	Temperature float64 `json:"temperature" yaml:"temperature"` // C
	Enthalpy    float64 `json:"enthalpy" yaml:"enthalpy"`       // J/kg
}

// PhaseChangeMaterial is the validated MaterialProperty:PhaseChange record.
type PhaseChangeMaterial struct {
	Name        string  // upper-cased material name
	Coefficient float64 // W/(m-K2), conductivity change per degree from 20C
	Pairs       []Pair
}

// PairInput is one unvalidated temperature-enthalpy pair as supplied by a host.
type PairInput struct {
	Temperature interface{} `json:"temperature" yaml:"temperature"`
	Enthalpy    interface{} `json:"enthalpy" yaml:"enthalpy"`
}

// PhaseChangeInput carries the raw PCM inputs. Name is either a bare
// material name or a full multi-line material definition. The table is given
// either as Pairs or as the flat [temp1, enthalpy1, temp2, ...] Values; Pairs
// wins when both are set.
type PhaseChangeInput struct {
	Name        interface{}   `json:"name" yaml:"name"`
	Coefficient interface{}   `json:"coefficient" yaml:"coefficient"`
	Pairs       []PairInput   `json:"pairs" yaml:"pairs"`
	Values      []interface{} `json:"values,omitempty" yaml:"values,omitempty"`
}

// BuildReply is the payload returned to a host for one build request.
type BuildReply struct {
	Text        string                  `json:"text"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics,omitempty"`
	Error       string                  `json:"error,omitempty"` // the build could not be attempted
}

// MaterialInfo describes one registry entry for listings.
type MaterialInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}
