package model

import "github.com/ppiankov/svcprofile/internal/scoring"

// Input ranges.
const (
	MinRating       = 1
	MaxRating       = 5
	MaxReachability = 2.0
	MaxFactor       = 1.0
)

// Form defaults, matching the collector's initial slider positions.
const (
	DefaultReachability            = 1.0
	DefaultOperationalAvailability = 0.5
	DefaultPrivilegeThreshold      = 0.5
	DefaultInteractionDependency   = 0.5
	SliderStep                     = 0.1
)

// ServiceProfileInput describes one service to be profiled.
type ServiceProfileInput struct {
	ServiceName             string  `yaml:"service_name" json:"service_name"`
	Description             string  `yaml:"description" json:"description"`
	BusinessCriticality     int     `yaml:"business_criticality" json:"business_criticality"`
	DataClassification      int     `yaml:"data_classification" json:"data_classification"`
	Reachability            float64 `yaml:"reachability" json:"reachability"`
	OperationalAvailability float64 `yaml:"operational_availability" json:"operational_availability"`
	PrivilegeThreshold      float64 `yaml:"privilege_threshold" json:"privilege_threshold"`
	InteractionDependency   float64 `yaml:"interaction_dependency" json:"interaction_dependency"`
}

// DefaultInput returns an input with the form's initial values and the
// first option of each categorical selection.
func DefaultInput() ServiceProfileInput {
	return ServiceProfileInput{
		BusinessCriticality:     MinRating,
		DataClassification:      MinRating,
		Reachability:            DefaultReachability,
		OperationalAvailability: DefaultOperationalAvailability,
		PrivilegeThreshold:      DefaultPrivilegeThreshold,
		InteractionDependency:   DefaultInteractionDependency,
	}
}

// Factors returns the numeric part of the input for scoring.
func (in ServiceProfileInput) Factors() scoring.Factors {
	return scoring.Factors{
		Reachability:            in.Reachability,
		OperationalAvailability: in.OperationalAvailability,
		PrivilegeThreshold:      in.PrivilegeThreshold,
		InteractionDependency:   in.InteractionDependency,
		Criticality:             in.BusinessCriticality,
		Classification:          in.DataClassification,
	}
}

// Score validates the input and runs the scoring pipeline.
func Score(in ServiceProfileInput) (scoring.Result, error) {
	if err := Validate(in); err != nil {
		return scoring.Result{}, err
	}
	return scoring.Compute(in.Factors()), nil
}
