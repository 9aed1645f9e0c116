package model

import (
	"fmt"
	"strings"
)

// Form is the raw single-pass submission. The categorical fields hold the
// selected option as "N - label" (a bare "N" also works).
type Form struct {
	ServiceName             string  `yaml:"service_name" json:"service_name"`
	Description             string  `yaml:"description" json:"description"`
	BusinessCriticality     string  `yaml:"business_criticality" json:"business_criticality"`
	DataClassification      string  `yaml:"data_classification" json:"data_classification"`
	Reachability            float64 `yaml:"reachability" json:"reachability"`
	OperationalAvailability float64 `yaml:"operational_availability" json:"operational_availability"`
	PrivilegeThreshold      float64 `yaml:"privilege_threshold" json:"privilege_threshold"`
	InteractionDependency   float64 `yaml:"interaction_dependency" json:"interaction_dependency"`
}

// DefaultForm returns a form with the initial selections and slider positions.
func DefaultForm() Form {
	return Form{
		BusinessCriticality:     CriticalityOptions[0].String(),
		DataClassification:      ClassificationOptions[0].String(),
		Reachability:            DefaultReachability,
		OperationalAvailability: DefaultOperationalAvailability,
		PrivilegeThreshold:      DefaultPrivilegeThreshold,
		InteractionDependency:   DefaultInteractionDependency,
	}
}

// Input parses the categorical selections and returns the typed input.
// Ranges are not checked here; see Validate.
func (f Form) Input() (ServiceProfileInput, error) {
	bc, err := ParseOption(f.BusinessCriticality)
	if err != nil {
		return ServiceProfileInput{}, fmt.Errorf("business_criticality: %w", err)
	}
	dc, err := ParseOption(f.DataClassification)
	if err != nil {
		return ServiceProfileInput{}, fmt.Errorf("data_classification: %w", err)
	}
	return ServiceProfileInput{
		ServiceName:             strings.TrimSpace(f.ServiceName),
		Description:             strings.TrimSpace(f.Description),
		BusinessCriticality:     bc,
		DataClassification:      dc,
		Reachability:            f.Reachability,
		OperationalAvailability: f.OperationalAvailability,
		PrivilegeThreshold:      f.PrivilegeThreshold,
		InteractionDependency:   f.InteractionDependency,
	}, nil
}
