package model

import (
	"errors"
	"fmt"
	"math"
)

// RangeError reports a numeric field outside its declared closed range.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %v is outside [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

// Validate checks every numeric field against its range. Values are never
// clamped; all violations are joined into one error.
func Validate(in ServiceProfileInput) error {
	var errs []error
	checkRating := func(field string, v int) {
		if v < MinRating || v > MaxRating {
			errs = append(errs, &RangeError{Field: field, Value: float64(v), Min: MinRating, Max: MaxRating})
		}
	}
	checkFloat := func(field string, v, max float64) {
		if math.IsNaN(v) || v < 0 || v > max {
			errs = append(errs, &RangeError{Field: field, Value: v, Min: 0, Max: max})
		}
	}

	checkRating("business_criticality", in.BusinessCriticality)
	checkRating("data_classification", in.DataClassification)
	checkFloat("reachability", in.Reachability, MaxReachability)
	checkFloat("operational_availability", in.OperationalAvailability, MaxFactor)
	checkFloat("privilege_threshold", in.PrivilegeThreshold, MaxFactor)
	checkFloat("interaction_dependency", in.InteractionDependency, MaxFactor)

	return errors.Join(errs...)
}
