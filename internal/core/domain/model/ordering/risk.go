package ordering

import (
	"fmt"

	"frameshop/internal/pkg/errs"
)

// RiskLevel classifies how dangerous it would be to proceed with a proposed
// material order batch. Levels above RiskLow require a management override.
type RiskLevel int

const (
	// RiskUnknown represents an invalid or undefined risk level.
	RiskUnknown RiskLevel = iota

	// RiskLow means nothing in the recent ordering history objects to the batch.
	RiskLow

	// RiskMedium means a vendor's daily order volume cap is already reached.
	RiskMedium

	// RiskHigh means a recent order carries a near-identical material signature.
	RiskHigh

	// RiskCritical means an order in the batch already had materials ordered
	// inside the lookback window, or the check itself could not complete.
	RiskCritical
)

// getRiskLevelStrings returns a map of RiskLevel values to their string representations.
func getRiskLevelStrings() map[RiskLevel]string {
	return map[RiskLevel]string{
		RiskUnknown:  "UNKNOWN",
		RiskLow:      "LOW",
		RiskMedium:   "MEDIUM",
		RiskHigh:     "HIGH",
		RiskCritical: "CRITICAL",
	}
}

// Validate checks if the RiskLevel value is valid.
func (r RiskLevel) Validate() error {
	if r < RiskLow || r > RiskCritical {
		return errs.NewValueIsInvalidErrorWithCause("risk level is invalid", fmt.Errorf("%d is not a valid risk level", r))
	}
	return nil
}

// String returns the classification name, e.g. "CRITICAL".
func (r RiskLevel) String() string {
	if str, ok := getRiskLevelStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// RiskLevelFromString parses a classification name into a RiskLevel.
func RiskLevelFromString(name string) (RiskLevel, error) {
	for level, str := range getRiskLevelStrings() {
		if str == name && level != RiskUnknown {
			return level, nil
		}
	}
	return RiskUnknown, errs.NewValueIsInvalidErrorWithCause("risk level is invalid", fmt.Errorf("%q is not a valid risk level", name))
}
