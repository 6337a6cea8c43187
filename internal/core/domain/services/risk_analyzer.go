package services

import (
	"frameshop/internal/core/domain/model/ordering"
)

// SimilarityThreshold is the Jaccard similarity above which two material
// signatures are considered near-identical.
const SimilarityThreshold = 0.8

// DefaultMaxDailyVendorOrders caps how many orders may reference the same
// vendor inside the lookback window before the batch is flagged.
const DefaultMaxDailyVendorOrders = 5

// RiskAnalyzer is a domain service that classifies a proposed batch of
// material orders against the recent ordering history.
//
// The classification escalates, highest verdict wins:
//   - CRITICAL: an order in the batch already had materials ordered inside the window
//   - HIGH: a recent order carries a near-identical material signature
//   - MEDIUM: a vendor in the batch already reached its daily order volume cap
//   - LOW: nothing in the history objects
//
// The analyzer is pure: callers load the recent audit records and pass them
// in, so classification is deterministic and trivially testable.
type RiskAnalyzer struct {
	maxDailyVendorOrders int
}

// NewRiskAnalyzer creates a RiskAnalyzer with the given vendor volume cap.
// A non-positive cap falls back to DefaultMaxDailyVendorOrders.
func NewRiskAnalyzer(maxDailyVendorOrders int) RiskAnalyzer {
	if maxDailyVendorOrders <= 0 {
		maxDailyVendorOrders = DefaultMaxDailyVendorOrders
	}
	return RiskAnalyzer{maxDailyVendorOrders: maxDailyVendorOrders}
}

// Classify analyzes the candidates against the audit records from the
// lookback window and returns the batch verdict.
func (r RiskAnalyzer) Classify(candidates []ordering.Candidate, recent []ordering.MaterialOrderAudit) ordering.DuplicateOrderCheck {
	if duplicates := r.findExactDuplicates(candidates, recent); len(duplicates) > 0 {
		return ordering.NewDuplicateOrderCheck(ordering.RiskCritical, true, duplicates)
	}

	if similar := r.findSimilarOrders(candidates, recent); len(similar) > 0 {
		return ordering.NewDuplicateOrderCheck(ordering.RiskHigh, false, similar)
	}

	if r.vendorCapReached(candidates, recent) {
		return ordering.NewDuplicateOrderCheck(ordering.RiskMedium, false, nil)
	}

	return ordering.NewDuplicateOrderCheck(ordering.RiskLow, false, nil)
}

// findExactDuplicates returns the audit records for orders in the batch that
// already had materials ordered inside the window.
func (r RiskAnalyzer) findExactDuplicates(candidates []ordering.Candidate, recent []ordering.MaterialOrderAudit) []ordering.MaterialOrderAudit {
	var duplicates []ordering.MaterialOrderAudit
	for _, candidate := range candidates {
		for _, audit := range recent {
			if audit.OrderID().IsEqual(candidate.OrderID) {
				duplicates = append(duplicates, audit)
			}
		}
	}
	return duplicates
}

// findSimilarOrders returns the audit records whose material signatures are
// near-identical to a candidate's, excluding the candidate's own order.
func (r RiskAnalyzer) findSimilarOrders(candidates []ordering.Candidate, recent []ordering.MaterialOrderAudit) []ordering.MaterialOrderAudit {
	var similar []ordering.MaterialOrderAudit
	for _, candidate := range candidates {
		if candidate.Signature.IsEmpty() {
			continue
		}
		for _, audit := range recent {
			if audit.OrderID().IsEqual(candidate.OrderID) {
				continue
			}
			if candidate.Signature.Jaccard(audit.Snapshot().Signature()) > SimilarityThreshold {
				similar = append(similar, audit)
			}
		}
	}
	return similar
}

// vendorCapReached reports whether any vendor referenced by the batch already
// reached its daily order volume cap inside the window. Each audit record
// counts a vendor at most once.
func (r RiskAnalyzer) vendorCapReached(candidates []ordering.Candidate, recent []ordering.MaterialOrderAudit) bool {
	vendorCounts := make(map[string]int)
	for _, audit := range recent {
		for _, vendor := range audit.Snapshot().Vendors() {
			vendorCounts[vendor]++
		}
	}

	for _, candidate := range candidates {
		for _, vendor := range candidate.Signature.Vendors() {
			if vendorCounts[vendor] >= r.maxDailyVendorOrders {
				return true
			}
		}
	}
	return false
}
