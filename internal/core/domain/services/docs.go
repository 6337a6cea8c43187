// Package services contains domain services coordinating logic that spans
// aggregates and does not belong to any single one of them.
//
// The package includes:
//   - RiskAnalyzer: Classifies a proposed material order batch against the
//     recent ordering history (exact duplicates, near-identical signatures,
//     vendor volume caps)
//   - OverrideGate: Authorizes proceeding despite an elevated risk verdict
//
// Both services are stateless and side-effect free apart from logging;
// callers load whatever history the services need and pass it in.
package services
