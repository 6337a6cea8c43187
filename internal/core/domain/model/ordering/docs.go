// Package ordering provides the domain model for material-order auditing and
// duplicate detection. Every material order placed against a customer order
// leaves a MaterialOrderAudit record carrying a snapshot of the order as it
// looked at that moment, and the recent history of those records feeds the
// risk classification applied to every new batch.
//
// The package includes:
//   - MaterialOrderAudit: The append-only record of one placed material order
//   - OrderSnapshot: The tracking code and material references frozen at ordering time
//   - DuplicateOrderCheck: The risk verdict for a proposed batch
//   - RiskLevel: The LOW / MEDIUM / HIGH / CRITICAL classification
//   - Candidate: One order proposed for ordering, paired with its signature
//
// Key business rules:
//   - Audit records are immutable once written
//   - Any risk above LOW requires a management override to proceed
//   - When the ordering history cannot be read, the check fails safe to CRITICAL
package ordering
