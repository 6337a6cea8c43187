// Package order provides domain entities and business logic for framing-order
// management. It implements the Order aggregate root with workflow state and
// the append-only status history that audits it.
//
// The package includes:
//   - Order: The aggregate root owning identity, pricing, notes, and workflow status
//   - Status: The closed ten-state production workflow
//   - StatusHistoryEntry: The immutable audit record paired with each status change
//
// Key business rules:
//   - Orders start in OrderProcessed at intake
//   - Any valid status may transition to any other valid status; what is
//     enforced is the pairing of each real change with exactly one history entry
//   - Re-applying the current status is a no-op that writes no history
//   - Deposits never exceed the agreed total
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
