// Package kernel provides shared domain primitives used across all aggregates
// in the frameshop system.
//
// The package includes:
//   - UUID: An immutable identifier value object wrapping github.com/google/uuid
//
// Kernel types carry no business rules of their own; they exist so that
// aggregates and value objects in different packages share one validated
// representation of their identities.
package kernel
