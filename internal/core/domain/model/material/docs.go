// Package material provides the vendor material signature extracted from an
// order's free-text work notes, and the set math the duplicate detector runs
// on it.
//
// The package includes:
//   - Reference: One vendor catalog item (vendor + item code)
//   - Signature: The de-duplicated set of references on one order, with
//     Jaccard similarity for comparing two orders' material footprints
//   - ExtractSignature: The pure notes-to-signature parser
//
// The parser is deliberately the only place that knows the vendor code
// spelling conventions; everything downstream works on typed references.
package material
