package material

import (
	"fmt"
	"sort"

	"frameshop/internal/pkg/errs"
)

// Vendor names recognized by the shop's material catalogs.
const (
	VendorRomaMoulding  = "Roma Moulding"
	VendorLarsonJuhl    = "Larson Juhl"
	VendorCrescent      = "Crescent"
	VendorGuardianGlass = "Guardian Glass"
)

// Reference is a value object identifying one catalog item: a vendor plus
// the vendor's item code. References are immutable and compared by their Key.
type Reference struct {
	vendor   string
	itemCode string
}

// NewReference creates a validated material reference.
func NewReference(vendor, itemCode string) (Reference, error) {
	if vendor == "" {
		return Reference{}, errs.NewValueIsRequiredError("vendor")
	}
	if itemCode == "" {
		return Reference{}, errs.NewValueIsRequiredError("itemCode")
	}
	return Reference{vendor: vendor, itemCode: itemCode}, nil
}

// Vendor returns the vendor the item belongs to.
func (r Reference) Vendor() string {
	return r.vendor
}

// ItemCode returns the vendor's catalog code for the item.
func (r Reference) ItemCode() string {
	return r.itemCode
}

// Key returns the canonical "vendor:item" pair used for set comparison.
func (r Reference) Key() string {
	return fmt.Sprintf("%s:%s", r.vendor, r.itemCode)
}

// Signature is the set of material references attached to one order.
// It is the unit the duplicate detector compares: two orders built from the
// same vendor items carry equal signatures regardless of note phrasing.
//
// The zero value is a valid empty signature.
type Signature struct {
	refs map[string]Reference
}

// NewSignature builds a signature from the given references,
// de-duplicating by Key.
func NewSignature(refs ...Reference) Signature {
	set := make(map[string]Reference, len(refs))
	for _, ref := range refs {
		set[ref.Key()] = ref
	}
	return Signature{refs: set}
}

// Size returns the number of distinct references in the signature.
func (s Signature) Size() int {
	return len(s.refs)
}

// IsEmpty reports whether the signature carries no references.
func (s Signature) IsEmpty() bool {
	return len(s.refs) == 0
}

// Contains reports whether the signature includes the given reference.
func (s Signature) Contains(ref Reference) bool {
	_, ok := s.refs[ref.Key()]
	return ok
}

// References returns the signature's references sorted by Key.
func (s Signature) References() []Reference {
	keys := make([]string, 0, len(s.refs))
	for key := range s.refs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	refs := make([]Reference, 0, len(keys))
	for _, key := range keys {
		refs = append(refs, s.refs[key])
	}
	return refs
}

// Vendors returns the distinct vendor names in the signature, sorted.
func (s Signature) Vendors() []string {
	seen := make(map[string]bool, len(s.refs))
	for _, ref := range s.refs {
		seen[ref.vendor] = true
	}

	vendors := make([]string, 0, len(seen))
	for vendor := range seen {
		vendors = append(vendors, vendor)
	}
	sort.Strings(vendors)
	return vendors
}

// Jaccard computes the Jaccard similarity between two signatures:
// |intersection| / |union| of their vendor:item pairs. Two signatures with
// no common reference score 0.0; identical non-empty signatures score 1.0.
// If both signatures are empty the union is empty and the score is 0.0.
func (s Signature) Jaccard(other Signature) float64 {
	union := len(s.refs)
	intersection := 0

	for key := range other.refs {
		if _, ok := s.refs[key]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
