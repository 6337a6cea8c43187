package material

import (
	"regexp"
	"strings"
)

// codePattern matches vendor catalog codes embedded in free-text work notes:
// a vendor prefix letter followed by the numeric item code, e.g. "R123",
// "L4411", "C9902". Matching is case-insensitive because intake staff type
// codes both ways.
var codePattern = regexp.MustCompile(`(?i)\b([RLC])(\d{2,6})\b`)

// vendorByPrefix maps a catalog-code prefix letter to the vendor it belongs to.
var vendorByPrefix = map[string]string{
	"R": VendorRomaMoulding,
	"L": VendorLarsonJuhl,
	"C": VendorCrescent,
}

// museumGlassItemCode is the synthetic item code recorded when the notes
// mention Museum Glass, which has no numeric catalog code in the notes.
const museumGlassItemCode = "MUSEUM-GLASS"

// ExtractSignature parses an order's free-text work notes into a material
// Signature. It is a pure function so the brittle text matching stays
// isolated and replaceable by a typed materials list later.
//
// Recognized patterns:
//   - "R<code>" for Roma Moulding frame stock
//   - "L<code>" for Larson Juhl frame stock
//   - "C<code>" for Crescent mat board
//   - the phrase "Museum Glass" for Guardian Glass glazing
//
// Unrecognized text contributes nothing; the result may be empty.
func ExtractSignature(notes string) Signature {
	var refs []Reference

	for _, match := range codePattern.FindAllStringSubmatch(notes, -1) {
		prefix := strings.ToUpper(match[1])
		vendor, ok := vendorByPrefix[prefix]
		if !ok {
			continue
		}

		ref, err := NewReference(vendor, prefix+match[2])
		if err != nil {
			continue
		}
		refs = append(refs, ref)
	}

	if strings.Contains(strings.ToLower(notes), "museum glass") {
		if ref, err := NewReference(VendorGuardianGlass, museumGlassItemCode); err == nil {
			refs = append(refs, ref)
		}
	}

	return NewSignature(refs...)
}
