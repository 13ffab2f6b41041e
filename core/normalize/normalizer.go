// Package normalize implements the Normalizer interface.
// It converts the locale-formatted text of a listing (comma-separated
// 万円 prices, m² areas, full-width digits) into typed values and derives
// the unit prices. Parsing is best-effort per field: malformed text
// resolves to Unknown and never fails the record.
package normalize

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/gaurav-prasanna/sumistock/core"
)

// ValueNormalizer converts raw listing text into typed fields.
type ValueNormalizer struct{}

// New creates a ValueNormalizer.
func New() *ValueNormalizer {
	return &ValueNormalizer{}
}

// Normalize parses every field of raw and derives the two unit prices.
// A unit price is Known iff its price and area are Known and the area is
// non-zero.
func (n *ValueNormalizer) Normalize(raw core.RawFields) core.NormalizedFields {
	f := core.NormalizedFields{
		Location:      strings.TrimSpace(raw.Location),
		Maker:         strings.TrimSpace(raw.Maker),
		TotalPrice:    ParseMoney(raw.TotalPrice),
		BuildingPrice: ParseMoney(raw.BuildingPrice),
		BuildingArea:  ParseArea(raw.BuildingArea),
		LandPrice:     ParseMoney(raw.LandPrice),
		LandArea:      ParseArea(raw.LandArea),
	}
	f.BuildingUnitPrice = core.Div(f.BuildingPrice, f.BuildingArea)
	f.LandUnitPrice = core.Div(f.LandPrice, f.LandArea)
	return f
}

// areaUnits strips the square-meter suffix in the variants the site uses.
var areaUnits = strings.NewReplacer("m²", "", "㎡", "", "m2", "")

// ParseMoney parses price text of the form "3,280万円" into a 万円 amount.
// Full-width digits and separators are folded to ASCII first; anything
// after the 万円 suffix is ignored. Malformed text yields Unknown.
func ParseMoney(text string) core.Amount {
	s := fold(text)
	if s == "" || s == "-" {
		return core.Unknown
	}
	if i := strings.Index(s, "万円"); i >= 0 {
		s = s[:i]
	}
	return parseNumber(s)
}

// ParseArea parses area text of the form "112.85m²" (or the ㎡ variant)
// into square meters. Malformed text yields Unknown.
func ParseArea(text string) core.Amount {
	s := fold(text)
	if s == "" || s == "-" {
		return core.Unknown
	}
	s = areaUnits.Replace(s)
	return parseNumber(s)
}

// fold converts full-width characters to their ASCII counterparts and
// trims surrounding whitespace.
func fold(text string) string {
	return strings.TrimSpace(width.Narrow.String(text))
}

// parseNumber parses a decimal with optional thousands separators.
// Non-numeric residue makes the whole field Unknown rather than guessing.
func parseNumber(s string) core.Amount {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Unknown
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return core.Unknown
	}
	return core.Known(v)
}
