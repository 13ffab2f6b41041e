// Package enrich resolves a per-record land reference value and computes
// the price-to-reference ratio. Partial enrichment is the steady state:
// an address no source covers leaves the reference fields Unknown and the
// record otherwise untouched.
package enrich

import "github.com/gaurav-prasanna/sumistock/core"

// Source resolves a land reference value (万円/m²) for an address.
// A failed lookup behaves identically to a not-found lookup: Unknown.
type Source interface {
	Lookup(address string) core.Amount
}

// Calculator enriches records from an ordered chain of sources; the first
// source returning a Known value wins.
type Calculator struct {
	sources []Source
}

// New creates a Calculator over the given sources, consulted in order.
func New(sources ...Source) *Calculator {
	return &Calculator{sources: sources}
}

// Enrich returns a copy of rec with ReferenceValue looked up by location
// and ReferenceRatio derived as building unit price over reference value.
// Either field stays Unknown when its inputs are unavailable; the input
// record is never mutated.
func (c *Calculator) Enrich(rec core.PropertyRecord) core.PropertyRecord {
	out := rec
	out.ReferenceValue = core.Unknown
	out.ReferenceRatio = core.Unknown

	if rec.Location == "" {
		return out
	}
	for _, s := range c.sources {
		if v := s.Lookup(rec.Location); v.IsKnown() {
			out.ReferenceValue = v
			break
		}
	}
	out.ReferenceRatio = core.Div(rec.BuildingUnitPrice, out.ReferenceValue)
	return out
}

// All enriches every record, preserving order.
func (c *Calculator) All(records []core.PropertyRecord) []core.PropertyRecord {
	out := make([]core.PropertyRecord, len(records))
	for i, rec := range records {
		out[i] = c.Enrich(rec)
	}
	return out
}
