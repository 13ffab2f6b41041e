// Package assemble combines normalized fields into property records.
// It is pure structural combination: every record leaves here with a
// complete, total set of fields (explicit Unknown rather than missing
// keys) so downstream rendering never branches on field presence.
package assemble

import "github.com/gaurav-prasanna/sumistock/core"

// Assemble builds one PropertyRecord from normalized fields. Reference
// value and ratio start Unknown; enrichment fills them in later if a
// reference source covers the location.
func Assemble(f core.NormalizedFields) core.PropertyRecord {
	return core.PropertyRecord{
		Location:          f.Location,
		TotalPrice:        f.TotalPrice,
		BuildingPrice:     f.BuildingPrice,
		BuildingArea:      f.BuildingArea,
		BuildingUnitPrice: f.BuildingUnitPrice,
		LandPrice:         f.LandPrice,
		LandArea:          f.LandArea,
		LandUnitPrice:     f.LandUnitPrice,
		Maker:             f.Maker,
		ReferenceValue:    core.Unknown,
		ReferenceRatio:    core.Unknown,
	}
}

// All assembles a record per normalized listing, preserving order.
func All(fields []core.NormalizedFields) []core.PropertyRecord {
	records := make([]core.PropertyRecord, len(fields))
	for i, f := range fields {
		records[i] = Assemble(f)
	}
	return records
}
