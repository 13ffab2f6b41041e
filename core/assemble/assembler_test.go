package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/sumistock/core"
)

func TestAssemble(t *testing.T) {
	f := core.NormalizedFields{
		Location:          "松戸市中金杉1丁目",
		TotalPrice:        core.Known(3280),
		BuildingPrice:     core.Known(1054),
		BuildingArea:      core.Known(112.85),
		BuildingUnitPrice: core.Known(9.34),
		LandPrice:         core.Known(2226),
		LandArea:          core.Known(151.45),
		LandUnitPrice:     core.Known(14.70),
		Maker:             "積水ハウス",
	}

	rec := Assemble(f)
	assert.Equal(t, "松戸市中金杉1丁目", rec.Location)
	assert.Equal(t, core.Known(3280), rec.TotalPrice)
	assert.Equal(t, core.Known(9.34), rec.BuildingUnitPrice)
	assert.Equal(t, core.Known(14.70), rec.LandUnitPrice)
	assert.Equal(t, "積水ハウス", rec.Maker)
	// Enrichment fields start Unknown, never zero.
	assert.False(t, rec.ReferenceValue.IsKnown())
	assert.False(t, rec.ReferenceRatio.IsKnown())
}

func TestAssemble_SparseFields(t *testing.T) {
	rec := Assemble(core.NormalizedFields{Location: "松戸市小金原2丁目"})
	assert.Equal(t, "松戸市小金原2丁目", rec.Location)
	assert.False(t, rec.TotalPrice.IsKnown())
	assert.False(t, rec.BuildingUnitPrice.IsKnown())
	assert.Empty(t, rec.Maker)
}

func TestAll_PreservesOrder(t *testing.T) {
	fields := []core.NormalizedFields{
		{Location: "松戸市中金杉1丁目"},
		{Location: "松戸市小金原2丁目"},
	}
	records := All(fields)
	assert.Len(t, records, 2)
	assert.Equal(t, "松戸市中金杉1丁目", records[0].Location)
	assert.Equal(t, "松戸市小金原2丁目", records[1].Location)

	assert.Empty(t, All(nil))
}
