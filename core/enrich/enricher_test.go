package enrich

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/sumistock/core"
	"github.com/gaurav-prasanna/sumistock/rosenka"
)

func referenceTable(t *testing.T) *rosenka.Table {
	t.Helper()
	table, err := rosenka.Read(strings.NewReader("location,lat,lon,rosenka_value\n松戸市,35.7873,139.9026,12.5\n"))
	require.NoError(t, err)
	return table
}

func sampleRecord() core.PropertyRecord {
	return core.PropertyRecord{
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
}

func TestEnrich_TableMatch(t *testing.T) {
	c := New(referenceTable(t))
	rec := c.Enrich(sampleRecord())

	assert.Equal(t, 12.5, rec.ReferenceValue.Float())
	// 9.34 / 12.5
	assert.Equal(t, 0.75, rec.ReferenceRatio.Float())
}

func TestEnrich_NoMatchLeavesRecordUnchanged(t *testing.T) {
	table, err := rosenka.Read(strings.NewReader("location,lat,lon,rosenka_value\n船橋市,35.69,139.98,20.0\n"))
	require.NoError(t, err)

	in := sampleRecord()
	out := New(table).Enrich(in)

	assert.False(t, out.ReferenceValue.IsKnown())
	assert.False(t, out.ReferenceRatio.IsKnown())

	out.ReferenceValue = core.Unknown
	out.ReferenceRatio = core.Unknown
	assert.Equal(t, in, out)
}

func TestEnrich_UnknownUnitPrice(t *testing.T) {
	rec := sampleRecord()
	rec.BuildingUnitPrice = core.Unknown

	out := New(referenceTable(t)).Enrich(rec)
	assert.Equal(t, 12.5, out.ReferenceValue.Float())
	assert.False(t, out.ReferenceRatio.IsKnown())
}

func TestEnrich_DoesNotMutateInput(t *testing.T) {
	in := sampleRecord()
	_ = New(referenceTable(t)).Enrich(in)
	assert.False(t, in.ReferenceValue.IsKnown())
	assert.False(t, in.ReferenceRatio.IsKnown())
}

type fixedSource struct{ value core.Amount }

func (s fixedSource) Lookup(string) core.Amount { return s.value }

func TestEnrich_SourceOrder(t *testing.T) {
	c := New(fixedSource{core.Unknown}, fixedSource{core.Known(10)}, fixedSource{core.Known(99)})
	out := c.Enrich(sampleRecord())
	// The first source returning a Known value wins.
	assert.Equal(t, 10.0, out.ReferenceValue.Float())
}

func TestEnrich_NoSources(t *testing.T) {
	out := New().Enrich(sampleRecord())
	assert.False(t, out.ReferenceValue.IsKnown())
	assert.False(t, out.ReferenceRatio.IsKnown())
}

func TestAll_PreservesOrder(t *testing.T) {
	c := New(referenceTable(t))
	records := []core.PropertyRecord{sampleRecord(), {Location: "どこか"}}
	out := c.All(records)
	require.Len(t, out, 2)
	assert.Equal(t, "松戸市中金杉1丁目", out[0].Location)
	assert.True(t, out[0].ReferenceValue.IsKnown())
	assert.False(t, out[1].ReferenceValue.IsKnown())
}
