package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/sumistock/core"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err, "reading fixture %s", name)
	return string(data)
}

func TestExtract_ListingBlocks(t *testing.T) {
	e := New()
	records, err := e.Extract(loadFixture(t, "search_results.html"))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "松戸市中金杉1丁目", first.Location)
	assert.Equal(t, "3,280万円", first.TotalPrice)
	assert.Equal(t, "1,054万円", first.BuildingPrice)
	assert.Equal(t, "112.85m²", first.BuildingArea)
	assert.Equal(t, "2,226万円", first.LandPrice)
	assert.Equal(t, "151.45m²", first.LandArea)
	assert.Equal(t, "積水ハウス", first.Maker)

	// The second listing is sparse: every absent field stays empty and
	// the record is still produced.
	second := records[1]
	assert.Equal(t, "松戸市小金原2丁目", second.Location)
	assert.Empty(t, second.TotalPrice)
	assert.Empty(t, second.BuildingPrice)
	assert.Equal(t, "98.54m²", second.BuildingArea)
	assert.Empty(t, second.LandPrice)
	assert.Empty(t, second.LandArea)
	assert.Equal(t, "ミサワホーム", second.Maker)
}

func TestExtract_FallbackMarkup(t *testing.T) {
	e := New()
	records, err := e.Extract(loadFixture(t, "fallback_markup.html"))
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	// No heading element: the address comes from the text scan.
	assert.Contains(t, rec.Location, "柏市")
	// No labeled elements: positional order is total, building, land.
	assert.Equal(t, "2,980万円", rec.TotalPrice)
	assert.Equal(t, "980万円", rec.BuildingPrice)
	assert.Equal(t, "2,000万円", rec.LandPrice)
	assert.Equal(t, "105.00m²", rec.BuildingArea)
	assert.Equal(t, "120.00m²", rec.LandArea)
	assert.Equal(t, "トヨタホーム", rec.Maker)
}

// A "-" placeholder price must not capture the next label's value: the
// building price stays absent while the land price keeps its own figure.
func TestExtract_PlaceholderPrice(t *testing.T) {
	e := New()
	records, err := e.Extract(loadFixture(t, "placeholder_price.html"))
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "2,226万円", rec.TotalPrice)
	assert.Equal(t, "-", rec.BuildingPrice)
	assert.Equal(t, "2,226万円", rec.LandPrice)
	assert.Equal(t, "151.45m²", rec.LandArea)
	assert.Empty(t, rec.BuildingArea)
}

func TestExtract_ZeroListings(t *testing.T) {
	e := New()
	records, err := e.Extract(loadFixture(t, "no_listings.html"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestExtract_EmptyDocument(t *testing.T) {
	e := New()
	records, err := e.Extract("")
	require.NoError(t, err)
	assert.Empty(t, records)
}

// Extraction is pure: the same document yields the same records, in the
// same document order, every time.
func TestExtract_Idempotent(t *testing.T) {
	e := New()
	html := loadFixture(t, "search_results.html")

	first, err := e.Extract(html)
	require.NoError(t, err)
	second, err := e.Extract(html)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: h3.title\ncontainers:\n  - div.unit\n"), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "h3.title", p.Name)
	assert.Equal(t, []string{"div.unit"}, p.Containers)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultProfile().TotalPrice, p.TotalPrice)
	assert.Equal(t, DefaultProfile().Makers, p.Makers)
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

var _ core.Extractor = (*ListingExtractor)(nil)
