// Package core defines the domain types and pipeline interfaces for sumistock.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"encoding/json"
	"math"
	"time"
)

// Amount is an explicit Known/Unknown numeric value. Fields that could not
// be extracted or computed stay Unknown instead of being coerced to zero;
// only the renderers turn Unknown into the display placeholder.
type Amount struct {
	value float64
	known bool
}

// Unknown is the zero Amount: no value could be extracted or computed.
var Unknown = Amount{}

// Known wraps a concrete numeric value.
func Known(v float64) Amount {
	return Amount{value: v, known: true}
}

// IsKnown reports whether the amount carries a value.
func (a Amount) IsKnown() bool { return a.known }

// Float returns the carried value; 0 if the amount is Unknown.
func (a Amount) Float() float64 {
	if !a.known {
		return 0
	}
	return a.value
}

// Div divides num by den rounded to 2 decimal places. The result is
// Unknown when either operand is Unknown or the denominator is zero.
func Div(num, den Amount) Amount {
	if !num.known || !den.known || den.value == 0 {
		return Unknown
	}
	return Known(math.Round(num.value/den.value*100) / 100)
}

// MarshalJSON encodes a Known amount as a number and Unknown as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.known {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

// UnmarshalJSON decodes null as Unknown and a number as Known.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Unknown
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = Known(v)
	return nil
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// RawFields holds the untyped text of one listing block in document order.
// An empty string means the sub-element was absent from the markup.
type RawFields struct {
	Location      string
	TotalPrice    string
	BuildingPrice string
	BuildingArea  string
	LandPrice     string
	LandArea      string
	Maker         string
}

// NormalizedFields holds the typed values derived from one RawFields.
// Prices are in 万円, areas in m², unit prices in 万円/m².
type NormalizedFields struct {
	Location          string
	TotalPrice        Amount
	BuildingPrice     Amount
	BuildingArea      Amount
	BuildingUnitPrice Amount
	LandPrice         Amount
	LandArea          Amount
	LandUnitPrice     Amount
	Maker             string
}

// PropertyRecord is one assembled listing. Every field is total: absent
// data is carried as Unknown (or an empty Maker), never as a missing key.
// Records are immutable once assembled; enrichment returns a copy.
type PropertyRecord struct {
	Location          string `json:"location"`
	TotalPrice        Amount `json:"total_price"`
	BuildingPrice     Amount `json:"building_price"`
	BuildingArea      Amount `json:"building_area"`
	BuildingUnitPrice Amount `json:"building_unit_price"`
	LandPrice         Amount `json:"land_price"`
	LandArea          Amount `json:"land_area"`
	LandUnitPrice     Amount `json:"land_unit_price"`
	Maker             string `json:"maker"`
	ReferenceValue    Amount `json:"reference_value"`
	ReferenceRatio    Amount `json:"reference_ratio"`
}

// PageMeta describes the page a record stream came from.
type PageMeta struct {
	URL        string    `json:"url"`
	Prefecture string    `json:"prefecture"`
	City       string    `json:"city"`
	ScrapedAt  time.Time `json:"scraped_at"`
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor locates listing blocks in raw HTML and pulls their text fields.
// Zero blocks found yields an empty slice, not an error.
type Extractor interface {
	Extract(html string) ([]RawFields, error)
}

// Normalizer converts raw listing text into typed values. Best-effort per
// field: malformed text resolves to Unknown and never fails the record.
type Normalizer interface {
	Normalize(raw RawFields) NormalizedFields
}

// Enricher resolves a land reference value for a record and derives the
// price ratio. It returns a new record; the input is never mutated.
type Enricher interface {
	Enrich(rec PropertyRecord) PropertyRecord
}

// Renderer converts a record stream into a final output format.
type Renderer interface {
	Render(records []PropertyRecord, meta PageMeta) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md").
	Extension() string
}
