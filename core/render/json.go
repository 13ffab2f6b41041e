// Package render — JSON renderer.
// Emits the page metadata and the full record stream as indented JSON.
// Unknown fields encode as null, never zero.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/sumistock/core"
)

// pageJSON is the complete JSON output for one scraped URL.
type pageJSON struct {
	Metadata core.PageMeta         `json:"metadata"`
	Count    int                   `json:"count"`
	Records  []core.PropertyRecord `json:"records"`
}

// JSONRenderer produces structured JSON output from the record stream.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the records and metadata.
func (r *JSONRenderer) Render(records []core.PropertyRecord, meta core.PageMeta) ([]byte, error) {
	if records == nil {
		records = []core.PropertyRecord{}
	}
	page := pageJSON{
		Metadata: meta,
		Count:    len(records),
		Records:  records,
	}
	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
