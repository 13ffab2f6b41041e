// Package rosenka loads the static land reference price table.
// The table is a CSV with columns location,lat,lon,rosenka_value, loaded
// once per run and read-only afterwards, so it is safe to share without
// locking. Lookup is by city-level text key, first match wins; the stored
// coordinates are not used for proximity search.
package rosenka

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/sumistock/core"
	"github.com/gaurav-prasanna/sumistock/location"
)

// Entry is one reference price point. Value is in 万円/m².
type Entry struct {
	Location string
	Lat      float64
	Lon      float64
	Value    float64
}

// Table is an ordered, immutable set of reference entries.
type Table struct {
	entries []Entry
}

// New builds a table from entries, preserving their order.
func New(entries []Entry) *Table {
	return &Table{entries: entries}
}

// Load reads the reference CSV. A missing file yields an empty table, not
// an error: enrichment then degrades to Unknown values. Rows with a
// malformed value column are skipped.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(nil), nil
		}
		return nil, fmt.Errorf("opening reference table: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading reference table %s: %w", path, err)
	}
	return t, nil
}

// Read parses reference CSV data from r. The header row names the
// columns; only location and rosenka_value are required.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return New(nil), nil
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	locIdx, ok := col["location"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "location")
	}
	valIdx, ok := col["rosenka_value"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "rosenka_value")
	}

	var entries []Entry
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		loc := strings.TrimSpace(row[locIdx])
		value, verr := strconv.ParseFloat(strings.TrimSpace(row[valIdx]), 64)
		if loc == "" || verr != nil {
			continue
		}
		e := Entry{Location: loc, Value: value}
		if i, ok := col["lat"]; ok && i < len(row) {
			e.Lat, _ = strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		}
		if i, ok := col["lon"]; ok && i < len(row) {
			e.Lon, _ = strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		}
		entries = append(entries, e)
	}
	return New(entries), nil
}

// Len returns the number of loaded entries.
func (t *Table) Len() int { return len(t.entries) }

// Lookup resolves a reference value for an address. Match order: exact
// key, then the city-level normalized key, then substring containment,
// each pass taking the first entry in table order. No match is Unknown.
func (t *Table) Lookup(address string) core.Amount {
	if address == "" {
		return core.Unknown
	}
	for _, e := range t.entries {
		if e.Location == address {
			return core.Known(e.Value)
		}
	}
	key := location.NormalizeAddress(address)
	for _, e := range t.entries {
		if e.Location == key {
			return core.Known(e.Value)
		}
	}
	for _, e := range t.entries {
		if strings.Contains(address, e.Location) || strings.Contains(e.Location, address) {
			return core.Known(e.Value)
		}
	}
	return core.Unknown
}
