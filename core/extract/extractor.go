// Package extract implements the Extractor interface for SumStock search
// result pages. It locates the repeated listing blocks and pulls the raw
// text of each field. Every field is independently fault-tolerant: a
// missing sub-element leaves that field empty instead of dropping the
// record, and zero listing blocks is an empty result, not an error.
//
// The concrete selectors live in a Profile so the markup-specific parts
// stay a swappable adapter around the structural logic.
package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/sumistock/core"
)

// ListingExtractor extracts listing blocks using a selector Profile.
type ListingExtractor struct {
	profile Profile
}

// New creates a ListingExtractor with the default SumStock profile.
func New() *ListingExtractor {
	return &ListingExtractor{profile: DefaultProfile()}
}

// NewWithProfile creates a ListingExtractor with a custom profile.
func NewWithProfile(p Profile) *ListingExtractor {
	return &ListingExtractor{profile: p}
}

// Label-aware price patterns. The priceItems block reads like
// "建物価格 1,054 万円 / 土地価格 2,226 万円". The skip class between a
// label and its digits excludes hyphen, newline and the full-width space
// so a "-" placeholder price fails the label match instead of letting
// the regex run on into the next label's value.
var (
	moneyPattern    = regexp.MustCompile(`([0-9,]+)\s*万円`)
	buildingPattern = regexp.MustCompile(`建物価格[^0-9\n\r　\-]*([0-9,]+)\s*万円`)
	landPattern     = regexp.MustCompile(`土地価格[^0-9\n\r　\-]*([0-9,]+)\s*万円`)
	areaPattern     = regexp.MustCompile(`([0-9.]+)\s*(?:m²|㎡)`)

	// Placeholder prices ("建物価格 - 万円") pin the field to "-" so the
	// positional fallbacks cannot fill it from a neighboring value.
	buildingPlaceholder = regexp.MustCompile(`建物価格[^0-9\n\r　\-]*-`)
	landPlaceholder     = regexp.MustCompile(`土地価格[^0-9\n\r　\-]*-`)

	// Fallbacks when the heading element is absent: any run of text
	// ending in a municipality suffix, preferring one with a block number.
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[^\s　]+[市区町村][^\s　]*[0-9０-９]+丁目`),
		regexp.MustCompile(`[^\s　]+[市区町村][^\s　]*`),
	}
)

// Extract parses the page and returns one RawFields per listing block,
// in document order.
func (e *ListingExtractor) Extract(html string) ([]core.RawFields, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	// Walk the container cascade; the first selector that matches wins.
	var blocks *goquery.Selection
	for _, sel := range e.profile.Containers {
		if s := doc.Find(sel); s.Length() > 0 {
			blocks = s
			break
		}
	}
	if blocks == nil {
		return []core.RawFields{}, nil
	}

	records := make([]core.RawFields, 0, blocks.Length())
	blocks.Each(func(_ int, block *goquery.Selection) {
		records = append(records, e.extractBlock(block))
	})
	return records, nil
}

// extractBlock pulls every field of one listing block.
func (e *ListingExtractor) extractBlock(block *goquery.Selection) core.RawFields {
	text := block.Text()

	raw := core.RawFields{
		Location: e.location(block, text),
		Maker:    e.maker(block, text),
	}

	total, building, land := e.prices(block, text)
	raw.TotalPrice = total
	raw.BuildingPrice = building
	raw.LandPrice = land

	buildingArea, landArea := e.areas(block, text)
	raw.BuildingArea = buildingArea
	raw.LandArea = landArea

	return raw
}

// location prefers the listing heading, then falls back to scanning the
// block text for an address-shaped run.
func (e *ListingExtractor) location(block *goquery.Selection, text string) string {
	if name := strings.TrimSpace(block.Find(e.profile.Name).First().Text()); name != "" {
		return name
	}
	for _, pat := range locationPatterns {
		if m := pat.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// prices resolves the total/building/land price texts. Label-aware
// extraction first, then the bold-price pair, then a positional regex
// sweep over the whole block (order: total, building, land).
func (e *ListingExtractor) prices(block *goquery.Selection, text string) (total, building, land string) {
	if t := joined(block.Find(e.profile.TotalPrice).First()); t != "" {
		if m := moneyPattern.FindStringSubmatch(t); m != nil {
			total = m[1] + "万円"
		}
	}

	if items := joined(block.Find(e.profile.PriceItems).First()); items != "" {
		if m := buildingPattern.FindStringSubmatch(items); m != nil {
			building = m[1] + "万円"
		} else if buildingPlaceholder.MatchString(items) {
			building = "-"
		}
		if m := landPattern.FindStringSubmatch(items); m != nil {
			land = m[1] + "万円"
		} else if landPlaceholder.MatchString(items) {
			land = "-"
		}
	}

	if building == "" || land == "" {
		var bold []string
		block.Find(e.profile.BoldPrice).Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(strings.ReplaceAll(s.Text(), "万円", "")); t != "" {
				bold = append(bold, t)
			}
		})
		if len(bold) >= 2 {
			if building == "" {
				building = bold[0] + "万円"
			}
			if land == "" {
				land = bold[1] + "万円"
			}
		}
	}

	if total == "" || building == "" || land == "" {
		all := moneyPattern.FindAllStringSubmatch(text, -1)
		if total == "" && len(all) >= 1 {
			total = all[0][1] + "万円"
		}
		if building == "" && len(all) >= 2 {
			building = all[1][1] + "万円"
		}
		if land == "" && len(all) >= 3 {
			land = all[2][1] + "万円"
		}
	}
	return total, building, land
}

// areas resolves the building/land area texts from the labeled area pairs,
// falling back to positional value order and finally a regex sweep.
func (e *ListingExtractor) areas(block *goquery.Selection, text string) (building, land string) {
	block.Find(e.profile.Area).Each(func(_ int, area *goquery.Selection) {
		label := stripSpace(area.Find(e.profile.AreaLabel).First().Text())
		value := strings.TrimSpace(area.Find(e.profile.AreaValue).First().Text())
		if label == "" || value == "" {
			return
		}
		switch {
		case strings.Contains(label, "建物") && strings.Contains(label, "面積"):
			building = value
		case strings.Contains(label, "土地") && strings.Contains(label, "面積"):
			land = value
		}
	})
	if building != "" || land != "" {
		return building, land
	}

	var values []string
	block.Find(e.profile.Area).Find(e.profile.AreaValue).Each(func(_ int, s *goquery.Selection) {
		if v := strings.TrimSpace(s.Text()); v != "" {
			values = append(values, v)
		}
	})
	if len(values) == 0 {
		for _, m := range areaPattern.FindAllStringSubmatch(text, -1) {
			values = append(values, m[1]+"m²")
		}
	}
	if len(values) >= 1 {
		building = values[0]
	}
	if len(values) >= 2 {
		land = values[1]
	}
	return building, land
}

// maker scans the block text for a known builder name.
func (e *ListingExtractor) maker(block *goquery.Selection, text string) string {
	for _, name := range e.profile.Makers {
		if strings.Contains(text, name) {
			return name
		}
	}
	return ""
}

// joined returns the selection text with child elements separated by
// spaces, the way label/value runs read in the markup.
func joined(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// stripSpace removes all whitespace, including the full-width space the
// site pads its labels with.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
