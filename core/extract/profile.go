package extract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile holds the structural selectors for the vendor's markup plus the
// builder names recognized in listing text. The default profile targets
// the current SumStock layout; an alternate profile can be loaded from
// YAML when the markup shifts, without touching the extraction logic.
type Profile struct {
	// Containers is the listing-block selector cascade; the first
	// selector that matches anything on the page wins.
	Containers []string `yaml:"containers"`
	Name       string   `yaml:"name"`
	TotalPrice string   `yaml:"total_price"`
	PriceItems string   `yaml:"price_items"`
	BoldPrice  string   `yaml:"bold_price"`
	Area       string   `yaml:"area"`
	AreaLabel  string   `yaml:"area_label"`
	AreaValue  string   `yaml:"area_value"`
	Makers     []string `yaml:"makers"`
}

// DefaultProfile returns the selectors for the current SumStock markup.
// The container cascade starts with the site-specific class and degrades
// to generic property-listing patterns.
func DefaultProfile() Profile {
	return Profile{
		Containers: []string{
			"div.bukkenUnitBox",
			"article.bukkenListWrap .bukkenUnitBox",
			".bukkenUnitBox",
			"div.property-item",
			"div.property-card",
			"li.property-item",
			"div[class*=\"property\"]",
			"div.bukken-item",
		},
		Name:       "h5.bukkenName",
		TotalPrice: "div.price",
		PriceItems: "div.priceItems",
		BoldPrice:  "span.bold",
		Area:       "div.area",
		AreaLabel:  "span.label, .label, [class*=\"label\"]",
		AreaValue:  "span.value, .value, [class*=\"value\"]",
		Makers: []string{
			"積水ハウス",
			"ダイワハウス",
			"大和ハウス",
			"セキスイハイム",
			"パナホーム",
			"ミサワホーム",
			"ヘーベルハウス",
			"住友林業",
			"トヨタホーム",
			"三井ホーム",
		},
	}
}

// LoadProfile reads a selector profile from a YAML file. Fields left empty
// in the file keep their default values, so a profile override only needs
// to name what changed.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading selector profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing selector profile: %w", err)
	}
	return p, nil
}
