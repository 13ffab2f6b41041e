// Package render provides output renderers for the record stream.
// This file implements the Markdown renderer: a Jekyll front-mattered
// page with one fixed-column table row per property. Unknown values
// surface here, and only here, as the "-" placeholder.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/sumistock/core"
)

// placeholder is the display text for Unknown fields.
const placeholder = "-"

// tableHeader fixes the column order: location, total price, building
// price/area/unit price, land price/area/unit price, maker, reference
// value, reference ratio.
const tableHeader = `| 所在地（町名） | 総額 | 建物価格 | 建物面積 | 建物単価（万円/m²） | 土地価格 | 土地面積 | 土地単価（万円/m²） | ハウスメーカー | 地価（万円/m²） | 地価倍率 |
|----------------|------|----------|----------|----------------------|----------|----------|----------------------|----------------|-----------------|----------|
`

// MarkdownRenderer writes the record stream as a Jekyll data page.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render produces the full Markdown page for one scraped URL.
func (r *MarkdownRenderer) Render(records []core.PropertyRecord, meta core.PageMeta) ([]byte, error) {
	var b strings.Builder

	date := meta.ScrapedAt
	fmt.Fprintf(&b, "---\nlayout: default\ntitle: %s\nparent: データ一覧\nnav_order: %s\n---\n\n",
		date.Format("2006-01-02"), date.Format("20060102"))

	b.WriteString("# スムストック物件データ\n\n")
	fmt.Fprintf(&b, "## 取得日: %s\n", date.Format("2006年01月02日"))
	fmt.Fprintf(&b, "### 参照URL: [%s](%s)\n\n", meta.URL, meta.URL)

	b.WriteString(tableHeader)
	if len(records) == 0 {
		b.WriteString("| データなし | - | - | - | - | - | - | - | - | - | - |\n")
	}
	for _, rec := range records {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			textCell(rec.Location),
			money(rec.TotalPrice),
			money(rec.BuildingPrice),
			area(rec.BuildingArea),
			unitPrice(rec.BuildingUnitPrice),
			money(rec.LandPrice),
			area(rec.LandArea),
			unitPrice(rec.LandUnitPrice),
			textCell(rec.Maker),
			unitPrice(rec.ReferenceValue),
			ratio(rec.ReferenceRatio),
		)
	}

	b.WriteString("\n---\n\n**注意**: データは自動的に取得されます。\n")
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func textCell(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// money formats a 万円 amount with thousands separators, e.g. "3,280万円".
func money(a core.Amount) string {
	if !a.IsKnown() {
		return placeholder
	}
	v := a.Float()
	if v == float64(int64(v)) {
		return groupThousands(int64(v)) + "万円"
	}
	return fmt.Sprintf("%.2f万円", v)
}

func area(a core.Amount) string {
	if !a.IsKnown() {
		return placeholder
	}
	return fmt.Sprintf("%.2fm²", a.Float())
}

func unitPrice(a core.Amount) string {
	if !a.IsKnown() {
		return placeholder
	}
	return fmt.Sprintf("約%.2f万円/m²", a.Float())
}

func ratio(a core.Amount) string {
	if !a.IsKnown() {
		return placeholder
	}
	return fmt.Sprintf("%.2fx", a.Float())
}

// groupThousands renders n with comma separators.
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
