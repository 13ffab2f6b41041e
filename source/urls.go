// Package source provides helpers to collect and validate the listing
// URLs a run should process. URLs arrive either as command-line arguments
// or embedded in a GitHub issue body.
package source

import (
	"net/url"
	"regexp"
	"strings"
)

// listingURL matches SumStock search URLs wherever they appear in text.
var listingURL = regexp.MustCompile(`https://sumstock\.jp/search/\d+/\d+/\d+`)

// validListingURL anchors the same shape for whole-string validation.
var validListingURL = regexp.MustCompile(`^https://sumstock\.jp/search/\d+/\d+/\d+$`)

// FromIssueBody extracts every listing URL from free text, deduplicated
// in order of first appearance.
func FromIssueBody(body string) []string {
	var urls []string
	seen := make(map[string]bool)
	for _, m := range listingURL.FindAllString(body, -1) {
		u := Normalize(m)
		if !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}
	return urls
}

// IsListingURL reports whether raw is exactly a SumStock search URL.
func IsListingURL(raw string) bool {
	return validListingURL.MatchString(Normalize(raw))
}

// Normalize strips fragments and trailing slashes for deduplication.
func Normalize(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	parsed.Fragment = ""
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}
	return parsed.String()
}
