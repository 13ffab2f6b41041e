// Package landprice queries the MLIT real-estate information library
// point API for official land prices. The client is credential-gated:
// without an API key every lookup resolves to Unknown, and a transport or
// API failure behaves identically to a not-found result, so callers have
// a single failure path regardless of cause.
package landprice

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/gaurav-prasanna/sumistock/core"
	"github.com/gaurav-prasanna/sumistock/location"
)

const (
	defaultBaseURL = "https://www.reinfolib.mlit.go.jp/api/point"

	// DefaultYear is the land-price survey year queried when none is
	// configured.
	DefaultYear = "2023"

	requestTimeout = 10 * time.Second
)

// Client looks up official land prices by address.
type Client struct {
	apiKey     string
	year       string
	baseURL    string
	httpClient *http.Client
}

// New creates a Client. An empty apiKey produces a disabled client whose
// lookups always resolve to Unknown.
func New(apiKey, year string) *Client {
	if year == "" {
		year = DefaultYear
	}
	return &Client{
		apiKey:     apiKey,
		year:       year,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Enabled reports whether an API credential is configured.
func (c *Client) Enabled() bool { return c.apiKey != "" }

// point is one land-price observation in the API response.
type point struct {
	CurrentYearPrice *float64 `json:"currentYearPrice"`
	Price            *float64 `json:"price"`
}

// response is the point-API envelope.
type response struct {
	Data []point `json:"data"`
}

// Lookup resolves the average official land price for an address, in
// 万円/m² rounded to 2 decimal places. Addresses outside the supported
// city set, API errors, and empty result sets all yield Unknown.
func (c *Client) Lookup(address string) core.Amount {
	if !c.Enabled() {
		return core.Unknown
	}
	prefCode, cityCode, ok := location.AddressCodes(address)
	if !ok {
		return core.Unknown
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("pref", prefCode)
	q.Set("city", cityCode)
	q.Set("year", c.year)

	resp, err := c.httpClient.Get(fmt.Sprintf("%s?%s", c.baseURL, q.Encode()))
	if err != nil {
		return core.Unknown
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return core.Unknown
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return core.Unknown
	}

	// Average across all observation points, converting yen to 万円.
	// A missing or zero currentYearPrice is treated as absent and falls
	// back to price; points with neither are skipped.
	var sum float64
	var n int
	for _, p := range body.Data {
		switch {
		case p.CurrentYearPrice != nil && *p.CurrentYearPrice != 0:
			sum += *p.CurrentYearPrice / 10000
			n++
		case p.Price != nil && *p.Price != 0:
			sum += *p.Price / 10000
			n++
		}
	}
	if n == 0 {
		return core.Unknown
	}
	return core.Known(math.Round(sum/float64(n)*100) / 100)
}
