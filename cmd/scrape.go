// Package cmd — scrape command.
// This is the main command that orchestrates the pipeline per URL:
// fetch → extract → normalize → assemble → enrich → render → write.
//
// URLs are processed sequentially and independently: a failed page is
// logged and skipped, it never aborts the rest of the batch.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/sumistock/config"
	"github.com/gaurav-prasanna/sumistock/core"
	"github.com/gaurav-prasanna/sumistock/core/assemble"
	"github.com/gaurav-prasanna/sumistock/core/enrich"
	"github.com/gaurav-prasanna/sumistock/core/extract"
	"github.com/gaurav-prasanna/sumistock/core/fetch"
	"github.com/gaurav-prasanna/sumistock/core/normalize"
	"github.com/gaurav-prasanna/sumistock/core/output"
	"github.com/gaurav-prasanna/sumistock/core/render"
	"github.com/gaurav-prasanna/sumistock/landprice"
	"github.com/gaurav-prasanna/sumistock/location"
	"github.com/gaurav-prasanna/sumistock/rosenka"
	"github.com/gaurav-prasanna/sumistock/source"
)

// Flag variables.
var (
	flagOutputDir  string
	flagRosenkaCSV string
	flagProfile    string
	flagMarkdown   bool
	flagJSON       bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [url...]",
	Short: "Scrape listing URLs into per-location data files",
	Long: `Scrape fetches each SumStock search URL, extracts the property listings,
and writes one data file per URL under <output_dir>/<prefecture>/<city>/.
Without URL arguments, URLs are extracted from the ISSUE_BODY environment
variable.

Examples:
  sumistock scrape https://sumstock.jp/search/02/12/12207
  sumistock scrape https://sumstock.jp/search/02/12/12207 --json
  ISSUE_BODY="$(gh issue view 12 --json body -q .body)" sumistock scrape`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory root (default: OUTPUT_DIR or ./data)")
	scrapeCmd.Flags().StringVar(&flagRosenkaCSV, "rosenka_csv", "", "Reference price CSV path (default: ROSENKA_CSV)")
	scrapeCmd.Flags().StringVar(&flagProfile, "profile", "", "Selector profile YAML (default: built-in SumStock profile)")
	scrapeCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown tables (default)")
	scrapeCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON instead of Markdown")
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	log := logger.WithField("run_id", uuid.New().String()[:8])

	urls := collectURLs(args, cfg.IssueBody, log)
	if len(urls) == 0 {
		return fmt.Errorf("no listing URLs: pass them as arguments or via ISSUE_BODY")
	}

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}
	extractor, err := newExtractor(cfg)
	if err != nil {
		return err
	}
	enricher, err := newEnricher(cfg, log)
	if err != nil {
		return err
	}

	outDir := flagOutputDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	writer, err := output.New(outDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	fetcher := fetch.NewWithTimeout(time.Duration(cfg.FetchTimeoutSeconds) * time.Second)
	normalizer := normalize.New()

	ctx := context.Background()
	date := time.Now()

	var written []string
	var failed int
	for i, rawURL := range urls {
		pageLog := log.WithFields(logrus.Fields{
			"url":  rawURL,
			"page": fmt.Sprintf("%d/%d", i+1, len(urls)),
		})

		path, count, err := processURL(ctx, rawURL, date, fetcher, extractor, normalizer, enricher, renderer, writer, pageLog)
		if err != nil {
			pageLog.WithError(err).Error("page failed")
			failed++
			continue
		}
		pageLog.WithFields(logrus.Fields{"path": path, "records": count}).Info("page written")
		written = append(written, path)
	}

	log.WithFields(logrus.Fields{
		"urls":   len(urls),
		"files":  len(written),
		"failed": failed,
	}).Info("run complete")

	if cfg.GithubOutput != "" {
		if err := writeGithubOutput(cfg.GithubOutput, written, date); err != nil {
			log.WithError(err).Warn("could not write GitHub Actions outputs")
		}
	}

	if failed == len(urls) {
		return fmt.Errorf("all %d pages failed", failed)
	}
	return nil
}

// processURL runs a single URL through the full pipeline and returns the
// written path and record count.
func processURL(
	ctx context.Context,
	rawURL string,
	date time.Time,
	fetcher core.Fetcher,
	extractor core.Extractor,
	normalizer core.Normalizer,
	enricher core.Enricher,
	renderer core.Renderer,
	writer *output.Writer,
	log *logrus.Entry,
) (string, int, error) {
	// The URL-derived code classifies the page; address text never
	// overrides it.
	loc := location.ResolveURL(rawURL)
	if !loc.Known() {
		log.WithField("city_code", loc.CityCode).Warn("location code not in table, filing under sentinel folder")
	}

	// 1. Fetch
	result, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", 0, fmt.Errorf("fetch: %w", err)
	}

	// 2. Extract listing blocks
	raws, err := extractor.Extract(result.HTML)
	if err != nil {
		return "", 0, fmt.Errorf("extract: %w", err)
	}
	if len(raws) == 0 {
		log.Warn("no listing blocks found, writing empty data file")
	}

	// 3. Normalize and assemble
	fields := make([]core.NormalizedFields, len(raws))
	for i, raw := range raws {
		fields[i] = normalizer.Normalize(raw)
	}
	records := assemble.All(fields)

	for _, rec := range records {
		if location.Mismatch(loc, rec.Location) {
			log.WithFields(logrus.Fields{
				"address":  rec.Location,
				"url_city": loc.City,
			}).Warn("address disagrees with URL classification, keeping URL")
		}
	}

	// 4. Enrich with reference land values
	for i, rec := range records {
		records[i] = enricher.Enrich(rec)
	}

	// 5. Render and write
	meta := core.PageMeta{
		URL:        rawURL,
		Prefecture: loc.Prefecture,
		City:       loc.City,
		ScrapedAt:  date,
	}
	data, err := renderer.Render(records, meta)
	if err != nil {
		return "", 0, fmt.Errorf("render: %w", err)
	}

	path, err := writer.Write(loc.Prefecture, loc.City, date, data, renderer.Extension())
	if err != nil {
		return "", 0, fmt.Errorf("write: %w", err)
	}
	return path, len(records), nil
}

// collectURLs merges argv with issue-body extraction, validating and
// deduplicating. Invalid URLs are skipped with a warning, not fatal.
func collectURLs(args []string, issueBody string, log *logrus.Entry) []string {
	raw := args
	if len(raw) == 0 {
		raw = source.FromIssueBody(issueBody)
	}

	var urls []string
	seen := make(map[string]bool)
	for _, u := range raw {
		n := source.Normalize(u)
		if !source.IsListingURL(n) {
			log.WithField("url", u).Warn("skipping non-listing URL")
			continue
		}
		if !seen[n] {
			seen[n] = true
			urls = append(urls, n)
		}
	}
	return urls
}

// selectRenderer picks the output format; Markdown is the default.
func selectRenderer() (core.Renderer, error) {
	if flagMarkdown && flagJSON {
		return nil, fmt.Errorf("--markdown and --json are mutually exclusive")
	}
	if flagJSON {
		return render.NewJSONRenderer(), nil
	}
	return render.NewMarkdownRenderer(), nil
}

// newExtractor builds the extractor, honoring a selector profile override.
func newExtractor(cfg *config.Config) (core.Extractor, error) {
	path := flagProfile
	if path == "" {
		path = cfg.SelectorProfile
	}
	if path == "" {
		return extract.New(), nil
	}
	p, err := extract.LoadProfile(path)
	if err != nil {
		return nil, err
	}
	return extract.NewWithProfile(p), nil
}

// newEnricher assembles the reference-value source chain: the official
// API first when a credential is configured, the static CSV table always.
func newEnricher(cfg *config.Config, log *logrus.Entry) (core.Enricher, error) {
	csvPath := flagRosenkaCSV
	if csvPath == "" {
		csvPath = cfg.RosenkaCSV
	}
	table, err := rosenka.Load(csvPath)
	if err != nil {
		return nil, fmt.Errorf("loading reference table: %w", err)
	}
	log.WithField("entries", table.Len()).Debug("reference table loaded")

	client := landprice.New(cfg.ReinfolibAPIKey, cfg.LandPriceYear)
	if client.Enabled() {
		return enrich.New(client, table), nil
	}
	return enrich.New(table), nil
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if lv, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(lv)
	}
	return logger
}

// writeGithubOutput appends the run results to the GitHub Actions output
// file so the workflow can open a PR for the new data files.
func writeGithubOutput(path string, files []string, date time.Time) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "filepath=%s\n", strings.Join(files, ","))
	fmt.Fprintf(f, "date=%s\n", date.Format("2006-01-02"))
	fmt.Fprintf(f, "count=%d\n", len(files))
	return nil
}
