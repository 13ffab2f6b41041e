// Package output handles file naming and writing for scraped pages.
// Each page lands at <output_dir>/<prefecture>/<city>/<YYYY-MM-DD>.ext,
// so every (location, date) pair owns an independent file and the
// Markdown tree doubles as the durable store.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write places data under the prefecture/city folder for the given date.
// Unmapped locations still get a folder (the sentinel name), so a run
// never loses output to an unknown code.
func (w *Writer) Write(prefecture, city string, date time.Time, data []byte, ext string) (string, error) {
	dir := filepath.Join(w.OutputDir, prefecture, city)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, date.Format("2006-01-02")+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}
