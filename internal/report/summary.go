// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

// Summary is the YAML batch summary written next to the CSV.
type Summary struct {
	RunID       string              `yaml:"run_id"`
	GeneratedAt time.Time           `yaml:"generated_at"`
	Categories  []string            `yaml:"categories"`
	Workers     int                 `yaml:"workers"`
	Found       int                 `yaml:"found"`
	Processed   int                 `yaml:"processed"`
	Failed      int                 `yaml:"failed"`
	Cancelled   int                 `yaml:"cancelled"`
	Tables      TableTotals         `yaml:"tables"`
	Failures    []types.FileFailure `yaml:"failures,omitempty"`
}

// TableTotals aggregates table counters across the batch.
type TableTotals struct {
	Total     int `yaml:"total"`
	Malformed int `yaml:"malformed"`
}

// NewSummary builds a summary for result with a fresh run id.
func NewSummary(result types.BatchResult, cfg types.CleaningConfig, now time.Time) Summary {
	s := Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: now.UTC(),
		Categories:  cfg.Categories,
		Workers:     cfg.Workers,
		Found:       result.Found,
		Processed:   result.Processed(),
		Failed:      result.Failed(),
		Cancelled:   result.Cancelled,
		Failures:    result.Failures,
	}
	for _, m := range result.Files {
		s.Tables.Total += m.TotalTables
		s.Tables.Malformed += m.MalformedTables
	}
	return s
}

// WriteSummaryYAML encodes s as YAML to w.
func WriteSummaryYAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(s)
}

// WriteSummary builds the summary for result and writes it to path atomically.
func WriteSummary(fs afero.Fs, path string, result types.BatchResult, cfg types.CleaningConfig) error {
	var buf bytes.Buffer
	if err := WriteSummaryYAML(&buf, NewSummary(result, cfg, time.Now())); err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	return WriteFileAtomic(fs, path, buf.Bytes())
}
