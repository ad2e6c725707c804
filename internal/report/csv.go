// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report serializes batch results. Every writer emits rows in
// BatchResult order with fixed numeric precision, so an unchanged input
// reproduces the same bytes.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/afero"

	"github.com/pdiddy/corpus-engine/internal/script"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

const (
	badnessPrecision    = 3
	percentagePrecision = 2
)

// Header returns the analysis CSV header for cfg.
func Header(cfg types.CleaningConfig) ([]string, error) {
	cats, err := script.ParseCategories(cfg.Categories)
	if err != nil {
		return nil, err
	}
	suffix := "_" + string(cfg.MetricOrDefault())

	header := []string{"file", "total_chars", "badness_score"}
	for _, c := range cats {
		header = append(header, c.String()+suffix)
	}
	return append(header, "total_tables", "malformed_tables"), nil
}

// WriteCSV writes the analysis report: one row per processed file with its
// badness, one column per configured category and the table counters.
// Files that failed are not listed.
func WriteCSV(w io.Writer, result types.BatchResult, cfg types.CleaningConfig) error {
	header, err := Header(cfg)
	if err != nil {
		return err
	}
	cats, _ := script.ParseCategories(cfg.Categories)
	metric := cfg.MetricOrDefault()

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, 0, len(header))
	for _, m := range result.Files {
		row = row[:0]
		row = append(row, m.File, strconv.Itoa(m.TotalChars), formatFloat(m.Badness, badnessPrecision))
		for _, c := range cats {
			if metric == types.MetricCount {
				row = append(row, strconv.Itoa(m.Count(c.String())))
			} else {
				row = append(row, formatFloat(m.Percentage(c.String()), percentagePrecision))
			}
		}
		row = append(row, strconv.Itoa(m.TotalTables), strconv.Itoa(m.MalformedTables))
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTableSummaryCSV writes file,total_tables,malformed_tables rows.
func WriteTableSummaryCSV(w io.Writer, result types.BatchResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"file", "total_tables", "malformed_tables"}); err != nil {
		return err
	}
	for _, m := range result.Files {
		if err := cw.Write([]string{m.File, strconv.Itoa(m.TotalTables), strconv.Itoa(m.MalformedTables)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReport renders the report kind selected by cfg and writes it to path
// atomically.
func WriteReport(fs afero.Fs, path string, result types.BatchResult, cfg types.CleaningConfig) error {
	var buf bytes.Buffer
	var err error
	switch cfg.ReportOrDefault() {
	case types.ReportTables:
		err = WriteTableSummaryCSV(&buf, result)
	default:
		err = WriteCSV(&buf, result, cfg)
	}
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return WriteFileAtomic(fs, path, buf.Bytes())
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
