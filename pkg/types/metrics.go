// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CategoryCount is the number of characters a document has in one category.
type CategoryCount struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}

// FileMetrics holds the measurements for one input file.
type FileMetrics struct {
	// File is the path relative to the input directory, slash-separated.
	File string `json:"file" yaml:"file"`

	// TotalChars is the number of characters classified.
	TotalChars int `json:"total_chars" yaml:"total_chars"`

	// Counts holds one entry per configured category in configured order,
	// followed by whitespace (when not configured) and other. The counts
	// always sum to TotalChars.
	Counts []CategoryCount `json:"counts" yaml:"counts"`

	// Badness is the fraction of characters outside the allowed categories.
	Badness float64 `json:"badness" yaml:"badness"`

	// CleanedChars is the character length of the cleaned text.
	CleanedChars int `json:"cleaned_chars" yaml:"cleaned_chars"`

	TotalTables     int `json:"total_tables" yaml:"total_tables"`
	MalformedTables int `json:"malformed_tables" yaml:"malformed_tables"`

	// GlyphTags counts glyph<c=...> extraction artifacts in the original text.
	GlyphTags int `json:"glyph_tags" yaml:"glyph_tags"`

	// MarkersAdded counts text-missing markers inserted during cleaning.
	MarkersAdded int `json:"markers_added" yaml:"markers_added"`
}

// Count returns the character count for category, or 0 if it is not tracked.
func (m FileMetrics) Count(category string) int {
	for _, c := range m.Counts {
		if c.Category == category {
			return c.Count
		}
	}
	return 0
}

// Percentage returns the share of category in the document, 0-100.
// Empty documents report 0.
func (m FileMetrics) Percentage(category string) float64 {
	if m.TotalChars == 0 {
		return 0
	}
	return float64(m.Count(category)) / float64(m.TotalChars) * 100
}

// FileFailure records a file that could not be processed.
type FileFailure struct {
	File  string `json:"file" yaml:"file"`
	Error string `json:"error" yaml:"error"`
}

// BatchResult is the outcome of a batch run. Files and Failures are in
// enumeration order, independent of which worker finished first.
type BatchResult struct {
	Files    []FileMetrics `json:"files" yaml:"files"`
	Failures []FileFailure `json:"failures,omitempty" yaml:"failures,omitempty"`

	// Found is the number of matching files enumerated.
	Found int `json:"found" yaml:"found"`

	// Cancelled counts files never dispatched because the run was stopped.
	Cancelled int `json:"cancelled" yaml:"cancelled"`
}

// Processed returns the number of files that produced metrics.
func (r BatchResult) Processed() int {
	return len(r.Files)
}

// Failed returns the number of files that errored.
func (r BatchResult) Failed() int {
	return len(r.Failures)
}

// Total returns the number of files accounted for.
func (r BatchResult) Total() int {
	return r.Processed() + r.Failed() + r.Cancelled
}

// HasFailures reports whether any file failed.
func (r BatchResult) HasFailures() bool {
	return len(r.Failures) > 0
}

// TableRecord describes one detected table block. It is scoped to a single
// file and only its counters reach FileMetrics.
type TableRecord struct {
	// StartLine is the 1-based line of the header (or orphan separator).
	StartLine int `json:"start_line" yaml:"start_line"`

	// HeaderColumns is the header's column count, 0 for an orphan separator.
	HeaderColumns int `json:"header_columns" yaml:"header_columns"`

	// SeparatorColumns is the separator's column count, 0 when missing.
	SeparatorColumns int `json:"separator_columns" yaml:"separator_columns"`

	// RowColumns holds the column count of every data row in order.
	RowColumns []int `json:"row_columns" yaml:"row_columns"`

	Malformed bool `json:"malformed" yaml:"malformed"`
}

// TableIssue is a single structural problem found in a table.
type TableIssue struct {
	Line        int    `json:"line" yaml:"line"`
	Description string `json:"description" yaml:"description"`

	// Expected and Found are column counts; 0 when not applicable.
	Expected int `json:"expected,omitempty" yaml:"expected,omitempty"`
	Found    int `json:"found,omitempty" yaml:"found,omitempty"`
}
