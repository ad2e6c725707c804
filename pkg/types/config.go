// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"log/slog"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrNothingToDo is returned by Validate when a run requests neither a CSV
// report nor cleaned output files.
var ErrNothingToDo = errors.New("nothing to do: set a CSV path, an output directory, or both")

// CategoryMetric selects how per-category columns are reported.
type CategoryMetric string

const (
	MetricPercentage CategoryMetric = "percentage"
	MetricCount      CategoryMetric = "count"
)

// TableSource selects which text the table validator scans.
type TableSource string

const (
	TablesCleaned  TableSource = "cleaned"
	TablesOriginal TableSource = "original"
)

// ReportKind selects the CSV schema written for a batch.
type ReportKind string

const (
	// ReportAnalysis is the full quality report: chars, badness, categories, tables.
	ReportAnalysis ReportKind = "analysis"

	// ReportTables is the table summary: file, total_tables, malformed_tables.
	ReportTables ReportKind = "tables"
)

// DefaultExtensions is the extension filter used when none is configured.
var DefaultExtensions = []string{".md"}

var extensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9_-]+$`)

// CleaningConfig holds the settings for one cleaning run. It is built once
// per invocation and passed by value afterwards.
type CleaningConfig struct {
	// Categories lists the allowed category names in report order
	// (e.g. "greek", "latin", "punctuation").
	Categories []string `json:"categories" yaml:"categories"`

	// Workers is the pool size. 0 uses every available CPU.
	Workers int `json:"workers" yaml:"workers"`

	// OutputDir receives cleaned files mirroring the input tree. Empty disables cleaned output.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// CSVPath is the report destination. Empty disables the report.
	CSVPath string `json:"csv_path,omitempty" yaml:"csv_path,omitempty"`

	// SummaryPath optionally receives a YAML batch summary.
	SummaryPath string `json:"summary_path,omitempty" yaml:"summary_path,omitempty"`

	// Metric selects percentage (default) or count columns per category.
	Metric CategoryMetric `json:"metric,omitempty" yaml:"metric,omitempty"`

	// TableSource selects cleaned (default) or original text for table validation.
	TableSource TableSource `json:"table_source,omitempty" yaml:"table_source,omitempty"`

	// Report selects the CSV schema (default analysis).
	Report ReportKind `json:"report,omitempty" yaml:"report,omitempty"`

	// Extensions filters input files (default ".md").
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// InputEncoding names the character encoding of input files (default utf-8).
	InputEncoding string `json:"input_encoding,omitempty" yaml:"input_encoding,omitempty"`

	// MarkMissing appends a text-missing marker to lines that lost five or
	// more characters during cleaning.
	MarkMissing bool `json:"mark_missing" yaml:"mark_missing"`

	// Normalize applies Unicode NFC before classification.
	Normalize bool `json:"normalize" yaml:"normalize"`

	// SkipFrontmatter excludes a leading YAML frontmatter block from metrics
	// and copies it unchanged into the cleaned file.
	SkipFrontmatter bool `json:"skip_frontmatter" yaml:"skip_frontmatter"`

	// Logger receives structured diagnostics. Nil uses slog.Default().
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// LoggerOrDefault returns the configured logger or slog.Default().
func (c CleaningConfig) LoggerOrDefault() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// MetricOrDefault returns the configured metric, defaulting to percentage.
func (c CleaningConfig) MetricOrDefault() CategoryMetric {
	if c.Metric == "" {
		return MetricPercentage
	}
	return c.Metric
}

// TableSourceOrDefault returns the configured table source, defaulting to cleaned text.
func (c CleaningConfig) TableSourceOrDefault() TableSource {
	if c.TableSource == "" {
		return TablesCleaned
	}
	return c.TableSource
}

// ReportOrDefault returns the configured report kind, defaulting to analysis.
func (c CleaningConfig) ReportOrDefault() ReportKind {
	if c.Report == "" {
		return ReportAnalysis
	}
	return c.Report
}

// ExtensionsOrDefault returns the configured extension filter or DefaultExtensions.
func (c CleaningConfig) ExtensionsOrDefault() []string {
	if len(c.Extensions) == 0 {
		return DefaultExtensions
	}
	return c.Extensions
}

// Validate rejects configurations that cannot produce any output or carry
// out-of-range values. Category names are resolved separately by the
// classifier, which owns the list of known categories.
func (c CleaningConfig) Validate() error {
	if c.OutputDir == "" && c.CSVPath == "" {
		return ErrNothingToDo
	}
	return validation.ValidateStruct(&c,
		validation.Field(&c.Categories,
			validation.When(c.ReportOrDefault() == ReportAnalysis, validation.Required.Error("at least one category is required")),
		),
		validation.Field(&c.Workers, validation.Min(0)),
		validation.Field(&c.Metric, validation.In(MetricPercentage, MetricCount)),
		validation.Field(&c.TableSource, validation.In(TablesCleaned, TablesOriginal)),
		validation.Field(&c.Report, validation.In(ReportAnalysis, ReportTables)),
		validation.Field(&c.Extensions, validation.Each(validation.Match(extensionPattern))),
	)
}
