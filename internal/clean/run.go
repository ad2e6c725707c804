// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/pdiddy/corpus-engine/internal/report"
	"github.com/pdiddy/corpus-engine/internal/script"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

// ErrInputNotFound is returned by Run when the input directory is missing.
var ErrInputNotFound = errors.New("input directory not found")

// Run is the batch entry point. It rejects setup problems (invalid
// configuration, unknown categories, a missing input directory,
// unwritable output locations) before touching any file, then runs
// CleanBatch and writes the CSV report and optional summary.
//
// Individual file failures are reported in the result, not as an error.
// If ctx is cancelled the reports still cover every file that finished,
// and the context error is returned alongside the result.
func Run(ctx context.Context, fs afero.Fs, inputDir string, cfg types.CleaningConfig, w io.Writer) (types.BatchResult, error) {
	if err := Setup(fs, inputDir, cfg); err != nil {
		return types.BatchResult{}, err
	}

	result, err := CleanBatch(ctx, fs, inputDir, cfg, w)
	if err != nil {
		return result, err
	}

	if cfg.CSVPath != "" {
		if err := report.WriteReport(fs, cfg.CSVPath, result, cfg); err != nil {
			return result, fmt.Errorf("writing report %s: %w", cfg.CSVPath, err)
		}
	}
	if cfg.SummaryPath != "" {
		if err := report.WriteSummary(fs, cfg.SummaryPath, result, cfg); err != nil {
			return result, fmt.Errorf("writing summary %s: %w", cfg.SummaryPath, err)
		}
	}

	if err := ctx.Err(); err != nil && result.Cancelled > 0 {
		return result, fmt.Errorf("run stopped with %d of %d files not dispatched: %w", result.Cancelled, result.Found, err)
	}
	return result, nil
}

// Setup validates cfg and the filesystem locations a run will use.
func Setup(fs afero.Fs, inputDir string, cfg types.CleaningConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := script.ParseCategories(cfg.Categories); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := CheckEncoding(cfg.InputEncoding); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ok, err := afero.DirExists(fs, inputDir)
	if err != nil {
		return fmt.Errorf("checking input directory %s: %w", inputDir, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrInputNotFound, inputDir)
	}

	if cfg.OutputDir != "" {
		if err := report.CheckWritableDir(fs, cfg.OutputDir); err != nil {
			return fmt.Errorf("output directory: %w", err)
		}
	}
	for _, p := range []string{cfg.CSVPath, cfg.SummaryPath} {
		if p == "" {
			continue
		}
		if err := report.CheckWritableDir(fs, filepath.Dir(p)); err != nil {
			return fmt.Errorf("report path %s: %w", p, err)
		}
	}
	return nil
}
