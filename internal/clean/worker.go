// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"fmt"
	"path/filepath"

	"github.com/sourcegraph/conc/panics"
	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/corpus-engine/internal/quality"
	"github.com/pdiddy/corpus-engine/internal/report"
	"github.com/pdiddy/corpus-engine/internal/script"
	"github.com/pdiddy/corpus-engine/internal/tables"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

// Outcome is the result of processing one file. Exactly one of Metrics or
// Err is meaningful; Metrics.File is always set.
type Outcome struct {
	Metrics types.FileMetrics
	Err     error
}

// CleanFile reads root/rel, scores it, counts its tables and, when
// cfg.OutputDir is set, writes the cleaned text to the same relative path
// under it. Every fault, a panic included, is returned in the Outcome.
func CleanFile(fs afero.Fs, root, rel string, cfg types.CleaningConfig, c *script.Classifier) (out Outcome) {
	var pc panics.Catcher
	pc.Try(func() {
		out = cleanFile(fs, root, rel, cfg, c)
	})
	if r := pc.Recovered(); r != nil {
		out = Outcome{
			Metrics: types.FileMetrics{File: rel},
			Err:     fmt.Errorf("processing %s: %w", rel, r.AsError()),
		}
	}
	return out
}

func cleanFile(fs afero.Fs, root, rel string, cfg types.CleaningConfig, c *script.Classifier) Outcome {
	fail := func(err error) Outcome {
		return Outcome{Metrics: types.FileMetrics{File: rel}, Err: err}
	}

	raw, err := afero.ReadFile(fs, filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return fail(fmt.Errorf("reading %s: %w", rel, err))
	}

	text, err := decode(raw, cfg.InputEncoding)
	if err != nil {
		return fail(fmt.Errorf("decoding %s: %w", rel, err))
	}

	prefix, body := "", text
	if cfg.SkipFrontmatter {
		prefix, body = splitFrontmatter(text)
	}
	if cfg.Normalize {
		body = norm.NFC.String(body)
	}

	res := quality.Analyze(body, c, quality.Options{MarkMissing: cfg.MarkMissing})

	tableText := res.Cleaned
	if cfg.TableSourceOrDefault() == types.TablesOriginal {
		tableText = body
	}
	ta := tables.Analyze(tableText)

	m := types.FileMetrics{
		File:            rel,
		TotalChars:      res.Total,
		Counts:          res.Counts(),
		Badness:         res.Badness(),
		CleanedChars:    res.CleanedLen(),
		TotalTables:     ta.Total(),
		MalformedTables: ta.Malformed(),
		GlyphTags:       quality.CountGlyphTags(body),
		MarkersAdded:    res.MarkersAdded,
	}

	if cfg.OutputDir != "" {
		dst := filepath.Join(cfg.OutputDir, filepath.FromSlash(rel))
		if err := report.WriteFileAtomic(fs, dst, []byte(prefix+res.Cleaned)); err != nil {
			return fail(fmt.Errorf("writing cleaned %s: %w", rel, err))
		}
	}

	return Outcome{Metrics: m}
}
