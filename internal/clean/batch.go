// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clean runs the cleaning pipeline over a directory of documents:
// discovery, a bounded worker pool, and reassembly of per-file results in
// a deterministic order.
package clean

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"

	"github.com/pdiddy/corpus-engine/internal/script"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

// Workers resolves a configured pool size; 0 or less means one worker per
// available CPU.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// CleanBatch processes every matching file under root with a pool of
// cfg.Workers goroutines, printing per-file status to w. Results land in
// an indexed slot per file, so the returned BatchResult follows discovery
// order whatever order workers finish in.
//
// A missing or empty root yields an empty BatchResult. Once ctx is done no
// further files are dispatched; files already running finish and the rest
// are counted as cancelled. Per-file failures are recorded, never returned.
func CleanBatch(ctx context.Context, fs afero.Fs, root string, cfg types.CleaningConfig, w io.Writer) (types.BatchResult, error) {
	if w == nil {
		w = io.Discard
	}
	log := cfg.LoggerOrDefault()

	cats, err := script.ParseCategories(cfg.Categories)
	if err != nil {
		return types.BatchResult{}, err
	}
	classifier := script.NewClassifier(cats)

	files, err := Discover(fs, root, cfg.ExtensionsOrDefault())
	if err != nil {
		return types.BatchResult{}, fmt.Errorf("discovering files in %s: %w", root, err)
	}
	files = excludeDir(files, root, cfg.OutputDir)

	result := types.BatchResult{Found: len(files), Files: []types.FileMetrics{}}
	if len(files) == 0 {
		log.Info("no matching files", "root", root, "extensions", cfg.ExtensionsOrDefault())
		return result, nil
	}

	workers := Workers(cfg.Workers)
	log.Info("batch started", "root", root, "files", len(files), "workers", workers)

	verb := "analyzed"
	if cfg.OutputDir != "" {
		verb = "cleaned"
	}

	slots := make([]Outcome, len(files))
	ran := make([]bool, len(files))
	var mu sync.Mutex
	p := pool.New().WithMaxGoroutines(workers)
	for i, rel := range files {
		if ctx.Err() != nil {
			break
		}
		// p.Go blocks while the pool is full, so ctx may be done by the
		// time this file gets a worker.
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			ran[i] = true
			out := CleanFile(fs, root, rel, cfg, classifier)
			slots[i] = out

			mu.Lock()
			defer mu.Unlock()
			if out.Err != nil {
				fmt.Fprintf(w, "failed:  %s (%v)\n", rel, out.Err)
				log.Warn("file failed", "file", rel, "error", out.Err)
				return
			}
			fmt.Fprintf(w, "%s: %s\n", verb, rel)
			log.Debug("file done", "file", rel,
				"chars", out.Metrics.TotalChars,
				"badness", out.Metrics.Badness,
				"tables", out.Metrics.TotalTables,
				"malformed", out.Metrics.MalformedTables)
		})
	}
	p.Wait()

	dispatched := 0
	for i, out := range slots {
		if !ran[i] {
			continue
		}
		dispatched++
		if out.Err != nil {
			result.Failures = append(result.Failures, types.FileFailure{File: out.Metrics.File, Error: out.Err.Error()})
			continue
		}
		result.Files = append(result.Files, out.Metrics)
	}
	result.Cancelled = len(files) - dispatched

	if result.Cancelled > 0 {
		log.Warn("batch cancelled", "dispatched", dispatched, "cancelled", result.Cancelled, "error", ctx.Err())
	}
	fmt.Fprintf(w, "\nBatch summary: %d processed, %d failed, %d cancelled (total: %d)\n",
		result.Processed(), result.Failed(), result.Cancelled, result.Total())
	log.Info("batch finished", "processed", result.Processed(), "failed", result.Failed(), "cancelled", result.Cancelled)

	return result, nil
}
