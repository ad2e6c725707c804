// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quality scores documents against an allowed character set and
// produces their cleaned text.
package quality

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/corpus-engine/internal/script"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

// MissingMarker is appended to lines that lost text during cleaning.
const MissingMarker = "<!-- text-missing -->"

// missingThreshold is the number of dropped non-whitespace characters on a
// single line that triggers a MissingMarker.
const missingThreshold = 5

// Options tunes Analyze.
type Options struct {
	// MarkMissing annotates lines that lost missingThreshold or more characters.
	MarkMissing bool
}

// Result is the outcome of analyzing one document.
type Result struct {
	// Total is the number of characters classified. Existing MissingMarker
	// text is passed through and not counted.
	Total int

	// Kept is the number of characters in allowed categories, whitespace included.
	Kept int

	// Cleaned is the document with dropped characters removed.
	Cleaned string

	// MarkersAdded counts the MissingMarker annotations inserted.
	MarkersAdded int

	tracked []script.Category
	counts  map[script.Category]int
}

// Dropped returns the number of characters removed.
func (r Result) Dropped() int {
	return r.Total - r.Kept
}

// Count returns the number of characters classified as cat.
func (r Result) Count(cat script.Category) int {
	return r.counts[cat]
}

// Badness is the fraction of characters outside the allowed categories.
// An empty document scores 0.
func (r Result) Badness() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Total-r.Kept) / float64(r.Total)
}

// Percentage returns cat's share of the document, 0-100. An empty document
// reports 0 for every category.
func (r Result) Percentage(cat script.Category) float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.counts[cat]) / float64(r.Total) * 100
}

// Counts returns one entry per tracked category in report order. The
// entries sum to Total.
func (r Result) Counts() []types.CategoryCount {
	out := make([]types.CategoryCount, 0, len(r.tracked))
	for _, c := range r.tracked {
		out = append(out, types.CategoryCount{Category: c.String(), Count: r.counts[c]})
	}
	return out
}

// Analyze classifies every character of text in a single pass, counting
// categories and building the cleaned text. Line boundaries are preserved
// because newlines are whitespace and whitespace is always kept.
func Analyze(text string, c *script.Classifier, opts Options) Result {
	res := Result{
		tracked: c.Tracked(),
		counts:  make(map[script.Category]int),
	}

	var b strings.Builder
	b.Grow(len(text))
	var buf []byte

	rest := text
	for {
		line, next, more := strings.Cut(rest, "\n")
		buf = res.cleanLine(buf[:0], line, c, opts)
		b.Write(buf)
		if !more {
			break
		}
		res.count(script.Whitespace, true)
		b.WriteByte('\n')
		rest = next
	}

	res.Cleaned = b.String()
	return res
}

// cleanLine appends the cleaned form of line (without its newline) to buf.
func (r *Result) cleanLine(buf []byte, line string, c *script.Classifier, opts Options) []byte {
	cr := strings.HasSuffix(line, "\r")
	if cr {
		line = line[:len(line)-1]
	}

	dropped := 0
	hadMarker := false
	rest := line
	for {
		before, after, found := strings.Cut(rest, MissingMarker)
		for _, ru := range before {
			cat, keep := c.Classify(ru)
			r.count(cat, keep)
			if keep {
				buf = utf8.AppendRune(buf, ru)
			} else {
				dropped++
			}
		}
		if !found {
			break
		}
		hadMarker = true
		buf = append(buf, MissingMarker...)
		rest = after
	}

	if opts.MarkMissing && !hadMarker && dropped >= missingThreshold {
		buf = bytes.TrimRight(buf, " \t")
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, MissingMarker...)
		r.MarkersAdded++
	}

	if cr {
		r.count(script.Whitespace, true)
		buf = append(buf, '\r')
	}
	return buf
}

func (r *Result) count(cat script.Category, keep bool) {
	r.Total++
	r.counts[cat]++
	if keep {
		r.Kept++
	}
}

// CleanedLen returns the character length of the cleaned text.
func (r Result) CleanedLen() int {
	return utf8.RuneCountInString(r.Cleaned)
}
