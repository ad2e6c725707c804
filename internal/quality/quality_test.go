// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/corpus-engine/internal/script"
)

func greekClassifier() *script.Classifier {
	return script.NewClassifier([]script.Category{script.Greek, script.Latin, script.Punctuation, script.Numbers})
}

func TestAnalyze(t *testing.T) {
	latin := script.NewClassifier([]script.Category{script.Latin})

	tests := []struct {
		name        string
		text        string
		c           *script.Classifier
		wantTotal   int
		wantKept    int
		wantCleaned string
		wantBadness float64
	}{
		{
			name:        "clean greek",
			text:        "Καλημέρα κόσμε!",
			c:           greekClassifier(),
			wantTotal:   15,
			wantKept:    15,
			wantCleaned: "Καλημέρα κόσμε!",
		},
		{
			name:        "drops cyrillic",
			text:        "abc ЖЖ",
			c:           latin,
			wantTotal:   6,
			wantKept:    4,
			wantCleaned: "abc ",
			wantBadness: 2.0 / 6.0,
		},
		{
			name:        "keeps newlines",
			text:        "ЖЖ\n\nab\r\nЖ",
			c:           latin,
			wantTotal:   9,
			wantKept:    6,
			wantCleaned: "\n\nab\r\n",
			wantBadness: 1.0 / 3.0,
		},
		{
			name:        "combining marks dropped by default",
			text:        "e\u0301",
			c:           latin,
			wantTotal:   2,
			wantKept:    1,
			wantCleaned: "e",
			wantBadness: 0.5,
		},
		{
			name:        "everything dropped",
			text:        "ЖЖЖ",
			c:           latin,
			wantTotal:   3,
			wantKept:    0,
			wantCleaned: "",
			wantBadness: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Analyze(tt.text, tt.c, Options{})
			assert.Equal(t, tt.wantTotal, res.Total)
			assert.Equal(t, tt.wantKept, res.Kept)
			assert.Equal(t, tt.wantTotal-tt.wantKept, res.Dropped())
			assert.Equal(t, tt.wantCleaned, res.Cleaned)
			assert.InDelta(t, tt.wantBadness, res.Badness(), 1e-12)
		})
	}
}

func TestAnalyze_EmptyDocument(t *testing.T) {
	c := greekClassifier()
	res := Analyze("", c, Options{MarkMissing: true})

	assert.Zero(t, res.Total)
	assert.Zero(t, res.Badness())
	assert.Empty(t, res.Cleaned)
	for _, cat := range c.Tracked() {
		assert.Zero(t, res.Percentage(cat), cat.String())
	}
	require.Len(t, res.Counts(), len(c.Tracked()))
}

func TestAnalyze_CountsSumToTotal(t *testing.T) {
	docs := []string{
		"",
		"plain ascii text",
		"Άρθρο 1. Ο νόμος 4412/2016 ισχύει — ❶ ★ ж\n| a | b |\n",
		"glyph<c=3,font=/F1> ἀρχὴ\u200b\u0301\t\v\f\r\n€ § ©",
		strings.Repeat("ΑΒΓ abc 123 ЖЖЖ\n", 50),
	}
	classifiers := map[string]*script.Classifier{
		"greek":    greekClassifier(),
		"latin":    script.NewClassifier([]script.Category{script.Latin}),
		"nothing":  script.NewClassifier(nil),
		"extended": script.NewClassifier(script.WithBase([]script.Category{script.GreekExtended, script.Combining})),
	}

	for name, c := range classifiers {
		for _, doc := range docs {
			res := Analyze(doc, c, Options{MarkMissing: true})
			sum := 0
			for _, cc := range res.Counts() {
				sum += cc.Count
			}
			assert.Equal(t, res.Total, sum, "%s: %q", name, doc)

			pct := 0.0
			for _, cat := range c.Tracked() {
				pct += res.Percentage(cat)
			}
			if res.Total > 0 {
				assert.InDelta(t, 100, pct, 1e-9, "%s: %q", name, doc)
			}
		}
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	docs := []string{
		"Άρθρο 1 — Ο νόμος ж ж ж\n\n| α | β |\n|---|---|\n| 1 | ❶ |\n",
		"ЖЖЖЖЖЖ\nκείμενο ЖЖЖЖЖ τέλος\r\nok",
		"already <!-- text-missing -->\n",
	}
	c := greekClassifier()

	for _, mark := range []bool{false, true} {
		for _, doc := range docs {
			once := Analyze(doc, c, Options{MarkMissing: mark})
			twice := Analyze(once.Cleaned, c, Options{MarkMissing: mark})
			assert.Equal(t, once.Cleaned, twice.Cleaned)
			assert.Zero(t, twice.Dropped())
			assert.Zero(t, twice.MarkersAdded)
		}
	}
}

func TestAnalyze_PreservesLineStructure(t *testing.T) {
	doc := "# Τίτλος\n\nЖЖЖ\n| a | b |\r\n|---|---|\n\n"
	res := Analyze(doc, script.NewClassifier(nil), Options{})

	assert.Equal(t, strings.Count(doc, "\n"), strings.Count(res.Cleaned, "\n"))
	assert.Equal(t, strings.Count(doc, "\r"), strings.Count(res.Cleaned, "\r"))
}

func TestAnalyze_MissingMarkers(t *testing.T) {
	c := script.NewClassifier([]script.Category{script.Latin})

	tests := []struct {
		name        string
		text        string
		wantCleaned string
		wantMarkers int
	}{
		{
			name:        "line with five dropped characters",
			text:        "Title ЖЖЖЖЖ\nok",
			wantCleaned: "Title " + MissingMarker + "\nok",
			wantMarkers: 1,
		},
		{
			name:        "line emptied by cleaning",
			text:        "ЖЖЖЖЖЖ\n",
			wantCleaned: MissingMarker + "\n",
			wantMarkers: 1,
		},
		{
			name:        "below threshold",
			text:        "abЖЖЖЖ",
			wantCleaned: "ab",
		},
		{
			name:        "crlf kept after marker",
			text:        "x ЖЖЖЖЖ\r\ny",
			wantCleaned: "x " + MissingMarker + "\r\ny",
			wantMarkers: 1,
		},
		{
			name:        "existing marker passes through",
			text:        "ab " + MissingMarker + " ЖЖЖЖЖ",
			wantCleaned: "ab " + MissingMarker + " ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Analyze(tt.text, c, Options{MarkMissing: true})
			assert.Equal(t, tt.wantCleaned, res.Cleaned)
			assert.Equal(t, tt.wantMarkers, res.MarkersAdded)
		})
	}
}

func TestAnalyze_MarkerExcludedFromMetrics(t *testing.T) {
	c := script.NewClassifier([]script.Category{script.Greek})
	res := Analyze("α"+MissingMarker, c, Options{})

	assert.Equal(t, 1, res.Total)
	assert.Zero(t, res.Badness())
	assert.Equal(t, "α"+MissingMarker, res.Cleaned)
}

func TestCountGlyphTags(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"glyph<c=3,font=/F1>", 1},
		{"a glyph<c=3,font=/AAAAAB+Times> b glyph&lt;c=12,font=/F2&gt; c", 2},
		{"noglyph<c=3,font=/F1>", 0},
		{"glyph<c=x,font=/F1>", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CountGlyphTags(tt.text), tt.text)
	}
}
