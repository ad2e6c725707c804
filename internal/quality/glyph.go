// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import "regexp"

// PDF extractors emit glyph<c=N,font=/Name> when a glyph has no Unicode
// mapping. Some pipelines HTML-escape the angle brackets.
var (
	glyphRaw  = regexp.MustCompile(`(?:^|\s)glyph<c=\d+,font=/[^>]+>(?:\s|$)`)
	glyphHTML = regexp.MustCompile(`(?:^|\s)glyph&lt;c=\d+,font=/[^>]+&gt;(?:\s|$)`)
)

// CountGlyphTags counts unmapped-glyph artifacts in text, raw and escaped.
// A tag must stand on its own, separated by whitespace from its neighbours.
func CountGlyphTags(text string) int {
	return len(glyphRaw.FindAllStringIndex(text, -1)) + len(glyphHTML.FindAllStringIndex(text, -1))
}
