// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tables

import "strings"

// split breaks text into lines, marks fenced code blocks and blanks out
// pipes that are not column delimiters.
func split(text string) []line {
	raw := strings.Split(text, "\n")
	out := make([]line, len(raw))

	var fence string
	for i, r := range raw {
		r = strings.TrimSuffix(r, "\r")
		if fence != "" {
			out[i] = line{text: r, fenced: true}
			if closesFence(r, fence) {
				fence = ""
			}
			continue
		}
		if f := openFence(r); f != "" {
			fence = f
			out[i] = line{text: r, fenced: true}
			continue
		}
		out[i] = line{text: maskCode(r)}
	}
	return out
}

// openFence returns the fence marker (``` or ~~~, possibly longer) that
// opens a code block on s, or "".
func openFence(s string) string {
	t := strings.TrimLeft(s, " ")
	if len(s)-len(t) > 3 || len(t) < 3 {
		return ""
	}
	ch := t[0]
	if ch != '`' && ch != '~' {
		return ""
	}
	n := 0
	for n < len(t) && t[n] == ch {
		n++
	}
	if n < 3 {
		return ""
	}
	// A backtick fence's info string cannot itself contain backticks.
	if ch == '`' && strings.ContainsRune(t[n:], '`') {
		return ""
	}
	return t[:n]
}

// closesFence reports whether s closes a block opened with fence.
func closesFence(s, fence string) bool {
	t := strings.TrimSpace(s)
	if len(t) < len(fence) {
		return false
	}
	return strings.Trim(t, fence[:1]) == ""
}

// maskCode replaces pipes inside inline code spans and escaped pipes with
// spaces. A backtick run opens a span only if a run of the same length
// closes it later on the line.
func maskCode(s string) string {
	if !strings.Contains(s, "|") {
		return s
	}
	b := []byte(s)
	for i := 0; i < len(b); {
		switch b[i] {
		case '\\':
			if i+1 < len(b) && b[i+1] == '|' {
				b[i+1] = ' '
			}
			i += 2
		case '`':
			n := run(b, i)
			end := closingRun(b, i+n, n)
			if end < 0 {
				i += n
				continue
			}
			for k := i + n; k < end; k++ {
				if b[k] == '|' {
					b[k] = ' '
				}
			}
			i = end + n
		default:
			i++
		}
	}
	return string(b)
}

// run returns the length of the backtick run starting at i.
func run(b []byte, i int) int {
	n := 0
	for i+n < len(b) && b[i+n] == '`' {
		n++
	}
	return n
}

// closingRun returns the start of the first backtick run of exactly n at or
// after from, or -1.
func closingRun(b []byte, from, n int) int {
	for k := from; k < len(b); {
		if b[k] != '`' {
			k++
			continue
		}
		m := run(b, k)
		if m == n {
			return k
		}
		k += m
	}
	return -1
}
