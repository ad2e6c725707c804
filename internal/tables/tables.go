// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tables finds markdown pipe tables and checks that every row
// agrees with its header on the number of columns.
package tables

import (
	"strings"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

// Issue descriptions.
const (
	IssueSeparatorMismatch = "Table header and separator column count mismatch"
	IssueRowMismatch       = "Table row has inconsistent column count"
	IssueMissingSeparator  = "Table header without separator row"
	IssueOrphanSeparator   = "Table separator without header row"
)

// Analysis is the structural report for one document.
type Analysis struct {
	Tables []types.TableRecord `json:"tables"`
	Issues []types.TableIssue  `json:"issues"`
}

// Total returns the number of table blocks detected.
func (a Analysis) Total() int {
	return len(a.Tables)
}

// Malformed returns the number of tables with at least one issue.
func (a Analysis) Malformed() int {
	n := 0
	for _, t := range a.Tables {
		if t.Malformed {
			n++
		}
	}
	return n
}

// line is one input line after code masking.
type line struct {
	text   string // masked; pipes inside code are blanked
	fenced bool   // inside or delimiting a fenced code block
}

func (l line) isRow() bool {
	return !l.fenced && strings.Contains(l.text, "|")
}

// rowLike reports whether the line opens with a delimiter pipe, the shape
// of a table row even without a separator under it.
func (l line) rowLike() bool {
	return l.isRow() && strings.HasPrefix(strings.TrimSpace(l.text), "|")
}

// Analyze scans text line by line and reports every table block it finds.
// Lines in fenced code blocks are ignored, and pipes inside inline code
// spans or escaped as \| are not column delimiters.
func Analyze(text string) Analysis {
	lines := split(text)
	a := Analysis{Tables: []types.TableRecord{}, Issues: []types.TableIssue{}}

	for i := 0; i < len(lines); {
		cur := lines[i]
		if !cur.isRow() {
			i++
			continue
		}

		if isSeparator(cur.text) {
			i = a.orphan(lines, i)
			continue
		}

		if i+1 < len(lines) && lines[i+1].isRow() && isSeparator(lines[i+1].text) {
			i = a.table(lines, i)
			continue
		}

		if cur.rowLike() && i+1 < len(lines) && lines[i+1].rowLike() {
			i = a.headless(lines, i)
			continue
		}

		i++
	}
	return a
}

// table records a header, its separator at i+1 and the data rows after it.
func (a *Analysis) table(lines []line, i int) int {
	rec := types.TableRecord{
		StartLine:        i + 1,
		HeaderColumns:    columns(lines[i].text),
		SeparatorColumns: columns(lines[i+1].text),
		RowColumns:       []int{},
	}
	if rec.SeparatorColumns != rec.HeaderColumns {
		rec.Malformed = true
		a.issue(i+2, IssueSeparatorMismatch, rec.HeaderColumns, rec.SeparatorColumns)
	}

	j := i + 2
	for ; j < len(lines) && lines[j].isRow(); j++ {
		n := columns(lines[j].text)
		rec.RowColumns = append(rec.RowColumns, n)
		if n != rec.HeaderColumns {
			rec.Malformed = true
			a.issue(j+1, IssueRowMismatch, rec.HeaderColumns, n)
		}
	}
	a.Tables = append(a.Tables, rec)
	return j
}

// headless records a run of row-like lines starting at i that never got a
// separator.
func (a *Analysis) headless(lines []line, i int) int {
	rec := types.TableRecord{
		StartLine:     i + 1,
		HeaderColumns: columns(lines[i].text),
		RowColumns:    []int{},
		Malformed:     true,
	}
	a.issue(i+1, IssueMissingSeparator, 0, 0)

	j := i + 1
	for ; j < len(lines) && lines[j].isRow(); j++ {
		rec.RowColumns = append(rec.RowColumns, columns(lines[j].text))
	}
	a.Tables = append(a.Tables, rec)
	return j
}

// orphan records a separator at i with no header above it, along with any
// rows under it.
func (a *Analysis) orphan(lines []line, i int) int {
	rec := types.TableRecord{
		StartLine:        i + 1,
		SeparatorColumns: columns(lines[i].text),
		RowColumns:       []int{},
		Malformed:        true,
	}
	a.issue(i+1, IssueOrphanSeparator, 0, 0)

	j := i + 1
	for ; j < len(lines) && lines[j].isRow(); j++ {
		rec.RowColumns = append(rec.RowColumns, columns(lines[j].text))
	}
	a.Tables = append(a.Tables, rec)
	return j
}

func (a *Analysis) issue(lineNo int, desc string, expected, found int) {
	a.Issues = append(a.Issues, types.TableIssue{
		Line:        lineNo,
		Description: desc,
		Expected:    expected,
		Found:       found,
	})
}

// columns counts the cells of a masked row: one leading and one trailing
// delimiter are stripped, then every remaining pipe separates two cells.
func columns(s string) int {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	return strings.Count(s, "|") + 1
}

// isSeparator reports whether s is a delimiter row such as |---|:-:|.
// A bare --- is a thematic break, so at least one pipe is required.
func isSeparator(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "|") {
		return false
	}
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	for _, cell := range strings.Split(s, "|") {
		cell = strings.TrimSpace(cell)
		cell = strings.TrimPrefix(cell, ":")
		cell = strings.TrimSuffix(cell, ":")
		if cell == "" || strings.Trim(cell, "-") != "" {
			return false
		}
	}
	return true
}
