// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package script classifies characters into script and structural
// categories and decides which ones survive cleaning.
//
// Every rune maps to exactly one Category. Resolve is the single place
// where that mapping is decided; the category tables below are the only
// data it consults.
package script

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Category is a closed enumeration of character classes.
type Category uint8

const (
	Other Category = iota
	Whitespace
	Latin
	Greek
	GreekExtended
	French
	Spanish
	Punctuation
	Numbers
	CommonSymbols
	Combining
	Format

	numCategories
)

var categoryNames = [numCategories]string{
	Other:         "other",
	Whitespace:    "whitespace",
	Latin:         "latin",
	Greek:         "greek",
	GreekExtended: "greek_extended",
	French:        "french",
	Spanish:       "spanish",
	Punctuation:   "punctuation",
	Numbers:       "numbers",
	CommonSymbols: "common_symbols",
	Combining:     "combining",
	Format:        "format",
}

// String returns the canonical category name used in configuration and reports.
func (c Category) String() string {
	if c >= numCategories {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// resolutionOrder is the precedence used when a rune belongs to more than
// one allowed set (é is both French and Spanish). Whitespace and Other are
// handled outside the loop.
var resolutionOrder = []Category{
	Latin,
	Greek,
	GreekExtended,
	French,
	Spanish,
	Punctuation,
	Numbers,
	CommonSymbols,
	Combining,
	Format,
}

const (
	frenchChars       = "àâçéèêëîïôùûüÿæœÀÂÇÉÈÊËÎÏÔÙÛÜŸÆŒ«»"
	spanishChars      = "áéíóúüñÁÉÍÓÚÜÑ¿¡"
	punctuationChars  = ".,;:!?()[]{}'\"&@#$%^*_-+=|\\<>/~`"
	commonSymbolChars = "€£¥©®™°§"
	latinChars        = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var tables = [numCategories]*unicode.RangeTable{
	Whitespace: rangetable.New(' ', '\t', '\n', '\r', '\v', '\f'),
	Latin:      rangetable.New([]rune(latinChars)...),
	// Greek and Coptic block minus the Coptic letters U+03E2-U+03EF.
	Greek: {R16: []unicode.Range16{
		{Lo: 0x0370, Hi: 0x03E1, Stride: 1},
		{Lo: 0x03F0, Hi: 0x03FF, Stride: 1},
	}},
	GreekExtended: {R16: []unicode.Range16{
		{Lo: 0x1F00, Hi: 0x1FFE, Stride: 1},
	}},
	French:        rangetable.New([]rune(frenchChars)...),
	Spanish:       rangetable.New([]rune(spanishChars)...),
	Punctuation:   rangetable.New([]rune(punctuationChars)...),
	Numbers:       rangetable.New([]rune("0123456789")...),
	CommonSymbols: rangetable.New([]rune(commonSymbolChars)...),
	Combining:     rangetable.Merge(unicode.Mn, unicode.Me),
	// Zero-width and bidi controls, soft hyphen, BOM.
	Format:        unicode.Cf,
}

// Set is a bitmask of categories.
type Set uint16

// NewSet returns a set containing cats.
func NewSet(cats ...Category) Set {
	var s Set
	for _, c := range cats {
		s |= 1 << c
	}
	return s
}

// Has reports whether c is in the set.
func (s Set) Has(c Category) bool {
	return s&(1<<c) != 0
}

// Resolve maps r to its category given the allowed set. Whitespace is
// structural and always resolves to Whitespace; any rune that is not in an
// allowed category resolves to Other.
func Resolve(r rune, allowed Set) Category {
	if unicode.Is(tables[Whitespace], r) {
		return Whitespace
	}
	for _, c := range resolutionOrder {
		if allowed.Has(c) && unicode.Is(tables[c], r) {
			return c
		}
	}
	return Other
}

// BaseCategories are added by the wrappers unless told otherwise.
var BaseCategories = []Category{Punctuation, Numbers, CommonSymbols}

var aliases = map[string]Category{
	"lat":       Latin,
	"en":        Latin,
	"grc":       Greek,
	"gre":       Greek,
	"el":        Greek,
	"polytonic": GreekExtended,
	"fra":       French,
	"fr":        French,
	"spa":       Spanish,
	"es":        Spanish,
	"punct":     Punctuation,
	"num":       Numbers,
	"digits":    Numbers,
	"sym":       CommonSymbols,
	"symbols":   CommonSymbols,
	"marks":     Combining,
	"zw":        Format,
	"zwsp":      Format,
}

// ParseCategory resolves a canonical name or alias. Other cannot be configured.
func ParseCategory(name string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := aliases[key]; ok {
		return c, nil
	}
	for c := Whitespace; c < numCategories; c++ {
		if categoryNames[c] == key {
			return c, nil
		}
	}
	return Other, fmt.Errorf("unknown category %q", name)
}

// ParseCategories resolves names in order, dropping duplicates.
func ParseCategories(names []string) ([]Category, error) {
	seen := make(map[Category]bool, len(names))
	out := make([]Category, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		c, err := ParseCategory(n)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}

// WithBase appends the base categories missing from cats.
func WithBase(cats []Category) []Category {
	out := append([]Category(nil), cats...)
	set := NewSet(cats...)
	for _, b := range BaseCategories {
		if !set.Has(b) {
			out = append(out, b)
		}
	}
	return out
}

// Info describes a configurable category.
type Info struct {
	Name    string
	Aliases []string
}

// Available lists every configurable category in resolution order, with
// whitespace last.
func Available() []Info {
	byCat := make(map[Category][]string)
	for a, c := range aliases {
		byCat[c] = append(byCat[c], a)
	}
	cats := append(append([]Category(nil), resolutionOrder...), Whitespace)
	out := make([]Info, 0, len(cats))
	for _, c := range cats {
		al := byCat[c]
		sort.Strings(al)
		out = append(out, Info{Name: c.String(), Aliases: al})
	}
	return out
}
