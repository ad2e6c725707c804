// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package script

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		allowed []Category
		r       rune
		want    Category
		keep    bool
	}{
		{"ascii letter with latin", []Category{Latin}, 'a', Latin, true},
		{"ascii letter without latin", []Category{Greek}, 'a', Other, false},
		{"greek small alpha", []Category{Greek}, 'α', Greek, true},
		{"greek tonos", []Category{Greek}, 'ά', Greek, true},
		{"coptic letter excluded from greek", []Category{Greek}, 'ϣ', Other, false},
		{"polytonic needs greek_extended", []Category{Greek}, 'ἀ', Other, false},
		{"polytonic with greek_extended", []Category{Greek, GreekExtended}, 'ἀ', GreekExtended, true},
		{"shared accent prefers french", []Category{Spanish, French}, 'é', French, true},
		{"shared accent with spanish only", []Category{Spanish}, 'é', Spanish, true},
		{"spanish only char", []Category{French, Spanish}, 'ñ', Spanish, true},
		{"digit", []Category{Numbers}, '7', Numbers, true},
		{"pipe is punctuation", []Category{Punctuation}, '|', Punctuation, true},
		{"euro sign", []Category{CommonSymbols}, '€', CommonSymbols, true},
		{"newline always whitespace", nil, '\n', Whitespace, true},
		{"tab always whitespace", []Category{Latin}, '\t', Whitespace, true},
		{"no-break space is other", []Category{Latin, Punctuation}, '\u00a0', Other, false},
		{"combining acute dropped by default", []Category{Greek, Latin}, '\u0301', Other, false},
		{"combining acute when allow-listed", []Category{Greek, Combining}, '\u0301', Combining, true},
		{"zero width space dropped by default", []Category{Combining, Punctuation}, '\u200b', Other, false},
		{"zero width space when allow-listed", []Category{Latin, Format}, '\u200b', Format, true},
		{"soft hyphen is format", []Category{Latin, Punctuation, Format}, '\u00ad', Format, true},
		{"bom outside lookup table", []Category{Format}, '\ufeff', Format, true},
		{"cyrillic is other", []Category{Latin, Greek}, 'ж', Other, false},
		{"replacement char is other", []Category{Latin}, '\ufffd', Other, false},
		{"emoji outside lookup table", []Category{Latin}, '😀', Other, false},
		{"ideograph outside lookup table", []Category{Latin}, '漢', Other, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(tt.allowed)
			got, keep := c.Classify(tt.r)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.keep, keep)
		})
	}
}

// Every rune gets exactly one tracked category, the lookup table agrees with
// Resolve, and the category is the first allowed set containing the rune.
func TestClassify_TotalAndDisjoint(t *testing.T) {
	allowed := []Category{Greek, Latin, French, Spanish, Punctuation, Numbers, CommonSymbols, Combining, Format}
	c := NewClassifier(allowed)
	tracked := NewSet(c.Tracked()...)
	set := NewSet(allowed...)

	for r := rune(0); r <= 0x2FFFF; r++ {
		got, keep := c.Classify(r)
		if !tracked.Has(got) {
			t.Fatalf("rune %U classified into untracked %s", r, got)
		}
		if want := Resolve(r, set); got != want {
			t.Fatalf("rune %U: lookup %s, resolve %s", r, got, want)
		}
		if keep != (got != Other) {
			t.Fatalf("rune %U: keep=%v for %s", r, keep, got)
		}
		if got == Whitespace {
			continue
		}
		for _, cat := range resolutionOrder {
			if cat == got {
				if !unicode.Is(tables[cat], r) {
					t.Fatalf("rune %U not in %s", r, cat)
				}
				break
			}
			if set.Has(cat) && unicode.Is(tables[cat], r) {
				t.Fatalf("rune %U is in allowed %s but classified %s", r, cat, got)
			}
		}
	}
}

func TestClassifier_Tracked(t *testing.T) {
	c := NewClassifier([]Category{Greek, Latin, Greek})
	assert.Equal(t, []Category{Greek, Latin}, c.Allowed())
	assert.Equal(t, []Category{Greek, Latin, Whitespace, Other}, c.Tracked())
	assert.True(t, c.Allows(Whitespace))
	assert.False(t, c.Allows(Numbers))

	withWS := NewClassifier([]Category{Whitespace, Greek})
	assert.Equal(t, []Category{Whitespace, Greek, Other}, withWS.Tracked())
}

func TestParseCategories(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []Category
		wantErr string
	}{
		{
			name: "canonical names keep order",
			in:   []string{"greek", "latin", "punctuation"},
			want: []Category{Greek, Latin, Punctuation},
		},
		{
			name: "wrapper aliases",
			in:   []string{"lat", "grc", "punct", "num", "sym"},
			want: []Category{Latin, Greek, Punctuation, Numbers, CommonSymbols},
		},
		{
			name: "duplicates and blanks dropped",
			in:   []string{" Greek ", "gre", "", "el", "latin"},
			want: []Category{Greek, Latin},
		},
		{
			name:    "unknown name",
			in:      []string{"greek", "klingon"},
			wantErr: `unknown category "klingon"`,
		},
		{
			name:    "other is not configurable",
			in:      []string{"other"},
			wantErr: `unknown category "other"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategories(tt.in)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithBase(t *testing.T) {
	got := WithBase([]Category{Greek, Numbers})
	assert.Equal(t, []Category{Greek, Numbers, Punctuation, CommonSymbols}, got)
}

func TestAvailable(t *testing.T) {
	infos := Available()
	require.NotEmpty(t, infos)
	assert.Equal(t, "latin", infos[0].Name)
	assert.Equal(t, "whitespace", infos[len(infos)-1].Name)

	for _, info := range infos {
		assert.NotEqual(t, "other", info.Name)
		if info.Name == "greek" {
			assert.Equal(t, []string{"el", "grc", "gre"}, info.Aliases)
		}
	}
}
