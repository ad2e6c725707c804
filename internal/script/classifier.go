// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package script

// lookupSize covers the Latin, Greek, Cyrillic and Greek Extended blocks,
// which make up nearly all of the corpus.
const lookupSize = 0x2000

// Classifier resolves runes against a fixed allowed set. It is immutable
// after construction and safe for concurrent use.
type Classifier struct {
	allowed []Category
	set     Set
	lookup  [lookupSize]Category
}

// NewClassifier builds a classifier for the allowed categories in report
// order. Duplicates are ignored.
func NewClassifier(allowed []Category) *Classifier {
	c := &Classifier{set: NewSet(allowed...)}
	seen := Set(0)
	for _, cat := range allowed {
		if seen.Has(cat) {
			continue
		}
		seen |= NewSet(cat)
		c.allowed = append(c.allowed, cat)
	}
	for r := rune(0); r < lookupSize; r++ {
		c.lookup[r] = Resolve(r, c.set)
	}
	return c
}

// NewClassifierFromNames parses names (canonical or alias) and builds a classifier.
func NewClassifierFromNames(names []string) (*Classifier, error) {
	cats, err := ParseCategories(names)
	if err != nil {
		return nil, err
	}
	return NewClassifier(cats), nil
}

// Classify returns the category of r and whether it is kept.
func (c *Classifier) Classify(r rune) (Category, bool) {
	var cat Category
	if r >= 0 && r < lookupSize {
		cat = c.lookup[r]
	} else {
		cat = Resolve(r, c.set)
	}
	return cat, cat != Other
}

// Allowed returns the allowed categories in report order.
func (c *Classifier) Allowed() []Category {
	return append([]Category(nil), c.allowed...)
}

// Allows reports whether cat counts as allowed. Whitespace is always allowed.
func (c *Classifier) Allows(cat Category) bool {
	return cat == Whitespace || c.set.Has(cat)
}

// Tracked returns the categories a document's counts are reported for:
// the allowed ones in order, then Whitespace unless already allowed, then Other.
// Every rune the classifier can return is in this list.
func (c *Classifier) Tracked() []Category {
	out := c.Allowed()
	if !c.set.Has(Whitespace) {
		out = append(out, Whitespace)
	}
	return append(out, Other)
}
