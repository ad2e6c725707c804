// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tables

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var gfm = goldmark.New(goldmark.WithExtensions(extension.Table))

// CountGFM returns the number of tables a GitHub Flavored Markdown parser
// recognises in src. GFM is more lenient than Analyze: it pads or truncates
// rows instead of rejecting them, so the two counts can differ on
// malformed input.
func CountGFM(src string) int {
	doc := gfm.Parser().Parse(text.NewReader([]byte(src)))
	n := 0
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && node.Kind() == east.KindTable {
			n++
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return n
}
