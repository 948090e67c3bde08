// Package position maps rune offsets in filter text to the AST nodes whose
// tokens cover them. Host editors use it to resolve the node under the
// cursor for hover and completion.
package position

import (
	"sort"

	"github.com/TNick/exdrf-sub001/parser"
	"github.com/TNick/exdrf-sub001/tokenizer"
)

// entry is one token interval pointing at the node it belongs to.
type entry struct {
	start int
	end   int
	node  parser.Node
}

// Index answers offset queries over one parsed filter.
type Index struct {
	entries []entry
}

// Build indexes every token of the parse. A comparison registers its field,
// operator and value tokens, all pointing at the comparison. Logic nodes
// register their keyword token. Parentheses and commas belong to no node
// and stay unmapped.
func Build(roots []parser.Node) *Index {
	idx := &Index{}
	for _, root := range roots {
		idx.add(root)
	}

	sort.Slice(idx.entries, func(i, j int) bool {
		return idx.entries[i].start < idx.entries[j].start
	})

	return idx
}

func (idx *Index) add(node parser.Node) {
	switch n := node.(type) {
	case *parser.FieldComparison:
		idx.addToken(n.FieldToken, n)
		idx.addToken(n.OpToken, n)
		idx.addToken(n.ValueToken, n)

	case *parser.LogicAnd:
		idx.addToken(n.OpToken, n)
		for _, item := range n.Items {
			idx.add(item)
		}

	case *parser.LogicOr:
		idx.addToken(n.OpToken, n)
		for _, item := range n.Items {
			idx.add(item)
		}

	case *parser.LogicNot:
		idx.addToken(n.OpToken, n)
		idx.add(n.Item)
	}
}

func (idx *Index) addToken(tok tokenizer.Token, node parser.Node) {
	idx.entries = append(idx.entries, entry{start: tok.Start(), end: tok.End, node: node})
}

// Lookup returns the node whose token covers the rune offset, or nil when
// the offset falls on whitespace, punctuation or outside the text.
func (idx *Index) Lookup(offset int) parser.Node {
	// Token intervals are disjoint, so only the rightmost interval
	// starting at or before the offset can cover it.
	i := sort.Search(len(idx.entries), func(i int) bool {
		return idx.entries[i].start > offset
	}) - 1

	if i < 0 {
		return nil
	}
	if e := idx.entries[i]; offset < e.end {
		return e.node
	}
	return nil
}

// Len returns the number of indexed token intervals.
func (idx *Index) Len() int {
	return len(idx.entries)
}
