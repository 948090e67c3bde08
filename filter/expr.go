package filter

import (
	exdrf "github.com/TNick/exdrf-sub001"
	"github.com/TNick/exdrf-sub001/parser"
	"github.com/TNick/exdrf-sub001/tokenizer"
)

// LogicOp names a group combinator. The wire format carries it in canonical
// upper case regardless of how the filter text spelled it.
type LogicOp string

const (
	OpAnd LogicOp = "AND"
	OpOr  LogicOp = "OR"
)

// Expr is one expression of the wire format. It is implemented by
// Comparison, Group and Not and by nothing else.
type Expr interface {
	expr()
}

// Comparison is a leaf comparison of one field against one value. Value is
// a string, an int64, a float64 or a []string, mirroring the literal kinds
// of the filter language. Operator is carried verbatim; executors own the
// operator vocabulary.
type Comparison struct {
	Field    string
	Operator string
	Value    any
}

func (*Comparison) expr() {}

// Group combines its items with AND or OR. Items is never nil, so an empty
// group still encodes as an empty list.
type Group struct {
	Op    LogicOp
	Items []Expr
}

func (*Group) expr() {}

// Not negates a single expression.
type Not struct {
	Item Expr
}

func (*Not) expr() {}

// Filter is the top level form: a list of expressions combined as an
// implicit AND.
type Filter []Expr

// Serialize converts one AST node into its wire expression.
func Serialize(node parser.Node) Expr {
	switch n := node.(type) {
	case *parser.FieldComparison:
		return &Comparison{Field: n.Field, Operator: n.Op, Value: n.Value.Value()}
	case *parser.LogicAnd:
		return &Group{Op: OpAnd, Items: serializeItems(n.Items)}
	case *parser.LogicOr:
		return &Group{Op: OpOr, Items: serializeItems(n.Items)}
	case *parser.LogicNot:
		return &Not{Item: Serialize(n.Item)}
	}
	return nil
}

func serializeItems(nodes []parser.Node) []Expr {
	items := make([]Expr, 0, len(nodes))
	for _, node := range nodes {
		items = append(items, Serialize(node))
	}
	return items
}

// SerializeRoots converts the root nodes of a parse into a filter. The
// result is never nil.
func SerializeRoots(roots []parser.Node) Filter {
	return Filter(serializeItems(roots))
}

// Compile tokenizes, parses and serializes filter text in one call.
func Compile(text string) (Filter, error) {
	roots, err := parser.ParseString(text)
	if err != nil {
		return nil, err
	}
	return SerializeRoots(roots), nil
}

// CompileWithFields compiles like Compile but rejects fields that are not
// in the registry.
func CompileWithFields(text string, fields exdrf.FieldSet) (Filter, error) {
	tokens, err := tokenizer.Tokenize(text)
	if err != nil {
		return nil, err
	}

	roots, err := parser.ParseWithValidator(text, tokens, parser.FieldValidator{Fields: fields})
	if err != nil {
		return nil, err
	}

	return SerializeRoots(roots), nil
}
