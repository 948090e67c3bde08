package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TNick/exdrf-sub001/tokenizer"
)

// Node represents an AST node of a parsed filter expression
type Node interface {
	Type() NodeType
	// Pos returns the 0-based rune span of the node in the source text.
	// Comparisons span from their field token to their value token; logic
	// nodes span their keyword only.
	Pos() (start, end int)

	node()
}

// NodeType represents the type of AST node
type NodeType int

const (
	FIELD_COMPARISON NodeType = iota
	LOGIC_AND
	LOGIC_OR
	LOGIC_NOT
)

// String returns string representation of NodeType
func (n NodeType) String() string {
	switch n {
	case FIELD_COMPARISON:
		return "FIELD_COMPARISON"
	case LOGIC_AND:
		return "LOGIC_AND"
	case LOGIC_OR:
		return "LOGIC_OR"
	case LOGIC_NOT:
		return "LOGIC_NOT"
	default:
		return "UNKNOWN"
	}
}

// LiteralKind discriminates the typed value forms of a comparison.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralList
)

// Literal is the typed value of a field comparison. Exactly the member
// selected by Kind is meaningful.
type Literal struct {
	Kind  LiteralKind
	Str   string
	Int   int64
	Float float64
	List  []string
}

// Value returns the active member.
func (l Literal) Value() any {
	switch l.Kind {
	case LiteralInt:
		return l.Int
	case LiteralFloat:
		return l.Float
	case LiteralList:
		return l.List
	default:
		return l.Str
	}
}

// String renders the literal the way the text formatter prints values:
// strings bare, floats always with a decimal form, lists quoted item by
// item.
func (l Literal) String() string {
	switch l.Kind {
	case LiteralInt:
		return strconv.FormatInt(l.Int, 10)
	case LiteralFloat:
		s := strconv.FormatFloat(l.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	case LiteralList:
		quoted := make([]string, 0, len(l.List))
		for _, item := range l.List {
			quoted = append(quoted, "'"+item+"'")
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return l.Str
	}
}

// FieldComparison is a single `field op value` clause. The three tokens it
// was built from are kept for diagnostics and position lookups.
type FieldComparison struct {
	Field string
	Op    string
	Value Literal

	FieldToken tokenizer.Token
	OpToken    tokenizer.Token
	ValueToken tokenizer.Token
}

func (n *FieldComparison) Type() NodeType { return FIELD_COMPARISON }

func (n *FieldComparison) Pos() (int, int) {
	return n.FieldToken.Start(), n.ValueToken.End
}

func (n *FieldComparison) node() {}

// String returns a compact single line form for debug output.
func (n *FieldComparison) String() string {
	return fmt.Sprintf("%s %s %s", n.Field, n.Op, n.Value)
}

// LogicAnd combines its items so that all of them must hold. Items may be
// comparisons or nested logic and the group may be empty.
type LogicAnd struct {
	OpToken tokenizer.Token
	Items   []Node
}

func (n *LogicAnd) Type() NodeType { return LOGIC_AND }

func (n *LogicAnd) Pos() (int, int) {
	return n.OpToken.Start(), n.OpToken.End
}

func (n *LogicAnd) node() {}

// LogicOr combines its items so that at least one of them must hold.
type LogicOr struct {
	OpToken tokenizer.Token
	Items   []Node
}

func (n *LogicOr) Type() NodeType { return LOGIC_OR }

func (n *LogicOr) Pos() (int, int) {
	return n.OpToken.Start(), n.OpToken.End
}

func (n *LogicOr) node() {}

// LogicNot inverts exactly one field comparison. The grammar does not allow
// logic groups under a NOT.
type LogicNot struct {
	OpToken tokenizer.Token
	Item    *FieldComparison
}

func (n *LogicNot) Type() NodeType { return LOGIC_NOT }

func (n *LogicNot) Pos() (int, int) {
	return n.OpToken.Start(), n.OpToken.End
}

func (n *LogicNot) node() {}
