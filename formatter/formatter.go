// Package formatter renders wire filters back into filter text, one
// comparison per line with tab indentation for nested groups.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TNick/exdrf-sub001/filter"
)

// Format renders one wire expression as indented filter text. The filter
// language combines top level expressions with an implicit AND, so an AND
// group at the root drops its box and prints its items at depth zero.
func Format(e filter.Expr) string {
	var b strings.Builder

	if group, ok := e.(*filter.Group); ok && group.Op == filter.OpAnd {
		for _, item := range group.Items {
			writeExpr(&b, item, 0)
		}
		return b.String()
	}

	writeExpr(&b, e, 0)
	return b.String()
}

// FormatFilter renders a whole filter. The filter list itself is the
// implicit AND here, so every root keeps its box.
func FormatFilter(f filter.Filter) string {
	var b strings.Builder
	for _, e := range f {
		writeExpr(&b, e, 0)
	}
	return b.String()
}

func writeExpr(b *strings.Builder, e filter.Expr, depth int) {
	indent := strings.Repeat("\t", depth)

	switch node := e.(type) {
	case *filter.Comparison:
		b.WriteString(indent)
		b.WriteString(node.Field)
		b.WriteByte(' ')
		b.WriteString(node.Operator)
		b.WriteByte(' ')
		b.WriteString(renderValue(node.Value))
		b.WriteByte('\n')

	case *filter.Group:
		b.WriteString(indent)
		b.WriteString(string(node.Op))
		b.WriteString(" (\n")
		for _, item := range node.Items {
			writeExpr(b, item, depth+1)
		}
		b.WriteString(indent)
		b.WriteString(")\n")

	case *filter.Not:
		b.WriteString(indent)
		b.WriteString("NOT (\n")
		writeExpr(b, node.Item, depth+1)
		b.WriteString(indent)
		b.WriteString(")\n")
	}
}

// renderValue prints a comparison value the way the filter language spells
// it, except that strings drop their quotes. Whole floats keep a trailing
// zero so they stay recognizable as floats.
func renderValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	case []string:
		quoted := make([]string, 0, len(v))
		for _, item := range v {
			quoted = append(quoted, "'"+item+"'")
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}
