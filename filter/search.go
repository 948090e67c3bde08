package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SearchType selects how a quick search term is matched against a field.
type SearchType string

const (
	// SearchExact matches the term verbatim.
	SearchExact SearchType = "exact"
	// SearchPartial matches case-insensitively; the term is used as given.
	SearchPartial SearchType = "partial"
	// SearchExtended rewrites the term before matching: * and spaces become
	// % wildcards and a term with no wildcard at all is wrapped in %...%.
	SearchExtended SearchType = "extended"
	// SearchPattern treats the term as a regular expression.
	SearchPattern SearchType = "pattern"
)

// PrepareInput rewrites a search term according to the search type. Only
// the extended type alters its input.
func (st SearchType) PrepareInput(value string) string {
	if st != SearchExtended {
		return value
	}

	if !strings.ContainsAny(value, "%*") {
		value = "%" + value + "%"
	}
	value = strings.ReplaceAll(value, "*", "%")
	return strings.ReplaceAll(value, " ", "%")
}

// operation maps the search type to an executor operation. The executor
// vocabulary is wider than the comparison operators of the filter language.
func (st SearchType) operation() string {
	switch st {
	case SearchPartial, SearchExtended:
		return "ilike"
	case SearchPattern:
		return "regex"
	default:
		return "eq"
	}
}

// NewComparison builds the wire comparison for one searched field.
func (st SearchType) NewComparison(field, term string) *Comparison {
	return &Comparison{
		Field:    field,
		Operator: st.operation(),
		Value:    st.PrepareInput(term),
	}
}

// FieldComparisons builds one comparison per field, all matching the same
// term.
func FieldComparisons(fields []string, term string, st SearchType) []*Comparison {
	comparisons := make([]*Comparison, 0, len(fields))
	for _, field := range fields {
		comparisons = append(comparisons, st.NewComparison(field, term))
	}
	return comparisons
}

// MultiFieldOr builds the filter that matches term in any of the fields. A
// blank term or an empty field list yields an empty filter. A single field
// needs no group.
func MultiFieldOr(fields []string, term string, st SearchType) Filter {
	term = strings.TrimSpace(term)
	if term == "" || len(fields) == 0 {
		return Filter{}
	}

	comparisons := FieldComparisons(fields, term, st)
	if len(comparisons) == 1 {
		return Filter{comparisons[0]}
	}

	items := make([]Expr, 0, len(comparisons))
	for _, c := range comparisons {
		items = append(items, c)
	}
	return Filter{&Group{Op: OpOr, Items: items}}
}

// InsertQuickSearch places a quick search comparison for field into an
// existing filter, removing any previous top level comparison on the same
// field. A blank term only removes. When the whole filter is a single AND
// group the comparison joins that group instead of wrapping it.
func InsertQuickSearch(field, term string, existing Filter, st SearchType) Filter {
	term = strings.TrimSpace(term)

	var inserted Expr
	if term != "" {
		inserted = st.NewComparison(field, term)
	}

	if len(existing) == 1 {
		if group, ok := existing[0].(*Group); ok && group.Op == OpAnd {
			return Filter{&Group{Op: OpAnd, Items: replaceComparison(group.Items, field, inserted)}}
		}
	}

	return Filter(replaceComparison(existing, field, inserted))
}

// replaceComparison returns items with inserted first and every comparison
// on field dropped.
func replaceComparison(items []Expr, field string, inserted Expr) []Expr {
	result := make([]Expr, 0, len(items)+1)
	if inserted != nil {
		result = append(result, inserted)
	}
	for _, item := range items {
		if c, ok := item.(*Comparison); ok && c.Field == field {
			continue
		}
		result = append(result, item)
	}
	return result
}

// Fold returns s with diacritics removed, so "Müller" matches "Muller" in
// accent-insensitive searches.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// FoldedValue returns the folded string value of the comparison, or the
// empty string when the value is not a string.
func (c *Comparison) FoldedValue() string {
	s, ok := c.Value.(string)
	if !ok {
		return ""
	}
	return Fold(s)
}
