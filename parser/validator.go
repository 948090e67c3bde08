package parser

import (
	"strings"

	exdrf "github.com/TNick/exdrf-sub001"
)

// Validator checks field comparisons while the parse is still running. The
// returned error aborts the parse immediately.
type Validator interface {
	Validate(source string, fc *FieldComparison) error
}

// FieldValidator rejects comparisons whose field name is not in the
// registry.
type FieldValidator struct {
	Fields exdrf.FieldSet
}

// Validate returns an unknown_field diagnostic under the field token when
// the comparison names a field outside the registry. The diagnostic lists
// the known fields in registry order.
func (v FieldValidator) Validate(source string, fc *FieldComparison) error {
	if v.Fields.Contains(fc.Field) {
		return nil
	}

	tok := fc.FieldToken
	return &exdrf.SyntaxError{
		Code:      exdrf.CodeUnknownField,
		Source:    source,
		Line:      tok.Line,
		Column:    tok.Column,
		Offset:    tok.Start(),
		EndOffset: tok.End,
		Value:     fc.Field,
		Expected:  strings.Join(v.Fields.Names(), ", "),
	}
}
