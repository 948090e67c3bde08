package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	exdrf "github.com/TNick/exdrf-sub001"
	"github.com/TNick/exdrf-sub001/tokenizer"
)

func TestParseString_Comparison(t *testing.T) {
	roots, err := ParseString("age > 5")
	assert.NoError(t, err)
	assert.Equal(t, []Node{
		&FieldComparison{
			Field:      "age",
			Op:         ">",
			Value:      Literal{Kind: LiteralInt, Int: 5},
			FieldToken: tokenizer.Token{Text: "age", Line: 1, Column: 1, End: 3},
			OpToken:    tokenizer.Token{Text: ">", Line: 1, Column: 5, End: 5},
			ValueToken: tokenizer.Token{Text: "5", Line: 1, Column: 7, End: 7},
		},
	}, roots)
}

func TestParse_GroupSizes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		items int
	}{
		{
			name:  "two items",
			input: "AND(age > 5, name == 'bob')",
			items: 2,
		},
		{
			name:  "one item",
			input: "AND(age > 5)",
			items: 1,
		},
		{
			name:  "empty group",
			input: "AND()",
			items: 0,
		},
		{
			name:  "trailing comma",
			input: "AND(age > 5,)",
			items: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots, err := ParseString(tt.input)
			if !assert.NoError(t, err) {
				return
			}

			assert.Equal(t, 1, len(roots))

			and, ok := roots[0].(*LogicAnd)
			assert.True(t, ok)
			assert.Equal(t, tt.items, len(and.Items))
		})
	}
}

func TestParse_KeywordsAreCaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  NodeType
	}{
		{input: "and(x == 1)", want: LOGIC_AND},
		{input: "And(x == 1)", want: LOGIC_AND},
		{input: "or(x == 1)", want: LOGIC_OR},
		{input: "oR(x == 1)", want: LOGIC_OR},
		{input: "not(x == 1)", want: LOGIC_NOT},
		{input: "NOT(x == 1)", want: LOGIC_NOT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			roots, err := ParseString(tt.input)
			if !assert.NoError(t, err) {
				return
			}

			assert.Equal(t, 1, len(roots))
			assert.Equal(t, tt.want, roots[0].Type())
		})
	}
}

func TestParse_NestedLogic(t *testing.T) {
	roots, err := ParseString("AND(name == 'John', OR(age > 30, NOT(status == 'inactive')))")
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, 1, len(roots))

	and := roots[0].(*LogicAnd)
	assert.Equal(t, 2, len(and.Items))

	name := and.Items[0].(*FieldComparison)
	assert.Equal(t, "name", name.Field)
	assert.Equal(t, "==", name.Op)
	assert.Equal(t, Literal{Kind: LiteralString, Str: "John"}, name.Value)

	or := and.Items[1].(*LogicOr)
	assert.Equal(t, 2, len(or.Items))

	age := or.Items[0].(*FieldComparison)
	assert.Equal(t, "age", age.Field)
	assert.Equal(t, Literal{Kind: LiteralInt, Int: 30}, age.Value)

	not := or.Items[1].(*LogicNot)
	assert.Equal(t, "status", not.Item.Field)
	assert.Equal(t, Literal{Kind: LiteralString, Str: "inactive"}, not.Item.Value)
}

func TestParse_MultipleRoots(t *testing.T) {
	roots, err := ParseString("age > 5, name == 'bob'")
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, 2, len(roots))
	assert.Equal(t, "age", roots[0].(*FieldComparison).Field)
	assert.Equal(t, "name", roots[1].(*FieldComparison).Field)
}

func TestParse_TopLevelCommaIsOptional(t *testing.T) {
	roots, err := ParseString("OR (\n    id == 1\n)\nOR (\n    id == 2\n)\n")
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, 2, len(roots))

	first := roots[0].(*LogicOr)
	assert.Equal(t, 1, len(first.Items))
	assert.Equal(t, "id", first.Items[0].(*FieldComparison).Field)
	assert.Equal(t, Literal{Kind: LiteralInt, Int: 1}, first.Items[0].(*FieldComparison).Value)

	second := roots[1].(*LogicOr)
	assert.Equal(t, 1, len(second.Items))
	assert.Equal(t, Literal{Kind: LiteralInt, Int: 2}, second.Items[0].(*FieldComparison).Value)
}

func TestParse_Literals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Literal
	}{
		{
			name:  "string",
			input: "name == 'John'",
			want:  Literal{Kind: LiteralString, Str: "John"},
		},
		{
			name:  "string keeps escape sequences verbatim",
			input: `name == 'a\'b'`,
			want:  Literal{Kind: LiteralString, Str: `a\'b`},
		},
		{
			name:  "empty string",
			input: "name == ''",
			want:  Literal{Kind: LiteralString, Str: ""},
		},
		{
			name:  "int",
			input: "age == 123",
			want:  Literal{Kind: LiteralInt, Int: 123},
		},
		{
			name:  "float",
			input: "price == 123.45",
			want:  Literal{Kind: LiteralFloat, Float: 123.45},
		},
		{
			name:  "list of bare items",
			input: "tags == [1,2,3]",
			want:  Literal{Kind: LiteralList, List: []string{"1", "2", "3"}},
		},
		{
			name:  "list items lose their quotes",
			input: "tags == ['a', 'b']",
			want:  Literal{Kind: LiteralList, List: []string{"a", "b"}},
		},
		{
			name:  "list drops blank items",
			input: "tags == [a, , b,]",
			want:  Literal{Kind: LiteralList, List: []string{"a", "b"}},
		},
		{
			name:  "list strips a single quote layer",
			input: "tags == [''x'']",
			want:  Literal{Kind: LiteralList, List: []string{"'x'"}},
		},
		{
			name:  "empty list",
			input: "tags == []",
			want:  Literal{Kind: LiteralList, List: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots, err := ParseString(tt.input)
			if !assert.NoError(t, err) {
				return
			}

			fc := roots[0].(*FieldComparison)
			assert.Equal(t, tt.want, fc.Value)
		})
	}
}

// The field and operator slots accept any token; only the value conversion
// and the end of the input are checked. "5 > 6" therefore parses.
func TestParse_LooseFieldAndOperatorSlots(t *testing.T) {
	roots, err := ParseString("5 > 6")
	if !assert.NoError(t, err) {
		return
	}

	fc := roots[0].(*FieldComparison)
	assert.Equal(t, "5", fc.Field)
	assert.Equal(t, ">", fc.Op)
	assert.Equal(t, Literal{Kind: LiteralInt, Int: 6}, fc.Value)
}

func TestParse_EmptyInput(t *testing.T) {
	roots, err := ParseString("")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(roots))

	roots, err = ParseString("  \t\n ")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(roots))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		sentinel  error
		code      exdrf.ErrCode
		line      int
		column    int
		offset    int
		endOffset int
		value     string
		expected  string
	}{
		{
			name:     "missing open paren",
			input:    "AND age > 5",
			sentinel: exdrf.ErrExpectedToken,
			code:     exdrf.CodeExpectedToken,
			line:     1, column: 5, offset: 4, endOffset: 7,
			value: "age", expected: "(",
		},
		{
			name:     "missing close paren at end of input",
			input:    "AND(age > 5",
			sentinel: exdrf.ErrExpectedToken,
			code:     exdrf.CodeExpectedToken,
			line:     1, column: 11, offset: 11, endOffset: 11,
			expected: ")",
		},
		{
			name:     "comma instead of close paren",
			input:    "NOT(x == 1, y == 2)",
			sentinel: exdrf.ErrExpectedToken,
			code:     exdrf.CodeExpectedToken,
			line:     1, column: 11, offset: 10, endOffset: 11,
			value: ",", expected: ")",
		},
		{
			name:     "value missing",
			input:    "name ==",
			sentinel: exdrf.ErrExpectedToken,
			code:     exdrf.CodeExpectedToken,
			line:     1, column: 6, offset: 7, endOffset: 7,
			expected: "value",
		},
		{
			name:     "operator missing",
			input:    "age",
			sentinel: exdrf.ErrExpectedToken,
			code:     exdrf.CodeExpectedToken,
			line:     1, column: 1, offset: 3, endOffset: 3,
			expected: "operator",
		},
		{
			name:     "lone comma",
			input:    ",",
			sentinel: exdrf.ErrExpectedToken,
			code:     exdrf.CodeExpectedToken,
			line:     1, column: 1, offset: 1, endOffset: 1,
			expected: "operator",
		},
		{
			name:     "not does not accept logic groups",
			input:    "NOT(AND(age > 5))",
			sentinel: exdrf.ErrInvalidIntValue,
			code:     exdrf.CodeInvalidIntValue,
			line:     1, column: 9, offset: 8, endOffset: 11,
			value: "age",
		},
		{
			name:     "doubled operator fails in the value slot",
			input:    "age >> 5",
			sentinel: exdrf.ErrInvalidIntValue,
			code:     exdrf.CodeInvalidIntValue,
			line:     1, column: 6, offset: 5, endOffset: 6,
			value: ">",
		},
		{
			name:     "word as int value",
			input:    "age == abc",
			sentinel: exdrf.ErrInvalidIntValue,
			code:     exdrf.CodeInvalidIntValue,
			line:     1, column: 8, offset: 7, endOffset: 10,
			value: "abc",
		},
		{
			name:     "dotted value commits to float",
			input:    "total == tax.rate",
			sentinel: exdrf.ErrInvalidFloatValue,
			code:     exdrf.CodeInvalidFloatValue,
			line:     1, column: 10, offset: 9, endOffset: 17,
			value: "tax.rate",
		},
		{
			name:     "error position after newline",
			input:    "a == 1,\nAND(",
			sentinel: exdrf.ErrExpectedToken,
			code:     exdrf.CodeExpectedToken,
			line:     2, column: 4, offset: 12, endOffset: 12,
			expected: ")",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots, err := ParseString(tt.input)
			assert.Error(t, err)
			assert.Nil(t, roots)
			assert.True(t, errors.Is(err, tt.sentinel))

			var synErr *exdrf.SyntaxError
			if !assert.True(t, errors.As(err, &synErr)) {
				return
			}

			assert.Equal(t, tt.code, synErr.Code)
			assert.Equal(t, tt.input, synErr.Source)
			assert.Equal(t, tt.line, synErr.Line)
			assert.Equal(t, tt.column, synErr.Column)
			assert.Equal(t, tt.offset, synErr.Offset)
			assert.Equal(t, tt.endOffset, synErr.EndOffset)
			assert.Equal(t, tt.value, synErr.Value)
			assert.Equal(t, tt.expected, synErr.Expected)
		})
	}
}

func TestParseExpression_NoTokens(t *testing.T) {
	p := &parser{source: ""}

	_, err := p.parseExpression()
	assert.True(t, errors.Is(err, exdrf.ErrUnexpectedEndOfInput))

	var synErr *exdrf.SyntaxError
	assert.True(t, errors.As(err, &synErr))
	assert.Equal(t, exdrf.CodeUnexpectedEndOfInput, synErr.Code)
	assert.Equal(t, 0, synErr.Offset)
}

func TestParse_TokenizeErrorsPassThrough(t *testing.T) {
	_, err := ParseString("name == 'abc")
	assert.True(t, errors.Is(err, exdrf.ErrUnterminatedString))
}
