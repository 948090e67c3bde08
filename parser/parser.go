package parser

import (
	"strconv"
	"strings"

	exdrf "github.com/TNick/exdrf-sub001"
	"github.com/TNick/exdrf-sub001/tokenizer"
)

// Parse parses a token stream into its root nodes. Top level expressions are
// separated by commas and combine as an implicit AND. An empty stream parses
// to an empty root list. All errors are *exdrf.SyntaxError.
func Parse(source string, tokens []tokenizer.Token) ([]Node, error) {
	p := &parser{source: source, tokens: tokens}
	return p.parse()
}

// ParseWithValidator parses like Parse and checks every field comparison
// against v as soon as it is built, so the first unknown field aborts the
// parse.
func ParseWithValidator(source string, tokens []tokenizer.Token, v Validator) ([]Node, error) {
	p := &parser{source: source, tokens: tokens, validator: v}
	return p.parse()
}

// ParseString tokenizes and parses filter text in one call.
func ParseString(source string) ([]Node, error) {
	tokens, err := tokenizer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(source, tokens)
}

type parser struct {
	source    string
	tokens    []tokenizer.Token
	index     int
	validator Validator
}

func (p *parser) parse() ([]Node, error) {
	var roots []Node

	for p.current() != nil {
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		roots = append(roots, node)

		if tok := p.current(); tok != nil && tok.Text == "," {
			p.index++
		}
	}

	return roots, nil
}

// parseExpression dispatches on the AND/OR/NOT keywords, case-insensitively.
// Everything else parses as a field comparison.
func (p *parser) parseExpression() (Node, error) {
	tok := p.current()
	if tok == nil {
		return nil, p.errAtEnd(exdrf.CodeUnexpectedEndOfInput, "")
	}

	switch strings.ToUpper(tok.Text) {
	case "AND", "OR":
		return p.parseLogic()
	case "NOT":
		return p.parseNot()
	default:
		return p.parseComparison()
	}
}

// parseLogic parses AND(...) or OR(...). Items may be any expression, a
// trailing comma is tolerated and the group may be empty.
func (p *parser) parseLogic() (Node, error) {
	op := *p.current()
	p.index++

	if _, err := p.match("("); err != nil {
		return nil, err
	}

	var items []Node
	for {
		tok := p.current()
		if tok == nil || tok.Text == ")" {
			break
		}

		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if tok := p.current(); tok != nil && tok.Text == "," {
			p.index++
		}
	}

	if _, err := p.match(")"); err != nil {
		return nil, err
	}

	if strings.EqualFold(op.Text, "AND") {
		return &LogicAnd{OpToken: op, Items: items}, nil
	}
	return &LogicOr{OpToken: op, Items: items}, nil
}

// parseNot parses NOT(comparison). A logic group in the argument position is
// rejected by the comparison parse.
func (p *parser) parseNot() (Node, error) {
	op := *p.current()
	p.index++

	if _, err := p.match("("); err != nil {
		return nil, err
	}

	item, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	if _, err := p.match(")"); err != nil {
		return nil, err
	}

	return &LogicNot{OpToken: op, Item: item}, nil
}

// parseComparison parses `field op value`. Any token satisfies the field and
// operator positions; only the end of the input and the value conversion
// raise here.
func (p *parser) parseComparison() (*FieldComparison, error) {
	fieldTok, err := p.matchAny("identifier")
	if err != nil {
		return nil, err
	}

	opTok, err := p.matchAny("operator")
	if err != nil {
		return nil, err
	}

	valueTok, err := p.matchAny("value")
	if err != nil {
		return nil, err
	}

	value, err := p.parseValue(valueTok)
	if err != nil {
		return nil, err
	}

	fc := &FieldComparison{
		Field:      fieldTok.Text,
		Op:         opTok.Text,
		Value:      value,
		FieldToken: fieldTok,
		OpToken:    opTok,
		ValueToken: valueTok,
	}

	if p.validator != nil {
		if err := p.validator.Validate(p.source, fc); err != nil {
			return nil, err
		}
	}

	return fc, nil
}

// parseValue converts a raw value token into a typed literal. Quoted text
// keeps its escape sequences verbatim; only the quotes are removed.
func (p *parser) parseValue(tok tokenizer.Token) (Literal, error) {
	raw := tok.Text

	switch {
	case len(raw) >= 2 && strings.HasPrefix(raw, "'") && strings.HasSuffix(raw, "'"):
		return Literal{Kind: LiteralString, Str: raw[1 : len(raw)-1]}, nil

	case len(raw) >= 2 && strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]"):
		return Literal{Kind: LiteralList, List: splitListItems(raw[1 : len(raw)-1])}, nil

	case strings.Contains(raw, "."):
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Literal{}, p.errAtToken(exdrf.CodeInvalidFloatValue, tok, raw, "")
		}
		return Literal{Kind: LiteralFloat, Float: f}, nil

	default:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Literal{}, p.errAtToken(exdrf.CodeInvalidIntValue, tok, raw, "")
		}
		return Literal{Kind: LiteralInt, Int: n}, nil
	}
}

// splitListItems splits the bracket interior on commas. Items are trimmed of
// whitespace and one layer of surrounding quotes; items blank before quote
// removal are dropped.
func splitListItems(inner string) []string {
	parts := strings.Split(inner, ",")
	items := make([]string, 0, len(parts))

	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		if len(item) >= 2 && strings.HasPrefix(item, "'") && strings.HasSuffix(item, "'") {
			item = item[1 : len(item)-1]
		}
		items = append(items, item)
	}

	return items
}

// current returns the token at the cursor, or nil past the end.
func (p *parser) current() *tokenizer.Token {
	if p.index < len(p.tokens) {
		return &p.tokens[p.index]
	}
	return nil
}

// match consumes the current token, which must equal expected
// case-insensitively.
func (p *parser) match(expected string) (tokenizer.Token, error) {
	tok := p.current()
	if tok == nil {
		return tokenizer.Token{}, p.errAtEnd(exdrf.CodeExpectedToken, expected)
	}
	if !strings.EqualFold(tok.Text, expected) {
		return tokenizer.Token{}, p.errAtToken(exdrf.CodeExpectedToken, *tok, tok.Text, expected)
	}

	p.index++
	return *tok, nil
}

// matchAny consumes any token. want names the token role for the
// end-of-input diagnostic.
func (p *parser) matchAny(want string) (tokenizer.Token, error) {
	tok := p.current()
	if tok == nil {
		return tokenizer.Token{}, p.errAtEnd(exdrf.CodeExpectedToken, want)
	}

	p.index++
	return *tok, nil
}

// errAtToken builds a diagnostic covering the given token.
func (p *parser) errAtToken(code exdrf.ErrCode, tok tokenizer.Token, value, expected string) *exdrf.SyntaxError {
	return &exdrf.SyntaxError{
		Code:      code,
		Source:    p.source,
		Line:      tok.Line,
		Column:    tok.Column,
		Offset:    tok.Start(),
		EndOffset: tok.End,
		Value:     value,
		Expected:  expected,
	}
}

// errAtEnd builds a diagnostic with an empty span just past the last token.
// With no tokens at all the position fields stay zero.
func (p *parser) errAtEnd(code exdrf.ErrCode, expected string) *exdrf.SyntaxError {
	e := &exdrf.SyntaxError{
		Code:     code,
		Source:   p.source,
		Expected: expected,
	}
	if len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1]
		e.Line = last.Line
		e.Column = last.Column
		e.Offset = last.End
		e.EndOffset = last.End
	}
	return e
}
