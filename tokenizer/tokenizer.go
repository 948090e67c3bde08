package tokenizer

import (
	"iter"
	"unicode"

	exdrf "github.com/TNick/exdrf-sub001"
)

// TokenIterator uses the Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// Tokenizer splits filter text into tokens. Positions count runes, not
// bytes, because host editors address the text by rune offsets.
type Tokenizer struct {
	input string
}

// New creates a Tokenizer for the given filter text.
func New(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokens returns an iterator over the tokens of the input. The first lexical
// error ends the sequence; the error is a *exdrf.SyntaxError.
func (t *Tokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		s := &scanner{
			source: t.input,
			input:  []rune(t.input),
			line:   1,
			column: 1,
		}

		for {
			token, ok, err := s.next()
			if err != nil {
				yield(Token{}, err)
				return
			}
			if !ok {
				return
			}
			if !yield(token, nil) {
				return
			}
		}
	}
}

// Tokenize scans the whole input and returns its tokens.
func Tokenize(input string) ([]Token, error) {
	tokens := make([]Token, 0, 16)

	for token, err := range New(input).Tokens() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Internal scanner implementation
type scanner struct {
	source string // original text, carried into diagnostics
	input  []rune
	pos    int
	line   int
	column int
}

// next scans the next token. ok is false at the end of the input.
func (s *scanner) next() (token Token, ok bool, err error) {
	s.skipWhitespace()

	if s.pos >= len(s.input) {
		return Token{}, false, nil
	}

	ch := s.input[s.pos]
	startLine, startColumn := s.line, s.column

	switch {
	case ch == '(' || ch == ')' || ch == ',':
		s.advance(1)
		return s.newToken(string(ch), startLine, startColumn), true, nil
	case ch == '\'':
		return s.readString(startLine, startColumn)
	case ch == '[':
		return s.readList(startLine, startColumn)
	case isIdentStart(ch):
		return s.readIdentifier(startLine, startColumn), true, nil
	case isDigit(ch):
		return s.readNumber(startLine, startColumn), true, nil
	}

	if text, found := s.readOperator(); found {
		return s.newToken(text, startLine, startColumn), true, nil
	}

	return Token{}, false, &exdrf.SyntaxError{
		Code:      exdrf.CodeUnexpectedChar,
		Source:    s.source,
		Line:      startLine,
		Column:    startColumn,
		Offset:    s.pos,
		EndOffset: s.pos + 1,
		Value:     string(ch),
	}
}

// newToken builds a token ending at the current scan position.
func (s *scanner) newToken(text string, line, column int) Token {
	return Token{Text: text, Line: line, Column: column, End: s.pos}
}

// advance consumes count runes, updating line and column.
func (s *scanner) advance(count int) {
	for ; count > 0 && s.pos < len(s.input); count-- {
		if s.input[s.pos] == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
		s.pos++
	}
}

// skipWhitespace consumes whitespace, tracking line breaks.
func (s *scanner) skipWhitespace() {
	for s.pos < len(s.input) && unicode.IsSpace(s.input[s.pos]) {
		s.advance(1)
	}
}

// readString consumes a single-quoted string. A backslash makes the scanner
// skip the rune after it; escape sequences are kept verbatim in the token.
func (s *scanner) readString(line, column int) (Token, bool, error) {
	end := s.pos + 1
	for end < len(s.input) && s.input[end] != '\'' {
		if s.input[end] == '\\' && end+1 < len(s.input) {
			end += 2
		} else {
			end++
		}
	}

	if end >= len(s.input) {
		return Token{}, false, &exdrf.SyntaxError{
			Code:      exdrf.CodeUnterminatedString,
			Source:    s.source,
			Line:      line,
			Column:    column,
			Offset:    s.pos,
			EndOffset: len(s.input),
			Value:     string(s.input[s.pos:]),
		}
	}

	text := string(s.input[s.pos : end+1])
	s.advance(end + 1 - s.pos)

	return s.newToken(text, line, column), true, nil
}

// readList consumes a bracketed list, tracking nested bracket depth. Quotes
// have no special meaning inside brackets.
func (s *scanner) readList(line, column int) (Token, bool, error) {
	end := s.pos
	depth := 0

	for end < len(s.input) {
		switch s.input[end] {
		case '[':
			depth++
		case ']':
			depth--
		}
		if depth == 0 {
			break
		}
		end++
	}

	if depth != 0 {
		return Token{}, false, &exdrf.SyntaxError{
			Code:      exdrf.CodeUnmatchedBrackets,
			Source:    s.source,
			Line:      line,
			Column:    column,
			Offset:    s.pos,
			EndOffset: len(s.input),
			Value:     string(s.input[s.pos:]),
		}
	}

	text := string(s.input[s.pos : end+1])
	s.advance(end + 1 - s.pos)

	return s.newToken(text, line, column), true, nil
}

// readIdentifier consumes an identifier. Dots are identifier runes past the
// first position, so dotted field paths stay one token.
func (s *scanner) readIdentifier(line, column int) Token {
	start := s.pos
	s.advance(1)
	for s.pos < len(s.input) && isIdentPart(s.input[s.pos]) {
		s.advance(1)
	}
	return s.newToken(string(s.input[start:s.pos]), line, column)
}

// readNumber consumes digits and an optional fraction. The dot is only
// consumed when a digit follows it.
func (s *scanner) readNumber(line, column int) Token {
	start := s.pos
	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		s.advance(1)
	}
	if s.pos+1 < len(s.input) && s.input[s.pos] == '.' && isDigit(s.input[s.pos+1]) {
		s.advance(1)
		for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
			s.advance(1)
		}
	}
	return s.newToken(string(s.input[start:s.pos]), line, column)
}

// readOperator tries the comparison operators, longest match first. A bare
// '=' or '!' matches nothing and falls through to the unexpected character
// diagnostic.
func (s *scanner) readOperator() (string, bool) {
	ch := s.input[s.pos]
	var next rune
	if s.pos+1 < len(s.input) {
		next = s.input[s.pos+1]
	}

	switch ch {
	case '=', '!':
		if next == '=' {
			s.advance(2)
			return string(ch) + "=", true
		}
	case '>', '<':
		if next == '=' {
			s.advance(2)
			return string(ch) + "=", true
		}
		s.advance(1)
		return string(ch), true
	}

	return "", false
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || ch == '.' || isDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
