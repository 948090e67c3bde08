package tokenizer

import "fmt"

// Token represents one lexical element of a filter expression: a parenthesis,
// a comma, a quoted string, a bracketed list, an identifier, a number or a
// comparison operator. Quoted strings and bracketed lists keep their
// delimiters; interpreting the content is the parser's job.
type Token struct {
	// Text is the raw token text as it appears in the input.
	Text string
	// Line is the 1-based line of the first rune of the token.
	Line int
	// Column is the 1-based rune column of the first rune inside its line.
	Column int
	// End is the 0-based rune offset just past the token.
	End int
}

// Start returns the 0-based rune offset of the first rune of the token.
func (t Token) Start() int {
	return t.End - len([]rune(t.Text))
}

// String returns the token text with its position, for debug output.
func (t Token) String() string {
	return fmt.Sprintf("%q at %d:%d", t.Text, t.Line, t.Column)
}
