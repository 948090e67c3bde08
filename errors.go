package exdrf

import (
	"errors"
	"fmt"
)

// ErrCode identifies a filter diagnostic. The code strings are part of the
// contract with host applications, which dispatch on them when rendering
// messages, so they must not change.
type ErrCode string

const (
	// Tokenizer codes
	CodeUnterminatedString ErrCode = "unterminated_string"
	CodeUnmatchedBrackets  ErrCode = "unmatched_brackets"
	CodeUnexpectedChar     ErrCode = "unexpected_char"

	// Parser codes
	CodeExpectedToken        ErrCode = "expected_token"
	CodeUnexpectedEndOfInput ErrCode = "unexpected_end_of_input"
	CodeInvalidIntValue      ErrCode = "invalid_int_value"
	CodeInvalidFloatValue    ErrCode = "invalid_float_value"

	// Validator codes
	CodeUnknownField ErrCode = "unknown_field"
)

// Sentinel errors, one per diagnostic code
var (
	// ErrUnterminatedString indicates a quoted string ran to the end of input.
	ErrUnterminatedString = errors.New("unterminated string")
	// ErrUnmatchedBrackets indicates a bracketed list was never closed.
	ErrUnmatchedBrackets = errors.New("unmatched brackets")
	// ErrUnexpectedChar indicates a character no token can start with.
	ErrUnexpectedChar = errors.New("unexpected character")
	// ErrExpectedToken indicates the parser needed a specific token and got another.
	ErrExpectedToken = errors.New("expected token")
	// ErrUnexpectedEndOfInput indicates the input stopped in the middle of an expression.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	// ErrInvalidIntValue indicates a value could not be read as an integer.
	ErrInvalidIntValue = errors.New("invalid integer value")
	// ErrInvalidFloatValue indicates a value with a decimal point could not be read as a float.
	ErrInvalidFloatValue = errors.New("invalid float value")
	// ErrUnknownField indicates a field name that is not in the field registry.
	ErrUnknownField = errors.New("unknown field")
)

// Field schema errors
var (
	// ErrInvalidSchema indicates a field schema file that could not be used.
	ErrInvalidSchema = errors.New("invalid field schema")
	// ErrDuplicateField indicates the same field name was declared twice.
	ErrDuplicateField = errors.New("duplicate field name")
)

var sentinels = map[ErrCode]error{
	CodeUnterminatedString:   ErrUnterminatedString,
	CodeUnmatchedBrackets:    ErrUnmatchedBrackets,
	CodeUnexpectedChar:       ErrUnexpectedChar,
	CodeExpectedToken:        ErrExpectedToken,
	CodeUnexpectedEndOfInput: ErrUnexpectedEndOfInput,
	CodeInvalidIntValue:      ErrInvalidIntValue,
	CodeInvalidFloatValue:    ErrInvalidFloatValue,
	CodeUnknownField:         ErrUnknownField,
}

// SyntaxError is the diagnostic raised for invalid filter text. Line and
// Column are 1-based. Offset and EndOffset are 0-based rune offsets into
// Source with EndOffset exclusive, matching the cursor model of host
// editors. For errors raised at the end of the input the span is empty and
// anchored just past the last token.
type SyntaxError struct {
	Code      ErrCode
	Source    string
	Line      int
	Column    int
	Offset    int
	EndOffset int
	// Value holds the offending text when one exists.
	Value string
	// Expected names what was required instead: a literal token text for
	// expected_token, the known field names for unknown_field.
	Expected string
}

// Error renders a one-line message with the source location.
func (e *SyntaxError) Error() string {
	base := e.Unwrap()
	switch {
	case e.Expected != "" && e.Value != "":
		return fmt.Sprintf("%s: expected %s, got %q at line %d column %d", base, e.Expected, e.Value, e.Line, e.Column)
	case e.Expected != "":
		return fmt.Sprintf("%s: expected %s at line %d column %d", base, e.Expected, e.Line, e.Column)
	case e.Value != "":
		return fmt.Sprintf("%s: %q at line %d column %d", base, e.Value, e.Line, e.Column)
	default:
		return fmt.Sprintf("%s at line %d column %d", base, e.Line, e.Column)
	}
}

// Unwrap returns the sentinel for Code so that errors.Is matches across
// package boundaries.
func (e *SyntaxError) Unwrap() error {
	return sentinels[e.Code]
}

// Span returns the rune span of the diagnostic in Source.
func (e *SyntaxError) Span() (start, end int) {
	return e.Offset, e.EndOffset
}
