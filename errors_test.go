package exdrf

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSyntaxErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *SyntaxError
		want string
	}{
		{
			name: "value only",
			err: &SyntaxError{
				Code: CodeUnexpectedChar, Line: 1, Column: 5, Value: "@",
			},
			want: `unexpected character: "@" at line 1 column 5`,
		},
		{
			name: "expected and value",
			err: &SyntaxError{
				Code: CodeExpectedToken, Line: 2, Column: 3, Value: "age", Expected: "(",
			},
			want: `expected token: expected (, got "age" at line 2 column 3`,
		},
		{
			name: "expected only",
			err: &SyntaxError{
				Code: CodeExpectedToken, Line: 1, Column: 11, Expected: ")",
			},
			want: "expected token: expected ) at line 1 column 11",
		},
		{
			name: "bare",
			err: &SyntaxError{
				Code: CodeUnexpectedEndOfInput, Line: 1, Column: 4,
			},
			want: "unexpected end of input at line 1 column 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestSyntaxErrorUnwrap(t *testing.T) {
	tests := []struct {
		code     ErrCode
		sentinel error
	}{
		{CodeUnterminatedString, ErrUnterminatedString},
		{CodeUnmatchedBrackets, ErrUnmatchedBrackets},
		{CodeUnexpectedChar, ErrUnexpectedChar},
		{CodeExpectedToken, ErrExpectedToken},
		{CodeUnexpectedEndOfInput, ErrUnexpectedEndOfInput},
		{CodeInvalidIntValue, ErrInvalidIntValue},
		{CodeInvalidFloatValue, ErrInvalidFloatValue},
		{CodeUnknownField, ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := &SyntaxError{Code: tt.code}
			assert.True(t, errors.Is(err, tt.sentinel))
		})
	}
}

func TestSyntaxErrorSpan(t *testing.T) {
	err := &SyntaxError{Offset: 4, EndOffset: 7}

	start, end := err.Span()
	assert.Equal(t, 4, start)
	assert.Equal(t, 7, end)
}
