package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	exdrf "github.com/TNick/exdrf-sub001"
	"github.com/TNick/exdrf-sub001/tokenizer"
)

func parseValidated(input string, v Validator) ([]Node, error) {
	tokens, err := tokenizer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return ParseWithValidator(input, tokens, v)
}

func TestFieldValidator(t *testing.T) {
	fields := exdrf.NewFieldSet("age", "name")
	validator := FieldValidator{Fields: fields}

	parse := func(input string) ([]Node, error) {
		return parseValidated(input, validator)
	}

	t.Run("known fields pass", func(t *testing.T) {
		roots, err := parse("age > 5, name == 'bob'")
		assert.NoError(t, err)
		assert.Equal(t, 2, len(roots))
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		roots, err := parse("weight > 5")
		assert.Nil(t, roots)
		assert.True(t, errors.Is(err, exdrf.ErrUnknownField))

		var synErr *exdrf.SyntaxError
		if !assert.True(t, errors.As(err, &synErr)) {
			return
		}

		assert.Equal(t, exdrf.CodeUnknownField, synErr.Code)
		assert.Equal(t, "weight", synErr.Value)
		assert.Equal(t, "age, name", synErr.Expected)
		assert.Equal(t, 1, synErr.Line)
		assert.Equal(t, 1, synErr.Column)
		assert.Equal(t, 0, synErr.Offset)
		assert.Equal(t, 6, synErr.EndOffset)
	})

	t.Run("first bad comparison wins", func(t *testing.T) {
		// The syntax error further right never gets a chance to surface.
		_, err := parse("weight > 5, AND(")
		assert.True(t, errors.Is(err, exdrf.ErrUnknownField))
	})

	t.Run("validation reaches into groups", func(t *testing.T) {
		_, err := parse("AND(age > 5, weight > 5)")
		assert.True(t, errors.Is(err, exdrf.ErrUnknownField))

		var synErr *exdrf.SyntaxError
		if !assert.True(t, errors.As(err, &synErr)) {
			return
		}

		assert.Equal(t, 13, synErr.Offset)
		assert.Equal(t, 19, synErr.EndOffset)
		assert.Equal(t, 14, synErr.Column)
	})

	t.Run("empty registry rejects everything", func(t *testing.T) {
		_, err := parseValidated("a == 1", FieldValidator{Fields: exdrf.NewFieldSet()})
		assert.True(t, errors.Is(err, exdrf.ErrUnknownField))

		var synErr *exdrf.SyntaxError
		assert.True(t, errors.As(err, &synErr))
		assert.Equal(t, "", synErr.Expected)
	})
}

func TestParseWithoutValidatorSkipsFieldChecks(t *testing.T) {
	roots, err := ParseString("anything_goes == 1")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(roots))
}
