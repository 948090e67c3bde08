package main

import (
	"fmt"

	"github.com/TNick/exdrf-sub001/tokenizer"
)

// TokensCmd represents the tokens command
type TokensCmd struct {
	Input string `arg:"" optional:"" help:"Filter file (default: stdin)" type:"path"`
}

// Run executes the tokens command, one line per token: line:column, the
// rune span and the token text.
func (cmd *TokensCmd) Run(ctx *Context) error {
	text, name, err := readInput(cmd.Input, ctx.Stdin)
	if err != nil {
		return err
	}

	for token, err := range tokenizer.New(text).Tokens() {
		if err != nil {
			printDiagnostic(ctx.Stderr, name, err)
			return ErrInvalidFilter
		}

		fmt.Fprintf(ctx.Stdout, "%d:%d\t%d..%d\t%s\n",
			token.Line, token.Column, token.Start(), token.End, token.Text)
	}

	return nil
}
