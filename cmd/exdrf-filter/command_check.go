package main

import (
	"fmt"

	"github.com/fatih/color"

	exdrf "github.com/TNick/exdrf-sub001"
	"github.com/TNick/exdrf-sub001/parser"
	"github.com/TNick/exdrf-sub001/tokenizer"
)

// CheckCmd represents the check command
type CheckCmd struct {
	Files []string `arg:"" optional:"" help:"Filter files to check (default: stdin)" type:"path"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	fields, err := ctx.loadFields()
	if err != nil {
		return err
	}

	inputs := cmd.Files
	if len(inputs) == 0 {
		inputs = []string{""}
	}

	failed := 0

	for _, path := range inputs {
		text, name, err := readInput(path, ctx.Stdin)
		if err != nil {
			return err
		}

		if ctx.Verbose {
			color.New(color.FgBlue).Fprintf(ctx.Stdout, "checking %s\n", name)
		}

		if err := checkText(text, fields); err != nil {
			printDiagnostic(ctx.Stderr, name, err)

			failed++

			continue
		}

		if !ctx.Quiet {
			color.New(color.FgGreen).Fprintf(ctx.Stdout, "%s: OK\n", name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d inputs", ErrCheckFailed, failed, len(inputs))
	}

	return nil
}

// checkText runs the compile pipeline for its diagnostics only. With a nil
// registry field validation is skipped.
func checkText(text string, fields exdrf.FieldSet) error {
	tokens, err := tokenizer.Tokenize(text)
	if err != nil {
		return err
	}

	if fields == nil {
		_, err = parser.Parse(text, tokens)
		return err
	}

	_, err = parser.ParseWithValidator(text, tokens, parser.FieldValidator{Fields: fields})

	return err
}
