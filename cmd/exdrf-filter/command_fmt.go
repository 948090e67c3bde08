package main

import (
	"fmt"

	"github.com/TNick/exdrf-sub001/filter"
	"github.com/TNick/exdrf-sub001/formatter"
)

// FmtCmd represents the fmt command
type FmtCmd struct {
	Input string `arg:"" optional:"" help:"Filter file (default: stdin)" type:"path"`
	JSON  bool   `short:"j" help:"Print the JSON wire format instead of text"`
}

// Run executes the fmt command
func (cmd *FmtCmd) Run(ctx *Context) error {
	fields, err := ctx.loadFields()
	if err != nil {
		return err
	}

	text, name, err := readInput(cmd.Input, ctx.Stdin)
	if err != nil {
		return err
	}

	var f filter.Filter
	if fields == nil {
		f, err = filter.Compile(text)
	} else {
		f, err = filter.CompileWithFields(text, fields)
	}

	if err != nil {
		printDiagnostic(ctx.Stderr, name, err)
		return ErrInvalidFilter
	}

	if cmd.JSON {
		data, err := filter.EncodeJSON(f)
		if err != nil {
			return err
		}

		fmt.Fprintln(ctx.Stdout, string(data))

		return nil
	}

	fmt.Fprint(ctx.Stdout, formatter.FormatFilter(f))

	return nil
}
