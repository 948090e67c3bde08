package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// Context represents the global context for commands
type Context struct {
	Schema  string
	Verbose bool
	Quiet   bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CLI represents the command-line interface
var CLI struct {
	Schema  string `help:"Field schema file (YAML)" env:"EXDRF_SCHEMA" type:"path"`
	Verbose bool   `help:"Enable verbose output" short:"v"`
	Quiet   bool   `help:"Suppress output" short:"q"`

	Check   CheckCmd   `cmd:"" help:"Parse filter inputs and report diagnostics"`
	Fmt     FmtCmd     `cmd:"" help:"Reprint a filter as indented text or wire JSON"`
	Tokens  TokensCmd  `cmd:"" help:"Dump the token stream of a filter"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Stdout, "exdrf-filter v0.1.0")
	return nil
}

func main() {
	// .env must be loaded before kong resolves env-tagged flags.
	if err := loadEnvFiles(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	ctx := kong.Parse(&CLI)

	appCtx := &Context{
		Schema:  CLI.Schema,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
