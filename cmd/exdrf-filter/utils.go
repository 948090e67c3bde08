package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	exdrf "github.com/TNick/exdrf-sub001"
)

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// readInput returns the filter text from path, or from stdin for an empty
// path, along with the name to use in diagnostics.
func readInput(path string, stdin io.Reader) (string, string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}

		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read input: %w", err)
	}

	return string(data), path, nil
}

// loadFields loads the field registry named by --schema. Without a schema
// it returns nil and field validation is skipped.
func (c *Context) loadFields() (exdrf.FieldSet, error) {
	if c.Schema == "" {
		return nil, nil
	}

	return exdrf.LoadFieldSet(c.Schema)
}
