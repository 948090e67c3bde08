// Package exdrf holds the shared contracts of the filter compiler: the
// structured SyntaxError diagnostics every stage reports and the field
// registry that filters are validated against.
//
// The pipeline lives in the subpackages. tokenizer splits filter text into
// positioned tokens, parser builds the AST, filter serializes the AST into
// the wire form query executors consume, formatter renders wire filters
// back to indented text and position maps rune offsets to AST nodes for
// editor tooling.
package exdrf
