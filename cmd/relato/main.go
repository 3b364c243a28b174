// Package main provides the entry point for the relato CLI.
//
// relato assembles report specifications from named recipes and renders
// them as text, Markdown, or JSON.
//
// Usage:
//
//	relato generate <recipe> [flags]
//	relato recipes
//
// See --help for all available options.
package main

// main is the entry point for relato.
func main() {
	Execute()
}
