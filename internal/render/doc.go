// Package render turns finalized report specifications into output.
//
// This package contains writers for different output formats:
//   - TextWriter: Human-readable text output for terminal display
//   - MarkdownWriter: GitHub Flavored Markdown for documentation and sharing
//   - JSONWriter: Structured JSON output for tool integration
//
// All writers honor the same presence gating: attributes that are unset
// on the spec (header, footer, chart, filters, grouping) produce no
// output line, while the column list is always rendered, even when empty.
//
// Design decision: We separate rendering from the spec data structures
// (which are in the model package) to follow the single responsibility
// principle. This allows adding new output formats without modifying
// the core data structures.
package render
