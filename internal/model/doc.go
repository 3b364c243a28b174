// Package model defines the core data structures used throughout relato.
//
// This package contains the following main types:
//   - ReportSpec: The finalized, immutable report specification
//   - Format, chart, orientation, and page size tokens for well-known values
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (builder, director, render) need to use
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
