// Package log provides logging utilities for relato, built on top of the
// standard slog package.
//
// The TruncateHandler bounds the length of logged attribute values.
// Report specifications carry user-supplied strings (titles, column
// lists, filter expressions) that can grow arbitrarily long; truncating
// them keeps terminal log lines readable without losing the leading
// context that identifies the value.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Debug("recipe resolved",
//	    "columns", strings.Join(columns, ", "), // truncated if oversized
//	)
//	slog.SetDefault(logger)
package log
