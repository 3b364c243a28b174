// Package config provides configuration structures and utilities for relato.
// It defines the CLI configuration for report generation, the recipe
// definition file format, and the search path for locating that file.
package config
