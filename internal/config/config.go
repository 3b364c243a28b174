package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// AppName is the application name used for XDG directory paths.
const AppName = "relato"

// Built-in recipe names. These are reserved: recipes in the configuration
// file with one of these names are ignored at lookup time so that a config
// file can never silently shadow a built-in recipe.
const (
	// RecipeMonthlySales is the monthly sales report recipe.
	RecipeMonthlySales = "monthly-sales"

	// RecipeQuarterlyExecutive is the quarterly executive report recipe.
	RecipeQuarterlyExecutive = "quarterly-executive"

	// RecipeAnnualAnalytics is the annual analytics report recipe.
	RecipeAnnualAnalytics = "annual-analytics"
)

// BuiltinRecipeNames returns the reserved built-in recipe names in
// display order.
func BuiltinRecipeNames() []string {
	return []string{RecipeMonthlySales, RecipeQuarterlyExecutive, RecipeAnnualAnalytics}
}

// IsBuiltinRecipe reports whether name is a reserved built-in recipe name.
func IsBuiltinRecipe(name string) bool {
	switch name {
	case RecipeMonthlySales, RecipeQuarterlyExecutive, RecipeAnnualAnalytics:
		return true
	}
	return false
}

// Config holds all configuration options for one generate invocation.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// RecipeName selects the recipe to run: one of the built-in names or
	// a recipe defined in the configuration file.
	RecipeName string

	// Label is the period label interpolated into the report title
	// (e.g., "Janeiro/2024" for the monthly recipe, "Q1/2024" for the
	// quarterly one). Not used by the annual recipe.
	Label string

	// StartDate is the beginning of the reporting period.
	// Not used by the annual recipe, which derives its period from Year.
	StartDate time.Time

	// EndDate is the end of the reporting period.
	EndDate time.Time

	// Year is the reporting year for the annual recipe.
	Year int

	// MarkdownOutput enables Markdown report output instead of plain text.
	// Mutually exclusive with JSONOutput.
	MarkdownOutput bool

	// JSONOutput enables JSON report output instead of plain text.
	// Mutually exclusive with MarkdownOutput.
	JSONOutput bool

	// OutputFile is the output file path for the rendered report.
	// When empty, the report is written to stdout.
	OutputFile string

	// ConfigFilePath is the path to the recipe configuration file.
	// If empty, the tool searches for .relato.yaml in the current
	// directory and then in the XDG config directory.
	ConfigFilePath string

	// Recipes holds custom recipe definitions loaded from the
	// configuration file. Populated by LoadConfigFile.
	Recipes *File

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Recipes: &File{Recipes: make(map[string]Recipe)},
	}
}

// XDGConfigDir returns the XDG config directory for relato.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/relato
// On macOS: ~/Library/Application Support/relato
// On Windows: %APPDATA%\relato
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
//
// Design decision: We validate at the config level rather than letting
// missing parameters surface later as builder validation errors, so the
// user gets a message naming the flag to fix. We return the first error
// found because fixing one error often makes others irrelevant.
//
// Note that Validate checks only that the recipe's inputs are present.
// It deliberately does not check that StartDate precedes EndDate, nor
// that Year looks plausible: the report core accepts any period.
func (c *Config) Validate() error {
	if c.RecipeName == "" {
		return ErrNoRecipe
	}

	if c.JSONOutput && c.MarkdownOutput {
		return ErrConflictingOutputFormats
	}

	// The annual recipe derives its period from the year; every other
	// recipe needs an explicit label and period.
	if c.RecipeName == RecipeAnnualAnalytics {
		if c.Year == 0 {
			return ErrMissingYear
		}
		return nil
	}

	if c.Label == "" {
		return ErrMissingLabel
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return ErrMissingDates
	}

	return nil
}
