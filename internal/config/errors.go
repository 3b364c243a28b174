package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoRecipe is returned when no recipe name is specified.
	ErrNoRecipe = errors.New("no recipe specified: provide a recipe name as the first argument")

	// ErrConflictingOutputFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingOutputFormats = errors.New("conflicting output formats: --json and --markdown cannot be used together")

	// ErrMissingLabel is returned when a recipe that interpolates a period
	// label (monthly, quarterly, or custom) is invoked without --label.
	ErrMissingLabel = errors.New("missing label: this recipe requires --label (e.g., --label Janeiro/2024)")

	// ErrMissingDates is returned when a recipe that takes an explicit period
	// is invoked without both --start and --end.
	ErrMissingDates = errors.New("missing period: this recipe requires both --start and --end dates")

	// ErrMissingYear is returned when the annual recipe is invoked without --year.
	ErrMissingYear = errors.New("missing year: the annual recipe requires --year (e.g., --year 2024)")
)

// ErrConfigNotFound is returned when the recipe configuration file does not exist.
var ErrConfigNotFound = errors.New("recipe configuration file not found")
