package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/relatolabs/relato/internal/builder"
	"github.com/relatolabs/relato/internal/config"
	"github.com/relatolabs/relato/internal/director"
	"github.com/relatolabs/relato/internal/log"
	"github.com/relatolabs/relato/internal/model"
	"github.com/relatolabs/relato/internal/render"
	"github.com/spf13/cobra"
)

// flagDateLayout is the format accepted by the --start and --end flags.
const flagDateLayout = "2006-01-02"

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <recipe>",
		Short: "Generate a report specification from a recipe",
		Long: `Generate builds a report specification by running a named recipe and
renders the finalized specification.

Built-in recipes:
  monthly-sales        Monthly sales report (requires --label, --start, --end)
  quarterly-executive  Quarterly executive report (requires --label, --start, --end)
  annual-analytics     Annual analytics report (requires --year)

Custom recipes from the .relato.yaml configuration file take --label,
--start, and --end like the monthly recipe.

Examples:
  # Monthly sales report for January 2024
  relato generate monthly-sales --label Janeiro/2024 --start 2024-01-01 --end 2024-01-31

  # Annual analytics report as Markdown
  relato generate annual-analytics --year 2024 --markdown

  # Custom recipe from .relato.yaml, written to a file
  relato generate regional-sales --label "Março/2024" --start 2024-03-01 --end 2024-03-31 -o report.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerateCmd,
	}

	// Recipe parameter flags
	cmd.Flags().StringP("label", "l", "",
		"Period label interpolated into the report title (e.g., Janeiro/2024)")
	cmd.Flags().String("start", "",
		"Period start date in YYYY-MM-DD format")
	cmd.Flags().String("end", "",
		"Period end date in YYYY-MM-DD format")
	cmd.Flags().IntP("year", "y", 0,
		"Reporting year for the annual recipe")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Recipe configuration file path (default: .relato.yaml in current or XDG config directory)")

	// Output flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the rendered specification to the specified file path")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	return runGenerate(cfg, logger, cmd.OutOrStdout())
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if len(args) > 0 {
		cfg.RecipeName = args[0]
	}

	var err error

	cfg.Label, err = cmd.Flags().GetString("label")
	if err != nil {
		return nil, err
	}

	cfg.StartDate, err = getDateFlag(cmd, "start")
	if err != nil {
		return nil, err
	}

	cfg.EndDate, err = getDateFlag(cmd, "end")
	if err != nil {
		return nil, err
	}

	cfg.Year, err = cmd.Flags().GetInt("year")
	if err != nil {
		return nil, err
	}

	cfg.JSONOutput, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownOutput, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Load custom recipe definitions.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use an empty recipe set.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Recipes, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
}

// getDateFlag parses a date flag in YYYY-MM-DD format.
// An empty flag value yields the zero time.
func getDateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return time.Time{}, err
	}
	if value == "" {
		return time.Time{}, nil
	}

	date, err := time.Parse(flagDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q: expected YYYY-MM-DD", name, value)
	}
	return date, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// runGenerate resolves the recipe, builds the specification, and renders it.
func runGenerate(cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	logger.Info("generating report specification",
		"recipe", cfg.RecipeName,
		"label", cfg.Label,
	)

	spec, err := buildSpec(cfg)
	if err != nil {
		return err
	}

	logger.Debug("specification built",
		"title", spec.Title,
		"format", spec.Format,
		"columns", strings.Join(spec.Columns, ", "),
	)

	out, closer, err := openOutput(cfg, stdout)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer()
	}

	writer := createWriter(cfg, out)
	if _, err := writer.Write(spec); err != nil {
		return fmt.Errorf("failed to render report specification: %w", err)
	}

	if cfg.OutputFile != "" {
		logger.Info("report specification written", "path", cfg.OutputFile)
	}

	return nil
}

// buildSpec runs the selected recipe against a fresh builder.
// Errors from the builder's Build are propagated unchanged.
func buildSpec(cfg *config.Config) (model.ReportSpec, error) {
	b := builder.NewReportBuilder()

	switch cfg.RecipeName {
	case config.RecipeMonthlySales:
		return director.MonthlySalesReport(b, cfg.Label, cfg.StartDate, cfg.EndDate)
	case config.RecipeQuarterlyExecutive:
		return director.QuarterlyExecutiveReport(b, cfg.Label, cfg.StartDate, cfg.EndDate)
	case config.RecipeAnnualAnalytics:
		return director.AnnualAnalyticsReport(b, cfg.Year)
	}

	recipe, ok := cfg.Recipes.Lookup(cfg.RecipeName)
	if !ok {
		available := append(config.BuiltinRecipeNames(), cfg.Recipes.Names()...)
		return model.ReportSpec{}, fmt.Errorf("unknown recipe %q (available: %s)",
			cfg.RecipeName, strings.Join(available, ", "))
	}
	return director.CustomReport(b, recipe, cfg.Label, cfg.StartDate, cfg.EndDate)
}

// openOutput returns the destination writer for the rendered report.
// When an output file is configured, parent directories are created and
// the returned closer must be called; otherwise stdout is used directly.
func openOutput(cfg *config.Config, stdout io.Writer) (io.Writer, func(), error) {
	if cfg.OutputFile == "" {
		return stdout, nil, nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(cfg.OutputFile) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

// createWriter selects the renderer for the configured output format.
func createWriter(cfg *config.Config, out io.Writer) render.Writer {
	switch {
	case cfg.JSONOutput:
		return render.NewJSONWriter(out, render.WithPrettyPrint())
	case cfg.MarkdownOutput:
		return render.NewMarkdownWriter(out)
	default:
		return render.NewTextWriter(out)
	}
}
