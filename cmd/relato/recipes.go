package main

import (
	"fmt"
	"sort"

	"github.com/relatolabs/relato/internal/config"
	"github.com/spf13/cobra"
)

// builtinRecipeSummaries maps built-in recipe names to one-line descriptions
// shown by the recipes command.
var builtinRecipeSummaries = map[string]string{
	config.RecipeMonthlySales:       "Monthly sales report (PDF, Portrait/A4, grouped by Categoria)",
	config.RecipeQuarterlyExecutive: "Quarterly executive report (Excel, Landscape/A4, grouped by Região)",
	config.RecipeAnnualAnalytics:    "Annual analytics report (PDF, Landscape/A3, grouped by Mês)",
}

// NewRecipesCmd creates the recipes command.
func NewRecipesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List available report recipes",
		Long: `Recipes lists the built-in report recipes and any custom recipes
defined in the .relato.yaml configuration file.

Examples:
  # List recipes, including those from the default config file locations
  relato recipes

  # List recipes from a specific config file
  relato recipes -c myrecipes.yaml`,
		RunE: runRecipesCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Recipe configuration file path (default: .relato.yaml in current or XDG config directory)")

	return cmd
}

// runRecipesCmd executes the recipes command.
func runRecipesCmd(cmd *cobra.Command, _ []string) error {
	configFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Built-in recipes:")
	for _, name := range config.BuiltinRecipeNames() {
		fmt.Fprintf(out, "  %-22s %s\n", name, builtinRecipeSummaries[name])
	}

	// Custom recipes are optional: a missing default config file is not an
	// error, but an explicitly specified one must exist.
	configPath := config.FindConfigFile(configFilePath)
	if configPath == "" {
		if configFilePath != "" {
			return fmt.Errorf("configuration file not found: %s", configFilePath)
		}
		return nil
	}

	file, err := config.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	names := file.Names()
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)

	fmt.Fprintf(out, "\nCustom recipes (%s):\n", configPath)
	for _, name := range names {
		recipe, _ := file.Lookup(name)
		fmt.Fprintf(out, "  %-22s %s\n", name, recipe.Title)
	}

	return nil
}
