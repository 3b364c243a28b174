package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// executeRecipes runs the recipes command with the given arguments and
// returns its stdout output.
func executeRecipes(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRecipesCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// TestRecipesCmd tests recipe listing.
func TestRecipesCmd(t *testing.T) {
	t.Parallel()

	t.Run("lists all built-in recipes", func(t *testing.T) {
		t.Parallel()

		output, err := executeRecipes(t)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, name := range []string{"monthly-sales", "quarterly-executive", "annual-analytics"} {
			if !strings.Contains(output, name) {
				t.Errorf("expected output to list %q", name)
			}
		}
	})

	t.Run("lists custom recipes from a config file", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "recipes.yaml")
		content := `recipes:
  regional-sales:
    title: "Vendas Regionais - {label}"
    format: PDF
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		output, err := executeRecipes(t, "--config", configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(output, "Custom recipes") {
			t.Error("expected custom recipes section")
		}
		if !strings.Contains(output, "regional-sales") {
			t.Error("expected custom recipe name")
		}
	})

	t.Run("explicit missing config file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := executeRecipes(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil || !strings.Contains(err.Error(), "configuration file not found") {
			t.Errorf("got %v, expected missing config error", err)
		}
	})
}
