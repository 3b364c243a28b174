package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/relatolabs/relato/internal/config"
	"github.com/relatolabs/relato/internal/model"
)

// executeGenerate runs the generate command with the given arguments and
// returns its stdout output.
func executeGenerate(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewGenerateCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// TestGenerateCmdMonthlySales tests the monthly built-in recipe end to end.
func TestGenerateCmdMonthlySales(t *testing.T) {
	t.Parallel()

	output, err := executeGenerate(t,
		"monthly-sales",
		"--label", "Janeiro/2024",
		"--start", "2024-01-01",
		"--end", "2024-01-31",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(output, "Title:   Vendas Mensais - Janeiro/2024") {
		t.Errorf("expected title line, got:\n%s", output)
	}
	if !strings.Contains(output, "Columns: Produto, Quantidade, Valor Total") {
		t.Errorf("expected column line, got:\n%s", output)
	}
	if !strings.Contains(output, "Report specification generated successfully.") {
		t.Error("expected success line")
	}
}

// TestGenerateCmdAnnualMarkdown tests the annual recipe with Markdown output.
func TestGenerateCmdAnnualMarkdown(t *testing.T) {
	t.Parallel()

	output, err := executeGenerate(t,
		"annual-analytics",
		"--year", "2024",
		"--markdown",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(output, "# Análise Anual de Vendas - 2024") {
		t.Errorf("expected markdown title, got:\n%s", output)
	}
	if !strings.Contains(output, "- Mês") {
		t.Errorf("expected column bullet list, got:\n%s", output)
	}
}

// TestGenerateCmdQuarterlyJSON tests the quarterly recipe with JSON output.
func TestGenerateCmdQuarterlyJSON(t *testing.T) {
	t.Parallel()

	output, err := executeGenerate(t,
		"quarterly-executive",
		"--label", "Q2/2024",
		"--start", "2024-04-01",
		"--end", "2024-06-30",
		"--json",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var spec model.ReportSpec
	if err := json.Unmarshal([]byte(output), &spec); err != nil {
		t.Fatalf("failed to decode JSON output: %v", err)
	}
	if spec.Title != "Relatório Executivo - Q2/2024" {
		t.Errorf("got title %q", spec.Title)
	}
	if spec.Format != model.FormatExcel {
		t.Errorf("got format %q, expected Excel", spec.Format)
	}
}

// TestGenerateCmdValidation tests configuration errors from the CLI surface.
func TestGenerateCmdValidation(t *testing.T) {
	t.Parallel()

	t.Run("missing recipe name", func(t *testing.T) {
		t.Parallel()

		_, err := executeGenerate(t)
		if !errors.Is(err, config.ErrNoRecipe) {
			t.Errorf("got %v, expected ErrNoRecipe", err)
		}
	})

	t.Run("missing label", func(t *testing.T) {
		t.Parallel()

		_, err := executeGenerate(t,
			"monthly-sales",
			"--start", "2024-01-01",
			"--end", "2024-01-31",
		)
		if !errors.Is(err, config.ErrMissingLabel) {
			t.Errorf("got %v, expected ErrMissingLabel", err)
		}
	})

	t.Run("missing year for annual recipe", func(t *testing.T) {
		t.Parallel()

		_, err := executeGenerate(t, "annual-analytics")
		if !errors.Is(err, config.ErrMissingYear) {
			t.Errorf("got %v, expected ErrMissingYear", err)
		}
	})

	t.Run("conflicting output formats", func(t *testing.T) {
		t.Parallel()

		_, err := executeGenerate(t,
			"annual-analytics",
			"--year", "2024",
			"--json", "--markdown",
		)
		if !errors.Is(err, config.ErrConflictingOutputFormats) {
			t.Errorf("got %v, expected ErrConflictingOutputFormats", err)
		}
	})

	t.Run("malformed start date", func(t *testing.T) {
		t.Parallel()

		_, err := executeGenerate(t,
			"monthly-sales",
			"--label", "Janeiro/2024",
			"--start", "01/01/2024",
			"--end", "2024-01-31",
		)
		if err == nil || !strings.Contains(err.Error(), "invalid --start date") {
			t.Errorf("got %v, expected date parse error", err)
		}
	})

	t.Run("unknown recipe", func(t *testing.T) {
		t.Parallel()

		_, err := executeGenerate(t,
			"no-such-recipe",
			"--label", "X",
			"--start", "2024-01-01",
			"--end", "2024-01-31",
		)
		if err == nil || !strings.Contains(err.Error(), "unknown recipe") {
			t.Errorf("got %v, expected unknown recipe error", err)
		}
	})
}

// TestGenerateCmdCustomRecipe tests generation from a config-defined recipe.
func TestGenerateCmdCustomRecipe(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "recipes.yaml")
	content := `recipes:
  regional-sales:
    title: "Vendas Regionais - {label}"
    format: PDF
    columns:
      - Região
      - Vendas
    totals: true
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	output, err := executeGenerate(t,
		"regional-sales",
		"--config", configPath,
		"--label", "Março/2024",
		"--start", "2024-03-01",
		"--end", "2024-03-31",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(output, "Title:   Vendas Regionais - Março/2024") {
		t.Errorf("expected custom recipe title, got:\n%s", output)
	}
	if !strings.Contains(output, "Totals:  included") {
		t.Error("expected totals line")
	}
}

// TestGenerateCmdOutputFile tests writing the rendered report to a file.
func TestGenerateCmdOutputFile(t *testing.T) {
	t.Parallel()

	outputPath := filepath.Join(t.TempDir(), "reports", "annual.txt")

	stdout, err := executeGenerate(t,
		"annual-analytics",
		"--year", "2024",
		"--output", outputPath,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stdout != "" {
		t.Errorf("expected no stdout output, got %q", stdout)
	}

	data, err := os.ReadFile(outputPath) //nolint:gosec // Test-owned path
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), "Análise Anual de Vendas - 2024") {
		t.Error("expected report content in output file")
	}
}

// TestGenerateCmdExplicitConfigMissing tests the explicit config path contract.
func TestGenerateCmdExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	_, err := executeGenerate(t,
		"monthly-sales",
		"--config", filepath.Join(t.TempDir(), "nope.yaml"),
		"--label", "Janeiro/2024",
		"--start", "2024-01-01",
		"--end", "2024-01-31",
	)
	if err == nil || !strings.Contains(err.Error(), "configuration file not found") {
		t.Errorf("got %v, expected missing config error", err)
	}
}
