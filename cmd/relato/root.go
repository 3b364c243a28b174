// Package main provides the entry point for the relato CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for relato.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relato",
		Short: "Report specification generator",
		Long: `relato assembles report specifications through named recipes and renders
them as text, Markdown, or JSON.

Built-in recipes cover monthly sales, quarterly executive, and annual
analytics reports. Custom recipes can be defined in a .relato.yaml file.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewRecipesCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
