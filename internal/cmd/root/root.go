// Package root provides the root command for the fml CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/internal/cmd/chat"
	"github.com/formal-tools/fml/internal/cmd/completion"
	"github.com/formal-tools/fml/internal/cmd/configcmd"
	"github.com/formal-tools/fml/internal/cmd/document"
	"github.com/formal-tools/fml/internal/cmd/initcmd"
	"github.com/formal-tools/fml/internal/cmd/template"
	"github.com/formal-tools/fml/internal/version"
)

// NewCmdRoot creates the root command for fml.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fml",
		Short: "A command-line interface for the Formal document service",
		Long: `fml is a CLI tool for working with LaTeX documents stored in a
Formal document service.

It provides commands for creating, editing, and previewing documents,
browsing templates, and asking the writing assistant for help.

Get started by running: fml init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/fml/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("fml version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(document.NewCmdDocument())
	cmd.AddCommand(template.NewCmdTemplate())
	cmd.AddCommand(chat.NewCmdChat())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
