// Package document provides document-related commands.
package document

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/api"
	"github.com/formal-tools/fml/internal/config"
)

// NewCmdDocument creates the document command.
func NewCmdDocument() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "document",
		Aliases: []string{"doc", "docs"},
		Short:   "Manage LaTeX documents",
		Long:    `Commands for creating, viewing, editing, listing, and previewing documents.`,
	}

	cmd.AddCommand(NewCmdList())
	cmd.AddCommand(NewCmdView())
	cmd.AddCommand(NewCmdCreate())
	cmd.AddCommand(NewCmdEdit())
	cmd.AddCommand(NewCmdDelete())
	cmd.AddCommand(NewCmdPreview())

	return cmd
}

// newClient loads the configuration and builds an API client.
func newClient() (*api.Client, error) {
	cfg, err := config.LoadWithEnv(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w (run 'fml init' to configure)", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'fml init' to configure)", err)
	}

	cfg.NormalizeURL()
	return api.NewClient(cfg.URL, cfg.APIToken), nil
}

// isTerminal checks if stdin is a terminal.
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}
