// Package template provides template-related commands.
package template

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/api"
	"github.com/formal-tools/fml/internal/config"
)

// NewCmdTemplate creates the template command.
func NewCmdTemplate() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"tmpl", "templates"},
		Short:   "Browse document templates",
		Long:    `Commands for listing and inspecting the templates documents can start from.`,
	}

	cmd.AddCommand(NewCmdList())
	cmd.AddCommand(NewCmdView())
	cmd.AddCommand(NewCmdCategories())

	return cmd
}

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
