package configcmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/api"
	"github.com/formal-tools/fml/internal/config"
	"github.com/formal-tools/fml/internal/view"
)

type testOptions struct {
	output  string
	noColor bool
}

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	opts := &testOptions{}

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the connection to the service",
		Long:  `Check that the configured service URL is reachable and the service reports healthy.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runTest(opts, nil)
		},
	}

	return cmd
}

func runTest(opts *testOptions, client *api.Client) error {
	if client == nil {
		cfg, err := config.LoadWithEnv(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w (run 'fml init' to configure)", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w (run 'fml init' to configure)", err)
		}

		cfg.NormalizeURL()
		client = api.NewClient(cfg.URL, cfg.APIToken)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Health(ctx); err != nil {
		renderer.Error("Connection failed")
		return err
	}

	renderer.Success("Service is reachable and healthy")
	return nil
}
