package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/internal/config"
	"github.com/formal-tools/fml/internal/view"
)

type showOptions struct {
	output  string
	noColor bool
}

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active configuration",
		Long:  `Show the configuration after applying environment variable overrides. The API token is masked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runShow(opts)
		},
	}

	return cmd
}

func runShow(opts *showOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	configPath := config.DefaultConfigPath()
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	masked := maskToken(cfg.APIToken)

	if opts.output == "json" {
		return renderer.RenderJSON(map[string]string{
			"url":              cfg.URL,
			"api_token":        masked,
			"output_format":    cfg.OutputFormat,
			"default_template": cfg.DefaultTemplate,
			"config_path":      configPath,
		})
	}

	renderer.RenderKeyValue("Config file", configPath)
	renderer.RenderKeyValue("URL", cfg.URL)
	renderer.RenderKeyValue("API token", masked)
	if cfg.OutputFormat != "" {
		renderer.RenderKeyValue("Output format", cfg.OutputFormat)
	}
	if cfg.DefaultTemplate != "" {
		renderer.RenderKeyValue("Default template", cfg.DefaultTemplate)
	}

	return nil
}

// maskToken keeps a short prefix so tokens are recognizable without
// being readable.
func maskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + "****"
}
