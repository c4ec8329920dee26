// Package initcmd provides the init command for fml.
package initcmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/api"
	"github.com/formal-tools/fml/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		url      string
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize fml configuration",
		Long: `Initialize fml with the address of your Formal document service.

This command will guide you through setting up the service URL and an
optional API token. The configuration is saved to ~/.config/fml/config.yml.`,
		Example: `  # Interactive setup
  fml init

  # Pre-populate the service URL
  fml init --url http://localhost:8000`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(url, noVerify)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Service URL (e.g., http://localhost:8000)")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip connection verification")

	return cmd
}

func runInit(prefillURL string, noVerify bool) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{OutputFormat: "table"}
	if prefillURL != "" {
		cfg.URL = prefillURL
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Service URL").
				Description("Address of your Formal document service").
				Placeholder("http://localhost:8000").
				Value(&cfg.URL).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("URL is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("API Token (optional)").
				Description("Leave empty for unsecured local deployments").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.APIToken),

			huh.NewSelect[string]().
				Title("Default output format").
				Options(
					huh.NewOption("table", "table"),
					huh.NewOption("json", "json"),
					huh.NewOption("plain", "plain"),
				).
				Value(&cfg.OutputFormat),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.NormalizeURL()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Verify connection unless skipped
	if !noVerify {
		fmt.Print("Verifying connection... ")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := api.NewClient(cfg.URL, cfg.APIToken).Health(ctx); err != nil {
			fmt.Println("failed!")
			return fmt.Errorf("connection verification failed: %w", err)
		}
		fmt.Println("success!")
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  fml template list")
	fmt.Println("  fml document create --title \"My first document\"")

	return nil
}
