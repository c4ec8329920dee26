// Package chat provides the writing assistant command.
package chat

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/api"
	"github.com/formal-tools/fml/internal/config"
	"github.com/formal-tools/fml/internal/view"
)

type chatOptions struct {
	context string
	output  string
	noColor bool
}

// NewCmdChat creates the chat command.
func NewCmdChat() *cobra.Command {
	opts := &chatOptions{}

	cmd := &cobra.Command{
		Use:   "chat <document-id> <message>",
		Short: "Ask the writing assistant about a document",
		Long: `Send a message to the writing assistant in the context of a document.

The assistant sees the document content and replies with advice and,
when it has them, concrete suggestions.`,
		Example: `  # Ask for feedback
  fml chat doc-1 "How can I tighten the introduction?"

  # Point the assistant at a specific passage
  fml chat doc-1 "Is this claim well supported?" --context "In section 2 we argue..."`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runChat(args[0], args[1], opts, nil)
		},
	}

	cmd.Flags().StringVar(&opts.context, "context", "", "Passage to focus the assistant on")

	return cmd
}

func runChat(documentID, message string, opts *chatOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

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

	req := &api.ChatRequest{
		DocumentID: documentID,
		Message:    message,
	}
	if opts.context != "" {
		req.Context = map[string]interface{}{"selection": opts.context}
	}

	resp, err := client.SendChat(context.Background(), req)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.output == "json" {
		return renderer.RenderJSON(resp)
	}

	renderer.RenderText(resp.Message)

	if len(resp.Suggestions) > 0 {
		fmt.Println()
		renderer.RenderText("Suggestions:")
		for _, s := range resp.Suggestions {
			renderer.RenderText("  - " + s)
		}
	}

	return nil
}
