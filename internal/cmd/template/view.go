package template

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/api"
	"github.com/formal-tools/fml/internal/view"
)

type viewOptions struct {
	output  string
	noColor bool
}

// NewCmdView creates the template view command.
func NewCmdView() *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view <template-id>",
		Short: "View a template",
		Long:  `View a template's details and LaTeX content.`,
		Example: `  # View the article template
  fml template view article`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runView(args[0], opts, nil)
		},
	}

	return cmd
}

func runView(templateID string, opts *viewOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	if client == nil {
		var err error
		if client, err = newClient(); err != nil {
			return err
		}
	}

	tmpl, err := client.GetTemplate(context.Background(), templateID)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.output == "json" {
		return renderer.RenderJSON(tmpl)
	}

	renderer.RenderKeyValue("Name", tmpl.Name)
	renderer.RenderKeyValue("ID", tmpl.ID)
	renderer.RenderKeyValue("Category", tmpl.Category)
	if tmpl.Description != "" {
		renderer.RenderKeyValue("Description", tmpl.Description)
	}
	fmt.Println()
	fmt.Println(tmpl.Content)

	return nil
}
