package template

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/api"
	"github.com/formal-tools/fml/internal/view"
)

type listOptions struct {
	category string
	output   string
	noColor  bool
}

// NewCmdList creates the template list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List templates",
		Long:    `List available templates, optionally filtered by category.`,
		Example: `  # List all templates
  fml template list

  # Only academic templates
  fml template list --category academic`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runList(opts, nil)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "Filter by category ID")

	return cmd
}

func runList(opts *listOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	if client == nil {
		var err error
		if client, err = newClient(); err != nil {
			return err
		}
	}

	templates, err := client.ListTemplates(context.Background(), opts.category)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.output == "json" {
		return renderer.RenderJSON(templates)
	}

	if len(templates) == 0 {
		renderer.RenderText("No templates found.")
		return nil
	}

	headers := []string{"ID", "NAME", "CATEGORY", "DESCRIPTION"}
	var rows [][]string
	for _, t := range templates {
		rows = append(rows, []string{
			t.ID,
			t.Name,
			t.Category,
			view.Truncate(t.Description, 50),
		})
	}

	renderer.RenderTable(headers, rows)
	return nil
}
