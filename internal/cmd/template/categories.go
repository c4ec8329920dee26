package template

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/api"
	"github.com/formal-tools/fml/internal/view"
)

type categoriesOptions struct {
	output  string
	noColor bool
}

// NewCmdCategories creates the template categories command.
func NewCmdCategories() *cobra.Command {
	opts := &categoriesOptions{}

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List template categories",
		Long:  `List the categories templates are grouped into.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runCategories(opts, nil)
		},
	}

	return cmd
}

func runCategories(opts *categoriesOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	if client == nil {
		var err error
		if client, err = newClient(); err != nil {
			return err
		}
	}

	categories, err := client.ListCategories(context.Background())
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.output == "json" {
		return renderer.RenderJSON(categories)
	}

	if len(categories) == 0 {
		renderer.RenderText("No categories found.")
		return nil
	}

	headers := []string{"ID", "NAME", "DESCRIPTION"}
	var rows [][]string
	for _, c := range categories {
		rows = append(rows, []string{c.ID, c.Name, view.Truncate(c.Description, 60)})
	}

	renderer.RenderTable(headers, rows)
	return nil
}
