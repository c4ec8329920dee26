package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/api"
	"github.com/formal-tools/fml/internal/view"
)

type listOptions struct {
	limit   int
	skip    int
	output  string
	noColor bool
}

// NewCmdList creates the document list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List documents",
		Long:    `List documents stored in the service, most recently updated first.`,
		Example: `  # List documents
  fml document list

  # Page through results
  fml document list --limit 20 --skip 20

  # Output as JSON
  fml document list -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runList(opts, nil)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 25, "Maximum number of documents to return")
	cmd.Flags().IntVar(&opts.skip, "skip", 0, "Number of documents to skip")

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

	docs, err := client.ListDocuments(context.Background(), &api.ListDocumentsOptions{
		Skip:  opts.skip,
		Limit: opts.limit,
	})
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.output == "json" {
		return renderer.RenderJSON(docs)
	}

	if len(docs) == 0 {
		renderer.RenderText("No documents found.")
		return nil
	}

	headers := []string{"ID", "TITLE", "UPDATED", "TAGS"}
	var rows [][]string
	for _, doc := range docs {
		rows = append(rows, []string{
			doc.ID,
			view.Truncate(doc.Title, 40),
			doc.UpdatedAt.Format("2006-01-02 15:04"),
			strings.Join(doc.Tags, ", "),
		})
	}

	renderer.RenderTable(headers, rows)

	if len(docs) == opts.limit {
		fmt.Printf("\n(showing %d results, use --skip %d to see more)\n", len(docs), opts.skip+opts.limit)
	}

	return nil
}
