package document

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/api"
	"github.com/formal-tools/fml/internal/view"
)

type deleteOptions struct {
	force   bool
	output  string
	noColor bool
}

// NewCmdDelete creates the document delete command.
func NewCmdDelete() *cobra.Command {
	opts := &deleteOptions{}

	cmd := &cobra.Command{
		Use:     "delete <document-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a document",
		Long:    `Delete a document from the service. Asks for confirmation unless --force is given.`,
		Example: `  # Delete with confirmation
  fml document delete doc-1

  # Delete without confirmation
  fml document delete doc-1 --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runDelete(args[0], opts, nil)
		},
	}

	cmd.Flags().BoolVar(&opts.force, "force", false, "Skip confirmation prompt")

	return cmd
}

func runDelete(documentID string, opts *deleteOptions, client *api.Client) error {
	if client == nil {
		var err error
		if client, err = newClient(); err != nil {
			return err
		}
	}

	if !opts.force {
		doc, err := client.GetDocument(context.Background(), documentID)
		if err != nil {
			return err
		}

		var confirmed bool
		err = huh.NewConfirm().
			Title("Delete document?").
			Description(fmt.Sprintf("%q (%s) will be permanently deleted.", doc.Title, doc.ID)).
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := client.DeleteDocument(context.Background(), documentID); err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.Success(fmt.Sprintf("Deleted document %s", documentID))

	return nil
}
