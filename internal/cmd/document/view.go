package document

import (
	"context"
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/api"
	"github.com/formal-tools/fml/internal/view"
	"github.com/formal-tools/fml/pkg/latex"
)

type viewOptions struct {
	raw     bool
	html    bool
	output  string
	noColor bool
}

// NewCmdView creates the document view command.
func NewCmdView() *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view <document-id>",
		Short: "View a document",
		Long: `View a document's content.

By default the LaTeX source is rendered to HTML and converted to
markdown for terminal display. Use --raw for the LaTeX source or
--html for the rendered HTML.`,
		Example: `  # View a document
  fml document view doc-1

  # Show the LaTeX source
  fml document view doc-1 --raw

  # Show the rendered HTML
  fml document view doc-1 --html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runView(args[0], opts, nil)
		},
	}

	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Show raw LaTeX source")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Show rendered HTML")

	return cmd
}

func runView(documentID string, opts *viewOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	if client == nil {
		var err error
		if client, err = newClient(); err != nil {
			return err
		}
	}

	doc, err := client.GetDocument(context.Background(), documentID)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.output == "json" {
		return renderer.RenderJSON(doc)
	}

	renderer.RenderKeyValue("Title", doc.Title)
	renderer.RenderKeyValue("ID", doc.ID)
	renderer.RenderKeyValue("Updated", doc.UpdatedAt.Format("2006-01-02 15:04"))
	fmt.Println()

	if doc.Content == "" {
		fmt.Println("(No content)")
		return nil
	}

	if opts.raw {
		fmt.Println(doc.Content)
		return nil
	}

	html := latex.NewRenderer().Render(doc.Content)

	if opts.html {
		fmt.Println(html)
	} else {
		markdown, err := htmltomarkdown.ConvertString(html)
		if err != nil {
			// Fall back to the rendered HTML if conversion fails
			fmt.Println("(Failed to convert to markdown, showing HTML)")
			fmt.Println()
			fmt.Println(html)
		} else {
			fmt.Println(markdown)
		}
	}

	// Surface source problems after the content
	if report := latex.Validate(doc.Content); !report.Valid {
		fmt.Println()
		for _, msg := range report.Errors {
			renderer.Warning(msg)
		}
	}

	return nil
}
