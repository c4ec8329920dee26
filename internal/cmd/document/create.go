package document

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/api"
	"github.com/formal-tools/fml/internal/config"
	"github.com/formal-tools/fml/internal/view"
	"github.com/formal-tools/fml/pkg/mdtex"
)

type createOptions struct {
	title        string
	file         string
	template     string
	fromMarkdown bool
	tags         []string
	public       bool
	output       string
	noColor      bool
	stdin        io.Reader // For testing; defaults to os.Stdin
}

// NewCmdCreate creates the document create command.
func NewCmdCreate() *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new document",
		Long: `Create a new document in the service.

Content can be provided via --file, piped on standard input, or left
empty to start from a template. Markdown files are converted to LaTeX
when --from-markdown is set or the file has a .md extension.`,
		Example: `  # Create from a template
  fml document create --title "Thesis" --template article

  # Create from a LaTeX file
  fml document create --title "Notes" --file notes.tex

  # Import a markdown file
  fml document create --title "Readme" --file notes.md

  # Create from stdin
  cat draft.tex | fml document create --title "Draft"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runCreate(opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Document title (required)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read content from file")
	cmd.Flags().StringVar(&opts.template, "template", "", "Template ID to start from")
	cmd.Flags().BoolVar(&opts.fromMarkdown, "from-markdown", false, "Convert content from markdown to LaTeX")
	cmd.Flags().StringSliceVar(&opts.tags, "tag", nil, "Tag to attach (repeatable)")
	cmd.Flags().BoolVar(&opts.public, "public", false, "Make the document publicly readable")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func runCreate(opts *createOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	// Create API client if not provided (allows injection for testing)
	if client == nil {
		var err error
		if client, err = newClient(); err != nil {
			return err
		}
	}

	content, err := readCreateContent(opts)
	if err != nil {
		return err
	}

	template := opts.template
	if template == "" && content == "" {
		// Fall back to the configured default template for empty documents.
		if cfg, err := config.LoadWithEnv(config.DefaultConfigPath()); err == nil {
			template = cfg.DefaultTemplate
		}
	}

	req := &api.CreateDocumentRequest{
		Title:      opts.title,
		Content:    content,
		TemplateID: template,
		Tags:       opts.tags,
		IsPublic:   opts.public,
	}

	doc, err := client.CreateDocument(context.Background(), req)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.output == "json" {
		return renderer.RenderJSON(doc)
	}

	renderer.Success(fmt.Sprintf("Created document: %s", doc.Title))
	renderer.RenderKeyValue("ID", doc.ID)
	if doc.TemplateID != "" {
		renderer.RenderKeyValue("Template", doc.TemplateID)
	}
	if len(doc.Tags) > 0 {
		renderer.RenderKeyValue("Tags", strings.Join(doc.Tags, ", "))
	}

	return nil
}

// readCreateContent reads document content from file or stdin and
// converts markdown input to LaTeX.
func readCreateContent(opts *createOptions) (string, error) {
	var raw string
	markdown := opts.fromMarkdown

	switch {
	case opts.file != "":
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		raw = string(data)
		ext := strings.ToLower(filepath.Ext(opts.file))
		if ext == ".md" || ext == ".markdown" {
			markdown = true
		}

	case opts.stdin != nil:
		data, err := io.ReadAll(opts.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = string(data)

	case !isTerminal():
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = string(data)
	}

	if raw == "" || !markdown {
		return raw, nil
	}

	latex, err := mdtex.Convert([]byte(raw))
	if err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return latex, nil
}
