package document

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/api"
	"github.com/formal-tools/fml/internal/view"
)

type editOptions struct {
	documentID string
	title      string
	file       string
	editor     bool
	tags       []string
	output     string
	noColor    bool
	stdin      io.Reader // For testing; defaults to os.Stdin
}

// NewCmdEdit creates the document edit command.
func NewCmdEdit() *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit <document-id>",
		Short: "Edit an existing document",
		Long: `Edit an existing document.

Content can be provided via:
- --file flag to read from a file
- Standard input (pipe content)
- Interactive editor (default, or with --editor flag)`,
		Example: `  # Edit a document (opens $EDITOR with current content)
  fml document edit doc-1

  # Update content from file
  fml document edit doc-1 --file thesis.tex

  # Update content from stdin
  cat thesis.tex | fml document edit doc-1

  # Update the title only
  fml document edit doc-1 --title "New title"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.documentID = args[0]
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runEdit(opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "New document title")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read content from file")
	cmd.Flags().BoolVar(&opts.editor, "editor", false, "Open editor for content")
	cmd.Flags().StringSliceVar(&opts.tags, "tag", nil, "Replace tags (repeatable)")

	return cmd
}

func runEdit(opts *editOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	if client == nil {
		var err error
		if client, err = newClient(); err != nil {
			return err
		}
	}

	req := &api.UpdateDocumentRequest{Tags: opts.tags}
	if opts.title != "" {
		req.Title = &opts.title
	}

	// Content comes from file, stdin, or an editor session. A bare
	// title change skips the content flow entirely.
	wantContent := opts.file != "" || opts.editor || opts.stdin != nil || !isTerminal()
	if !wantContent && opts.title == "" && len(opts.tags) == 0 {
		wantContent = true
		opts.editor = true
	}

	if wantContent {
		content, err := getEditContent(opts, client)
		if err != nil {
			return err
		}
		if strings.TrimSpace(content) == "" {
			return fmt.Errorf("document content cannot be empty")
		}
		req.Content = &content
	}

	doc, err := client.UpdateDocument(context.Background(), opts.documentID, req)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.output == "json" {
		return renderer.RenderJSON(doc)
	}

	renderer.Success(fmt.Sprintf("Updated document: %s", doc.Title))
	renderer.RenderKeyValue("ID", doc.ID)
	renderer.RenderKeyValue("Updated", doc.UpdatedAt.Format("2006-01-02 15:04"))

	return nil
}

func getEditContent(opts *editOptions, client *api.Client) (string, error) {
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}

	if opts.stdin != nil {
		data, err := io.ReadAll(opts.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	if !isTerminal() && !opts.editor {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	// Open editor with the current content.
	doc, err := client.GetDocument(context.Background(), opts.documentID)
	if err != nil {
		return "", err
	}
	return openEditor(doc.Content)
}

func openEditor(existing string) (string, error) {
	tmpfile, err := os.CreateTemp("", "fml-edit-*.tex")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.WriteString(existing); err != nil {
		return "", err
	}
	_ = tmpfile.Close()

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}

	cmd := exec.Command(editor, tmpfile.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor failed: %w", err)
	}

	data, err := os.ReadFile(tmpfile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited content: %w", err)
	}

	return string(data), nil
}
