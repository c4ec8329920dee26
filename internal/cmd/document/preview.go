package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/formal-tools/fml/internal/preview"
	"github.com/formal-tools/fml/internal/view"
)

type previewOptions struct {
	out     string
	delay   time.Duration
	once    bool
	output  string
	noColor bool
}

// NewCmdPreview creates the document preview command.
func NewCmdPreview() *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Live-preview a local LaTeX file as HTML",
		Long: `Render a local LaTeX file to an HTML page and keep it up to date
as the file changes. Edits are debounced so rapid saves produce a
single re-render of the latest contents.

Open the output file in a browser and refresh to see changes.`,
		Example: `  # Watch a file, writing draft.tex.html next to it
  fml document preview draft.tex

  # Render once and exit
  fml document preview draft.tex --once

  # Custom output location and debounce delay
  fml document preview draft.tex --out /tmp/draft.html --delay 200ms`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runPreview(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "Output HTML file (default: <file>.html)")
	cmd.Flags().DurationVar(&opts.delay, "delay", preview.DefaultDelay, "Debounce delay between edits and re-renders")
	cmd.Flags().BoolVar(&opts.once, "once", false, "Render once and exit instead of watching")

	return cmd
}

func runPreview(path string, opts *previewOptions) error {
	outPath := opts.out
	if outPath == "" {
		outPath = path + ".html"
	}
	title := filepath.Base(path)

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	onUpdate := func(r preview.Result) {
		if err := preview.WritePage(outPath, title, r); err != nil {
			renderer.Error(err.Error())
			return
		}
		if r.Report.Valid {
			renderer.Success(fmt.Sprintf("Rendered %s → %s", title, outPath))
		} else {
			renderer.Warning(fmt.Sprintf("Rendered %s → %s (%d issue(s))", title, outPath, len(r.Report.Errors)))
			for _, msg := range r.Report.Errors {
				renderer.Warning("  " + msg)
			}
		}
	}

	p := preview.NewPreviewer(opts.delay, onUpdate)
	defer p.Close()

	if opts.once {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		p.Update(string(data))
		p.Flush()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer.RenderText(fmt.Sprintf("Watching %s (Ctrl-C to stop)", path))

	err := preview.Watch(ctx, p, path, 0)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
