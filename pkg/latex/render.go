// Package latex converts a LaTeX subset to HTML fragments and checks
// source structure. Rendering is a fixed pipeline of text-rewriting
// passes: math and verbatim spans are extracted up front, protected by
// placeholder tokens, and reinserted once every later pass has run.
package latex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wyatt915/treeblood"
)

// Renderer turns LaTeX source into an HTML fragment. It never returns
// an error: a bad math expression degrades to an inline error marker,
// and a failure anywhere in the pipeline replaces the whole output with
// a single error block.
//
// A Renderer carries per-document math state and is not safe for
// concurrent use; create one per goroutine.
type Renderer struct {
	math *treeblood.Pitziil
}

// NewRenderer creates a renderer with the built-in math macro table.
func NewRenderer() *Renderer {
	return &Renderer{math: treeblood.NewDocument(MathMacros, false)}
}

// Render runs the full pass pipeline over source and returns the HTML
// fragment. The output is not fully escaped: verbatim and code bodies
// pass through as-is, so callers embedding the fragment in a
// security-sensitive page need their own sanitizing layer.
func (r *Renderer) Render(source string) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			out = fmt.Sprintf(`<div class="tex-render-error">rendering failed: %v</div>`, rec)
		}
	}()

	st := &renderState{}
	s := r.renderMath(source, st)
	s = renderEnvironments(s, st)
	s = renderCommands(s)
	s = renderFormatting(s)
	s = cleanup(s)
	return st.restore(s)
}

// Placeholder tokens mark protected spans so the later passes cannot
// corrupt them. Alphanumeric only: anything else risks being rewritten
// by the formatting pass.
const (
	placeholderPrefix = "FMLSPAN"
	placeholderSuffix = "END"
)

type protectedSpan struct {
	html  string
	block bool
}

// renderState collects the protected spans of a single Render call.
// Nothing survives across calls.
type renderState struct {
	spans []protectedSpan
}

func (st *renderState) protect(html string, block bool) string {
	st.spans = append(st.spans, protectedSpan{html: html, block: block})
	return fmt.Sprintf("%s%d%s", placeholderPrefix, len(st.spans)-1, placeholderSuffix)
}

// restore reinserts protected spans. A block span swallows the
// paragraph wrapper when its placeholder ended up alone inside one.
func (st *renderState) restore(s string) string {
	for i, span := range st.spans {
		token := fmt.Sprintf("%s%d%s", placeholderPrefix, i, placeholderSuffix)
		if span.block {
			wrapped := "<p>" + token + "</p>"
			if strings.Contains(s, wrapped) {
				s = strings.Replace(s, wrapped, span.html, 1)
				continue
			}
		}
		s = strings.Replace(s, token, span.html, 1)
	}
	return s
}

var (
	textcolorPattern = regexp.MustCompile(`\\textcolor\{([^{}]*)\}\{([^{}]*)\}`)
	commandPattern   = regexp.MustCompile(`\\([a-zA-Z]+)\{([^{}]*)\}`)
)

// renderCommands applies the command table. The generic pattern only
// matches single-brace-depth arguments, so the table runs a few rounds
// to resolve shallow nesting; anything deeper stays visible as raw
// text, as do commands the table does not know.
func renderCommands(s string) string {
	for range 3 {
		s = textcolorPattern.ReplaceAllStringFunc(s, func(m string) string {
			sub := textcolorPattern.FindStringSubmatch(m)
			return `<span class="` + colorClass(sub[1]) + `">` + sub[2] + `</span>`
		})
		s = commandPattern.ReplaceAllStringFunc(s, func(m string) string {
			sub := commandPattern.FindStringSubmatch(m)
			rule, ok := commandTable[sub[1]]
			if !ok {
				return m
			}
			return rule(sub[2])
		})
	}
	return strings.ReplaceAll(s, `\maketitle`, "")
}

var (
	lineBreakPattern = regexp.MustCompile(`\\\\(\[[^\]]*\])?`)
	paragraphSplit   = regexp.MustCompile(`\n[ \t]*\n`)
)

var escapeReplacer = strings.NewReplacer(
	`\&`, "&",
	`\_`, "_",
	`\#`, "#",
	`\$`, "$",
	`\%`, "%",
)

var spacingReplacer = strings.NewReplacer(
	`\qquad`, "&emsp;&emsp;",
	`\quad`, "&emsp;",
	`\;`, "&ensp;",
	`\,`, "&thinsp;",
)

// renderFormatting handles line breaks, escaped literals, spacing
// commands and paragraph wrapping. A bracket argument after \\ is a
// spacing override and is ignored.
func renderFormatting(s string) string {
	s = lineBreakPattern.ReplaceAllString(s, "<br>")
	s = escapeReplacer.Replace(s)
	s = spacingReplacer.Replace(s)

	parts := paragraphSplit.Split(s, -1)
	paras := make([]string, 0, len(parts))
	for _, p := range parts {
		paras = append(paras, "<p>"+strings.TrimSpace(p)+"</p>")
	}
	return strings.Join(paras, "\n")
}

var (
	emptyParagraphPattern = regexp.MustCompile(`<p>\s*</p>`)
	usepackagePattern     = regexp.MustCompile(`\\usepackage(\[[^\]]*\])?\{[^{}]*\}`)
	documentclassPattern  = regexp.MustCompile(`\\documentclass(\[[^\]]*\])?\{[^{}]*\}`)
)

// cleanup strips structural no-ops left over from the earlier passes.
// It is idempotent: a second run over its own output changes nothing.
func cleanup(s string) string {
	s = strings.ReplaceAll(s, `\begin{document}`, "")
	s = strings.ReplaceAll(s, `\end{document}`, "")
	s = usepackagePattern.ReplaceAllString(s, "")
	s = documentclassPattern.ReplaceAllString(s, "")
	s = emptyParagraphPattern.ReplaceAllString(s, "")
	return s
}
