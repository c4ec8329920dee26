// Package mdtex converts Markdown documents to LaTeX source, used when
// importing plain notes into the document service.
package mdtex

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// Convert turns markdown into LaTeX body source. Raw HTML blocks have
// no LaTeX equivalent and are dropped; everything else maps onto the
// command and environment subset the renderer understands.
func Convert(source []byte) (string, error) {
	doc := md.Parser().Parse(text.NewReader(source))
	var sb strings.Builder
	writeBlocks(&sb, doc, source)
	return strings.TrimSpace(sb.String()) + "\n", nil
}

func writeBlocks(sb *strings.Builder, parent ast.Node, src []byte) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			sb.WriteString(`\` + sectionCommand(node.Level) + `{`)
			writeInline(sb, node, src)
			sb.WriteString("}\n\n")
		case *ast.Paragraph:
			writeInline(sb, node, src)
			sb.WriteString("\n\n")
		case *ast.TextBlock:
			writeInline(sb, node, src)
			sb.WriteString("\n")
		case *ast.List:
			env := "itemize"
			if node.IsOrdered() {
				env = "enumerate"
			}
			sb.WriteString(`\begin{` + env + "}\n")
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				var body strings.Builder
				writeBlocks(&body, item, src)
				sb.WriteString(`\item ` + strings.TrimSpace(body.String()) + "\n")
			}
			sb.WriteString(`\end{` + env + "}\n\n")
		case *ast.Blockquote:
			sb.WriteString("\\begin{quote}\n")
			writeBlocks(sb, node, src)
			sb.WriteString("\\end{quote}\n\n")
		case *ast.FencedCodeBlock:
			writeListing(sb, node.Lines(), src)
		case *ast.CodeBlock:
			writeListing(sb, node.Lines(), src)
		case *ast.ThematicBreak:
			sb.WriteString("\\bigskip\n\n")
		case *ast.HTMLBlock:
			// dropped
		default:
			if n.Type() == ast.TypeBlock {
				writeBlocks(sb, n, src)
			}
		}
	}
}

func writeListing(sb *strings.Builder, lines *text.Segments, src []byte) {
	sb.WriteString("\\begin{lstlisting}\n")
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	sb.WriteString("\\end{lstlisting}\n\n")
}

func writeInline(sb *strings.Builder, parent ast.Node, src []byte) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Text:
			sb.WriteString(Escape(string(node.Segment.Value(src))))
			switch {
			case node.HardLineBreak():
				sb.WriteString(" \\\\\n")
			case node.SoftLineBreak():
				sb.WriteString("\n")
			}
		case *ast.Emphasis:
			cmd := "textit"
			if node.Level == 2 {
				cmd = "textbf"
			}
			sb.WriteString(`\` + cmd + `{`)
			writeInline(sb, node, src)
			sb.WriteString("}")
		case *ast.CodeSpan:
			sb.WriteString(`\texttt{` + Escape(string(node.Text(src))) + `}`)
		case *ast.Link:
			sb.WriteString(`\href{` + string(node.Destination) + `}{`)
			writeInline(sb, node, src)
			sb.WriteString("}")
		case *ast.AutoLink:
			sb.WriteString(`\url{` + string(node.URL(src)) + `}`)
		case *ast.Image:
			// keep the alt text, drop the image itself
			writeInline(sb, node, src)
		case *ast.RawHTML:
			// dropped
		default:
			if n.Type() == ast.TypeInline {
				writeInline(sb, n, src)
			}
		}
	}
}

func sectionCommand(level int) string {
	switch level {
	case 1:
		return "section"
	case 2:
		return "subsection"
	case 3:
		return "subsubsection"
	default:
		return "paragraph"
	}
}

// latexEscaper makes plain text safe to embed in LaTeX source. The
// replacer substitutes all patterns in one scan, so the braces produced
// by the backslash replacement are not re-escaped.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// Escape escapes the LaTeX special characters in plain text.
func Escape(s string) string { return latexEscaper.Replace(s) }
