// The static command, color and math macro tables. Initialized once
// and never mutated, so sharing them across goroutines needs no
// synchronization.

package latex

import (
	"fmt"
	"strings"
)

// CommandRule turns the brace-delimited argument of a single-argument
// command into an HTML fragment.
type CommandRule func(arg string) string

func wrapWith(open, close string) CommandRule {
	return func(arg string) string { return open + arg + close }
}

func heading(level int, class string) CommandRule {
	return func(arg string) string {
		return fmt.Sprintf(`<h%d class="%s">%s</h%d>`, level, class, arg, level)
	}
}

func sized(class string) CommandRule {
	return wrapWith(`<span class="tex-size-`+class+`">`, `</span>`)
}

// commandTable maps command names to their transforms. Lookup is exact
// match; adding a command is one entry here. Names missing from the
// table pass through untouched so unsupported markup stays visible.
var commandTable = map[string]CommandRule{
	// Document metadata. \maketitle itself expands to nothing and is
	// handled in the command pass directly because it takes no argument.
	"title":  wrapWith(`<h1 class="tex-doc-title">`, `</h1>`),
	"author": wrapWith(`<p class="tex-doc-author">`, `</p>`),
	"date":   wrapWith(`<p class="tex-doc-date">`, `</p>`),

	// Sectioning, each on a fixed heading level.
	"part":          heading(1, "tex-part"),
	"chapter":       heading(2, "tex-chapter"),
	"section":       heading(3, "tex-section"),
	"subsection":    heading(4, "tex-subsection"),
	"subsubsection": heading(5, "tex-subsubsection"),
	"paragraph":     heading(6, "tex-paragraph"),

	// Inline styles.
	"textbf":    wrapWith("<strong>", "</strong>"),
	"textit":    wrapWith("<em>", "</em>"),
	"texttt":    wrapWith("<code>", "</code>"),
	"textsc":    wrapWith(`<span class="tex-smallcaps">`, "</span>"),
	"underline": wrapWith("<u>", "</u>"),
	"emph":      wrapWith("<em>", "</em>"),

	// Font sizes, the fixed ten-step LaTeX scale.
	"tiny":         sized("tiny"),
	"scriptsize":   sized("scriptsize"),
	"footnotesize": sized("footnotesize"),
	"small":        sized("small"),
	"normalsize":   sized("normalsize"),
	"large":        sized("large"),
	"Large":        sized("xlarge"),
	"LARGE":        sized("xxlarge"),
	"huge":         sized("huge"),
	"Huge":         sized("xhuge"),
}

// colorClasses maps \textcolor keywords to style classes. Unknown
// colors fall back to defaultColorClass rather than failing.
var colorClasses = map[string]string{
	"red":    "tex-color-red",
	"blue":   "tex-color-blue",
	"green":  "tex-color-green",
	"yellow": "tex-color-yellow",
	"orange": "tex-color-orange",
	"purple": "tex-color-purple",
	"gray":   "tex-color-gray",
	"grey":   "tex-color-gray",
	"black":  "tex-color-black",
	"white":  "tex-color-white",
}

const defaultColorClass = "tex-color-default"

func colorClass(name string) string {
	if c, ok := colorClasses[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return defaultColorClass
}

// MathMacros are passed to the math renderer as its macro table; the
// passes here never expand them.
var MathMacros = map[string]string{
	"RR":  `\mathbb{R}`,
	"NN":  `\mathbb{N}`,
	"ZZ":  `\mathbb{Z}`,
	"QQ":  `\mathbb{Q}`,
	"CC":  `\mathbb{C}`,
	"eps": `\varepsilon`,
}
