package latex

import (
	"regexp"
	"strings"
)

// EnvironmentRule describes how a \begin{x}...\end{x} block renders.
// Literal environments keep their body out of the later passes via the
// same placeholder mechanism math uses, so code text survives intact.
type EnvironmentRule struct {
	Transform func(body string) string
	Literal   bool
}

// environmentOrder fixes the substitution order of the non-math block
// environments so output is deterministic.
var environmentOrder = []string{
	"abstract", "itemize", "enumerate", "description",
	"quote", "center", "verbatim", "lstlisting",
}

var environmentTable = map[string]EnvironmentRule{
	"abstract": {Transform: func(body string) string {
		return `<div class="tex-abstract"><h4 class="tex-abstract-title">Abstract</h4>` +
			strings.TrimSpace(body) + `</div>`
	}},
	"itemize":     {Transform: func(body string) string { return renderListItems(body, "ul") }},
	"enumerate":   {Transform: func(body string) string { return renderListItems(body, "ol") }},
	"description": {Transform: renderDescription},
	"quote": {Transform: func(body string) string {
		return `<blockquote class="tex-quote">` + strings.TrimSpace(body) + `</blockquote>`
	}},
	"center": {Transform: func(body string) string {
		return `<div class="tex-center">` + strings.TrimSpace(body) + `</div>`
	}},
	"verbatim": {
		Transform: verbatimBlock(`<pre class="tex-verbatim">`, `</pre>`),
		Literal:   true,
	},
	"lstlisting": {
		Transform: func(body string) string {
			body = listingOptionPattern.ReplaceAllString(strings.TrimLeft(body, " \t\n"), "")
			return verbatimBlock(`<pre class="tex-code"><code>`, `</code></pre>`)(body)
		},
		Literal: true,
	},
}

var envPatterns = compileEnvPatterns(environmentOrder)

func renderEnvironments(s string, st *renderState) string {
	for _, name := range environmentOrder {
		re := envPatterns[name]
		rule := environmentTable[name]
		s = re.ReplaceAllStringFunc(s, func(m string) string {
			body := re.FindStringSubmatch(m)[1]
			out := rule.Transform(body)
			if rule.Literal {
				return st.protect(out, true)
			}
			return out
		})
	}
	return s
}

// renderListItems turns the body of a list environment into items.
// Text before the first \item is dropped; each item runs to the next
// \item or the end of the environment.
func renderListItems(body, tag string) string {
	parts := strings.Split(body, `\item`)
	var sb strings.Builder
	sb.WriteString("<" + tag + ">")
	for _, part := range parts[1:] {
		sb.WriteString("<li>" + strings.TrimSpace(part) + "</li>")
	}
	sb.WriteString("</" + tag + ">")
	return sb.String()
}

var descriptionLabelPattern = regexp.MustCompile(`(?s)^\s*\[([^\]]*)\]\s*(.*)$`)

// renderDescription maps \item[label] body pairs to term/definition
// entries. An item without a label gets an empty term.
func renderDescription(body string) string {
	parts := strings.Split(body, `\item`)
	var sb strings.Builder
	sb.WriteString(`<dl class="tex-description">`)
	for _, part := range parts[1:] {
		label, def := "", strings.TrimSpace(part)
		if sub := descriptionLabelPattern.FindStringSubmatch(part); sub != nil {
			label, def = sub[1], strings.TrimSpace(sub[2])
		}
		sb.WriteString("<dt>" + label + "</dt><dd>" + def + "</dd>")
	}
	sb.WriteString("</dl>")
	return sb.String()
}

// listingOptionPattern strips an [options] group after \begin{lstlisting}.
var listingOptionPattern = regexp.MustCompile(`^\[[^\]]*\]`)

// verbatimBlock wraps code content without touching it. Callers
// embedding the output in a security-sensitive page add escaping
// themselves.
func verbatimBlock(open, close string) func(string) string {
	return func(body string) string {
		body = strings.TrimPrefix(body, "\n")
		body = strings.TrimRight(body, " \t\n")
		return open + body + close
	}
}
