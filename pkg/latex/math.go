package latex

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	// $$...$$ may span lines; $...$ must not cross a newline.
	displayMathPattern = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)
	inlineMathPattern  = regexp.MustCompile(`\$([^$\n]+?)\$`)
)

// mathEnvironments are block environments whose bodies go to the math
// renderer instead of the environment table.
var mathEnvironments = []string{"equation", "align", "alignat", "gather", "multline"}

var mathEnvPatterns = compileEnvPatterns(mathEnvironments)

// compileEnvPatterns builds one \begin{x}...\end{x} matcher per
// environment. The first \end closes the match, so nesting the same
// environment inside itself is not supported.
func compileEnvPatterns(names []string) map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(names))
	for _, name := range names {
		out[name] = regexp.MustCompile(`(?s)\\begin\{` + name + `\}(.*?)\\end\{` + name + `\}`)
	}
	return out
}

// renderMath extracts every math region, renders it to MathML and
// replaces it with a placeholder before any other pass runs. A region
// that fails to render becomes a visible error marker carrying the raw
// source; sibling regions and the rest of the document are unaffected.
func (r *Renderer) renderMath(s string, st *renderState) string {
	s = displayMathPattern.ReplaceAllStringFunc(s, func(m string) string {
		inner := strings.TrimSpace(m[2 : len(m)-2])
		return st.protect(r.displayMath(m, inner, ""), true)
	})
	s = inlineMathPattern.ReplaceAllStringFunc(s, func(m string) string {
		inner := strings.TrimSpace(m[1 : len(m)-1])
		mml, err := r.renderExpr(inner, false)
		if err != nil {
			return st.protect(`<span class="tex-math-error">`+html.EscapeString(m)+`</span>`, false)
		}
		return st.protect(`<span class="tex-math-inline">`+mml+`</span>`, false)
	})
	for _, name := range mathEnvironments {
		re := mathEnvPatterns[name]
		s = re.ReplaceAllStringFunc(s, func(m string) string {
			inner := strings.TrimSpace(re.FindStringSubmatch(m)[1])
			return st.protect(r.displayMath(m, inner, name), true)
		})
	}
	return s
}

func (r *Renderer) displayMath(raw, inner, env string) string {
	mml, err := r.renderExpr(inner, true)
	if err != nil {
		return `<div class="tex-math-error">` + html.EscapeString(raw) + `</div>`
	}
	if env != "" {
		return fmt.Sprintf(`<div class="tex-math-display" data-env="%s">%s</div>`, env, mml)
	}
	return `<div class="tex-math-display">` + mml + `</div>`
}

// renderExpr calls into treeblood. Obviously broken input is rejected
// before the call, and a panic inside the library is converted to an
// error, so one bad expression can never abort the whole render.
func (r *Renderer) renderExpr(expr string, display bool) (mml string, err error) {
	if strings.Count(expr, "{") != strings.Count(expr, "}") {
		return "", fmt.Errorf("unbalanced braces in math expression")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("math renderer: %v", rec)
		}
	}()
	if display {
		return r.math.DisplayStyle(expr)
	}
	return r.math.TextStyle(expr)
}
