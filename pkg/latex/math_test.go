package latex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_InlineMath(t *testing.T) {
	r := NewRenderer()

	out := r.Render("the value $x$ here")
	assert.Contains(t, out, `<span class="tex-math-inline">`)
	assert.NotContains(t, out, "$")
	assert.Contains(t, out, "the value")
	assert.Contains(t, out, "here")
}

func TestRender_DisplayMath(t *testing.T) {
	r := NewRenderer()

	out := r.Render("$$E = mc^2$$")
	assert.Contains(t, out, `<div class="tex-math-display">`)
	// A lone display block swallows its paragraph wrapper.
	assert.NotContains(t, out, "<p><div")
	assert.NotContains(t, out, "$$")
}

func TestRender_DisplayBeforeInline(t *testing.T) {
	r := NewRenderer()

	// $$...$$ must win over $...$ so the doubled delimiters are not
	// parsed as two empty inline expressions.
	out := r.Render("$$a+b$$")
	assert.Contains(t, out, "tex-math-display")
	assert.NotContains(t, out, "tex-math-inline")
}

func TestRender_InlineMathStopsAtNewline(t *testing.T) {
	r := NewRenderer()

	// A single $ on each of two lines is not an inline expression.
	out := r.Render("cost $5\nand $6 more")
	assert.NotContains(t, out, "tex-math-inline")
}

func TestRender_MathEnvironments(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		env  string
		body string
	}{
		{"equation", `E = mc^2`},
		{"align", `a &= b \\ c &= d`},
		{"gather", `x = 1`},
		{"multline", `x + y`},
		{"alignat", `a &= b`},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			out := r.Render(`\begin{` + tt.env + `}` + tt.body + `\end{` + tt.env + `}`)
			assert.Contains(t, out, `data-env="`+tt.env+`"`)
			assert.NotContains(t, out, `\begin{`+tt.env+`}`)
		})
	}
}

func TestRender_MathProtectedFromFormatting(t *testing.T) {
	r := NewRenderer()

	// \quad inside math belongs to the math renderer, not the spacing
	// pass; the placeholder keeps the formatting pass away from it.
	out := r.Render(`$a \quad b$`)
	assert.NotContains(t, out, "&emsp;")
	assert.Contains(t, out, "tex-math-inline")
}

func TestRender_MathErrorIsLocal(t *testing.T) {
	r := NewRenderer()

	out := r.Render(`good $x$ bad $\frac{1$ good $y$ tail`)

	require.Contains(t, out, "tex-math-error")
	// One failed expression, two successful ones.
	assert.Equal(t, 1, strings.Count(out, "tex-math-error"))
	assert.Equal(t, 2, strings.Count(out, "tex-math-inline"))
	assert.Contains(t, out, "tail")
}

func TestRender_DisplayMathError(t *testing.T) {
	r := NewRenderer()

	out := r.Render(`$$\frac{1$$`)
	assert.Contains(t, out, `<div class="tex-math-error">`)
	assert.Contains(t, out, `$$\frac{1$$`)
}
