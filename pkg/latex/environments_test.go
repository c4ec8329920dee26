package latex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Itemize(t *testing.T) {
	r := NewRenderer()

	out := r.Render(`\begin{itemize}\item a\item b\end{itemize}`)

	require.Contains(t, out, "<ul>")
	require.Contains(t, out, "</ul>")
	first := strings.Index(out, "<li>a</li>")
	second := strings.Index(out, "<li>b</li>")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestRender_Enumerate(t *testing.T) {
	r := NewRenderer()

	out := r.Render(`\begin{enumerate}\item one\item two\end{enumerate}`)
	assert.Contains(t, out, "<ol><li>one</li><li>two</li></ol>")
}

func TestRender_ListItemsKeepInlineFormatting(t *testing.T) {
	r := NewRenderer()

	out := r.Render(`\begin{itemize}\item \textbf{bold} point\end{itemize}`)
	assert.Contains(t, out, "<li><strong>bold</strong> point</li>")
}

func TestRender_Abstract(t *testing.T) {
	r := NewRenderer()

	out := r.Render(`\begin{abstract}A short summary.\end{abstract}`)
	assert.Contains(t, out, `<div class="tex-abstract">`)
	assert.Contains(t, out, ">Abstract</h4>")
	assert.Contains(t, out, "A short summary.")
}

func TestRender_Description(t *testing.T) {
	r := NewRenderer()

	out := r.Render(`\begin{description}\item[term] the definition\item plain item\end{description}`)

	assert.Contains(t, out, "<dt>term</dt><dd>the definition</dd>")
	assert.Contains(t, out, "<dt></dt><dd>plain item</dd>")
}

func TestRender_QuoteAndCenter(t *testing.T) {
	r := NewRenderer()

	out := r.Render(`\begin{quote}wise words\end{quote}`)
	assert.Contains(t, out, `<blockquote class="tex-quote">wise words</blockquote>`)

	out = r.Render(`\begin{center}middle\end{center}`)
	assert.Contains(t, out, `<div class="tex-center">middle</div>`)
}

func TestRender_VerbatimIsLiteral(t *testing.T) {
	r := NewRenderer()

	// Commands and escapes inside verbatim must survive untouched.
	out := r.Render(`\begin{verbatim}
\textbf{not bold} and \%
\end{verbatim}`)

	assert.Contains(t, out, `<pre class="tex-verbatim">`)
	assert.Contains(t, out, `\textbf{not bold}`)
	assert.Contains(t, out, `\%`)
	assert.NotContains(t, out, "<strong>")
}

func TestRender_Lstlisting(t *testing.T) {
	r := NewRenderer()

	out := r.Render(`\begin{lstlisting}[language=Go]
func main() {}
\end{lstlisting}`)

	assert.Contains(t, out, `<pre class="tex-code"><code>`)
	assert.Contains(t, out, "func main() {}")
	assert.NotContains(t, out, "language=Go")
}

func TestRender_SameEnvironmentTwice(t *testing.T) {
	r := NewRenderer()

	out := r.Render(`\begin{quote}first\end{quote}

\begin{quote}second\end{quote}`)

	assert.Equal(t, 2, strings.Count(out, "<blockquote"))
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
}

func TestRender_UnknownEnvironmentPassesThrough(t *testing.T) {
	r := NewRenderer()

	out := r.Render(`\begin{theorem}claim\end{theorem}`)
	assert.Contains(t, out, `\begin{theorem}`)
	assert.Contains(t, out, `\end{theorem}`)
}
