package preview

import (
	"fmt"
	"html/template"
	"os"
)

// pageTemplate wraps rendered output in a standalone HTML page so the
// preview can be opened directly in a browser.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { max-width: 46em; margin: 2em auto; padding: 0 1em; font-family: Georgia, serif; line-height: 1.5; }
.tex-doc-title { text-align: center; }
.tex-doc-author, .tex-doc-date { text-align: center; margin: 0.2em 0; }
.tex-center { text-align: center; }
.tex-abstract { margin: 1.5em 3em; }
.tex-abstract-title { text-align: center; margin-bottom: 0.5em; }
.tex-quote { margin: 1em 2em; color: #444; }
.tex-verbatim, .tex-code { background: #f5f5f5; padding: 0.8em; overflow-x: auto; }
.tex-math-display { margin: 1em 0; text-align: center; }
.tex-math-error, .tex-render-error { color: #b00020; background: #fff0f0; padding: 0.2em 0.4em; }
.tex-smallcaps { font-variant: small-caps; }
.tex-color-red { color: #c62828; } .tex-color-blue { color: #1565c0; }
.tex-color-green { color: #2e7d32; } .tex-color-yellow { color: #f9a825; }
.tex-color-orange { color: #ef6c00; } .tex-color-purple { color: #6a1b9a; }
.tex-color-gray, .tex-color-grey { color: #616161; }
.tex-color-black { color: #000; } .tex-color-white { color: #fff; }
.tex-size-tiny { font-size: 0.5em; } .tex-size-scriptsize { font-size: 0.7em; }
.tex-size-footnotesize { font-size: 0.8em; } .tex-size-small { font-size: 0.9em; }
.tex-size-normalsize { font-size: 1em; } .tex-size-large { font-size: 1.2em; }
.tex-size-xlarge { font-size: 1.44em; } .tex-size-xxlarge { font-size: 1.73em; }
.tex-size-huge { font-size: 2.07em; } .tex-size-xhuge { font-size: 2.49em; }
.diagnostics { border-top: 1px solid #ddd; margin-top: 2em; padding-top: 1em; font-size: 0.9em; }
.diagnostics li { color: #b00020; }
</style>
</head>
<body>
{{.Body}}
{{if .Errors}}<div class="diagnostics"><ul>
{{range .Errors}}<li>{{.}}</li>
{{end}}</ul></div>{{end}}
</body>
</html>
`))

type pageData struct {
	Title  string
	Body   template.HTML
	Errors []string
}

// WritePage writes a rendered preview to path as a full HTML page,
// appending validation diagnostics when the source has problems.
func WritePage(path, title string, result Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	defer f.Close()

	data := pageData{
		Title: title,
		Body:  template.HTML(result.HTML),
	}
	if !result.Report.Valid {
		data.Errors = result.Report.Errors
	}

	if err := pageTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("failed to write preview file: %w", err)
	}

	return nil
}
