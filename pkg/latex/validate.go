package latex

import (
	"fmt"
	"regexp"
	"strings"
)

// Report is the outcome of a validation pass. Errors are advisory text
// without positions; rendering proceeds regardless of the verdict.
type Report struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

var (
	beginPattern = regexp.MustCompile(`\\begin\{[^{}]*\}`)
	endPattern   = regexp.MustCompile(`\\end\{[^{}]*\}`)
)

// Validate checks source for structural balance: braces, dollar math
// delimiters, and environment begin/end counts. The environment check
// is aggregate only: \begin{itemize}\end{enumerate} passes. Pairing by
// name is a known gap, kept so existing documents validate the same
// way they always have.
//
// Validate never fails and never mutates its input.
func Validate(source string) Report {
	errs := []string{}

	opens := strings.Count(source, "{")
	closes := strings.Count(source, "}")
	switch {
	case opens > closes:
		errs = append(errs, fmt.Sprintf("missing %d closing brace(s): every '{' needs a matching '}'", opens-closes))
	case closes > opens:
		errs = append(errs, fmt.Sprintf("missing %d opening brace(s): every '}' needs a matching '{'", closes-opens))
	}

	if strings.Count(source, "$")%2 != 0 {
		errs = append(errs, "unbalanced math delimiters: odd number of '$'")
	}

	begins := len(beginPattern.FindAllString(source, -1))
	ends := len(endPattern.FindAllString(source, -1))
	if begins != ends {
		errs = append(errs, fmt.Sprintf(`mismatched environments: %d \begin vs %d \end`, begins, ends))
	}

	return Report{Valid: len(errs) == 0, Errors: errs}
}
