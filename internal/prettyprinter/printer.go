// Package prettyprinter renders diagnostics and resolution reports for
// the terminal.
package prettyprinter

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/univc/univc/internal/binding"
	"github.com/univc/univc/internal/diagnostics"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiDim    = "\033[2m"
)

type Printer struct {
	out   io.Writer
	color bool
}

// New creates a printer. colorMode is "auto", "always" or "never".
func New(out io.Writer, colorMode string) *Printer {
	color := false
	switch colorMode {
	case "always":
		color = true
	case "never":
		color = false
	default:
		if f, ok := out.(*os.File); ok {
			color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	return &Printer{out: out, color: color}
}

func (p *Printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}

// PrintDiagnostics renders every diagnostic, one per line, with the
// conflicting candidates of ambiguity errors indented beneath.
func (p *Printer) PrintDiagnostics(errs []*diagnostics.DiagnosticError) {
	for _, err := range errs {
		fmt.Fprintf(p.out, "%s %s\n", p.paint(ansiRed, "error:"), err.Error())
		for _, cand := range err.Candidates {
			fmt.Fprintf(p.out, "  %s %s\n", p.paint(ansiDim, "candidate:"), cand)
		}
	}
}

// PrintResolutions renders the outcome of each instantiation request.
func (p *Printer) PrintResolutions(resolutions []*binding.Resolution) {
	for _, res := range resolutions {
		status := p.paint(ansiGreen, "resolved")
		if res.CacheHit {
			status = p.paint(ansiYellow, "cached")
		}
		fmt.Fprintf(p.out, "%s %s = %s -> %s : %s\n",
			status, res.Alias, res.Request, res.Selected, res.ResultKind.String())
		if res.Record != nil {
			fmt.Fprintf(p.out, "  %s %s\n", p.paint(ansiDim, "bindings:"), res.Record.String())
		}
	}
}
