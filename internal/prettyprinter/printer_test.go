package prettyprinter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/univc/univc/internal/binding"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/kinds"
	"github.com/univc/univc/internal/token"
)

func TestPrintDiagnosticsPlain(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, "never")

	p.PrintDiagnostics([]*diagnostics.DiagnosticError{
		diagnostics.NewError(diagnostics.ErrB001, token.Token{Line: 2, Column: 5}, "boom"),
		diagnostics.NewErrorWithCandidates(diagnostics.ErrM002, token.Token{}, "which one",
			[]string{"first", "second"}),
	})

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "error: 2:5: [B001] kind mismatch: boom" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[2] != "  candidate: first" {
		t.Errorf("line 2 = %q", lines[2])
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("color never must not emit escape codes:\n%q", out)
	}
}

func TestPrintResolutionsPlain(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, "never")

	p.PrintResolutions([]*binding.Resolution{
		{Alias: "r", Request: "box<int>", Selected: "primary", ResultKind: kinds.Type},
		{Alias: "c", Request: "box<int>", Selected: "primary", ResultKind: kinds.Type, CacheHit: true},
	})

	out := buf.String()
	if !strings.Contains(out, "resolved r = box<int> -> primary : typename") {
		t.Errorf("missing resolved line:\n%s", out)
	}
	if !strings.Contains(out, "cached c = box<int>") {
		t.Errorf("missing cached line:\n%s", out)
	}
}

func TestColorAlways(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, "always")

	p.PrintDiagnostics([]*diagnostics.DiagnosticError{
		diagnostics.NewError(diagnostics.ErrV001, token.Token{}, "bad use"),
	})
	if !strings.Contains(buf.String(), ansiRed) {
		t.Errorf("color always should emit escape codes:\n%q", buf.String())
	}
}
