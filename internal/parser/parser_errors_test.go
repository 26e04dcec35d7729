package parser_test

import (
	"strings"
	"testing"

	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/pipeline"
)

func expectError(t *testing.T, ctx *pipeline.PipelineContext, code diagnostics.ErrorCode) {
	t.Helper()
	for _, err := range ctx.Errors {
		if err.Code == code {
			return
		}
	}
	t.Errorf("expected a %s diagnostic, got %v", code, ctx.Errors)
}

func TestP001_StrayTopLevelToken(t *testing.T) {
	_, ctx := parseSource(t, `struct vec;`)
	expectError(t, ctx, diagnostics.ErrP001)
}

func TestP001_StrayArgumentToken(t *testing.T) {
	_, ctx := parseSource(t, `using r = f<,>;`)
	expectError(t, ctx, diagnostics.ErrP001)
}

func TestP002_MissingStructKeyword(t *testing.T) {
	_, ctx := parseSource(t, `template <typename T> vec;`)
	expectError(t, ctx, diagnostics.ErrP002)
}

func TestP002_UnclosedArgumentList(t *testing.T) {
	_, ctx := parseSource(t, `using r = f<int;`)
	expectError(t, ctx, diagnostics.ErrP002)
}

func TestP003_UnterminatedBody(t *testing.T) {
	_, ctx := parseSource(t, `template <typename T> struct box { using type = T;`)
	expectError(t, ctx, diagnostics.ErrP003)
}

func TestP004_WildcardAsParameter(t *testing.T) {
	_, ctx := parseSource(t, `template <__ X> struct bad;`)
	expectError(t, ctx, diagnostics.ErrP004)
}

func TestP005_ExpressionTooDeep(t *testing.T) {
	depth := 300
	src := `using r = f<` + strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth) + `>;`
	_, ctx := parseSource(t, src)
	expectError(t, ctx, diagnostics.ErrP005)
}

func TestRecoveryAfterError(t *testing.T) {
	prog, ctx := parseSource(t, `
		struct broken;
		template <typename T> struct vec;
	`)
	expectError(t, ctx, diagnostics.ErrP001)
	if len(prog.Statements) != 1 {
		t.Errorf("got %d statements after recovery, want 1", len(prog.Statements))
	}
}

func TestDiagnosticCarriesPosition(t *testing.T) {
	_, ctx := parseSource(t, "\n\ntemplate <__ X> struct bad;")
	if len(ctx.Errors) == 0 {
		t.Fatal("expected a diagnostic")
	}
	err := ctx.Errors[0]
	if err.Token.Line != 3 {
		t.Errorf("diagnostic line = %d, want 3", err.Token.Line)
	}
	if !strings.Contains(err.Error(), "[P004]") {
		t.Errorf("Error() = %s, want code tag", err.Error())
	}
}
