package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/classify"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/kinds"
	"github.com/univc/univc/internal/lexer"
	"github.com/univc/univc/internal/match"
	"github.com/univc/univc/internal/parser"
	"github.com/univc/univc/internal/pipeline"
	"github.com/univc/univc/internal/symbols"
	"github.com/univc/univc/internal/token"
)

// declareGroup parses src and declares every template in a fresh table.
func declareGroup(t *testing.T, src string) *symbols.Table {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: src}
	ctx.TokenStream = token.NewStream(lexer.New(src).Tokenize())
	prog := parser.New(ctx.TokenStream, ctx).ParseProgram().(*ast.Program)
	require.Empty(t, ctx.Errors, "declarations must parse cleanly")

	table := symbols.NewTable()
	for _, stmt := range prog.Statements {
		if decl, ok := stmt.(*ast.TemplateDecl); ok {
			table.DeclareTemplate(decl)
		}
	}
	return table
}

func typeArg(canonical string) *classify.Classified {
	return &classify.Classified{Kind: kinds.Type, Canonical: canonical}
}

func valueArg(v int64) *classify.Classified {
	return &classify.Classified{
		Kind:      kinds.Value(kinds.VTInt),
		Canonical: "int:" + string(rune('0'+v)),
		Value:     &classify.Value{Type: kinds.VTInt, Int: v},
	}
}

func matchGroup(t *testing.T, table *symbols.Table, name string, args ...*classify.Classified) (*match.Candidate, *diagnostics.DiagnosticError) {
	t.Helper()
	info, ok := table.LookupTemplate(name)
	require.True(t, ok, "template %s must be declared", name)
	m := match.NewMatcher(kinds.Covariant)
	return m.Match(info, args, token.Token{}, table)
}

func TestMatchPrimaryOnly(t *testing.T) {
	table := declareGroup(t, `template <typename T> struct vec { };`)

	cand, err := matchGroup(t, table, "vec", typeArg("int"))
	require.Nil(t, err)
	assert.True(t, cand.Primary)
}

func TestKindConstrainedSpecializationWins(t *testing.T) {
	table := declareGroup(t, `
		template <template auto X> struct sort_of { };
		template <typename T> struct sort_of<T> { };
		template <auto V> struct sort_of<V> { };
	`)

	cand, err := matchGroup(t, table, "sort_of", typeArg("int"))
	require.Nil(t, err)
	require.False(t, cand.Primary)
	assert.True(t, cand.Slots[0].Kind.Equal(kinds.Type))

	cand, err = matchGroup(t, table, "sort_of", valueArg(3))
	require.Nil(t, err)
	require.False(t, cand.Primary)
	if _, ok := cand.Slots[0].Kind.(kinds.KValue); !ok {
		t.Errorf("selected slot kind = %s, want a value kind", cand.Slots[0].Kind)
	}

	// A template argument fits neither constrained pattern.
	cand, err = matchGroup(t, table, "sort_of",
		&classify.Classified{Kind: kinds.Template(kinds.Type), Canonical: "G/1"})
	require.Nil(t, err)
	assert.True(t, cand.Primary)
}

func TestExactPatternOutranksKindPattern(t *testing.T) {
	table := declareGroup(t, `
		template <typename T> struct dispatch { };
		template <> struct dispatch<int> { };
	`)

	cand, err := matchGroup(t, table, "dispatch", typeArg("int"))
	require.Nil(t, err)
	require.False(t, cand.Primary)
	require.NotNil(t, cand.Slots[0].Exact)
	assert.Equal(t, "int", cand.Slots[0].Exact.Canonical)

	cand, err = matchGroup(t, table, "dispatch", typeArg("bool"))
	require.Nil(t, err)
	assert.True(t, cand.Primary)
}

func TestWildcardPatternMatchesAnyKind(t *testing.T) {
	table := declareGroup(t, `
		template <template auto X, template auto Y> struct both { };
		template <typename T> struct both<T, __> { };
	`)

	cand, err := matchGroup(t, table, "both", typeArg("int"), valueArg(1))
	require.Nil(t, err)
	assert.False(t, cand.Primary)
}

func TestAmbiguousSelection(t *testing.T) {
	table := declareGroup(t, `
		template <template auto X, template auto Y> struct amb { };
		template <typename T> struct amb<T, __> { };
		template <typename T> struct amb<__, T> { };
	`)

	_, err := matchGroup(t, table, "amb", typeArg("int"), typeArg("bool"))
	require.NotNil(t, err)
	assert.Equal(t, diagnostics.ErrM002, err.Code)
	// The unconstrained primary is compatible too.
	assert.Len(t, err.Candidates, 3)
}

func TestNoMatchingCandidate(t *testing.T) {
	table := declareGroup(t, `template <int N> struct fixed { };`)

	_, err := matchGroup(t, table, "fixed", typeArg("int"))
	require.NotNil(t, err)
	assert.Equal(t, diagnostics.ErrM001, err.Code)
}

func TestDeletedPrimary(t *testing.T) {
	table := declareGroup(t, `
		template <template auto X> struct only_types = delete;
		template <typename T> struct only_types<T> { };
	`)

	// The specialization shields type arguments from the deleted primary.
	cand, err := matchGroup(t, table, "only_types", typeArg("int"))
	require.Nil(t, err)
	assert.False(t, cand.Primary)

	// Everything else falls back to the primary and fails.
	_, err = matchGroup(t, table, "only_types", valueArg(1))
	require.NotNil(t, err)
	assert.Equal(t, diagnostics.ErrM003, err.Code)
}

func TestArityFiltersCandidates(t *testing.T) {
	table := declareGroup(t, `template <typename A, typename B> struct pair { };`)

	_, err := matchGroup(t, table, "pair", typeArg("int"))
	require.NotNil(t, err)
	assert.Equal(t, diagnostics.ErrM001, err.Code)
}
