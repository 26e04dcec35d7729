package binding_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/binding"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/kinds"
	"github.com/univc/univc/internal/token"
)

func param(name string, k kinds.Kind) *ast.ParamDecl {
	return &ast.ParamDecl{Name: name, Kind: k}
}

func ident(name string) ast.Expression {
	return &ast.Identifier{
		Token: token.Token{Type: token.IDENT, Lexeme: name},
		Value: name,
	}
}

func TestBindConcreteKinds(t *testing.T) {
	b := binding.NewBinder(kinds.Covariant)

	rec, err := b.Bind("apply",
		[]*ast.ParamDecl{
			param("F", kinds.Template(kinds.Type)),
			param("T", kinds.Type),
		},
		[]ast.Expression{ident("G"), ident("int")},
		[]kinds.Kind{kinds.Template(kinds.Type), kinds.Type},
	)
	require.Nil(t, err)
	require.Len(t, rec.Bindings, 2)
	assert.Equal(t, "apply", rec.Template)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", rec.AttemptID.String())

	fb, ok := rec.Lookup("F")
	require.True(t, ok)
	assert.True(t, fb.Bound.Equal(kinds.Template(kinds.Type)))
}

func TestBindUniversalAcceptsAnyKind(t *testing.T) {
	b := binding.NewBinder(kinds.Covariant)
	params := []*ast.ParamDecl{param("X", kinds.Universal)}

	for _, argKind := range []kinds.Kind{
		kinds.Type,
		kinds.Value(kinds.VTInt),
		kinds.Template(kinds.Type, kinds.Type),
	} {
		rec, err := b.Bind("tag", params, []ast.Expression{ident("a")}, []kinds.Kind{argKind})
		require.Nil(t, err, "universal should bind %s", argKind)
		require.Len(t, rec.Bindings, 1)
		assert.True(t, kinds.IsUniversal(rec.Bindings[0].Declared))
		assert.True(t, rec.Bindings[0].Bound.Equal(argKind))
	}
}

func TestBindKindMismatch(t *testing.T) {
	b := binding.NewBinder(kinds.Covariant)

	_, err := b.Bind("vec",
		[]*ast.ParamDecl{param("T", kinds.Type)},
		[]ast.Expression{ident("G")},
		[]kinds.Kind{kinds.Template(kinds.Type)},
	)
	require.NotNil(t, err)
	assert.Equal(t, diagnostics.ErrB001, err.Code)
	assert.Contains(t, err.Message, "T")
}

func TestBindArityMismatch(t *testing.T) {
	b := binding.NewBinder(kinds.Covariant)
	params := []*ast.ParamDecl{param("A", kinds.Type), param("B", kinds.Type)}

	_, err := b.Bind("pair", params, []ast.Expression{ident("int")}, []kinds.Kind{kinds.Type})
	require.NotNil(t, err)
	assert.Equal(t, diagnostics.ErrB002, err.Code)

	_, err = b.Bind("pair", params, nil, nil)
	require.NotNil(t, err)
	assert.Equal(t, diagnostics.ErrB002, err.Code)
}

func TestBindTemplateSignatureVariance(t *testing.T) {
	params := []*ast.ParamDecl{param("F", kinds.Template(kinds.Type))}
	args := []ast.Expression{ident("takes_any")}
	argKinds := []kinds.Kind{kinds.Template(kinds.Universal)}

	// A template taking anything satisfies a template<typename> slot
	// under covariance but not under contravariance.
	_, err := binding.NewBinder(kinds.Covariant).Bind("apply", params, args, argKinds)
	assert.Nil(t, err)

	_, err = binding.NewBinder(kinds.Contravariant).Bind("apply", params, args, argKinds)
	require.NotNil(t, err)
	assert.Equal(t, diagnostics.ErrB001, err.Code)
}

func TestRecordString(t *testing.T) {
	b := binding.NewBinder(kinds.Covariant)
	rec, err := b.Bind("box",
		[]*ast.ParamDecl{param("T", kinds.Type)},
		[]ast.Expression{ident("int")},
		[]kinds.Kind{kinds.Type},
	)
	require.Nil(t, err)

	s := rec.String()
	if !strings.Contains(s, "box") || !strings.Contains(s, "T") {
		t.Errorf("String() = %s", s)
	}
}
