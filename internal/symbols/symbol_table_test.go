package symbols

import (
	"testing"

	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/kinds"
)

func primaryDecl(name string, params ...*ast.ParamDecl) *ast.TemplateDecl {
	return &ast.TemplateDecl{
		Name:   &ast.Identifier{Value: name},
		Params: params,
	}
}

func TestDefineAndLookup(t *testing.T) {
	table := NewTable()
	table.Define(&Symbol{Name: "T", Kind: ParameterSymbol, ParamKind: kinds.Type})

	sym, ok := table.Lookup("T")
	if !ok || sym.Kind != ParameterSymbol {
		t.Fatalf("Lookup(T) = %v, %v", sym, ok)
	}
	if _, ok := table.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}

func TestScopeShadowingAndPop(t *testing.T) {
	table := NewTable()
	table.Define(&Symbol{Name: "X", Kind: ParameterSymbol, ParamKind: kinds.Type})

	table.PushScope()
	table.Define(&Symbol{Name: "X", Kind: ParameterSymbol, ParamKind: kinds.Universal})

	sym, ok := table.Lookup("X")
	if !ok || !kinds.IsUniversal(sym.ParamKind) {
		t.Fatalf("inner scope should shadow, got %v", sym)
	}

	table.PopScope()
	sym, ok = table.Lookup("X")
	if !ok || kinds.IsUniversal(sym.ParamKind) {
		t.Fatalf("outer binding should be restored, got %v", sym)
	}
}

func TestDeclareTemplateGroup(t *testing.T) {
	table := NewTable()

	forward := primaryDecl("vec", &ast.ParamDecl{Name: "T", Kind: kinds.Type})
	table.DeclareTemplate(forward)

	info, ok := table.LookupTemplate("vec")
	if !ok || info.Primary != forward {
		t.Fatalf("forward declaration should register the primary")
	}
	if info.Arity() != 1 {
		t.Errorf("arity = %d, want 1", info.Arity())
	}

	// A definition replaces the body-less forward declaration.
	defined := primaryDecl("vec", &ast.ParamDecl{Name: "T", Kind: kinds.Type})
	defined.Body = &ast.TemplateBody{}
	table.DeclareTemplate(defined)

	info, _ = table.LookupTemplate("vec")
	if info.Primary != defined {
		t.Error("definition should replace the forward declaration")
	}

	// A later body-less redeclaration does not displace the definition.
	table.DeclareTemplate(primaryDecl("vec", &ast.ParamDecl{Name: "T", Kind: kinds.Type}))
	info, _ = table.LookupTemplate("vec")
	if info.Primary != defined {
		t.Error("redeclaration should not displace the definition")
	}
}

func TestSpecializationsAttachToGroup(t *testing.T) {
	table := NewTable()
	table.DeclareTemplate(primaryDecl("box", &ast.ParamDecl{Name: "X", Kind: kinds.Universal}))

	spec := primaryDecl("box", &ast.ParamDecl{Name: "T", Kind: kinds.Type})
	spec.Pattern = []ast.Expression{&ast.Identifier{Value: "T"}}
	table.DeclareTemplate(spec)

	info, _ := table.LookupTemplate("box")
	if len(info.Specs) != 1 || info.Specs[0] != spec {
		t.Fatalf("specs = %v", info.Specs)
	}
	if got := info.ParamKinds(); len(got) != 1 || !kinds.IsUniversal(got[0]) {
		t.Errorf("ParamKinds() = %v", got)
	}
}

func TestTemplateSymbolVisibleAsPlainName(t *testing.T) {
	table := NewTable()
	table.DeclareTemplate(primaryDecl("G", &ast.ParamDecl{Name: "T", Kind: kinds.Type}))

	sym, ok := table.Lookup("G")
	if !ok || sym.Kind != TemplateSymbol {
		t.Fatalf("Lookup(G) = %v, %v", sym, ok)
	}
}

func TestIsUniversalParameter(t *testing.T) {
	u := &Symbol{Kind: ParameterSymbol, ParamKind: kinds.Universal}
	if !u.IsUniversalParameter() {
		t.Error("universal parameter not detected")
	}
	tmpl := &Symbol{Kind: TemplateSymbol}
	if tmpl.IsUniversalParameter() {
		t.Error("template symbol is not a universal parameter")
	}
}
