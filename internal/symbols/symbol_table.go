package symbols

import (
	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/kinds"
)

type SymbolKind int

const (
	TemplateSymbol SymbolKind = iota
	ParameterSymbol
	AliasSymbol
)

// Symbol is a named entity visible to the resolver: a declared template,
// a template parameter in scope, or a resolved top-level alias.
type Symbol struct {
	Name string
	Kind SymbolKind

	// ParamKind is the declared kind of a ParameterSymbol.
	ParamKind kinds.Kind

	// Template is the declaration group of a TemplateSymbol.
	Template *TemplateInfo

	// AliasKind is the classified result kind of a resolved AliasSymbol.
	AliasKind kinds.Kind
}

// IsUniversalParameter reports whether this symbol is a template
// parameter declared `template auto`.
func (s *Symbol) IsUniversalParameter() bool {
	return s.Kind == ParameterSymbol && kinds.IsUniversal(s.ParamKind)
}

// TemplateInfo groups a primary template with its partial specializations.
type TemplateInfo struct {
	Name    string
	Primary *ast.TemplateDecl
	Specs   []*ast.TemplateDecl
}

// ParamKinds returns the declared kind of each primary-template parameter.
func (ti *TemplateInfo) ParamKinds() []kinds.Kind {
	if ti.Primary == nil {
		return nil
	}
	out := make([]kinds.Kind, len(ti.Primary.Params))
	for i, p := range ti.Primary.Params {
		out[i] = p.Kind
	}
	return out
}

// Arity returns the number of parameters of the primary template.
func (ti *TemplateInfo) Arity() int {
	if ti.Primary == nil {
		return 0
	}
	return len(ti.Primary.Params)
}

// Table is a lexically scoped symbol table. The outermost scope holds
// template declarations and resolved aliases; a nested scope is pushed
// for each template's own parameter list.
type Table struct {
	scopes []map[string]*Symbol
}

func NewTable() *Table {
	return &Table{scopes: []map[string]*Symbol{{}}}
}

// PushScope enters a nested scope (a template parameter list).
func (t *Table) PushScope() {
	t.scopes = append(t.scopes, map[string]*Symbol{})
}

// PopScope leaves the innermost scope.
func (t *Table) PopScope() {
	if len(t.scopes) > 1 {
		t.scopes = t.scopes[:len(t.scopes)-1]
	}
}

// Define inserts a symbol into the innermost scope, replacing any
// previous definition of the same name there.
func (t *Table) Define(sym *Symbol) {
	t.scopes[len(t.scopes)-1][sym.Name] = sym
}

// Lookup finds a symbol by name, innermost scope first.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// DeclareTemplate registers a template declaration, creating the group on
// first sight. Specializations attach to the existing group; a second
// primary for the same name replaces a body-less forward declaration.
func (t *Table) DeclareTemplate(decl *ast.TemplateDecl) *TemplateInfo {
	name := decl.Name.Value
	var info *TemplateInfo
	if sym, ok := t.scopes[0][name]; ok && sym.Kind == TemplateSymbol {
		info = sym.Template
	} else {
		info = &TemplateInfo{Name: name}
		t.scopes[0][name] = &Symbol{Name: name, Kind: TemplateSymbol, Template: info}
	}
	if decl.IsSpecialization() {
		info.Specs = append(info.Specs, decl)
	} else if info.Primary == nil || info.Primary.Body == nil {
		info.Primary = decl
	}
	return info
}

// LookupTemplate finds a declared template group by name.
func (t *Table) LookupTemplate(name string) (*TemplateInfo, bool) {
	sym, ok := t.scopes[0][name]
	if !ok || sym.Kind != TemplateSymbol {
		return nil, false
	}
	return sym.Template, true
}
