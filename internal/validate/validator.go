// Package validate implements use-site checking of universal template
// parameters. Inside a template definition a universal parameter may
// appear only in argument position of a template-argument-list; every
// other syntactic use (member access, scope resolution, call target,
// alias target, plain expression use, template-name position) is
// rejected. The restriction is permanent and independent of what kind
// the parameter eventually binds to: an identifier followed by `*`
// cannot be disambiguated between a multiplication and a pointer
// declarator without knowing the bound kind, which is unknown at parse
// time.
package validate

import (
	"fmt"

	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/kinds"
)

// position is the validator's state while walking a definition.
type position int

const (
	// scanning: anywhere outside a template-argument slot.
	scanning position = iota
	// inTemplateArgumentList: directly an element of a Name<...> list.
	inTemplateArgumentList
)

// Validator checks one template declaration's definition.
type Validator struct{}

func New() *Validator { return &Validator{} }

// ValidateTemplate checks every use of the declaration's universal
// parameters in its body and pattern. It returns all offending uses.
func (v *Validator) ValidateTemplate(decl *ast.TemplateDecl) []*diagnostics.DiagnosticError {
	universal := map[string]bool{}
	for _, p := range decl.Params {
		if p.Name != "" && kinds.IsUniversal(p.Kind) {
			universal[p.Name] = true
		}
	}
	if len(universal) == 0 {
		return nil
	}

	w := &walker{universal: universal}
	if decl.Body != nil {
		for _, stmt := range decl.Body.Statements {
			w.statement(stmt)
		}
	}
	return w.errors
}

type walker struct {
	universal map[string]bool
	errors    []*diagnostics.DiagnosticError
}

func (w *walker) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.AliasDecl:
		// The alias target itself is not an argument slot: `using t = X;`
		// is a direct use of X.
		w.expression(s.Target, scanning)
	case *ast.ExpressionStatement:
		w.expression(s.Expression, scanning)
	}
}

func (w *walker) expression(expr ast.Expression, pos position) {
	switch e := expr.(type) {
	case *ast.Identifier:
		if w.universal[e.Value] && pos != inTemplateArgumentList {
			w.reject(e)
		}
	case *ast.TemplateID:
		// The template-name position of a template-id is not an
		// argument slot either: X<int> would require knowing X's bound
		// kind to parse.
		if w.universal[e.Name.Value] {
			w.reject(e.Name)
		}
		for _, arg := range e.Args {
			w.expression(arg, inTemplateArgumentList)
		}
	case *ast.MemberExpression:
		w.expression(e.Object, scanning)
	case *ast.CallExpression:
		w.expression(e.Target, scanning)
		for _, arg := range e.Args {
			w.expression(arg, scanning)
		}
	case *ast.PrefixExpression:
		w.expression(e.Right, scanning)
	case *ast.InfixExpression:
		w.expression(e.Left, scanning)
		w.expression(e.Right, scanning)
	}
}

func (w *walker) reject(ident *ast.Identifier) {
	w.errors = append(w.errors, diagnostics.NewError(
		diagnostics.ErrV001,
		ident.GetToken(),
		fmt.Sprintf("universal parameter %s may only appear in template argument position", ident.Value),
	))
}
