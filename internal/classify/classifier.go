// Package classify implements the argument classifier: given a template
// argument as written, it determines the argument's kind (type, value
// with its type, or template with its arity and slot kinds) and a
// normalized spelling used for cache keys and diagnostics. Classification
// is a pure function of the argument syntax and the lookup scope.
package classify

import (
	"fmt"

	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/kinds"
	"github.com/univc/univc/internal/symbols"
)

// Classified is the result of classifying one template argument.
type Classified struct {
	Kind kinds.Kind

	// Canonical is the normalized spelling: the decayed value for NTTPs
	// ("int:42"), the canonical type-id for types ("vec<int>"), the
	// name/arity signature for templates ("G/1").
	Canonical string

	// Value holds the evaluated constant for value arguments.
	Value *Value
}

// Classify determines the kind of a template argument expression.
func Classify(expr ast.Expression, scope *symbols.Table) (*Classified, *diagnostics.DiagnosticError) {
	switch e := expr.(type) {
	case *ast.TypeName:
		if e.Name == "void" {
			// void is a type-id but not a valid template argument type
			// in this subset.
			return nil, illFormed(e, "void is not a valid template argument")
		}
		return &Classified{Kind: kinds.Type, Canonical: e.Name}, nil

	case *ast.IntLiteral, *ast.BoolLiteral, *ast.CharLiteral, *ast.PrefixExpression, *ast.InfixExpression:
		return classifyValue(expr, scope)

	case *ast.Identifier:
		return classifyName(e, scope)

	case *ast.TemplateID:
		return classifyTemplateID(e, scope)

	case *ast.Wildcard:
		return nil, illFormed(e, "__ is a specialization pattern, not a template argument")

	case *ast.MemberExpression, *ast.CallExpression:
		return nil, illFormed(expr, fmt.Sprintf("%s is not a valid template argument", expr.String()))
	}
	return nil, illFormed(expr, "unrecognized template argument form")
}

// classifyName resolves a bare identifier: a declared template, a
// resolved alias, or a template parameter in scope.
func classifyName(e *ast.Identifier, scope *symbols.Table) (*Classified, *diagnostics.DiagnosticError) {
	sym, ok := scope.Lookup(e.Value)
	if !ok {
		return nil, &diagnostics.DiagnosticError{
			Code:    diagnostics.ErrC002,
			Token:   e.GetToken(),
			Message: fmt.Sprintf("unknown name %s in template argument", e.Value),
		}
	}
	switch sym.Kind {
	case symbols.TemplateSymbol:
		k := kinds.KTemplate{Slots: sym.Template.ParamKinds()}
		return &Classified{
			Kind:      k,
			Canonical: fmt.Sprintf("%s/%d", sym.Name, sym.Template.Arity()),
		}, nil
	case symbols.AliasSymbol:
		return &Classified{Kind: sym.AliasKind, Canonical: e.Value}, nil
	case symbols.ParameterSymbol:
		// A parameter in scope classifies as its declared kind. Value
		// parameters are not constant-evaluable here, so their
		// canonical form is the parameter name itself.
		return &Classified{Kind: sym.ParamKind, Canonical: e.Value}, nil
	}
	return nil, illFormed(e, fmt.Sprintf("%s cannot be used as a template argument", e.Value))
}

// classifyTemplateID handles Name<args> in argument position: the
// instantiated entity is a type. The arguments are classified for
// well-formedness, but matching the instantiation against Name's
// specializations is the resolver's job, not the classifier's.
func classifyTemplateID(e *ast.TemplateID, scope *symbols.Table) (*Classified, *diagnostics.DiagnosticError) {
	sym, ok := scope.Lookup(e.Name.Value)
	if !ok || sym.Kind != symbols.TemplateSymbol && sym.Kind != symbols.ParameterSymbol {
		return nil, &diagnostics.DiagnosticError{
			Code:    diagnostics.ErrC002,
			Token:   e.GetToken(),
			Message: fmt.Sprintf("%s does not name a template", e.Name.Value),
		}
	}
	if sym.Kind == symbols.ParameterSymbol {
		if _, isTemplate := sym.ParamKind.(kinds.KTemplate); !isTemplate {
			return nil, illFormed(e, fmt.Sprintf("%s is not a template and cannot take template arguments", e.Name.Value))
		}
	}

	canonical := e.Name.Value + "<"
	for i, arg := range e.Args {
		c, err := Classify(arg, scope)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			canonical += ", "
		}
		canonical += c.Canonical
	}
	canonical += ">"
	return &Classified{Kind: kinds.Type, Canonical: canonical}, nil
}

// classifyValue evaluates a constant expression argument.
func classifyValue(expr ast.Expression, scope *symbols.Table) (*Classified, *diagnostics.DiagnosticError) {
	v, err := Eval(expr, scope)
	if err != nil {
		return nil, err
	}
	return &Classified{
		Kind:      kinds.Value(v.Type),
		Canonical: fmt.Sprintf("%s:%s", v.Type, v.String()),
		Value:     v,
	}, nil
}

func illFormed(node ast.Expression, msg string) *diagnostics.DiagnosticError {
	return &diagnostics.DiagnosticError{
		Code:    diagnostics.ErrC001,
		Token:   node.GetToken(),
		Message: msg,
	}
}
