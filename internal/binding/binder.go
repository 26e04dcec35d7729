package binding

import (
	"fmt"

	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/kinds"
	"github.com/univc/univc/internal/token"
)

// Binder binds classified arguments to template parameter lists. The
// variance strategy only matters for template template parameters, where
// it decides which direction of signature relaxation is tolerated.
type Binder struct {
	variance kinds.Variance
}

func NewBinder(variance kinds.Variance) *Binder {
	return &Binder{variance: variance}
}

// Bind matches args (with their classified kinds) against params and
// produces the attempt's record. Arity must match exactly; there are no
// parameter packs here. A universal parameter binds to every classified
// kind; a concrete parameter outside its declared kind fails with a kind
// mismatch.
func (b *Binder) Bind(template string, params []*ast.ParamDecl, args []ast.Expression, argKinds []kinds.Kind) (*Record, *diagnostics.DiagnosticError) {
	if len(args) != len(params) {
		tok := tokenOf(args, params)
		return nil, diagnostics.NewError(diagnostics.ErrB002, tok,
			fmt.Sprintf("%s expects %d template argument(s), got %d", template, len(params), len(args)))
	}

	rec := NewRecord(template)
	for i, p := range params {
		argKind := argKinds[i]
		if kinds.IsUniversal(p.Kind) {
			// Universal slots bind unconditionally and remember what
			// kind the argument turned out to be.
			rec.Bindings = append(rec.Bindings, &ParamBinding{
				Param:    p.Name,
				Declared: p.Kind,
				Bound:    argKind,
				Argument: args[i],
			})
			continue
		}
		if !kinds.Accepts(p.Kind, argKind, b.variance) {
			return nil, diagnostics.NewError(diagnostics.ErrB001, args[i].GetToken(),
				fmt.Sprintf("argument %s has kind %s, parameter %s requires %s",
					args[i].String(), argKind.String(), describeParam(p), p.Kind.String()))
		}
		rec.Bindings = append(rec.Bindings, &ParamBinding{
			Param:    p.Name,
			Declared: p.Kind,
			Bound:    argKind,
			Argument: args[i],
		})
	}
	return rec, nil
}

func describeParam(p *ast.ParamDecl) string {
	if p.Name == "" {
		return "(unnamed)"
	}
	return p.Name
}

func tokenOf(args []ast.Expression, params []*ast.ParamDecl) token.Token {
	if len(args) > 0 {
		return args[len(args)-1].GetToken()
	}
	if len(params) > 0 {
		return params[0].GetToken()
	}
	return token.Token{}
}
