package resolver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/binding"
	"github.com/univc/univc/internal/cache"
	"github.com/univc/univc/internal/classify"
	"github.com/univc/univc/internal/config"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/kinds"
)

// instantiate resolves Name<args>: classify, consult the caches, bind
// against the primary, select the best specialization, then recurse into
// the selected body under the substitution.
func (r *Resolver) instantiate(tid *ast.TemplateID, depth int) (*binding.Resolution, *diagnostics.DiagnosticError) {
	if depth > MaxInstantiationDepth {
		return nil, diagnostics.NewError(diagnostics.ErrC001, tid.GetToken(),
			fmt.Sprintf("instantiation depth limit exceeded while resolving %s", tid.String()))
	}

	info, ok := r.table.LookupTemplate(tid.Name.Value)
	if !ok {
		return nil, diagnostics.NewError(diagnostics.ErrC002, tid.GetToken(),
			fmt.Sprintf("%s does not name a template", tid.Name.Value))
	}

	args := make([]*classify.Classified, len(tid.Args))
	canonicals := make([]string, len(tid.Args))
	for i, arg := range tid.Args {
		c, err := classify.Classify(arg, r.table)
		if err != nil {
			return nil, err
		}
		args[i] = c
		canonicals[i] = c.Canonical
		r.log.Debug("classified argument",
			zap.String("template", info.Name),
			zap.Int("slot", i),
			zap.String("kind", c.Kind.String()),
			zap.String("canonical", c.Canonical))
	}

	key := cache.Key(info.Name, canonicals)
	if entry, hit := r.memory.Get(key); hit {
		return cachedResolution(tid, entry), nil
	}
	if r.store != nil {
		if entry, hit, err := r.store.Get(key); err == nil && hit {
			r.memory.Put(key, entry)
			return cachedResolution(tid, entry), nil
		}
	}

	rec, bindErr := r.binder.Bind(info.Name, info.Primary.Params, tid.Args, classifiedKinds(args))
	if bindErr != nil {
		return nil, bindErr
	}

	selected, matchErr := r.matcher.Match(info, args, tid.GetToken(), r.table)
	if matchErr != nil {
		return nil, matchErr
	}
	r.log.Debug("selected specialization",
		zap.String("template", info.Name),
		zap.String("candidate", selected.Desc()))

	if r.policy == config.LateCheck && !r.lateChecked[selected.Decl] {
		r.lateChecked[selected.Decl] = true
		if errs := r.validator.ValidateTemplate(selected.Decl); len(errs) > 0 {
			return nil, errs[0]
		}
	}

	resultKind, err := r.instantiateBody(tid, selected.Decl, args, depth)
	if err != nil {
		return nil, err
	}

	entry := cache.Entry{Selected: selected.Desc(), ResultKind: resultKind}
	r.memory.Put(key, entry)
	if r.store != nil {
		if err := r.store.Put(key, entry); err != nil {
			r.log.Warn("persistent cache write failed", zap.Error(err))
		}
	}

	return &binding.Resolution{
		Request:    tid.String(),
		Selected:   selected.Desc(),
		Record:     rec,
		ResultKind: resultKind,
	}, nil
}

// instantiateBody substitutes bound arguments into the selected
// definition's aliases and resolves any template-ids they produce. The
// result kind is the kind of the member alias named "type" when one
// exists; otherwise the instantiation denotes a plain class type.
func (r *Resolver) instantiateBody(tid *ast.TemplateID, decl *ast.TemplateDecl, args []*classify.Classified, depth int) (kinds.Kind, *diagnostics.DiagnosticError) {
	var result kinds.Kind = kinds.Type
	if decl.Body == nil {
		return result, nil
	}

	subst := r.substitutionFor(decl, tid, args)

	for _, stmt := range decl.Body.Statements {
		alias, ok := stmt.(*ast.AliasDecl)
		if !ok {
			continue
		}
		target := substitute(alias.Target, subst)

		var targetKind kinds.Kind
		if nested, isTID := target.(*ast.TemplateID); isTID {
			res, err := r.instantiate(nested, depth+1)
			if err != nil {
				// The request as written was fine; the substituted
				// argument list is what turned out ill-formed.
				return nil, diagnostics.NewError(diagnostics.ErrC001, alias.Target.GetToken(),
					fmt.Sprintf("in the instantiation of %s: %s", tid.String(), err.Message))
			}
			targetKind = res.ResultKind
		} else {
			c, err := classify.Classify(target, r.table)
			if err != nil {
				return nil, diagnostics.NewError(diagnostics.ErrC001, alias.Target.GetToken(),
					fmt.Sprintf("in the instantiation of %s: %s", tid.String(), err.Message))
			}
			targetKind = c.Kind
		}

		if alias.Name.Value == "type" {
			result = targetKind
		}
	}
	return result, nil
}

// substitutionFor maps the selected definition's parameter names to the
// request's argument expressions. For a specialization the mapping goes
// through its pattern: a pattern slot naming one of the specialization's
// parameters binds that parameter to the argument in the same position.
func (r *Resolver) substitutionFor(decl *ast.TemplateDecl, tid *ast.TemplateID, args []*classify.Classified) map[string]ast.Expression {
	subst := map[string]ast.Expression{}

	if !decl.IsSpecialization() {
		for i, p := range decl.Params {
			if p.Name != "" && i < len(tid.Args) {
				subst[p.Name] = tid.Args[i]
			}
		}
		return subst
	}

	own := map[string]bool{}
	for _, p := range decl.Params {
		if p.Name != "" {
			own[p.Name] = true
		}
	}
	for i, pat := range decl.Pattern {
		ident, ok := pat.(*ast.Identifier)
		if !ok || !own[ident.Value] || i >= len(tid.Args) {
			continue
		}
		subst[ident.Value] = tid.Args[i]
	}
	return subst
}

// substitute returns expr with every identifier bound in subst replaced
// by its argument expression. The input is never mutated.
func substitute(expr ast.Expression, subst map[string]ast.Expression) ast.Expression {
	switch e := expr.(type) {
	case *ast.Identifier:
		if repl, ok := subst[e.Value]; ok {
			return repl
		}
		return e
	case *ast.TemplateID:
		out := &ast.TemplateID{Token: e.Token, Name: e.Name}
		if repl, ok := subst[e.Name.Value]; ok {
			if ident, isIdent := repl.(*ast.Identifier); isIdent {
				out.Name = ident
			}
		}
		out.Args = make([]ast.Expression, len(e.Args))
		for i, arg := range e.Args {
			out.Args[i] = substitute(arg, subst)
		}
		return out
	case *ast.PrefixExpression:
		return &ast.PrefixExpression{Token: e.Token, Operator: e.Operator, Right: substitute(e.Right, subst)}
	case *ast.InfixExpression:
		return &ast.InfixExpression{
			Token:    e.Token,
			Left:     substitute(e.Left, subst),
			Operator: e.Operator,
			Right:    substitute(e.Right, subst),
		}
	case *ast.MemberExpression:
		return &ast.MemberExpression{Token: e.Token, Object: substitute(e.Object, subst), Operator: e.Operator, Member: e.Member}
	case *ast.CallExpression:
		out := &ast.CallExpression{Token: e.Token, Target: substitute(e.Target, subst)}
		out.Args = make([]ast.Expression, len(e.Args))
		for i, arg := range e.Args {
			out.Args[i] = substitute(arg, subst)
		}
		return out
	default:
		return expr
	}
}

func classifiedKinds(args []*classify.Classified) []kinds.Kind {
	out := make([]kinds.Kind, len(args))
	for i, a := range args {
		out[i] = a.Kind
	}
	return out
}

func cachedResolution(tid *ast.TemplateID, entry cache.Entry) *binding.Resolution {
	return &binding.Resolution{
		Request:    tid.String(),
		Selected:   entry.Selected,
		ResultKind: entry.ResultKind,
		CacheHit:   true,
	}
}
