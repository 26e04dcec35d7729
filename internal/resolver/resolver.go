// Package resolver orchestrates template instantiation requests: it
// declares every template in the file, classifies each request's
// arguments, binds them, selects the best specialization, and recurses
// into the selected definition's body. One resolver handles one file;
// resolvers share nothing but the optional persistent cache.
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
	"github.com/univc/univc/internal/match"
	"github.com/univc/univc/internal/symbols"
	"github.com/univc/univc/internal/validate"
)

// MaxInstantiationDepth bounds recursive body instantiation.
const MaxInstantiationDepth = 64

type Resolver struct {
	table     *symbols.Table
	binder    *binding.Binder
	matcher   *match.Matcher
	validator *validate.Validator

	policy   config.CheckPolicy
	variance kinds.Variance

	memory *cache.Memory
	store  *cache.Store
	log    *zap.Logger

	// lateChecked records definitions already validated under the late
	// policy, so each is reported once.
	lateChecked map[*ast.TemplateDecl]bool
}

// Options configures a resolver.
type Options struct {
	Settings *config.Settings
	Store    *cache.Store
	Logger   *zap.Logger
}

func New(opts Options) *Resolver {
	settings := opts.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	variance := settings.VarianceStrategy()
	return &Resolver{
		table:       symbols.NewTable(),
		binder:      binding.NewBinder(variance),
		matcher:     match.NewMatcher(variance),
		validator:   validate.New(),
		policy:      settings.Policy(),
		variance:    variance,
		memory:      cache.NewMemory(),
		store:       opts.Store,
		log:         logger,
		lateChecked: map[*ast.TemplateDecl]bool{},
	}
}

// Table exposes the symbol table built during Run.
func (r *Resolver) Table() *symbols.Table { return r.table }

// Run processes a parsed program: declaration pass first, then each
// instantiation request in order. It returns the resolutions and every
// diagnostic emitted.
func (r *Resolver) Run(program *ast.Program) ([]*binding.Resolution, []*diagnostics.DiagnosticError) {
	var errs []*diagnostics.DiagnosticError

	for _, stmt := range program.Statements {
		decl, ok := stmt.(*ast.TemplateDecl)
		if !ok {
			continue
		}
		if err := r.declare(decl); err != nil {
			errs = append(errs, err)
		}
	}

	var resolutions []*binding.Resolution
	for _, stmt := range program.Statements {
		ud, ok := stmt.(*ast.UsingDecl)
		if !ok {
			continue
		}
		res, err := r.resolveRequest(ud)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		resolutions = append(resolutions, res)
		r.table.Define(&symbols.Symbol{
			Name:      ud.Name.Value,
			Kind:      symbols.AliasSymbol,
			AliasKind: res.ResultKind,
		})
	}
	return resolutions, errs
}

// declare registers a template declaration, rejecting specializations of
// unknown primaries and pattern arity mismatches.
func (r *Resolver) declare(decl *ast.TemplateDecl) *diagnostics.DiagnosticError {
	if decl.IsSpecialization() {
		info, ok := r.table.LookupTemplate(decl.Name.Value)
		if !ok || info.Primary == nil {
			return diagnostics.NewError(diagnostics.ErrC002, decl.Name.GetToken(),
				fmt.Sprintf("specialization of undeclared template %s", decl.Name.Value))
		}
		if len(decl.Pattern) != info.Arity() {
			return diagnostics.NewError(diagnostics.ErrC001, decl.Name.GetToken(),
				fmt.Sprintf("specialization pattern of %s has %d argument(s), primary declares %d parameter(s)",
					decl.Name.Value, len(decl.Pattern), info.Arity()))
		}
	}
	r.table.DeclareTemplate(decl)
	r.log.Debug("declared template",
		zap.String("name", decl.Name.Value),
		zap.Bool("specialization", decl.IsSpecialization()))
	return nil
}

// resolveRequest handles one using-declaration.
func (r *Resolver) resolveRequest(ud *ast.UsingDecl) (*binding.Resolution, *diagnostics.DiagnosticError) {
	switch target := ud.Target.(type) {
	case *ast.TemplateID:
		res, err := r.instantiate(target, 0)
		if err != nil {
			return nil, err
		}
		res.Alias = ud.Name.Value
		return res, nil
	default:
		// A non-instantiating alias: classify the target and record the
		// resulting kind (e.g. `using t = int;` or `using f = vec;`).
		c, err := classify.Classify(ud.Target, r.table)
		if err != nil {
			return nil, err
		}
		return &binding.Resolution{
			Alias:      ud.Name.Value,
			Request:    ud.Target.String(),
			Selected:   ud.Target.String(),
			ResultKind: c.Kind,
		}, nil
	}
}
