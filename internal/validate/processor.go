package validate

import (
	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/config"
	"github.com/univc/univc/internal/pipeline"
)

// Processor runs eager use-site validation over every template
// definition right after parsing. Under the late policy it does nothing;
// the resolver then validates each definition at its first
// instantiation instead.
type Processor struct{}

func (vp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Settings.Policy() != config.EagerCheck {
		return ctx
	}
	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok || program == nil {
		return ctx
	}

	v := New()
	for _, stmt := range program.Statements {
		decl, ok := stmt.(*ast.TemplateDecl)
		if !ok {
			continue
		}
		for _, err := range v.ValidateTemplate(decl) {
			if err.File == "" {
				err.File = ctx.FilePath
			}
			ctx.Errors = append(ctx.Errors, err)
		}
	}
	return ctx
}
