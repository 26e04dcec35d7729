package resolver

import (
	"go.uber.org/zap"

	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/cache"
	"github.com/univc/univc/internal/pipeline"
)

// Processor runs the resolver as the final pipeline stage.
type Processor struct {
	Store  *cache.Store
	Logger *zap.Logger
}

func (rp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok || program == nil {
		return ctx
	}

	r := New(Options{Settings: ctx.Settings, Store: rp.Store, Logger: rp.Logger})
	resolutions, errs := r.Run(program)

	ctx.SymbolTable = r.Table()
	ctx.Resolutions = resolutions
	for _, err := range errs {
		if err.File == "" {
			err.File = ctx.FilePath
		}
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}
