package pipeline

import (
	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/binding"
	"github.com/univc/univc/internal/config"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/symbols"
	"github.com/univc/univc/internal/token"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries the state shared by all stages for one source
// file. Each file gets its own context; contexts are never shared
// between concurrently processed files.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	// Populated by the lexer.
	TokenStream *token.Stream

	// Populated by the parser.
	AstRoot ast.Node

	// Populated by the resolver.
	SymbolTable *symbols.Table
	Resolutions []*binding.Resolution

	// Settings applied to this run; nil means defaults.
	Settings *config.Settings

	// Errors accumulated across all stages, in emission order.
	Errors []*diagnostics.DiagnosticError
}

// HasErrors reports whether any stage emitted a diagnostic.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}
