package lexer

import (
	"github.com/univc/univc/internal/pipeline"
	"github.com/univc/univc/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	ctx.TokenStream = token.NewStream(l.Tokenize())
	return ctx
}
