// Package cli is the file-driven entry point shared by the univc
// command and the end-to-end tests.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/univc/univc/internal/cache"
	"github.com/univc/univc/internal/config"
	"github.com/univc/univc/internal/lexer"
	"github.com/univc/univc/internal/parser"
	"github.com/univc/univc/internal/pipeline"
	"github.com/univc/univc/internal/prettyprinter"
	"github.com/univc/univc/internal/resolver"
	"github.com/univc/univc/internal/validate"
)

// Options configures a run. Empty string fields defer to the settings
// file (or defaults) of each processed file.
type Options struct {
	Checking  string // "eager" or "late"
	Variance  string // "covariant" or "contravariant"
	Color     string // "auto", "always" or "never"
	CachePath string

	CheckOnly bool // stop after parse + eager validation

	Logger *zap.Logger
	Out    io.Writer
}

func (o *Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

// RunSource processes a single source text through the full pipeline.
func RunSource(source, filePath string, settings *config.Settings, store *cache.Store, logger *zap.Logger) *pipeline.PipelineContext {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	ctx := &pipeline.PipelineContext{
		SourceCode: source,
		FilePath:   filePath,
		Settings:   settings,
	}
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&validate.Processor{},
		&resolver.Processor{Store: store, Logger: logger},
	)
	return p.Run(ctx)
}

// CheckSource runs only the front half of the pipeline: lex, parse and
// eager use-site validation.
func CheckSource(source, filePath string, settings *config.Settings) *pipeline.PipelineContext {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	ctx := &pipeline.PipelineContext{
		SourceCode: source,
		FilePath:   filePath,
		Settings:   settings,
	}
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&validate.Processor{},
	)
	return p.Run(ctx)
}

// RunFiles processes every file concurrently, prints each file's report
// in input order, and returns the total number of diagnostics.
func RunFiles(paths []string, opts Options) (int, error) {
	settings, err := settingsFor(paths, opts)
	if err != nil {
		return 0, err
	}

	var store *cache.Store
	if settings.CachePath != "" {
		store, err = cache.Open(settings.CachePath)
		if err != nil {
			return 0, err
		}
		defer store.Close()
	}

	logger := opts.logger()
	ctxs := make([]*pipeline.PipelineContext, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			if opts.CheckOnly {
				ctxs[i] = CheckSource(string(data), path, settings)
			} else {
				ctxs[i] = RunSource(string(data), path, settings, store, logger)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	printer := prettyprinter.New(opts.out(), settings.Color)
	total := 0
	for _, ctx := range ctxs {
		printer.PrintResolutions(ctx.Resolutions)
		printer.PrintDiagnostics(ctx.Errors)
		total += len(ctx.Errors)
	}
	return total, nil
}

// settingsFor loads univc.yaml from the directory of the first file (if
// present) and applies command-line overrides on top.
func settingsFor(paths []string, opts Options) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if len(paths) > 0 {
		candidate := filepath.Join(filepath.Dir(paths[0]), config.SettingsFileName)
		if _, err := os.Stat(candidate); err == nil {
			loaded, err := config.LoadSettings(candidate)
			if err != nil {
				return nil, err
			}
			settings = loaded
		}
	}
	if opts.Checking != "" {
		settings.Checking = opts.Checking
	}
	if opts.Variance != "" {
		settings.Variance = opts.Variance
	}
	if opts.Color != "" {
		settings.Color = opts.Color
	}
	if opts.CachePath != "" {
		settings.CachePath = opts.CachePath
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// SourceFiles filters paths to recognized source files, preserving order.
func SourceFiles(paths []string) []string {
	var out []string
	for _, p := range paths {
		for _, ext := range config.SourceFileExtensions {
			if strings.HasSuffix(p, ext) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
