package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/univc/univc/internal/config"
	"github.com/univc/univc/internal/lexer"
	"github.com/univc/univc/internal/parser"
	"github.com/univc/univc/internal/pipeline"
	"github.com/univc/univc/pkg/cli"
)

var (
	flagChecking string
	flagVariance string
	flagColor    string
	flagCache    string
	flagVerbose  bool
)

func main() {
	root := &cobra.Command{
		Use:           "univc",
		Short:         "univc resolves universal template parameters",
		Long:          "univc is a prototype front end for universal (template auto) template parameters:\nit classifies template arguments, binds parameters, selects specializations by\nkind specificity, and validates universal parameter use sites.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagChecking, "checking", "", "use-site checking policy: eager or late")
	root.PersistentFlags().StringVar(&flagVariance, "variance", "", "nested slot comparison: covariant or contravariant")
	root.PersistentFlags().StringVar(&flagColor, "color", "", "diagnostic coloring: auto, always or never")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	resolveCmd := &cobra.Command{
		Use:   "resolve <file>...",
		Short: "Resolve every instantiation request in the given files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, false)
		},
	}
	resolveCmd.Flags().StringVar(&flagCache, "cache", "", "path of the persistent resolution cache")

	checkCmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse and validate without resolving",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, true)
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the parsed AST of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dump(args[0])
		},
	}

	root.AddCommand(resolveCmd, checkCmd, dumpCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "univc:", err)
		os.Exit(1)
	}
}

func run(paths []string, checkOnly bool) error {
	files := cli.SourceFiles(paths)
	if len(files) == 0 {
		return fmt.Errorf("no source files (expected %s) among the arguments", config.SourceFileExt)
	}

	logger := zap.NewNop()
	if flagVerbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer dev.Sync()
		logger = dev
	}

	errCount, err := cli.RunFiles(files, cli.Options{
		Checking:  flagChecking,
		Variance:  flagVariance,
		Color:     flagColor,
		CachePath: flagCache,
		CheckOnly: checkOnly,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	if errCount > 0 {
		os.Exit(1)
	}
	return nil
}

func dump(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	ctx := &pipeline.PipelineContext{
		SourceCode: string(data),
		FilePath:   path,
		Settings:   config.DefaultSettings(),
	}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	for _, e := range ctx.Errors {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	spew.Fdump(os.Stdout, ctx.AstRoot)
	if ctx.HasErrors() {
		os.Exit(1)
	}
	return nil
}
