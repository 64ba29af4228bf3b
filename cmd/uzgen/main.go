// Command uzgen renders the per-type files of package uz.
//
// It is run through go generate from the repository root:
//
//	//go:generate go run ./cmd/uzgen --config uzgen.yaml
//
// With --check it writes nothing and exits non-zero if any committed file
// differs from what the templates would render.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/uz/internal/gen"
)

// options holds the command-line flags.
type options struct {
	Config  string
	Out     string
	Check   bool
	DryRun  bool
	Verbose bool
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "uzgen",
		Short: "Generate the UzN and RzM types",
		Long: `Generate the fixed-width bit types (UzN) and ranged index types (RzM)
of package uz from the embedded templates.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "path to uzgen.yaml (defaults are used when empty)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output directory, overrides the config")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "fail if generated files are stale instead of writing them")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "render and list files without writing them")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log progress to stderr")
	cmd.MarkFlagsMutuallyExclusive("check", "dry-run")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
		gen.SetLogger(logger)
	}

	cfg := gen.DefaultConfig()
	if opts.Config != "" {
		var err error
		if cfg, err = gen.LoadConfig(opts.Config); err != nil {
			return err
		}
	}
	if opts.Out != "" {
		cfg.Output = opts.Out
	}

	g, err := gen.New(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	switch {
	case opts.DryRun:
		files, err := g.Render()
		if err != nil {
			return err
		}
		for _, name := range g.Files() {
			fmt.Fprintf(out, "%s\t%d bytes\n", name, len(files[name]))
		}
		return nil

	case opts.Check:
		stale, err := g.Check(ctx)
		if err != nil {
			return err
		}
		for _, name := range stale {
			fmt.Fprintf(out, "stale: %s\n", name)
		}
		if len(stale) > 0 {
			return fmt.Errorf("%d generated file(s) out of date; run go generate", len(stale))
		}
		return nil
	}

	return g.Write(ctx)
}
