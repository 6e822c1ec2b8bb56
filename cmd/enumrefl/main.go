// Package main provides the enumrefl CLI entry point.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arloliu/enumrefl/catalog"
)

type rootOptions struct {
	verbose bool
	debug   bool
	noColor bool
	logger  *slog.Logger
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "enumrefl",
		Short:         "Inspect and query enum descriptor catalogs",
		Long:          `enumrefl loads an enum catalog (YAML, JSON or TOML) and prints its descriptors or resolves values and labels.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.noColor {
				color.NoColor = true
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.debug)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "print metadata text instead of YES/NO")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log catalog construction to stderr")

	rootCmd.AddCommand(inspectCmd(opts))
	rootCmd.AddCommand(lookupCmd(opts))

	return rootCmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadCatalog(path string, opts *rootOptions) (*catalog.Catalog, error) {
	return catalog.LoadFile(path, catalog.WithLogger(opts.logger))
}
