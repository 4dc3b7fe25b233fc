package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cesium/internal/compiler"
	"cesium/internal/diag"
	"cesium/internal/diagfmt"
	"cesium/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file.cs...",
	Short: "Check Cesium source files for diagnostics",
	Long:  `Check compiles each file independently, in parallel, and reports every diagnostic`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// one compiler per file: a compiler is single-threaded, the fleet
	// is not
	results := make([]*diag.Collection, len(args))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range args {
		g.Go(func() error {
			comp := compiler.New(cfg)
			_, err := comp.Compile([]source.Unit{source.NewNamedUnit(path)})
			results[i] = comp.Messages
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
	failed := false
	total := diag.NewCollection()
	for _, msgs := range results {
		diagfmt.Pretty(os.Stdout, msgs.Items(), opts)
		for _, m := range msgs.Items() {
			total.Add(m)
		}
		if msgs.HasErrors() {
			failed = true
		}
	}
	diagfmt.Summary(os.Stdout, total, opts)

	if failed {
		return fmt.Errorf("check failed")
	}
	return nil
}
