package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cesium/internal/compiler"
	"cesium/internal/diagfmt"
	"cesium/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.cs...",
	Short: "Parse Cesium source files",
	Long:  `Parse builds the declaration tree for the given files and dumps it`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	units := make([]source.Unit, 0, len(args))
	for _, path := range args {
		units = append(units, source.NewNamedUnit(path))
	}

	comp := compiler.New(cfg)
	files, err := comp.Compile(units)
	if err != nil {
		return err
	}

	opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
	if comp.Messages.Len() > 0 {
		diagfmt.Pretty(os.Stderr, comp.Messages.Items(), opts)
		diagfmt.Summary(os.Stderr, comp.Messages, opts)
	}

	diagfmt.Tree(os.Stdout, files)

	if comp.HasErrors() {
		return fmt.Errorf("compilation failed")
	}
	return nil
}
