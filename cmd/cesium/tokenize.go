package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cesium/internal/compiler"
	"cesium/internal/diagfmt"
	"cesium/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.cs...",
	Short: "Tokenize Cesium source files",
	Long:  `Tokenize runs the scanner and preprocessor over the given files and dumps the token stream`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("read format flag: %w", err)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	units := make([]source.Unit, 0, len(args))
	for _, path := range args {
		units = append(units, source.NewNamedUnit(path))
	}

	comp := compiler.New(cfg)
	tokens, err := comp.Tokenize(units)
	if err != nil {
		return err
	}

	if comp.Messages.Len() > 0 {
		diagfmt.Pretty(os.Stderr, comp.Messages.Items(),
			diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
