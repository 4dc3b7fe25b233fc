package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cesium/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cesium",
	Short: "Cesium language front-end",
	Long:  `Cesium tokenizes and parses Cesium source files, reporting compiler diagnostics`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to a cesium.toml manifest")
	rootCmd.PersistentFlags().StringArrayP("define", "D", nil, "define a preprocessor symbol")
	rootCmd.PersistentFlags().Int("warn", 0, "warning level (1-4)")
	rootCmd.PersistentFlags().Bool("warnaserror", false, "treat warnings as errors")
	rootCmd.PersistentFlags().IntSlice("nowarn", nil, "disable the listed warning codes")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color tri-state against the output stream.
func useColor(cmd *cobra.Command, out *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	return mode == "on" || (mode == "auto" && isTerminal(out))
}
