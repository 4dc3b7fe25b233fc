package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cesium/internal/compiler"
	"cesium/internal/project"
)

// resolveConfig builds the compiler configuration from the manifest (if
// any) with command-line flags layered on top.
func resolveConfig(cmd *cobra.Command) (compiler.Config, error) {
	var cfg compiler.Config

	flags := cmd.Root().PersistentFlags()
	manifestPath, _ := flags.GetString("config")
	if manifestPath == "" {
		if wd, err := os.Getwd(); err == nil {
			if found, ok := project.Find(wd); ok {
				manifestPath = found
			}
		}
	}
	if manifestPath != "" {
		m, err := project.Load(manifestPath)
		if err != nil {
			return cfg, fmt.Errorf("resolve config: %w", err)
		}
		cfg.Defines = append(cfg.Defines, m.Compiler.Defines...)
		cfg.WarningLevel = m.Compiler.WarningLevel
		cfg.WarningsAsErrors = m.Compiler.WarningsAsErrors
		cfg.DisabledWarnings = append(cfg.DisabledWarnings, m.Compiler.NoWarn...)
	}

	defines, _ := flags.GetStringArray("define")
	cfg.Defines = append(cfg.Defines, defines...)
	if warn, _ := flags.GetInt("warn"); warn > 0 {
		cfg.WarningLevel = warn
	}
	if wae, _ := flags.GetBool("warnaserror"); wae {
		cfg.WarningsAsErrors = true
	}
	nowarn, _ := flags.GetIntSlice("nowarn")
	cfg.DisabledWarnings = append(cfg.DisabledWarnings, nowarn...)

	return cfg, nil
}
