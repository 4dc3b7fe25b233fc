// Package project loads the optional per-project manifest carrying
// default compiler options.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name looked up from the working directory.
const ManifestName = "cesium.toml"

// Manifest mirrors the cesium.toml layout.
type Manifest struct {
	Compiler CompilerOptions `toml:"compiler"`
}

// CompilerOptions are the manifest's compiler defaults.
type CompilerOptions struct {
	Defines          []string `toml:"defines"`
	WarningLevel     int      `toml:"warning_level"`
	WarningsAsErrors bool     `toml:"warnings_as_errors"`
	NoWarn           []int    `toml:"nowarn"`
}

// Load reads and decodes a manifest file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("load manifest %q: %w", path, err)
	}
	return &m, nil
}

// Find walks from dir toward the filesystem root looking for a manifest.
func Find(dir string) (string, bool) {
	for {
		candidate := filepath.Join(dir, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
