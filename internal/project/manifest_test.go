package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"cesium/internal/project"
)

const sample = `
[compiler]
defines = ["DEBUG", "TRACE"]
warning_level = 3
warnings_as_errors = true
nowarn = [78, 1587]
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := project.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Compiler.Defines) != 2 || m.Compiler.Defines[0] != "DEBUG" {
		t.Fatalf("defines = %v", m.Compiler.Defines)
	}
	if m.Compiler.WarningLevel != 3 {
		t.Fatalf("warning level = %d", m.Compiler.WarningLevel)
	}
	if !m.Compiler.WarningsAsErrors {
		t.Fatal("warnings_as_errors lost")
	}
	if len(m.Compiler.NoWarn) != 2 || m.Compiler.NoWarn[1] != 1587 {
		t.Fatalf("nowarn = %v", m.Compiler.NoWarn)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := project.Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("missing manifest did not error")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, project.ManifestName), []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	found, ok := project.Find(nested)
	if !ok {
		t.Fatal("manifest not found from nested directory")
	}
	if found != filepath.Join(root, project.ManifestName) {
		t.Fatalf("found = %q", found)
	}
}

func TestFindMissing(t *testing.T) {
	if _, ok := project.Find(t.TempDir()); ok {
		t.Fatal("found a manifest where none exists")
	}
}
