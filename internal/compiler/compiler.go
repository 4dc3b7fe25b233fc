// Package compiler is the thin shell the scanner and parser hang off: it
// owns the diagnostic sink and the option scope stack, and wires the
// phases together for a compile.
package compiler

import (
	"cesium/internal/ast"
	"cesium/internal/diag"
	"cesium/internal/options"
	"cesium/internal/parser"
	"cesium/internal/scanner"
	"cesium/internal/source"
	"cesium/internal/token"
)

// Config carries the initial compiler options.
type Config struct {
	// Defines are preprocessor symbols defined before any source is read.
	Defines []string
	// WarningLevel caps which warnings show; 0 means the default level 4.
	WarningLevel int
	// WarningsAsErrors promotes every shown warning to an error.
	WarningsAsErrors bool
	// DisabledWarnings gates the listed codes off from the start.
	DisabledWarnings []int
	// Loader opens sources named without an explicit reader; nil means
	// the local filesystem.
	Loader source.Loader
}

// Compiler holds the state shared by one compile. It is not safe for
// concurrent use; run one compiler per goroutine.
type Compiler struct {
	Messages *diag.Collection
	opts     *options.Scope
	loader   source.Loader
}

// New builds a compiler with the given configuration.
func New(cfg Config) *Compiler {
	scope := options.NewScope()
	if cfg.WarningLevel > 0 {
		scope.WarningLevel = cfg.WarningLevel
	}
	scope.WarningsAsErrors = cfg.WarningsAsErrors
	for _, d := range cfg.Defines {
		scope.Define(d)
	}
	for _, w := range cfg.DisabledWarnings {
		scope.DisableWarning(w)
	}
	return &Compiler{
		Messages: diag.NewCollection(),
		opts:     scope,
		loader:   cfg.Loader,
	}
}

// Options returns the current option scope.
func (c *Compiler) Options() *options.Scope { return c.opts }

// PushOptions enters a nested option scope inheriting current values.
func (c *Compiler) PushOptions() { c.opts = c.opts.Push() }

// PopOptions leaves the current option scope.
func (c *Compiler) PopOptions() { c.opts = c.opts.Pop() }

// Report formats and records one diagnostic, applying the warning gates
// of the current option scope and warn-as-error promotion.
func (c *Compiler) Report(code diag.Code, loc source.FileSpan, args ...any) {
	sev := code.Severity()
	if sev == diag.SevWarning {
		if !c.opts.ShouldShow(code) {
			return
		}
		if c.opts.WarningsAsErrors {
			sev = diag.SevError
		}
	}
	c.Messages.Add(&diag.Message{
		Severity: sev,
		Code:     code,
		Source:   loc.Name,
		Pos:      loc.Start,
		Text:     code.Message(args...),
	})
}

// HasErrors reports whether any error has been recorded.
func (c *Compiler) HasErrors() bool { return c.Messages.HasErrors() }

// Compile parses every unit into a source file tree. Diagnostics land in
// Messages; the error return covers I/O failures only.
func (c *Compiler) Compile(units []source.Unit) ([]*ast.SourceFile, error) {
	rd := source.NewReader(units, c.loader)
	scn := scanner.New(rd, c)
	files := parser.New(scn, c).ParseProgram()
	return files, rd.Err()
}

// Tokenize runs only the scanner, collecting the full token stream
// including the per-buffer EOF markers and the final EOD.
func (c *Compiler) Tokenize(units []source.Unit) ([]token.Token, error) {
	rd := source.NewReader(units, c.loader)
	scn := scanner.New(rd, c)
	var toks []token.Token
	for {
		tok, more := scn.NextToken()
		toks = append(toks, tok)
		if !more {
			break
		}
	}
	return toks, rd.Err()
}
