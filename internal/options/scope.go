// Package options holds the per-file stack of compiler option scopes: the
// preprocessor symbol table and the warning gates mutated by #pragma.
package options

import (
	"slices"

	"cesium/internal/diag"
)

// MaxDepth bounds option scope nesting; one scope is pushed per source
// buffer and the compiler may push one outer scope of its own.
const MaxDepth = 4

// Scope is one frame of compiler options. Symbol lookups walk to the
// parent; warning gates are copied down on push so mutations stay local.
type Scope struct {
	parent *Scope
	depth  int

	// defines marks preprocessor symbols: true for defined, false for an
	// explicit #undef that masks any parental definition.
	defines map[string]bool

	WarningLevel     int
	WarningsAsErrors bool

	// warningList names disabled codes, or re-enabled codes when
	// allDisabled is set.
	allDisabled bool
	warningList []int
}

// NewScope returns a root scope with the default warning level.
func NewScope() *Scope {
	return &Scope{
		depth:        1,
		defines:      make(map[string]bool),
		WarningLevel: 4,
	}
}

// Push enters a nested scope inheriting the current gate state.
func (s *Scope) Push() *Scope {
	if s.depth >= MaxDepth {
		panic("options: scope nesting exceeds maximum depth")
	}
	return &Scope{
		parent:           s,
		depth:            s.depth + 1,
		defines:          make(map[string]bool),
		WarningLevel:     s.WarningLevel,
		WarningsAsErrors: s.WarningsAsErrors,
		allDisabled:      s.allDisabled,
		warningList:      slices.Clone(s.warningList),
	}
}

// Pop leaves the scope, returning its parent.
func (s *Scope) Pop() *Scope {
	if s.parent == nil {
		panic("options: pop of root scope")
	}
	return s.parent
}

// Depth returns the number of scopes on the stack including this one.
func (s *Scope) Depth() int { return s.depth }

// Define records name as a defined preprocessor symbol.
func (s *Scope) Define(name string) {
	s.defines[name] = true
}

// Undefine records an explicit undefine for name, masking any definition
// in parent scopes.
func (s *Scope) Undefine(name string) {
	s.defines[name] = false
}

// IsDefined reports whether name is defined, walking to the parent when
// the local scope has not touched it.
func (s *Scope) IsDefined(name string) bool {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.defines[name]; ok {
			return v
		}
	}
	return false
}

// DisableWarning gates the given warning code off.
func (s *Scope) DisableWarning(code int) {
	if s.allDisabled {
		// the list names re-enabled codes; drop it from there
		s.warningList = slices.DeleteFunc(s.warningList, func(c int) bool { return c == code })
		return
	}
	if !slices.Contains(s.warningList, code) {
		s.warningList = append(s.warningList, code)
	}
}

// RestoreWarning turns the given warning code back on.
func (s *Scope) RestoreWarning(code int) {
	if s.allDisabled {
		if !slices.Contains(s.warningList, code) {
			s.warningList = append(s.warningList, code)
		}
		return
	}
	s.warningList = slices.DeleteFunc(s.warningList, func(c int) bool { return c == code })
}

// DisableAllWarnings gates every warning off.
func (s *Scope) DisableAllWarnings() {
	s.allDisabled = true
	s.warningList = nil
}

// RestoreAllWarnings clears every warning gate.
func (s *Scope) RestoreAllWarnings() {
	s.allDisabled = false
	s.warningList = nil
}

// IsWarningDisabled reports whether the given code is currently gated off.
func (s *Scope) IsWarningDisabled(code int) bool {
	if s.allDisabled {
		return !slices.Contains(s.warningList, code)
	}
	return slices.Contains(s.warningList, code)
}

// ShouldShow reports whether a diagnostic passes the scope's gates.
// Non-warnings always pass; a warning passes when its level is within the
// scope's warning level and its code is not disabled.
func (s *Scope) ShouldShow(code diag.Code) bool {
	if code.Severity() != diag.SevWarning {
		return true
	}
	if code.WarningLevel() > s.WarningLevel {
		return false
	}
	return !s.IsWarningDisabled(int(code))
}
