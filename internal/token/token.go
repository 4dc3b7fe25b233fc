package token

import (
	"cesium/internal/source"
)

// Sentinels for the #line override carried on each token.
const (
	// LineDefault means no #line remapping is in effect.
	LineDefault = 0
	// LineHidden elides the token's line from debug information.
	LineHidden = -1
)

// Token is one lexical unit: a kind, the buffer it came from, an inclusive
// character range, an optional typed value, and the #line remapping state
// that was in effect when it was emitted.
type Token struct {
	Kind       Kind
	Source     string
	Start      source.Position
	End        source.Position
	Value      Value
	Line       int    // #line override; LineDefault or LineHidden sentinels
	LineSource string // #line file override; empty when not remapped
}

// FileSpan returns the token's location as a named span.
func (t Token) FileSpan() source.FileSpan {
	return source.FileSpan{
		Name: t.Source,
		Span: source.Span{Start: t.Start, End: t.End},
	}
}

// Display renders the token the way diagnostics quote it.
func (t Token) Display() string {
	switch t.Kind {
	case Ident:
		return t.Value.Str
	case Literal, OpAssign:
		return t.Value.String()
	default:
		return t.Kind.String()
	}
}
