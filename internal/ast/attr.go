package ast

import "cesium/internal/source"

// Attribute is one attribute within a section, e.g.
// [assembly: Version("1.0", Strict = true)].
type Attribute struct {
	base
	Target      string
	Type        Type
	Args        []Expr
	NamedNames  []*Identifier
	NamedValues []Expr
}

func NewAttribute(target string, typ Type, loc source.FileSpan) *Attribute {
	return &Attribute{base: makeBase(loc), Target: target, Type: typ}
}
