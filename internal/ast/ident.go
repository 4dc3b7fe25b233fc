package ast

import "cesium/internal/source"

// Identifier is a simple or dotted name as written in source.
type Identifier struct {
	base
	Name string
}

func NewIdentifier(name string, loc source.FileSpan) *Identifier {
	return &Identifier{base: makeBase(loc), Name: name}
}

func (id *Identifier) String() string {
	if id == nil {
		return ""
	}
	return id.Name
}
