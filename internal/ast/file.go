package ast

import "cesium/internal/source"

// SourceFile is the parse result for one buffer. Its root namespace is
// anonymous; named namespaces nest inside it.
type SourceFile struct {
	base
	Root *Namespace
}

func NewSourceFile(root *Namespace, loc source.FileSpan) *SourceFile {
	if root.Name != nil {
		panic("ast: the root namespace of a source file must be anonymous")
	}
	return &SourceFile{base: makeBase(loc), Root: root}
}
