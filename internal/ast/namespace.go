package ast

import "cesium/internal/source"

// Using is either a using-namespace or a using-alias directive.
type Using interface {
	Node
	usingNode()
}

// UsingNamespace is 'using N.M;'.
type UsingNamespace struct {
	base
	Name *Identifier
}

func NewUsingNamespace(name *Identifier, loc source.FileSpan) *UsingNamespace {
	return &UsingNamespace{base: makeBase(loc), Name: name}
}

func (*UsingNamespace) usingNode() {}

// UsingAlias is 'using A = N.M.T;'.
type UsingAlias struct {
	base
	Alias  *Identifier
	Target Type
}

func NewUsingAlias(alias *Identifier, target Type, loc source.FileSpan) *UsingAlias {
	return &UsingAlias{base: makeBase(loc), Alias: alias, Target: target}
}

func (*UsingAlias) usingNode() {}

// Namespace collects the declarations of one namespace body. The file's
// root namespace has a nil name.
type Namespace struct {
	base
	Name          *Identifier
	ExternAliases []string

	Usings           List[Using]
	Namespaces       List[*Namespace]
	Types            List[*TypeDeclaration]
	GlobalAttributes List[*Attribute]
}

func NewNamespace(name *Identifier, loc source.FileSpan) *Namespace {
	return &Namespace{base: makeBase(loc), Name: name}
}
