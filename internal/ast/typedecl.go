package ast

import "cesium/internal/source"

// TypeKind discriminates the five type declaration forms.
type TypeKind uint8

const (
	KindClass TypeKind = iota
	KindStruct
	KindInterface
	KindEnum
	KindDelegate
)

func (k TypeKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindStruct:
		return "struct"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindDelegate:
		return "delegate"
	}
	return "type"
}

// TypeDeclaration is a class, struct, interface, enum, or delegate. The
// member lists are populated for class-like kinds, EnumBase/EnumMembers
// for enums, and ReturnType/Params for delegates.
type TypeDeclaration struct {
	base
	Attributes []*Attribute
	Mods       Modifiers
	Kind       TypeKind
	Name       *Identifier
	Bases      []Type

	Events     List[*Event]
	Fields     List[*Field]
	Methods    List[*Method]
	Properties List[*Property]
	Nested     List[*TypeDeclaration]

	EnumBase    Type
	EnumMembers List[*EnumMember]

	ReturnType Type
	Params     []*Parameter
}

func NewTypeDeclaration(kind TypeKind, name *Identifier, loc source.FileSpan) *TypeDeclaration {
	return &TypeDeclaration{base: makeBase(loc), Kind: kind, Name: name}
}

// Field is a variable or constant member.
type Field struct {
	base
	Attributes []*Attribute
	Mods       Modifiers
	Type       Type
	Name       *Identifier
	Init       Expr
}

func NewField(typ Type, name *Identifier, loc source.FileSpan) *Field {
	return &Field{base: makeBase(loc), Type: typ, Name: name}
}

// MethodKind separates ordinary methods from constructors and
// destructors.
type MethodKind uint8

const (
	MethodOrdinary MethodKind = iota
	MethodConstructor
	MethodDestructor
)

// Method is a method, constructor, or destructor. Bodies are not parsed;
// HasBody records whether one was present and BodySpan where it was.
type Method struct {
	base
	Attributes []*Attribute
	Mods       Modifiers
	Kind       MethodKind
	ReturnType Type
	Name       *Identifier
	Params     []*Parameter
	HasBody    bool
	BodySpan   source.Span
}

func NewMethod(kind MethodKind, name *Identifier, loc source.FileSpan) *Method {
	return &Method{base: makeBase(loc), Kind: kind, Name: name}
}

// Property is a property or indexer; accessor bodies are skipped.
type Property struct {
	base
	Attributes []*Attribute
	Mods       Modifiers
	Type       Type
	Name       *Identifier
	IsIndexer  bool
	Params     []*Parameter
	HasGetter  bool
	HasSetter  bool
}

func NewProperty(typ Type, name *Identifier, loc source.FileSpan) *Property {
	return &Property{base: makeBase(loc), Type: typ, Name: name}
}

// Event is a field-like event member.
type Event struct {
	base
	Attributes []*Attribute
	Mods       Modifiers
	Type       Type
	Name       *Identifier
}

func NewEvent(typ Type, name *Identifier, loc source.FileSpan) *Event {
	return &Event{base: makeBase(loc), Type: typ, Name: name}
}

// EnumMember is one enum constant with an optional initializer.
type EnumMember struct {
	base
	Name  *Identifier
	Value Expr
}

func NewEnumMember(name *Identifier, loc source.FileSpan) *EnumMember {
	return &EnumMember{base: makeBase(loc), Name: name}
}

// ParamMode is the passing mode of a parameter.
type ParamMode uint8

const (
	ParamValue ParamMode = iota
	ParamRef
	ParamOut
	ParamParams
)

// Parameter is one formal parameter.
type Parameter struct {
	base
	Mode ParamMode
	Type Type
	Name *Identifier
}

func NewParameter(mode ParamMode, typ Type, name *Identifier, loc source.FileSpan) *Parameter {
	return &Parameter{base: makeBase(loc), Mode: mode, Type: typ, Name: name}
}
