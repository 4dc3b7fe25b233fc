package ast

import (
	"strings"

	"cesium/internal/token"
)

// Type is a syntactic type reference. Resolution happens downstream; the
// parser only records shape.
type Type interface {
	typeRef()
	String() string
}

// UnresolvedType is a plain (possibly dotted) type name.
type UnresolvedType struct {
	Name *Identifier
}

func (*UnresolvedType) typeRef()         {}
func (t *UnresolvedType) String() string { return t.Name.String() }

// UnresolvedNestedType qualifies a name with an outer type.
type UnresolvedNestedType struct {
	Outer Type
	Name  *Identifier
}

func (*UnresolvedNestedType) typeRef() {}
func (t *UnresolvedNestedType) String() string {
	return t.Outer.String() + "." + t.Name.String()
}

// ArrayType is T[...] with rank >= 1.
type ArrayType struct {
	Elem Type
	Rank int
}

// NewArrayType builds an array type. Arrays of by-reference types do not
// exist; asking for one is a programmer error.
func NewArrayType(elem Type, rank int) *ArrayType {
	if rank < 1 {
		panic("ast: array rank must be at least 1")
	}
	if _, ok := elem.(*ReferenceType); ok {
		panic("ast: array of a by-reference type")
	}
	return &ArrayType{Elem: elem, Rank: rank}
}

func (*ArrayType) typeRef() {}
func (t *ArrayType) String() string {
	return t.Elem.String() + "[" + strings.Repeat(",", t.Rank-1) + "]"
}

// PointerType is T*.
type PointerType struct {
	Elem Type
}

func NewPointerType(elem Type) *PointerType {
	if _, ok := elem.(*ReferenceType); ok {
		panic("ast: pointer to a by-reference type")
	}
	return &PointerType{Elem: elem}
}

func (*PointerType) typeRef()         {}
func (t *PointerType) String() string { return t.Elem.String() + "*" }

// ReferenceType is the by-reference form T& used for ref/out parameters.
type ReferenceType struct {
	Elem Type
}

func NewReferenceType(elem Type) *ReferenceType {
	return &ReferenceType{Elem: elem}
}

func (*ReferenceType) typeRef()         {}
func (t *ReferenceType) String() string { return t.Elem.String() + "&" }

// NullableType is T?.
type NullableType struct {
	Elem Type
}

// NewNullableType builds T?. Nullables of by-reference or nullable types
// do not exist.
func NewNullableType(elem Type) *NullableType {
	if _, ok := elem.(*ReferenceType); ok {
		panic("ast: nullable of a by-reference type")
	}
	if _, ok := elem.(*NullableType); ok {
		panic("ast: nullable of a nullable type")
	}
	return &NullableType{Elem: elem}
}

func (*NullableType) typeRef()         {}
func (t *NullableType) String() string { return t.Elem.String() + "?" }

// PrimitiveType is one of the built-in language types.
type PrimitiveType uint8

const (
	PrimBool PrimitiveType = iota
	PrimByte
	PrimChar
	PrimDecimal
	PrimDouble
	PrimFloat
	PrimInt
	PrimLong
	PrimObject
	PrimSbyte
	PrimShort
	PrimString
	PrimUint
	PrimUlong
	PrimUshort
	PrimVoid
)

var primitiveNames = [...]string{
	PrimBool: "bool", PrimByte: "byte", PrimChar: "char", PrimDecimal: "decimal",
	PrimDouble: "double", PrimFloat: "float", PrimInt: "int", PrimLong: "long",
	PrimObject: "object", PrimSbyte: "sbyte", PrimShort: "short", PrimString: "string",
	PrimUint: "uint", PrimUlong: "ulong", PrimUshort: "ushort", PrimVoid: "void",
}

func (PrimitiveType) typeRef() {}

func (t PrimitiveType) String() string {
	if int(t) < len(primitiveNames) {
		return primitiveNames[t]
	}
	return "unknown"
}

var primitiveTokens = map[token.Kind]PrimitiveType{
	token.KwBool: PrimBool, token.KwByte: PrimByte, token.KwChar: PrimChar,
	token.KwDecimal: PrimDecimal, token.KwDouble: PrimDouble, token.KwFloat: PrimFloat,
	token.KwInt: PrimInt, token.KwLong: PrimLong, token.KwObject: PrimObject,
	token.KwSbyte: PrimSbyte, token.KwShort: PrimShort, token.KwString: PrimString,
	token.KwUint: PrimUint, token.KwUlong: PrimUlong, token.KwUshort: PrimUshort,
	token.KwVoid: PrimVoid,
}

// PrimitiveFromToken maps a type keyword to its primitive type.
func PrimitiveFromToken(k token.Kind) (PrimitiveType, bool) {
	p, ok := primitiveTokens[k]
	return p, ok
}

// integralEnumBases are the primitives an enum may use as its base.
var integralEnumBases = map[PrimitiveType]bool{
	PrimByte: true, PrimSbyte: true, PrimShort: true, PrimUshort: true,
	PrimInt: true, PrimUint: true, PrimLong: true, PrimUlong: true,
}

// IsValidEnumBase reports whether t can underlie an enum.
func IsValidEnumBase(t Type) bool {
	p, ok := t.(PrimitiveType)
	return ok && integralEnumBases[p]
}
