package token

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// ValueKind discriminates the payload of a token Value.
type ValueKind uint8

const (
	// ValNone marks a token that carries no value.
	ValNone ValueKind = iota
	// ValNull is the 'null' literal.
	ValNull
	// ValBool is a boolean literal.
	ValBool
	// ValInt is a 32-bit signed integer literal.
	ValInt
	// ValUint is a 32-bit unsigned integer literal.
	ValUint
	// ValLong is a 64-bit signed integer literal.
	ValLong
	// ValUlong is a 64-bit unsigned integer literal.
	ValUlong
	// ValFloat is a 32-bit floating literal.
	ValFloat
	// ValDouble is a 64-bit floating literal.
	ValDouble
	// ValDecimal is a 128-bit decimal literal.
	ValDecimal
	// ValChar is a character literal.
	ValChar
	// ValString is a string literal.
	ValString
	// ValOp carries the base operator kind of an OpAssign token.
	ValOp
)

// Value is the discriminated union a Literal or OpAssign token carries.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Int   int64 // ValInt (32-bit range) and ValLong
	Uint  uint64
	Float float64 // ValFloat (32-bit range) and ValDouble
	Dec   *apd.Decimal
	Ch    rune
	Str   string
	Op    Kind
}

// NullValue returns the 'null' literal value.
func NullValue() Value { return Value{Kind: ValNull} }

// BoolValue wraps a boolean literal.
func BoolValue(b bool) Value { return Value{Kind: ValBool, Bool: b} }

// IntValue wraps a 32-bit signed literal.
func IntValue(v int32) Value { return Value{Kind: ValInt, Int: int64(v)} }

// UintValue wraps a 32-bit unsigned literal.
func UintValue(v uint32) Value { return Value{Kind: ValUint, Uint: uint64(v)} }

// LongValue wraps a 64-bit signed literal.
func LongValue(v int64) Value { return Value{Kind: ValLong, Int: v} }

// UlongValue wraps a 64-bit unsigned literal.
func UlongValue(v uint64) Value { return Value{Kind: ValUlong, Uint: v} }

// FloatValue wraps a 32-bit floating literal.
func FloatValue(v float32) Value { return Value{Kind: ValFloat, Float: float64(v)} }

// DoubleValue wraps a 64-bit floating literal.
func DoubleValue(v float64) Value { return Value{Kind: ValDouble, Float: v} }

// DecimalValue wraps a decimal literal.
func DecimalValue(d *apd.Decimal) Value { return Value{Kind: ValDecimal, Dec: d} }

// CharValue wraps a character literal.
func CharValue(c rune) Value { return Value{Kind: ValChar, Ch: c} }

// StringValue wraps a string literal.
func StringValue(s string) Value { return Value{Kind: ValString, Str: s} }

// OpValue records the base operator of a compound assignment.
func OpValue(op Kind) Value { return Value{Kind: ValOp, Op: op} }

func (v Value) String() string {
	switch v.Kind {
	case ValNone:
		return ""
	case ValNull:
		return "null"
	case ValBool:
		return strconv.FormatBool(v.Bool)
	case ValInt, ValLong:
		return strconv.FormatInt(v.Int, 10)
	case ValUint, ValUlong:
		return strconv.FormatUint(v.Uint, 10)
	case ValFloat, ValDouble:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValDecimal:
		if v.Dec == nil {
			return "0"
		}
		return v.Dec.Text('g')
	case ValChar:
		return string(v.Ch)
	case ValString:
		return v.Str
	case ValOp:
		return v.Op.String()
	}
	return fmt.Sprintf("value(%d)", v.Kind)
}

// Equal reports deep equality of two values; decimals compare numerically.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValNone, ValNull:
		return true
	case ValBool:
		return v.Bool == o.Bool
	case ValInt, ValLong:
		return v.Int == o.Int
	case ValUint, ValUlong:
		return v.Uint == o.Uint
	case ValFloat, ValDouble:
		return v.Float == o.Float
	case ValDecimal:
		if v.Dec == nil || o.Dec == nil {
			return v.Dec == o.Dec
		}
		return v.Dec.Cmp(o.Dec) == 0
	case ValChar:
		return v.Ch == o.Ch
	case ValString:
		return v.Str == o.Str
	case ValOp:
		return v.Op == o.Op
	}
	return false
}
