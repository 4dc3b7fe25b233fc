package scanner

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"fortio.org/safecast"
	"github.com/cockroachdb/apd/v3"

	"cesium/internal/diag"
	"cesium/internal/source"
	"cesium/internal/token"
)

// decimalContext matches the precision of a 128-bit decimal.
var decimalContext = apd.BaseContext.WithPrecision(29)

// decimalMax is the largest representable decimal magnitude, 2^96 - 1.
var decimalMax = func() *apd.Decimal {
	d, _, err := apd.NewFromString("79228162514264337593543950335")
	if err != nil {
		panic(err)
	}
	return d
}()

// scanNumber reads a numeric literal. The suffix decides the value type;
// without one, an integer picks the smallest fitting type among int, uint,
// long, and ulong, and anything with a fraction or exponent is a double.
func (s *Scanner) scanNumber(start source.Position, leadingDot bool) (token.Token, bool) {
	if !leadingDot && s.ch == '0' && (s.peek() == 'x' || s.peek() == 'X') {
		return s.scanHexNumber(start)
	}

	var text []rune
	isInteger := true

	if leadingDot {
		isInteger = false
		text = append(text, '0', '.')
		s.advance() // '.'
		for isDigit(s.ch) {
			text = append(text, s.ch)
			s.advance()
		}
	} else {
		for isDigit(s.ch) {
			text = append(text, s.ch)
			s.advance()
		}
		if s.ch == '.' && isDigit(s.peek()) {
			isInteger = false
			text = append(text, '.')
			s.advance()
			for isDigit(s.ch) {
				text = append(text, s.ch)
				s.advance()
			}
		}
	}

	hasExponent := false
	if s.ch == 'e' || s.ch == 'E' {
		isInteger = false
		hasExponent = true
		text = append(text, 'e')
		s.advance()
		if s.ch == '-' || s.ch == '+' {
			text = append(text, s.ch)
			s.advance()
		}
		if !isDigit(s.ch) {
			s.report(diag.InvalidNumber, s.at(start))
			return s.makeToken(token.Literal, start, token.DoubleValue(0)), true
		}
		for isDigit(s.ch) {
			text = append(text, s.ch)
			s.advance()
		}
	}

	lit := string(text)
	switch s.ch {
	case 'f', 'F':
		s.advance()
		return s.makeToken(token.Literal, start, s.floatValue(lit, start)), true
	case 'd', 'D':
		s.advance()
		return s.makeToken(token.Literal, start, s.doubleValue(lit, start)), true
	case 'm', 'M':
		s.advance()
		return s.makeToken(token.Literal, start, s.decimalValue(lit, hasExponent, start)), true
	}

	if !isInteger {
		return s.makeToken(token.Literal, start, s.doubleValue(lit, start)), true
	}

	unsigned, long := s.readIntSuffix()
	val, err := strconv.ParseUint(lit, 10, 64)
	if err != nil {
		s.report(diag.IntegralConstantTooLarge, s.at(start))
		val = math.MaxUint64
	}
	return s.makeToken(token.Literal, start, integerValue(val, unsigned, long)), true
}

func (s *Scanner) scanHexNumber(start source.Position) (token.Token, bool) {
	s.advance() // '0'
	s.advance() // 'x'
	if !isHexDigit(s.ch) {
		s.report(diag.InvalidNumber, s.at(start))
		return s.makeToken(token.Literal, start, token.IntValue(0)), true
	}

	var val uint64
	overflow := false
	for isHexDigit(s.ch) {
		if val&0xF000000000000000 != 0 {
			// the next shift would push a set bit past bit 63
			overflow = true
		}
		val = val<<4 | hexValue(s.ch)
		s.advance()
	}

	unsigned, long := s.readIntSuffix()
	if overflow {
		s.report(diag.IntegralConstantTooLarge, s.at(start))
	}
	if !unsigned && !long && val > math.MaxUint32 {
		// an unsuffixed hex constant wider than 32 bits reads as unsigned
		return s.makeToken(token.Literal, start, token.UlongValue(val)), true
	}
	return s.makeToken(token.Literal, start, integerValue(val, unsigned, long)), true
}

// readIntSuffix consumes any combination of one 'u' and one 'L' in either
// order. A lowercase 'l' is accepted with a warning.
func (s *Scanner) readIntSuffix() (unsigned, long bool) {
	for {
		switch s.ch {
		case 'u', 'U':
			if unsigned {
				return
			}
			unsigned = true
			s.advance()
		case 'l', 'L':
			if long {
				return
			}
			if s.ch == 'l' {
				s.report(diag.UseUppercaseL, s.here())
			}
			long = true
			s.advance()
		default:
			return
		}
	}
}

// narrow32 converts a range-checked value to its 32-bit representation.
func narrow32[T int32 | uint32](val uint64) T {
	out, err := safecast.Conv[T](val)
	if err != nil {
		panic(fmt.Errorf("integer literal narrowing: %w", err))
	}
	return out
}

// integerValue picks the value type: the smallest of int, uint, long, and
// ulong that fits, narrowed by the suffixes.
func integerValue(val uint64, unsigned, long bool) token.Value {
	switch {
	case !unsigned && !long:
		switch {
		case val <= math.MaxInt32:
			return token.IntValue(narrow32[int32](val))
		case val <= math.MaxUint32:
			return token.UintValue(narrow32[uint32](val))
		case val <= math.MaxInt64:
			return token.LongValue(int64(val))
		default:
			return token.UlongValue(val)
		}
	case unsigned && !long:
		if val <= math.MaxUint32 {
			return token.UintValue(narrow32[uint32](val))
		}
		return token.UlongValue(val)
	case !unsigned && long:
		if val <= math.MaxInt64 {
			return token.LongValue(int64(val))
		}
		return token.UlongValue(val)
	default:
		return token.UlongValue(val)
	}
}

func (s *Scanner) floatValue(lit string, start source.Position) token.Value {
	f, err := strconv.ParseFloat(lit, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			s.report(diag.RealConstantTooLarge, s.at(start), "float")
		} else {
			s.report(diag.InvalidNumber, s.at(start))
		}
	}
	return token.FloatValue(float32(f))
}

func (s *Scanner) doubleValue(lit string, start source.Position) token.Value {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			s.report(diag.RealConstantTooLarge, s.at(start), "double")
		} else {
			s.report(diag.InvalidNumber, s.at(start))
		}
	}
	return token.DoubleValue(f)
}

// decimalValue parses an 'm'-suffixed literal. Exponent forms go through a
// double-precision intermediate.
func (s *Scanner) decimalValue(lit string, hasExponent bool, start source.Position) token.Value {
	d := new(apd.Decimal)
	if hasExponent {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			s.report(diag.RealConstantTooLarge, s.at(start), "decimal")
			return token.DecimalValue(d)
		}
		if _, err := d.SetFloat64(f); err != nil {
			s.report(diag.RealConstantTooLarge, s.at(start), "decimal")
			return token.DecimalValue(new(apd.Decimal))
		}
	} else {
		parsed, _, err := apd.NewFromString(lit)
		if err != nil {
			s.report(diag.InvalidNumber, s.at(start))
			return token.DecimalValue(d)
		}
		d = parsed
	}

	abs := new(apd.Decimal)
	if _, err := decimalContext.Abs(abs, d); err == nil && abs.Cmp(decimalMax) > 0 {
		s.report(diag.RealConstantTooLarge, s.at(start), "decimal")
	}
	return token.DecimalValue(d)
}
