package scanner

import (
	"unicode"

	"cesium/internal/diag"
	"cesium/internal/source"
	"cesium/internal/token"
)

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.Is(unicode.Nl, c)
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) ||
		unicode.IsDigit(c) ||
		unicode.Is(unicode.Mn, c) ||
		unicode.Is(unicode.Mc, c) ||
		unicode.Is(unicode.Pc, c) ||
		unicode.Is(unicode.Cf, c)
}

// scanIdentOrKeyword reads an identifier, verbatim construct, or keyword.
// A leading '@' marks the next identifier, string, or character literal as
// verbatim; a non-verbatim, escape-free identifier is checked against the
// keyword table, with true/false/null folding into literals.
func (s *Scanner) scanIdentOrKeyword(start source.Position) (token.Token, bool) {
	verbatim := false
	if s.ch == '@' {
		verbatim = true
		s.advance()
		switch {
		case s.ch == '"':
			return s.scanVerbatimString(start)
		case s.ch == '\'':
			return s.scanVerbatimChar(start)
		case s.ch == '\\' || isIdentStart(s.ch):
			// verbatim identifier, read below
		default:
			s.report(diag.MisplacedVerbatim, s.at(start))
			return token.Token{}, false
		}
	}

	var name []rune
	hadEscape := false
	for {
		if s.ch == '\\' {
			next := s.peek()
			if next != 'u' && next != 'U' {
				if len(name) == 0 {
					s.report(diag.UnexpectedCharacter, s.here(), diag.CharLiteral('\\'))
					s.advance()
					return token.Token{}, false
				}
				break
			}
			r, ok := s.identEscape()
			if !ok {
				break
			}
			hadEscape = true
			name = append(name, r)
			continue
		}
		if len(name) == 0 {
			if !isIdentStart(s.ch) {
				break
			}
		} else if !isIdentPart(s.ch) {
			break
		}
		name = append(name, s.ch)
		s.advance()
	}

	if len(name) == 0 {
		// a failed escape with nothing accumulated; the escape already
		// reported, but a bare '@' needs its own diagnostic
		if verbatim {
			s.report(diag.MisplacedVerbatim, s.at(start))
		}
		return token.Token{}, false
	}

	text := string(name)
	if !verbatim && !hadEscape {
		switch text {
		case "true":
			return s.makeToken(token.Literal, start, token.BoolValue(true)), true
		case "false":
			return s.makeToken(token.Literal, start, token.BoolValue(false)), true
		case "null":
			return s.makeToken(token.Literal, start, token.NullValue()), true
		}
		if kw, ok := token.LookupKeyword(text); ok {
			return s.makeToken(kw, start, token.Value{}), true
		}
	}
	return s.makeToken(token.Ident, start, token.StringValue(text)), true
}

// identEscape reads a \u or \U escape inside an identifier: a backslash,
// the marker letter, then one to four hex digits.
func (s *Scanner) identEscape() (rune, bool) {
	s.advance() // backslash
	marker := s.ch
	markerPos := s.reader.Pos()
	s.advance() // 'u' or 'U'

	var val rune
	digits := 0
	for digits < 4 && isHexDigit(s.ch) {
		val = val*16 + rune(hexValue(s.ch))
		digits++
		s.advance()
	}
	if digits == 0 {
		s.report(diag.UnrecognizedEscape, s.at(markerPos), string(marker))
		return 0, false
	}
	return val, true
}
