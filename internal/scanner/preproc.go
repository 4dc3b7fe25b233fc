package scanner

import (
	"strings"

	"cesium/internal/diag"
	"cesium/internal/source"
	"cesium/internal/token"
)

// directive processes one '#' line. On entry the current character is the
// '#' and it is the first non-whitespace character on its line.
func (s *Scanner) directive() {
	start := s.reader.Pos()
	s.advance() // '#'
	s.skipLineSpace()
	word := s.ppWord()

	switch word {
	case "define":
		s.ppDefine(true, start)
	case "undef":
		s.ppDefine(false, start)
	case "if":
		s.ppIf(start)
	case "elif":
		s.ppElif(start)
	case "else":
		s.ppElse(start)
	case "endif":
		s.ppEndif(start)
	case "region":
		s.regionDepth++
		s.skipToEOL() // region names are free text
	case "endregion":
		if s.regionDepth == 0 {
			s.report(diag.UnexpectedPPDirective, s.at(start))
		} else {
			s.regionDepth--
		}
		s.skipToEOL()
	case "pragma":
		s.ppPragma(start)
	case "line":
		s.ppLine(start)
	case "warning":
		text := strings.TrimSpace(s.restOfLine())
		s.report(diag.UserWarning, s.at(start), text)
	case "error":
		text := strings.TrimSpace(s.restOfLine())
		s.report(diag.UserError, s.at(start), text)
	default:
		s.report(diag.PPDirectiveExpected, s.at(start))
		s.skipToEOL()
	}
}

// ppWord reads a run of ASCII letters.
func (s *Scanner) ppWord() string {
	var w []rune
	for (s.ch >= 'a' && s.ch <= 'z') || (s.ch >= 'A' && s.ch <= 'Z') {
		w = append(w, s.ch)
		s.advance()
	}
	return string(w)
}

// skipToEOL consumes up to but not including the newline.
func (s *Scanner) skipToEOL() {
	for s.ch != '\n' && s.ch != source.EndOfSource {
		s.advance()
	}
}

// restOfLine returns the text up to the newline, consuming it.
func (s *Scanner) restOfLine() string {
	var text []rune
	for s.ch != '\n' && s.ch != source.EndOfSource {
		text = append(text, s.ch)
		s.advance()
	}
	return string(text)
}

// finishPPLine checks that nothing but whitespace or a line comment
// remains on the directive line.
func (s *Scanner) finishPPLine() {
	s.skipLineSpace()
	if s.ch == '\n' || s.ch == source.EndOfSource {
		return
	}
	if s.ch == '/' && s.peek() == '/' {
		s.skipToEOL()
		return
	}
	s.report(diag.PPEndExpected, s.here())
	s.skipToEOL()
}

func (s *Scanner) ppDefine(define bool, start source.Position) {
	if s.sawNonPP {
		s.report(diag.PPTooLate, s.at(start))
		s.skipToEOL()
		return
	}
	s.skipLineSpace()
	if !isIdentStart(s.ch) {
		s.report(diag.ExpectedIdentifier, s.here())
		s.skipToEOL()
		return
	}
	var name []rune
	for isIdentPart(s.ch) {
		name = append(name, s.ch)
		s.advance()
	}
	if define {
		s.host.Options().Define(string(name))
	} else {
		s.host.Options().Undefine(string(name))
	}
	s.finishPPLine()
}

func (s *Scanner) ppIf(start source.Position) {
	expr := s.restOfLine()
	val, ok := evalPP(expr, s.host.Options())
	if !ok {
		s.report(diag.InvalidPPExpression, s.at(start))
		val = false
	}
	if val {
		s.ppStack = append(s.ppStack, ppTrue)
		return
	}
	s.ppStack = append(s.ppStack, ppFalse)
	s.skipBlock(false)
}

func (s *Scanner) ppElif(start source.Position) {
	if len(s.ppStack) == 0 || s.ppStack[len(s.ppStack)-1] == ppElse {
		s.report(diag.UnexpectedPPDirective, s.at(start))
		s.skipToEOL()
		return
	}
	if s.ppStack[len(s.ppStack)-1] == ppTrue {
		// an earlier branch already ran; this one is inactive
		s.skipBlock(false)
		return
	}
	expr := s.restOfLine()
	val, ok := evalPP(expr, s.host.Options())
	if !ok {
		s.report(diag.InvalidPPExpression, s.at(start))
		val = false
	}
	if val {
		s.ppStack[len(s.ppStack)-1] = ppTrue
		return
	}
	s.skipBlock(false)
}

func (s *Scanner) ppElse(start source.Position) {
	if len(s.ppStack) == 0 || s.ppStack[len(s.ppStack)-1] == ppElse {
		s.report(diag.UnexpectedPPDirective, s.at(start))
		s.skipToEOL()
		return
	}
	wasTrue := s.ppStack[len(s.ppStack)-1] == ppTrue
	s.ppStack[len(s.ppStack)-1] = ppElse
	s.finishPPLine()
	if wasTrue {
		s.skipBlock(true)
	}
}

func (s *Scanner) ppEndif(start source.Position) {
	if len(s.ppStack) == 0 {
		s.report(diag.UnexpectedPPDirective, s.at(start))
		s.skipToEOL()
		return
	}
	s.ppStack = s.ppStack[:len(s.ppStack)-1]
	s.finishPPLine()
}

// skipBlock scans line by line past an inactive conditional block,
// tracking nested #if depth. It stops at the matching depth-0 #endif, or
// at a depth-0 #else/#elif when skippingElse is false, restoring the
// reader to the '#' so the outer scanner processes the directive itself.
// End of buffer mid-skip leaves the nesting for endOfBuffer to report.
func (s *Scanner) skipBlock(skippingElse bool) {
	depth := 0
	for {
		for s.ch != '\n' && s.ch != source.EndOfSource {
			s.advance()
		}
		if s.ch == source.EndOfSource {
			return
		}
		s.advance() // newline
		s.skipLineSpace()
		if s.ch != '#' {
			continue
		}

		hashPos := s.reader.Pos()
		s.reader.SaveState()
		s.advance() // '#'
		s.skipLineSpace()
		word := s.ppWord()

		switch word {
		case "if":
			depth++
			s.reader.DiscardState()
		case "endif":
			if depth == 0 {
				s.resumeAtDirective()
				return
			}
			depth--
			s.reader.DiscardState()
		case "else", "elif":
			if depth == 0 {
				if skippingElse {
					s.report(diag.UnexpectedPPDirective, s.at(hashPos))
					s.reader.DiscardState()
				} else {
					s.resumeAtDirective()
					return
				}
			} else {
				s.reader.DiscardState()
			}
		default:
			s.reader.DiscardState()
		}
	}
}

// resumeAtDirective rolls the reader back to the saved '#' so the main
// loop re-reads the directive with the preprocessor state intact.
func (s *Scanner) resumeAtDirective() {
	s.reader.RestoreState()
	s.ch = s.reader.Current()
	s.firstOnLine = true
}

func (s *Scanner) ppPragma(start source.Position) {
	s.skipLineSpace()
	word := s.ppWord()
	if word != "warning" {
		s.report(diag.UnrecognizedPragma, s.at(start))
		s.skipToEOL()
		return
	}
	s.skipLineSpace()
	var disable bool
	switch s.ppWord() {
	case "disable":
		disable = true
	case "restore":
		disable = false
	default:
		s.report(diag.InvalidWarningPragma, s.at(start))
		s.skipToEOL()
		return
	}

	scope := s.host.Options()
	s.skipLineSpace()
	if s.ch == '\n' || s.ch == source.EndOfSource || (s.ch == '/' && s.peek() == '/') {
		if disable {
			scope.DisableAllWarnings()
		} else {
			scope.RestoreAllWarnings()
		}
		s.finishPPLine()
		return
	}

	for {
		s.skipLineSpace()
		if !isDigit(s.ch) {
			s.report(diag.InvalidWarningCode, s.here(), s.ppWord())
			s.skipToEOL()
			return
		}
		numPos := s.reader.Pos()
		n := 0
		for isDigit(s.ch) {
			n = n*10 + int(s.ch-'0')
			s.advance()
		}
		if !diag.IsWarning(n) {
			s.report(diag.InvalidWarningCode, s.at(numPos), n)
		} else if disable {
			scope.DisableWarning(n)
		} else {
			scope.RestoreWarning(n)
		}
		s.skipLineSpace()
		if s.ch != ',' {
			break
		}
		s.advance()
	}
	s.finishPPLine()
}

func (s *Scanner) ppLine(start source.Position) {
	s.skipLineSpace()
	if isDigit(s.ch) {
		n := 0
		for isDigit(s.ch) {
			n = n*10 + int(s.ch-'0')
			s.advance()
		}
		s.lineOverride = n
		s.skipLineSpace()
		if s.ch == '"' {
			s.advance()
			var file []rune
			for s.ch != '"' && s.ch != '\n' && s.ch != source.EndOfSource {
				file = append(file, s.ch)
				s.advance()
			}
			if s.ch != '"' {
				s.report(diag.InvalidLineDirective, s.at(start))
				s.skipToEOL()
				return
			}
			s.advance()
			s.sourceOverride = string(file)
		}
		s.finishPPLine()
		return
	}

	switch s.ppWord() {
	case "hidden":
		s.lineOverride = token.LineHidden
		s.finishPPLine()
	case "default":
		s.lineOverride = token.LineDefault
		s.sourceOverride = ""
		s.finishPPLine()
	default:
		s.report(diag.InvalidLineDirective, s.at(start))
		s.skipToEOL()
	}
}
