// Package scanner turns source characters into tokens. The preprocessor is
// embedded: conditional compilation, regions, pragmas, and line remapping
// are evaluated here, between tokens.
package scanner

import (
	"unicode"

	"cesium/internal/diag"
	"cesium/internal/options"
	"cesium/internal/source"
	"cesium/internal/token"
)

// Host is what the scanner needs from the compiler shell: a gated
// diagnostic sink and the option scope stack it pushes per buffer and
// mutates through pragmas.
type Host interface {
	diag.Reporter
	Options() *options.Scope
	PushOptions()
	PopOptions()
}

type ppBranch uint8

const (
	ppTrue ppBranch = iota
	ppFalse
	ppElse
)

// Scanner produces the token stream for a sequence of source buffers.
type Scanner struct {
	reader *source.Reader
	host   Host

	ch       rune // current character, mirrors reader.Current
	started  bool
	needLoad bool
	done     bool // EOD produced; the stream stays at EOD

	// pushed-back tokens re-emerge in the order they were pushed
	pushback []token.Token

	// per-buffer session state, reset on every source load
	ppStack        []ppBranch
	regionDepth    int
	firstOnLine    bool
	sawNonPP       bool
	lineOverride   int
	sourceOverride string
}

// New builds a scanner over reader reporting through host. The scanner
// owns the reader's source-loaded hook.
func New(reader *source.Reader, host Host) *Scanner {
	s := &Scanner{reader: reader, host: host}
	reader.OnSourceLoaded = func(string) {
		host.PushOptions()
		s.resetSession()
	}
	return s
}

func (s *Scanner) resetSession() {
	s.ppStack = s.ppStack[:0]
	s.regionDepth = 0
	s.firstOnLine = true
	s.sawNonPP = false
	s.lineOverride = token.LineDefault
	s.sourceOverride = ""
}

// NextToken returns the next token. Pushed-back tokens are drained first.
// The second result is false once the EOD token has been produced.
func (s *Scanner) NextToken() (token.Token, bool) {
	if len(s.pushback) > 0 {
		tok := s.pushback[0]
		s.pushback = s.pushback[1:]
		return tok, tok.Kind != token.EOD
	}
	tok := s.scan()
	return tok, tok.Kind != token.EOD
}

// PushBack queues tok for re-emission. Any number of tokens may be queued;
// they come back out in the order they were pushed.
func (s *Scanner) PushBack(tok token.Token) {
	s.pushback = append(s.pushback, tok)
}

func (s *Scanner) scan() token.Token {
	if s.done {
		pos := s.reader.Pos()
		return token.Token{Kind: token.EOD, Source: s.reader.Name(), Start: pos, End: pos}
	}
	if !s.started || s.needLoad {
		s.needLoad = false
		if !s.reader.NextSource() {
			s.done = true
			pos := s.reader.Pos()
			return token.Token{Kind: token.EOD, Source: s.reader.Name(), Start: pos, End: pos}
		}
		s.started = true
		s.advance()
	}

	for {
		s.skipWhitespace()

		if s.ch == source.EndOfSource {
			return s.endOfBuffer()
		}

		if s.ch == '#' {
			if s.firstOnLine {
				s.directive()
				continue
			}
			s.report(diag.PPNotFirstToken, s.here())
			s.advance()
			continue
		}

		start := s.reader.Pos()
		var tok token.Token
		var ok bool

		switch {
		case s.ch == '@' || s.ch == '\\' || isIdentStart(s.ch):
			tok, ok = s.scanIdentOrKeyword(start)
		case isDigit(s.ch):
			tok, ok = s.scanNumber(start, false)
		case s.ch == '.':
			if isDigit(s.peek()) {
				tok, ok = s.scanNumber(start, true)
			} else {
				s.advance()
				tok, ok = s.makeToken(token.Period, start, token.Value{}), true
			}
		case s.ch == '"':
			tok, ok = s.scanString(start)
		case s.ch == '\'':
			tok, ok = s.scanChar(start)
		case s.ch == '/':
			tok, ok = s.scanSlash(start)
		default:
			tok, ok = s.scanOperator(start)
		}

		if !ok {
			continue
		}
		s.firstOnLine = false
		if tok.Kind != token.XmlCommentLine {
			// comments are not tokens as far as #define placement goes
			s.sawNonPP = true
		}
		return tok
	}
}

// endOfBuffer closes out the current buffer: reports dangling #if/#region
// nesting, pops the buffer's option scope, and emits EOF. The next scan
// call moves to the following buffer, or to EOD when none remain.
func (s *Scanner) endOfBuffer() token.Token {
	pos := s.reader.Pos()
	if len(s.ppStack) > 0 {
		s.report(diag.EndIfExpected, s.here())
		s.ppStack = s.ppStack[:0]
	}
	if s.regionDepth > 0 {
		s.report(diag.EndRegionExpected, s.here())
		s.regionDepth = 0
	}
	s.host.PopOptions()
	s.needLoad = true
	return token.Token{
		Kind:       token.EOF,
		Source:     s.reader.Name(),
		Start:      pos,
		End:        pos,
		Line:       s.lineOverride,
		LineSource: s.sourceOverride,
	}
}

func (s *Scanner) advance() rune {
	s.ch = s.reader.Advance()
	return s.ch
}

// peek looks one character ahead without moving, through the reader's
// save/restore slot.
func (s *Scanner) peek() rune {
	s.reader.SaveState()
	c := s.reader.Advance()
	s.reader.RestoreState()
	return c
}

func (s *Scanner) skipWhitespace() {
	for {
		switch {
		case s.ch == '\n':
			s.firstOnLine = true
			s.advance()
		case s.ch == ' ' || s.ch == '\t' || s.ch == '\v' || s.ch == '\f':
			s.advance()
		case s.ch != source.EndOfSource && unicode.IsSpace(s.ch):
			s.advance()
		default:
			return
		}
	}
}

// skipLineSpace consumes horizontal whitespace only.
func (s *Scanner) skipLineSpace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\v' || s.ch == '\f' {
		s.advance()
	}
}

func (s *Scanner) makeToken(kind token.Kind, start source.Position, value token.Value) token.Token {
	return token.Token{
		Kind:       kind,
		Source:     s.reader.Name(),
		Start:      start,
		End:        s.reader.LastPos(),
		Value:      value,
		Line:       s.lineOverride,
		LineSource: s.sourceOverride,
	}
}

// here is a zero-width location at the current character.
func (s *Scanner) here() source.FileSpan {
	return s.at(s.reader.Pos())
}

// at is a zero-width location at pos in the current buffer.
func (s *Scanner) at(pos source.Position) source.FileSpan {
	return source.FileSpan{
		Name: s.reader.Name(),
		Span: source.Span{Start: pos, End: pos},
	}
}

func (s *Scanner) report(code diag.Code, loc source.FileSpan, args ...any) {
	s.host.Report(code, loc, args...)
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isHexDigit(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c rune) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10
	default:
		return uint64(c-'A') + 10
	}
}
