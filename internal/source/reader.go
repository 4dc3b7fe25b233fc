package source

import (
	"fmt"
	"io"
	"unicode"
)

// EndOfSource is returned by Advance when the current buffer is exhausted.
// A literal NUL inside the input is rewritten to a space so the sentinel
// stays unambiguous.
const EndOfSource = rune(0)

// readerState is the complete positional state of a Reader within one
// buffer. A second copy of it serves as the single save/restore slot.
type readerState struct {
	ch    rune     // character most recently returned by Advance
	pos   Position // position of ch
	last  Position // position of the character before ch
	idx   int      // index of the next character in data
	atEOL bool     // ch was a newline; the line increment is still pending
}

// Reader presents a sequence of named buffers as one character stream with
// line/column tracking and newline normalization. Exactly one buffer is
// current at a time; NextSource moves to the following one.
type Reader struct {
	units  []Unit
	loader Loader
	next   int

	name   string
	data   []rune
	st     readerState
	saved  *readerState
	loaded bool
	err    error

	// OnSourceLoaded runs after a buffer is loaded and before its first
	// Advance.
	OnSourceLoaded func(name string)
}

// NewReader builds a reader over units. Units without an explicit input are
// opened through loader; a nil loader defaults to FileLoader.
func NewReader(units []Unit, loader Loader) *Reader {
	if loader == nil {
		loader = FileLoader{}
	}
	for _, u := range units {
		if u.Name == "" {
			panic("source: unit name must not be empty")
		}
	}
	return &Reader{units: units, loader: loader}
}

// Name returns the name of the current buffer.
func (r *Reader) Name() string { return r.name }

// Current returns the character most recently produced by Advance.
func (r *Reader) Current() rune { return r.st.ch }

// Pos returns the position of the current character.
func (r *Reader) Pos() Position { return r.st.pos }

// LastPos returns the position of the character before the current one.
func (r *Reader) LastPos() Position { return r.st.last }

// Err reports the first load failure, if any.
func (r *Reader) Err() error { return r.err }

// Advance consumes and returns the next character, or EndOfSource when the
// buffer is exhausted. Lone '\r' and "\r\n" pairs fold into a single '\n'.
// The line increment after a newline is deferred so the newline itself is
// reported on the line it terminates.
func (r *Reader) Advance() rune {
	if !r.loaded {
		panic("source: Advance called before NextSource")
	}
	if r.st.idx >= len(r.data) {
		if r.st.ch != EndOfSource {
			r.st.last = r.st.pos
			if r.st.atEOL {
				r.st.pos.Line++
				r.st.pos.Col = 0
				r.st.atEOL = false
			}
			r.st.pos.Col++
			r.st.ch = EndOfSource
		}
		return EndOfSource
	}

	r.st.last = r.st.pos
	if r.st.atEOL {
		r.st.pos.Line++
		r.st.pos.Col = 0
		r.st.atEOL = false
	}
	r.st.pos.Col++

	c := r.data[r.st.idx]
	r.st.idx++
	if c == '\r' {
		if r.st.idx < len(r.data) && r.data[r.st.idx] == '\n' {
			r.st.idx++
		}
		c = '\n'
	}
	if c == 0 {
		c = ' '
	}
	if c == '\n' {
		r.st.atEOL = true
	}
	r.st.ch = c
	return c
}

// SkipWhitespace consumes whitespace starting at the current character and
// returns the first character that is not whitespace. Newlines stop the
// skip unless skipNewlines is set.
func (r *Reader) SkipWhitespace(skipNewlines bool) rune {
	for {
		c := r.st.ch
		switch {
		case c == '\n':
			if !skipNewlines {
				return c
			}
			r.Advance()
		case c == ' ' || c == '\t' || c == '\v' || c == '\f':
			r.Advance()
		case c != EndOfSource && unicode.IsSpace(c):
			r.Advance()
		default:
			return c
		}
	}
}

// NextSource loads the next buffer, invoking OnSourceLoaded before the first
// Advance. It returns false when all buffers are consumed or a load fails
// (the failure is retained in Err).
func (r *Reader) NextSource() bool {
	for r.next < len(r.units) {
		u := r.units[r.next]
		r.next++
		data, err := r.loadUnit(u)
		if err != nil {
			r.err = err
			return false
		}
		r.name = u.Name
		r.data = data
		r.st = readerState{pos: Position{Line: 1, Col: 0}, last: Position{Line: 1, Col: 0}}
		r.saved = nil
		r.loaded = true
		if r.OnSourceLoaded != nil {
			r.OnSourceLoaded(u.Name)
		}
		return true
	}
	return false
}

// EnsureValidSource reports whether a buffer is current, loading the next
// one if necessary.
func (r *Reader) EnsureValidSource() bool {
	if r.loaded {
		return true
	}
	return r.NextSource()
}

// SaveState snapshots the reader's position within the current buffer.
// The slot holds a single snapshot; overlapping saves are a programmer
// error.
func (r *Reader) SaveState() {
	if r.saved != nil {
		panic("source: overlapping SaveState")
	}
	st := r.st
	r.saved = &st
}

// RestoreState rolls the reader back to the saved snapshot.
func (r *Reader) RestoreState() {
	if r.saved == nil {
		panic("source: RestoreState without SaveState")
	}
	r.st = *r.saved
	r.saved = nil
}

// DiscardState abandons the saved snapshot without rolling back.
func (r *Reader) DiscardState() {
	if r.saved == nil {
		panic("source: DiscardState without SaveState")
	}
	r.saved = nil
}

func (r *Reader) loadUnit(u Unit) ([]rune, error) {
	in := u.Input
	if in == nil {
		rc, err := r.loader.Load(u.Name)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		in = rc
	}
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read source %q: %w", u.Name, err)
	}
	return decode(raw)
}
