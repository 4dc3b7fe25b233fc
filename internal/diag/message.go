package diag

import (
	"fmt"

	"cesium/internal/source"
)

// Message is one formatted diagnostic bound to a source location.
type Message struct {
	Severity Severity
	Code     Code
	Source   string
	Pos      source.Position
	Text     string
	Err      error // optional underlying failure (I/O and the like)
}

// String renders the canonical single-line form:
// <source>(<line>,<col>): <severity> CSnnnn: <message>
func (m *Message) String() string {
	if m.Source == "" {
		return fmt.Sprintf("%s %s: %s", m.Severity, m.Code.ID(), m.Text)
	}
	return fmt.Sprintf("%s(%d,%d): %s %s: %s",
		m.Source, m.Pos.Line, m.Pos.Col, m.Severity, m.Code.ID(), m.Text)
}

// Collection accumulates messages in emission order.
type Collection struct {
	items  []*Message
	errors int
}

// NewCollection returns an empty message collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends a message. Nil messages are a programmer error.
func (c *Collection) Add(m *Message) {
	if m == nil {
		panic("diag: nil message added to collection")
	}
	c.items = append(c.items, m)
	if m.Severity == SevError {
		c.errors++
	}
}

// HasErrors reports whether any error-severity message was added.
func (c *Collection) HasErrors() bool {
	return c.errors > 0
}

// Len returns the number of accumulated messages.
func (c *Collection) Len() int {
	return len(c.items)
}

// Items returns the messages in emission order. The slice aliases the
// collection's storage; callers must not modify it.
func (c *Collection) Items() []*Message {
	return c.items
}
