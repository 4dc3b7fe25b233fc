// Package ast defines the tree produced by the parser. Nodes carry their
// source span and chain into singly-linked sibling lists; a node belongs
// to at most one chain for its whole life.
package ast

import (
	"cesium/internal/source"
)

// Node is the common surface of every tree node.
type Node interface {
	SourceName() string
	Start() source.Position
	End() source.Position
	Span() source.FileSpan
	NextSibling() Node

	link(Node)
	markLinked()
	isLinked() bool
}

type base struct {
	src        string
	start, end source.Position
	next       Node
	inList     bool
}

func makeBase(loc source.FileSpan) base {
	return base{src: loc.Name, start: loc.Span.Start, end: loc.Span.End}
}

func (b *base) SourceName() string     { return b.src }
func (b *base) Start() source.Position { return b.start }
func (b *base) End() source.Position   { return b.end }

func (b *base) Span() source.FileSpan {
	return source.FileSpan{Name: b.src, Span: source.Span{Start: b.start, End: b.end}}
}

// SetSpan widens or replaces the node's recorded location; the parser
// calls it once the closing token of a production is known.
func (b *base) SetSpan(loc source.FileSpan) {
	b.src = loc.Name
	b.start = loc.Span.Start
	b.end = loc.Span.End
}

// SetEnd moves only the end of the span.
func (b *base) SetEnd(pos source.Position) { b.end = pos }

func (b *base) NextSibling() Node { return b.next }

func (b *base) link(n Node) {
	if b.next != nil {
		panic("ast: sibling link already set")
	}
	b.next = n
}

func (b *base) markLinked() {
	if b.inList {
		panic("ast: node appended to two sibling chains")
	}
	b.inList = true
}

func (b *base) isLinked() bool { return b.inList }

// List is a sibling chain with a head and tail pointer; Append is O(1).
type List[T Node] struct {
	head Node
	tail Node
	size int
}

// Append adds node to the end of the chain. A node may belong to only one
// chain; appending it twice is a programmer error.
func (l *List[T]) Append(node T) {
	node.markLinked()
	if l.head == nil {
		l.head = node
	} else {
		l.tail.link(node)
	}
	l.tail = node
	l.size++
}

// Len returns the number of nodes in the chain.
func (l *List[T]) Len() int { return l.size }

// First returns the head of the chain.
func (l *List[T]) First() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	return l.head.(T), true
}

// Slice walks the chain into a fresh slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.NextSibling() {
		out = append(out, n.(T))
	}
	return out
}
