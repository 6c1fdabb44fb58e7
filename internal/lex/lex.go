// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lex provides a small state function based lexer.
//
package lex

import (
	"io"
	"strconv"
)

// Type is the type of a lexical item.
//
type Type int

// EOF is the item type emitted at end of input. Also returned by Next
// when the input is exhausted.
//
const EOF Type = -1

// Pos is a rune position in the input, starting at 0.
//
type Pos int

// Item is a lexical item.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

func (i Item) String() string {
	switch v := i.Value.(type) {
	case string:
		return strconv.Quote(v)
	case rune:
		return strconv.QuoteRune(v)
	case nil:
		return "<nil>"
	default:
		return "item"
	}
}

// StateFn is a lexer state function. A nil return value resets the lexer to
// its initial state.
//
type StateFn func(l *Lexer) StateFn

// Interface is what parsers see of a lexer.
//
type Interface interface {
	Lex() Item
}

// Lexer holds the state of the lexer.
//
type Lexer struct {
	r     io.RuneReader
	init  StateFn
	state StateFn
	items []Item

	cur    rune
	pos    Pos // position of cur
	start  Pos // position of the first rune of the current item
	backed bool
	prev   rune
	eof    bool
}

// New returns a new lexer reading from r and starting in state init.
//
func New(r io.RuneReader, init StateFn) *Lexer {
	return &Lexer{r: r, init: init, pos: -1}
}

// Lex returns the next item.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		if l.state == nil {
			l.state = l.init
			l.start = l.pos + 1
		}
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// Next returns the next rune in the input, or EOF.
//
func (l *Lexer) Next() rune {
	if l.backed {
		l.backed = false
		l.cur, l.prev = l.prev, l.cur
		l.pos++
		return l.cur
	}
	l.prev = l.cur
	l.pos++
	if l.eof {
		l.cur = rune(EOF)
		return l.cur
	}
	r, _, err := l.r.ReadRune()
	if err != nil {
		l.eof = true
		r = rune(EOF)
	}
	l.cur = r
	return r
}

// Backup undoes the last call to Next. It can only be called once per call
// to Next.
//
func (l *Lexer) Backup() {
	if l.backed {
		panic("lex: Backup called twice")
	}
	l.backed = true
	l.cur, l.prev = l.prev, l.cur
	l.pos--
}

// Current returns the last rune returned by Next.
//
func (l *Lexer) Current() rune {
	return l.cur
}

// Pos returns the position of the current rune.
//
func (l *Lexer) Pos() Pos {
	return l.pos
}

// AcceptWhile reads runes while f returns true. The first rejected rune is
// backed up.
//
func (l *Lexer) AcceptWhile(f func(r rune) bool) {
	r := l.Next()
	for r != rune(EOF) && f(r) {
		r = l.Next()
	}
	l.Backup()
}

// Emit emits an item of type t at the start position of the current token.
//
func (l *Lexer) Emit(t Type, value interface{}) {
	l.items = append(l.items, Item{Type: t, Pos: l.start, Value: value})
}

// Ignore discards the runes read so far for the current token.
//
func (l *Lexer) Ignore() {
	l.start = l.pos + 1
}
