// Package message provides the character-sequence model the Enigma
// machine operates on: a mix of encipherable letters (with preserved
// case) and pass-through characters carried verbatim.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package message

import (
	"strings"

	"github.com/mdelacour/enigforce/internal/letter"
)

// Char is a single element of a Message: either an encipherable Letter
// (with its original case) or a pass-through rune that the machine
// never touches.
type Char struct {
	IsLetter bool
	L        letter.Letter
	Upper    bool
	Other    rune
}

// NewLetter builds a letter Char.
func NewLetter(l letter.Letter, upper bool) Char {
	return Char{IsLetter: true, L: l, Upper: upper}
}

// NewPassthrough builds a pass-through Char.
func NewPassthrough(ch rune) Char {
	return Char{IsLetter: false, Other: ch}
}

// FromChar tokenises a single rune into a Char.
func FromChar(ch rune) Char {
	if l, upper, ok := letter.FromChar(ch); ok {
		return NewLetter(l, upper)
	}
	return NewPassthrough(ch)
}

// Rune renders a Char back to its original character.
func (c Char) Rune() rune {
	if c.IsLetter {
		return c.L.ToChar(c.Upper)
	}
	return c.Other
}

// Message is an ordered sequence of Chars.
type Message []Char

// FromString tokenises a string into a Message, losslessly.
func FromString(s string) Message {
	runes := []rune(s)
	m := make(Message, len(runes))
	for i, r := range runes {
		m[i] = FromChar(r)
	}
	return m
}

// String renders a Message back to its original string.
func (m Message) String() string {
	var b strings.Builder
	b.Grow(len(m))
	for _, c := range m {
		b.WriteRune(c.Rune())
	}
	return b.String()
}

// Len returns the number of elements in the message.
func (m Message) Len() int {
	return len(m)
}

// Slice returns the sub-message spanning [i, j).
func (m Message) Slice(i, j int) Message {
	return m[i:j]
}

// Equal reports whether two messages contain identical elements.
func Equal(a, b Message) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
