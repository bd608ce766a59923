package abi

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrLayoutMismatch is returned by SamePrefix when two layouts disagree.
var ErrLayoutMismatch = errors.New("layout mismatch")

// Field is one named member of an encoded structure.
type Field struct {
	Name   string
	Offset int
	Size   int
}

// Layout is the byte layout of an encoded structure, as recorded by an
// Encoder while it wrote the structure.
type Layout struct {
	Size   int
	Fields []Field
}

// Marshaler is implemented by every structure that encodes through Encoder.
type Marshaler interface {
	MarshalTo(e *Encoder)
}

// LayoutOf encodes m once and returns the offsets of its named fields.
func LayoutOf(m Marshaler) Layout {
	layout := &Layout{}
	e := NewEncoder(64)
	e.layout = layout
	m.MarshalTo(e)
	layout.Size = len(e.Finish())
	return *layout
}

func (l Layout) Field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Prefix returns the fields that precede the named field. If name is not
// present the whole field list is returned.
func (l Layout) Prefix(name string) []Field {
	for i, f := range l.Fields {
		if f.Name == name {
			return l.Fields[:i]
		}
	}
	return l.Fields
}

// SamePrefix checks that a and b place every field before upTo at the same
// offset with the same size.
func SamePrefix(a, b Layout, upTo string) error {
	pa, pb := a.Prefix(upTo), b.Prefix(upTo)
	if len(pa) != len(pb) {
		return errors.Wrapf(ErrLayoutMismatch, "prefix before %s has %d fields vs %d", upTo, len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			return errors.Wrap(ErrLayoutMismatch, fmt.Sprintf("%+v vs %+v", pa[i], pb[i]))
		}
	}
	return nil
}
