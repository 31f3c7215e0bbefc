// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"fmt"
	"slices"
)

// scalar edits one string field of T. set works on a copy and returns it.
type scalar[T any] struct {
	name  string
	label string
	kind  FieldKind
	get   func(T) string
	set   func(T, string) T
}

func (s scalar[T]) field(doc T) Field {
	return Field{Name: s.name, Label: s.label, Kind: s.kind, Value: s.get(doc)}
}

func findScalar[T any](fields []scalar[T], name string) (scalar[T], bool) {
	for _, f := range fields {
		if f.name == name {
			return f, true
		}
	}
	return scalar[T]{}, false
}

// nested lifts the fields of an embedded section N into fields of T,
// prefixing their names ("hero.title").
func nested[T, N any](prefix string, get func(T) N, set func(T, N) T, inner []scalar[N]) []scalar[T] {
	out := make([]scalar[T], 0, len(inner))
	for _, f := range inner {
		out = append(out, scalar[T]{
			name:  prefix + "." + f.name,
			label: f.label,
			kind:  f.kind,
			get:   func(doc T) string { return f.get(get(doc)) },
			set:   func(doc T, v string) T { return set(doc, f.set(get(doc), v)) },
		})
	}
	return out
}

// listEditor is a list section of T with items of some type.
type listEditor[T any] interface {
	listName() string
	view(doc T) List
	appendItem(doc T) T
	removeAt(doc T, i int) (T, error)
	setItem(doc T, i int, field, value string) (T, error)
}

// list implements listEditor for items of type I.
type list[T, I any] struct {
	name   string
	label  string
	get    func(T) []I
	put    func(T, []I) T
	fields []scalar[I]
}

func (l list[T, I]) listName() string { return l.name }

func (l list[T, I]) view(doc T) List {
	v := List{Name: l.name, Label: l.label}
	var zero I
	for _, f := range l.fields {
		fd := f.field(zero)
		fd.Value = ""
		v.Fields = append(v.Fields, fd)
	}
	for _, item := range l.get(doc) {
		row := make([]Field, 0, len(l.fields))
		for _, f := range l.fields {
			row = append(row, f.field(item))
		}
		v.Items = append(v.Items, row)
	}
	return v
}

func (l list[T, I]) appendItem(doc T) T {
	var zero I
	return l.put(doc, appendItem(l.get(doc), zero))
}

func (l list[T, I]) removeAt(doc T, i int) (T, error) {
	items, err := removeAt(l.get(doc), i)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", l.name, err)
	}
	return l.put(doc, items), nil
}

func (l list[T, I]) setItem(doc T, i int, field, value string) (T, error) {
	items := l.get(doc)
	if i < 0 || i >= len(items) {
		return doc, fmt.Errorf("%s[%d]: %w", l.name, i, ErrIndexOutOfRange)
	}
	f, ok := findScalar(l.fields, field)
	if !ok {
		return doc, fmt.Errorf("%s: %w: %q", l.name, ErrUnknownField, field)
	}
	items, err := replaceAt(items, i, f.set(items[i], value))
	if err != nil {
		return doc, err
	}
	return l.put(doc, items), nil
}

// The list helpers never modify their input slice.

func appendItem[I any](s []I, v I) []I {
	out := make([]I, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

func removeAt[I any](s []I, i int) ([]I, error) {
	if i < 0 || i >= len(s) {
		return nil, fmt.Errorf("index %d: %w", i, ErrIndexOutOfRange)
	}
	return slices.Delete(slices.Clone(s), i, i+1), nil
}

func replaceAt[I any](s []I, i int, v I) ([]I, error) {
	if i < 0 || i >= len(s) {
		return nil, fmt.Errorf("index %d: %w", i, ErrIndexOutOfRange)
	}
	out := slices.Clone(s)
	out[i] = v
	return out, nil
}
