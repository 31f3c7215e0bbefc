// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"fmt"

	"lawsite/internal/models"
)

// docEditor is the form editor for a document type with a known shape.
type docEditor[T models.PageContent] struct {
	key      models.PageKey
	name     string
	doc      T
	onChange ChangeFunc
	fields   []scalar[T]
	lists    []listEditor[T]
}

func newDocEditor[T models.PageContent](key models.PageKey, name string, doc T, onChange ChangeFunc, fields []scalar[T], lists []listEditor[T]) *docEditor[T] {
	return &docEditor[T]{key: key, name: name, doc: doc, onChange: onChange, fields: fields, lists: lists}
}

func (e *docEditor[T]) Key() models.PageKey { return e.key }

func (e *docEditor[T]) Form() Form {
	f := Form{Key: e.key, Editor: e.name}
	for _, s := range e.fields {
		f.Fields = append(f.Fields, s.field(e.doc))
	}
	for _, l := range e.lists {
		f.Lists = append(f.Lists, l.view(e.doc))
	}
	return f
}

func (e *docEditor[T]) Set(field, value string) error {
	s, ok := findScalar(e.fields, field)
	if !ok {
		return fmt.Errorf("%s: %w: %q", e.name, ErrUnknownField, field)
	}
	e.onChange(s.set(e.doc, value))
	return nil
}

func (e *docEditor[T]) Append(list string) error {
	l, err := e.list(list)
	if err != nil {
		return err
	}
	e.onChange(l.appendItem(e.doc))
	return nil
}

func (e *docEditor[T]) Remove(list string, index int) error {
	l, err := e.list(list)
	if err != nil {
		return err
	}
	doc, err := l.removeAt(e.doc, index)
	if err != nil {
		return err
	}
	e.onChange(doc)
	return nil
}

func (e *docEditor[T]) SetItem(list string, index int, field, value string) error {
	l, err := e.list(list)
	if err != nil {
		return err
	}
	doc, err := l.setItem(e.doc, index, field, value)
	if err != nil {
		return err
	}
	e.onChange(doc)
	return nil
}

func (e *docEditor[T]) list(name string) (listEditor[T], error) {
	for _, l := range e.lists {
		if l.listName() == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%s: %w: %q", e.name, ErrUnknownList, name)
}
