// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor exposes page content documents as editable forms for the
// admin panel. A Surface renders one version of a document; every edit
// builds a full replacement document and hands it to the ChangeFunc. The
// caller renders again with the replacement to keep editing.
package editor

import (
	"errors"

	"lawsite/internal/models"
)

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownList     = errors.New("unknown list")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotSupported    = errors.New("operation not supported by this editor")
)

// ChangeFunc receives the replacement document after each successful edit.
type ChangeFunc func(models.PageContent)

// FieldKind tells the UI which input widget to use.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindURL      FieldKind = "url"
	KindEmail    FieldKind = "email"
	KindDocument FieldKind = "document"
)

// Field is one input with its current value.
type Field struct {
	Name  string    `json:"name"`
	Label string    `json:"label"`
	Kind  FieldKind `json:"kind"`
	Value string    `json:"value"`
}

// List is a repeatable group of fields, such as testimonials or team members.
type List struct {
	Name   string    `json:"name"`
	Label  string    `json:"label"`
	Fields []Field   `json:"fields"` // item schema, values empty
	Items  [][]Field `json:"items"`
}

// Form is the full editable view of a document.
type Form struct {
	Key    models.PageKey `json:"key"`
	Editor string         `json:"editor"`
	Fields []Field        `json:"fields"`
	Lists  []List         `json:"lists"`
}

// Surface edits one page document.
type Surface interface {
	Key() models.PageKey
	Form() Form
	Set(field, value string) error
	Append(list string) error
	Remove(list string, index int) error
	SetItem(list string, index int, field, value string) error
}

// Render selects the editor for key. Home, about, contact and practice
// areas documents get a dedicated form; anything else, including content
// whose type does not belong to key, is edited as a raw JSON document.
func Render(key models.PageKey, content models.PageContent, onChange ChangeFunc) Surface {
	if content == nil {
		content = models.DefaultPageContent(key)
	}
	if onChange == nil {
		onChange = func(models.PageContent) {}
	}

	switch c := content.(type) {
	case models.HomeContent:
		if key == models.PageHome {
			return newDocEditor(key, "home", c, onChange, homeFields, homeLists)
		}
	case models.AboutContent:
		if key == models.PageAbout {
			return newDocEditor(key, "about", c, onChange, aboutFields, aboutLists)
		}
	case models.ContactContent:
		if key == models.PageContact {
			return newDocEditor(key, "contact", c, onChange, contactFields, contactLists)
		}
	case models.PracticeAreasContent:
		if key == models.PagePracticeAreas {
			return newDocEditor(key, "practice-areas", c, onChange, practiceAreasFields, practiceAreasLists)
		}
	}
	return newRawEditor(key, content, onChange)
}
