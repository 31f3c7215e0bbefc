// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"fmt"
	"log/slog"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"lawsite/internal/models"
)

// DocumentField is the only field of the raw editor.
const DocumentField = "document"

// rawEditor edits any document as JSON text.
type rawEditor struct {
	key      models.PageKey
	data     []byte
	onChange ChangeFunc
}

func newRawEditor(key models.PageKey, content models.PageContent, onChange ChangeFunc) *rawEditor {
	data, err := models.EncodePageContent(content)
	if err != nil {
		slog.Warn("raw editor: cannot encode content", "key", key, "error", err)
		data = []byte("{}")
	}
	return &rawEditor{key: key, data: data, onChange: onChange}
}

func (e *rawEditor) Key() models.PageKey { return e.key }

func (e *rawEditor) Form() Form {
	return Form{
		Key:    e.key,
		Editor: "raw",
		Fields: []Field{{
			Name:  DocumentField,
			Label: "Content (JSON)",
			Kind:  KindDocument,
			Value: string(pretty.Pretty(e.data)),
		}},
	}
}

// Set replaces the document with text. Text that is not valid JSON is
// ignored: no error and no change.
func (e *rawEditor) Set(field, value string) error {
	if field != DocumentField {
		return fmt.Errorf("raw: %w: %q", ErrUnknownField, field)
	}
	if !gjson.Valid(value) {
		return nil
	}
	e.onChange(models.RawContent{Key: e.key, Data: pretty.Ugly([]byte(value))})
	return nil
}

func (e *rawEditor) Append(string) error                       { return ErrNotSupported }
func (e *rawEditor) Remove(string, int) error                  { return ErrNotSupported }
func (e *rawEditor) SetItem(string, int, string, string) error { return ErrNotSupported }
