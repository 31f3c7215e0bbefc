// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"lawsite/internal/editor"
	"lawsite/internal/models"
)

// Edit operations accepted by EditPage.
const (
	opSet     = "set"
	opAppend  = "append"
	opRemove  = "remove"
	opSetItem = "set_item"
)

// editRequest is one editor operation. Field and Value are used by set and
// set_item; List and Index by the list operations.
type editRequest struct {
	Op    string `json:"op"`
	Field string `json:"field"`
	List  string `json:"list"`
	Index int    `json:"index"`
	Value string `json:"value"`
}

// editResponse carries the form for the document after the edit.
type editResponse struct {
	Changed bool        `json:"changed"`
	Form    editor.Form `json:"form"`
}

// pageSummary is one row of the page list.
type pageSummary struct {
	Key    models.PageKey `json:"key"`
	Stored bool           `json:"stored"`
}

// ListPages returns the known pages plus any other stored page documents.
func (a *Admin) ListPages(w http.ResponseWriter, r *http.Request) {
	stored, err := a.pages.List(r.Context())
	if err != nil {
		slog.Error("list pages failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	have := make(map[models.PageKey]bool, len(stored))
	for _, p := range stored {
		have[p.Key] = true
	}

	out := make([]pageSummary, 0, len(models.KnownPageKeys)+len(stored))
	for _, k := range models.KnownPageKeys {
		out = append(out, pageSummary{Key: k, Stored: have[k]})
		delete(have, k)
	}
	for _, p := range stored {
		if have[p.Key] {
			out = append(out, pageSummary{Key: p.Key, Stored: true})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// GetPage returns the editor form for a page. Pages without a stored
// document start from the empty document for their key.
func (a *Admin) GetPage(w http.ResponseWriter, r *http.Request) {
	key, ok := pageKey(w, r)
	if !ok {
		return
	}

	content, ok := a.loadContent(w, r, key)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, editor.Render(key, content, nil).Form())
}

// EditPage applies one editor operation and stores the replacement
// document. A raw document edit with malformed JSON changes nothing.
func (a *Admin) EditPage(w http.ResponseWriter, r *http.Request) {
	key, ok := pageKey(w, r)
	if !ok {
		return
	}

	var req editRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	content, ok := a.loadContent(w, r, key)
	if !ok {
		return
	}

	var next models.PageContent
	surface := editor.Render(key, content, func(c models.PageContent) { next = c })

	var err error
	switch req.Op {
	case opSet:
		err = surface.Set(req.Field, req.Value)
	case opAppend:
		err = surface.Append(req.List)
	case opRemove:
		err = surface.Remove(req.List, req.Index)
	case opSetItem:
		err = surface.SetItem(req.List, req.Index, req.Field, req.Value)
	default:
		writeError(w, http.StatusBadRequest, "unknown op "+req.Op)
		return
	}
	if err != nil {
		writeError(w, editStatus(err), err.Error())
		return
	}

	if next == nil {
		writeJSON(w, http.StatusOK, editResponse{Form: surface.Form()})
		return
	}

	actor := actorFrom(r)
	if _, err := a.pages.Save(r.Context(), next, actor); err != nil {
		slog.Error("page save failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	a.invalidatePage(r.Context(), key, actor, "update")

	writeJSON(w, http.StatusOK, editResponse{
		Changed: true,
		Form:    editor.Render(key, next, nil).Form(),
	})
}

func (a *Admin) loadContent(w http.ResponseWriter, r *http.Request, key models.PageKey) (models.PageContent, bool) {
	page, err := a.pages.Find(r.Context(), key)
	if err != nil {
		slog.Error("page lookup failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	if page == nil {
		return models.DefaultPageContent(key), true
	}
	return page.Content, true
}

func editStatus(err error) int {
	switch {
	case errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, editor.ErrUnknownList),
		errors.Is(err, editor.ErrIndexOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, editor.ErrNotSupported):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
