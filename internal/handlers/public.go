// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"lawsite/internal/models"
	"lawsite/internal/settings"
)

// Public serves the settings and page documents the public site renders.
type Public struct {
	settings  *settings.Cache
	pages     PageStore
	pageCache PageResponseCache
	wait      time.Duration
}

// NewPublic creates the public handler group. wait bounds how long a
// settings request blocks on a load before answering with defaults.
func NewPublic(settingsCache *settings.Cache, pages PageStore, pageCache PageResponseCache, wait time.Duration) *Public {
	return &Public{
		settings:  settingsCache,
		pages:     pages,
		pageCache: pageCache,
		wait:      wait,
	}
}

// settingsResponse mirrors the binding state seen by the site layout.
type settingsResponse struct {
	Settings  models.SiteSettings `json:"settings"`
	IsLoading bool                `json:"isLoading"`
	Error     *string             `json:"error"`
}

// Settings answers with the site settings. When the load outlasts the wait
// budget the defaults are returned with isLoading set.
func (p *Public) Settings(w http.ResponseWriter, r *http.Request) {
	b := p.settings.Bind(r.Context())
	defer b.Close()

	timer := time.NewTimer(p.wait)
	defer timer.Stop()

	select {
	case <-b.Done():
	case <-timer.C:
	case <-r.Context().Done():
	}

	st := b.State()
	resp := settingsResponse{Settings: st.Settings, IsLoading: st.IsLoading}
	if st.Err != nil {
		msg := "settings unavailable, showing defaults"
		resp.Error = &msg
		slog.Warn("serving default settings", "error", st.Err)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Page answers with the stored document for a page key. Encoded responses
// are kept in the page cache until the page is edited.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	key, ok := pageKey(w, r)
	if !ok {
		return
	}

	if body, ok := p.pageCache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.Write(body)
		return
	}

	page, err := p.pages.Find(r.Context(), key)
	if err != nil {
		slog.Error("page lookup failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if page == nil {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}

	body, err := json.Marshal(page)
	if err != nil {
		slog.Error("page encode failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	p.pageCache.Set(r.Context(), key, body)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.Write(body)
}
