// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"lawsite/internal/cache"
	"lawsite/internal/middleware"
	"lawsite/internal/models"
	"lawsite/internal/settings"
	"lawsite/internal/store"
)

// Admin groups the settings and page editing handlers.
type Admin struct {
	settings  *settings.Cache
	writer    SettingsWriter
	pages     PageStore
	pageCache PageResponseCache
	bus       Publisher
	audit     AuditLog
}

// NewAdmin creates a new Admin handler group with the given dependencies.
func NewAdmin(settingsCache *settings.Cache, writer SettingsWriter, pages PageStore, pageCache PageResponseCache, bus Publisher, audit AuditLog) *Admin {
	return &Admin{
		settings:  settingsCache,
		writer:    writer,
		pages:     pages,
		pageCache: pageCache,
		bus:       bus,
		audit:     audit,
	}
}

// validationResponse lists every problem found in submitted settings.
type validationResponse struct {
	Error    string   `json:"error"`
	Problems []string `json:"problems"`
}

// --- Settings ---

// GetSettings returns the current settings together with the cache counters.
func (a *Admin) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := a.settings.Get(r.Context())
	resp := map[string]any{
		"settings": s,
		"stats":    a.settings.Stats(),
		"error":    nil,
	}
	if err != nil {
		slog.Warn("admin settings load failed", "error", err)
		resp["error"] = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateSettings validates and stores a full settings document, then drops
// every cached copy.
func (a *Admin) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var s models.SiteSettings
	if err := decodeJSON(w, r, &s); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.Validate(); err != nil {
		resp := validationResponse{Error: "validation failed"}
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, e := range merr.Errors {
				resp.Problems = append(resp.Problems, e.Error())
			}
		} else {
			resp.Problems = []string{err.Error()}
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	actor := actorFrom(r)
	if err := a.writer.UpdateSettings(r.Context(), s.ToUpdate(actor)); err != nil {
		slog.Error("settings update failed", "error", err)
		writeError(w, http.StatusBadGateway, "settings could not be saved")
		return
	}

	a.invalidateSettings(r.Context(), actor, "update")
	writeJSON(w, http.StatusOK, map[string]any{"settings": s})
}

// InvalidateSettings drops the cached settings so the next read refetches.
func (a *Admin) InvalidateSettings(w http.ResponseWriter, r *http.Request) {
	a.invalidateSettings(r.Context(), actorFrom(r), "invalidate")
	w.WriteHeader(http.StatusNoContent)
}

// CacheLog lists recent invalidations, newest first. ?limit caps the
// result at 200.
func (a *Admin) CacheLog(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, 200)
	}

	entries, err := a.audit.RecentEntries(r.Context(), limit)
	if err != nil {
		slog.Error("cache log query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if entries == nil {
		entries = []store.CacheLogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// --- Cache invalidation helpers ---

// invalidateSettings clears this process, tells the others, and records
// the event.
func (a *Admin) invalidateSettings(ctx context.Context, actor *uuid.UUID, action string) {
	a.settings.Invalidate()
	if err := a.bus.Publish(ctx, cache.Invalidation{Settings: true}); err != nil {
		slog.Warn("settings invalidation not published", "error", err)
	}
	a.audit.Log(ctx, store.EntitySettings, models.SettingsKey, action, actor)
}

// invalidatePage drops the cached response for key everywhere.
func (a *Admin) invalidatePage(ctx context.Context, key models.PageKey, actor *uuid.UUID, action string) {
	a.pageCache.Invalidate(ctx, key)
	if err := a.bus.Publish(ctx, cache.Invalidation{Page: key}); err != nil {
		slog.Warn("page invalidation not published", "key", key, "error", err)
	}
	a.audit.Log(ctx, store.EntityPage, string(key), action, actor)
}

// actorFrom returns the signed-in user's ID for audit columns.
func actorFrom(r *http.Request) *uuid.UUID {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		return nil
	}
	id := sess.UserID
	return &id
}
