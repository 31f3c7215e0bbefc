// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers of the lawsite API.
// Handlers are grouped by concern (public, auth, admin) and receive their
// dependencies through the handler struct. Every response is JSON.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"lawsite/internal/cache"
	"lawsite/internal/models"
	"lawsite/internal/session"
	"lawsite/internal/slug"
	"lawsite/internal/store"
)

// maxBodyBytes caps request bodies; the largest payload is a full settings
// document.
const maxBodyBytes = 1 << 20

// PageStore reads and replaces page documents.
type PageStore interface {
	Find(ctx context.Context, key models.PageKey) (*models.Page, error)
	List(ctx context.Context) ([]models.Page, error)
	Save(ctx context.Context, content models.PageContent, actor *uuid.UUID) (*models.Page, error)
}

// PageResponseCache holds encoded public page responses.
type PageResponseCache interface {
	Get(ctx context.Context, key models.PageKey) ([]byte, bool)
	Set(ctx context.Context, key models.PageKey, body []byte)
	Invalidate(ctx context.Context, key models.PageKey)
}

// SettingsWriter persists the global settings record.
type SettingsWriter interface {
	UpdateSettings(ctx context.Context, upd models.SiteSettingsUpdate) error
}

// Publisher announces invalidations to other processes.
type Publisher interface {
	Publish(ctx context.Context, m cache.Invalidation) error
}

// AuditLog records invalidations and lists the most recent ones.
type AuditLog interface {
	Log(ctx context.Context, entityType, entityKey, action string, actor *uuid.UUID)
	RecentEntries(ctx context.Context, limit int) ([]store.CacheLogEntry, error)
}

// UserStore is the subset of the user store the auth handlers need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	SetTOTPSecret(ctx context.Context, userID uuid.UUID, secret string) error
	EnableTOTP(ctx context.Context, userID uuid.UUID) error
	CheckPassword(user *models.User, password string) bool
}

// SessionStore creates, updates and destroys admin sessions.
type SessionStore interface {
	Create(ctx context.Context, w http.ResponseWriter, data *session.Data) (string, error)
	Update(ctx context.Context, r *http.Request, data *session.Data) error
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads a single JSON value from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// pageKey reads the {key} route parameter and rejects keys that are not
// slugs.
func pageKey(w http.ResponseWriter, r *http.Request) (models.PageKey, bool) {
	key := chi.URLParam(r, "key")
	if !slug.Valid(key) {
		writeError(w, http.StatusBadRequest, "invalid page key")
		return "", false
	}
	return models.PageKey(key), true
}
