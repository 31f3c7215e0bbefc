// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides in-memory stand-ins for the stores, caches and
// the invalidation bus so handlers can be exercised without PostgreSQL or
// Valkey.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lawsite/internal/cache"
	"lawsite/internal/middleware"
	"lawsite/internal/models"
	"lawsite/internal/session"
	"lawsite/internal/store"
)

type fakeSource struct {
	mu   sync.Mutex
	rows []models.SiteSettingsRow
	err  error
	gate chan struct{} // when set, fetches block until closed
}

func (f *fakeSource) FetchSettings(ctx context.Context) ([]models.SiteSettingsRow, error) {
	f.mu.Lock()
	gate, rows, err := f.gate, f.rows, f.err
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return rows, err
}

type fakePages struct {
	mu      sync.Mutex
	pages   map[models.PageKey]*models.Page
	findErr error
	saves   int
}

func newFakePages(docs ...models.PageContent) *fakePages {
	f := &fakePages{pages: map[models.PageKey]*models.Page{}}
	for _, d := range docs {
		f.pages[d.PageKey()] = &models.Page{ID: uuid.New(), Key: d.PageKey(), Content: d, UpdatedAt: time.Now()}
	}
	return f
}

func (f *fakePages) Find(_ context.Context, key models.PageKey) (*models.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.pages[key], nil
}

func (f *fakePages) List(_ context.Context) ([]models.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Page
	for _, p := range f.pages {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePages) Save(_ context.Context, content models.PageContent, actor *uuid.UUID) (*models.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	p := &models.Page{ID: uuid.New(), Key: content.PageKey(), Content: content, UpdatedAt: time.Now(), UpdatedBy: actor}
	f.pages[p.Key] = p
	return p, nil
}

type fakePageCache struct {
	mu          sync.Mutex
	bodies      map[models.PageKey][]byte
	invalidated []models.PageKey
}

func newFakePageCache() *fakePageCache {
	return &fakePageCache{bodies: map[models.PageKey][]byte{}}
}

func (c *fakePageCache) Get(_ context.Context, key models.PageKey) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.bodies[key]
	return b, ok
}

func (c *fakePageCache) Set(_ context.Context, key models.PageKey, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bodies[key] = body
}

func (c *fakePageCache) Invalidate(_ context.Context, key models.PageKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bodies, key)
	c.invalidated = append(c.invalidated, key)
}

type fakeWriter struct {
	last *models.SiteSettingsUpdate
	err  error
}

func (w *fakeWriter) UpdateSettings(_ context.Context, upd models.SiteSettingsUpdate) error {
	if w.err != nil {
		return w.err
	}
	w.last = &upd
	return nil
}

type fakeBus struct {
	published []cache.Invalidation
}

func (b *fakeBus) Publish(_ context.Context, m cache.Invalidation) error {
	b.published = append(b.published, m)
	return nil
}

type fakeAudit struct {
	entries []store.CacheLogEntry
}

func (a *fakeAudit) Log(_ context.Context, entityType, entityKey, action string, actor *uuid.UUID) {
	a.entries = append([]store.CacheLogEntry{{
		ID:            int64(len(a.entries) + 1),
		EntityType:    entityType,
		EntityKey:     entityKey,
		Action:        action,
		ActorID:       actor,
		InvalidatedAt: time.Now(),
	}}, a.entries...)
}

func (a *fakeAudit) RecentEntries(_ context.Context, limit int) ([]store.CacheLogEntry, error) {
	if limit < len(a.entries) {
		return a.entries[:limit], nil
	}
	return a.entries, nil
}

// fakeUsers compares passwords in plain text.
type fakeUsers struct {
	users map[uuid.UUID]*models.User
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{users: map[uuid.UUID]*models.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (f *fakeUsers) SetTOTPSecret(_ context.Context, id uuid.UUID, secret string) error {
	f.users[id].TOTPSecret = &secret
	return nil
}

func (f *fakeUsers) EnableTOTP(_ context.Context, id uuid.UUID) error {
	f.users[id].TOTPEnabled = true
	return nil
}

func (f *fakeUsers) CheckPassword(u *models.User, password string) bool {
	return u.PasswordHash == password
}

type fakeSessions struct {
	created   *session.Data
	updated   *session.Data
	destroyed bool
}

func (s *fakeSessions) Create(_ context.Context, w http.ResponseWriter, data *session.Data) (string, error) {
	s.created = data
	http.SetCookie(w, &http.Cookie{Name: session.CookieName, Value: "test-session"})
	return "test-session", nil
}

func (s *fakeSessions) Update(_ context.Context, _ *http.Request, data *session.Data) error {
	s.updated = data
	return nil
}

func (s *fakeSessions) Destroy(_ context.Context, _ http.ResponseWriter, _ *http.Request) error {
	s.destroyed = true
	return nil
}

// withSession attaches session data the way middleware.LoadSession does.
func withSession(r *http.Request, data *session.Data) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, data))
}

func adminSession() *session.Data {
	return &session.Data{UserID: uuid.New(), Email: "admin@lawsite.local", Role: models.RoleAdmin, TwoFADone: true}
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
