// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package settings holds the process-wide cache of the global site settings.
// One Cache is constructed per process (or per test) and shared by every
// consumer; concurrent misses share a single fetch from the Source.
package settings

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"lawsite/internal/models"
)

// Source loads the rows matching the global settings key. Zero rows is a
// valid answer and means nothing has been saved yet.
type Source interface {
	FetchSettings(ctx context.Context) ([]models.SiteSettingsRow, error)
}

// Stats are counters describing how Get calls were served.
type Stats struct {
	Fetches int64 `json:"fetches"` // requests issued to the Source
	Hits    int64 `json:"hits"`    // calls answered from the cached value
	Misses  int64 `json:"misses"`  // calls that missed the cache and started or joined a fetch
	Errors  int64 `json:"errors"`  // fetches that failed
}

// Cache memoizes the global settings and de-duplicates concurrent fetches.
type Cache struct {
	src    Source
	flight singleflight.Group

	mu     sync.Mutex
	cached *models.SiteSettings
	gen    uint64 // bumped by Invalidate

	fetches atomic.Int64
	hits    atomic.Int64
	misses  atomic.Int64
	errors  atomic.Int64
}

// New creates an empty cache reading from src.
func New(src Source) *Cache {
	return &Cache{src: src}
}

// Get returns the current settings. A cached value is returned without I/O.
// Otherwise the caller starts a fetch or joins the one in flight.
//
// Get always returns usable settings: on failure the error is returned
// alongside DefaultSiteSettings and nothing is cached, so the next call
// retries. The fetch itself is never cancelled; when ctx ends first the
// caller stops waiting and gets the defaults with ctx.Err().
func (c *Cache) Get(ctx context.Context) (models.SiteSettings, error) {
	if s, ok := c.peek(); ok {
		return s, nil
	}

	c.misses.Add(1)
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(models.SettingsKey, func() (any, error) {
		return c.load(fetchCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return models.DefaultSiteSettings(), res.Err
		}
		return res.Val.(models.SiteSettings).Clone(), nil
	case <-ctx.Done():
		return models.DefaultSiteSettings(), ctx.Err()
	}
}

// Invalidate drops the cached value and detaches any fetch in flight, so
// the next Get fetches again. A fetch that was running keeps delivering
// its result to the callers already waiting on it but does not store it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.gen++
	c.mu.Unlock()

	c.flight.Forget(models.SettingsKey)
	slog.Debug("settings cache invalidated")
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Fetches: c.fetches.Load(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Errors:  c.errors.Load(),
	}
}

func (c *Cache) peek() (models.SiteSettings, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached == nil {
		return models.SiteSettings{}, false
	}
	c.hits.Add(1)
	return c.cached.Clone(), true
}

// load runs inside the single-flight group. It re-checks the cached slot
// so a caller that lost the race with a finished fetch issues no request.
func (c *Cache) load(ctx context.Context) (models.SiteSettings, error) {
	c.mu.Lock()
	if c.cached != nil {
		s := *c.cached
		c.mu.Unlock()
		return s, nil
	}
	gen := c.gen
	c.mu.Unlock()

	c.fetches.Add(1)
	rows, err := c.src.FetchSettings(ctx)
	if err != nil {
		c.errors.Add(1)
		slog.Warn("settings fetch failed, serving defaults", "error", err)
		return models.SiteSettings{}, err
	}

	var s models.SiteSettings
	switch len(rows) {
	case 0:
		slog.Info("no settings row stored, using defaults")
		s = models.DefaultSiteSettings()
	default:
		if len(rows) > 1 {
			slog.Warn("multiple settings rows returned, using the first", "count", len(rows))
		}
		s = models.SettingsFromRow(rows[0])
	}

	c.mu.Lock()
	if c.gen == gen {
		c.cached = &s
	}
	c.mu.Unlock()

	return s, nil
}
