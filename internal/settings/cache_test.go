// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package settings

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawsite/internal/models"
)

// fakeSource counts fetches. When gate is set each fetch blocks until the
// gate is closed.
type fakeSource struct {
	calls atomic.Int64
	gate  chan struct{}

	mu   sync.Mutex
	rows []models.SiteSettingsRow
	err  error
}

func (f *fakeSource) FetchSettings(ctx context.Context) ([]models.SiteSettingsRow, error) {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows, f.err
}

func (f *fakeSource) set(rows []models.SiteSettingsRow, err error) {
	f.mu.Lock()
	f.rows, f.err = rows, err
	f.mu.Unlock()
}

func namedRow(name string) models.SiteSettingsRow {
	return models.SiteSettingsRow{SettingsKey: models.SettingsKey, SiteName: &name}
}

func TestGetConcurrentCallersShareOneFetch(t *testing.T) {
	src := &fakeSource{gate: make(chan struct{}), rows: []models.SiteSettingsRow{namedRow("Okafor Legal")}}
	c := New(src)

	const callers = 25
	results := make([]models.SiteSettings, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = c.Get(context.Background())
		}()
	}

	require.Eventually(t, func() bool {
		return c.Stats().Misses == callers
	}, time.Second, time.Millisecond)
	close(src.gate)
	wg.Wait()

	assert.Equal(t, int64(1), src.calls.Load())
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
	assert.Equal(t, "Okafor Legal", results[0].SiteName)
}

func TestGetServesCachedValueWithoutFetching(t *testing.T) {
	src := &fakeSource{rows: []models.SiteSettingsRow{namedRow("Okafor Legal")}}
	c := New(src)
	ctx := context.Background()

	first, err := c.Get(ctx)
	require.NoError(t, err)

	src.set([]models.SiteSettingsRow{namedRow("Changed")}, nil)
	for range 5 {
		got, err := c.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}

	assert.Equal(t, int64(1), src.calls.Load())
	assert.Equal(t, int64(5), c.Stats().Hits)
}

func TestStatsCountMissesSeparatelyFromHits(t *testing.T) {
	src := &fakeSource{rows: []models.SiteSettingsRow{namedRow("Okafor Legal")}}
	c := New(src)
	ctx := context.Background()

	_, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Fetches: 1, Misses: 1}, c.Stats())

	_, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Fetches: 1, Hits: 1, Misses: 1}, c.Stats())

	c.Invalidate()
	_, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Fetches: 2, Hits: 1, Misses: 2}, c.Stats())
}

func TestGetZeroRowsYieldsDefaults(t *testing.T) {
	c := New(&fakeSource{})

	got, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSiteSettings(), got)
}

func TestGetMultipleRowsUsesFirst(t *testing.T) {
	c := New(&fakeSource{rows: []models.SiteSettingsRow{namedRow("First"), namedRow("Second")}})

	got, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "First", got.SiteName)
}

func TestGetFailureFallsBackAndRetries(t *testing.T) {
	boom := errors.New("connection refused")
	src := &fakeSource{err: boom}
	c := New(src)
	ctx := context.Background()

	got, err := c.Get(ctx)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, models.DefaultSiteSettings(), got)

	src.set([]models.SiteSettingsRow{namedRow("Recovered")}, nil)
	got, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Recovered", got.SiteName)
	assert.Equal(t, int64(2), src.calls.Load())
	assert.Equal(t, int64(1), c.Stats().Errors)
}

func TestGetFailureReachesEveryWaiter(t *testing.T) {
	boom := errors.New("status 503")
	src := &fakeSource{gate: make(chan struct{}), err: boom}
	c := New(src)

	const callers = 5
	errs := make(chan error, callers)
	for range callers {
		go func() {
			_, err := c.Get(context.Background())
			errs <- err
		}()
	}

	require.Eventually(t, func() bool {
		return c.Stats().Misses == callers
	}, time.Second, time.Millisecond)
	close(src.gate)

	for range callers {
		assert.ErrorIs(t, <-errs, boom)
	}
	assert.Equal(t, int64(1), src.calls.Load())
}

func TestInvalidateTriggersOneNewFetch(t *testing.T) {
	src := &fakeSource{rows: []models.SiteSettingsRow{namedRow("Before")}}
	c := New(src)
	ctx := context.Background()

	_, err := c.Get(ctx)
	require.NoError(t, err)

	src.set([]models.SiteSettingsRow{namedRow("After")}, nil)
	c.Invalidate()

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "After", got.SiteName)

	_, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), src.calls.Load())
}

func TestInvalidateDuringFetchDiscardsResult(t *testing.T) {
	src := &fakeSource{gate: make(chan struct{}), rows: []models.SiteSettingsRow{namedRow("Stale")}}
	c := New(src)

	done := make(chan models.SiteSettings)
	go func() {
		s, _ := c.Get(context.Background())
		done <- s
	}()

	require.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, time.Millisecond)
	c.Invalidate()
	close(src.gate)

	assert.Equal(t, "Stale", (<-done).SiteName)
	_, cached := c.peek()
	assert.False(t, cached)

	src.set([]models.SiteSettingsRow{namedRow("Fresh")}, nil)
	got, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Fresh", got.SiteName)
	assert.Equal(t, int64(2), src.calls.Load())
}

func TestGetCallerGivesUpWithoutCancellingFetch(t *testing.T) {
	src := &fakeSource{gate: make(chan struct{}), rows: []models.SiteSettingsRow{namedRow("Okafor Legal")}}
	c := New(src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := c.Get(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, models.DefaultSiteSettings(), got)

	close(src.gate)
	require.Eventually(t, func() bool {
		_, ok := c.peek()
		return ok
	}, time.Second, time.Millisecond)

	got, err = c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Okafor Legal", got.SiteName)
	assert.Equal(t, int64(1), src.calls.Load())
}

func TestGetReturnsIndependentCopies(t *testing.T) {
	c := New(&fakeSource{})
	ctx := context.Background()

	a, err := c.Get(ctx)
	require.NoError(t, err)
	a.Navigation[0].Label = "Mutated"

	b, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Home", b.Navigation[0].Label)
}
