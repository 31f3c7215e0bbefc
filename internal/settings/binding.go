// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package settings

import (
	"context"
	"sync"

	"lawsite/internal/models"
)

// State is what a consumer renders from. Settings is always populated.
type State struct {
	Settings  models.SiteSettings
	IsLoading bool
	Err       error
}

// Binding tracks one consumer's view of the settings while they load.
type Binding struct {
	cancel context.CancelFunc

	mu       sync.Mutex
	state    State
	closed   bool
	resolved bool
	done     chan struct{}
}

// Bind returns a binding for a consumer. When the settings are cached the
// binding is resolved before Bind returns; otherwise it starts loading in
// the background and reports IsLoading until the first result arrives.
func (c *Cache) Bind(ctx context.Context) *Binding {
	ctx, cancel := context.WithCancel(ctx)
	b := &Binding{
		cancel: cancel,
		state:  State{Settings: models.DefaultSiteSettings(), IsLoading: true},
		done:   make(chan struct{}),
	}

	if s, ok := c.peek(); ok {
		b.resolve(s, nil)
		return b
	}

	go func() {
		s, err := c.Get(ctx)
		b.resolve(s, err)
	}()
	return b
}

// State returns the current state.
func (b *Binding) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Done is closed once the binding resolves or is closed.
func (b *Binding) Done() <-chan struct{} {
	return b.done
}

// Close tears the binding down. A load finishing afterwards leaves the
// state untouched.
func (b *Binding) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.cancel()
	if !b.resolved {
		b.resolved = true
		close(b.done)
	}
}

func (b *Binding) resolve(s models.SiteSettings, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || b.resolved {
		return
	}
	b.state = State{Settings: s, Err: err}
	b.resolved = true
	b.cancel()
	close(b.done)
}
