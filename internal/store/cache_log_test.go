// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"
)

func TestCacheLogStoreLogAndRecent(t *testing.T) {
	db := testDB(t)
	s := NewCacheLogStore(db)
	ctx := t.Context()

	key := "store-test-" + uuid.NewString()
	t.Cleanup(func() {
		db.Exec("DELETE FROM cache_invalidation_log WHERE entity_key = $1", key)
	})

	s.Log(ctx, EntityPage, key, "update", nil)
	s.Log(ctx, EntityPage, key, "invalidate", nil)

	var count int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM cache_invalidation_log WHERE entity_key = $1", key,
	).Scan(&count); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 log entries, got %d", count)
	}

	entries, err := s.RecentEntries(ctx, 10)
	if err != nil {
		t.Fatalf("RecentEntries: %v", err)
	}
	if len(entries) < 2 {
		t.Fatalf("expected at least 2 entries, got %d", len(entries))
	}
	if entries[0].InvalidatedAt.Before(entries[1].InvalidatedAt) {
		t.Error("expected entries ordered by invalidated_at DESC")
	}
}
