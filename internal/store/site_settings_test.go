// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"lawsite/internal/models"
)

func TestSiteSettingsStoreEmpty(t *testing.T) {
	db := testDB(t)
	snapshotSettings(t, db)
	s := NewSiteSettingsStore(db)

	rows, err := s.FetchSettings(t.Context())
	if err != nil {
		t.Fatalf("FetchSettings: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestSiteSettingsStoreUpsertRoundTrip(t *testing.T) {
	db := testDB(t)
	snapshotSettings(t, db)
	s := NewSiteSettingsStore(db)
	ctx := t.Context()

	want := models.DefaultSiteSettings()
	want.SiteName = "Okafor Legal"
	want.AddressLine2 = "Floor 3"
	want.SocialLinks[0].URL = "https://facebook.com/okafor"
	want.SocialLinks[0].Enabled = true

	if err := s.UpdateSettings(ctx, want.ToUpdate(nil)); err != nil {
		t.Fatalf("UpdateSettings (insert): %v", err)
	}

	want.AddressLine2 = ""
	want.HeaderCTA = models.Link{}
	if err := s.UpdateSettings(ctx, want.ToUpdate(nil)); err != nil {
		t.Fatalf("UpdateSettings (update): %v", err)
	}

	rows, err := s.FetchSettings(ctx)
	if err != nil {
		t.Fatalf("FetchSettings: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.SettingsKey != models.SettingsKey {
		t.Errorf("settings_key = %q", row.SettingsKey)
	}
	if row.AddressLine2 != nil {
		t.Errorf("address_line2 should be cleared to NULL, got %q", *row.AddressLine2)
	}
	if row.HeaderCTAText != nil || row.HeaderCTAURL != nil {
		t.Errorf("header cta should be cleared to NULL, got %v / %v", row.HeaderCTAText, row.HeaderCTAURL)
	}
	if row.UpdatedAt == nil {
		t.Error("updated_at not set")
	}

	got := models.SettingsFromRow(row)
	if got.SiteName != "Okafor Legal" {
		t.Errorf("site_name = %q", got.SiteName)
	}
	if got.HeaderCTA != (models.Link{}) {
		t.Errorf("cleared header cta came back as %+v", got.HeaderCTA)
	}
	if len(got.Navigation) != len(want.Navigation) {
		t.Errorf("navigation: got %d entries, want %d", len(got.Navigation), len(want.Navigation))
	}
	if !got.SocialLinks[0].Enabled || got.SocialLinks[0].URL != "https://facebook.com/okafor" {
		t.Errorf("social link not persisted: %+v", got.SocialLinks[0])
	}
}
