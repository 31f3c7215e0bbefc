// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"lawsite/internal/models"
)

const settingsColumns = `id, settings_key, site_name, logo_url, logo_alt,
	phone_number, phone_display, phone_availability, phone_global,
	header_cta_text, header_cta_url, navigation, footer_primary_links,
	footer_secondary_links, address_line1, address_line2, map_embed_url,
	social_links, copyright_text, seo_noindex, ga_measurement_id, google_ads_id,
	google_ads_conversion_label, head_scripts, footer_scripts, updated_at, updated_by`

// SiteSettingsStore reads and writes the global settings row in the
// site_settings table. It is a settings.Source.
type SiteSettingsStore struct {
	db *sql.DB
}

// NewSiteSettingsStore returns a SiteSettingsStore backed by db.
func NewSiteSettingsStore(db *sql.DB) *SiteSettingsStore {
	return &SiteSettingsStore{db: db}
}

// FetchSettings returns the rows stored under the global settings key
// (zero or one, the key is unique).
func (s *SiteSettingsStore) FetchSettings(ctx context.Context) ([]models.SiteSettingsRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+settingsColumns+` FROM site_settings WHERE settings_key = $1`, models.SettingsKey)
	if err != nil {
		return nil, fmt.Errorf("query site settings: %w", err)
	}
	defer rows.Close()

	var out []models.SiteSettingsRow
	for rows.Next() {
		row, err := scanSettingsRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan site settings: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// UpdateSettings writes upd to the global row, creating it if needed.
func (s *SiteSettingsStore) UpdateSettings(ctx context.Context, upd models.SiteSettingsUpdate) error {
	nav, err := json.Marshal(upd.Navigation)
	if err != nil {
		return fmt.Errorf("marshal navigation: %w", err)
	}
	primary, err := json.Marshal(upd.FooterPrimaryLinks)
	if err != nil {
		return fmt.Errorf("marshal footer_primary_links: %w", err)
	}
	secondary, err := json.Marshal(upd.FooterSecondaryLinks)
	if err != nil {
		return fmt.Errorf("marshal footer_secondary_links: %w", err)
	}
	social, err := json.Marshal(upd.SocialLinks)
	if err != nil {
		return fmt.Errorf("marshal social_links: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO site_settings (
			settings_key, site_name, logo_url, logo_alt,
			phone_number, phone_display, phone_availability, phone_global,
			header_cta_text, header_cta_url, navigation, footer_primary_links,
			footer_secondary_links, address_line1, address_line2, map_embed_url,
			social_links, copyright_text, seo_noindex, ga_measurement_id, google_ads_id,
			google_ads_conversion_label, head_scripts, footer_scripts, updated_at, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, NOW(), $25
		)
		ON CONFLICT (settings_key) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			logo_url = EXCLUDED.logo_url,
			logo_alt = EXCLUDED.logo_alt,
			phone_number = EXCLUDED.phone_number,
			phone_display = EXCLUDED.phone_display,
			phone_availability = EXCLUDED.phone_availability,
			phone_global = EXCLUDED.phone_global,
			header_cta_text = EXCLUDED.header_cta_text,
			header_cta_url = EXCLUDED.header_cta_url,
			navigation = EXCLUDED.navigation,
			footer_primary_links = EXCLUDED.footer_primary_links,
			footer_secondary_links = EXCLUDED.footer_secondary_links,
			address_line1 = EXCLUDED.address_line1,
			address_line2 = EXCLUDED.address_line2,
			map_embed_url = EXCLUDED.map_embed_url,
			social_links = EXCLUDED.social_links,
			copyright_text = EXCLUDED.copyright_text,
			seo_noindex = EXCLUDED.seo_noindex,
			ga_measurement_id = EXCLUDED.ga_measurement_id,
			google_ads_id = EXCLUDED.google_ads_id,
			google_ads_conversion_label = EXCLUDED.google_ads_conversion_label,
			head_scripts = EXCLUDED.head_scripts,
			footer_scripts = EXCLUDED.footer_scripts,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by`,
		models.SettingsKey, upd.SiteName, upd.LogoURL, upd.LogoAlt,
		upd.PhoneNumber, upd.PhoneDisplay, upd.PhoneAvailability, upd.PhoneGlobal,
		upd.HeaderCTAText, upd.HeaderCTAURL, nav, primary,
		secondary, upd.AddressLine1, upd.AddressLine2, upd.MapEmbedURL,
		social, upd.CopyrightText, upd.SEONoIndex, upd.GAMeasurementID, upd.GoogleAdsID,
		upd.GoogleAdsConversionLabel, upd.HeadScripts, upd.FooterScripts, upd.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("upsert site settings: %w", err)
	}
	return nil
}

func scanSettingsRow(r rowScanner) (models.SiteSettingsRow, error) {
	var (
		row                                 models.SiteSettingsRow
		nav, primary, secondary, socialJSON []byte
	)
	err := r.Scan(
		&row.ID, &row.SettingsKey, &row.SiteName, &row.LogoURL, &row.LogoAlt,
		&row.PhoneNumber, &row.PhoneDisplay, &row.PhoneAvailability, &row.PhoneGlobal,
		&row.HeaderCTAText, &row.HeaderCTAURL, &nav, &primary,
		&secondary, &row.AddressLine1, &row.AddressLine2, &row.MapEmbedURL,
		&socialJSON, &row.CopyrightText, &row.SEONoIndex, &row.GAMeasurementID, &row.GoogleAdsID,
		&row.GoogleAdsConversionLabel, &row.HeadScripts, &row.FooterScripts, &row.UpdatedAt, &row.UpdatedBy,
	)
	if err != nil {
		return row, err
	}

	for _, col := range []struct {
		name string
		data []byte
		dst  any
	}{
		{"navigation", nav, &row.Navigation},
		{"footer_primary_links", primary, &row.FooterPrimaryLinks},
		{"footer_secondary_links", secondary, &row.FooterSecondaryLinks},
		{"social_links", socialJSON, &row.SocialLinks},
	} {
		if len(col.data) == 0 {
			continue
		}
		if err := json.Unmarshal(col.data, col.dst); err != nil {
			return row, fmt.Errorf("decode %s: %w", col.name, err)
		}
	}
	return row, nil
}
