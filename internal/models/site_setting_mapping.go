// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// SettingsFromRow converts a stored row into SiteSettings. Every null or
// empty required column and every empty list is replaced by its default.
// Optional columns are written as null when an editor clears them, so null
// reads back as "". List entries missing their required parts are dropped
// first, so a list that only held broken entries also falls back to the
// default.
func SettingsFromRow(row SiteSettingsRow) SiteSettings {
	d := DefaultSiteSettings()

	s := SiteSettings{
		SiteName: required(row.SiteName, d.SiteName),
		Logo: Logo{
			URL: required(row.LogoURL, d.Logo.URL),
			Alt: optional(row.LogoAlt),
		},
		Phone: Phone{
			Number:       required(row.PhoneNumber, d.Phone.Number),
			Display:      required(row.PhoneDisplay, d.Phone.Display),
			Availability: optional(row.PhoneAvailability),
			Global:       boolOr(row.PhoneGlobal, d.Phone.Global),
		},
		HeaderCTA: Link{
			Text: optional(row.HeaderCTAText),
			URL:  optional(row.HeaderCTAURL),
		},
		AddressLine1:  required(row.AddressLine1, d.AddressLine1),
		AddressLine2:  optional(row.AddressLine2),
		MapEmbedURL:   optional(row.MapEmbedURL),
		CopyrightText: required(row.CopyrightText, d.CopyrightText),
		SEONoIndex:    boolOr(row.SEONoIndex, d.SEONoIndex),
		Analytics: Analytics{
			MeasurementID:      optional(row.GAMeasurementID),
			AdsID:              optional(row.GoogleAdsID),
			AdsConversionLabel: optional(row.GoogleAdsConversionLabel),
			HeadScripts:        optional(row.HeadScripts),
			FooterScripts:      optional(row.FooterScripts),
		},
	}

	s.Navigation = listOr(cleanNavigation(row.Navigation), d.Navigation)
	s.FooterPrimaryLinks = listOr(cleanFooterLinks(row.FooterPrimaryLinks), d.FooterPrimaryLinks)
	s.FooterSecondaryLinks = listOr(cleanFooterLinks(row.FooterSecondaryLinks), d.FooterSecondaryLinks)
	s.SocialLinks = listOr(cleanSocialLinks(row.SocialLinks), d.SocialLinks)

	return s
}

// ToUpdate converts settings into the partial row written to the store.
// Empty optional strings are sent as null.
func (s SiteSettings) ToUpdate(actor *uuid.UUID) SiteSettingsUpdate {
	c := s.Clone()
	return SiteSettingsUpdate{
		SettingsKey:              SettingsKey,
		SiteName:                 c.SiteName,
		LogoURL:                  c.Logo.URL,
		LogoAlt:                  nullable(c.Logo.Alt),
		PhoneNumber:              c.Phone.Number,
		PhoneDisplay:             c.Phone.Display,
		PhoneAvailability:        nullable(c.Phone.Availability),
		PhoneGlobal:              c.Phone.Global,
		HeaderCTAText:            nullable(c.HeaderCTA.Text),
		HeaderCTAURL:             nullable(c.HeaderCTA.URL),
		Navigation:               c.Navigation,
		FooterPrimaryLinks:       c.FooterPrimaryLinks,
		FooterSecondaryLinks:     c.FooterSecondaryLinks,
		AddressLine1:             c.AddressLine1,
		AddressLine2:             nullable(c.AddressLine2),
		MapEmbedURL:              nullable(c.MapEmbedURL),
		SocialLinks:              c.SocialLinks,
		CopyrightText:            c.CopyrightText,
		SEONoIndex:               c.SEONoIndex,
		GAMeasurementID:          nullable(c.Analytics.MeasurementID),
		GoogleAdsID:              nullable(c.Analytics.AdsID),
		GoogleAdsConversionLabel: nullable(c.Analytics.AdsConversionLabel),
		HeadScripts:              nullable(c.Analytics.HeadScripts),
		FooterScripts:            nullable(c.Analytics.FooterScripts),
		UpdatedBy:                actor,
	}
}

// Validate reports every problem with settings submitted by an editor.
// The returned error is a *multierror.Error, or nil.
func (s SiteSettings) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(s.SiteName) == "" {
		result = multierror.Append(result, fmt.Errorf("site_name is required"))
	}
	if s.Phone.Number == "" || s.Phone.Display == "" {
		result = multierror.Append(result, fmt.Errorf("phone number and display are required"))
	}
	if err := checkURL("logo.url", s.Logo.URL); err != nil {
		result = multierror.Append(result, err)
	}
	switch {
	case s.HeaderCTA.URL != "":
		if err := checkURL("header_cta.url", s.HeaderCTA.URL); err != nil {
			result = multierror.Append(result, err)
		}
	case s.HeaderCTA.Text != "":
		result = multierror.Append(result, fmt.Errorf("header_cta.url is required when header_cta.text is set"))
	}
	for i, n := range s.Navigation {
		if strings.TrimSpace(n.Label) == "" {
			result = multierror.Append(result, fmt.Errorf("navigation[%d]: label is required", i))
		}
		if err := checkURL(fmt.Sprintf("navigation[%d].href", i), n.Href); err != nil {
			result = multierror.Append(result, err)
		}
	}
	for _, col := range []struct {
		name  string
		links []FooterLink
	}{
		{"footer_primary_links", s.FooterPrimaryLinks},
		{"footer_secondary_links", s.FooterSecondaryLinks},
	} {
		for i, l := range col.links {
			if strings.TrimSpace(l.Label) == "" {
				result = multierror.Append(result, fmt.Errorf("%s[%d]: label is required", col.name, i))
			}
		}
	}
	for i, l := range s.SocialLinks {
		if !l.Platform.Valid() {
			result = multierror.Append(result, fmt.Errorf("social_links[%d]: unknown platform %q", i, l.Platform))
			continue
		}
		if l.Enabled {
			if err := checkURL(fmt.Sprintf("social_links[%d].url", i), l.URL); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}
	if s.MapEmbedURL != "" {
		if err := checkURL("map_embed_url", s.MapEmbedURL); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// checkURL accepts absolute http(s) URLs, site-relative paths, and the
// mailto:/tel: schemes.
func checkURL(field, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	switch u.Scheme {
	case "":
		if !strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "#") {
			return fmt.Errorf("%s: relative links must start with /", field)
		}
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("%s: missing host", field)
		}
	case "mailto", "tel":
	default:
		return fmt.Errorf("%s: unsupported scheme %q", field, u.Scheme)
	}
	return nil
}

func cleanNavigation(in []NavItem) []NavItem {
	var out []NavItem
	for _, n := range in {
		if strings.TrimSpace(n.Label) == "" || strings.TrimSpace(n.Href) == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}

func cleanFooterLinks(in []FooterLink) []FooterLink {
	var out []FooterLink
	for _, l := range in {
		if strings.TrimSpace(l.Label) == "" {
			continue
		}
		if l.Href != nil && *l.Href == "" {
			l.Href = nil
		}
		out = append(out, l)
	}
	return out
}

func cleanSocialLinks(in []SocialLink) []SocialLink {
	var out []SocialLink
	for _, l := range in {
		if !l.Platform.Valid() {
			continue
		}
		out = append(out, l)
	}
	return out
}

func required(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func optional(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func listOr[T any](v, fallback []T) []T {
	if len(v) == 0 {
		return fallback
	}
	return v
}
