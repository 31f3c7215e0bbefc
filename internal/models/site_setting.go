// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SettingsKey identifies the single global settings record.
const SettingsKey = "global"

// SocialPlatform is one of the fixed social networks the footer can link to.
type SocialPlatform string

const (
	SocialFacebook  SocialPlatform = "facebook"
	SocialInstagram SocialPlatform = "instagram"
	SocialTwitter   SocialPlatform = "twitter"
	SocialLinkedIn  SocialPlatform = "linkedin"
	SocialYouTube   SocialPlatform = "youtube"
)

// SocialPlatforms lists every supported platform in display order.
var SocialPlatforms = []SocialPlatform{
	SocialFacebook, SocialInstagram, SocialTwitter, SocialLinkedIn, SocialYouTube,
}

// Valid reports whether p is one of the supported platforms.
func (p SocialPlatform) Valid() bool {
	switch p {
	case SocialFacebook, SocialInstagram, SocialTwitter, SocialLinkedIn, SocialYouTube:
		return true
	}
	return false
}

// Logo references the site logo image.
type Logo struct {
	URL string `json:"url" yaml:"url"`
	Alt string `json:"alt" yaml:"alt"`
}

// Phone holds the firm's phone number and how it is presented.
type Phone struct {
	Number       string `json:"number" yaml:"number"`             // dialable, used in tel: links
	Display      string `json:"display" yaml:"display"`           // formatted for humans
	Availability string `json:"availability" yaml:"availability"` // e.g. "Available 24/7"
	Global       bool   `json:"global" yaml:"global"`             // show in the header on every page
}

// Link is a labelled URL, used for the header call-to-action.
type Link struct {
	Text string `json:"text" yaml:"text"`
	URL  string `json:"url" yaml:"url"`
}

// NavItem is one entry of the main navigation.
type NavItem struct {
	Label  string `json:"label" yaml:"label"`
	Href   string `json:"href" yaml:"href"`
	Order  *int   `json:"order,omitempty" yaml:"order,omitempty"`
	NewTab *bool  `json:"open_in_new_tab,omitempty" yaml:"open_in_new_tab,omitempty"`
}

// FooterLink is one entry of a footer link column. Entries without an Href
// render as plain text.
type FooterLink struct {
	Label string  `json:"label" yaml:"label"`
	Href  *string `json:"href,omitempty" yaml:"href,omitempty"`
}

// SocialLink points at the firm's profile on one platform.
type SocialLink struct {
	Platform SocialPlatform `json:"platform" yaml:"platform"`
	URL      string         `json:"url" yaml:"url"`
	Enabled  bool           `json:"enabled" yaml:"enabled"`
}

// Analytics holds tracking identifiers and raw script injections.
type Analytics struct {
	MeasurementID      string `json:"measurement_id" yaml:"measurement_id"`
	AdsID              string `json:"ads_id" yaml:"ads_id"`
	AdsConversionLabel string `json:"ads_conversion_label" yaml:"ads_conversion_label"`
	HeadScripts        string `json:"head_scripts" yaml:"head_scripts"`
	FooterScripts      string `json:"footer_scripts" yaml:"footer_scripts"`
}

// SiteSettings is the application-facing view of the global settings record.
// Every field is always populated; see DefaultSiteSettings and SettingsFromRow.
// Treat values as immutable and use Clone before changing one.
type SiteSettings struct {
	SiteName             string       `json:"site_name" yaml:"site_name"`
	Logo                 Logo         `json:"logo" yaml:"logo"`
	Phone                Phone        `json:"phone" yaml:"phone"`
	HeaderCTA            Link         `json:"header_cta" yaml:"header_cta"`
	Navigation           []NavItem    `json:"navigation" yaml:"navigation"`
	FooterPrimaryLinks   []FooterLink `json:"footer_primary_links" yaml:"footer_primary_links"`
	FooterSecondaryLinks []FooterLink `json:"footer_secondary_links" yaml:"footer_secondary_links"`
	AddressLine1         string       `json:"address_line1" yaml:"address_line1"`
	AddressLine2         string       `json:"address_line2" yaml:"address_line2"`
	MapEmbedURL          string       `json:"map_embed_url" yaml:"map_embed_url"`
	SocialLinks          []SocialLink `json:"social_links" yaml:"social_links"`
	CopyrightText        string       `json:"copyright_text" yaml:"copyright_text"`
	SEONoIndex           bool         `json:"seo_noindex" yaml:"seo_noindex"`
	Analytics            Analytics    `json:"analytics" yaml:"analytics"`
}

// Clone returns a deep copy, so slices and pointers are not shared.
func (s SiteSettings) Clone() SiteSettings {
	out := s
	out.Navigation = make([]NavItem, len(s.Navigation))
	for i, n := range s.Navigation {
		out.Navigation[i] = n
		if n.Order != nil {
			out.Navigation[i].Order = ptr(*n.Order)
		}
		if n.NewTab != nil {
			out.Navigation[i].NewTab = ptr(*n.NewTab)
		}
	}
	out.FooterPrimaryLinks = cloneFooterLinks(s.FooterPrimaryLinks)
	out.FooterSecondaryLinks = cloneFooterLinks(s.FooterSecondaryLinks)
	out.SocialLinks = append([]SocialLink(nil), s.SocialLinks...)
	return out
}

func cloneFooterLinks(in []FooterLink) []FooterLink {
	out := make([]FooterLink, len(in))
	for i, l := range in {
		out[i] = l
		if l.Href != nil {
			out[i].Href = ptr(*l.Href)
		}
	}
	return out
}

// SiteSettingsRow is the storage representation of the settings record, as
// returned by the REST endpoint and stored in the site_settings table.
// Nullable columns are pointers; list columns are JSON arrays.
type SiteSettingsRow struct {
	ID                       uuid.UUID    `json:"id"`
	SettingsKey              string       `json:"settings_key"`
	SiteName                 *string      `json:"site_name"`
	LogoURL                  *string      `json:"logo_url"`
	LogoAlt                  *string      `json:"logo_alt"`
	PhoneNumber              *string      `json:"phone_number"`
	PhoneDisplay             *string      `json:"phone_display"`
	PhoneAvailability        *string      `json:"phone_availability"`
	PhoneGlobal              *bool        `json:"phone_global"`
	HeaderCTAText            *string      `json:"header_cta_text"`
	HeaderCTAURL             *string      `json:"header_cta_url"`
	Navigation               []NavItem    `json:"navigation"`
	FooterPrimaryLinks       []FooterLink `json:"footer_primary_links"`
	FooterSecondaryLinks     []FooterLink `json:"footer_secondary_links"`
	AddressLine1             *string      `json:"address_line1"`
	AddressLine2             *string      `json:"address_line2"`
	MapEmbedURL              *string      `json:"map_embed_url"`
	SocialLinks              []SocialLink `json:"social_links"`
	CopyrightText            *string      `json:"copyright_text"`
	SEONoIndex               *bool        `json:"seo_noindex"`
	GAMeasurementID          *string      `json:"ga_measurement_id"`
	GoogleAdsID              *string      `json:"google_ads_id"`
	GoogleAdsConversionLabel *string      `json:"google_ads_conversion_label"`
	HeadScripts              *string      `json:"head_scripts"`
	FooterScripts            *string      `json:"footer_scripts"`
	UpdatedAt                *time.Time   `json:"updated_at"`
	UpdatedBy                *uuid.UUID   `json:"updated_by"`
}

// SiteSettingsUpdate is the partial row written back to the store. Optional
// text fields are pointers without omitempty: nil is sent as an explicit null
// and clears the column.
type SiteSettingsUpdate struct {
	SettingsKey              string       `json:"settings_key"`
	SiteName                 string       `json:"site_name"`
	LogoURL                  string       `json:"logo_url"`
	LogoAlt                  *string      `json:"logo_alt"`
	PhoneNumber              string       `json:"phone_number"`
	PhoneDisplay             string       `json:"phone_display"`
	PhoneAvailability        *string      `json:"phone_availability"`
	PhoneGlobal              bool         `json:"phone_global"`
	HeaderCTAText            *string      `json:"header_cta_text"`
	HeaderCTAURL             *string      `json:"header_cta_url"`
	Navigation               []NavItem    `json:"navigation"`
	FooterPrimaryLinks       []FooterLink `json:"footer_primary_links"`
	FooterSecondaryLinks     []FooterLink `json:"footer_secondary_links"`
	AddressLine1             string       `json:"address_line1"`
	AddressLine2             *string      `json:"address_line2"`
	MapEmbedURL              *string      `json:"map_embed_url"`
	SocialLinks              []SocialLink `json:"social_links"`
	CopyrightText            string       `json:"copyright_text"`
	SEONoIndex               bool         `json:"seo_noindex"`
	GAMeasurementID          *string      `json:"ga_measurement_id"`
	GoogleAdsID              *string      `json:"google_ads_id"`
	GoogleAdsConversionLabel *string      `json:"google_ads_conversion_label"`
	HeadScripts              *string      `json:"head_scripts"`
	FooterScripts            *string      `json:"footer_scripts"`
	UpdatedBy                *uuid.UUID   `json:"updated_by,omitempty"`
}

func ptr[T any](v T) *T { return &v }
