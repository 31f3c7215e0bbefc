// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Defaults used whenever the store has no row, a required column is null, or
// a fetch fails. Sequences are seeded because an empty list means "not configured".
const (
	defaultSiteName          = "Harper & Cole Law"
	defaultLogoURL           = "/images/logo.svg"
	defaultPhoneNumber       = "+15555550123"
	defaultPhoneDisplay      = "(555) 555-0123"
	defaultPhoneAvailability = "Available 24/7"
	defaultCTAText           = "Free Consultation"
	defaultCTAURL            = "/contact"
	defaultAddressLine1      = "100 Main Street, Suite 400, Springfield, IL 62701"
	defaultCopyright         = "Harper & Cole Law. All rights reserved."
)

func defaultNavigation() []NavItem {
	return []NavItem{
		{Label: "Home", Href: "/", Order: ptr(1)},
		{Label: "About", Href: "/about", Order: ptr(2)},
		{Label: "Practice Areas", Href: "/practice-areas", Order: ptr(3)},
		{Label: "Contact", Href: "/contact", Order: ptr(4)},
	}
}

func defaultFooterPrimaryLinks() []FooterLink {
	return []FooterLink{
		{Label: "Personal Injury", Href: ptr("/practice-areas#personal-injury")},
		{Label: "Family Law", Href: ptr("/practice-areas#family-law")},
		{Label: "Criminal Defense", Href: ptr("/practice-areas#criminal-defense")},
		{Label: "Estate Planning", Href: ptr("/practice-areas#estate-planning")},
	}
}

func defaultFooterSecondaryLinks() []FooterLink {
	return []FooterLink{
		{Label: "Privacy Policy", Href: ptr("/privacy")},
		{Label: "Terms of Service", Href: ptr("/terms")},
		{Label: "Disclaimer", Href: ptr("/disclaimer")},
	}
}

func defaultSocialLinks() []SocialLink {
	links := make([]SocialLink, 0, len(SocialPlatforms))
	for _, p := range SocialPlatforms {
		links = append(links, SocialLink{Platform: p})
	}
	return links
}

// DefaultSiteSettings returns the built-in settings. Each call returns a
// fresh value; callers may modify it freely.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName: defaultSiteName,
		Logo:     Logo{URL: defaultLogoURL, Alt: defaultSiteName},
		Phone: Phone{
			Number:       defaultPhoneNumber,
			Display:      defaultPhoneDisplay,
			Availability: defaultPhoneAvailability,
			Global:       true,
		},
		HeaderCTA:            Link{Text: defaultCTAText, URL: defaultCTAURL},
		Navigation:           defaultNavigation(),
		FooterPrimaryLinks:   defaultFooterPrimaryLinks(),
		FooterSecondaryLinks: defaultFooterSecondaryLinks(),
		AddressLine1:         defaultAddressLine1,
		SocialLinks:          defaultSocialLinks(),
		CopyrightText:        defaultCopyright,
	}
}
