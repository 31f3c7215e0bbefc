// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PageKey names a page whose content is edited in the admin panel.
type PageKey string

const (
	PageHome          PageKey = "home"
	PagePracticeAreas PageKey = "practice-areas"
	PageAbout         PageKey = "about"
	PageContact       PageKey = "contact"
)

// KnownPageKeys lists the pages with a dedicated content shape.
var KnownPageKeys = []PageKey{PageHome, PageAbout, PageContact, PagePracticeAreas}

// PageContent is the structured document behind one page. The concrete
// type is one of HomeContent, AboutContent, ContactContent,
// PracticeAreasContent, or RawContent for any other page.
type PageContent interface {
	PageKey() PageKey
	isPageContent()
}

// Hero is the banner at the top of every page.
type Hero struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	CTAText         string `json:"cta_text"`
	CTAURL          string `json:"cta_url"`
	BackgroundImage string `json:"background_image"`
}

// Feature is a highlighted selling point on the homepage.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Testimonial is a client quote.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// CTASection is the closing call-to-action block of a page.
type CTASection struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	ButtonText string `json:"button_text"`
	ButtonURL  string `json:"button_url"`
}

// HomeContent is the homepage document.
type HomeContent struct {
	Hero         Hero          `json:"hero"`
	Features     []Feature     `json:"features"`
	Testimonials []Testimonial `json:"testimonials"`
	CTA          CTASection    `json:"cta"`
}

// Story is a titled block of prose.
type Story struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Value is one of the firm's stated values.
type Value struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TeamMember is an attorney or staff profile.
type TeamMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

// AboutContent is the about page document.
type AboutContent struct {
	Hero   Hero         `json:"hero"`
	Story  Story        `json:"story"`
	Values []Value      `json:"values"`
	Team   []TeamMember `json:"team"`
}

// OfficeHours is one line of the opening hours table.
type OfficeHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// ContactContent is the contact page document.
type ContactContent struct {
	Hero        Hero          `json:"hero"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Address     string        `json:"address"`
	OfficeHours []OfficeHours `json:"office_hours"`
	FormTitle   string        `json:"form_title"`
	FormIntro   string        `json:"form_intro"`
}

// PracticeArea is one area of law the firm handles.
type PracticeArea struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// PracticeAreasContent is the practice areas page document.
type PracticeAreasContent struct {
	Hero  Hero           `json:"hero"`
	Intro string         `json:"intro"`
	Areas []PracticeArea `json:"areas"`
}

// RawContent holds the document of a page without a dedicated shape.
type RawContent struct {
	Key  PageKey
	Data json.RawMessage
}

func (HomeContent) PageKey() PageKey          { return PageHome }
func (AboutContent) PageKey() PageKey         { return PageAbout }
func (ContactContent) PageKey() PageKey       { return PageContact }
func (PracticeAreasContent) PageKey() PageKey { return PagePracticeAreas }
func (r RawContent) PageKey() PageKey         { return r.Key }

func (HomeContent) isPageContent()          {}
func (AboutContent) isPageContent()         {}
func (ContactContent) isPageContent()       {}
func (PracticeAreasContent) isPageContent() {}
func (RawContent) isPageContent()           {}

// MarshalJSON emits the raw document unchanged ("{}" when empty).
func (r RawContent) MarshalJSON() ([]byte, error) {
	if len(bytes.TrimSpace(r.Data)) == 0 {
		return []byte("{}"), nil
	}
	return r.Data, nil
}

// DecodePageContent parses a stored document into the variant for key.
// Empty data yields DefaultPageContent(key).
func DecodePageContent(key PageKey, data []byte) (PageContent, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultPageContent(key), nil
	}

	var (
		c   PageContent
		err error
	)
	switch key {
	case PageHome:
		var v HomeContent
		err = json.Unmarshal(data, &v)
		c = v
	case PageAbout:
		var v AboutContent
		err = json.Unmarshal(data, &v)
		c = v
	case PageContact:
		var v ContactContent
		err = json.Unmarshal(data, &v)
		c = v
	case PagePracticeAreas:
		var v PracticeAreasContent
		err = json.Unmarshal(data, &v)
		c = v
	default:
		if !json.Valid(data) {
			return nil, fmt.Errorf("decode %s content: invalid JSON", key)
		}
		c = RawContent{Key: key, Data: append(json.RawMessage(nil), data...)}
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s content: %w", key, err)
	}
	return c, nil
}

// EncodePageContent serializes a document for storage.
func EncodePageContent(c PageContent) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode %s content: %w", c.PageKey(), err)
	}
	return data, nil
}

// DefaultPageContent returns an empty document of the right shape for key.
func DefaultPageContent(key PageKey) PageContent {
	switch key {
	case PageHome:
		return HomeContent{}
	case PageAbout:
		return AboutContent{}
	case PageContact:
		return ContactContent{}
	case PagePracticeAreas:
		return PracticeAreasContent{}
	}
	return RawContent{Key: key, Data: json.RawMessage("{}")}
}

// Page is a stored page document with its audit metadata.
type Page struct {
	ID        uuid.UUID   `json:"id"`
	Key       PageKey     `json:"key"`
	Content   PageContent `json:"content"`
	UpdatedAt time.Time   `json:"updated_at"`
	UpdatedBy *uuid.UUID  `json:"updated_by,omitempty"`
}
