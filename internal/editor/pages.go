// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import "lawsite/internal/models"

// Shared sections.

var heroScalars = []scalar[models.Hero]{
	{"title", "Title", KindText, func(h models.Hero) string { return h.Title }, func(h models.Hero, v string) models.Hero { h.Title = v; return h }},
	{"subtitle", "Subtitle", KindTextarea, func(h models.Hero) string { return h.Subtitle }, func(h models.Hero, v string) models.Hero { h.Subtitle = v; return h }},
	{"cta_text", "Button text", KindText, func(h models.Hero) string { return h.CTAText }, func(h models.Hero, v string) models.Hero { h.CTAText = v; return h }},
	{"cta_url", "Button link", KindURL, func(h models.Hero) string { return h.CTAURL }, func(h models.Hero, v string) models.Hero { h.CTAURL = v; return h }},
	{"background_image", "Background image", KindURL, func(h models.Hero) string { return h.BackgroundImage }, func(h models.Hero, v string) models.Hero { h.BackgroundImage = v; return h }},
}

var ctaScalars = []scalar[models.CTASection]{
	{"title", "Title", KindText, func(c models.CTASection) string { return c.Title }, func(c models.CTASection, v string) models.CTASection { c.Title = v; return c }},
	{"text", "Text", KindTextarea, func(c models.CTASection) string { return c.Text }, func(c models.CTASection, v string) models.CTASection { c.Text = v; return c }},
	{"button_text", "Button text", KindText, func(c models.CTASection) string { return c.ButtonText }, func(c models.CTASection, v string) models.CTASection { c.ButtonText = v; return c }},
	{"button_url", "Button link", KindURL, func(c models.CTASection) string { return c.ButtonURL }, func(c models.CTASection, v string) models.CTASection { c.ButtonURL = v; return c }},
}

var storyScalars = []scalar[models.Story]{
	{"title", "Title", KindText, func(s models.Story) string { return s.Title }, func(s models.Story, v string) models.Story { s.Title = v; return s }},
	{"body", "Body", KindTextarea, func(s models.Story) string { return s.Body }, func(s models.Story, v string) models.Story { s.Body = v; return s }},
}

// Home.

var homeFields = concat(
	nested("hero",
		func(c models.HomeContent) models.Hero { return c.Hero },
		func(c models.HomeContent, h models.Hero) models.HomeContent { c.Hero = h; return c },
		heroScalars),
	nested("cta",
		func(c models.HomeContent) models.CTASection { return c.CTA },
		func(c models.HomeContent, s models.CTASection) models.HomeContent { c.CTA = s; return c },
		ctaScalars),
)

var homeLists = []listEditor[models.HomeContent]{
	list[models.HomeContent, models.Feature]{
		name:  "features",
		label: "Features",
		get:   func(c models.HomeContent) []models.Feature { return c.Features },
		put:   func(c models.HomeContent, v []models.Feature) models.HomeContent { c.Features = v; return c },
		fields: []scalar[models.Feature]{
			{"title", "Title", KindText, func(f models.Feature) string { return f.Title }, func(f models.Feature, v string) models.Feature { f.Title = v; return f }},
			{"description", "Description", KindTextarea, func(f models.Feature) string { return f.Description }, func(f models.Feature, v string) models.Feature { f.Description = v; return f }},
			{"icon", "Icon", KindText, func(f models.Feature) string { return f.Icon }, func(f models.Feature, v string) models.Feature { f.Icon = v; return f }},
		},
	},
	list[models.HomeContent, models.Testimonial]{
		name:  "testimonials",
		label: "Testimonials",
		get:   func(c models.HomeContent) []models.Testimonial { return c.Testimonials },
		put:   func(c models.HomeContent, v []models.Testimonial) models.HomeContent { c.Testimonials = v; return c },
		fields: []scalar[models.Testimonial]{
			{"quote", "Quote", KindTextarea, func(t models.Testimonial) string { return t.Quote }, func(t models.Testimonial, v string) models.Testimonial { t.Quote = v; return t }},
			{"author", "Author", KindText, func(t models.Testimonial) string { return t.Author }, func(t models.Testimonial, v string) models.Testimonial { t.Author = v; return t }},
			{"role", "Role", KindText, func(t models.Testimonial) string { return t.Role }, func(t models.Testimonial, v string) models.Testimonial { t.Role = v; return t }},
		},
	},
}

// About.

var aboutFields = concat(
	nested("hero",
		func(c models.AboutContent) models.Hero { return c.Hero },
		func(c models.AboutContent, h models.Hero) models.AboutContent { c.Hero = h; return c },
		heroScalars),
	nested("story",
		func(c models.AboutContent) models.Story { return c.Story },
		func(c models.AboutContent, s models.Story) models.AboutContent { c.Story = s; return c },
		storyScalars),
)

var aboutLists = []listEditor[models.AboutContent]{
	list[models.AboutContent, models.Value]{
		name:  "values",
		label: "Values",
		get:   func(c models.AboutContent) []models.Value { return c.Values },
		put:   func(c models.AboutContent, v []models.Value) models.AboutContent { c.Values = v; return c },
		fields: []scalar[models.Value]{
			{"title", "Title", KindText, func(x models.Value) string { return x.Title }, func(x models.Value, v string) models.Value { x.Title = v; return x }},
			{"description", "Description", KindTextarea, func(x models.Value) string { return x.Description }, func(x models.Value, v string) models.Value { x.Description = v; return x }},
		},
	},
	list[models.AboutContent, models.TeamMember]{
		name:  "team",
		label: "Team",
		get:   func(c models.AboutContent) []models.TeamMember { return c.Team },
		put:   func(c models.AboutContent, v []models.TeamMember) models.AboutContent { c.Team = v; return c },
		fields: []scalar[models.TeamMember]{
			{"name", "Name", KindText, func(m models.TeamMember) string { return m.Name }, func(m models.TeamMember, v string) models.TeamMember { m.Name = v; return m }},
			{"role", "Role", KindText, func(m models.TeamMember) string { return m.Role }, func(m models.TeamMember, v string) models.TeamMember { m.Role = v; return m }},
			{"bio", "Bio", KindTextarea, func(m models.TeamMember) string { return m.Bio }, func(m models.TeamMember, v string) models.TeamMember { m.Bio = v; return m }},
			{"image_url", "Photo", KindURL, func(m models.TeamMember) string { return m.ImageURL }, func(m models.TeamMember, v string) models.TeamMember { m.ImageURL = v; return m }},
		},
	},
}

// Contact.

var contactFields = concat(
	nested("hero",
		func(c models.ContactContent) models.Hero { return c.Hero },
		func(c models.ContactContent, h models.Hero) models.ContactContent { c.Hero = h; return c },
		heroScalars),
	[]scalar[models.ContactContent]{
		{"email", "Email", KindEmail, func(c models.ContactContent) string { return c.Email }, func(c models.ContactContent, v string) models.ContactContent { c.Email = v; return c }},
		{"phone", "Phone", KindText, func(c models.ContactContent) string { return c.Phone }, func(c models.ContactContent, v string) models.ContactContent { c.Phone = v; return c }},
		{"address", "Address", KindTextarea, func(c models.ContactContent) string { return c.Address }, func(c models.ContactContent, v string) models.ContactContent { c.Address = v; return c }},
		{"form_title", "Form title", KindText, func(c models.ContactContent) string { return c.FormTitle }, func(c models.ContactContent, v string) models.ContactContent { c.FormTitle = v; return c }},
		{"form_intro", "Form intro", KindTextarea, func(c models.ContactContent) string { return c.FormIntro }, func(c models.ContactContent, v string) models.ContactContent { c.FormIntro = v; return c }},
	},
)

var contactLists = []listEditor[models.ContactContent]{
	list[models.ContactContent, models.OfficeHours]{
		name:  "office_hours",
		label: "Office hours",
		get:   func(c models.ContactContent) []models.OfficeHours { return c.OfficeHours },
		put: func(c models.ContactContent, v []models.OfficeHours) models.ContactContent {
			c.OfficeHours = v
			return c
		},
		fields: []scalar[models.OfficeHours]{
			{"day", "Day", KindText, func(h models.OfficeHours) string { return h.Day }, func(h models.OfficeHours, v string) models.OfficeHours { h.Day = v; return h }},
			{"hours", "Hours", KindText, func(h models.OfficeHours) string { return h.Hours }, func(h models.OfficeHours, v string) models.OfficeHours { h.Hours = v; return h }},
		},
	},
}

// Practice areas.

var practiceAreasFields = concat(
	nested("hero",
		func(c models.PracticeAreasContent) models.Hero { return c.Hero },
		func(c models.PracticeAreasContent, h models.Hero) models.PracticeAreasContent { c.Hero = h; return c },
		heroScalars),
	[]scalar[models.PracticeAreasContent]{
		{"intro", "Introduction", KindTextarea, func(c models.PracticeAreasContent) string { return c.Intro }, func(c models.PracticeAreasContent, v string) models.PracticeAreasContent { c.Intro = v; return c }},
	},
)

var practiceAreasLists = []listEditor[models.PracticeAreasContent]{
	list[models.PracticeAreasContent, models.PracticeArea]{
		name:  "areas",
		label: "Practice areas",
		get:   func(c models.PracticeAreasContent) []models.PracticeArea { return c.Areas },
		put: func(c models.PracticeAreasContent, v []models.PracticeArea) models.PracticeAreasContent {
			c.Areas = v
			return c
		},
		fields: []scalar[models.PracticeArea]{
			{"title", "Title", KindText, func(a models.PracticeArea) string { return a.Title }, func(a models.PracticeArea, v string) models.PracticeArea { a.Title = v; return a }},
			{"slug", "Anchor", KindText, func(a models.PracticeArea) string { return a.Slug }, func(a models.PracticeArea, v string) models.PracticeArea { a.Slug = v; return a }},
			{"description", "Description", KindTextarea, func(a models.PracticeArea) string { return a.Description }, func(a models.PracticeArea, v string) models.PracticeArea { a.Description = v; return a }},
			{"icon", "Icon", KindText, func(a models.PracticeArea) string { return a.Icon }, func(a models.PracticeArea, v string) models.PracticeArea { a.Icon = v; return a }},
		},
	},
}

func concat[T any](groups ...[]scalar[T]) []scalar[T] {
	var out []scalar[T]
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
