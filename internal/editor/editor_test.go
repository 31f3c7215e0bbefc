// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawsite/internal/models"
)

// recorder captures onChange calls.
type recorder struct {
	calls []models.PageContent
}

func (r *recorder) onChange(c models.PageContent) { r.calls = append(r.calls, c) }

func sampleHero() models.Hero {
	return models.Hero{Title: "Fighting for you", Subtitle: "Since 1984", CTAText: "Call", CTAURL: "/contact", BackgroundImage: "/img/hero.jpg"}
}

func sampleDocs() map[models.PageKey]models.PageContent {
	return map[models.PageKey]models.PageContent{
		models.PageHome: models.HomeContent{
			Hero:         sampleHero(),
			Features:     []models.Feature{{Title: "Experience", Description: "40 years", Icon: "scale"}},
			Testimonials: []models.Testimonial{{Quote: "Great", Author: "J. Doe", Role: "Client"}, {Quote: "Fast", Author: "A. Roe"}},
			CTA:          models.CTASection{Title: "Talk to us", Text: "Free review", ButtonText: "Book", ButtonURL: "/contact"},
		},
		models.PageAbout: models.AboutContent{
			Hero:   sampleHero(),
			Story:  models.Story{Title: "Our story", Body: "Founded..."},
			Values: []models.Value{{Title: "Integrity", Description: "Always"}},
			Team:   []models.TeamMember{{Name: "Ada Harper", Role: "Partner", Bio: "...", ImageURL: "/img/ada.jpg"}},
		},
		models.PageContact: models.ContactContent{
			Hero:        sampleHero(),
			Email:       "info@example.com",
			Phone:       "(555) 555-0123",
			Address:     "100 Main Street",
			OfficeHours: []models.OfficeHours{{Day: "Mon-Fri", Hours: "9-5"}},
			FormTitle:   "Write to us",
			FormIntro:   "We reply within a day",
		},
		models.PagePracticeAreas: models.PracticeAreasContent{
			Hero:  sampleHero(),
			Intro: "We help with",
			Areas: []models.PracticeArea{{Title: "Family Law", Slug: "family-law", Description: "...", Icon: "home"}},
		},
	}
}

func fieldValues(f Form) map[string]string {
	out := make(map[string]string, len(f.Fields))
	for _, fd := range f.Fields {
		out[fd.Name] = fd.Value
	}
	return out
}

func TestRenderSelectsEditorByKey(t *testing.T) {
	for key, doc := range sampleDocs() {
		s := Render(key, doc, nil)
		assert.Equal(t, key, s.Key())
		assert.Equal(t, string(key), s.Form().Editor)
	}

	s := Render("careers", models.RawContent{Key: "careers", Data: []byte(`{}`)}, nil)
	assert.Equal(t, "raw", s.Form().Editor)
}

func TestRenderMismatchedContentUsesRawEditor(t *testing.T) {
	s := Render(models.PageAbout, models.HomeContent{Hero: models.Hero{Title: "x"}}, nil)
	f := s.Form()
	assert.Equal(t, "raw", f.Editor)
	require.Len(t, f.Fields, 1)
	assert.Contains(t, f.Fields[0].Value, `"title": "x"`)
}

func TestRenderNilContentUsesDefault(t *testing.T) {
	s := Render(models.PageContact, nil, nil)
	assert.Equal(t, "contact", s.Form().Editor)
}

// Each field edit reports one replacement document that differs from the
// input only in the edited field.
func TestSetChangesOnlyThatField(t *testing.T) {
	for key, doc := range sampleDocs() {
		before := Render(key, doc, nil).Form()

		for _, fd := range before.Fields {
			t.Run(string(key)+"/"+fd.Name, func(t *testing.T) {
				rec := &recorder{}
				s := Render(key, doc, rec.onChange)

				require.NoError(t, s.Set(fd.Name, "edited value"))
				require.Len(t, rec.calls, 1)

				after := Render(key, rec.calls[0], nil).Form()
				want := fieldValues(before)
				want[fd.Name] = "edited value"
				assert.Equal(t, want, fieldValues(after))
				assert.Equal(t, before.Lists, after.Lists)

				assert.Equal(t, before, Render(key, doc, nil).Form(), "input document must not change")
			})
		}
	}
}

func TestSetNestedField(t *testing.T) {
	doc := sampleDocs()[models.PageHome].(models.HomeContent)
	rec := &recorder{}

	require.NoError(t, Render(models.PageHome, doc, rec.onChange).Set("hero.title", "New title"))
	require.Len(t, rec.calls, 1)

	want := doc
	want.Hero.Title = "New title"
	assert.Equal(t, want, rec.calls[0])
	assert.Equal(t, "Fighting for you", doc.Hero.Title)
}

func TestSetUnknownField(t *testing.T) {
	rec := &recorder{}
	err := Render(models.PageHome, models.HomeContent{}, rec.onChange).Set("hero.color", "red")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Empty(t, rec.calls)
}

func TestAppendBuildsNewSlice(t *testing.T) {
	features := make([]models.Feature, 1, 4)
	features[0] = models.Feature{Title: "Experience"}
	doc := models.HomeContent{Features: features}
	rec := &recorder{}

	require.NoError(t, Render(models.PageHome, doc, rec.onChange).Append("features"))
	require.Len(t, rec.calls, 1)

	got := rec.calls[0].(models.HomeContent)
	require.Len(t, got.Features, 2)
	assert.Equal(t, models.Feature{}, got.Features[1])

	got.Features[0].Title = "Changed"
	assert.Equal(t, "Experience", doc.Features[0].Title)
	assert.Len(t, doc.Features, 1)
}

func TestRemoveByPosition(t *testing.T) {
	doc := sampleDocs()[models.PageHome].(models.HomeContent)
	rec := &recorder{}

	require.NoError(t, Render(models.PageHome, doc, rec.onChange).Remove("testimonials", 0))
	require.Len(t, rec.calls, 1)

	got := rec.calls[0].(models.HomeContent)
	assert.Equal(t, []models.Testimonial{{Quote: "Fast", Author: "A. Roe"}}, got.Testimonials)
	assert.Equal(t, doc.Features, got.Features)
	assert.Len(t, doc.Testimonials, 2)
	assert.Equal(t, "Great", doc.Testimonials[0].Quote)
}

func TestSetItemReplacesAtPosition(t *testing.T) {
	doc := sampleDocs()[models.PageAbout].(models.AboutContent)
	rec := &recorder{}

	require.NoError(t, Render(models.PageAbout, doc, rec.onChange).SetItem("team", 0, "role", "Managing Partner"))
	require.Len(t, rec.calls, 1)

	want := doc
	want.Team = []models.TeamMember{{Name: "Ada Harper", Role: "Managing Partner", Bio: "...", ImageURL: "/img/ada.jpg"}}
	assert.Equal(t, want, rec.calls[0])
	assert.Equal(t, "Partner", doc.Team[0].Role)
}

func TestListErrorsDoNotCallOnChange(t *testing.T) {
	doc := sampleDocs()[models.PageContact]
	rec := &recorder{}
	s := Render(models.PageContact, doc, rec.onChange)

	assert.ErrorIs(t, s.Append("testimonials"), ErrUnknownList)
	assert.ErrorIs(t, s.Remove("office_hours", 5), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.Remove("office_hours", -1), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.SetItem("office_hours", 1, "day", "Sat"), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.SetItem("office_hours", 0, "minutes", "30"), ErrUnknownField)
	assert.Empty(t, rec.calls)
}

func TestFormListsDescribeItems(t *testing.T) {
	f := Render(models.PagePracticeAreas, sampleDocs()[models.PagePracticeAreas], nil).Form()

	require.Len(t, f.Lists, 1)
	areas := f.Lists[0]
	assert.Equal(t, "areas", areas.Name)
	require.Len(t, areas.Fields, 4)
	assert.Empty(t, areas.Fields[0].Value)
	require.Len(t, areas.Items, 1)
	assert.Equal(t, "Family Law", areas.Items[0][0].Value)
}

func TestRawEditorIgnoresInvalidJSON(t *testing.T) {
	rec := &recorder{}
	s := Render("careers", models.RawContent{Key: "careers", Data: []byte(`{"open":true}`)}, rec.onChange)

	for _, text := range []string{`{"open":`, `not json`, ``, `{"a":1}}`} {
		assert.NoError(t, s.Set(DocumentField, text))
	}
	assert.Empty(t, rec.calls)
}

func TestRawEditorAcceptsValidJSON(t *testing.T) {
	rec := &recorder{}
	s := Render("careers", models.RawContent{Key: "careers"}, rec.onChange)

	require.NoError(t, s.Set(DocumentField, "{\n  \"open\": false\n}"))
	require.Len(t, rec.calls, 1)

	got := rec.calls[0].(models.RawContent)
	assert.Equal(t, models.PageKey("careers"), got.Key)
	assert.JSONEq(t, `{"open":false}`, string(got.Data))
}

func TestRawEditorRejectsOtherOperations(t *testing.T) {
	rec := &recorder{}
	s := Render("careers", nil, rec.onChange)

	assert.ErrorIs(t, s.Set("title", "x"), ErrUnknownField)
	assert.ErrorIs(t, s.Append("items"), ErrNotSupported)
	assert.ErrorIs(t, s.Remove("items", 0), ErrNotSupported)
	assert.ErrorIs(t, s.SetItem("items", 0, "a", "b"), ErrNotSupported)
	assert.Empty(t, rec.calls)
}
