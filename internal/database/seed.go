// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"lawsite/internal/models"
	"lawsite/internal/slug"
)

const (
	seedAdminEmail    = "admin@lawsite.local"
	seedAdminPassword = "admin"
)

// Seed populates the database with initial development data: a default
// admin user (2FA enrollment pending) and a starter document for every
// page that has none. No settings row is created, so the built-in
// defaults are served until an admin saves the settings form.
func Seed(db *sql.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedPages(db)
}

func seedAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		slog.Info("users already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, seedAdminEmail, string(hash), "Admin", string(models.RoleAdmin), false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", seedAdminEmail,
		"password", seedAdminPassword,
	)
	return nil
}

func seedPages(db *sql.DB) error {
	for _, doc := range starterPages() {
		data, err := models.EncodePageContent(doc)
		if err != nil {
			return fmt.Errorf("seed page: %w", err)
		}
		res, err := db.Exec(`
			INSERT INTO page_content (page_key, content)
			VALUES ($1, $2)
			ON CONFLICT (page_key) DO NOTHING
		`, string(doc.PageKey()), data)
		if err != nil {
			return fmt.Errorf("seed page %s: %w", doc.PageKey(), err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			slog.Info("seeded page content", "page", doc.PageKey())
		}
	}
	return nil
}

func starterPages() []models.PageContent {
	return []models.PageContent{
		models.HomeContent{
			Hero: models.Hero{
				Title:    "Experienced advocates on your side",
				Subtitle: "Personal injury, family law, criminal defense and estate planning.",
				CTAText:  "Free Consultation",
				CTAURL:   "/contact",
			},
			Features: []models.Feature{
				{Title: "No fee unless we win", Description: "Injury cases are handled on contingency.", Icon: "scale"},
				{Title: "Available 24/7", Description: "Call any time and speak to a person.", Icon: "phone"},
			},
			CTA: models.CTASection{Title: "Talk to a lawyer today", ButtonText: "Contact us", ButtonURL: "/contact"},
		},
		models.AboutContent{
			Hero:  models.Hero{Title: "About the firm"},
			Story: models.Story{Title: "Our story", Body: "Founded to give everyday people access to first-rate counsel."},
		},
		models.ContactContent{
			Hero:        models.Hero{Title: "Contact us"},
			OfficeHours: []models.OfficeHours{{Day: "Monday - Friday", Hours: "8:00 - 18:00"}},
			FormTitle:   "Request a consultation",
		},
		models.PracticeAreasContent{
			Hero:  models.Hero{Title: "Practice areas"},
			Areas: starterAreas("Personal Injury", "Family Law", "Criminal Defense", "Estate Planning"),
		},
	}
}

// starterAreas names each practice area by its title; the slugs match the
// anchors used by the default footer links.
func starterAreas(titles ...string) []models.PracticeArea {
	areas := make([]models.PracticeArea, len(titles))
	for i, t := range titles {
		areas[i] = models.PracticeArea{Title: t, Slug: slug.Generate(t)}
	}
	return areas
}
