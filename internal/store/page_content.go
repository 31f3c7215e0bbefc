// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"lawsite/internal/models"
)

// PageContentStore persists page documents whole, one row per page key.
type PageContentStore struct {
	db *sql.DB
}

// NewPageContentStore creates a new PageContentStore.
func NewPageContentStore(db *sql.DB) *PageContentStore {
	return &PageContentStore{db: db}
}

func scanPage(r rowScanner) (*models.Page, error) {
	var (
		p    models.Page
		key  string
		data []byte
	)
	if err := r.Scan(&p.ID, &key, &data, &p.UpdatedAt, &p.UpdatedBy); err != nil {
		return nil, err
	}
	p.Key = models.PageKey(key)

	content, err := models.DecodePageContent(p.Key, data)
	if err != nil {
		return nil, err
	}
	p.Content = content
	return &p, nil
}

// Find returns the document stored for key.
func (s *PageContentStore) Find(ctx context.Context, key models.PageKey) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRowContext(ctx, `
		SELECT id, page_key, content, updated_at, updated_by
		FROM page_content WHERE page_key = $1
	`, string(key)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page %s: %w", key, err)
	}
	return p, nil
}

// List returns every stored page ordered by key.
func (s *PageContentStore) List(ctx context.Context) ([]models.Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, page_key, content, updated_at, updated_by
		FROM page_content ORDER BY page_key
	`)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, *p)
	}
	return pages, rows.Err()
}

// Save replaces the document for its page key.
func (s *PageContentStore) Save(ctx context.Context, content models.PageContent, actor *uuid.UUID) (*models.Page, error) {
	data, err := models.EncodePageContent(content)
	if err != nil {
		return nil, err
	}

	p, err := scanPage(s.db.QueryRowContext(ctx, `
		INSERT INTO page_content (page_key, content, updated_at, updated_by)
		VALUES ($1, $2, NOW(), $3)
		ON CONFLICT (page_key) DO UPDATE SET
			content = EXCLUDED.content,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by
		RETURNING id, page_key, content, updated_at, updated_by
	`, string(content.PageKey()), data, actor))
	if err != nil {
		return nil, fmt.Errorf("save page %s: %w", content.PageKey(), err)
	}
	return p, nil
}
