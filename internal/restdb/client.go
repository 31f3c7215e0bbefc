// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package restdb reads and writes the site settings record through the
// hosted database's REST endpoint (PostgREST dialect).
package restdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"lawsite/internal/models"
)

const (
	settingsTable  = "site_settings"
	defaultTimeout = 10 * time.Second
)

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	Op      string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("restdb %s: status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("restdb %s: status %d: %s", e.Op, e.Status, e.Message)
}

// Client talks to the REST endpoint with a static API key, sent both as
// the apikey header and as a bearer token.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// New creates a client for the endpoint at baseURL (without /rest/v1).
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// FetchSettings returns the rows matching the global settings key.
func (c *Client) FetchSettings(ctx context.Context) ([]models.SiteSettingsRow, error) {
	q := url.Values{}
	q.Set("settings_key", "eq."+models.SettingsKey)
	q.Set("select", "*")

	body, err := c.do(ctx, "fetch settings", http.MethodGet, q, nil, "")
	if err != nil {
		return nil, err
	}

	var rows []models.SiteSettingsRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("restdb fetch settings: decode: %w", err)
	}
	return rows, nil
}

// UpdateSettings writes upd to the global row, inserting it when the
// record does not exist yet.
func (c *Client) UpdateSettings(ctx context.Context, upd models.SiteSettingsUpdate) error {
	payload, err := json.Marshal(upd)
	if err != nil {
		return fmt.Errorf("restdb update settings: marshal: %w", err)
	}

	q := url.Values{}
	q.Set("settings_key", "eq."+models.SettingsKey)
	body, err := c.do(ctx, "update settings", http.MethodPatch, q, payload, "return=representation")
	if err != nil {
		return err
	}
	if gjson.GetBytes(body, "#").Int() > 0 {
		return nil
	}

	_, err = c.do(ctx, "insert settings", http.MethodPost, nil, payload, "return=minimal")
	return err
}

func (c *Client) do(ctx context.Context, op, method string, q url.Values, payload []byte, prefer string) ([]byte, error) {
	u := c.baseURL + "/rest/v1/" + settingsTable
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("restdb %s: request: %w", op, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("restdb %s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("restdb %s: read body: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: op, Status: resp.StatusCode, Message: errorMessage(body)}
	}
	return body, nil
}

// errorMessage pulls the human-readable message out of an error body.
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return strings.TrimSpace(string(body))
	}
	for _, path := range []string{"message", "error_description", "error", "hint"} {
		if v := gjson.GetBytes(body, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}
