// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"lawsite/internal/database"
	"lawsite/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "lawsite")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "lawsite")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Reset goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// cleanUsers removes test users by email. Call in t.Cleanup().
func cleanUsers(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, email := range emails {
		db.Exec("DELETE FROM users WHERE email = $1", email)
	}
}

// cleanPages removes test page documents by key. Call in t.Cleanup().
func cleanPages(t *testing.T, db *sql.DB, keys ...string) {
	t.Helper()
	for _, key := range keys {
		db.Exec("DELETE FROM page_content WHERE page_key = $1", key)
	}
}

// snapshotSettings removes the global settings row for the duration of a
// test and restores the previous contents afterwards.
func snapshotSettings(t *testing.T, db *sql.DB) {
	t.Helper()
	s := NewSiteSettingsStore(db)
	rows, err := s.FetchSettings(t.Context())
	if err != nil {
		t.Fatalf("snapshot settings: %v", err)
	}
	db.Exec("DELETE FROM site_settings")

	t.Cleanup(func() {
		db.Exec("DELETE FROM site_settings")
		for _, row := range rows {
			upd := models.SettingsFromRow(row).ToUpdate(row.UpdatedBy)
			if err := s.UpdateSettings(context.Background(), upd); err != nil {
				t.Logf("restore settings: %v", err)
			}
		}
	})
}
