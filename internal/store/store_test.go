// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"annecy/internal/database"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "annecy")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "annecy")
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

	t.Cleanup(func() { db.Close() })
	return db
}

// fixture inserts rows with fresh ids and removes them when the test ends.
// Rows are inserted one statement at a time so seq columns follow call
// order.
type fixture struct {
	t  *testing.T
	db *sql.DB

	categories []uuid.UUID
	authors    []uuid.UUID
	articles   []uuid.UUID
	places     []uuid.UUID
}

func newFixture(t *testing.T, db *sql.DB) *fixture {
	f := &fixture{t: t, db: db}
	t.Cleanup(f.clean)
	return f
}

func (f *fixture) exec(query string, args ...any) {
	f.t.Helper()
	if _, err := f.db.ExecContext(context.Background(), query, args...); err != nil {
		f.t.Fatalf("fixture: %v\n%s", err, query)
	}
}

func (f *fixture) category(parent *uuid.UUID, order int) uuid.UUID {
	f.t.Helper()
	id := uuid.New()
	f.exec(`INSERT INTO categories (id, slug, parent_id, display_order) VALUES ($1, $2, $3, $4)`,
		id, "test-"+id.String(), parent, order)
	f.categories = append(f.categories, id)
	return id
}

func (f *fixture) categoryTranslation(category uuid.UUID, lang, name, slug string) {
	f.t.Helper()
	f.exec(`INSERT INTO category_translations (category_id, lang_code, name, seo_slug) VALUES ($1, $2, $3, $4)`,
		category, lang, name, slug)
}

func (f *fixture) author(social string) uuid.UUID {
	f.t.Helper()
	id := uuid.New()
	f.exec(`INSERT INTO authors (id, slug, name, social_links) VALUES ($1, $2, $3, $4)`,
		id, "author-"+id.String(), "Test Author", social)
	f.authors = append(f.authors, id)
	return id
}

func (f *fixture) article(category uuid.UUID, status string, published *time.Time) uuid.UUID {
	f.t.Helper()
	id := uuid.New()
	f.exec(`INSERT INTO articles (id, category_id, status, publication_date, article_seo_slug) VALUES ($1, $2, $3, $4, $5)`,
		id, category, status, published, "legacy-"+id.String())
	f.articles = append(f.articles, id)
	return id
}

func (f *fixture) articleTranslation(article uuid.UUID, lang, name, slug string) uuid.UUID {
	f.t.Helper()
	id := uuid.New()
	f.exec(`INSERT INTO article_translations (id, article_id, lang_code, name, seo_slug, content) VALUES ($1, $2, $3, $4, $5, $6)`,
		id, article, lang, name, slug, "# "+name)
	return id
}

func (f *fixture) related(from, to uuid.UUID) {
	f.t.Helper()
	f.exec(`INSERT INTO article_related_articles (article_id, related_article_id) VALUES ($1, $2)`, from, to)
}

func (f *fixture) place(category uuid.UUID, created time.Time) uuid.UUID {
	f.t.Helper()
	id := uuid.New()
	f.exec(`INSERT INTO places (id, category_id, status, slug, created_at) VALUES ($1, $2, 'published', $3, $4)`,
		id, category, "place-"+id.String(), created)
	f.places = append(f.places, id)
	return id
}

func (f *fixture) comment(article uuid.UUID, parent *uuid.UUID, status string, created time.Time, deleted bool) uuid.UUID {
	f.t.Helper()
	id := uuid.New()
	var deletedAt *time.Time
	if deleted {
		deletedAt = &created
	}
	f.exec(`INSERT INTO comments (id, article_id, parent_comment_id, author_name, content, status, created_at, deleted_at)
		VALUES ($1, $2, $3, 'Test', 'hello', $4, $5, $6)`,
		id, article, parent, status, created, deletedAt)
	return id
}

func (f *fixture) clean() {
	ctx := context.Background()
	for _, id := range f.articles {
		f.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	}
	for _, id := range f.places {
		f.db.ExecContext(ctx, "DELETE FROM places WHERE id = $1", id)
	}
	for _, id := range f.authors {
		f.db.ExecContext(ctx, "DELETE FROM authors WHERE id = $1", id)
	}
	// Children first.
	for i := len(f.categories) - 1; i >= 0; i-- {
		f.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", f.categories[i])
	}
}
