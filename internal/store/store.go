// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides PostgreSQL access for the site content. Each
// store struct wraps a *sql.DB and exposes typed, read-only query methods;
// Catalog bundles them behind the content.Source interface.
package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// base is embedded by every store.
type base struct {
	db *sql.DB
	sq sq.StatementBuilderType
}

func newBase(db *sql.DB) base {
	return base{db: db, sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

// query runs a squirrel select.
func (b base) query(ctx context.Context, q sq.SelectBuilder) (*sql.Rows, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return b.db.QueryContext(ctx, sqlStr, args...)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// byParent groups rows loaded for a set of parents, keeping load order.
type byParent[T any] map[uuid.UUID][]T

func (m byParent[T]) add(parent uuid.UUID, v T) {
	m[parent] = append(m[parent], v)
}
