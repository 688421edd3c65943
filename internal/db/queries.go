package db

import (
	"context"
	"database/sql"
	"iter"

	"github.com/hpungsan/bookmark/internal/bookmark"
	"github.com/hpungsan/bookmark/internal/errors"
)

// Insert appends a bookmark. ID and CreatedAt must already be set.
func Insert(ctx context.Context, db *sql.DB, b *bookmark.Bookmark) error {
	if b.Content == nil {
		return errors.NewInvalidRequest("bookmark has no content")
	}

	query := `
		INSERT INTO bookmarks (id, kind, raw, created_at)
		VALUES (?, ?, ?, ?)
	`

	if _, err := db.ExecContext(ctx, query, b.ID, string(b.Content.Kind()), b.Content.Long(), b.CreatedAt); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// List yields all bookmarks in insertion order, assigning Position as it goes.
// Rows are read lazily; stopping the iteration early releases the query.
// Each call runs a fresh query.
func List(ctx context.Context, db *sql.DB) iter.Seq2[*bookmark.Bookmark, error] {
	return func(yield func(*bookmark.Bookmark, error) bool) {
		rows, err := db.QueryContext(ctx, `
			SELECT id, kind, raw, created_at
			FROM bookmarks
			ORDER BY seq ASC
		`)
		if err != nil {
			yield(nil, errors.NewInternal(err))
			return
		}
		defer rows.Close()

		position := 0
		for rows.Next() {
			b, err := scanBookmark(rows)
			if err != nil {
				yield(nil, errors.NewInternal(err))
				return
			}
			b.Position = position
			position++
			if !yield(b, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, errors.NewInternal(err))
		}
	}
}

// DeleteAll removes every bookmark and returns how many were removed.
func DeleteAll(ctx context.Context, db *sql.DB) (int, error) {
	result, err := db.ExecContext(ctx, "DELETE FROM bookmarks")
	if err != nil {
		return 0, errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return int(rowsAffected), nil
}

// scanBookmark scans a single row into a Bookmark, rebuilding its Content.
func scanBookmark(rows *sql.Rows) (*bookmark.Bookmark, error) {
	var (
		b    bookmark.Bookmark
		kind string
		raw  string
	)

	if err := rows.Scan(&b.ID, &kind, &raw, &b.CreatedAt); err != nil {
		return nil, err
	}

	content, err := bookmark.Decode(bookmark.Kind(kind), raw)
	if err != nil {
		return nil, err
	}
	b.Content = content

	return &b, nil
}
