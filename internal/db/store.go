package db

import (
	"context"
	"crypto/rand"
	"database/sql"
	"iter"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/bookmark/internal/bookmark"
	"github.com/hpungsan/bookmark/internal/errors"
)

// Store is the SQLite-backed bookmark storage.
type Store struct {
	db  *sql.DB
	now func() time.Time

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewStore wraps an initialized database.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:      db,
		now:     time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// StoreBookmark appends b, assigning its ID and CreatedAt.
func (s *Store) StoreBookmark(ctx context.Context, b *bookmark.Bookmark) error {
	now := s.now()

	s.mu.Lock()
	id, err := ulid.New(ulid.Timestamp(now), s.entropy)
	s.mu.Unlock()
	if err != nil {
		return errors.NewInternal(err)
	}

	stored := *b
	stored.ID = id.String()
	stored.CreatedAt = now.Unix()
	if err := Insert(ctx, s.db, &stored); err != nil {
		return err
	}

	b.ID = stored.ID
	b.CreatedAt = stored.CreatedAt
	return nil
}

// Bookmarks yields stored bookmarks in insertion order.
func (s *Store) Bookmarks(ctx context.Context) iter.Seq2[*bookmark.Bookmark, error] {
	return List(ctx, s.db)
}

// Clear removes all bookmarks. It cannot be undone.
func (s *Store) Clear(ctx context.Context) (int, error) {
	return DeleteAll(ctx, s.db)
}
