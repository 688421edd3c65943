package ops

import (
	"context"
	"fmt"
	"iter"

	"github.com/hpungsan/bookmark/internal/bookmark"
)

// fakeOS is an in-memory clipboard.
type fakeOS struct {
	clipboard    string
	hasClipboard bool
	selection    string
	hasSelection bool
	writeErr     error
	writes       []string
}

func (f *fakeOS) Clipboard(context.Context) (string, bool) { return f.clipboard, f.hasClipboard }
func (f *fakeOS) Selection(context.Context) (string, bool) { return f.selection, f.hasSelection }

func (f *fakeOS) WriteClipboard(_ context.Context, text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, text)
	f.clipboard, f.hasClipboard = text, true
	return nil
}

// fakePrompter answers confirmations and picks by position (-1 cancels).
type fakePrompter struct {
	confirm   bool
	asked     []string
	pick      int
	pickErr   error
	presented int
}

func (f *fakePrompter) Confirm(msg string) bool {
	f.asked = append(f.asked, msg)
	return f.confirm
}

func (f *fakePrompter) SelectBookmark(_ context.Context, items []*bookmark.Bookmark) (*bookmark.Bookmark, bool, error) {
	f.presented = len(items)
	if f.pickErr != nil {
		return nil, false, f.pickErr
	}
	if f.pick < 0 || f.pick >= len(items) {
		return nil, false, nil
	}
	return items[f.pick], true, nil
}

// memStorage keeps bookmarks in a slice and counts reads.
type memStorage struct {
	items   []*bookmark.Bookmark
	yielded int
	listErr error
}

func (m *memStorage) StoreBookmark(_ context.Context, b *bookmark.Bookmark) error {
	b.ID = fmt.Sprintf("ID%03d", len(m.items))
	b.CreatedAt = int64(1700000000 + len(m.items))
	stored := *b
	m.items = append(m.items, &stored)
	return nil
}

func (m *memStorage) Bookmarks(context.Context) iter.Seq2[*bookmark.Bookmark, error] {
	return func(yield func(*bookmark.Bookmark, error) bool) {
		if m.listErr != nil {
			yield(nil, m.listErr)
			return
		}
		for i, b := range m.items {
			m.yielded++
			out := *b
			out.Position = i
			if !yield(&out, nil) {
				return
			}
		}
	}
}

func (m *memStorage) Clear(context.Context) (int, error) {
	n := len(m.items)
	m.items = nil
	return n, nil
}

// newTestEnv wires fakes into an Env.
func newTestEnv() (*Env, *fakeOS, *fakePrompter, *memStorage) {
	os := &fakeOS{}
	prompter := &fakePrompter{pick: -1}
	storage := &memStorage{}
	return &Env{OS: os, Storage: storage, Prompter: prompter}, os, prompter, storage
}
