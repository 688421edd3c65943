package ops

import (
	"context"

	"github.com/hpungsan/bookmark/internal/bookmark"
	"github.com/hpungsan/bookmark/internal/errors"
	"github.com/hpungsan/bookmark/internal/logging"
)

// SelectOutput contains the result of the Select operations.
type SelectOutput struct {
	Position int           `json:"id"`
	ULID     string        `json:"ulid"`
	Kind     bookmark.Kind `json:"kind"`
	Short    string        `json:"short"`
	Text     string        `json:"text"`
}

// Get returns the bookmark at zero-based position id in listing order.
// It stops reading storage as soon as the position is reached.
func Get(ctx context.Context, env *Env, id int) (*bookmark.Bookmark, error) {
	if id < 0 {
		return nil, errors.NewInvalidRequest("id must be non-negative")
	}

	for b, err := range env.Storage.Bookmarks(ctx) {
		if err != nil {
			return nil, err
		}
		if b.Position == id {
			return b, nil
		}
	}
	return nil, errors.NewNotFound(id)
}

// GetOutput is Get shaped for output, without touching the clipboard.
func GetOutput(ctx context.Context, env *Env, id int) (*SelectOutput, error) {
	b, err := Get(ctx, env, id)
	if err != nil {
		return nil, err
	}
	return env.selectOutput(b), nil
}

// Select copies the long form of the bookmark at position id to the
// clipboard. Nothing is written when the bookmark does not exist.
func Select(ctx context.Context, env *Env, id int) (*SelectOutput, error) {
	b, err := Get(ctx, env, id)
	if err != nil {
		return nil, err
	}
	return env.copyToClipboard(ctx, b)
}

// SelectInteractive lets the user pick a bookmark, then copies it like Select.
func SelectInteractive(ctx context.Context, env *Env) (*SelectOutput, error) {
	var items []*bookmark.Bookmark
	for b, err := range env.Storage.Bookmarks(ctx) {
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	if len(items) == 0 {
		return nil, errors.NewNoContent("bookmarks")
	}

	picked, ok, err := env.Prompter.SelectBookmark(ctx, items)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	if !ok {
		return nil, errors.NewUserDeclined("select")
	}
	return env.copyToClipboard(ctx, picked)
}

func (e *Env) copyToClipboard(ctx context.Context, b *bookmark.Bookmark) (*SelectOutput, error) {
	if err := e.OS.WriteClipboard(ctx, b.Content.Long()); err != nil {
		return nil, errors.NewInternal(err)
	}
	logging.Info("bookmark copied", "id", b.Position, "ulid", b.ID)
	return e.selectOutput(b), nil
}

func (e *Env) selectOutput(b *bookmark.Bookmark) *SelectOutput {
	return &SelectOutput{
		Position: b.Position,
		ULID:     b.ID,
		Kind:     b.Content.Kind(),
		Short:    bookmark.Display(b.Content, e.shortMaxChars()),
		Text:     b.Content.Long(),
	}
}
