package ops

import (
	"context"

	"github.com/hpungsan/bookmark/internal/bookmark"
)

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items []bookmark.Summary `json:"items"`
	Total int                `json:"total"`
}

// List returns summaries of all bookmarks in listing order.
func List(ctx context.Context, env *Env) (*ListOutput, error) {
	items := []bookmark.Summary{}
	for b, err := range env.Storage.Bookmarks(ctx) {
		if err != nil {
			return nil, err
		}
		items = append(items, b.ToSummary(env.shortMaxChars()))
	}

	return &ListOutput{
		Items: items,
		Total: len(items),
	}, nil
}
