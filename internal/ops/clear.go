package ops

import (
	"context"
	"fmt"

	"github.com/hpungsan/bookmark/internal/errors"
	"github.com/hpungsan/bookmark/internal/logging"
)

// ClearPrompt is the confirmation question asked before clearing.
const ClearPrompt = "Are you sure you want to clear bookmarks? THIS IS IRREVERSIBLE!"

// ClearOutput contains the result of the Clear operation.
type ClearOutput struct {
	Cleared int    `json:"cleared"`
	Message string `json:"message"`
}

// Clear removes all bookmarks. Unless yes is set the user is asked first;
// declining leaves storage untouched.
func Clear(ctx context.Context, env *Env, yes bool) (*ClearOutput, error) {
	if !yes {
		yes = env.Prompter.Confirm(ClearPrompt)
	}
	if !yes {
		return nil, errors.NewUserDeclined("clear")
	}

	count, err := env.Storage.Clear(ctx)
	if err != nil {
		return nil, err
	}

	logging.Info("bookmarks cleared", "count", count)

	return &ClearOutput{
		Cleared: count,
		Message: formatClearMessage(count),
	}, nil
}

// formatClearMessage creates a human-readable message for the clear result.
func formatClearMessage(count int) string {
	if count == 0 {
		return "No bookmarks to clear"
	}

	word := "bookmark"
	if count > 1 {
		word = "bookmarks"
	}
	return fmt.Sprintf("Permanently deleted %d %s", count, word)
}
