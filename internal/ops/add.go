package ops

import (
	"context"

	"github.com/hpungsan/bookmark/internal/bookmark"
	"github.com/hpungsan/bookmark/internal/errors"
	"github.com/hpungsan/bookmark/internal/interpret"
	"github.com/hpungsan/bookmark/internal/logging"
)

// AddOutput contains the result of the Add operations.
type AddOutput struct {
	ULID        string        `json:"ulid"`
	Kind        bookmark.Kind `json:"kind"`
	Interpreter string        `json:"interpreter"`
	Short       string        `json:"short"`
}

// AddClipboard classifies and stores the clipboard text.
func AddClipboard(ctx context.Context, env *Env) (*AddOutput, error) {
	raw, ok := env.OS.Clipboard(ctx)
	if !ok || isBlank(raw) {
		return nil, errors.NewNoContent("clipboard")
	}
	return add(ctx, env, raw)
}

// AddSelection classifies and stores the primary selection text.
func AddSelection(ctx context.Context, env *Env) (*AddOutput, error) {
	raw, ok := env.OS.Selection(ctx)
	if !ok || isBlank(raw) {
		return nil, errors.NewNoContent("selection")
	}
	return add(ctx, env, raw)
}

// AddInput classifies and stores text given directly by the user.
func AddInput(ctx context.Context, env *Env, input string) (*AddOutput, error) {
	if isBlank(input) {
		return nil, errors.NewNoContent("input")
	}
	return add(ctx, env, input)
}

// add runs the match → interpret → store chain, stopping at the first failure.
func add(ctx context.Context, env *Env, raw string) (*AddOutput, error) {
	in, ok := interpret.Match(interpret.All(env.DisabledInterpreters...), raw)
	if !ok {
		return nil, errors.NewNoInterpreter()
	}

	b := interpret.Interpret(in, raw)
	if err := env.Storage.StoreBookmark(ctx, b); err != nil {
		return nil, err
	}

	logging.Info("bookmark stored", "ulid", b.ID, "interpreter", in.Name())

	return &AddOutput{
		ULID:        b.ID,
		Kind:        b.Content.Kind(),
		Interpreter: in.Name(),
		Short:       bookmark.Display(b.Content, env.shortMaxChars()),
	}, nil
}
