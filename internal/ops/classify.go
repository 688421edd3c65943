package ops

import (
	"github.com/hpungsan/bookmark/internal/bookmark"
	"github.com/hpungsan/bookmark/internal/errors"
	"github.com/hpungsan/bookmark/internal/interpret"
)

// ClassifyOutput describes how text would be stored, without storing it.
type ClassifyOutput struct {
	Interpreter string        `json:"interpreter"`
	Kind        bookmark.Kind `json:"kind"`
	Short       string        `json:"short"`
	Text        string        `json:"text"`
}

// Classify reports which interpreter accepts input and what it produces.
func Classify(env *Env, input string) (*ClassifyOutput, error) {
	if isBlank(input) {
		return nil, errors.NewNoContent("input")
	}

	in, ok := interpret.Match(interpret.All(env.DisabledInterpreters...), input)
	if !ok {
		return nil, errors.NewNoInterpreter()
	}
	c := in.Interpret(input)

	return &ClassifyOutput{
		Interpreter: in.Name(),
		Kind:        c.Kind(),
		Short:       bookmark.Display(c, env.shortMaxChars()),
		Text:        c.Long(),
	}, nil
}
