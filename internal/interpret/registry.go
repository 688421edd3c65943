package interpret

import "slices"

// Registry names, in priority order.
const (
	NameLink  = "link"
	NameURL   = "url"
	NameEmail = "email"
	NamePath  = "path"
	NameText  = "text"
)

// registry builds the interpreters in priority order. Narrow shapes come
// first; text matches everything and must stay last.
func registry() []Interpreter {
	return []Interpreter{
		Link{},
		URL{},
		Email{},
		Path{},
		Text{},
	}
}

// All returns a freshly built, priority-ordered interpreter list without the
// named interpreters. The text interpreter is always kept as the last entry.
func All(disabled ...string) []Interpreter {
	all := registry()
	if len(disabled) == 0 {
		return all
	}
	kept := make([]Interpreter, 0, len(all))
	for _, in := range all {
		if in.Name() != NameText && slices.Contains(disabled, in.Name()) {
			continue
		}
		kept = append(kept, in)
	}
	return kept
}

// Names returns the interpreter names in priority order.
func Names() []string {
	all := registry()
	names := make([]string, len(all))
	for i, in := range all {
		names[i] = in.Name()
	}
	return names
}

// ValidateDisabled returns the names that cannot be disabled: unknown
// interpreters and the terminal text interpreter.
func ValidateDisabled(names []string) []string {
	known := Names()
	invalid := make([]string, 0)
	for _, name := range names {
		if name == NameText || !slices.Contains(known, name) {
			invalid = append(invalid, name)
		}
	}
	return invalid
}
