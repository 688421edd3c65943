package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hpungsan/bookmark/internal/bookmark"
)

// defaultHeight is used until the terminal reports its size.
const defaultHeight = 20

// Picker is the bubbletea model for choosing one bookmark from a list.
type Picker struct {
	items    []*bookmark.Bookmark
	keys     KeyMap
	maxChars int

	cursor int
	offset int // first visible item
	height int

	chosen    *bookmark.Bookmark
	cancelled bool
}

// NewPicker creates a picker over items, fitting short forms to maxChars.
func NewPicker(items []*bookmark.Bookmark, maxChars int) Picker {
	return Picker{
		items:    items,
		keys:     DefaultKeyMap(),
		maxChars: maxChars,
		height:   defaultHeight,
	}
}

// Chosen returns the picked bookmark, if any.
func (p Picker) Chosen() (*bookmark.Bookmark, bool) {
	return p.chosen, p.chosen != nil
}

// Cursor returns the highlighted index.
func (p Picker) Cursor() int {
	return p.cursor
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for the help line
		p.height = max(msg.Height-2, 1)
		p.scroll()
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			p.cancelled = true
			return p, tea.Quit

		case key.Matches(msg, p.keys.Select):
			if len(p.items) > 0 {
				p.chosen = p.items[p.cursor]
			}
			return p, tea.Quit

		case key.Matches(msg, p.keys.Down):
			if p.cursor < len(p.items)-1 {
				p.cursor++
			}

		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			p.cursor = max(len(p.items)-1, 0)
		}
		p.scroll()
	}

	return p, nil
}

// scroll keeps the cursor inside the visible window.
func (p *Picker) scroll() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.height {
		p.offset = p.cursor - p.height + 1
	}
}

// View implements tea.Model.
func (p Picker) View() string {
	if p.chosen != nil || p.cancelled {
		return ""
	}

	var b strings.Builder
	end := min(p.offset+p.height, len(p.items))
	for i := p.offset; i < end; i++ {
		item := p.items[i]
		marker := "  "
		if i == p.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%3d  %-5s  %s\n", marker, item.Position, item.Content.Kind(), bookmark.Display(item.Content, p.maxChars))
	}
	fmt.Fprintf(&b, "\n%s • %s • %s", p.keys.Down.Help().Key+"/"+p.keys.Up.Help().Key+" move",
		p.keys.Select.Help().Key+" "+p.keys.Select.Help().Desc,
		p.keys.Quit.Help().Key+" "+p.keys.Quit.Help().Desc)
	return b.String()
}
