package bookmark

// Bookmark is a stored, classified piece of captured text.
type Bookmark struct {
	// ID is a ULID assigned by storage on append (empty until stored)
	ID string

	// Position is the zero-based ordinal in the current listing order.
	// It is assigned when bookmarks are read and is not a stable key.
	Position int

	// Content is the classified text; never nil for a stored bookmark
	Content Content

	// CreatedAt is the Unix timestamp when the bookmark was stored
	CreatedAt int64
}

// New wraps classified content in an unstored Bookmark.
func New(c Content) *Bookmark {
	return &Bookmark{Content: c}
}

// Summary is the listing view of a bookmark.
type Summary struct {
	Position  int    `json:"id"`
	ULID      string `json:"ulid"`
	Kind      Kind   `json:"kind"`
	Short     string `json:"short"`
	CreatedAt int64  `json:"created_at"`
}

// ToSummary converts a Bookmark to a Summary, fitting the short form
// into maxChars runes.
func (b *Bookmark) ToSummary(maxChars int) Summary {
	return Summary{
		Position:  b.Position,
		ULID:      b.ID,
		Kind:      b.Content.Kind(),
		Short:     Display(b.Content, maxChars),
		CreatedAt: b.CreatedAt,
	}
}
