package drafts

import (
	"slices"
	"strings"
)

// ListField is an ordered set of trimmed, non-empty strings. Insertion order
// is kept for display.
type ListField []string

func (f ListField) Contains(item string) bool {
	return slices.Contains(f, strings.TrimSpace(item))
}

// Add appends the trimmed item. Empty or already present items are ignored;
// the result reports whether the field changed.
func (f *ListField) Add(item string) bool {
	item = strings.TrimSpace(item)
	if item == "" || f.Contains(item) {
		return false
	}

	*f = append(*f, item)
	return true
}

// Remove drops the trimmed item; removing an absent item is a no-op.
func (f *ListField) Remove(item string) bool {
	item = strings.TrimSpace(item)
	index := slices.Index(*f, item)
	if index < 0 {
		return false
	}

	*f = slices.Delete(*f, index, index+1)
	return true
}

// Items returns a copy that is never nil.
func (f ListField) Items() []string {
	return append([]string{}, f...)
}
