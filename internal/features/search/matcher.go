package search

import "strings"

// Searchable is a directory record that can be matched by free text and tags.
type Searchable interface {
	// SearchFields returns the text fields the query is matched against.
	SearchFields() []string
	// Tags returns the record's tag collection (tech stack, skills...).
	Tags() []string
}

// Matches reports whether record passes both the text and the tag filter.
// Text matching is a case-insensitive substring test; an empty query matches
// everything. Tag matching is OR across tags: any shared tag is enough.
func Matches(record Searchable, query string, tags []string) bool {
	return matchesQuery(record.SearchFields(), query) && matchesTags(record.Tags(), tags)
}

// Filter keeps the records that match, preserving their order.
func Filter[T Searchable](records []T, query string, tags []string) []T {
	filtered := make([]T, 0, len(records))

	for _, record := range records {
		if Matches(record, query, tags) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func matchesQuery(fields []string, query string) bool {
	if query == "" {
		return true
	}

	lowerQuery := strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}

	return false
}

func matchesTags(recordTags []string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}

	for _, tag := range selected {
		for _, recordTag := range recordTags {
			if tag == recordTag {
				return true
			}
		}
	}

	return false
}
