package search

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// FilterState is the search box text plus the selected technology tags.
type FilterState struct {
	Query string   `json:"query"`
	Tags  []string `json:"tags"`
}

// FilterStateFromQuery reads `q` and repeated `tags` parameters. Tags may
// also be passed comma separated.
func FilterStateFromQuery(values url.Values) FilterState {
	state := FilterState{
		Query: values.Get("q"),
		Tags:  []string{},
	}

	for _, raw := range values["tags"] {
		for _, tag := range strings.Split(raw, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" || slices.Contains(state.Tags, tag) {
				continue
			}

			state.Tags = append(state.Tags, tag)
		}
	}

	return state
}

// ToggleTag selects tag, or deselects it when already selected.
func (s *FilterState) ToggleTag(tag string) {
	if i := slices.Index(s.Tags, tag); i >= 0 {
		s.Tags = slices.Delete(s.Tags, i, i+1)
		return
	}

	s.Tags = append(s.Tags, tag)
}

func (s *FilterState) Clear() {
	s.Query = ""
	s.Tags = []string{}
}

func (s *FilterState) IsActive() bool {
	return s.Query != "" || len(s.Tags) > 0
}

// ActiveFilters returns the chips shown under the search box.
func (s *FilterState) ActiveFilters() []string {
	chips := make([]string, 0, len(s.Tags)+1)

	if s.Query != "" {
		chips = append(chips, fmt.Sprintf("Search: \"%s\"", s.Query))
	}

	return append(chips, s.Tags...)
}
