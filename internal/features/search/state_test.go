package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ToggleTag_WhenToggledTwice_RestoresState(t *testing.T) {
	state := FilterState{Query: "app", Tags: []string{"React"}}

	state.ToggleTag("Vue.js")
	assert.Equal(t, []string{"React", "Vue.js"}, state.Tags)

	state.ToggleTag("Vue.js")
	assert.Equal(t, []string{"React"}, state.Tags)
	assert.Equal(t, "app", state.Query)
}

func Test_Clear_WhenFiltersActive_EmptiesQueryAndTags(t *testing.T) {
	state := FilterState{Query: "eco", Tags: []string{"AWS", "Docker"}}
	assert.True(t, state.IsActive())

	state.Clear()

	assert.Equal(t, "", state.Query)
	assert.Empty(t, state.Tags)
	assert.False(t, state.IsActive())
}

func Test_ActiveFilters_WhenQueryAndTagsSet_QueryChipComesFirst(t *testing.T) {
	state := FilterState{Query: "EcoTrack", Tags: []string{"Vue.js", "AWS"}}

	assert.Equal(t, []string{`Search: "EcoTrack"`, "Vue.js", "AWS"}, state.ActiveFilters())
}

func Test_ActiveFilters_WhenOnlyTags_ReturnsTags(t *testing.T) {
	state := FilterState{Tags: []string{"Python"}}

	assert.Equal(t, []string{"Python"}, state.ActiveFilters())
}

func Test_FilterStateFromQuery_WhenRepeatedAndCommaSeparatedTags_ParsesAllOnce(t *testing.T) {
	values := url.Values{
		"q":    {"track"},
		"tags": {"Vue.js,AWS", "AWS", " Docker "},
	}

	state := FilterStateFromQuery(values)

	assert.Equal(t, "track", state.Query)
	assert.Equal(t, []string{"Vue.js", "AWS", "Docker"}, state.Tags)
}

func Test_FilterStateFromQuery_WhenNothingPassed_IsInactive(t *testing.T) {
	state := FilterStateFromQuery(url.Values{})

	assert.False(t, state.IsActive())
	assert.NotNil(t, state.Tags)
}
