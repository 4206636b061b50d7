package search

import (
	"net/http"
	"testing"

	test_utils "devcollab/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func Test_GetPopularTagsView_WhenCollapsed_ShowsFirstEightAndMoreHint(t *testing.T) {
	view := GetPopularTagsView(false)

	assert.Equal(t, []string{
		"React", "TypeScript", "Node.js", "Python", "Vue.js", "Angular", "Next.js", "Express",
	}, view.Tags)
	assert.Equal(t, "+4 more", view.MoreLabel)
}

func Test_GetPopularTagsView_WhenShowAll_ReturnsAllTwelve(t *testing.T) {
	view := GetPopularTagsView(true)

	assert.Len(t, view.Tags, 12)
	assert.Equal(t, "Docker", view.Tags[11])
	assert.Empty(t, view.MoreLabel)
}

func Test_PopularTags_WhenResultModified_CatalogueUnchanged(t *testing.T) {
	tags := PopularTags()
	tags[0] = "COBOL"

	assert.Equal(t, "React", PopularTags()[0])
}

func Test_CountLabel_PluralizesExceptForOne(t *testing.T) {
	assert.Equal(t, "0 projects found", CountLabel(0, "project"))
	assert.Equal(t, "1 project found", CountLabel(1, "project"))
	assert.Equal(t, "4 projects found", CountLabel(4, "project"))
	assert.Equal(t, "2 developers found", CountLabel(2, "developer"))
}

func Test_GetPopularTags_ViaApi_ReturnsCollapsedAndFullViews(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	GetSearchController().RegisterRoutes(router.Group("/api/v1"))

	var collapsed PopularTagsView
	test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/v1/search/tags", "", http.StatusOK, &collapsed)
	assert.Len(t, collapsed.Tags, 8)
	assert.Equal(t, "+4 more", collapsed.MoreLabel)

	var full PopularTagsView
	test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/v1/search/tags?showAll=true", "", http.StatusOK, &full)
	assert.Len(t, full.Tags, 12)
}

func Test_PreviewTags_WhenMoreThanThree_ShowsThreeAndOverflow(t *testing.T) {
	preview := PreviewTags([]string{"React", "Node.js", "MongoDB", "Socket.io", "Redis"})

	assert.Equal(t, []string{"React", "Node.js", "MongoDB"}, preview.Visible)
	assert.Equal(t, 2, preview.Overflow)
	assert.Equal(t, "+2", preview.OverflowLabel)
}

func Test_PreviewTags_WhenThreeOrFewer_ShowsAllWithoutOverflow(t *testing.T) {
	preview := PreviewTags([]string{"Go"})

	assert.Equal(t, []string{"Go"}, preview.Visible)
	assert.Zero(t, preview.Overflow)
	assert.Empty(t, preview.OverflowLabel)

	assert.Equal(t, []string{}, PreviewTags(nil).Visible)
}
