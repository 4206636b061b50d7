package search

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SearchController struct{}

func (c *SearchController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/search/tags", c.GetPopularTags)
}

// GetPopularTags
// @Summary Get popular technologies
// @Description Tags offered as quick filters. Only the first 8 are returned unless showAll is set
// @Tags search
// @Produce json
// @Param showAll query bool false "Return every tag"
// @Success 200 {object} PopularTagsView
// @Router /search/tags [get]
func (c *SearchController) GetPopularTags(ctx *gin.Context) {
	showAll := ctx.Query("showAll") == "true"

	ctx.JSON(http.StatusOK, GetPopularTagsView(showAll))
}
