package teams_controllers

import (
	"net/http"

	"devcollab/internal/features/search"
	teams_services "devcollab/internal/features/teams/services"

	"github.com/gin-gonic/gin"
)

type TeamController struct {
	teamService *teams_services.TeamService
}

func (c *TeamController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/teams", c.ListTeams)
}

// ListTeams
// @Summary List teams
// @Description Team cards filtered by free text (name, description, skills) and required skill tags
// @Tags teams
// @Produce json
// @Param q query string false "Search text"
// @Param tags query []string false "Skill tags, any of which must match" collectionFormat(multi)
// @Success 200 {object} teams_dto.ListTeamsResponseDTO
// @Failure 500 {object} map[string]string
// @Router /teams [get]
func (c *TeamController) ListTeams(ctx *gin.Context) {
	filters := search.FilterStateFromQuery(ctx.Request.URL.Query())

	response, err := c.teamService.ListTeams(filters)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
