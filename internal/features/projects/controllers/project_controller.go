package projects_controllers

import (
	"errors"
	"net/http"

	projects_services "devcollab/internal/features/projects/services"
	"devcollab/internal/features/search"
	users_middleware "devcollab/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectController struct {
	projectService *projects_services.ProjectService
}

func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projectRoutes := router.Group("/projects")

	projectRoutes.GET("", c.ListProjects)
	projectRoutes.GET("/:id", c.GetProject)
}

func (c *ProjectController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	projectRoutes := router.Group("/projects")

	projectRoutes.POST("/:id/like", c.LikeProject)
	projectRoutes.DELETE("/:id/like", c.UnlikeProject)
}

// ListProjects
// @Summary List projects
// @Description Project cards filtered by free text (title, description, author) and technology tags
// @Tags projects
// @Produce json
// @Param q query string false "Search text"
// @Param tags query []string false "Technology tags, any of which must match" collectionFormat(multi)
// @Success 200 {object} projects_dto.ListProjectsResponseDTO
// @Failure 500 {object} map[string]string
// @Router /projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	session := users_middleware.GetSessionFromContext(ctx)
	filters := search.FilterStateFromQuery(ctx.Request.URL.Query())

	response, err := c.projectService.ListProjects(session, filters)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProject
// @Summary Get project
// @Description One project card. Private projects are only visible to their creator
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} projects_dto.ProjectCard
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	card, err := c.projectService.GetProject(users_middleware.GetSessionFromContext(ctx), projectID)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, card)
}

// LikeProject
// @Summary Like project
// @Description Like a project. Liking twice keeps a single like
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} projects_dto.LikeResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/like [post]
func (c *ProjectController) LikeProject(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	response, err := c.projectService.LikeProject(users_middleware.GetSessionFromContext(ctx), projectID)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UnlikeProject
// @Summary Unlike project
// @Description Remove the current user's like
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} projects_dto.LikeResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/like [delete]
func (c *ProjectController) UnlikeProject(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	response, err := c.projectService.UnlikeProject(users_middleware.GetSessionFromContext(ctx), projectID)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, projects_services.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, projects_services.ErrProjectNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
