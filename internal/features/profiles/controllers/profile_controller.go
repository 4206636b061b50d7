package profiles_controllers

import (
	"errors"
	"net/http"

	profiles_dto "devcollab/internal/features/profiles/dto"
	profiles_services "devcollab/internal/features/profiles/services"
	"devcollab/internal/features/search"
	users_middleware "devcollab/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profileService *profiles_services.ProfileService
}

func (c *ProfileController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/developers", c.ListDevelopers)
	router.GET("/developers/:username", c.GetDeveloper)
}

func (c *ProfileController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/profiles/me", c.GetOwnProfile)
	router.PUT("/profiles/me", c.UpdateOwnProfile)
}

// ListDevelopers
// @Summary List developers
// @Description Developer cards filtered by free text (username, name, bio, skills) and skill tags
// @Tags developers
// @Produce json
// @Param q query string false "Search text"
// @Param tags query []string false "Skill tags, any of which must match" collectionFormat(multi)
// @Success 200 {object} profiles_dto.ListDevelopersResponseDTO
// @Failure 500 {object} map[string]string
// @Router /developers [get]
func (c *ProfileController) ListDevelopers(ctx *gin.Context) {
	filters := search.FilterStateFromQuery(ctx.Request.URL.Query())

	response, err := c.profileService.ListDevelopers(filters)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetDeveloper
// @Summary Get developer
// @Description Developer card by username
// @Tags developers
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} profiles_dto.DeveloperCard
// @Failure 404 {object} map[string]string
// @Router /developers/{username} [get]
func (c *ProfileController) GetDeveloper(ctx *gin.Context) {
	card, err := c.profileService.GetDeveloper(ctx.Param("username"))
	if err != nil {
		if errors.Is(err, profiles_services.ErrProfileNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, card)
}

// GetOwnProfile
// @Summary Get own profile
// @Description Profile of the current user
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} profiles_models.Profile
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profiles/me [get]
func (c *ProfileController) GetOwnProfile(ctx *gin.Context) {
	session := users_middleware.GetSessionFromContext(ctx)

	profile, err := c.profileService.GetOwnProfile(session)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UpdateOwnProfile
// @Summary Update own profile
// @Description Replace the editable fields of the current user's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body profiles_dto.UpdateProfileRequestDTO true "Profile data"
// @Success 200 {object} profiles_models.Profile
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /profiles/me [put]
func (c *ProfileController) UpdateOwnProfile(ctx *gin.Context) {
	session := users_middleware.GetSessionFromContext(ctx)

	var request profiles_dto.UpdateProfileRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profile, err := c.profileService.UpdateOwnProfile(session, &request)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, profiles_services.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, profiles_services.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, profiles_services.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, profiles_services.ErrUsernameRequired),
		errors.Is(err, profiles_services.ErrInvalidExperienceLevel):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
