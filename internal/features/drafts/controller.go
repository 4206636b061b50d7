package drafts

import (
	"errors"
	"net/http"

	users_middleware "devcollab/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DraftController struct {
	draftService *DraftService
}

func (c *DraftController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/drafts/forms/:kind", c.GetForm)
}

func (c *DraftController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	draftRoutes := router.Group("/drafts")

	draftRoutes.POST("", c.CreateDraft)
	draftRoutes.GET("/:id", c.GetDraft)
	draftRoutes.PATCH("/:id", c.ApplyEdit)
	draftRoutes.POST("/:id/items", c.AddListItem)
	draftRoutes.DELETE("/:id/items", c.RemoveListItem)
	draftRoutes.POST("/:id/submit", c.Submit)
}

// GetForm
// @Summary Get creation form
// @Description Empty form for signed-in users, a sign-in prompt for anonymous ones
// @Tags drafts
// @Produce json
// @Param kind path string true "project, team or profile"
// @Success 200 {object} drafts.FormResponseDTO
// @Failure 400 {object} map[string]string
// @Router /drafts/forms/{kind} [get]
func (c *DraftController) GetForm(ctx *gin.Context) {
	response, err := c.draftService.GetForm(
		users_middleware.GetSessionFromContext(ctx),
		DraftKind(ctx.Param("kind")),
	)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// CreateDraft
// @Summary Create draft
// @Description Start an empty draft of the given kind
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body drafts.CreateDraftRequestDTO true "Draft kind"
// @Success 201 {object} drafts.Draft
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /drafts [post]
func (c *DraftController) CreateDraft(ctx *gin.Context) {
	var request CreateDraftRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	draft, err := c.draftService.CreateDraft(users_middleware.GetSessionFromContext(ctx), request.Kind)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, draft)
}

// GetDraft
// @Summary Get draft
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} drafts.Draft
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /drafts/{id} [get]
func (c *DraftController) GetDraft(ctx *gin.Context) {
	draftID, ok := parseDraftID(ctx)
	if !ok {
		return
	}

	draft, err := c.draftService.GetDraft(users_middleware.GetSessionFromContext(ctx), draftID)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, draft)
}

// ApplyEdit
// @Summary Edit draft field
// @Description Apply one field-edit event. Unknown fields and wrongly typed values are rejected
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body drafts.EditFieldRequestDTO true "Field and value"
// @Success 200 {object} drafts.Draft
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id} [patch]
func (c *DraftController) ApplyEdit(ctx *gin.Context) {
	draftID, ok := parseDraftID(ctx)
	if !ok {
		return
	}

	var request EditFieldRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	draft, err := c.draftService.ApplyEdit(users_middleware.GetSessionFromContext(ctx), draftID, &request)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, draft)
}

// AddListItem
// @Summary Add list item
// @Description Add a tech stack entry or skill. Duplicates and blank items are ignored
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body drafts.ListItemRequestDTO true "Item"
// @Success 200 {object} drafts.Draft
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id}/items [post]
func (c *DraftController) AddListItem(ctx *gin.Context) {
	draftID, ok := parseDraftID(ctx)
	if !ok {
		return
	}

	var request ListItemRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	draft, err := c.draftService.AddListItem(users_middleware.GetSessionFromContext(ctx), draftID, request.Item)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, draft)
}

// RemoveListItem
// @Summary Remove list item
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param item query string true "Item"
// @Success 200 {object} drafts.Draft
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id}/items [delete]
func (c *DraftController) RemoveListItem(ctx *gin.Context) {
	draftID, ok := parseDraftID(ctx)
	if !ok {
		return
	}

	// items may contain slashes ("CI/CD"), so they travel in the query
	item, ok := ctx.GetQuery("item")
	if !ok || item == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Item is required"})
		return
	}

	draft, err := c.draftService.RemoveListItem(users_middleware.GetSessionFromContext(ctx), draftID, item)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, draft)
}

// Submit
// @Summary Submit draft
// @Description Validate required fields and create the record with a single insert
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 201 {object} drafts.SubmitResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} drafts.SubmitResponseDTO
// @Failure 429 {object} drafts.SubmitResponseDTO
// @Failure 502 {object} drafts.SubmitResponseDTO
// @Router /drafts/{id}/submit [post]
func (c *DraftController) Submit(ctx *gin.Context) {
	draftID, ok := parseDraftID(ctx)
	if !ok {
		return
	}

	response, err := c.draftService.Submit(users_middleware.GetSessionFromContext(ctx), draftID)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(statusForOutcome(response.Outcome), response)
}

func parseDraftID(ctx *gin.Context) (uuid.UUID, bool) {
	draftID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draft ID"})
		return uuid.Nil, false
	}

	return draftID, true
}

func statusForOutcome(outcome SubmitOutcome) int {
	switch outcome {
	case SubmitOutcomeCreated:
		return http.StatusCreated
	case SubmitOutcomeInvalid:
		return http.StatusUnprocessableEntity
	case SubmitOutcomeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDraftNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDraftStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrInvalidDraftKind),
		errors.Is(err, ErrUnknownField),
		errors.Is(err, ErrInvalidFieldValue):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
