package projects_controllers

import (
	"fmt"
	"net/http"
	"testing"

	projects_dto "devcollab/internal/features/projects/dto"
	projects_services "devcollab/internal/features/projects/services"
	projects_testing "devcollab/internal/features/projects/testing"
	users_middleware "devcollab/internal/features/users/middleware"
	users_testing "devcollab/internal/features/users/testing"
	test_utils "devcollab/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ListProjects_WithTagsQueryParam_ReturnsMatchingCards(t *testing.T) {
	router, _, repository := createProjectTestRouter()
	projects_testing.SeedSampleProjects(repository)

	var response projects_dto.ListProjectsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/projects?tags=Vue.js&tags=Next.js", "", http.StatusOK, &response,
	)

	require.Equal(t, 2, response.Count)
	assert.Equal(t, "2 projects found", response.CountLabel)
	assert.Equal(t, "EcoTrack - Sustainability Platform", response.Projects[0].Title)
	assert.Equal(t, "DevPortfolio Generator", response.Projects[1].Title)
	assert.Equal(t, []string{"Vue.js", "Next.js"}, response.ActiveFilters)
}

func Test_ListProjects_WhenNothingMatches_ReturnsEmptyList(t *testing.T) {
	router, _, repository := createProjectTestRouter()
	projects_testing.SeedSampleProjects(repository)

	resp := test_utils.MakeGetRequest(t, router, "/api/v1/projects?q=cobol", "", http.StatusOK)

	assert.Contains(t, string(resp.Body), `"projects":[]`)
	assert.Contains(t, string(resp.Body), `"countLabel":"0 projects found"`)
}

func Test_GetProject_WithInvalidID_ReturnsBadRequest(t *testing.T) {
	router, _, _ := createProjectTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/projects/not-a-uuid", "", http.StatusBadRequest)
	test_utils.MakeGetRequest(t, router, "/api/v1/projects/"+uuid.New().String(), "", http.StatusNotFound)
}

func Test_GetProject_WhenPrivate_VisibleToCreatorOnly(t *testing.T) {
	router, userEnv, repository := createProjectTestRouter()
	seeded := projects_testing.SeedSampleProjects(repository)
	creator, creatorToken := userEnv.CreateTestUser()
	_, otherToken := userEnv.CreateTestUser()

	private := seeded[2]
	private.CreatorID = creator.ID
	url := fmt.Sprintf("/api/v1/projects/%s", private.ID)

	test_utils.MakeGetRequest(t, router, url, "", http.StatusNotFound)
	test_utils.MakeGetRequest(t, router, url, otherToken, http.StatusNotFound)

	var card projects_dto.ProjectCard
	test_utils.MakeGetRequestAndUnmarshal(t, router, url, creatorToken, http.StatusOK, &card)
	assert.True(t, card.IsPrivate)
	assert.Equal(t, "AI Code Review Assistant", card.Title)
}

func Test_LikeProject_ViaApi_LikeCountedOnceAndRemoved(t *testing.T) {
	router, userEnv, repository := createProjectTestRouter()
	seeded := projects_testing.SeedSampleProjects(repository)
	_, token := userEnv.CreateTestUser()
	url := fmt.Sprintf("/api/v1/projects/%s/like", seeded[0].ID)

	var response projects_dto.LikeResponseDTO
	test_utils.MakePostRequestAndUnmarshal(t, router, url, token, nil, http.StatusOK, &response)
	test_utils.MakePostRequestAndUnmarshal(t, router, url, token, nil, http.StatusOK, &response)
	assert.Equal(t, 1, response.Likes)

	resp := test_utils.MakeDeleteRequest(t, router, url, token, http.StatusOK)
	assert.Contains(t, string(resp.Body), `"likes":0`)
}

func Test_LikeProject_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router, _, repository := createProjectTestRouter()
	seeded := projects_testing.SeedSampleProjects(repository)

	url := fmt.Sprintf("/api/v1/projects/%s/like", seeded[0].ID)
	test_utils.MakePostRequest(t, router, url, "", nil, http.StatusUnauthorized)
}

func createProjectTestRouter() (*gin.Engine, *users_testing.TestUserEnv, *projects_testing.InMemoryProjectRepository) {
	gin.SetMode(gin.TestMode)
	userEnv := users_testing.NewTestUserEnv()
	repository := &projects_testing.InMemoryProjectRepository{}

	controller := &ProjectController{
		projects_services.NewProjectService(repository, userEnv.AuditLogs, projects_services.RandomViews),
	}

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.Use(users_middleware.SessionMiddleware(userEnv.Service))
	controller.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(users_middleware.RequireSession())
	controller.RegisterProtectedRoutes(protected)

	return router, userEnv, repository
}
