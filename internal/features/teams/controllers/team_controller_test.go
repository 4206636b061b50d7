package teams_controllers

import (
	"net/http"
	"testing"

	teams_dto "devcollab/internal/features/teams/dto"
	teams_models "devcollab/internal/features/teams/models"
	teams_services "devcollab/internal/features/teams/services"
	teams_testing "devcollab/internal/features/teams/testing"
	users_testing "devcollab/internal/features/users/testing"
	test_utils "devcollab/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ListTeams_WithQuery_ReturnsTeamCards(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repository := &teams_testing.InMemoryTeamRepository{}
	controller := &TeamController{
		teams_services.NewTeamService(repository, &users_testing.RecordingAuditLogWriter{}),
	}

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api/v1"))

	repository.Seed(&teams_models.Team{Name: "Frontend Guild", MaxMembers: 6, RequiredSkills: []string{"React"}}, 2)
	repository.Seed(&teams_models.Team{Name: "Infra", MaxMembers: 6, RequiredSkills: []string{"AWS"}}, 0)

	var response teams_dto.ListTeamsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/v1/teams?q=react", "", http.StatusOK, &response)

	require.Len(t, response.Teams, 1)
	assert.Equal(t, "Frontend Guild", response.Teams[0].Name)
	assert.Equal(t, 4, response.Teams[0].OpenSeats)
}
