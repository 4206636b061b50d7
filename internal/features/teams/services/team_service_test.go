package teams_services

import (
	"errors"
	"testing"
	"time"

	profiles_models "devcollab/internal/features/profiles/models"
	"devcollab/internal/features/search"
	teams_models "devcollab/internal/features/teams/models"
	teams_testing "devcollab/internal/features/teams/testing"
	users_testing "devcollab/internal/features/users/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(value string) *string {
	return &value
}

func Test_ToTeamCard_WithAbsentOptionalData_UsesDefaults(t *testing.T) {
	card := ToTeamCard(&teams_models.Team{ID: uuid.New(), Name: "Rustaceans", MaxMembers: 5})

	assert.Equal(t, "", card.Description)
	assert.Equal(t, "/placeholder.svg", card.Image)
	assert.Equal(t, "Unknown", card.CreatorName)
	assert.Equal(t, []string{}, card.RequiredSkills)
	assert.Equal(t, 0, card.MemberCount)
	assert.Equal(t, 5, card.OpenSeats)
	assert.True(t, card.IsRecruiting)
}

func Test_ToTeamCard_WhenOverfull_OpenSeatsFlooredAtZero(t *testing.T) {
	repository := &teams_testing.InMemoryTeamRepository{}
	team := repository.Seed(&teams_models.Team{
		Name:       "Crowded",
		MaxMembers: 2,
		Creator:    &profiles_models.Profile{FullName: strPtr("Alex Kim")},
	}, 3)

	card := ToTeamCard(team)

	assert.Equal(t, 3, card.MemberCount)
	assert.Equal(t, 0, card.OpenSeats)
	assert.Equal(t, "Alex Kim", card.CreatorName)
}

func Test_ListTeams_WithSkillTag_ReturnsMatchingTeamsNewestFirst(t *testing.T) {
	repository := &teams_testing.InMemoryTeamRepository{}
	service := NewTeamService(repository, &users_testing.RecordingAuditLogWriter{})
	now := time.Now().UTC()

	repository.Seed(&teams_models.Team{
		Name: "Go Gophers", MaxMembers: 10, RequiredSkills: []string{"Go", "PostgreSQL"}, CreatedAt: now.Add(-2 * time.Hour),
	}, 1)
	repository.Seed(&teams_models.Team{
		Name: "ML Guild", MaxMembers: 10, RequiredSkills: []string{"Python"}, CreatedAt: now.Add(-1 * time.Hour),
	}, 0)
	repository.Seed(&teams_models.Team{
		Name: "Data Crew", MaxMembers: 4, RequiredSkills: []string{"PostgreSQL", "Python"}, CreatedAt: now,
	}, 2)

	response, err := service.ListTeams(search.FilterState{Tags: []string{"PostgreSQL"}})
	require.NoError(t, err)

	require.Len(t, response.Teams, 2)
	assert.Equal(t, "Data Crew", response.Teams[0].Name)
	assert.Equal(t, 2, response.Teams[0].OpenSeats)
	assert.Equal(t, "Go Gophers", response.Teams[1].Name)
	assert.Equal(t, "2 teams found", response.CountLabel)

	response, err = service.ListTeams(search.FilterState{Query: "guild"})
	require.NoError(t, err)
	assert.Equal(t, "1 team found", response.CountLabel)
}

func Test_ListTeams_WhenFetchFails_ReturnsWrappedError(t *testing.T) {
	repository := &teams_testing.InMemoryTeamRepository{FailWith: errors.New("timeout")}
	service := NewTeamService(repository, &users_testing.RecordingAuditLogWriter{})

	_, err := service.ListTeams(search.FilterState{})

	assert.ErrorContains(t, err, "failed to get teams: timeout")
}

func Test_CreateTeam_AppliesDefaultsAndWritesAuditLog(t *testing.T) {
	repository := &teams_testing.InMemoryTeamRepository{}
	auditLogs := &users_testing.RecordingAuditLogWriter{}
	service := NewTeamService(repository, auditLogs)

	err := service.CreateTeam(&teams_models.Team{CreatorID: uuid.New(), Name: "Night Owls"})
	require.NoError(t, err)

	stored := repository.Teams()
	require.Len(t, stored, 1)
	assert.Equal(t, 10, stored[0].MaxMembers)
	assert.Equal(t, "recruiting", string(stored[0].Status))
	assert.NotNil(t, stored[0].RequiredSkills)
	assert.Equal(t, []string{"Team created: Night Owls"}, auditLogs.Messages())
}
