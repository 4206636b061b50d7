package drafts

import (
	"testing"

	profiles_enums "devcollab/internal/features/profiles/enums"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewDraft_ForTeam_DefaultsMaxMembersToTen(t *testing.T) {
	draft := NewDraft(DraftKindTeam, uuid.New())

	assert.Equal(t, 10, draft.Numbers["maxMembers"])
	assert.Equal(t, "", draft.Text["name"])
	assert.Empty(t, draft.Items)
}

func Test_ApplyEdit_WithKnownFields_UpdatesDraft(t *testing.T) {
	draft := NewDraft(DraftKindProject, uuid.New())

	require.NoError(t, draft.ApplyEdit("title", "TaskFlow"))
	require.NoError(t, draft.ApplyEdit("isPrivate", true))

	assert.Equal(t, "TaskFlow", draft.Text["title"])
	assert.True(t, draft.Flags["isPrivate"])
}

func Test_ApplyEdit_WithUnknownOrMistypedField_LeavesDraftUnchanged(t *testing.T) {
	draft := NewDraft(DraftKindTeam, uuid.New())
	require.NoError(t, draft.ApplyEdit("name", "Gophers"))

	assert.ErrorIs(t, draft.ApplyEdit("title", "Wrong kind"), ErrUnknownField)
	assert.ErrorIs(t, draft.ApplyEdit("name", 42.0), ErrInvalidFieldValue)
	assert.ErrorIs(t, draft.ApplyEdit("maxMembers", "twelve"), ErrInvalidFieldValue)
	assert.ErrorIs(t, draft.ApplyEdit("maxMembers", 12.5), ErrInvalidFieldValue)

	assert.Equal(t, "Gophers", draft.Text["name"])
	assert.Equal(t, 10, draft.Numbers["maxMembers"])
	assert.NotContains(t, draft.Text, "title")
}

func Test_ApplyEdit_WithWholeJsonNumber_SetsNumberField(t *testing.T) {
	draft := NewDraft(DraftKindTeam, uuid.New())

	require.NoError(t, draft.ApplyEdit("maxMembers", 25.0))

	assert.Equal(t, 25, draft.Numbers["maxMembers"])
}

func Test_Validate_WithBlankRequiredField_ReportsFieldError(t *testing.T) {
	project := NewDraft(DraftKindProject, uuid.New())
	require.NoError(t, project.ApplyEdit("title", "   "))
	assert.Equal(t, map[string]string{"title": "Project Title is required"}, project.Validate())

	team := NewDraft(DraftKindTeam, uuid.New())
	assert.Equal(t, "Team Name is required", team.Validate()["name"])

	profile := NewDraft(DraftKindProfile, uuid.New())
	assert.Equal(t, "Username is required", profile.Validate()["username"])
}

func Test_Validate_WithTeamSizeOutOfBounds_ReportsMaxMembers(t *testing.T) {
	draft := NewDraft(DraftKindTeam, uuid.New())
	require.NoError(t, draft.ApplyEdit("name", "Gophers"))

	for _, size := range []float64{1, 51, 0} {
		require.NoError(t, draft.ApplyEdit("maxMembers", size))
		assert.Contains(t, draft.Validate(), "maxMembers")
	}

	for _, size := range []float64{2, 50} {
		require.NoError(t, draft.ApplyEdit("maxMembers", size))
		assert.Empty(t, draft.Validate())
	}
}

func Test_Validate_WithUnknownExperienceLevel_ReportsField(t *testing.T) {
	draft := NewDraft(DraftKindProfile, uuid.New())
	require.NoError(t, draft.ApplyEdit("username", "schen"))
	require.NoError(t, draft.ApplyEdit("experienceLevel", "guru"))

	assert.Contains(t, draft.Validate(), "experienceLevel")
}

func Test_ToProject_WithEmptyOptionalText_SubmitsNil(t *testing.T) {
	creatorID := uuid.New()
	draft := NewDraft(DraftKindProject, creatorID)
	require.NoError(t, draft.ApplyEdit("title", "  EcoTrack  "))
	require.NoError(t, draft.ApplyEdit("demoUrl", "https://ecotrack.dev"))
	require.NoError(t, draft.ApplyEdit("githubUrl", ""))
	require.NoError(t, draft.ApplyEdit("lookingForCollaborators", true))
	draft.AddListItem("Vue.js")

	project := draft.toProject(creatorID)

	assert.Equal(t, "EcoTrack", project.Title)
	assert.Equal(t, creatorID, project.CreatorID)
	assert.Nil(t, project.Description)
	assert.Nil(t, project.ImageURL)
	assert.Nil(t, project.GithubURL)
	require.NotNil(t, project.DemoURL)
	assert.Equal(t, "https://ecotrack.dev", *project.DemoURL)
	assert.Equal(t, []string{"Vue.js"}, []string(project.TechStack))
	assert.True(t, project.LookingForCollaborators)
	assert.False(t, project.IsPrivate)
}

func Test_ToProfile_UsesUserIDAndExperienceLevel(t *testing.T) {
	userID := uuid.New()
	draft := NewDraft(DraftKindProfile, userID)
	require.NoError(t, draft.ApplyEdit("username", "mjohnson"))
	require.NoError(t, draft.ApplyEdit("experienceLevel", "expert"))
	require.NoError(t, draft.ApplyEdit("bio", " "))

	profile := draft.toProfile(userID)

	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, profiles_enums.ExperienceLevelExpert, profile.ExperienceLevel)
	assert.Nil(t, profile.Bio)
	assert.Equal(t, []string{}, []string(profile.Skills))
}

func Test_ToTeam_CarriesSizeAndSkills(t *testing.T) {
	creatorID := uuid.New()
	draft := NewDraft(DraftKindTeam, creatorID)
	require.NoError(t, draft.ApplyEdit("name", "Data Crew"))
	require.NoError(t, draft.ApplyEdit("maxMembers", 4.0))
	draft.AddListItem("Python")
	draft.AddListItem("PostgreSQL")

	team := draft.toTeam(creatorID)

	assert.Equal(t, "Data Crew", team.Name)
	assert.Equal(t, 4, team.MaxMembers)
	assert.Equal(t, []string{"Python", "PostgreSQL"}, []string(team.RequiredSkills))
	assert.Nil(t, team.Description)
}
