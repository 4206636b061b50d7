package profiles_services

import (
	"errors"
	"testing"
	"time"

	profiles_dto "devcollab/internal/features/profiles/dto"
	profiles_enums "devcollab/internal/features/profiles/enums"
	profiles_models "devcollab/internal/features/profiles/models"
	profiles_testing "devcollab/internal/features/profiles/testing"
	"devcollab/internal/features/search"
	users_models "devcollab/internal/features/users/models"
	users_testing "devcollab/internal/features/users/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestService() (*ProfileService, *profiles_testing.InMemoryProfileRepository, *users_testing.RecordingAuditLogWriter) {
	repository := &profiles_testing.InMemoryProfileRepository{}
	auditLogs := &users_testing.RecordingAuditLogWriter{}

	return NewProfileService(repository, auditLogs), repository, auditLogs
}

func seedDevelopers(repository *profiles_testing.InMemoryProfileRepository) {
	now := time.Now().UTC()
	repository.Seed(uuid.New(), "schen", "Sarah Chen", []string{"React", "Node.js"}, now.Add(-3*time.Hour))
	repository.Seed(uuid.New(), "mjohnson", "Marcus Johnson", []string{"Python", "TensorFlow"}, now.Add(-2*time.Hour))
	repository.Seed(uuid.New(), "erodriguez", "", []string{"Vue.js", "TypeScript"}, now.Add(-1*time.Hour))
}

func Test_ListDevelopers_WithoutFilters_ReturnsNewestFirst(t *testing.T) {
	service, repository, _ := createTestService()
	seedDevelopers(repository)

	response, err := service.ListDevelopers(search.FilterState{})
	require.NoError(t, err)

	assert.Equal(t, 3, response.Count)
	assert.Equal(t, "3 developers found", response.CountLabel)
	assert.Equal(t, "erodriguez", response.Developers[0].Username)
	assert.Equal(t, "schen", response.Developers[2].Username)
}

func Test_ListDevelopers_WithSkillQuery_MatchesOnSkills(t *testing.T) {
	service, repository, _ := createTestService()
	seedDevelopers(repository)

	response, err := service.ListDevelopers(search.FilterState{Query: "tensor"})
	require.NoError(t, err)

	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "1 developer found", response.CountLabel)
	assert.Equal(t, "Marcus Johnson", response.Developers[0].DisplayName)
}

func Test_ListDevelopers_WithTag_UsesSkillsAsTags(t *testing.T) {
	service, repository, _ := createTestService()
	seedDevelopers(repository)

	filters := search.FilterState{Tags: []string{"Vue.js", "React"}}
	response, err := service.ListDevelopers(filters)
	require.NoError(t, err)

	assert.Equal(t, 2, response.Count)
	assert.Equal(t, []string{"Vue.js", "React"}, response.ActiveFilters)
}

func Test_ListDevelopers_WhenFetchFails_ReturnsWrappedError(t *testing.T) {
	service, repository, _ := createTestService()
	repository.FailWith = errors.New("connection refused")

	_, err := service.ListDevelopers(search.FilterState{})

	assert.ErrorContains(t, err, "failed to get profiles: connection refused")
}

func Test_GetDeveloper_WhenUnknown_ReturnsNotFound(t *testing.T) {
	service, repository, _ := createTestService()
	seedDevelopers(repository)

	_, err := service.GetDeveloper("nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	card, err := service.GetDeveloper("schen")
	require.NoError(t, err)
	assert.Equal(t, "@schen", card.Handle)
}

func Test_GetOwnProfile_WithAnonymousSession_ReturnsNotAuthenticated(t *testing.T) {
	service, _, _ := createTestService()

	_, err := service.GetOwnProfile(users_models.AnonymousSession())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func Test_CreateProfile_AppliesDefaultsAndWritesAuditLog(t *testing.T) {
	service, repository, auditLogs := createTestService()
	session := users_testing.NewTestSession()

	err := service.CreateProfile(&profiles_models.Profile{ID: session.UserID(), Username: "newdev"})
	require.NoError(t, err)

	profile, err := repository.GetProfileByID(session.UserID())
	require.NoError(t, err)
	assert.Equal(t, profiles_enums.ExperienceLevelBeginner, profile.ExperienceLevel)
	assert.NotNil(t, profile.Skills)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.Equal(t, []string{"Profile created: newdev"}, auditLogs.Messages())
}

func Test_UpdateOwnProfile_WithValidRequest_ReplacesFields(t *testing.T) {
	service, repository, _ := createTestService()
	session := users_testing.NewTestSession()
	repository.Seed(session.UserID(), "olddev", "", nil, time.Now().UTC())

	bio := "Rust and Go"
	updated, err := service.UpdateOwnProfile(session, &profiles_dto.UpdateProfileRequestDTO{
		Username:         "  newdev ",
		Bio:              &bio,
		Skills:           []string{"Go", "Rust"},
		ExperienceLevel:  profiles_enums.ExperienceLevelExpert,
		AvailableForHire: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "newdev", updated.Username)
	assert.Equal(t, "Rust and Go", *updated.Bio)
	assert.Equal(t, profiles_enums.ExperienceLevelExpert, updated.ExperienceLevel)

	stored, err := repository.GetProfileByUsername("newdev")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, []string(stored.Skills))
	assert.True(t, stored.AvailableForHire)
}

func Test_UpdateOwnProfile_WithBlankOptionalText_StoresNull(t *testing.T) {
	service, repository, _ := createTestService()
	session := users_testing.NewTestSession()
	repository.Seed(session.UserID(), "mine", "Ada Lovelace", nil, time.Now().UTC())

	blank := ""
	spaces := "   "
	location := "  Berlin "
	_, err := service.UpdateOwnProfile(session, &profiles_dto.UpdateProfileRequestDTO{
		Username: "mine",
		FullName: &blank,
		Bio:      &spaces,
		Website:  &blank,
		Location: &location,
	})
	require.NoError(t, err)

	stored, err := repository.GetProfileByUsername("mine")
	require.NoError(t, err)
	assert.Nil(t, stored.FullName)
	assert.Nil(t, stored.Bio)
	assert.Nil(t, stored.Website)
	require.NotNil(t, stored.Location)
	assert.Equal(t, "Berlin", *stored.Location)
}

func Test_UpdateOwnProfile_WhenUsernameTaken_ReturnsConflictError(t *testing.T) {
	service, repository, _ := createTestService()
	session := users_testing.NewTestSession()
	repository.Seed(session.UserID(), "mine", "", nil, time.Now().UTC())
	repository.Seed(uuid.New(), "taken", "", nil, time.Now().UTC())

	_, err := service.UpdateOwnProfile(session, &profiles_dto.UpdateProfileRequestDTO{Username: "taken"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func Test_UpdateOwnProfile_WithInvalidLevel_ReturnsValidationError(t *testing.T) {
	service, repository, _ := createTestService()
	session := users_testing.NewTestSession()
	repository.Seed(session.UserID(), "mine", "", nil, time.Now().UTC())

	_, err := service.UpdateOwnProfile(session, &profiles_dto.UpdateProfileRequestDTO{
		Username:        "mine",
		ExperienceLevel: "wizard",
	})
	assert.ErrorIs(t, err, ErrInvalidExperienceLevel)

	_, err = service.UpdateOwnProfile(session, &profiles_dto.UpdateProfileRequestDTO{Username: "   "})
	assert.ErrorIs(t, err, ErrUsernameRequired)
}
