package projects_services

import (
	"testing"

	profiles_models "devcollab/internal/features/profiles/models"
	projects_models "devcollab/internal/features/projects/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func fixedViews(value int) ViewsSource {
	return func() int { return value }
}

func Test_ToProjectCard_WithAbsentOptionalData_UsesDefaults(t *testing.T) {
	project := &projects_models.Project{
		ID:        uuid.New(),
		CreatorID: uuid.New(),
		Title:     "Bare project",
	}

	card := ToProjectCard(project, fixedViews(7))

	assert.Equal(t, "", card.Description)
	assert.Equal(t, PlaceholderImage, card.Image)
	assert.Equal(t, "Unknown", card.Author.Name)
	assert.Equal(t, PlaceholderImage, card.Author.Avatar)
	assert.Equal(t, "U", card.Author.Initials)
	assert.Equal(t, []string{}, card.Tags)
	assert.Equal(t, []string{}, card.TagsPreview.Visible)
	assert.Equal(t, 0, card.Likes)
	assert.Equal(t, 0, card.Collaborators)
	assert.Equal(t, "0 collaborators", card.CollaboratorsLabel)
	assert.Equal(t, 7, card.Views)
}

func Test_ToProjectCard_WithProfileWithoutName_UsesUnknownAuthor(t *testing.T) {
	emptyName := ""
	project := &projects_models.Project{
		Title:   "Nameless",
		Creator: &profiles_models.Profile{Username: "ghost", FullName: &emptyName},
	}

	card := ToProjectCard(project, fixedViews(0))

	assert.Equal(t, "Unknown", card.Author.Name)
}

func Test_ToProjectCard_CountsComeFromJoinedRows(t *testing.T) {
	fullName := "Sarah Chen"
	avatar := "https://cdn.example.com/sarah.png"
	image := "https://cdn.example.com/taskflow.png"
	project := &projects_models.Project{
		ID:        uuid.New(),
		Title:     "TaskFlow",
		ImageURL:  &image,
		TechStack: []string{"React", "Node.js", "MongoDB", "Socket.io"},
		IsPrivate: true,
		Creator:   &profiles_models.Profile{FullName: &fullName, AvatarURL: &avatar},
		Likes: []projects_models.ProjectLike{
			{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()},
		},
		Collaborators: []projects_models.ProjectCollaborator{{ID: uuid.New()}},
	}

	card := ToProjectCard(project, fixedViews(0))

	assert.Equal(t, image, card.Image)
	assert.Equal(t, "Sarah Chen", card.Author.Name)
	assert.Equal(t, avatar, card.Author.Avatar)
	assert.Equal(t, "SC", card.Author.Initials)
	assert.Equal(t, 3, card.Likes)
	assert.Equal(t, 1, card.Collaborators)
	assert.Equal(t, "1 collaborator", card.CollaboratorsLabel)
	assert.Equal(t, []string{"React", "Node.js", "MongoDB"}, card.TagsPreview.Visible)
	assert.Equal(t, "+1", card.TagsPreview.OverflowLabel)
	assert.True(t, card.IsPrivate)
}

func Test_ToProjectCard_WhenProjectedTwice_OnlyViewsMayDiffer(t *testing.T) {
	description := "Track your carbon footprint"
	project := &projects_models.Project{
		ID:          uuid.New(),
		Title:       "EcoTrack",
		Description: &description,
		TechStack:   []string{"Vue.js"},
		Likes:       []projects_models.ProjectLike{{ID: uuid.New()}},
	}

	first := ToProjectCard(project, RandomViews)
	second := ToProjectCard(project, RandomViews)

	first.Views, second.Views = 0, 0
	assert.Equal(t, first, second)
}

func Test_RandomViews_StaysWithinPlaceholderRange(t *testing.T) {
	for range 500 {
		views := RandomViews()
		assert.GreaterOrEqual(t, views, 0)
		assert.Less(t, views, 1000)
	}
}

func Test_Initials_TakesFirstLetterOfEachWord(t *testing.T) {
	assert.Equal(t, "ER", Initials("Emma Rodriguez"))
	assert.Equal(t, "MJ", Initials("  Marcus   Johnson "))
	assert.Equal(t, "", Initials(""))
}
