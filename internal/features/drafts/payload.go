package drafts

import (
	profiles_enums "devcollab/internal/features/profiles/enums"
	profiles_models "devcollab/internal/features/profiles/models"
	projects_models "devcollab/internal/features/projects/models"
	teams_models "devcollab/internal/features/teams/models"

	"github.com/google/uuid"
)

func (d *Draft) toProject(creatorID uuid.UUID) *projects_models.Project {
	return &projects_models.Project{
		CreatorID:               creatorID,
		Title:                   d.requiredText("title"),
		Description:             d.optionalText("description"),
		ImageURL:                d.optionalText("imageUrl"),
		DemoURL:                 d.optionalText("demoUrl"),
		GithubURL:               d.optionalText("githubUrl"),
		TechStack:               d.Items.Items(),
		IsPrivate:               d.Flags["isPrivate"],
		LookingForCollaborators: d.Flags["lookingForCollaborators"],
	}
}

func (d *Draft) toTeam(creatorID uuid.UUID) *teams_models.Team {
	return &teams_models.Team{
		CreatorID:      creatorID,
		Name:           d.requiredText("name"),
		Description:    d.optionalText("description"),
		ImageURL:       d.optionalText("imageUrl"),
		MaxMembers:     d.Numbers["maxMembers"],
		RequiredSkills: d.Items.Items(),
	}
}

// toProfile builds the profile of userID; a profile shares its user's ID.
func (d *Draft) toProfile(userID uuid.UUID) *profiles_models.Profile {
	profile := &profiles_models.Profile{
		ID:               userID,
		Username:         d.requiredText("username"),
		FullName:         d.optionalText("fullName"),
		Bio:              d.optionalText("bio"),
		AvatarURL:        d.optionalText("avatarUrl"),
		Location:         d.optionalText("location"),
		Website:          d.optionalText("website"),
		GithubURL:        d.optionalText("githubUrl"),
		LinkedinURL:      d.optionalText("linkedinUrl"),
		Skills:           d.Items.Items(),
		AvailableForHire: d.Flags["availableForHire"],
	}

	if level := d.optionalText("experienceLevel"); level != nil {
		profile.ExperienceLevel = profiles_enums.ExperienceLevel(*level)
	}

	return profile
}
