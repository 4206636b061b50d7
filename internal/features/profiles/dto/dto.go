package profiles_dto

import (
	profiles_enums "devcollab/internal/features/profiles/enums"
	"devcollab/internal/features/search"

	"github.com/google/uuid"
)

type DeveloperLinks struct {
	Website  *string `json:"website,omitempty"`
	Github   *string `json:"github,omitempty"`
	Linkedin *string `json:"linkedin,omitempty"`
}

type DeveloperCard struct {
	ID               uuid.UUID                      `json:"id"`
	Username         string                         `json:"username"`
	DisplayName      string                         `json:"displayName"`
	Handle           string                         `json:"handle"`
	AvatarURL        *string                        `json:"avatarUrl"`
	AvatarFallback   string                         `json:"avatarFallback"`
	Bio              *string                        `json:"bio"`
	Location         *string                        `json:"location"`
	ExperienceLevel  profiles_enums.ExperienceLevel `json:"experienceLevel"`
	ExperienceLabel  string                         `json:"experienceLabel"`
	Skills           []string                       `json:"skills"`
	SkillsPreview    search.TagsPreview             `json:"skillsPreview"`
	Links            DeveloperLinks                 `json:"links"`
	AvailableForHire bool                           `json:"availableForHire"`
}

type ListDevelopersResponseDTO struct {
	Developers    []DeveloperCard    `json:"developers"`
	Count         int                `json:"count"`
	CountLabel    string             `json:"countLabel"`
	Filters       search.FilterState `json:"filters"`
	ActiveFilters []string           `json:"activeFilters"`
}

type UpdateProfileRequestDTO struct {
	Username         string                         `json:"username"         binding:"required"`
	FullName         *string                        `json:"fullName"`
	Bio              *string                        `json:"bio"`
	AvatarURL        *string                        `json:"avatarUrl"`
	Location         *string                        `json:"location"`
	Website          *string                        `json:"website"`
	GithubURL        *string                        `json:"githubUrl"`
	LinkedinURL      *string                        `json:"linkedinUrl"`
	Skills           []string                       `json:"skills"`
	ExperienceLevel  profiles_enums.ExperienceLevel `json:"experienceLevel"`
	AvailableForHire bool                           `json:"availableForHire"`
}
