package profiles_models

import (
	profiles_enums "devcollab/internal/features/profiles/enums"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is the public developer record. Its ID is the owning user's ID.
type Profile struct {
	ID               uuid.UUID                      `json:"id"               gorm:"column:id"`
	Username         string                         `json:"username"         gorm:"column:username"`
	FullName         *string                        `json:"fullName"         gorm:"column:full_name"`
	Bio              *string                        `json:"bio"              gorm:"column:bio"`
	AvatarURL        *string                        `json:"avatarUrl"        gorm:"column:avatar_url"`
	Location         *string                        `json:"location"         gorm:"column:location"`
	Website          *string                        `json:"website"          gorm:"column:website"`
	GithubURL        *string                        `json:"githubUrl"        gorm:"column:github_url"`
	LinkedinURL      *string                        `json:"linkedinUrl"      gorm:"column:linkedin_url"`
	Skills           datatypes.JSONSlice[string]    `json:"skills"           gorm:"column:skills"`
	ExperienceLevel  profiles_enums.ExperienceLevel `json:"experienceLevel"  gorm:"column:experience_level"`
	AvailableForHire bool                           `json:"availableForHire" gorm:"column:available_for_hire"`
	CreatedAt        time.Time                      `json:"createdAt"        gorm:"column:created_at"`
	UpdatedAt        time.Time                      `json:"updatedAt"        gorm:"column:updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) SearchFields() []string {
	fields := []string{p.Username, valueOrEmpty(p.FullName), valueOrEmpty(p.Bio)}
	return append(fields, p.Skills...)
}

func (p *Profile) Tags() []string {
	return p.Skills
}

func valueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
