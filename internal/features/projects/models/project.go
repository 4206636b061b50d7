package projects_models

import (
	"time"

	profiles_models "devcollab/internal/features/profiles/models"
	projects_enums "devcollab/internal/features/projects/enums"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const UnknownAuthorName = "Unknown"

type Project struct {
	ID                      uuid.UUID                    `json:"id"                      gorm:"column:id"`
	CreatorID               uuid.UUID                    `json:"creatorId"               gorm:"column:creator_id"`
	Title                   string                       `json:"title"                   gorm:"column:title"`
	Description             *string                      `json:"description"             gorm:"column:description"`
	ImageURL                *string                      `json:"imageUrl"                gorm:"column:image_url"`
	DemoURL                 *string                      `json:"demoUrl"                 gorm:"column:demo_url"`
	GithubURL               *string                      `json:"githubUrl"               gorm:"column:github_url"`
	TechStack               datatypes.JSONSlice[string]  `json:"techStack"               gorm:"column:tech_stack"`
	IsPrivate               bool                         `json:"isPrivate"               gorm:"column:is_private"`
	LookingForCollaborators bool                         `json:"lookingForCollaborators" gorm:"column:looking_for_collaborators"`
	Status                  projects_enums.ProjectStatus `json:"status"                  gorm:"column:status"`
	CreatedAt               time.Time                    `json:"createdAt"               gorm:"column:created_at"`
	UpdatedAt               time.Time                    `json:"updatedAt"               gorm:"column:updated_at"`

	// joined rows, loaded with Preload
	Creator       *profiles_models.Profile `json:"creator,omitempty"       gorm:"foreignKey:CreatorID"`
	Likes         []ProjectLike            `json:"likes,omitempty"         gorm:"foreignKey:ProjectID"`
	Collaborators []ProjectCollaborator    `json:"collaborators,omitempty" gorm:"foreignKey:ProjectID"`
}

func (Project) TableName() string {
	return "projects"
}

// AuthorName is the creator's full name, or "Unknown" when the profile or the
// name is missing.
func (p *Project) AuthorName() string {
	if p.Creator == nil || p.Creator.FullName == nil || *p.Creator.FullName == "" {
		return UnknownAuthorName
	}

	return *p.Creator.FullName
}

func (p *Project) SearchFields() []string {
	description := ""
	if p.Description != nil {
		description = *p.Description
	}

	return []string{p.Title, description, p.AuthorName()}
}

func (p *Project) Tags() []string {
	return p.TechStack
}

// IsVisibleTo reports whether viewerID may see the project. Private projects
// are visible to their creator only.
func (p *Project) IsVisibleTo(viewerID uuid.UUID) bool {
	return !p.IsPrivate || (viewerID != uuid.Nil && p.CreatorID == viewerID)
}
