package projects_dto

import (
	projects_enums "devcollab/internal/features/projects/enums"
	"devcollab/internal/features/search"

	"github.com/google/uuid"
)

type ProjectAuthor struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Initials string `json:"initials"`
}

// ProjectCard is the display shape of a project. Views is a random
// placeholder drawn on every projection and is never persisted.
type ProjectCard struct {
	ID                      uuid.UUID                    `json:"id"`
	Title                   string                       `json:"title"`
	Description             string                       `json:"description"`
	Image                   string                       `json:"image"`
	Author                  ProjectAuthor                `json:"author"`
	Tags                    []string                     `json:"tags"`
	TagsPreview             search.TagsPreview           `json:"tagsPreview"`
	IsPrivate               bool                         `json:"isPrivate"`
	LookingForCollaborators bool                         `json:"lookingForCollaborators"`
	Status                  projects_enums.ProjectStatus `json:"status"`
	Likes                   int                          `json:"likes"`
	Views                   int                          `json:"views"`
	Collaborators           int                          `json:"collaborators"`
	CollaboratorsLabel      string                       `json:"collaboratorsLabel"`
}

type ListProjectsResponseDTO struct {
	Projects      []ProjectCard      `json:"projects"`
	Count         int                `json:"count"`
	CountLabel    string             `json:"countLabel"`
	Filters       search.FilterState `json:"filters"`
	ActiveFilters []string           `json:"activeFilters"`
}

type LikeResponseDTO struct {
	ProjectID uuid.UUID `json:"projectId"`
	Liked     bool      `json:"liked"`
	Likes     int       `json:"likes"`
}
