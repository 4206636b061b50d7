package projects_services

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	projects_dto "devcollab/internal/features/projects/dto"
	projects_enums "devcollab/internal/features/projects/enums"
	projects_models "devcollab/internal/features/projects/models"
	"devcollab/internal/features/search"
)

const (
	PlaceholderImage = "/placeholder.svg"

	maxPlaceholderViews = 1000
)

// ViewsSource yields the placeholder view counter of a card.
type ViewsSource func() int

// RandomViews draws a fresh value in [0, 1000). The counter is not tracked
// anywhere.
func RandomViews() int {
	return rand.IntN(maxPlaceholderViews)
}

// ToProjectCard maps a project row with its joined rows to a card. Counts
// come from the joined arrays.
func ToProjectCard(project *projects_models.Project, views ViewsSource) projects_dto.ProjectCard {
	description := ""
	if project.Description != nil {
		description = *project.Description
	}

	tags := []string{}
	if project.TechStack != nil {
		tags = append(tags, project.TechStack...)
	}

	status := project.Status
	if status == "" {
		status = projects_enums.ProjectStatusActive
	}

	authorName := project.AuthorName()
	collaborators := len(project.Collaborators)

	return projects_dto.ProjectCard{
		ID:          project.ID,
		Title:       project.Title,
		Description: description,
		Image:       valueOrPlaceholder(project.ImageURL),
		Author: projects_dto.ProjectAuthor{
			Name:     authorName,
			Avatar:   authorAvatar(project),
			Initials: Initials(authorName),
		},
		Tags:                    tags,
		TagsPreview:             search.PreviewTags(tags),
		IsPrivate:               project.IsPrivate,
		LookingForCollaborators: project.LookingForCollaborators,
		Status:                  status,
		Likes:                   len(project.Likes),
		Views:                   views(),
		Collaborators:           collaborators,
		CollaboratorsLabel:      CollaboratorsLabel(collaborators),
	}
}

// Initials takes the first letter of every word, e.g. "Sarah Chen" -> "SC".
func Initials(name string) string {
	var initials strings.Builder

	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		initials.WriteRune(r)
	}

	return initials.String()
}

func CollaboratorsLabel(count int) string {
	if count == 1 {
		return "1 collaborator"
	}

	return fmt.Sprintf("%d collaborators", count)
}

func authorAvatar(project *projects_models.Project) string {
	if project.Creator == nil {
		return PlaceholderImage
	}

	return valueOrPlaceholder(project.Creator.AvatarURL)
}

func valueOrPlaceholder(value *string) string {
	if value == nil || *value == "" {
		return PlaceholderImage
	}

	return *value
}
