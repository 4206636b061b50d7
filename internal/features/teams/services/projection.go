package teams_services

import (
	"devcollab/internal/features/search"
	teams_dto "devcollab/internal/features/teams/dto"
	teams_enums "devcollab/internal/features/teams/enums"
	teams_models "devcollab/internal/features/teams/models"
)

const (
	placeholderImage   = "/placeholder.svg"
	unknownCreatorName = "Unknown"
)

// ToTeamCard maps a team row with its members to a card. Open seats never go
// below zero.
func ToTeamCard(team *teams_models.Team) teams_dto.TeamCard {
	description := ""
	if team.Description != nil {
		description = *team.Description
	}

	image := placeholderImage
	if team.ImageURL != nil && *team.ImageURL != "" {
		image = *team.ImageURL
	}

	creatorName := unknownCreatorName
	if team.Creator != nil && team.Creator.FullName != nil && *team.Creator.FullName != "" {
		creatorName = *team.Creator.FullName
	}

	skills := []string{}
	if team.RequiredSkills != nil {
		skills = append(skills, team.RequiredSkills...)
	}

	status := team.Status
	if status == "" {
		status = teams_enums.TeamStatusRecruiting
	}

	memberCount := len(team.Members)

	return teams_dto.TeamCard{
		ID:             team.ID,
		Name:           team.Name,
		Description:    description,
		Image:          image,
		CreatorName:    creatorName,
		Status:         status,
		RequiredSkills: skills,
		SkillsPreview:  search.PreviewTags(skills),
		MaxMembers:     team.MaxMembers,
		MemberCount:    memberCount,
		OpenSeats:      max(team.MaxMembers-memberCount, 0),
		IsRecruiting:   status == teams_enums.TeamStatusRecruiting,
	}
}
