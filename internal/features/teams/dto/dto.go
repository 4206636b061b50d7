package teams_dto

import (
	"devcollab/internal/features/search"
	teams_enums "devcollab/internal/features/teams/enums"

	"github.com/google/uuid"
)

type TeamCard struct {
	ID             uuid.UUID              `json:"id"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Image          string                 `json:"image"`
	CreatorName    string                 `json:"creatorName"`
	Status         teams_enums.TeamStatus `json:"status"`
	RequiredSkills []string               `json:"requiredSkills"`
	SkillsPreview  search.TagsPreview     `json:"skillsPreview"`
	MaxMembers     int                    `json:"maxMembers"`
	MemberCount    int                    `json:"memberCount"`
	OpenSeats      int                    `json:"openSeats"`
	IsRecruiting   bool                   `json:"isRecruiting"`
}

type ListTeamsResponseDTO struct {
	Teams         []TeamCard         `json:"teams"`
	Count         int                `json:"count"`
	CountLabel    string             `json:"countLabel"`
	Filters       search.FilterState `json:"filters"`
	ActiveFilters []string           `json:"activeFilters"`
}
