package teams_models

import (
	"time"

	profiles_models "devcollab/internal/features/profiles/models"
	teams_enums "devcollab/internal/features/teams/enums"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	DefaultMaxMembers = 10
	MinMaxMembers     = 2
	MaxMaxMembers     = 50
)

type Team struct {
	ID             uuid.UUID                   `json:"id"             gorm:"column:id"`
	CreatorID      uuid.UUID                   `json:"creatorId"      gorm:"column:creator_id"`
	Name           string                      `json:"name"           gorm:"column:name"`
	Description    *string                     `json:"description"    gorm:"column:description"`
	ImageURL       *string                     `json:"imageUrl"       gorm:"column:image_url"`
	MaxMembers     int                         `json:"maxMembers"     gorm:"column:max_members"`
	RequiredSkills datatypes.JSONSlice[string] `json:"requiredSkills" gorm:"column:required_skills"`
	Status         teams_enums.TeamStatus      `json:"status"         gorm:"column:status"`
	CreatedAt      time.Time                   `json:"createdAt"      gorm:"column:created_at"`
	UpdatedAt      time.Time                   `json:"updatedAt"      gorm:"column:updated_at"`

	Creator *profiles_models.Profile `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Members []TeamMember             `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

func (Team) TableName() string {
	return "teams"
}

func (t *Team) SearchFields() []string {
	fields := []string{t.Name}
	if t.Description != nil {
		fields = append(fields, *t.Description)
	}

	return append(fields, t.RequiredSkills...)
}

func (t *Team) Tags() []string {
	return t.RequiredSkills
}

type TeamMember struct {
	ID       uuid.UUID `json:"id"       gorm:"column:id"`
	TeamID   uuid.UUID `json:"teamId"   gorm:"column:team_id"`
	UserID   uuid.UUID `json:"userId"   gorm:"column:user_id"`
	Role     *string   `json:"role"     gorm:"column:role"`
	JoinedAt time.Time `json:"joinedAt" gorm:"column:joined_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
