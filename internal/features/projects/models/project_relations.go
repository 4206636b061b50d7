package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectLike struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	ProjectID uuid.UUID `json:"projectId" gorm:"column:project_id"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (ProjectLike) TableName() string {
	return "project_likes"
}

type ProjectCollaborator struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	ProjectID uuid.UUID `json:"projectId" gorm:"column:project_id"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id"`
	Role      *string   `json:"role"      gorm:"column:role"`
	JoinedAt  time.Time `json:"joinedAt"  gorm:"column:joined_at"`
}

func (ProjectCollaborator) TableName() string {
	return "project_collaborators"
}
