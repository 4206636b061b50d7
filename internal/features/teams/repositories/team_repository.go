package teams_repositories

import (
	teams_models "devcollab/internal/features/teams/models"
	"devcollab/internal/storage"

	"gorm.io/gorm/clause"
)

type TeamRepository struct{}

func (r *TeamRepository) CreateTeam(team *teams_models.Team) error {
	return storage.GetDb().Omit(clause.Associations).Create(team).Error
}

// GetTeams returns every team, newest first, with creator and members joined.
func (r *TeamRepository) GetTeams() ([]*teams_models.Team, error) {
	var teams []*teams_models.Team

	err := storage.GetDb().
		Preload("Creator").
		Preload("Members").
		Order("created_at DESC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}

	return teams, nil
}
