package projects_repositories

import (
	"errors"

	projects_models "devcollab/internal/features/projects/models"
	"devcollab/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository struct{}

// CreateProject inserts the project row only; joined rows are never written
// through it.
func (r *ProjectRepository) CreateProject(project *projects_models.Project) error {
	return storage.GetDb().Omit(clause.Associations).Create(project).Error
}

// GetVisibleProjects returns public projects plus the viewer's own private
// ones, newest first, with creator, likes and collaborators joined.
func (r *ProjectRepository) GetVisibleProjects(viewerID uuid.UUID) ([]*projects_models.Project, error) {
	var projects []*projects_models.Project

	err := withRelations(storage.GetDb()).
		Where("is_private = ? OR creator_id = ?", false, viewerID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := withRelations(storage.GetDb()).Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

// CreateLike is a no-op when the user already likes the project.
func (r *ProjectRepository) CreateLike(like *projects_models.ProjectLike) error {
	return storage.GetDb().
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like).Error
}

func (r *ProjectRepository) DeleteLike(projectID, userID uuid.UUID) error {
	return storage.GetDb().
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&projects_models.ProjectLike{}).Error
}

func (r *ProjectRepository) CountLikes(projectID uuid.UUID) (int, error) {
	var count int64

	err := storage.GetDb().
		Model(&projects_models.ProjectLike{}).
		Where("project_id = ?", projectID).
		Count(&count).Error

	return int(count), err
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Creator").Preload("Likes").Preload("Collaborators")
}
