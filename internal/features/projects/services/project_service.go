package projects_services

import (
	"errors"
	"fmt"
	"time"

	projects_dto "devcollab/internal/features/projects/dto"
	projects_enums "devcollab/internal/features/projects/enums"
	projects_models "devcollab/internal/features/projects/models"
	"devcollab/internal/features/search"
	users_interfaces "devcollab/internal/features/users/interfaces"
	users_models "devcollab/internal/features/users/models"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrNotAuthenticated = errors.New("user not authenticated")
)

type ProjectRepository interface {
	CreateProject(project *projects_models.Project) error
	GetVisibleProjects(viewerID uuid.UUID) ([]*projects_models.Project, error)
	GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error)
	CreateLike(like *projects_models.ProjectLike) error
	DeleteLike(projectID, userID uuid.UUID) error
	CountLikes(projectID uuid.UUID) (int, error)
}

type ProjectService struct {
	projectRepository ProjectRepository
	auditLogWriter    users_interfaces.AuditLogWriter
	views             ViewsSource

	singleflight singleflight.Group // coalesces concurrent snapshot fetches
}

func NewProjectService(
	repository ProjectRepository,
	auditLogWriter users_interfaces.AuditLogWriter,
	views ViewsSource,
) *ProjectService {
	if views == nil {
		views = RandomViews
	}

	return &ProjectService{
		projectRepository: repository,
		auditLogWriter:    auditLogWriter,
		views:             views,
	}
}

func (s *ProjectService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

// ListProjects fetches the snapshot visible to the session, filters it and
// projects the survivors to cards. Order is creation time, newest first.
func (s *ProjectService) ListProjects(
	session *users_models.Session,
	filters search.FilterState,
) (*projects_dto.ListProjectsResponseDTO, error) {
	projects, err := s.getProjectsSnapshot(session.UserID())
	if err != nil {
		return nil, err
	}

	filtered := search.Filter(projects, filters.Query, filters.Tags)

	cards := make([]projects_dto.ProjectCard, 0, len(filtered))
	for _, project := range filtered {
		cards = append(cards, ToProjectCard(project, s.views))
	}

	return &projects_dto.ListProjectsResponseDTO{
		Projects:      cards,
		Count:         len(cards),
		CountLabel:    search.CountLabel(len(cards), "project"),
		Filters:       filters,
		ActiveFilters: filters.ActiveFilters(),
	}, nil
}

func (s *ProjectService) GetProject(
	session *users_models.Session,
	projectID uuid.UUID,
) (*projects_dto.ProjectCard, error) {
	project, err := s.getVisibleProject(session, projectID)
	if err != nil {
		return nil, err
	}

	card := ToProjectCard(project, s.views)
	return &card, nil
}

// CreateProject performs the single insert for a submitted project draft.
func (s *ProjectService) CreateProject(project *projects_models.Project) error {
	now := time.Now().UTC()

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.Status == "" {
		project.Status = projects_enums.ProjectStatusActive
	}
	if project.TechStack == nil {
		project.TechStack = []string{}
	}
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.projectRepository.CreateProject(project); err != nil {
		return err
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Title),
		&project.CreatorID,
		"project",
		&project.ID,
	)

	return nil
}

func (s *ProjectService) LikeProject(
	session *users_models.Session,
	projectID uuid.UUID,
) (*projects_dto.LikeResponseDTO, error) {
	if !session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	if _, err := s.getVisibleProject(session, projectID); err != nil {
		return nil, err
	}

	like := &projects_models.ProjectLike{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    session.UserID(),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.projectRepository.CreateLike(like); err != nil {
		return nil, fmt.Errorf("failed to like project: %w", err)
	}

	return s.likeResponse(projectID, true)
}

func (s *ProjectService) UnlikeProject(
	session *users_models.Session,
	projectID uuid.UUID,
) (*projects_dto.LikeResponseDTO, error) {
	if !session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	if _, err := s.getVisibleProject(session, projectID); err != nil {
		return nil, err
	}

	if err := s.projectRepository.DeleteLike(projectID, session.UserID()); err != nil {
		return nil, fmt.Errorf("failed to unlike project: %w", err)
	}

	return s.likeResponse(projectID, false)
}

func (s *ProjectService) likeResponse(projectID uuid.UUID, liked bool) (*projects_dto.LikeResponseDTO, error) {
	likes, err := s.projectRepository.CountLikes(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	return &projects_dto.LikeResponseDTO{
		ProjectID: projectID,
		Liked:     liked,
		Likes:     likes,
	}, nil
}

// getVisibleProject hides private projects of other users behind
// ErrProjectNotFound.
func (s *ProjectService) getVisibleProject(
	session *users_models.Session,
	projectID uuid.UUID,
) (*projects_models.Project, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil || !project.IsVisibleTo(session.UserID()) {
		return nil, ErrProjectNotFound
	}

	return project, nil
}

func (s *ProjectService) getProjectsSnapshot(viewerID uuid.UUID) ([]*projects_models.Project, error) {
	result, err, _ := s.singleflight.Do("projects:"+viewerID.String(), func() (any, error) {
		return s.projectRepository.GetVisibleProjects(viewerID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	return result.([]*projects_models.Project), nil
}
