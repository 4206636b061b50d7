package teams_services

import (
	"fmt"
	"time"

	"devcollab/internal/features/search"
	teams_dto "devcollab/internal/features/teams/dto"
	teams_enums "devcollab/internal/features/teams/enums"
	teams_models "devcollab/internal/features/teams/models"
	users_interfaces "devcollab/internal/features/users/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type TeamRepository interface {
	CreateTeam(team *teams_models.Team) error
	GetTeams() ([]*teams_models.Team, error)
}

type TeamService struct {
	teamRepository TeamRepository
	auditLogWriter users_interfaces.AuditLogWriter

	singleflight singleflight.Group
}

func NewTeamService(repository TeamRepository, auditLogWriter users_interfaces.AuditLogWriter) *TeamService {
	return &TeamService{
		teamRepository: repository,
		auditLogWriter: auditLogWriter,
	}
}

func (s *TeamService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *TeamService) ListTeams(filters search.FilterState) (*teams_dto.ListTeamsResponseDTO, error) {
	result, err, _ := s.singleflight.Do("teams", func() (any, error) {
		return s.teamRepository.GetTeams()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	filtered := search.Filter(result.([]*teams_models.Team), filters.Query, filters.Tags)

	cards := make([]teams_dto.TeamCard, 0, len(filtered))
	for _, team := range filtered {
		cards = append(cards, ToTeamCard(team))
	}

	return &teams_dto.ListTeamsResponseDTO{
		Teams:         cards,
		Count:         len(cards),
		CountLabel:    search.CountLabel(len(cards), "team"),
		Filters:       filters,
		ActiveFilters: filters.ActiveFilters(),
	}, nil
}

// CreateTeam performs the single insert for a submitted team draft.
func (s *TeamService) CreateTeam(team *teams_models.Team) error {
	now := time.Now().UTC()

	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}
	if team.MaxMembers == 0 {
		team.MaxMembers = teams_models.DefaultMaxMembers
	}
	if team.Status == "" {
		team.Status = teams_enums.TeamStatusRecruiting
	}
	if team.RequiredSkills == nil {
		team.RequiredSkills = []string{}
	}
	team.CreatedAt = now
	team.UpdatedAt = now

	if err := s.teamRepository.CreateTeam(team); err != nil {
		return err
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Team created: %s", team.Name),
		&team.CreatorID,
		"team",
		&team.ID,
	)

	return nil
}
