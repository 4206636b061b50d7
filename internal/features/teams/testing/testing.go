package teams_testing

import (
	"slices"
	"sync"

	teams_models "devcollab/internal/features/teams/models"

	"github.com/google/uuid"
)

type InMemoryTeamRepository struct {
	mu    sync.Mutex
	teams []*teams_models.Team

	FailWith    error
	InsertCalls int
}

func (r *InMemoryTeamRepository) CreateTeam(team *teams_models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.InsertCalls++
	if r.FailWith != nil {
		return r.FailWith
	}

	copied := *team
	r.teams = append(r.teams, &copied)
	return nil
}

func (r *InMemoryTeamRepository) GetTeams() ([]*teams_models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWith != nil {
		return nil, r.FailWith
	}

	result := make([]*teams_models.Team, 0, len(r.teams))
	for _, team := range r.teams {
		copied := *team
		result = append(result, &copied)
	}

	slices.SortStableFunc(result, func(a, b *teams_models.Team) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result, nil
}

func (r *InMemoryTeamRepository) Teams() []teams_models.Team {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]teams_models.Team, 0, len(r.teams))
	for _, team := range r.teams {
		result = append(result, *team)
	}
	return result
}

// Seed stores a team with the given number of members.
func (r *InMemoryTeamRepository) Seed(team *teams_models.Team, members int) *teams_models.Team {
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}

	for range members {
		team.Members = append(team.Members, teams_models.TeamMember{
			ID:     uuid.New(),
			TeamID: team.ID,
			UserID: uuid.New(),
		})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams = append(r.teams, team)

	return team
}
