package drafts

import (
	"encoding/json"
	"sync"

	profiles_models "devcollab/internal/features/profiles/models"
	projects_models "devcollab/internal/features/projects/models"
	teams_models "devcollab/internal/features/teams/models"
	rate_limit "devcollab/internal/util/rate_limit"
)

// InMemoryDraftStore serializes drafts like the Valkey store does, so callers
// never share a draft with the store.
type InMemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string][]byte

	FailWith error
}

func NewInMemoryDraftStore() *InMemoryDraftStore {
	return &InMemoryDraftStore{drafts: map[string][]byte{}}
}

func (s *InMemoryDraftStore) Get(key string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return nil, s.FailWith
	}

	data, ok := s.drafts[key]
	if !ok {
		return nil, nil
	}

	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}

	return &draft, nil
}

func (s *InMemoryDraftStore) Set(key string, draft *Draft) error {
	if s.FailWith != nil {
		return s.FailWith
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[key] = data

	return nil
}

func (s *InMemoryDraftStore) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, key)
}

// StaticSubmitLimiter allows or denies every check.
type StaticSubmitLimiter struct {
	Deny  bool
	Err   error
	Calls int
}

func (l *StaticSubmitLimiter) CheckRateLimit(string, int, int) (*rate_limit.RateLimitResult, error) {
	l.Calls++

	if l.Err != nil {
		return nil, l.Err
	}

	if l.Deny {
		return &rate_limit.RateLimitResult{Allowed: false, RetryAfterSec: 12}, nil
	}

	return &rate_limit.RateLimitResult{Allowed: true, Remaining: 4}, nil
}

// RecordingCreator stands in for the project, team and profile services.
type RecordingCreator struct {
	mu sync.Mutex

	FailWith error
	Calls    int
	Projects []*projects_models.Project
	Teams    []*teams_models.Team
	Profiles []*profiles_models.Profile
}

func (c *RecordingCreator) CreateProject(project *projects_models.Project) error {
	return c.record(func() { c.Projects = append(c.Projects, project) })
}

func (c *RecordingCreator) CreateTeam(team *teams_models.Team) error {
	return c.record(func() { c.Teams = append(c.Teams, team) })
}

func (c *RecordingCreator) CreateProfile(profile *profiles_models.Profile) error {
	return c.record(func() { c.Profiles = append(c.Profiles, profile) })
}

func (c *RecordingCreator) record(store func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Calls++
	if c.FailWith != nil {
		return c.FailWith
	}

	store()
	return nil
}
