package profiles_testing

import (
	"errors"
	"slices"
	"sync"
	"time"

	profiles_enums "devcollab/internal/features/profiles/enums"
	profiles_models "devcollab/internal/features/profiles/models"

	"github.com/google/uuid"
)

type InMemoryProfileRepository struct {
	mu       sync.Mutex
	profiles []*profiles_models.Profile

	// FailWith makes every call return this error.
	FailWith   error
	FetchCalls int
}

func (r *InMemoryProfileRepository) CreateProfile(profile *profiles_models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWith != nil {
		return r.FailWith
	}

	for _, existing := range r.profiles {
		if existing.ID == profile.ID {
			return errors.New(`duplicate key value violates unique constraint "profiles_pkey"`)
		}
		if existing.Username == profile.Username {
			return errors.New(`duplicate key value violates unique constraint "profiles_username_key"`)
		}
	}

	copied := *profile
	r.profiles = append(r.profiles, &copied)
	return nil
}

func (r *InMemoryProfileRepository) UpdateProfile(profile *profiles_models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWith != nil {
		return r.FailWith
	}

	for i, existing := range r.profiles {
		if existing.ID == profile.ID {
			copied := *profile
			r.profiles[i] = &copied
			return nil
		}
	}

	return errors.New("profile does not exist")
}

func (r *InMemoryProfileRepository) GetProfiles() ([]*profiles_models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.FetchCalls++
	if r.FailWith != nil {
		return nil, r.FailWith
	}

	result := make([]*profiles_models.Profile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		copied := *profile
		result = append(result, &copied)
	}

	slices.SortStableFunc(result, func(a, b *profiles_models.Profile) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result, nil
}

func (r *InMemoryProfileRepository) GetProfileByID(id uuid.UUID) (*profiles_models.Profile, error) {
	return r.find(func(p *profiles_models.Profile) bool { return p.ID == id })
}

func (r *InMemoryProfileRepository) GetProfileByUsername(username string) (*profiles_models.Profile, error) {
	return r.find(func(p *profiles_models.Profile) bool { return p.Username == username })
}

func (r *InMemoryProfileRepository) find(match func(*profiles_models.Profile) bool) (*profiles_models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWith != nil {
		return nil, r.FailWith
	}

	for _, profile := range r.profiles {
		if match(profile) {
			copied := *profile
			return &copied, nil
		}
	}

	return nil, nil
}

// Seed stores a profile directly; createdAt orders the directory.
func (r *InMemoryProfileRepository) Seed(
	id uuid.UUID,
	username string,
	fullName string,
	skills []string,
	createdAt time.Time,
) *profiles_models.Profile {
	profile := &profiles_models.Profile{
		ID:              id,
		Username:        username,
		Skills:          skills,
		ExperienceLevel: profiles_enums.ExperienceLevelIntermediate,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
	if fullName != "" {
		profile.FullName = &fullName
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = append(r.profiles, profile)

	return profile
}
