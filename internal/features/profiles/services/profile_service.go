package profiles_services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	profiles_dto "devcollab/internal/features/profiles/dto"
	profiles_enums "devcollab/internal/features/profiles/enums"
	profiles_models "devcollab/internal/features/profiles/models"
	"devcollab/internal/features/search"
	users_interfaces "devcollab/internal/features/users/interfaces"
	users_models "devcollab/internal/features/users/models"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var (
	ErrProfileNotFound        = errors.New("profile not found")
	ErrUsernameRequired       = errors.New("username is required")
	ErrUsernameTaken          = errors.New("username is already taken")
	ErrInvalidExperienceLevel = errors.New("invalid experience level")
	ErrNotAuthenticated       = errors.New("user not authenticated")
)

type ProfileRepository interface {
	CreateProfile(profile *profiles_models.Profile) error
	UpdateProfile(profile *profiles_models.Profile) error
	GetProfiles() ([]*profiles_models.Profile, error)
	GetProfileByID(id uuid.UUID) (*profiles_models.Profile, error)
	GetProfileByUsername(username string) (*profiles_models.Profile, error)
}

type ProfileService struct {
	profileRepository ProfileRepository
	auditLogWriter    users_interfaces.AuditLogWriter

	singleflight singleflight.Group // coalesces concurrent directory fetches
}

func NewProfileService(
	repository ProfileRepository,
	auditLogWriter users_interfaces.AuditLogWriter,
) *ProfileService {
	return &ProfileService{
		profileRepository: repository,
		auditLogWriter:    auditLogWriter,
	}
}

func (s *ProfileService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *ProfileService) ListDevelopers(filters search.FilterState) (*profiles_dto.ListDevelopersResponseDTO, error) {
	profiles, err := s.getProfilesSnapshot()
	if err != nil {
		return nil, err
	}

	filtered := search.Filter(profiles, filters.Query, filters.Tags)

	cards := make([]profiles_dto.DeveloperCard, 0, len(filtered))
	for _, profile := range filtered {
		cards = append(cards, ToDeveloperCard(profile))
	}

	return &profiles_dto.ListDevelopersResponseDTO{
		Developers:    cards,
		Count:         len(cards),
		CountLabel:    search.CountLabel(len(cards), "developer"),
		Filters:       filters,
		ActiveFilters: filters.ActiveFilters(),
	}, nil
}

func (s *ProfileService) GetDeveloper(username string) (*profiles_dto.DeveloperCard, error) {
	profile, err := s.profileRepository.GetProfileByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile == nil {
		return nil, ErrProfileNotFound
	}

	card := ToDeveloperCard(profile)
	return &card, nil
}

func (s *ProfileService) GetOwnProfile(session *users_models.Session) (*profiles_models.Profile, error) {
	if !session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	profile, err := s.profileRepository.GetProfileByID(session.UserID())
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return profile, nil
}

func (s *ProfileService) UpdateOwnProfile(
	session *users_models.Session,
	request *profiles_dto.UpdateProfileRequestDTO,
) (*profiles_models.Profile, error) {
	profile, err := s.GetOwnProfile(session)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(request.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	if request.ExperienceLevel != "" && !request.ExperienceLevel.IsValid() {
		return nil, ErrInvalidExperienceLevel
	}

	if username != profile.Username {
		existing, err := s.profileRepository.GetProfileByUsername(username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if existing != nil {
			return nil, ErrUsernameTaken
		}
	}

	profile.Username = username
	profile.FullName = optionalText(request.FullName)
	profile.Bio = optionalText(request.Bio)
	profile.AvatarURL = optionalText(request.AvatarURL)
	profile.Location = optionalText(request.Location)
	profile.Website = optionalText(request.Website)
	profile.GithubURL = optionalText(request.GithubURL)
	profile.LinkedinURL = optionalText(request.LinkedinURL)
	profile.Skills = append([]string{}, request.Skills...)
	profile.AvailableForHire = request.AvailableForHire
	if request.ExperienceLevel != "" {
		profile.ExperienceLevel = request.ExperienceLevel
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profileRepository.UpdateProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Profile updated: %s", profile.Username),
		&profile.ID,
		"profile",
		&profile.ID,
	)

	return profile, nil
}

// CreateProfile performs the single insert for a submitted profile draft.
func (s *ProfileService) CreateProfile(profile *profiles_models.Profile) error {
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if profile.ExperienceLevel == "" {
		profile.ExperienceLevel = profiles_enums.ExperienceLevelBeginner
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	if err := s.profileRepository.CreateProfile(profile); err != nil {
		return err
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Profile created: %s", profile.Username),
		&profile.ID,
		"profile",
		&profile.ID,
	)

	return nil
}

func (s *ProfileService) getProfilesSnapshot() ([]*profiles_models.Profile, error) {
	result, err, _ := s.singleflight.Do("profiles", func() (any, error) {
		return s.profileRepository.GetProfiles()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	return result.([]*profiles_models.Profile), nil
}

// optionalText trims the value; blank text is stored as NULL.
func optionalText(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
