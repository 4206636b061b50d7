package drafts

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	profiles_models "devcollab/internal/features/profiles/models"
	projects_models "devcollab/internal/features/projects/models"
	teams_models "devcollab/internal/features/teams/models"
	users_models "devcollab/internal/features/users/models"

	"github.com/google/uuid"
)

const (
	redirectAfterSubmit = "/"
	signInAction        = "/auth"
)

var (
	ErrNotAuthenticated      = errors.New("user not authenticated")
	ErrDraftNotFound         = errors.New("draft not found")
	ErrDraftStoreUnavailable = errors.New("draft storage unavailable")
	ErrInvalidDraftKind      = errors.New("invalid draft kind")
	ErrUnknownField          = errors.New("unknown field")
	ErrInvalidFieldValue     = errors.New("invalid field value")
)

type ProjectCreator interface {
	CreateProject(project *projects_models.Project) error
}

type TeamCreator interface {
	CreateTeam(team *teams_models.Team) error
}

type ProfileCreator interface {
	CreateProfile(profile *profiles_models.Profile) error
}

type DraftService struct {
	store    draftStore
	limiter  submitLimiter
	projects ProjectCreator
	teams    TeamCreator
	profiles ProfileCreator
	logger   *slog.Logger
}

func NewDraftService(
	store draftStore,
	limiter submitLimiter,
	projects ProjectCreator,
	teams TeamCreator,
	profiles ProfileCreator,
	logger *slog.Logger,
) *DraftService {
	return &DraftService{
		store:    store,
		limiter:  limiter,
		projects: projects,
		teams:    teams,
		profiles: profiles,
		logger:   logger,
	}
}

// GetForm describes the empty creation form. Anonymous sessions get a
// sign-in prompt instead; that is not an error.
func (s *DraftService) GetForm(session *users_models.Session, kind DraftKind) (*FormResponseDTO, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidDraftKind
	}

	if !session.IsAuthenticated() {
		return &FormResponseDTO{
			Kind:           kind,
			SignInRequired: true,
			SignInPrompt: &SignInPromptDTO{
				Message:     fmt.Sprintf("Please sign in to create a %s", kind),
				ActionLabel: "Sign In",
				Action:      signInAction,
			},
		}, nil
	}

	schema := formSchemas[kind]
	listField := schema.listField

	return &FormResponseDTO{
		Kind:        kind,
		Title:       schema.title,
		SubmitLabel: schema.submitLabel,
		Fields:      append([]FormField(nil), schema.fields...),
		ListField:   &listField,
	}, nil
}

func (s *DraftService) CreateDraft(session *users_models.Session, kind DraftKind) (*Draft, error) {
	if !session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	if !kind.IsValid() {
		return nil, ErrInvalidDraftKind
	}

	draft := NewDraft(kind, session.UserID())
	if err := s.save(draft); err != nil {
		return nil, err
	}

	return draft, nil
}

func (s *DraftService) GetDraft(session *users_models.Session, draftID uuid.UUID) (*Draft, error) {
	if !session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	draft, err := s.store.Get(draftID.String())
	if err != nil {
		s.logger.Error("failed to load draft", "error", err, "draftId", draftID)
		return nil, fmt.Errorf("%w: %v", ErrDraftStoreUnavailable, err)
	}

	if draft == nil || draft.OwnerID != session.UserID() {
		return nil, ErrDraftNotFound
	}

	return draft, nil
}

func (s *DraftService) ApplyEdit(
	session *users_models.Session,
	draftID uuid.UUID,
	request *EditFieldRequestDTO,
) (*Draft, error) {
	draft, err := s.GetDraft(session, draftID)
	if err != nil {
		return nil, err
	}

	if err := draft.ApplyEdit(request.Field, request.Value); err != nil {
		return nil, err
	}

	if err := s.save(draft); err != nil {
		return nil, err
	}

	return draft, nil
}

func (s *DraftService) AddListItem(session *users_models.Session, draftID uuid.UUID, item string) (*Draft, error) {
	draft, err := s.GetDraft(session, draftID)
	if err != nil {
		return nil, err
	}

	if !draft.AddListItem(item) {
		return draft, nil
	}

	if err := s.save(draft); err != nil {
		return nil, err
	}

	return draft, nil
}

func (s *DraftService) RemoveListItem(session *users_models.Session, draftID uuid.UUID, item string) (*Draft, error) {
	draft, err := s.GetDraft(session, draftID)
	if err != nil {
		return nil, err
	}

	if !draft.RemoveListItem(item) {
		return draft, nil
	}

	if err := s.save(draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// Submit validates the draft and issues exactly one insert. On any failure
// the draft stays stored for a retry; on success it is deleted and the
// caller is sent to the directory.
func (s *DraftService) Submit(session *users_models.Session, draftID uuid.UUID) (*SubmitResponseDTO, error) {
	draft, err := s.GetDraft(session, draftID)
	if err != nil {
		return nil, err
	}

	if fieldErrors := draft.Validate(); len(fieldErrors) > 0 {
		return &SubmitResponseDTO{
			Outcome:     SubmitOutcomeInvalid,
			FieldErrors: fieldErrors,
			Draft:       draft,
		}, nil
	}

	rateLimit, err := s.limiter.CheckRateLimit(session.UserID().String(), submissionsPerMinute, submissionsBurstLimit)
	if err != nil {
		s.logger.Error("submit rate limit check failed", "error", err, "draftId", draft.ID)
		return failedSubmit(draft, fmt.Errorf("rate limit check failed: %w", err)), nil
	}

	if !rateLimit.Allowed {
		return &SubmitResponseDTO{
			Outcome: SubmitOutcomeRateLimited,
			Notification: &Notification{
				Title:       "Error",
				Description: "Too many submissions. Please try again later.",
				Variant:     NotificationVariantDestructive,
			},
			Draft:         draft,
			RetryAfterSec: rateLimit.RetryAfterSec,
		}, nil
	}

	if err := s.insert(draft, session.UserID()); err != nil {
		s.logger.Warn("draft submission failed", "error", err, "kind", draft.Kind, "draftId", draft.ID)
		return failedSubmit(draft, err), nil
	}

	s.store.Invalidate(draft.ID.String())

	return &SubmitResponseDTO{
		Outcome: SubmitOutcomeCreated,
		Notification: &Notification{
			Title:       "Success!",
			Description: fmt.Sprintf("%s created successfully", draft.Kind.Label()),
			Variant:     NotificationVariantDefault,
		},
		RedirectTo: redirectAfterSubmit,
	}, nil
}

func (s *DraftService) insert(draft *Draft, userID uuid.UUID) error {
	switch draft.Kind {
	case DraftKindProject:
		return s.projects.CreateProject(draft.toProject(userID))
	case DraftKindTeam:
		return s.teams.CreateTeam(draft.toTeam(userID))
	case DraftKindProfile:
		return s.profiles.CreateProfile(draft.toProfile(userID))
	default:
		return ErrInvalidDraftKind
	}
}

func (s *DraftService) save(draft *Draft) error {
	draft.UpdatedAt = time.Now().UTC()

	if err := s.store.Set(draft.ID.String(), draft); err != nil {
		return fmt.Errorf("%w: failed to save draft: %v", ErrDraftStoreUnavailable, err)
	}

	return nil
}

func failedSubmit(draft *Draft, err error) *SubmitResponseDTO {
	return &SubmitResponseDTO{
		Outcome: SubmitOutcomeFailed,
		Notification: &Notification{
			Title:       "Error",
			Description: err.Error(),
			Variant:     NotificationVariantDestructive,
		},
		Draft: draft,
	}
}
