package users_testing

import (
	"fmt"
	"sync"
	"time"

	users_enums "devcollab/internal/features/users/enums"
	users_models "devcollab/internal/features/users/models"
	users_services "devcollab/internal/features/users/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const TestSecretKey = "test-secret-key-which-is-long-enough-for-hs256"

type InMemoryUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*users_models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: map[uuid.UUID]*users_models.User{}}
}

func (r *InMemoryUserRepository) CreateUser(user *users_models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return fmt.Errorf("duplicate email %s", user.Email)
		}
	}

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *InMemoryUserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *InMemoryUserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	copied := *user
	return &copied, nil
}

// Update replaces a stored user, e.g. to simulate a password change.
func (r *InMemoryUserRepository) Update(user *users_models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.users[user.ID] = &copied
}

type StaticSecretKeyProvider struct {
	Secret string
}

func (p *StaticSecretKeyProvider) GetSecretKey() (string, error) {
	return p.Secret, nil
}

type InMemoryTokenDenylist struct {
	revoked sync.Map
}

func (d *InMemoryTokenDenylist) Revoke(tokenID string) error {
	d.revoked.Store(tokenID, true)
	return nil
}

func (d *InMemoryTokenDenylist) IsRevoked(tokenID string) bool {
	_, ok := d.revoked.Load(tokenID)
	return ok
}

type AuditLogEntry struct {
	Message    string
	UserID     *uuid.UUID
	EntityType string
	EntityID   *uuid.UUID
}

type RecordingAuditLogWriter struct {
	mu      sync.Mutex
	Entries []AuditLogEntry
}

func (w *RecordingAuditLogWriter) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	entityType string,
	entityID *uuid.UUID,
) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.Entries = append(w.Entries, AuditLogEntry{message, userID, entityType, entityID})
}

func (w *RecordingAuditLogWriter) Messages() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	messages := make([]string, 0, len(w.Entries))
	for _, entry := range w.Entries {
		messages = append(messages, entry.Message)
	}
	return messages
}

type TestUserEnv struct {
	Repository *InMemoryUserRepository
	Denylist   *InMemoryTokenDenylist
	AuditLogs  *RecordingAuditLogWriter
	Service    *users_services.UserService
}

// NewTestUserEnv wires a UserService against in-memory collaborators.
func NewTestUserEnv() *TestUserEnv {
	env := &TestUserEnv{
		Repository: NewInMemoryUserRepository(),
		Denylist:   &InMemoryTokenDenylist{},
		AuditLogs:  &RecordingAuditLogWriter{},
	}

	env.Service = users_services.NewUserService(
		env.Repository,
		&StaticSecretKeyProvider{Secret: TestSecretKey},
		env.Denylist,
		env.AuditLogs,
	)

	return env
}

// CreateTestUser stores an active user and returns it with a bearer token.
func (e *TestUserEnv) CreateTestUser() (*users_models.User, string) {
	userID := uuid.New()
	hashedPassword := "$2a$10$test"

	user := &users_models.User{
		ID:                   userID,
		Email:                fmt.Sprintf("dev-%s@test.com", userID.String()[:8]),
		HashedPassword:       &hashedPassword,
		PasswordCreationTime: time.Now().UTC(),
		Status:               users_enums.UserStatusActive,
		CreatedAt:            time.Now().UTC(),
	}

	if err := e.Repository.CreateUser(user); err != nil {
		panic(err)
	}

	response, err := e.Service.GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	return user, "Bearer " + response.Token
}

// NewTestSession builds an authenticated session without any token.
func NewTestSession() *users_models.Session {
	return &users_models.Session{
		User: &users_models.User{
			ID:                   uuid.New(),
			Email:                "session@test.com",
			PasswordCreationTime: time.Now().UTC(),
			Status:               users_enums.UserStatusActive,
			CreatedAt:            time.Now().UTC(),
		},
		TokenID:   uuid.New().String(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
}
