package users_services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	users_dto "devcollab/internal/features/users/dto"
	users_enums "devcollab/internal/features/users/enums"
	users_interfaces "devcollab/internal/features/users/interfaces"
	users_models "devcollab/internal/features/users/models"
)

const accessTokenLifetime = 30 * 24 * time.Hour

var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrUserDeactivated    = errors.New("user account is deactivated")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrInvalidToken       = errors.New("invalid token")
)

type UserRepository interface {
	CreateUser(user *users_models.User) error
	GetUserByEmail(email string) (*users_models.User, error)
	GetUserByID(userID uuid.UUID) (*users_models.User, error)
}

type UserService struct {
	userRepository    UserRepository
	secretKeyProvider SecretKeyProvider
	tokenDenylist     TokenDenylist
	// audit log is never nil, DI always set it
	auditLogWriter users_interfaces.AuditLogWriter
}

func NewUserService(
	userRepository UserRepository,
	secretKeyProvider SecretKeyProvider,
	tokenDenylist TokenDenylist,
	auditLogWriter users_interfaces.AuditLogWriter,
) *UserService {
	return &UserService{
		userRepository:    userRepository,
		secretKeyProvider: secretKeyProvider,
		tokenDenylist:     tokenDenylist,
		auditLogWriter:    auditLogWriter,
	}
}

func (s *UserService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) (*users_models.User, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existingUser, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hashedPasswordStr := string(hashedPassword)
	now := time.Now().UTC()

	user := &users_models.User{
		ID:                   uuid.New(),
		Email:                email,
		HashedPassword:       &hashedPasswordStr,
		PasswordCreationTime: now,
		Status:               users_enums.UserStatusActive,
		CreatedAt:            now,
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User registered with email: %s", user.Email),
		&user.ID,
		"user",
		&user.ID,
	)

	return user, nil
}

func (s *UserService) SignIn(request *users_dto.SignInRequestDTO) (*users_dto.SignInResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil || !user.HasPassword() {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActiveUser() {
		return nil, ErrUserDeactivated
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(request.Password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.GenerateAccessToken(user)
}

// SignOut revokes the session's token. Anonymous sessions are a no-op.
func (s *UserService) SignOut(session *users_models.Session) error {
	if !session.IsAuthenticated() || session.TokenID == "" {
		return nil
	}

	if err := s.tokenDenylist.Revoke(session.TokenID); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func (s *UserService) GetSessionFromToken(token string) (*users_models.Session, error) {
	secretKey, err := s.secretKeyProvider.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	tokenID, _ := claims["jti"].(string)
	if tokenID != "" && s.tokenDenylist.IsRevoked(tokenID) {
		return nil, ErrTokenRevoked
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if !user.IsActiveUser() {
		return nil, ErrUserDeactivated
	}

	passwordCreationTimeUnix, ok := claims["passwordCreationTime"].(float64)
	if !ok {
		return nil, errors.New("invalid token claims: missing password creation time")
	}

	tokenPasswordTime := time.Unix(int64(passwordCreationTimeUnix), 0)
	if !tokenPasswordTime.Truncate(time.Second).Equal(user.PasswordCreationTime.Truncate(time.Second)) {
		return nil, errors.New("password has been changed, please sign in again")
	}

	var expiresAt time.Time
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0).UTC()
	}

	return &users_models.Session{
		User:      user,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *UserService) GenerateAccessToken(user *users_models.User) (*users_dto.SignInResponseDTO, error) {
	secretKey, err := s.secretKeyProvider.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(accessTokenLifetime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":                  user.ID.String(),
		"jti":                  uuid.New().String(),
		"exp":                  expiresAt.Unix(),
		"iat":                  now.Unix(),
		"passwordCreationTime": user.PasswordCreationTime.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &users_dto.SignInResponseDTO{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     tokenString,
		ExpiresAt: time.Unix(expiresAt.Unix(), 0).UTC(),
	}, nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetCurrentUser(session *users_models.Session) *users_dto.UserResponseDTO {
	return &users_dto.UserResponseDTO{
		ID:        session.User.ID,
		Email:     session.User.Email,
		IsActive:  session.User.IsActiveUser(),
		CreatedAt: session.User.CreatedAt,
	}
}
