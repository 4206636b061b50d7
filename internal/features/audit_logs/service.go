package audit_logs

import (
	"errors"
	"log/slog"
	"time"

	users_models "devcollab/internal/features/users/models"

	"github.com/google/uuid"
)

const (
	defaultAuditLogsLimit = 100
	maxAuditLogsLimit     = 1000
)

var ErrNotAuthenticated = errors.New("user not authenticated")

type auditLogStore interface {
	Create(auditLog *AuditLog) error
	GetByUser(userID uuid.UUID, limit, offset int, beforeDate *time.Time) ([]*AuditLog, error)
	CountByUser(userID uuid.UUID, beforeDate *time.Time) (int64, error)
}

type AuditLogService struct {
	auditLogRepository auditLogStore
	logger             *slog.Logger
}

func NewAuditLogService(repository auditLogStore, logger *slog.Logger) *AuditLogService {
	return &AuditLogService{
		auditLogRepository: repository,
		logger:             logger,
	}
}

// WriteAuditLog never fails the caller: a lost activity entry is logged and
// otherwise ignored.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	entityType string,
	entityID *uuid.UUID,
) {
	auditLog := &AuditLog{
		UserID:     userID,
		EntityType: entityType,
		EntityID:   entityID,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.auditLogRepository.Create(auditLog); err != nil {
		s.logger.Error("failed to create audit log", "error", err, "entityType", entityType)
	}
}

func (s *AuditLogService) GetOwnAuditLogs(
	session *users_models.Session,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	if !session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	limit := request.Limit
	if limit <= 0 || limit > maxAuditLogsLimit {
		limit = defaultAuditLogsLimit
	}

	offset := max(request.Offset, 0)
	userID := session.UserID()

	auditLogs, err := s.auditLogRepository.GetByUser(userID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	total, err := s.auditLogRepository.CountByUser(userID, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}
