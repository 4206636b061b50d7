package audit_logs

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryAuditLogRepository keeps audit logs in memory for tests.
type InMemoryAuditLogRepository struct {
	mu   sync.Mutex
	logs []*AuditLog
}

func (r *InMemoryAuditLogRepository) Create(auditLog *AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	r.logs = append(r.logs, auditLog)
	return nil
}

func (r *InMemoryAuditLogRepository) GetByUser(
	userID uuid.UUID,
	limit, offset int,
	beforeDate *time.Time,
) ([]*AuditLog, error) {
	matching := r.matching(userID, beforeDate)

	if offset >= len(matching) {
		return []*AuditLog{}, nil
	}

	return matching[offset:min(offset+limit, len(matching))], nil
}

func (r *InMemoryAuditLogRepository) CountByUser(userID uuid.UUID, beforeDate *time.Time) (int64, error) {
	return int64(len(r.matching(userID, beforeDate))), nil
}

func (r *InMemoryAuditLogRepository) matching(userID uuid.UUID, beforeDate *time.Time) []*AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*AuditLog, 0)
	for _, log := range r.logs {
		if log.UserID == nil || *log.UserID != userID {
			continue
		}
		if beforeDate != nil && !log.CreatedAt.Before(*beforeDate) {
			continue
		}
		result = append(result, log)
	}

	slices.SortStableFunc(result, func(a, b *AuditLog) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result
}
