package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storeadmin/internal/common"
	"storeadmin/internal/models"
	"storeadmin/internal/repositories"

	"go.uber.org/zap"
)

const maxAuditPageSize = 200

// AuditEntry describes one committed mutation before it is serialized.
type AuditEntry struct {
	StoreID  string
	Entity   string
	RecordID string
	Action   string
	ActorID  string
	Values   interface{}
}

type AuditLogsService interface {
	// Record appends an entry. Failures are logged, never returned.
	Record(ctx context.Context, entry AuditEntry)

	// List returns a store's trail to its owner, newest first.
	List(ctx context.Context, userID, storeID string, filter models.AuditLogFilter) ([]*models.AuditLog, error)

	// PurgeExpired removes entries older than the retention window.
	PurgeExpired(ctx context.Context, retention time.Duration) (int64, error)
}

type auditLogsService struct {
	auditLogsRepo repositories.AuditLogsRepository
	ownership     OwnershipService
	logger        *zap.Logger
	now           func() time.Time
}

func NewAuditLogsService(auditLogsRepo repositories.AuditLogsRepository, ownership OwnershipService, logger *zap.Logger) AuditLogsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &auditLogsService{
		auditLogsRepo: auditLogsRepo,
		ownership:     ownership,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *auditLogsService) Record(ctx context.Context, entry AuditEntry) {
	var values json.RawMessage
	if entry.Values != nil {
		data, err := json.Marshal(entry.Values)
		if err != nil {
			s.logger.Warn("audit values not serializable",
				zap.String("entity", entry.Entity), zap.String("record_id", entry.RecordID), zap.Error(err))
		} else {
			values = data
		}
	}

	auditLog := &models.AuditLog{
		StoreID:  entry.StoreID,
		Entity:   entry.Entity,
		RecordID: entry.RecordID,
		Action:   entry.Action,
		ActorID:  entry.ActorID,
		Values:   values,
	}
	if err := s.auditLogsRepo.Create(ctx, auditLog); err != nil {
		s.logger.Warn("audit log not recorded",
			zap.String("store_id", entry.StoreID),
			zap.String("entity", entry.Entity),
			zap.String("record_id", entry.RecordID),
			zap.String("action", entry.Action),
			zap.Error(err))
	}
}

func (s *auditLogsService) List(ctx context.Context, userID, storeID string, filter models.AuditLogFilter) ([]*models.AuditLog, error) {
	result, err := s.ownership.Resolve(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, common.NewValidationError("limit", "limit and offset cannot be negative")
	}
	if filter.Limit > maxAuditPageSize {
		filter.Limit = maxAuditPageSize
	}

	logs, err := s.auditLogsRepo.ListByStore(ctx, storeID, filter)
	if err != nil {
		return nil, common.Persistence("list audit logs", err)
	}
	return logs, nil
}

func (s *auditLogsService) PurgeExpired(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, errors.New("retention must be positive")
	}
	cutoff := s.now().Add(-retention)
	return s.auditLogsRepo.PurgeBefore(ctx, cutoff)
}
