package repositories

import (
	"context"
	"fmt"
	"time"

	"storeadmin/internal/models"

	"github.com/google/uuid"
)

type AuditLogsRepository interface {
	// Create appends an entry; the log is never updated.
	Create(ctx context.Context, auditLog *models.AuditLog) error

	// ListByStore returns a store's entries newest first, optionally for one entity kind.
	ListByStore(ctx context.Context, storeID string, filter models.AuditLogFilter) ([]*models.AuditLog, error)

	// PurgeBefore drops entries older than cutoff and reports how many went.
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type auditLogsRepo struct {
	db Database
}

func NewAuditLogsRepo(db Database) AuditLogsRepository {
	return &auditLogsRepo{db: db}
}

func (r *auditLogsRepo) Create(ctx context.Context, auditLog *models.AuditLog) error {
	if auditLog.ID == "" {
		auditLog.ID = uuid.NewString()
	}

	query := `
		INSERT INTO audit_logs (id, store_id, entity, record_id, action, actor_id, values, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, auditLog.ID, auditLog.StoreID, auditLog.Entity, auditLog.RecordID,
		auditLog.Action, auditLog.ActorID, auditLog.Values).Scan(&auditLog.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

func (r *auditLogsRepo) ListByStore(ctx context.Context, storeID string, filter models.AuditLogFilter) ([]*models.AuditLog, error) {
	query := `
		SELECT id, store_id, entity, record_id, action, actor_id, values, created_at
		FROM audit_logs
		WHERE store_id = $1
	`
	args := []interface{}{storeID}
	argCount := 1

	if filter.Entity != "" {
		argCount++
		query += fmt.Sprintf(` AND entity = $%d`, argCount)
		args = append(args, filter.Entity)
	}

	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	argCount++
	query += fmt.Sprintf(` LIMIT $%d`, argCount)
	args = append(args, limit)

	if filter.Offset > 0 {
		argCount++
		query += fmt.Sprintf(` OFFSET $%d`, argCount)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	logs := []*models.AuditLog{}
	for rows.Next() {
		entry := &models.AuditLog{}
		if err := rows.Scan(&entry.ID, &entry.StoreID, &entry.Entity, &entry.RecordID,
			&entry.Action, &entry.ActorID, &entry.Values, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

func (r *auditLogsRepo) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM audit_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit logs: %w", err)
	}
	return tag.RowsAffected(), nil
}
