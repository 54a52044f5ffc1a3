package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crowd_safety_system/internal/models"
)

type AuditLogRepository struct {
	db *pgxpool.Pool
}

func NewAuditLogRepository(db *pgxpool.Pool) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Append добавляет одну неизменяемую запись в журнал аудита. Временная метка
// присваивается сервером бд. Чистая вставка без read-modify-write: вызов
// всегда безопасен при повторах, дубликаты записей допустимы.
func (r *AuditLogRepository) Append(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_logs (observation_id, action, message, actor_email)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		entry.ObservationID,
		entry.Action,
		entry.Message,
		entry.ActorEmail,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append audit log entry: %w", err)
	}
	return nil
}

// List возвращает записи журнала, новые первыми. Если observationID не nil,
// выборка ограничивается одним наблюдением.
func (r *AuditLogRepository) List(ctx context.Context, observationID *uuid.UUID, limit int) ([]*models.AuditLogEntry, error) {
	query := `
		SELECT id, observation_id, action, COALESCE(message, ''), COALESCE(actor_email, ''), created_at
		FROM audit_logs
		WHERE ($1::uuid IS NULL OR observation_id = $1)
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, observationID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.AuditLogEntry, 0)
	for rows.Next() {
		entry := &models.AuditLogEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.ObservationID,
			&entry.Action,
			&entry.Message,
			&entry.ActorEmail,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error audit list iteration: %w", err)
	}
	return entries, nil
}
