package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crowd_safety_system/internal/models"
)

const observationColumns = `
	id,
	waypoint_id,
	volunteer_email,
	crowd_level,
	COALESCE(message, ''),
	COALESCE(image_base64, ''),
	status,
	COALESCE(ai_status, ''),
	ai_insight,
	COALESCE(ai_error, ''),
	COALESCE(instruction, ''),
	COALESCE(admin_email, ''),
	COALESCE(resolved_by, ''),
	created_at,
	expires_at`

type ObservationRepository struct {
	db *pgxpool.Pool
}

func NewObservationRepository(db *pgxpool.Pool) *ObservationRepository {
	return &ObservationRepository{db: db}
}

// scanObservation читает одну строку наблюдения, включая jsonb поле ai_insight
func scanObservation(row pgx.Row) (*models.Observation, error) {
	obs := &models.Observation{}
	var insightRaw []byte
	err := row.Scan(
		&obs.ID,
		&obs.WaypointID,
		&obs.VolunteerEmail,
		&obs.CrowdLevel,
		&obs.Message,
		&obs.ImageBase64,
		&obs.Status,
		&obs.AIStatus,
		&insightRaw,
		&obs.AIError,
		&obs.Instruction,
		&obs.AdminEmail,
		&obs.ResolvedBy,
		&obs.CreatedAt,
		&obs.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	if len(insightRaw) > 0 {
		insight := &models.AIInsight{}
		if err := json.Unmarshal(insightRaw, insight); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ai_insight: %w", err)
		}
		obs.AIInsight = insight
	}
	return obs, nil
}

// Create создает новую запись наблюдения в бд
func (r *ObservationRepository) Create(ctx context.Context, obs *models.Observation) error {
	query := `
		INSERT INTO observations (waypoint_id, volunteer_email, crowd_level, message, image_base64, status, ai_status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		obs.WaypointID,
		obs.VolunteerEmail,
		obs.CrowdLevel,
		obs.Message,
		obs.ImageBase64,
		obs.Status,
		obs.AIStatus,
		obs.ExpiresAt,
	).Scan(&obs.ID, &obs.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create observation: %w", err)
	}
	return nil
}

// GetByID возвращает наблюдение по его UUID
func (r *ObservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Observation, error) {
	query := `SELECT ` + observationColumns + ` FROM observations WHERE id = $1;`
	obs, err := scanObservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("observation with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get observation by id: %w", err)
	}
	return obs, nil
}

// List возвращает список наблюдений с пагинацией, новые первыми
func (r *ObservationRepository) List(ctx context.Context, page, pageSize int) ([]*models.Observation, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + observationColumns + ` FROM observations ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}
	defer rows.Close()

	observations := make([]*models.Observation, 0)
	for rows.Next() {
		obs, err := scanObservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan observation row: %w", err)
		}
		observations = append(observations, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return observations, nil
}

// SendInstruction условно переводит наблюдение в статус PENDING, записывая
// инструкцию и почту администратора. Возвращает false без ошибки, если
// наблюдение уже в терминальном статусе RESOLVED.
func (r *ObservationRepository) SendInstruction(ctx context.Context, id uuid.UUID, instruction, adminEmail string) (bool, error) {
	query := `
		UPDATE observations SET
			instruction = $1,
			admin_email = $2,
			status = 'PENDING'
		WHERE id = $3 AND status <> 'RESOLVED';
	`
	cmdTag, err := r.db.Exec(ctx, query, instruction, adminEmail, id)
	if err != nil {
		return false, fmt.Errorf("failed to send instruction: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Acknowledge условно переводит наблюдение PENDING -> ACKNOWLEDGED.
// Возвращает false без ошибки, если документ уже ушел дальше по жизненному
// циклу: это безобидная гонка между клиентами, а не ошибка.
func (r *ObservationRepository) Acknowledge(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE observations SET status = 'ACKNOWLEDGED' WHERE id = $1 AND status = 'PENDING';`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to acknowledge observation: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Resolve условно переводит наблюдение ACKNOWLEDGED -> RESOLVED
func (r *ObservationRepository) Resolve(ctx context.Context, id uuid.UUID, resolvedBy string) (bool, error) {
	query := `
		UPDATE observations SET
			status = 'RESOLVED',
			resolved_by = $1
		WHERE id = $2 AND status = 'ACKNOWLEDGED';
	`
	cmdTag, err := r.db.Exec(ctx, query, resolvedBy, id)
	if err != nil {
		return false, fmt.Errorf("failed to resolve observation: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// ClaimForProcessing атомарно захватывает наблюдение для AI-обогащения
// условной записью ai_status = PROCESSING. Postgres дает нам настоящий
// compare-and-swap (update-if-field-equals), поэтому из нескольких
// конкурентных вызовов ровно один получит запись. Возвращает (nil, nil),
// если захват проигран или статус уже терминальный (DONE/FAILED).
func (r *ObservationRepository) ClaimForProcessing(ctx context.Context, id uuid.UUID) (*models.Observation, error) {
	query := `
		UPDATE observations SET ai_status = 'PROCESSING'
		WHERE id = $1 AND (ai_status IS NULL OR ai_status = '' OR ai_status = 'PENDING')
		RETURNING ` + observationColumns + `;
	`
	obs, err := scanObservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim observation for processing: %w", err)
	}
	return obs, nil
}

// CompleteEnrichment записывает результат анализа и ai_status = DONE одним обновлением
func (r *ObservationRepository) CompleteEnrichment(ctx context.Context, id uuid.UUID, insight *models.AIInsight) error {
	payload, err := json.Marshal(insight)
	if err != nil {
		return fmt.Errorf("failed to marshal ai_insight: %w", err)
	}
	query := `UPDATE observations SET ai_insight = $1, ai_status = 'DONE' WHERE id = $2;`
	if _, err := r.db.Exec(ctx, query, payload, id); err != nil {
		return fmt.Errorf("failed to complete enrichment: %w", err)
	}
	return nil
}

// FailEnrichment записывает ai_status = FAILED и код ошибки.
// Журнал аудита для сбоев не ведется: сбой виден по самому полю.
func (r *ObservationRepository) FailEnrichment(ctx context.Context, id uuid.UUID, aiError string) error {
	query := `UPDATE observations SET ai_status = 'FAILED', ai_error = $1 WHERE id = $2;`
	if _, err := r.db.Exec(ctx, query, aiError, id); err != nil {
		return fmt.Errorf("failed to mark enrichment as failed: %w", err)
	}
	return nil
}

// ExpireDue атомарно переводит в RESOLVED все наблюдения в статусе NEW или
// PENDING, чей срок истек к моменту now. Возвращает id затронутых записей.
// ACKNOWLEDGED не трогаем: подтвержденный, но не закрытый инцидент считается
// находящимся в работе.
func (r *ObservationRepository) ExpireDue(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	query := `
		UPDATE observations SET status = 'RESOLVED'
		WHERE status IN ('NEW', 'PENDING') AND expires_at <= $1
		RETURNING id;
	`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to expire observations: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan expired observation id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error expire iteration: %w", err)
	}
	return ids, nil
}

// CountByStatus возвращает количество наблюдений по каждому статусу
func (r *ObservationRepository) CountByStatus(ctx context.Context) (map[models.ObservationStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM observations GROUP BY status;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count observations by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ObservationStatus]int)
	for rows.Next() {
		var status models.ObservationStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error stats iteration: %w", err)
	}
	return counts, nil
}
