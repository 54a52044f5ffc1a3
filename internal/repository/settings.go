package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository работает с единственной записью конфигурации
// мероприятия (границы площадки в виде сериализованного полигона).
type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetBoundary возвращает сохраненный полигон границы или nil, если он не задан
func (r *SettingsRepository) GetBoundary(ctx context.Context) (json.RawMessage, error) {
	query := `SELECT boundary FROM event_config WHERE id = 1;`
	var boundary []byte
	err := r.db.QueryRow(ctx, query).Scan(&boundary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event boundary: %w", err)
	}
	return boundary, nil
}

// SaveBoundary сохраняет полигон границы, создавая запись при необходимости
func (r *SettingsRepository) SaveBoundary(ctx context.Context, boundary json.RawMessage) error {
	query := `
		INSERT INTO event_config (id, boundary, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET boundary = EXCLUDED.boundary, updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, []byte(boundary)); err != nil {
		return fmt.Errorf("failed to save event boundary: %w", err)
	}
	return nil
}
