package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crowd_safety_system/internal/models"
)

const waypointColumns = `
	id,
	name,
	category,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	assigned_emails,
	connected_to,
	created_at`

type WaypointRepository struct {
	db *pgxpool.Pool
}

func NewWaypointRepository(db *pgxpool.Pool) *WaypointRepository {
	return &WaypointRepository{db: db}
}

func scanWaypoint(row pgx.Row) (*models.Waypoint, error) {
	wp := &models.Waypoint{}
	err := row.Scan(
		&wp.ID,
		&wp.Name,
		&wp.Category,
		&wp.Latitude,
		&wp.Longitude,
		&wp.AssignedEmails,
		&wp.ConnectedTo,
		&wp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if wp.AssignedEmails == nil {
		wp.AssignedEmails = []string{}
	}
	if wp.ConnectedTo == nil {
		wp.ConnectedTo = []uuid.UUID{}
	}
	return wp, nil
}

// Create создает новую точку маршрута в бд
func (r *WaypointRepository) Create(ctx context.Context, wp *models.Waypoint) error {
	query := `
		INSERT INTO waypoints (name, category, location, assigned_emails, connected_to)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6) RETURNING id, created_at;
	`
	if wp.AssignedEmails == nil {
		wp.AssignedEmails = []string{}
	}
	if wp.ConnectedTo == nil {
		wp.ConnectedTo = []uuid.UUID{}
	}
	err := r.db.QueryRow(ctx, query,
		wp.Name,
		wp.Category,
		wp.Longitude,
		wp.Latitude,
		wp.AssignedEmails,
		wp.ConnectedTo,
	).Scan(&wp.ID, &wp.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create waypoint: %w", err)
	}
	return nil
}

// GetByID возвращает точку маршрута по ее UUID
func (r *WaypointRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Waypoint, error) {
	query := `SELECT ` + waypointColumns + ` FROM waypoints WHERE id = $1;`
	wp, err := scanWaypoint(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("waypoint with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get waypoint by id: %w", err)
	}
	return wp, nil
}

// Update обновляет имя, категорию и координаты точки маршрута
func (r *WaypointRepository) Update(ctx context.Context, wp *models.Waypoint) error {
	query := `
		UPDATE waypoints SET
			name = $1,
			category = $2,
			location = ST_SetSRID(ST_MakePoint($3, $4), 4326)
		WHERE id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query, wp.Name, wp.Category, wp.Longitude, wp.Latitude, wp.ID)
	if err != nil {
		return fmt.Errorf("failed to update waypoint: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("waypoint with id %s not found for update", wp.ID)
	}
	return nil
}

// Delete удаляет точку маршрута. Входящие ребра других точек не чистятся:
// обход графа пропускает висячие ссылки, а уборка устаревших ребер остается
// отдельной административной задачей.
func (r *WaypointRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM waypoints WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete waypoint: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("waypoint with id %s not found for delete", id)
	}
	return nil
}

// List возвращает снимок всех точек маршрута
func (r *WaypointRepository) List(ctx context.Context) ([]*models.Waypoint, error) {
	query := `SELECT ` + waypointColumns + ` FROM waypoints ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list waypoints: %w", err)
	}
	defer rows.Close()

	waypoints := make([]*models.Waypoint, 0)
	for rows.Next() {
		wp, err := scanWaypoint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan waypoint row: %w", err)
		}
		waypoints = append(waypoints, wp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return waypoints, nil
}

// AddConnection добавляет направленное ребро from -> to, если его еще нет.
// Порядок ребер в массиве - порядок создания.
func (r *WaypointRepository) AddConnection(ctx context.Context, from, to uuid.UUID) error {
	query := `
		UPDATE waypoints SET connected_to = array_append(connected_to, $1)
		WHERE id = $2 AND NOT ($1 = ANY(connected_to));
	`
	if _, err := r.db.Exec(ctx, query, to, from); err != nil {
		return fmt.Errorf("failed to add connection: %w", err)
	}
	return nil
}

// RemoveConnection удаляет направленное ребро from -> to
func (r *WaypointRepository) RemoveConnection(ctx context.Context, from, to uuid.UUID) error {
	query := `UPDATE waypoints SET connected_to = array_remove(connected_to, $1) WHERE id = $2;`
	if _, err := r.db.Exec(ctx, query, to, from); err != nil {
		return fmt.Errorf("failed to remove connection: %w", err)
	}
	return nil
}

// SetAssignments заменяет список назначенных волонтеров точки маршрута
func (r *WaypointRepository) SetAssignments(ctx context.Context, id uuid.UUID, emails []string) error {
	if emails == nil {
		emails = []string{}
	}
	query := `UPDATE waypoints SET assigned_emails = $1 WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, emails, id)
	if err != nil {
		return fmt.Errorf("failed to set waypoint assignments: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("waypoint with id %s not found for assignment", id)
	}
	return nil
}
