package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/crowd_safety_system/internal/graph"
	"github.com/shenikar/crowd_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// WaypointRepository определяет контракт для работы с бд точек маршрута
type WaypointRepository interface {
	Create(ctx context.Context, wp *models.Waypoint) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Waypoint, error)
	Update(ctx context.Context, wp *models.Waypoint) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Waypoint, error)
	AddConnection(ctx context.Context, from, to uuid.UUID) error
	RemoveConnection(ctx context.Context, from, to uuid.UUID) error
	SetAssignments(ctx context.Context, id uuid.UUID, emails []string) error
}

// BoundaryRepository определяет контракт для конфигурации границы мероприятия
type BoundaryRepository interface {
	GetBoundary(ctx context.Context) (json.RawMessage, error)
	SaveBoundary(ctx context.Context, boundary json.RawMessage) error
}

// WaypointService определяет контракт бизнес-логики карты мероприятия
type WaypointService interface {
	CreateWaypoint(ctx context.Context, wp *models.Waypoint) error
	GetWaypoint(ctx context.Context, id uuid.UUID) (*models.Waypoint, error)
	UpdateWaypoint(ctx context.Context, wp *models.Waypoint) error
	DeleteWaypoint(ctx context.Context, id uuid.UUID) error
	ListWaypoints(ctx context.Context) ([]*models.Waypoint, error)
	ToggleConnection(ctx context.Context, from, to uuid.UUID) (bool, error)
	SetAssignments(ctx context.Context, id uuid.UUID, emails []string) error
	FindEvacuationPaths(ctx context.Context, startID uuid.UUID, maxDepth int) ([]string, error)
	GetEventBoundary(ctx context.Context) (json.RawMessage, error)
	SaveEventBoundary(ctx context.Context, boundary json.RawMessage) error
}

type waypointService struct {
	repo     WaypointRepository
	boundary BoundaryRepository
	logger   *logrus.Logger
}

func NewWaypointService(repo WaypointRepository, boundary BoundaryRepository, logger *logrus.Logger) WaypointService {
	return &waypointService{
		repo:     repo,
		boundary: boundary,
		logger:   logger,
	}
}

// CreateWaypoint создает точку маршрута
func (s *waypointService) CreateWaypoint(ctx context.Context, wp *models.Waypoint) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "waypoint",
		"method":  "CreateWaypoint",
		"name":    wp.Name,
	})
	log.Info("Attempting to create a new waypoint")

	if err := s.repo.Create(ctx, wp); err != nil {
		log.WithError(err).Error("Failed to create waypoint in repository")
		return fmt.Errorf("service: could not create waypoint: %w", err)
	}

	log.WithField("waypoint_id", wp.ID).Info("Waypoint created successfully")
	return nil
}

// GetWaypoint получает точку маршрута по ID
func (s *waypointService) GetWaypoint(ctx context.Context, id uuid.UUID) (*models.Waypoint, error) {
	wp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("waypoint_id", id).Warn("Failed to get waypoint from repository")
		return nil, fmt.Errorf("service: could not get waypoint: %w", err)
	}
	return wp, nil
}

// UpdateWaypoint обновляет имя, категорию и координаты точки
func (s *waypointService) UpdateWaypoint(ctx context.Context, wp *models.Waypoint) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "waypoint",
		"method":      "UpdateWaypoint",
		"waypoint_id": wp.ID,
	})
	log.Info("Attempting to update waypoint")

	if err := s.repo.Update(ctx, wp); err != nil {
		log.WithError(err).Error("Failed to update waypoint in repository")
		return fmt.Errorf("service: could not update waypoint: %w", err)
	}
	log.Info("Waypoint updated successfully")
	return nil
}

// DeleteWaypoint удаляет точку маршрута. Входящие ребра других точек в
// хранилище не чистятся - обход графа их пропускает.
func (s *waypointService) DeleteWaypoint(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "waypoint",
		"method":      "DeleteWaypoint",
		"waypoint_id": id,
	})
	log.Info("Attempting to delete waypoint")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete waypoint in repository")
		return fmt.Errorf("service: could not delete waypoint: %w", err)
	}
	log.Info("Waypoint deleted successfully")
	return nil
}

// ListWaypoints возвращает снимок всех точек маршрута
func (s *waypointService) ListWaypoints(ctx context.Context) ([]*models.Waypoint, error) {
	waypoints, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list waypoints from repository")
		return nil, fmt.Errorf("service: could not list waypoints: %w", err)
	}
	return waypoints, nil
}

// ToggleConnection переключает направленное ребро from -> to: добавляет его,
// если ребра нет, и убирает, если оно есть. Возвращает true, если после
// вызова ребро существует.
func (s *waypointService) ToggleConnection(ctx context.Context, from, to uuid.UUID) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "waypoint",
		"method":  "ToggleConnection",
		"from":    from,
		"to":      to,
	})

	if from == to {
		return false, fmt.Errorf("service: cannot connect a waypoint to itself")
	}

	wp, err := s.repo.GetByID(ctx, from)
	if err != nil {
		log.WithError(err).Warn("Attempted to toggle connection on a non-existent waypoint")
		return false, fmt.Errorf("service: waypoint not found for connection: %w", err)
	}

	connected := false
	for _, existing := range wp.ConnectedTo {
		if existing == to {
			connected = true
			break
		}
	}

	if connected {
		if err := s.repo.RemoveConnection(ctx, from, to); err != nil {
			log.WithError(err).Error("Failed to remove connection in repository")
			return false, fmt.Errorf("service: could not remove connection: %w", err)
		}
		log.Info("Connection removed")
		return false, nil
	}

	if err := s.repo.AddConnection(ctx, from, to); err != nil {
		log.WithError(err).Error("Failed to add connection in repository")
		return false, fmt.Errorf("service: could not add connection: %w", err)
	}
	log.Info("Connection added")
	return true, nil
}

// SetAssignments заменяет список назначенных волонтеров точки
func (s *waypointService) SetAssignments(ctx context.Context, id uuid.UUID, emails []string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "waypoint",
		"method":      "SetAssignments",
		"waypoint_id": id,
	})

	if err := s.repo.SetAssignments(ctx, id, emails); err != nil {
		log.WithError(err).Error("Failed to set assignments in repository")
		return fmt.Errorf("service: could not set assignments: %w", err)
	}
	log.WithField("count", len(emails)).Info("Waypoint assignments updated")
	return nil
}

// FindEvacuationPaths возвращает читаемые коридоры эвакуации из точки.
// Пустой список - не ошибка, а отсутствие контекста маршрутов.
func (s *waypointService) FindEvacuationPaths(ctx context.Context, startID uuid.UUID, maxDepth int) ([]string, error) {
	waypoints, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load waypoint snapshot for path search")
		return nil, fmt.Errorf("service: could not load waypoints: %w", err)
	}

	g := graph.Build(waypoints)
	paths := g.FindPaths(startID, maxDepth)
	return g.PathNames(paths), nil
}

// GetEventBoundary возвращает сохраненный полигон границы мероприятия
func (s *waypointService) GetEventBoundary(ctx context.Context) (json.RawMessage, error) {
	boundary, err := s.boundary.GetBoundary(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get event boundary")
		return nil, fmt.Errorf("service: could not get event boundary: %w", err)
	}
	return boundary, nil
}

// SaveEventBoundary сохраняет полигон границы мероприятия
func (s *waypointService) SaveEventBoundary(ctx context.Context, boundary json.RawMessage) error {
	if len(boundary) == 0 || !json.Valid(boundary) {
		return fmt.Errorf("service: boundary must be a valid JSON document")
	}
	if err := s.boundary.SaveBoundary(ctx, boundary); err != nil {
		s.logger.WithError(err).Error("Failed to save event boundary")
		return fmt.Errorf("service: could not save event boundary: %w", err)
	}
	s.logger.Info("Event boundary updated")
	return nil
}
