package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crowd_safety_system/internal/config"
	"github.com/shenikar/crowd_safety_system/internal/dispatch"
	"github.com/shenikar/crowd_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrObservationResolved возвращается при попытке отправить инструкцию по
// наблюдению, которое уже закрыто. Это единственный отказ жизненного цикла,
// который пробрасывается вызывающему: остальные несработавшие переходы -
// безобидные гонки и превращаются в no-op.
var ErrObservationResolved = errors.New("observation is already resolved")

// ObservationRepository определяет контракт для работы с бд наблюдений
type ObservationRepository interface {
	Create(ctx context.Context, obs *models.Observation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Observation, error)
	List(ctx context.Context, page, pageSize int) ([]*models.Observation, error)
	SendInstruction(ctx context.Context, id uuid.UUID, instruction, adminEmail string) (bool, error)
	Acknowledge(ctx context.Context, id uuid.UUID) (bool, error)
	Resolve(ctx context.Context, id uuid.UUID, resolvedBy string) (bool, error)
	CountByStatus(ctx context.Context) (map[models.ObservationStatus]int, error)
}

// AuditLogRepository определяет контракт для журнала аудита
type AuditLogRepository interface {
	Append(ctx context.Context, entry *models.AuditLogEntry) error
	List(ctx context.Context, observationID *uuid.UUID, limit int) ([]*models.AuditLogEntry, error)
}

// ObservationService определяет контракт бизнес-логики жизненного цикла наблюдений
type ObservationService interface {
	SubmitObservation(ctx context.Context, obs *models.Observation) error
	GetObservation(ctx context.Context, id uuid.UUID) (*models.Observation, error)
	ListObservations(ctx context.Context, page, pageSize int) ([]*models.Observation, error)
	SendInstruction(ctx context.Context, id uuid.UUID, instruction, adminEmail string) error
	Acknowledge(ctx context.Context, id uuid.UUID, volunteerEmail string) error
	Resolve(ctx context.Context, id uuid.UUID, adminEmail string) error
	RequestEnrichment(ctx context.Context, id uuid.UUID) error
	GetStats(ctx context.Context) (map[models.ObservationStatus]int, error)
	ListAuditLogs(ctx context.Context, observationID *uuid.UUID, limit int) ([]*models.AuditLogEntry, error)
}

type observationService struct {
	repo      ObservationRepository
	audit     AuditLogRepository
	publisher dispatch.EnrichmentPublisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewObservationService(repo ObservationRepository, audit AuditLogRepository, publisher dispatch.EnrichmentPublisher, logger *logrus.Logger, cfg *config.Config) ObservationService {
	return &observationService{
		repo:      repo,
		audit:     audit,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// SubmitObservation создает наблюдение волонтера и публикует триггер
// AI-обогащения в очередь. Наблюдение рождается в статусе NEW с
// ai_status=PENDING и сроком жизни creation + TTL.
func (s *observationService) SubmitObservation(ctx context.Context, obs *models.Observation) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "observation",
		"method":      "SubmitObservation",
		"waypoint_id": obs.WaypointID,
		"volunteer":   obs.VolunteerEmail,
	})
	log.Info("Attempting to submit a new observation")

	obs.Status = models.StatusNew
	obs.AIStatus = models.AIPending
	obs.ExpiresAt = time.Now().Add(s.cfg.ObservationTTL)

	if err := s.repo.Create(ctx, obs); err != nil {
		log.WithError(err).Error("Failed to create observation in repository")
		return fmt.Errorf("service: could not create observation: %w", err)
	}

	event := dispatch.EnrichmentEvent{
		ObservationID: obs.ID,
		Source:        dispatch.SourceCreated,
		Timestamp:     time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Наблюдение сохранено; обогащение можно перезапустить вручную
		log.WithError(err).Warn("Failed to publish enrichment trigger")
	}

	log.WithField("observation_id", obs.ID).Info("Observation submitted successfully")
	return nil
}

// GetObservation получает наблюдение по ID
func (s *observationService) GetObservation(ctx context.Context, id uuid.UUID) (*models.Observation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "observation",
		"method":         "GetObservation",
		"observation_id": id,
	})

	obs, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get observation from repository")
		return nil, fmt.Errorf("service: could not get observation: %w", err)
	}
	return obs, nil
}

// ListObservations возвращает список наблюдений с пагинацией
func (s *observationService) ListObservations(ctx context.Context, page, pageSize int) ([]*models.Observation, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "observation",
		"method":    "ListObservations",
		"page":      page,
		"page_size": pageSize,
	})

	observations, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list observations from repository")
		return nil, fmt.Errorf("service: could not list observations: %w", err)
	}
	return observations, nil
}

// SendInstruction переводит наблюдение NEW -> PENDING, записывая инструкцию
// администратора. Попытка по уже закрытому наблюдению отклоняется с
// ErrObservationResolved.
func (s *observationService) SendInstruction(ctx context.Context, id uuid.UUID, instruction, adminEmail string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "observation",
		"method":         "SendInstruction",
		"observation_id": id,
		"admin":          adminEmail,
	})
	log.Info("Attempting to send instruction")

	if instruction == "" {
		return fmt.Errorf("service: instruction text is required")
	}
	if adminEmail == "" {
		return fmt.Errorf("service: admin identity is required")
	}

	applied, err := s.repo.SendInstruction(ctx, id, instruction, adminEmail)
	if err != nil {
		log.WithError(err).Error("Failed to send instruction in repository")
		return fmt.Errorf("service: could not send instruction: %w", err)
	}
	if !applied {
		// Либо наблюдения нет, либо оно уже закрыто
		if _, getErr := s.repo.GetByID(ctx, id); getErr != nil {
			log.WithError(getErr).Warn("Attempted to instruct a non-existent observation")
			return fmt.Errorf("service: observation not found for instruction: %w", getErr)
		}
		log.Warn("Attempted to instruct a resolved observation")
		return ErrObservationResolved
	}

	s.appendAudit(ctx, log, &models.AuditLogEntry{
		ObservationID: id,
		Action:        models.AuditAdminSent,
		Message:       instruction,
		ActorEmail:    adminEmail,
	})

	log.Info("Instruction sent successfully")
	return nil
}

// Acknowledge переводит наблюдение PENDING -> ACKNOWLEDGED от имени
// волонтера. Несработавший переход (документ уже ушел дальше) - безобидная
// гонка: no-op с debug-сигналом, без ошибки для вызывающего.
func (s *observationService) Acknowledge(ctx context.Context, id uuid.UUID, volunteerEmail string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "observation",
		"method":         "Acknowledge",
		"observation_id": id,
		"volunteer":      volunteerEmail,
	})

	applied, err := s.repo.Acknowledge(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to acknowledge observation in repository")
		return fmt.Errorf("service: could not acknowledge observation: %w", err)
	}
	if !applied {
		log.Debug("Acknowledge skipped: observation is not in PENDING status")
		return nil
	}

	s.appendAudit(ctx, log, &models.AuditLogEntry{
		ObservationID: id,
		Action:        models.AuditVolunteerAck,
		ActorEmail:    volunteerEmail,
	})

	log.Info("Observation acknowledged")
	return nil
}

// Resolve переводит наблюдение ACKNOWLEDGED -> RESOLVED подтверждением
// администратора. RESOLVED терминален.
func (s *observationService) Resolve(ctx context.Context, id uuid.UUID, adminEmail string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "observation",
		"method":         "Resolve",
		"observation_id": id,
		"admin":          adminEmail,
	})

	if adminEmail == "" {
		return fmt.Errorf("service: resolver identity is required")
	}

	applied, err := s.repo.Resolve(ctx, id, adminEmail)
	if err != nil {
		log.WithError(err).Error("Failed to resolve observation in repository")
		return fmt.Errorf("service: could not resolve observation: %w", err)
	}
	if !applied {
		log.Debug("Resolve skipped: observation is not in ACKNOWLEDGED status")
		return nil
	}

	s.appendAudit(ctx, log, &models.AuditLogEntry{
		ObservationID: id,
		Action:        models.AuditResolved,
		ActorEmail:    adminEmail,
	})

	log.Info("Observation resolved")
	return nil
}

// RequestEnrichment публикует ручной триггер повторного обогащения.
// Идемпотентность обеспечивает условный захват в конвейере.
func (s *observationService) RequestEnrichment(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "observation",
		"method":         "RequestEnrichment",
		"observation_id": id,
	})

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to enrich a non-existent observation")
		return fmt.Errorf("service: observation not found for enrichment: %w", err)
	}

	event := dispatch.EnrichmentEvent{
		ObservationID: id,
		Source:        dispatch.SourceManual,
		Timestamp:     time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish enrichment trigger")
		return fmt.Errorf("service: could not request enrichment: %w", err)
	}

	log.Info("Enrichment requested")
	return nil
}

// GetStats возвращает количество наблюдений по статусам
func (s *observationService) GetStats(ctx context.Context) (map[models.ObservationStatus]int, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get observation stats")
		return nil, fmt.Errorf("service: could not get observation stats: %w", err)
	}
	return counts, nil
}

// ListAuditLogs возвращает записи журнала аудита, новые первыми
func (s *observationService) ListAuditLogs(ctx context.Context, observationID *uuid.UUID, limit int) ([]*models.AuditLogEntry, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	entries, err := s.audit.List(ctx, observationID, limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list audit log entries")
		return nil, fmt.Errorf("service: could not list audit logs: %w", err)
	}
	return entries, nil
}

// appendAudit пишет запись журнала best-effort: сбой журналирования не
// откатывает уже примененный переход статуса
func (s *observationService) appendAudit(ctx context.Context, log *logrus.Entry, entry *models.AuditLogEntry) {
	if err := s.audit.Append(ctx, entry); err != nil {
		log.WithError(err).WithField("action", entry.Action).Warn("Failed to append audit log entry")
	}
}
