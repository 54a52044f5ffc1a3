package enrichment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crowd_safety_system/internal/config"
	"github.com/shenikar/crowd_safety_system/internal/graph"
	"github.com/shenikar/crowd_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Коды ошибок обогащения, записываемые в ai_error
const (
	ErrCodeMissingAPIKey      = "MISSING_API_KEY"
	ErrCodeNoWaypoint         = "NO_WAYPOINT"
	ErrCodeNoPaths            = "NO_PATHS"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeMalformedResponse  = "MALFORMED_RESPONSE"
)

// ObservationStore определяет контракт конвейера для работы с наблюдениями
type ObservationStore interface {
	ClaimForProcessing(ctx context.Context, id uuid.UUID) (*models.Observation, error)
	CompleteEnrichment(ctx context.Context, id uuid.UUID, insight *models.AIInsight) error
	FailEnrichment(ctx context.Context, id uuid.UUID, aiError string) error
}

// WaypointSource определяет контракт для получения снимка графа точек
type WaypointSource interface {
	List(ctx context.Context) ([]*models.Waypoint, error)
}

// AuditAppender определяет контракт для записи в журнал аудита
type AuditAppender interface {
	Append(ctx context.Context, entry *models.AuditLogEntry) error
}

// Reasoner определяет контракт для вызова внешнего сервиса анализа
type Reasoner interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

// Pipeline - конвейер AI-обогащения наблюдения. Все ошибки шагов конвейера
// поглощаются и превращаются в ai_status=FAILED с кодом в ai_error; наружу
// они не пробрасываются. Возвращаемая ошибка означает только сбой самого
// хранилища (инфраструктурный), до записи терминального статуса.
type Pipeline struct {
	store    ObservationStore
	source   WaypointSource
	audit    AuditAppender
	reasoner Reasoner
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewPipeline(store ObservationStore, source WaypointSource, audit AuditAppender, reasoner Reasoner, logger *logrus.Logger, cfg *config.Config) *Pipeline {
	return &Pipeline{
		store:    store,
		source:   source,
		audit:    audit,
		reasoner: reasoner,
		logger:   logger,
		cfg:      cfg,
	}
}

// Process выполняет обогащение одного наблюдения. Вызов идемпотентен:
// конкурентный вызов, проигравший захват записи, возвращается сразу и не
// производит никаких побочных эффектов (в том числе обращений к внешнему
// сервису). FAILED терминален - автоматических повторов нет, чтобы не
// раскручивать счета за внешние вызовы; перезапуск только явным действием
// оператора.
func (p *Pipeline) Process(ctx context.Context, observationID uuid.UUID) error {
	log := p.logger.WithFields(logrus.Fields{
		"service":        "enrichment",
		"observation_id": observationID,
	})

	// Без ключа внешний сервис недоступен: помечаем запись и выходим до
	// любых других мутаций хранилища.
	if p.cfg.GeminiAPIKey == "" {
		log.Error("Gemini API key is not configured")
		return p.store.FailEnrichment(ctx, observationID, ErrCodeMissingAPIKey)
	}

	// Захват записи условной записью ai_status=PROCESSING. Проигрыш гонки
	// или терминальный статус - не ошибка, а штатный исход.
	obs, err := p.store.ClaimForProcessing(ctx, observationID)
	if err != nil {
		return fmt.Errorf("enrichment: failed to claim observation: %w", err)
	}
	if obs == nil {
		log.Debug("Observation already claimed or in terminal AI status. Skipping.")
		return nil
	}

	log.Info("Observation claimed for enrichment")

	if obs.WaypointID == uuid.Nil {
		log.Warn("Observation has no waypoint reference")
		return p.store.FailEnrichment(ctx, observationID, ErrCodeNoWaypoint)
	}

	// Граф строится заново из последнего снимка на каждый запуск
	waypoints, err := p.source.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load waypoint snapshot")
		return p.store.FailEnrichment(ctx, observationID, ErrCodeNoWaypoint)
	}
	g := graph.Build(waypoints)
	if !g.Contains(obs.WaypointID) {
		log.Warn("Observation references a missing waypoint")
		return p.store.FailEnrichment(ctx, observationID, ErrCodeNoWaypoint)
	}

	paths := g.FindPaths(obs.WaypointID, p.cfg.AIMaxPathDepth)
	if len(paths) == 0 {
		// Без единого коридора эвакуации выдавать рекомендации небезопасно
		log.Warn("No evacuation corridors found for waypoint")
		return p.store.FailEnrichment(ctx, observationID, ErrCodeNoPaths)
	}
	corridors := g.PathNames(paths)
	log.WithField("corridors", len(corridors)).Debug("Evacuation corridors resolved")

	prompt := BuildPrompt(obs, corridors)

	text, callErr := p.callWithRetry(ctx, log, prompt)
	if callErr != nil {
		log.WithError(callErr).Error("Reasoning service failed after all attempts")
		return p.store.FailEnrichment(ctx, observationID, fmt.Sprintf("%s: %v", ErrCodeServiceUnavailable, callErr))
	}

	insight, parseErr := ParseInsight(text)
	if parseErr != nil {
		// Систематически искаженный ответ повторами не лечится
		log.WithError(parseErr).Error("Failed to parse reasoning service response")
		return p.store.FailEnrichment(ctx, observationID, fmt.Sprintf("%s: %v", ErrCodeMalformedResponse, parseErr))
	}

	if err := p.store.CompleteEnrichment(ctx, observationID, insight); err != nil {
		return fmt.Errorf("enrichment: failed to store insight: %w", err)
	}

	// Запись в журнал - best-effort: дубликаты и пропуски допустимы
	auditEntry := &models.AuditLogEntry{
		ObservationID: observationID,
		Action:        models.AuditAISuggested,
		Message:       insight.Summary,
		ActorEmail:    "system",
	}
	if err := p.audit.Append(ctx, auditEntry); err != nil {
		log.WithError(err).Warn("Failed to append AI_SUGGESTED audit entry")
	}

	log.WithField("risk", insight.Risk).Info("Enrichment completed")
	return nil
}

// callWithRetry вызывает внешний сервис до AIMaxAttempts раз. Принимается
// любой непустой ответ; экспоненциальная пауза между попытками растет как
// base*1, base*2, ... Исчерпание попыток возвращает ошибку последней.
func (p *Pipeline) callWithRetry(ctx context.Context, log *logrus.Entry, prompt string) (string, error) {
	var lastErr error
	attempts := p.cfg.AIMaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		text, err := p.reasoner.Analyze(ctx, prompt)
		if err == nil && text != "" {
			return text, nil
		}
		if err == nil {
			err = fmt.Errorf("reasoning service returned an empty response")
		}
		lastErr = err

		if i < attempts-1 {
			delay := time.Duration(i+1) * p.cfg.AIRetryBaseDelay
			log.WithError(err).Warnf("Reasoning attempt %d failed. Retrying in %v", i+1, delay)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return "", lastErr
}
