package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// SourceCreated - событие от создания нового наблюдения
	SourceCreated = "created"
	// SourceManual - явный повторный запуск оператором
	SourceManual = "manual"

	popRetryDelay = 5 * time.Second
)

// Analyzer - интерфейс конвейера AI-обогащения, запускаемого воркером
type Analyzer interface {
	Process(ctx context.Context, observationID uuid.UUID) error
}

// EnrichmentWorker - воркер, извлекающий триггеры обогащения из очереди
// Redis и запускающий конвейер. События доставляются как минимум один раз;
// процессный журнал идемпотентности отсекает повторы внутри этого процесса,
// условный захват в конвейере защищает от конкурентных процессов.
type EnrichmentWorker struct {
	redisClient *redis.Client
	analyzer    Analyzer
	ledger      *ProcessedLedger
	logger      *logrus.Logger
}

// NewEnrichmentWorker создает новый EnrichmentWorker
func NewEnrichmentWorker(redisClient *redis.Client, analyzer Analyzer, logger *logrus.Logger) *EnrichmentWorker {
	return &EnrichmentWorker{
		redisClient: redisClient,
		analyzer:    analyzer,
		ledger:      NewProcessedLedger(),
		logger:      logger,
	}
}

// Start запускает горутину для обработки очереди обогащения
func (w *EnrichmentWorker) Start(ctx context.Context) {
	w.logger.Info("Starting enrichment worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping enrichment worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, enrichmentQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop enrichment event from Redis")
					time.Sleep(popRetryDelay) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event EnrichmentEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal enrichment event from Redis")
					continue
				}

				w.processEvent(ctx, event)
			}
		}
	}()
}

func (w *EnrichmentWorker) processEvent(ctx context.Context, event EnrichmentEvent) {
	log := w.logger.WithFields(logrus.Fields{
		"observation_id": event.ObservationID,
		"source":         event.Source,
	})
	log.Debug("Processing enrichment event...")

	if event.ObservationID == uuid.Nil {
		log.Warn("Enrichment event without observation id. Skipping.")
		return
	}

	// Ручной перезапуск обходит процессный журнал: оператор явно просит
	// попробовать снова, решение остается за условным захватом в хранилище.
	if event.Source == SourceManual {
		w.ledger.Forget(event.ObservationID)
	}

	if !w.ledger.MarkIfNew(event.ObservationID) {
		log.Debug("Observation already dispatched in this process. Skipping.")
		return
	}

	if err := w.analyzer.Process(ctx, event.ObservationID); err != nil {
		// Инфраструктурный сбой до записи терминального ai_status: снимаем
		// отметку, чтобы следующее событие могло запустить конвейер снова.
		w.ledger.Forget(event.ObservationID)
		log.WithError(err).Error("Enrichment pipeline failed")
		return
	}

	log.Debug("Enrichment event processed.")
}
