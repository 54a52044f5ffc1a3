package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	enrichmentQueueKey = "enrichment_requests"
)

// EnrichmentEvent - событие-триггер AI-обогащения одного наблюдения.
// Доставка как минимум однократная: событие может прийти повторно от разных
// наблюдателей, защита от дублирующей работы лежит на условном захвате
// записи в конвейере, а не здесь.
type EnrichmentEvent struct {
	ObservationID uuid.UUID `json:"observation_id"`
	Source        string    `json:"source"`
	Timestamp     time.Time `json:"timestamp"`
}

// EnrichmentPublisher - интерфейс для публикации триггеров обогащения
type EnrichmentPublisher interface {
	Publish(ctx context.Context, event EnrichmentEvent) error
}

// RedisEnrichmentPublisher - реализация EnrichmentPublisher, использующая Redis
type RedisEnrichmentPublisher struct {
	redisClient *redis.Client
}

// NewRedisEnrichmentPublisher создает новый RedisEnrichmentPublisher
func NewRedisEnrichmentPublisher(client *redis.Client) *RedisEnrichmentPublisher {
	return &RedisEnrichmentPublisher{
		redisClient: client,
	}
}

// Publish публикует событие обогащения в очередь Redis
func (p *RedisEnrichmentPublisher) Publish(ctx context.Context, event EnrichmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal enrichment event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, enrichmentQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish enrichment event to Redis: %w", err)
	}
	return nil
}
