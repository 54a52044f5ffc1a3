package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// stubAnalyzer - простая замена конвейера: считает вызовы и возвращает
// заданную ошибку. Генерированный мок здесь не подходит из-за цикла импортов
// с пакетом mocks.
type stubAnalyzer struct {
	calls []uuid.UUID
	err   error
}

func (s *stubAnalyzer) Process(_ context.Context, observationID uuid.UUID) error {
	s.calls = append(s.calls, observationID)
	return s.err
}

func newTestWorker(analyzer Analyzer) *EnrichmentWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewEnrichmentWorker(nil, analyzer, logger)
}

func TestProcessEvent_DuplicateEventIsSkipped(t *testing.T) {
	// Подготовка
	analyzer := &stubAnalyzer{}
	worker := newTestWorker(analyzer)
	ctx := context.Background()
	observationID := uuid.New()
	event := EnrichmentEvent{ObservationID: observationID, Source: SourceCreated}

	// Действие: одно и то же событие приходит дважды
	worker.processEvent(ctx, event)
	worker.processEvent(ctx, event)

	// Проверки: конвейер запущен только один раз
	assert.Equal(t, []uuid.UUID{observationID}, analyzer.calls)
	assert.Equal(t, 1, worker.ledger.Len())
}

func TestProcessEvent_ManualSourceBypassesLedger(t *testing.T) {
	// Подготовка
	analyzer := &stubAnalyzer{}
	worker := newTestWorker(analyzer)
	ctx := context.Background()
	observationID := uuid.New()

	// Действие: после автоматического запуска оператор просит повтор
	worker.processEvent(ctx, EnrichmentEvent{ObservationID: observationID, Source: SourceCreated})
	worker.processEvent(ctx, EnrichmentEvent{ObservationID: observationID, Source: SourceManual})

	// Проверки: ручной перезапуск обходит процессный журнал
	assert.Len(t, analyzer.calls, 2)
}

func TestProcessEvent_InfraFailureAllowsRetry(t *testing.T) {
	// Подготовка
	analyzer := &stubAnalyzer{err: fmt.Errorf("db is down")}
	worker := newTestWorker(analyzer)
	ctx := context.Background()
	observationID := uuid.New()
	event := EnrichmentEvent{ObservationID: observationID, Source: SourceCreated}

	// Действие: сбой конвейера снимает отметку, повторное событие запускает снова
	worker.processEvent(ctx, event)
	analyzer.err = nil
	worker.processEvent(ctx, event)

	// Проверки
	assert.Len(t, analyzer.calls, 2)
	assert.Equal(t, 1, worker.ledger.Len())
}

func TestProcessEvent_NilObservationID(t *testing.T) {
	// Подготовка
	analyzer := &stubAnalyzer{}
	worker := newTestWorker(analyzer)

	// Действие
	worker.processEvent(context.Background(), EnrichmentEvent{Source: SourceCreated})

	// Проверки: событие без id отбрасывается до журнала и конвейера
	assert.Empty(t, analyzer.calls)
	assert.Equal(t, 0, worker.ledger.Len())
}

func TestProcessedLedger(t *testing.T) {
	// Подготовка
	ledger := NewProcessedLedger()
	id := uuid.New()

	// Проверки
	assert.True(t, ledger.MarkIfNew(id))
	assert.False(t, ledger.MarkIfNew(id))
	assert.Equal(t, 1, ledger.Len())

	ledger.Forget(id)
	assert.True(t, ledger.MarkIfNew(id))
}
