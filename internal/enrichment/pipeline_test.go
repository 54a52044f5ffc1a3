package enrichment

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crowd_safety_system/internal/config"
	"github.com/shenikar/crowd_safety_system/internal/enrichment/mocks"
	"github.com/shenikar/crowd_safety_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validInsightJSON = `{"risk":"HIGH","summary":"Dense crowd at Main Stage.","actions":["Halt entry at Gate A","Divert crowd via Main Stage → West Exit"]}`

// newTestPipeline — вспомогательная функция для создания конвейера с моками.
func newTestPipeline(t *testing.T) (*Pipeline, *mocks.MockObservationStore, *mocks.MockWaypointSource, *mocks.MockAuditAppender, *mocks.MockReasoner) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockObservationStore(ctrl)
	sourceMock := mocks.NewMockWaypointSource(ctrl)
	auditMock := mocks.NewMockAuditAppender(ctrl)
	reasonerMock := mocks.NewMockReasoner(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		GeminiAPIKey:     "test-key",
		AIMaxAttempts:    3,
		AIRetryBaseDelay: time.Millisecond,
		AIMaxPathDepth:   2,
	}

	pipeline := NewPipeline(storeMock, sourceMock, auditMock, reasonerMock, logger, cfg)
	return pipeline, storeMock, sourceMock, auditMock, reasonerMock
}

// twoWaypointSnapshot возвращает снимок "Main Stage -> West Exit" и наблюдение,
// привязанное к стартовой точке.
func twoWaypointSnapshot(observationID uuid.UUID) (*models.Observation, []*models.Waypoint) {
	exit := &models.Waypoint{ID: uuid.New(), Name: "West Exit", Category: models.WaypointExit}
	stage := &models.Waypoint{
		ID:          uuid.New(),
		Name:        "Main Stage",
		Category:    models.WaypointStage,
		ConnectedTo: []uuid.UUID{exit.ID},
	}
	obs := &models.Observation{
		ID:         observationID,
		WaypointID: stage.ID,
		CrowdLevel: models.CrowdHigh,
		Message:    "People start to panic near the barrier",
		AIStatus:   models.AIProcessing,
	}
	return obs, []*models.Waypoint{stage, exit}
}

func TestProcess_MissingAPIKey(t *testing.T) {
	// Подготовка
	pipeline, storeMock, _, _, _ := newTestPipeline(t)
	pipeline.cfg = &config.Config{AIMaxAttempts: 3}
	ctx := context.Background()
	observationID := uuid.New()

	// Ожидания: запись помечается до любого захвата
	storeMock.EXPECT().
		FailEnrichment(ctx, observationID, ErrCodeMissingAPIKey).
		Return(nil).
		Times(1)

	// Действие
	err := pipeline.Process(ctx, observationID)

	// Проверки
	require.NoError(t, err)
}

func TestProcess_LostClaimIsNoOp(t *testing.T) {
	// Подготовка
	pipeline, storeMock, _, _, _ := newTestPipeline(t)
	ctx := context.Background()
	observationID := uuid.New()

	// Ожидания: проигранный захват не порождает ни вызовов сервиса, ни записей
	storeMock.EXPECT().
		ClaimForProcessing(ctx, observationID).
		Return(nil, nil).
		Times(1)

	// Действие
	err := pipeline.Process(ctx, observationID)

	// Проверки
	require.NoError(t, err)
}

func TestProcess_NoWaypointReference(t *testing.T) {
	// Подготовка
	pipeline, storeMock, _, _, _ := newTestPipeline(t)
	ctx := context.Background()
	observationID := uuid.New()
	obs := &models.Observation{ID: observationID, WaypointID: uuid.Nil}

	// Ожидания
	storeMock.EXPECT().ClaimForProcessing(ctx, observationID).Return(obs, nil).Times(1)
	storeMock.EXPECT().FailEnrichment(ctx, observationID, ErrCodeNoWaypoint).Return(nil).Times(1)

	// Действие
	err := pipeline.Process(ctx, observationID)

	// Проверки
	require.NoError(t, err)
}

func TestProcess_WaypointMissingFromSnapshot(t *testing.T) {
	// Подготовка
	pipeline, storeMock, sourceMock, _, _ := newTestPipeline(t)
	ctx := context.Background()
	observationID := uuid.New()
	obs := &models.Observation{ID: observationID, WaypointID: uuid.New()}

	// Ожидания: точка наблюдения удалена из снимка между созданием и обогащением
	storeMock.EXPECT().ClaimForProcessing(ctx, observationID).Return(obs, nil).Times(1)
	sourceMock.EXPECT().List(ctx).Return([]*models.Waypoint{}, nil).Times(1)
	storeMock.EXPECT().FailEnrichment(ctx, observationID, ErrCodeNoWaypoint).Return(nil).Times(1)

	// Действие
	err := pipeline.Process(ctx, observationID)

	// Проверки
	require.NoError(t, err)
}

func TestProcess_NoEvacuationPaths(t *testing.T) {
	// Подготовка: точка существует, но исходящих коридоров нет
	pipeline, storeMock, sourceMock, _, _ := newTestPipeline(t)
	ctx := context.Background()
	observationID := uuid.New()
	isolated := &models.Waypoint{ID: uuid.New(), Name: "Isolated", Category: models.WaypointPOI}
	obs := &models.Observation{ID: observationID, WaypointID: isolated.ID}

	// Ожидания: сервис анализа не вызывается вовсе
	storeMock.EXPECT().ClaimForProcessing(ctx, observationID).Return(obs, nil).Times(1)
	sourceMock.EXPECT().List(ctx).Return([]*models.Waypoint{isolated}, nil).Times(1)
	storeMock.EXPECT().FailEnrichment(ctx, observationID, ErrCodeNoPaths).Return(nil).Times(1)

	// Действие
	err := pipeline.Process(ctx, observationID)

	// Проверки
	require.NoError(t, err)
}

func TestProcess_Success(t *testing.T) {
	// Подготовка
	pipeline, storeMock, sourceMock, auditMock, reasonerMock := newTestPipeline(t)
	ctx := context.Background()
	observationID := uuid.New()
	obs, waypoints := twoWaypointSnapshot(observationID)

	// Ожидания
	storeMock.EXPECT().ClaimForProcessing(ctx, observationID).Return(obs, nil).Times(1)
	sourceMock.EXPECT().List(ctx).Return(waypoints, nil).Times(1)
	reasonerMock.EXPECT().
		Analyze(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			// Промпт содержит плотность, заметку и именованный коридор
			assert.Contains(t, prompt, "HIGH")
			assert.Contains(t, prompt, "People start to panic near the barrier")
			assert.Contains(t, prompt, "Main Stage → West Exit")
			return "```json\n" + validInsightJSON + "\n```", nil
		}).
		Times(1)
	storeMock.EXPECT().
		CompleteEnrichment(ctx, observationID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, insight *models.AIInsight) error {
			assert.Equal(t, "HIGH", insight.Risk)
			assert.Len(t, insight.Actions, 2)
			return nil
		}).
		Times(1)
	auditMock.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditLogEntry) error {
			assert.Equal(t, models.AuditAISuggested, entry.Action)
			assert.Equal(t, "Dense crowd at Main Stage.", entry.Message)
			assert.Equal(t, "system", entry.ActorEmail)
			return nil
		}).
		Times(1)

	// Действие
	err := pipeline.Process(ctx, observationID)

	// Проверки
	require.NoError(t, err)
}

func TestProcess_RetrySucceedsOnSecondAttempt(t *testing.T) {
	// Подготовка
	pipeline, storeMock, sourceMock, auditMock, reasonerMock := newTestPipeline(t)
	ctx := context.Background()
	observationID := uuid.New()
	obs, waypoints := twoWaypointSnapshot(observationID)

	// Ожидания
	storeMock.EXPECT().ClaimForProcessing(ctx, observationID).Return(obs, nil).Times(1)
	sourceMock.EXPECT().List(ctx).Return(waypoints, nil).Times(1)
	gomock.InOrder(
		reasonerMock.EXPECT().Analyze(ctx, gomock.Any()).Return("", fmt.Errorf("503 service unavailable")),
		reasonerMock.EXPECT().Analyze(ctx, gomock.Any()).Return(validInsightJSON, nil),
	)
	storeMock.EXPECT().CompleteEnrichment(ctx, observationID, gomock.Any()).Return(nil).Times(1)
	auditMock.EXPECT().Append(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := pipeline.Process(ctx, observationID)

	// Проверки
	require.NoError(t, err)
}

func TestProcess_AllAttemptsFail(t *testing.T) {
	// Подготовка
	pipeline, storeMock, sourceMock, _, reasonerMock := newTestPipeline(t)
	ctx := context.Background()
	observationID := uuid.New()
	obs, waypoints := twoWaypointSnapshot(observationID)

	// Ожидания
	storeMock.EXPECT().ClaimForProcessing(ctx, observationID).Return(obs, nil).Times(1)
	sourceMock.EXPECT().List(ctx).Return(waypoints, nil).Times(1)
	reasonerMock.EXPECT().
		Analyze(ctx, gomock.Any()).
		Return("", fmt.Errorf("503 service unavailable")).
		Times(3)
	storeMock.EXPECT().
		FailEnrichment(ctx, observationID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, aiError string) error {
			assert.True(t, strings.HasPrefix(aiError, ErrCodeServiceUnavailable))
			return nil
		}).
		Times(1)

	// Действие
	err := pipeline.Process(ctx, observationID)

	// Проверки: исчерпание попыток - терминальный FAILED, не ошибка конвейера
	require.NoError(t, err)
}

func TestProcess_EmptyResponseRetried(t *testing.T) {
	// Подготовка
	pipeline, storeMock, sourceMock, auditMock, reasonerMock := newTestPipeline(t)
	ctx := context.Background()
	observationID := uuid.New()
	obs, waypoints := twoWaypointSnapshot(observationID)

	// Ожидания: пустой ответ без ошибки тоже считается неудачной попыткой
	storeMock.EXPECT().ClaimForProcessing(ctx, observationID).Return(obs, nil).Times(1)
	sourceMock.EXPECT().List(ctx).Return(waypoints, nil).Times(1)
	gomock.InOrder(
		reasonerMock.EXPECT().Analyze(ctx, gomock.Any()).Return("", nil),
		reasonerMock.EXPECT().Analyze(ctx, gomock.Any()).Return(validInsightJSON, nil),
	)
	storeMock.EXPECT().CompleteEnrichment(ctx, observationID, gomock.Any()).Return(nil).Times(1)
	auditMock.EXPECT().Append(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := pipeline.Process(ctx, observationID)

	// Проверки
	require.NoError(t, err)
}

func TestProcess_MalformedResponse(t *testing.T) {
	// Подготовка
	pipeline, storeMock, sourceMock, _, reasonerMock := newTestPipeline(t)
	ctx := context.Background()
	observationID := uuid.New()
	obs, waypoints := twoWaypointSnapshot(observationID)

	// Ожидания: системно искаженный ответ не ретраится
	storeMock.EXPECT().ClaimForProcessing(ctx, observationID).Return(obs, nil).Times(1)
	sourceMock.EXPECT().List(ctx).Return(waypoints, nil).Times(1)
	reasonerMock.EXPECT().
		Analyze(ctx, gomock.Any()).
		Return("I cannot assist with that request.", nil).
		Times(1)
	storeMock.EXPECT().
		FailEnrichment(ctx, observationID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, aiError string) error {
			assert.True(t, strings.HasPrefix(aiError, ErrCodeMalformedResponse))
			return nil
		}).
		Times(1)

	// Действие
	err := pipeline.Process(ctx, observationID)

	// Проверки
	require.NoError(t, err)
}

func TestProcess_AuditFailureIsNotFatal(t *testing.T) {
	// Подготовка
	pipeline, storeMock, sourceMock, auditMock, reasonerMock := newTestPipeline(t)
	ctx := context.Background()
	observationID := uuid.New()
	obs, waypoints := twoWaypointSnapshot(observationID)

	// Ожидания
	storeMock.EXPECT().ClaimForProcessing(ctx, observationID).Return(obs, nil).Times(1)
	sourceMock.EXPECT().List(ctx).Return(waypoints, nil).Times(1)
	reasonerMock.EXPECT().Analyze(ctx, gomock.Any()).Return(validInsightJSON, nil).Times(1)
	storeMock.EXPECT().CompleteEnrichment(ctx, observationID, gomock.Any()).Return(nil).Times(1)
	auditMock.EXPECT().Append(ctx, gomock.Any()).Return(fmt.Errorf("db is down")).Times(1)

	// Действие
	err := pipeline.Process(ctx, observationID)

	// Проверки: запись журнала best-effort
	require.NoError(t, err)
}
