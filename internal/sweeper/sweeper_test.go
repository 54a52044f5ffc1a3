package sweeper

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crowd_safety_system/internal/models"
	"github.com/shenikar/crowd_safety_system/internal/sweeper/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSweeper — вспомогательная функция для создания свипера с моками.
func newTestSweeper(t *testing.T) (*Sweeper, *mocks.MockObservationExpirer, *mocks.MockAuditAppender) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockObservationExpirer(ctrl)
	auditMock := mocks.NewMockAuditAppender(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return New(repoMock, auditMock, logger, 5*time.Minute), repoMock, auditMock
}

func TestRunOnce_ResolvesExpiredAndAudits(t *testing.T) {
	// Подготовка
	sweeper, repoMock, auditMock := newTestSweeper(t)
	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()

	// Ожидания: по записи журнала на каждое закрытое наблюдение
	repoMock.EXPECT().
		ExpireDue(ctx, gomock.Any()).
		Return([]uuid.UUID{first, second}, nil).
		Times(1)

	var mu sync.Mutex
	audited := make(map[uuid.UUID]*models.AuditLogEntry)
	auditMock.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditLogEntry) error {
			mu.Lock()
			defer mu.Unlock()
			audited[entry.ObservationID] = entry
			return nil
		}).
		Times(2)

	// Действие
	count, err := sweeper.RunOnce(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Contains(t, audited, first)
	require.Contains(t, audited, second)
	for _, entry := range audited {
		assert.Equal(t, models.AuditExpired, entry.Action)
		assert.Equal(t, ExpiredMessage, entry.Message)
		assert.Equal(t, "system", entry.ActorEmail)
	}
}

func TestRunOnce_NothingExpiredIsNoOp(t *testing.T) {
	// Подготовка
	sweeper, repoMock, _ := newTestSweeper(t)
	ctx := context.Background()

	// Ожидания: журнал не трогается
	repoMock.EXPECT().ExpireDue(ctx, gomock.Any()).Return([]uuid.UUID{}, nil).Times(1)

	// Действие
	count, err := sweeper.RunOnce(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRunOnce_RepositoryError(t *testing.T) {
	// Подготовка
	sweeper, repoMock, _ := newTestSweeper(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ExpireDue(ctx, gomock.Any()).Return(nil, fmt.Errorf("db is down")).Times(1)

	// Действие
	count, err := sweeper.RunOnce(ctx)

	// Проверки
	require.Error(t, err)
	assert.Zero(t, count)
}

func TestRunOnce_AuditFailureIsNotFatal(t *testing.T) {
	// Подготовка
	sweeper, repoMock, auditMock := newTestSweeper(t)
	ctx := context.Background()
	observationID := uuid.New()

	// Ожидания: сбой журнала не отменяет уже примененное закрытие
	repoMock.EXPECT().ExpireDue(ctx, gomock.Any()).Return([]uuid.UUID{observationID}, nil).Times(1)
	auditMock.EXPECT().Append(ctx, gomock.Any()).Return(fmt.Errorf("db is down")).Times(1)

	// Действие
	count, err := sweeper.RunOnce(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
