package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/crowd_safety_system/internal/models"
	"github.com/shenikar/crowd_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestWaypointService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestWaypointService(t *testing.T) (*waypointService, *mocks.MockWaypointRepository, *mocks.MockBoundaryRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockWaypointRepository(ctrl)
	boundaryMock := mocks.NewMockBoundaryRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewWaypointService(repoMock, boundaryMock, logger)
	return service.(*waypointService), repoMock, boundaryMock
}

func TestToggleConnection_AddsMissingEdge(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestWaypointService(t)
	ctx := context.Background()
	from := uuid.New()
	to := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, from).
		Return(&models.Waypoint{ID: from, ConnectedTo: []uuid.UUID{}}, nil).
		Times(1)
	repoMock.EXPECT().AddConnection(ctx, from, to).Return(nil).Times(1)

	// Действие
	connected, err := service.ToggleConnection(ctx, from, to)

	// Проверки
	require.NoError(t, err)
	assert.True(t, connected)
}

func TestToggleConnection_RemovesExistingEdge(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestWaypointService(t)
	ctx := context.Background()
	from := uuid.New()
	to := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, from).
		Return(&models.Waypoint{ID: from, ConnectedTo: []uuid.UUID{to}}, nil).
		Times(1)
	repoMock.EXPECT().RemoveConnection(ctx, from, to).Return(nil).Times(1)

	// Действие
	connected, err := service.ToggleConnection(ctx, from, to)

	// Проверки
	require.NoError(t, err)
	assert.False(t, connected)
}

func TestToggleConnection_SelfLoopRejected(t *testing.T) {
	// Подготовка
	service, _, _ := newTestWaypointService(t)
	ctx := context.Background()
	id := uuid.New()

	// Действие: репозиторий не должен вызываться
	_, err := service.ToggleConnection(ctx, id, id)

	// Проверки
	require.Error(t, err)
}

func TestToggleConnection_SourceNotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestWaypointService(t)
	ctx := context.Background()
	from := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, from).
		Return(nil, fmt.Errorf("waypoint with id %s not found", from)).
		Times(1)

	// Действие
	_, err := service.ToggleConnection(ctx, from, uuid.New())

	// Проверки
	require.Error(t, err)
}

func TestFindEvacuationPaths_BuildsReadableCorridors(t *testing.T) {
	// Подготовка: Main Stage -> West Exit
	service, repoMock, _ := newTestWaypointService(t)
	ctx := context.Background()
	exit := &models.Waypoint{ID: uuid.New(), Name: "West Exit", Category: models.WaypointExit}
	stage := &models.Waypoint{
		ID:          uuid.New(),
		Name:        "Main Stage",
		Category:    models.WaypointStage,
		ConnectedTo: []uuid.UUID{exit.ID},
	}

	// Ожидания
	repoMock.EXPECT().List(ctx).Return([]*models.Waypoint{stage, exit}, nil).Times(1)

	// Действие
	paths, err := service.FindEvacuationPaths(ctx, stage.ID, 2)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{"Main Stage → West Exit"}, paths)
}

func TestFindEvacuationPaths_EmptyResultIsNotAnError(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestWaypointService(t)
	ctx := context.Background()

	// Ожидания: стартовой точки нет в снимке
	repoMock.EXPECT().List(ctx).Return([]*models.Waypoint{}, nil).Times(1)

	// Действие
	paths, err := service.FindEvacuationPaths(ctx, uuid.New(), 2)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSaveEventBoundary_RejectsInvalidJSON(t *testing.T) {
	// Подготовка
	service, _, _ := newTestWaypointService(t)
	ctx := context.Background()

	// Действие: хранилище не должно вызываться
	err := service.SaveEventBoundary(ctx, json.RawMessage(`{"type":`))

	// Проверки
	require.Error(t, err)
}

func TestSaveEventBoundary_Success(t *testing.T) {
	// Подготовка
	service, _, boundaryMock := newTestWaypointService(t)
	ctx := context.Background()
	boundary := json.RawMessage(`{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[0,0]]]}`)

	// Ожидания
	boundaryMock.EXPECT().SaveBoundary(ctx, boundary).Return(nil).Times(1)

	// Действие
	err := service.SaveEventBoundary(ctx, boundary)

	// Проверки
	require.NoError(t, err)
}

func TestGetEventBoundary_NilWhenUnset(t *testing.T) {
	// Подготовка
	service, _, boundaryMock := newTestWaypointService(t)
	ctx := context.Background()

	// Ожидания
	boundaryMock.EXPECT().GetBoundary(ctx).Return(nil, nil).Times(1)

	// Действие
	boundary, err := service.GetEventBoundary(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, boundary)
}
