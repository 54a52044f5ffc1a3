package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/crowd_safety_system/internal/config"
	"github.com/shenikar/crowd_safety_system/internal/models"
	"github.com/shenikar/crowd_safety_system/internal/service"
	"github.com/shenikar/crowd_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubSweepRunner - замена свипера для тестов хэндлеров
type stubSweepRunner struct {
	count int
	err   error
}

func (s *stubSweepRunner) RunOnce(_ context.Context) (int, error) {
	return s.count, s.err
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockObservationService, *mocks.MockWaypointService, *stubSweepRunner, *gin.Engine) {
	ctrl := gomock.NewController(t)
	observationMock := mocks.NewMockObservationService(ctrl)
	waypointMock := mocks.NewMockWaypointService(ctrl)
	sweepStub := &stubSweepRunner{}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:        []string{"test-api-key"},
		AIMaxPathDepth: 2,
	}

	handler := NewHandler(observationMock, waypointMock, sweepStub, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return observationMock, waypointMock, sweepStub, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func adminHeaders() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func TestCreateObservation_Success(t *testing.T) {
	observationMock, _, _, router := newTestHandler(t)
	observationID := uuid.New()
	waypointID := uuid.New()
	reqBody := CreateObservationRequest{
		WaypointID:     waypointID.String(),
		VolunteerEmail: "volunteer@example.com",
		CrowdLevel:     "HIGH",
		Message:        "Crowd pressure building",
	}

	observationMock.EXPECT().
		SubmitObservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, obs *models.Observation) error {
			assert.Equal(t, waypointID, obs.WaypointID)
			obs.ID = observationID
			obs.Status = models.StatusNew
			obs.AIStatus = models.AIPending
			obs.CreatedAt = time.Now()
			obs.ExpiresAt = time.Now().Add(10 * time.Minute)
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/observations", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ObservationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, observationID, resp.ID)
	assert.Equal(t, "NEW", resp.Status)
	assert.Equal(t, "PENDING", resp.AIStatus)
}

func TestCreateObservation_InvalidJSON(t *testing.T) {
	observationMock, _, _, router := newTestHandler(t)

	observationMock.EXPECT().SubmitObservation(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/observations", bytes.NewBufferString(`{"waypoint_id": "abc"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateObservation_ValidationError(t *testing.T) {
	observationMock, _, _, router := newTestHandler(t)
	reqBody := CreateObservationRequest{ // Отсутствует CrowdLevel
		WaypointID:     uuid.New().String(),
		VolunteerEmail: "volunteer@example.com",
	}

	observationMock.EXPECT().SubmitObservation(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/observations", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetObservation_NotFound(t *testing.T) {
	observationMock, _, _, router := newTestHandler(t)
	observationID := uuid.New()

	observationMock.EXPECT().
		GetObservation(gomock.Any(), observationID).
		Return(nil, fmt.Errorf("observation not found")).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/observations/"+observationID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendInstruction_Success(t *testing.T) {
	observationMock, _, _, router := newTestHandler(t)
	observationID := uuid.New()
	reqBody := SendInstructionRequest{
		Instruction: "Close Gate A",
		AdminEmail:  "admin@example.com",
	}

	observationMock.EXPECT().
		SendInstruction(gomock.Any(), observationID, "Close Gate A", "admin@example.com").
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/observations/"+observationID.String()+"/instruction", bytes.NewBuffer(bodyBytes), adminHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSendInstruction_Unauthorized(t *testing.T) {
	observationMock, _, _, router := newTestHandler(t)
	observationID := uuid.New()

	observationMock.EXPECT().SendInstruction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(SendInstructionRequest{Instruction: "Close Gate A", AdminEmail: "admin@example.com"})
	w := makeRequest(router, "POST", "/api/v1/observations/"+observationID.String()+"/instruction", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSendInstruction_AlreadyResolved(t *testing.T) {
	observationMock, _, _, router := newTestHandler(t)
	observationID := uuid.New()
	reqBody := SendInstructionRequest{
		Instruction: "Close Gate A",
		AdminEmail:  "admin@example.com",
	}

	observationMock.EXPECT().
		SendInstruction(gomock.Any(), observationID, "Close Gate A", "admin@example.com").
		Return(service.ErrObservationResolved).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/observations/"+observationID.String()+"/instruction", bytes.NewBuffer(bodyBytes), adminHeaders())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already resolved")
}

func TestAcknowledgeObservation_Success(t *testing.T) {
	observationMock, _, _, router := newTestHandler(t)
	observationID := uuid.New()
	reqBody := AcknowledgeRequest{VolunteerEmail: "volunteer@example.com"}

	observationMock.EXPECT().
		Acknowledge(gomock.Any(), observationID, "volunteer@example.com").
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/observations/"+observationID.String()+"/acknowledge", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveObservation_Success(t *testing.T) {
	observationMock, _, _, router := newTestHandler(t)
	observationID := uuid.New()
	reqBody := ResolveRequest{AdminEmail: "admin@example.com"}

	observationMock.EXPECT().
		Resolve(gomock.Any(), observationID, "admin@example.com").
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/observations/"+observationID.String()+"/resolve", bytes.NewBuffer(bodyBytes), adminHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEnrichObservation_Accepted(t *testing.T) {
	observationMock, _, _, router := newTestHandler(t)
	observationID := uuid.New()

	observationMock.EXPECT().
		RequestEnrichment(gomock.Any(), observationID).
		Return(nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/observations/"+observationID.String()+"/enrich", nil)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	observationMock, _, _, router := newTestHandler(t)

	observationMock.EXPECT().
		GetStats(gomock.Any()).
		Return(map[models.ObservationStatus]int{
			models.StatusNew:      2,
			models.StatusResolved: 5,
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/observations/stats", nil, adminHeaders())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.New)
	assert.Equal(t, 5, resp.Resolved)
	assert.Zero(t, resp.Pending)
}

func TestCreateWaypoint_Success(t *testing.T) {
	_, waypointMock, _, router := newTestHandler(t)
	waypointID := uuid.New()
	reqBody := CreateWaypointRequest{
		Name:      "West Exit",
		Category:  "EXIT",
		Latitude:  55.75,
		Longitude: 37.61,
	}

	waypointMock.EXPECT().
		CreateWaypoint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, wp *models.Waypoint) error {
			wp.ID = waypointID
			wp.CreatedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/waypoints", bytes.NewBuffer(bodyBytes), adminHeaders())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp WaypointResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, waypointID, resp.ID)
	assert.Equal(t, "West Exit", resp.Name)
}

func TestCreateWaypoint_InvalidCategory(t *testing.T) {
	_, waypointMock, _, router := newTestHandler(t)
	reqBody := CreateWaypointRequest{
		Name:      "West Exit",
		Category:  "TUNNEL",
		Latitude:  55.75,
		Longitude: 37.61,
	}

	waypointMock.EXPECT().CreateWaypoint(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/waypoints", bytes.NewBuffer(bodyBytes), adminHeaders())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleConnection_Success(t *testing.T) {
	_, waypointMock, _, router := newTestHandler(t)
	from := uuid.New()
	to := uuid.New()

	waypointMock.EXPECT().
		ToggleConnection(gomock.Any(), from, to).
		Return(true, nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/waypoints/"+from.String()+"/connections/"+to.String(), nil, adminHeaders())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ConnectionToggleResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Connected)
}

func TestGetEvacuationPaths_Success(t *testing.T) {
	_, waypointMock, _, router := newTestHandler(t)
	waypointID := uuid.New()

	// Глубина по умолчанию берется из конфигурации
	waypointMock.EXPECT().
		FindEvacuationPaths(gomock.Any(), waypointID, 2).
		Return([]string{"Main Stage → West Exit"}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/waypoints/"+waypointID.String()+"/paths", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp EvacuationPathsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, []string{"Main Stage → West Exit"}, resp.Paths)
}

func TestSetAssignments_Success(t *testing.T) {
	_, waypointMock, _, router := newTestHandler(t)
	waypointID := uuid.New()
	reqBody := SetAssignmentsRequest{Emails: []string{"a@example.com", "b@example.com"}}

	waypointMock.EXPECT().
		SetAssignments(gomock.Any(), waypointID, []string{"a@example.com", "b@example.com"}).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/waypoints/"+waypointID.String()+"/assignments", bytes.NewBuffer(bodyBytes), adminHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteWaypoint_Unauthorized(t *testing.T) {
	_, waypointMock, _, router := newTestHandler(t)

	waypointMock.EXPECT().DeleteWaypoint(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/waypoints/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSaveBoundary_Success(t *testing.T) {
	_, waypointMock, _, router := newTestHandler(t)
	boundary := `{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[0,0]]]}`

	waypointMock.EXPECT().
		SaveEventBoundary(gomock.Any(), json.RawMessage(boundary)).
		Return(nil).
		Times(1)

	w := makeRequest(router, "PUT", "/api/v1/config/boundary", bytes.NewBufferString(boundary), adminHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListAuditLogs_FilterByObservation(t *testing.T) {
	observationMock, _, _, router := newTestHandler(t)
	observationID := uuid.New()

	observationMock.EXPECT().
		ListAuditLogs(gomock.Any(), gomock.Any(), 100).
		DoAndReturn(func(_ context.Context, filter *uuid.UUID, _ int) ([]*models.AuditLogEntry, error) {
			require.NotNil(t, filter)
			assert.Equal(t, observationID, *filter)
			return []*models.AuditLogEntry{
				{ID: 1, ObservationID: observationID, Action: models.AuditExpired, Message: "Auto-resolved by system timer"},
			}, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/audit-logs?observation_id="+observationID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []AuditLogResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "EXPIRED", resp[0].Action)
}

func TestRunSweep_Success(t *testing.T) {
	_, _, sweepStub, router := newTestHandler(t)
	sweepStub.count = 3

	w := makeRequest(router, "POST", "/api/v1/system/sweep", nil, adminHeaders())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SweepResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.ResolvedCount)
}

func TestHealthCheck(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
