package v1

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CreateObservationRequest DTO для отправки наблюдения волонтером
// @Description DTO для отправки наблюдения волонтером
type CreateObservationRequest struct {
	WaypointID     string `json:"waypoint_id" validate:"required,uuid"`
	VolunteerEmail string `json:"volunteer_email" validate:"required,email"`
	CrowdLevel     string `json:"crowd_level" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Message        string `json:"message,omitempty"`
	ImageBase64    string `json:"image_base64,omitempty"`
}

// SendInstructionRequest DTO для отправки инструкции администратором
// @Description DTO для отправки инструкции администратором
type SendInstructionRequest struct {
	Instruction string `json:"instruction" validate:"required,min=1"`
	AdminEmail  string `json:"admin_email" validate:"required,email"`
}

// AcknowledgeRequest DTO для подтверждения инструкции волонтером
// @Description DTO для подтверждения инструкции волонтером
type AcknowledgeRequest struct {
	VolunteerEmail string `json:"volunteer_email" validate:"required,email"`
}

// ResolveRequest DTO для закрытия наблюдения администратором
// @Description DTO для закрытия наблюдения администратором
type ResolveRequest struct {
	AdminEmail string `json:"admin_email" validate:"required,email"`
}

// AIInsightResponse DTO с результатом AI-анализа
// @Description DTO с результатом AI-анализа
type AIInsightResponse struct {
	Risk    string   `json:"risk"`
	Summary string   `json:"summary"`
	Actions []string `json:"actions"`
}

// ObservationResponse DTO для ответа с информацией о наблюдении
// @Description DTO для ответа с информацией о наблюдении
type ObservationResponse struct {
	ID             uuid.UUID          `json:"id"`
	WaypointID     uuid.UUID          `json:"waypoint_id"`
	VolunteerEmail string             `json:"volunteer_email"`
	CrowdLevel     string             `json:"crowd_level"`
	Message        string             `json:"message,omitempty"`
	ImageBase64    string             `json:"image_base64,omitempty"`
	Status         string             `json:"status"`
	AIStatus       string             `json:"ai_status,omitempty"`
	AIInsight      *AIInsightResponse `json:"ai_insight,omitempty"`
	AIError        string             `json:"ai_error,omitempty"`
	Instruction    string             `json:"instruction,omitempty"`
	AdminEmail     string             `json:"admin_email,omitempty"`
	ResolvedBy     string             `json:"resolved_by,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	ExpiresAt      time.Time          `json:"expires_at"`
}

// CreateWaypointRequest DTO для создания точки маршрута
// @Description DTO для создания точки маршрута
type CreateWaypointRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=255"`
	Category  string  `json:"category" validate:"required,oneof=ENTRY EXIT POI JUNCTION MEDICAL STAGE BATHROOM"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// UpdateWaypointRequest DTO для обновления точки маршрута
// @Description DTO для обновления точки маршрута
type UpdateWaypointRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=255"`
	Category  string  `json:"category" validate:"required,oneof=ENTRY EXIT POI JUNCTION MEDICAL STAGE BATHROOM"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// SetAssignmentsRequest DTO для назначения волонтеров на точку
// @Description DTO для назначения волонтеров на точку
type SetAssignmentsRequest struct {
	Emails []string `json:"emails" validate:"required,dive,email"`
}

// WaypointResponse DTO для ответа с информацией о точке маршрута
// @Description DTO для ответа с информацией о точке маршрута
type WaypointResponse struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	Latitude       float64     `json:"latitude"`
	Longitude      float64     `json:"longitude"`
	AssignedEmails []string    `json:"assigned_emails"`
	ConnectedTo    []uuid.UUID `json:"connected_to"`
	CreatedAt      time.Time   `json:"created_at"`
}

// ConnectionToggleResponse DTO для ответа на переключение связи
// @Description DTO для ответа на переключение связи
type ConnectionToggleResponse struct {
	Connected bool `json:"connected"`
}

// EvacuationPathsResponse DTO со списком коридоров эвакуации
// @Description DTO со списком коридоров эвакуации
type EvacuationPathsResponse struct {
	Paths []string `json:"paths"`
}

// AuditLogResponse DTO для записи журнала аудита
// @Description DTO для записи журнала аудита
type AuditLogResponse struct {
	ID            int64     `json:"id"`
	ObservationID uuid.UUID `json:"observation_id"`
	Action        string    `json:"action"`
	Message       string    `json:"message,omitempty"`
	ActorEmail    string    `json:"actor_email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// StatsResponse DTO для ответа со статистикой наблюдений
// @Description DTO для ответа со статистикой наблюдений
type StatsResponse struct {
	New          int `json:"new"`
	Pending      int `json:"pending"`
	Acknowledged int `json:"acknowledged"`
	Resolved     int `json:"resolved"`
}

// BoundaryResponse DTO с полигоном границы мероприятия
// @Description DTO с полигоном границы мероприятия
type BoundaryResponse struct {
	Boundary json.RawMessage `json:"boundary"`
}

// SweepResponse DTO для ответа со счетчиком закрытых наблюдений
// @Description DTO для ответа со счетчиком закрытых наблюдений
type SweepResponse struct {
	ResolvedCount int `json:"resolved_count"`
}
