package models

import (
	"time"

	"github.com/google/uuid"
)

// CrowdLevel - плотность толпы, заявленная волонтером
type CrowdLevel string

const (
	CrowdLow      CrowdLevel = "LOW"
	CrowdMedium   CrowdLevel = "MEDIUM"
	CrowdHigh     CrowdLevel = "HIGH"
	CrowdCritical CrowdLevel = "CRITICAL"
)

// ObservationStatus - статус рабочего процесса наблюдения.
// Переходы только вперед: NEW -> PENDING -> ACKNOWLEDGED -> RESOLVED,
// плюс прямой переход NEW|PENDING -> RESOLVED при истечении срока.
type ObservationStatus string

const (
	StatusNew          ObservationStatus = "NEW"
	StatusPending      ObservationStatus = "PENDING"
	StatusAcknowledged ObservationStatus = "ACKNOWLEDGED"
	StatusResolved     ObservationStatus = "RESOLVED"
)

// AIStatus - статус AI-обогащения. Независим от ObservationStatus.
// Пустое значение означает "еще не обрабатывалось" и эквивалентно PENDING.
// DONE и FAILED терминальны: автоматических повторов для FAILED нет.
type AIStatus string

const (
	AIPending    AIStatus = "PENDING"
	AIProcessing AIStatus = "PROCESSING"
	AIDone       AIStatus = "DONE"
	AIFailed     AIStatus = "FAILED"
)

// AIInsight - результат AI-анализа наблюдения
type AIInsight struct {
	Risk    string   `json:"risk"`
	Summary string   `json:"summary"`
	Actions []string `json:"actions"`
}

// Observation представляет полевой отчет волонтера о состоянии толпы на точке
type Observation struct {
	ID             uuid.UUID         `json:"id"`
	WaypointID     uuid.UUID         `json:"waypoint_id"`
	VolunteerEmail string            `json:"volunteer_email"`
	CrowdLevel     CrowdLevel        `json:"crowd_level"`
	Message        string            `json:"message,omitempty"`
	ImageBase64    string            `json:"image_base64,omitempty"`
	Status         ObservationStatus `json:"status"`
	AIStatus       AIStatus          `json:"ai_status,omitempty"`
	AIInsight      *AIInsight        `json:"ai_insight,omitempty"`
	AIError        string            `json:"ai_error,omitempty"`
	Instruction    string            `json:"instruction,omitempty"`
	AdminEmail     string            `json:"admin_email,omitempty"`
	ResolvedBy     string            `json:"resolved_by,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	ExpiresAt      time.Time         `json:"expires_at"`
}
