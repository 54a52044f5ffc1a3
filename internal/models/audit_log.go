package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction - тип действия в журнале аудита
type AuditAction string

const (
	AuditAISuggested  AuditAction = "AI_SUGGESTED"
	AuditAdminSent    AuditAction = "ADMIN_SENT"
	AuditVolunteerAck AuditAction = "VOLUNTEER_ACK"
	AuditResolved     AuditAction = "RESOLVED"
	AuditExpired      AuditAction = "EXPIRED"
)

// AuditLogEntry - неизменяемая запись журнала аудита (append-only).
// Временная метка присваивается сервером; операций обновления и удаления нет.
type AuditLogEntry struct {
	ID            int64       `json:"id"`
	ObservationID uuid.UUID   `json:"observation_id"`
	Action        AuditAction `json:"action"`
	Message       string      `json:"message,omitempty"`
	ActorEmail    string      `json:"actor_email,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}
