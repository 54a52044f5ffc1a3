package models

import (
	"time"

	"github.com/google/uuid"
)

// WaypointCategory - категория точки маршрута на карте мероприятия
type WaypointCategory string

const (
	WaypointEntry    WaypointCategory = "ENTRY"
	WaypointExit     WaypointCategory = "EXIT"
	WaypointPOI      WaypointCategory = "POI"
	WaypointJunction WaypointCategory = "JUNCTION"
	WaypointMedical  WaypointCategory = "MEDICAL"
	WaypointStage    WaypointCategory = "STAGE"
	WaypointBathroom WaypointCategory = "BATHROOM"
)

// Waypoint представляет именованную точку на навигационном графе мероприятия.
// ConnectedTo хранит направленные связи в порядке создания; обратная связь
// не гарантируется, "висячие" ссылки допустимы и пропускаются при обходе.
type Waypoint struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Category       WaypointCategory `json:"category"`
	Latitude       float64          `json:"latitude"`
	Longitude      float64          `json:"longitude"`
	AssignedEmails []string         `json:"assigned_emails"`
	ConnectedTo    []uuid.UUID      `json:"connected_to"`
	CreatedAt      time.Time        `json:"created_at"`
}
