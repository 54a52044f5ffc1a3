package v1

import "github.com/shenikar/crowd_safety_system/internal/models"

// DTOToObservationModel преобразует DTO создания в доменную модель.
// Статус, ai_status и срок жизни проставляет сервис.
func DTOToObservationModel(dto CreateObservationRequest) *models.Observation {
	return &models.Observation{
		VolunteerEmail: dto.VolunteerEmail,
		CrowdLevel:     models.CrowdLevel(dto.CrowdLevel),
		Message:        dto.Message,
		ImageBase64:    dto.ImageBase64,
	}
}

// ModelToObservationResponse преобразует доменную модель в DTO для ответа
func ModelToObservationResponse(model *models.Observation) *ObservationResponse {
	resp := &ObservationResponse{
		ID:             model.ID,
		WaypointID:     model.WaypointID,
		VolunteerEmail: model.VolunteerEmail,
		CrowdLevel:     string(model.CrowdLevel),
		Message:        model.Message,
		ImageBase64:    model.ImageBase64,
		Status:         string(model.Status),
		AIStatus:       string(model.AIStatus),
		AIError:        model.AIError,
		Instruction:    model.Instruction,
		AdminEmail:     model.AdminEmail,
		ResolvedBy:     model.ResolvedBy,
		CreatedAt:      model.CreatedAt,
		ExpiresAt:      model.ExpiresAt,
	}
	if model.AIInsight != nil {
		resp.AIInsight = &AIInsightResponse{
			Risk:    model.AIInsight.Risk,
			Summary: model.AIInsight.Summary,
			Actions: model.AIInsight.Actions,
		}
	}
	return resp
}

// ModelsToObservationResponses преобразует слайс моделей в слайс DTO
func ModelsToObservationResponses(observations []*models.Observation) []*ObservationResponse {
	responses := make([]*ObservationResponse, len(observations))
	for i, model := range observations {
		responses[i] = ModelToObservationResponse(model)
	}
	return responses
}

// DTOToWaypointModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToWaypointModel(dto any) *models.Waypoint {
	switch v := dto.(type) {
	case CreateWaypointRequest:
		return &models.Waypoint{
			Name:      v.Name,
			Category:  models.WaypointCategory(v.Category),
			Latitude:  v.Latitude,
			Longitude: v.Longitude,
		}
	case UpdateWaypointRequest:
		return &models.Waypoint{
			Name:      v.Name,
			Category:  models.WaypointCategory(v.Category),
			Latitude:  v.Latitude,
			Longitude: v.Longitude,
		}
	}
	return nil
}

// ModelToWaypointResponse преобразует доменную модель в DTO для ответа
func ModelToWaypointResponse(model *models.Waypoint) *WaypointResponse {
	return &WaypointResponse{
		ID:             model.ID,
		Name:           model.Name,
		Category:       string(model.Category),
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		AssignedEmails: model.AssignedEmails,
		ConnectedTo:    model.ConnectedTo,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelsToWaypointResponses преобразует слайс моделей в слайс DTO
func ModelsToWaypointResponses(waypoints []*models.Waypoint) []*WaypointResponse {
	responses := make([]*WaypointResponse, len(waypoints))
	for i, model := range waypoints {
		responses[i] = ModelToWaypointResponse(model)
	}
	return responses
}

// ModelsToAuditLogResponses преобразует записи журнала в слайс DTO
func ModelsToAuditLogResponses(entries []*models.AuditLogEntry) []*AuditLogResponse {
	responses := make([]*AuditLogResponse, len(entries))
	for i, entry := range entries {
		responses[i] = &AuditLogResponse{
			ID:            entry.ID,
			ObservationID: entry.ObservationID,
			Action:        string(entry.Action),
			Message:       entry.Message,
			ActorEmail:    entry.ActorEmail,
			CreatedAt:     entry.CreatedAt,
		}
	}
	return responses
}

// CountsToStatsResponse преобразует счетчики по статусам в DTO статистики
func CountsToStatsResponse(counts map[models.ObservationStatus]int) StatsResponse {
	return StatsResponse{
		New:          counts[models.StatusNew],
		Pending:      counts[models.StatusPending],
		Acknowledged: counts[models.StatusAcknowledged],
		Resolved:     counts[models.StatusResolved],
	}
}
