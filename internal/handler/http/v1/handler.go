package v1

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/crowd_safety_system/internal/config"
	"github.com/shenikar/crowd_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

// SweepRunner - контракт ручного запуска свипа просроченных наблюдений
type SweepRunner interface {
	RunOnce(ctx context.Context) (int, error)
}

type Handler struct {
	observationService service.ObservationService
	waypointService    service.WaypointService
	sweeper            SweepRunner
	logger             *logrus.Logger
	validate           *validator.Validate
	cfg                *config.Config
}

func NewHandler(observationService service.ObservationService, waypointService service.WaypointService, sweeper SweepRunner, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		observationService: observationService,
		waypointService:    waypointService,
		sweeper:            sweeper,
		logger:             logger,
		validate:           validator.New(),
		cfg:                cfg,
	}
}

// @Summary Submit a new observation
// @Description Submit a volunteer field report. The observation starts in status NEW with AI enrichment pending.
// @Tags Observations
// @Accept json
// @Produce json
// @Param observation body CreateObservationRequest true "Observation submission request"
// @Success 201 {object} ObservationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /observations [post]
func (h *Handler) createObservation(c *gin.Context) {
	var input CreateObservationRequest
	log := h.logger.WithField("method", "createObservation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	waypointID, err := uuid.Parse(input.WaypointID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid waypoint ID"})
		return
	}

	model := DTOToObservationModel(input)
	model.WaypointID = waypointID
	if err := h.observationService.SubmitObservation(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to submit observation in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToObservationResponse(model))
}

// @Summary Get a list of observations
// @Description Get a paginated list of observations, newest first.
// @Tags Observations
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} ObservationResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /observations [get]
func (h *Handler) listObservations(c *gin.Context) {
	log := h.logger.WithField("method", "listObservations")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	observations, err := h.observationService.ListObservations(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list observations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToObservationResponses(observations))
}

// @Summary Get observation by ID
// @Description Get a single observation by its ID.
// @Tags Observations
// @Accept json
// @Produce json
// @Param id path string true "Observation ID"
// @Success 200 {object} ObservationResponse
// @Failure 400 {object} map[string]string "Invalid observation ID"
// @Failure 404 {object} map[string]string "Observation not found"
// @Router /observations/{id} [get]
func (h *Handler) getObservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid observation ID"})
		return
	}
	log := h.logger.WithField("method", "getObservation").WithField("id", id)

	obs, err := h.observationService.GetObservation(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get observation from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "observation not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToObservationResponse(obs))
}

// @Summary Send an instruction to a volunteer
// @Description Attach an admin instruction to an observation, moving it to status PENDING. Requires API key.
// @Tags Observations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Observation ID"
// @Param instruction body SendInstructionRequest true "Instruction request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid observation ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Observation already resolved"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /observations/{id}/instruction [post]
func (h *Handler) sendInstruction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid observation ID"})
		return
	}
	log := h.logger.WithField("method", "sendInstruction").WithField("id", id)

	var input SendInstructionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.observationService.SendInstruction(c.Request.Context(), id, input.Instruction, input.AdminEmail); err != nil {
		if errors.Is(err, service.ErrObservationResolved) {
			c.JSON(http.StatusConflict, gin.H{"error": "observation already resolved"})
			return
		}
		log.WithError(err).Error("Failed to send instruction in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send instruction"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Acknowledge an instruction
// @Description Volunteer acknowledges the admin instruction, moving the observation to status ACKNOWLEDGED.
// @Tags Observations
// @Accept json
// @Produce json
// @Param id path string true "Observation ID"
// @Param ack body AcknowledgeRequest true "Acknowledge request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid observation ID or request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /observations/{id}/acknowledge [post]
func (h *Handler) acknowledgeObservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid observation ID"})
		return
	}
	log := h.logger.WithField("method", "acknowledgeObservation").WithField("id", id)

	var input AcknowledgeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.observationService.Acknowledge(c.Request.Context(), id, input.VolunteerEmail); err != nil {
		log.WithError(err).Error("Failed to acknowledge observation in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to acknowledge observation"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Resolve an observation
// @Description Admin confirms resolution of an acknowledged observation. RESOLVED is terminal. Requires API key.
// @Tags Observations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Observation ID"
// @Param resolve body ResolveRequest true "Resolve request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid observation ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /observations/{id}/resolve [post]
func (h *Handler) resolveObservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid observation ID"})
		return
	}
	log := h.logger.WithField("method", "resolveObservation").WithField("id", id)

	var input ResolveRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.observationService.Resolve(c.Request.Context(), id, input.AdminEmail); err != nil {
		log.WithError(err).Error("Failed to resolve observation in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve observation"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Trigger AI enrichment
// @Description Request (re-)enrichment of an observation. Idempotent: a concurrent or completed run makes this a no-op.
// @Tags Observations
// @Accept json
// @Produce json
// @Param id path string true "Observation ID"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid observation ID"
// @Failure 404 {object} map[string]string "Observation not found"
// @Router /observations/{id}/enrich [post]
func (h *Handler) enrichObservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid observation ID"})
		return
	}
	log := h.logger.WithField("method", "enrichObservation").WithField("id", id)

	if err := h.observationService.RequestEnrichment(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to request enrichment in service")
		c.JSON(http.StatusNotFound, gin.H{"error": "observation not found"})
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Get observation statistics
// @Description Get observation counts grouped by workflow status. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /observations/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	counts, err := h.observationService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, CountsToStatsResponse(counts))
}

// @Summary Create a new waypoint
// @Description Create a new waypoint on the event map. Requires API key.
// @Tags Waypoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param waypoint body CreateWaypointRequest true "Waypoint creation request"
// @Success 201 {object} WaypointResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /waypoints [post]
func (h *Handler) createWaypoint(c *gin.Context) {
	var input CreateWaypointRequest
	log := h.logger.WithField("method", "createWaypoint")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToWaypointModel(input)
	if err := h.waypointService.CreateWaypoint(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create waypoint in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToWaypointResponse(model))
}

// @Summary Get all waypoints
// @Description Get the full snapshot of event map waypoints.
// @Tags Waypoints
// @Accept json
// @Produce json
// @Success 200 {array} WaypointResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /waypoints [get]
func (h *Handler) listWaypoints(c *gin.Context) {
	log := h.logger.WithField("method", "listWaypoints")

	waypoints, err := h.waypointService.ListWaypoints(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list waypoints from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToWaypointResponses(waypoints))
}

// @Summary Get waypoint by ID
// @Description Get a single waypoint by its ID.
// @Tags Waypoints
// @Accept json
// @Produce json
// @Param id path string true "Waypoint ID"
// @Success 200 {object} WaypointResponse
// @Failure 400 {object} map[string]string "Invalid waypoint ID"
// @Failure 404 {object} map[string]string "Waypoint not found"
// @Router /waypoints/{id} [get]
func (h *Handler) getWaypoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid waypoint ID"})
		return
	}
	log := h.logger.WithField("method", "getWaypoint").WithField("id", id)

	wp, err := h.waypointService.GetWaypoint(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get waypoint from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "waypoint not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToWaypointResponse(wp))
}

// @Summary Update an existing waypoint
// @Description Update waypoint name, category and coordinates. Requires API key.
// @Tags Waypoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Waypoint ID"
// @Param waypoint body UpdateWaypointRequest true "Waypoint update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid waypoint ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /waypoints/{id} [put]
func (h *Handler) updateWaypoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid waypoint ID"})
		return
	}
	log := h.logger.WithField("method", "updateWaypoint").WithField("id", id)

	var input UpdateWaypointRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToWaypointModel(input)
	model.ID = id

	if err := h.waypointService.UpdateWaypoint(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update waypoint in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update waypoint in service"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete a waypoint
// @Description Delete a waypoint by its ID. Inbound connections of other waypoints are not pruned; traversal skips them. Requires API key.
// @Tags Waypoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Waypoint ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid waypoint ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /waypoints/{id} [delete]
func (h *Handler) deleteWaypoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid waypoint ID"})
		return
	}
	log := h.logger.WithField("method", "deleteWaypoint").WithField("id", id)

	if err := h.waypointService.DeleteWaypoint(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete waypoint in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete waypoint"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Toggle a directed connection
// @Description Toggle the directed edge from one waypoint to another: adds it when absent, removes it when present. Requires API key.
// @Tags Waypoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Source waypoint ID"
// @Param targetId path string true "Target waypoint ID"
// @Success 200 {object} ConnectionToggleResponse
// @Failure 400 {object} map[string]string "Invalid waypoint ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /waypoints/{id}/connections/{targetId} [post]
func (h *Handler) toggleConnection(c *gin.Context) {
	from, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid waypoint ID"})
		return
	}
	to, err := uuid.Parse(c.Param("targetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target waypoint ID"})
		return
	}
	log := h.logger.WithField("method", "toggleConnection").WithField("from", from).WithField("to", to)

	connected, err := h.waypointService.ToggleConnection(c.Request.Context(), from, to)
	if err != nil {
		log.WithError(err).Error("Failed to toggle connection in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle connection"})
		return
	}
	c.JSON(http.StatusOK, ConnectionToggleResponse{Connected: connected})
}

// @Summary Set waypoint volunteer assignments
// @Description Replace the list of volunteer emails assigned to a waypoint. Requires API key.
// @Tags Waypoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Waypoint ID"
// @Param assignments body SetAssignmentsRequest true "Assignments request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid waypoint ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /waypoints/{id}/assignments [put]
func (h *Handler) setAssignments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid waypoint ID"})
		return
	}
	log := h.logger.WithField("method", "setAssignments").WithField("id", id)

	var input SetAssignmentsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.waypointService.SetAssignments(c.Request.Context(), id, input.Emails); err != nil {
		log.WithError(err).Error("Failed to set assignments in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set assignments"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get evacuation paths from a waypoint
// @Description Enumerate directed evacuation corridors starting at a waypoint. An empty list means no route context, not an error.
// @Tags Waypoints
// @Accept json
// @Produce json
// @Param id path string true "Waypoint ID"
// @Param depth query int false "Maximum number of hops" default(2)
// @Success 200 {object} EvacuationPathsResponse
// @Failure 400 {object} map[string]string "Invalid waypoint ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /waypoints/{id}/paths [get]
func (h *Handler) getEvacuationPaths(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid waypoint ID"})
		return
	}
	log := h.logger.WithField("method", "getEvacuationPaths").WithField("id", id)

	depth, _ := strconv.Atoi(c.DefaultQuery("depth", strconv.Itoa(h.cfg.AIMaxPathDepth)))

	paths, err := h.waypointService.FindEvacuationPaths(c.Request.Context(), id, depth)
	if err != nil {
		log.WithError(err).Error("Failed to find evacuation paths in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, EvacuationPathsResponse{Paths: paths})
}

// @Summary Get the event boundary
// @Description Get the stored event boundary polygon.
// @Tags Config
// @Accept json
// @Produce json
// @Success 200 {object} BoundaryResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /config/boundary [get]
func (h *Handler) getBoundary(c *gin.Context) {
	log := h.logger.WithField("method", "getBoundary")

	boundary, err := h.waypointService.GetEventBoundary(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get boundary from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, BoundaryResponse{Boundary: boundary})
}

// @Summary Save the event boundary
// @Description Replace the event boundary polygon. The body is stored as-is. Requires API key.
// @Tags Config
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param boundary body object true "Boundary polygon"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid boundary document"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /config/boundary [put]
func (h *Handler) saveBoundary(c *gin.Context) {
	log := h.logger.WithField("method", "saveBoundary")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.WithError(err).Warn("Failed to read request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.waypointService.SaveEventBoundary(c.Request.Context(), body); err != nil {
		log.WithError(err).Warn("Failed to save boundary in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid boundary document"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get audit log entries
// @Description Get audit log entries, newest first, optionally filtered by observation.
// @Tags Audit
// @Accept json
// @Produce json
// @Param observation_id query string false "Observation ID filter"
// @Param limit query int false "Maximum number of entries" default(100)
// @Success 200 {array} AuditLogResponse
// @Failure 400 {object} map[string]string "Invalid observation ID filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /audit-logs [get]
func (h *Handler) listAuditLogs(c *gin.Context) {
	log := h.logger.WithField("method", "listAuditLogs")

	var observationID *uuid.UUID
	if raw := c.Query("observation_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid observation ID"})
			return
		}
		observationID = &id
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	entries, err := h.observationService.ListAuditLogs(c.Request.Context(), observationID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list audit logs from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAuditLogResponses(entries))
}

// @Summary Trigger an expiration sweep
// @Description Run one expiration sweep immediately and return the number of observations resolved. Requires API key.
// @Tags System
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SweepResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /system/sweep [post]
func (h *Handler) runSweep(c *gin.Context) {
	log := h.logger.WithField("method", "runSweep")

	count, err := h.sweeper.RunOnce(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Sweep run failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, SweepResponse{ResolvedCount: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
