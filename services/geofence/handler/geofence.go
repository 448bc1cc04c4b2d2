package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/utils"
	"github.com/hoopspot/hoopspot/services/geofence"
)

// GeofenceHandler exposes the monitor's control surface over HTTP. Every
// operation is idempotent, so clients can retry freely.
type GeofenceHandler struct {
	monitorUC geofence.MonitorUC
	logger    *logger.AppLogger
}

// NewGeofenceHandler creates the control surface handler.
func NewGeofenceHandler(monitorUC geofence.MonitorUC, appLogger *logger.AppLogger) *GeofenceHandler {
	return &GeofenceHandler{
		monitorUC: monitorUC,
		logger:    appLogger,
	}
}

// RegisterRoutes mounts the control surface endpoints.
func (h *GeofenceHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/geofence")
	g.POST("/start", h.Start)
	g.POST("/stop", h.Stop)
	g.POST("/reset", h.Reset)
	g.GET("/status", h.Status)
	g.GET("/permissions", h.Permissions)
}

// Start begins auto check-in monitoring.
func (h *GeofenceHandler) Start(c echo.Context) error {
	started, err := h.monitorUC.Start(c.Request().Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to start geofence monitor")
		return utils.InternalServerErrorResponse(c, "failed to start monitoring")
	}
	if !started {
		return utils.ForbiddenResponse(c, "location permission not granted")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Monitoring started", map[string]bool{"active": true})
}

// Stop ends auto check-in monitoring. Persisted state is retained.
func (h *GeofenceHandler) Stop(c echo.Context) error {
	h.monitorUC.Stop()
	return utils.SuccessResponse(c, http.StatusOK, "Monitoring stopped", map[string]bool{"active": false})
}

// Reset clears the persisted geofence state. Called on logout.
func (h *GeofenceHandler) Reset(c echo.Context) error {
	if err := h.monitorUC.Reset(c.Request().Context()); err != nil {
		h.logger.WithError(err).Error("failed to reset geofence state")
		return utils.InternalServerErrorResponse(c, "failed to reset state")
	}
	return utils.SuccessResponse(c, http.StatusOK, "State reset", nil)
}

// Status reports whether monitoring is active and the recorded court.
func (h *GeofenceHandler) Status(c echo.Context) error {
	status := h.monitorUC.Status(c.Request().Context())

	perms, err := h.monitorUC.Permissions(c.Request().Context())
	if err == nil {
		status.Permissions = &perms
	}

	return utils.SuccessResponse(c, http.StatusOK, "", status)
}

// Permissions reports the current location permission grants.
func (h *GeofenceHandler) Permissions(c echo.Context) error {
	perms, err := h.monitorUC.Permissions(c.Request().Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to read location permissions")
		return utils.InternalServerErrorResponse(c, "failed to read permissions")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", perms)
}
