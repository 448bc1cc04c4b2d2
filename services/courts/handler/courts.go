package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/middleware"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/internal/utils"
	"github.com/hoopspot/hoopspot/services/courts"
)

const defaultNearbyRadiusKm = 10.0

// CourtHandler handles HTTP requests for court operations
type CourtHandler struct {
	courtUC courts.CourtUC
	jwtCfg  models.JWTConfig
	apiKeys models.APIKeyConfig
	logger  *logger.AppLogger
}

// NewCourtHandler creates a new court handler
func NewCourtHandler(courtUC courts.CourtUC, jwtCfg models.JWTConfig, apiKeys models.APIKeyConfig, appLogger *logger.AppLogger) *CourtHandler {
	return &CourtHandler{
		courtUC: courtUC,
		jwtCfg:  jwtCfg,
		apiKeys: apiKeys,
		logger:  appLogger,
	}
}

// RegisterRoutes registers the court API routes
func (h *CourtHandler) RegisterRoutes(e *echo.Echo) {
	// Public catalog routes
	e.GET("/courts", h.GetCourts)
	e.GET("/courts/nearby", h.GetNearbyCourts)
	e.GET("/courts/:id", h.GetCourt)

	// Check-in routes (JWT authentication)
	authRoutes := e.Group("/courts", middleware.JWTAuthMiddleware(h.jwtCfg))
	authRoutes.POST("/:id/checkin", h.CheckIn)
	authRoutes.POST("/:id/checkout", h.CheckOut)

	// Service-to-service routes (API key authentication)
	serviceRoutes := e.Group("/internal")
	serviceRoutes.Use(middleware.ValidateAPIKey(
		h.apiKeys.UsersService,
		h.apiKeys.AgentService))
	serviceRoutes.GET("/courts/:id/players", h.GetCourtPlayers)
	serviceRoutes.POST("/courts", h.CreateCourt)
}

// GetCourts returns the full court catalog with live occupancy
func (h *CourtHandler) GetCourts(c echo.Context) error {
	catalog, err := h.courtUC.GetCourts(c.Request().Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to get courts")
		return utils.InternalServerErrorResponse(c, "failed to get courts")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", catalog)
}

// GetCourt returns a single court by ID
func (h *CourtHandler) GetCourt(c echo.Context) error {
	courtID := c.Param("id")
	if courtID == "" {
		return utils.BadRequestResponse(c, "court id is required")
	}

	court, err := h.courtUC.GetCourt(c.Request().Context(), courtID)
	if err != nil {
		return utils.NotFoundResponse(c, "court not found")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", court)
}

// GetNearbyCourts returns courts near a lat/lng, nearest first
func (h *CourtHandler) GetNearbyCourts(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat is required")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng is required")
	}

	radiusKm := defaultNearbyRadiusKm
	if raw := c.QueryParam("radius"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 {
			return utils.BadRequestResponse(c, "radius must be a positive number")
		}
	}

	coord := models.Coordinate{Latitude: lat, Longitude: lng}
	nearby, err := h.courtUC.GetNearbyCourts(c.Request().Context(), coord, radiusKm)
	if err != nil {
		h.logger.WithError(err).Error("failed to get nearby courts")
		return utils.InternalServerErrorResponse(c, "failed to get nearby courts")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", nearby)
}

// CheckIn checks the authenticated user in to a court
func (h *CourtHandler) CheckIn(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	courtID := c.Param("id")
	if courtID == "" {
		return utils.BadRequestResponse(c, "court id is required")
	}

	result, err := h.courtUC.CheckIn(c.Request().Context(), userID, courtID)
	if err != nil {
		h.logger.WithError(err).WithField("court_id", courtID).Error("check-in failed")
		return utils.NotFoundResponse(c, "court not found")
	}
	return utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// CheckOut checks the authenticated user out of a court
func (h *CourtHandler) CheckOut(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	courtID := c.Param("id")
	if courtID == "" {
		return utils.BadRequestResponse(c, "court id is required")
	}

	result, err := h.courtUC.CheckOut(c.Request().Context(), userID, courtID)
	if err != nil {
		h.logger.WithError(err).WithField("court_id", courtID).Error("check-out failed")
		return utils.NotFoundResponse(c, "court not found")
	}
	return utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// GetCourtPlayers returns the publicly visible player IDs at a court
func (h *CourtHandler) GetCourtPlayers(c echo.Context) error {
	courtID := c.Param("id")
	if courtID == "" {
		return utils.BadRequestResponse(c, "court id is required")
	}

	players, err := h.courtUC.GetCourtPlayers(c.Request().Context(), courtID)
	if err != nil {
		h.logger.WithError(err).WithField("court_id", courtID).Error("failed to get court players")
		return utils.InternalServerErrorResponse(c, "failed to get court players")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", players)
}

// CreateCourt adds a court to the catalog
func (h *CourtHandler) CreateCourt(c echo.Context) error {
	var court models.Court
	if err := c.Bind(&court); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.courtUC.CreateCourt(c.Request().Context(), &court); err != nil {
		h.logger.WithError(err).Error("failed to create court")
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Court created", court)
}
