package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/middleware"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/internal/utils"
	"github.com/hoopspot/hoopspot/services/users"
	"github.com/hoopspot/hoopspot/services/users/usecase"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUC  users.UserUC
	jwtCfg  models.JWTConfig
	apiKeys models.APIKeyConfig
	logger  *logger.AppLogger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC, jwtCfg models.JWTConfig, apiKeys models.APIKeyConfig, appLogger *logger.AppLogger) *UserHandler {
	return &UserHandler{
		userUC:  userUC,
		jwtCfg:  jwtCfg,
		apiKeys: apiKeys,
		logger:  appLogger,
	}
}

// RegisterRoutes registers the user API routes
func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)

	authRoutes := e.Group("", middleware.JWTAuthMiddleware(h.jwtCfg))
	authRoutes.GET("/users", h.GetUsers)
	authRoutes.GET("/users/me", h.GetProfile)
	authRoutes.PUT("/users/me", h.UpdateProfile)
	authRoutes.POST("/users/me/privacy", h.TogglePrivacy)

	authRoutes.POST("/messages", h.SendMessage)
	authRoutes.GET("/messages", h.GetConversations)
	authRoutes.GET("/messages/:userId", h.GetConversation)

	authRoutes.POST("/network/requests", h.SendFriendRequest)
	authRoutes.POST("/network/requests/:id/accept", h.AcceptFriendRequest)
	authRoutes.GET("/network/connections", h.GetConnections)
	authRoutes.GET("/network/players", h.GetRecentPlayers)

	// Service-to-service routes (API key authentication)
	serviceRoutes := e.Group("/internal")
	serviceRoutes.Use(middleware.ValidateAPIKey(
		h.apiKeys.CourtsService,
		h.apiKeys.AgentService))
	serviceRoutes.GET("/users/:id", h.GetUserInternal)
}

// Register creates a new account
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if errors.Is(err, usecase.ErrEmailTaken) {
		return utils.ConflictResponse(c, err.Error())
	}
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Account created", resp)
}

// Login authenticates by email and password
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		return utils.UnauthorizedResponse(c, err.Error())
	}
	if err != nil {
		h.logger.WithError(err).Error("login failed")
		return utils.InternalServerErrorResponse(c, "login failed")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// GetProfile returns the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return utils.NotFoundResponse(c, "user not found")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// GetUsers returns the listing view of every other user
func (h *UserHandler) GetUsers(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	userList, err := h.userUC.GetUsers(c.Request().Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("failed to list users")
		return utils.InternalServerErrorResponse(c, "failed to list users")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", userList)
}

// UpdateProfile applies profile field updates for the authenticated user
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("profile update failed")
		return utils.InternalServerErrorResponse(c, "profile update failed")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}

// TogglePrivacy flips the authenticated user's visibility
func (h *UserHandler) TogglePrivacy(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	resp, err := h.userUC.TogglePrivacy(c.Request().Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("privacy toggle failed")
		return utils.InternalServerErrorResponse(c, "privacy toggle failed")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Privacy updated", resp)
}

// SendMessage delivers a direct message from the authenticated user
func (h *UserHandler) SendMessage(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	message, err := h.userUC.SendMessage(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", message)
}

// GetConversations returns the authenticated user's message threads
func (h *UserHandler) GetConversations(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	conversations, err := h.userUC.GetConversations(c.Request().Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to get conversations")
		return utils.InternalServerErrorResponse(c, "failed to get conversations")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", conversations)
}

// GetConversation returns the thread with one other user
func (h *UserHandler) GetConversation(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	otherUserID := c.Param("userId")
	if otherUserID == "" {
		return utils.BadRequestResponse(c, "user id is required")
	}

	messages, err := h.userUC.GetConversation(c.Request().Context(), userID, otherUserID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to get conversation")
		return utils.InternalServerErrorResponse(c, "failed to get conversation")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", messages)
}

// SendFriendRequest creates a connection request from the authenticated user
func (h *UserHandler) SendFriendRequest(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.FriendRequestPayload
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	result, err := h.userUC.SendFriendRequest(c.Request().Context(), userID, req.ToUserID)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// AcceptFriendRequest accepts a pending request addressed to the user
func (h *UserHandler) AcceptFriendRequest(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	requestID := c.Param("id")
	if requestID == "" {
		return utils.BadRequestResponse(c, "request id is required")
	}

	result, err := h.userUC.AcceptFriendRequest(c.Request().Context(), userID, requestID)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// GetConnections returns the authenticated user's accepted connections
func (h *UserHandler) GetConnections(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	connections, err := h.userUC.GetConnections(c.Request().Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to get connections")
		return utils.InternalServerErrorResponse(c, "failed to get connections")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", connections)
}

// GetRecentPlayers returns the players at the user's current court
func (h *UserHandler) GetRecentPlayers(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	players, err := h.userUC.GetRecentPlayers(c.Request().Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to get recent players")
		return utils.InternalServerErrorResponse(c, "failed to get recent players")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", players)
}

// GetUserInternal returns a user by ID for sibling services
func (h *UserHandler) GetUserInternal(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "user id is required")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return utils.NotFoundResponse(c, "user not found")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}
