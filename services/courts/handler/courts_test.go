package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/hoopspot/hoopspot/internal/pkg/jwt"
	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/services/courts/mocks"
)

var testJWTCfg = models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "hoopspot"}

var testAPIKeys = models.APIKeyConfig{
	UsersService: "users-key",
	AgentService: "agent-key",
}

func newCourtHandlerFixture(t *testing.T) (*echo.Echo, *mocks.MockCourtUC, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "panic"})
	require.NoError(t, err)

	courtUC := mocks.NewMockCourtUC(ctrl)
	h := NewCourtHandler(courtUC, testJWTCfg, testAPIKeys, appLogger)

	e := echo.New()
	h.RegisterRoutes(e)
	return e, courtUC, ctrl
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()
	token, _, err := jwtpkg.GenerateToken(userID, testJWTCfg)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestGetCourts_ReturnsCatalog(t *testing.T) {
	e, courtUC, ctrl := newCourtHandlerFixture(t)
	defer ctrl.Finish()

	courtUC.EXPECT().GetCourts(gomock.Any()).Return([]models.Court{
		{ID: "court-1", Name: "Downtown Court", CurrentPlayers: 3},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/courts", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool           `json:"success"`
		Data    []models.Court `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, 3, envelope.Data[0].CurrentPlayers)
}

func TestGetNearbyCourts_RequiresCoordinates(t *testing.T) {
	e, _, ctrl := newCourtHandlerFixture(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/courts/nearby", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetNearbyCourts_PassesQueryParams(t *testing.T) {
	e, courtUC, ctrl := newCourtHandlerFixture(t)
	defer ctrl.Finish()

	courtUC.EXPECT().GetNearbyCourts(gomock.Any(),
		models.Coordinate{Latitude: 29.76, Longitude: -95.37}, 2.5).
		Return([]models.NearbyCourt{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/courts/nearby?lat=29.76&lng=-95.37&radius=2.5", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckIn_RequiresAuthentication(t *testing.T) {
	e, _, ctrl := newCourtHandlerFixture(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/courts/court-1/checkin", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckIn_AuthenticatedUser(t *testing.T) {
	e, courtUC, ctrl := newCourtHandlerFixture(t)
	defer ctrl.Finish()

	courtUC.EXPECT().CheckIn(gomock.Any(), "user-1", "court-1").Return(&models.CheckinResult{
		Message:        "Checked in at Downtown Court",
		CurrentPlayers: 4,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/courts/court-1/checkin", nil)
	req.Header.Set("Authorization", bearerToken(t, "user-1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data models.CheckinResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 4, envelope.Data.CurrentPlayers)
}

func TestCheckOut_AuthenticatedUser(t *testing.T) {
	e, courtUC, ctrl := newCourtHandlerFixture(t)
	defer ctrl.Finish()

	courtUC.EXPECT().CheckOut(gomock.Any(), "user-1", "court-1").Return(&models.CheckinResult{
		Message:        "Checked out",
		CurrentPlayers: 2,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/courts/court-1/checkout", nil)
	req.Header.Set("Authorization", bearerToken(t, "user-1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCourtPlayers_RequiresAPIKey(t *testing.T) {
	e, _, ctrl := newCourtHandlerFixture(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/internal/courts/court-1/players", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCourtPlayers_WithAPIKey(t *testing.T) {
	e, courtUC, ctrl := newCourtHandlerFixture(t)
	defer ctrl.Finish()

	courtUC.EXPECT().GetCourtPlayers(gomock.Any(), "court-1").Return([]string{"user-1", "user-2"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/internal/courts/court-1/players", nil)
	req.Header.Set("X-API-Key", "users-key")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, []string{"user-1", "user-2"}, envelope.Data)
}
