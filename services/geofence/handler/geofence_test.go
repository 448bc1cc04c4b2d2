package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/services/geofence/mocks"
)

func newHandlerFixture(t *testing.T) (*GeofenceHandler, *mocks.MockMonitorUC, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "panic"})
	require.NoError(t, err)
	monitorUC := mocks.NewMockMonitorUC(ctrl)
	return NewGeofenceHandler(monitorUC, appLogger), monitorUC, ctrl
}

func doRequest(t *testing.T, h *GeofenceHandler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h.RegisterRoutes(e)
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStart_Succeeds(t *testing.T) {
	h, monitorUC, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	monitorUC.EXPECT().Start(gomock.Any()).Return(true, nil)

	rec := doRequest(t, h, http.MethodPost, "/geofence/start")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStart_PermissionDenied(t *testing.T) {
	h, monitorUC, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	monitorUC.EXPECT().Start(gomock.Any()).Return(false, nil)

	rec := doRequest(t, h, http.MethodPost, "/geofence/start")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestStart_Failure(t *testing.T) {
	h, monitorUC, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	monitorUC.EXPECT().Start(gomock.Any()).Return(false, errors.New("subscribe failed"))

	rec := doRequest(t, h, http.MethodPost, "/geofence/start")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStop_AlwaysSucceeds(t *testing.T) {
	h, monitorUC, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	monitorUC.EXPECT().Stop()

	rec := doRequest(t, h, http.MethodPost, "/geofence/stop")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatus_IncludesStateAndPermissions(t *testing.T) {
	h, monitorUC, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	monitorUC.EXPECT().Status(gomock.Any()).Return(models.MonitorStatus{
		Active:         true,
		CurrentCourtID: "court-1",
		LastCheckTime:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	monitorUC.EXPECT().Permissions(gomock.Any()).Return(models.PermissionStatus{
		ForegroundGranted: true,
		BackgroundGranted: true,
	}, nil)

	rec := doRequest(t, h, http.MethodGet, "/geofence/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                 `json:"success"`
		Data    models.MonitorStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.True(t, envelope.Data.Active)
	assert.Equal(t, "court-1", envelope.Data.CurrentCourtID)
	require.NotNil(t, envelope.Data.Permissions)
	assert.True(t, envelope.Data.Permissions.Granted())
}

func TestReset_ClearsState(t *testing.T) {
	h, monitorUC, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	monitorUC.EXPECT().Reset(gomock.Any()).Return(nil)

	rec := doRequest(t, h, http.MethodPost, "/geofence/reset")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPermissions_Reported(t *testing.T) {
	h, monitorUC, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	monitorUC.EXPECT().Permissions(gomock.Any()).Return(models.PermissionStatus{
		ForegroundGranted: true,
	}, nil)

	rec := doRequest(t, h, http.MethodGet, "/geofence/permissions")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data models.PermissionStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.ForegroundGranted)
	assert.False(t, envelope.Data.BackgroundGranted)
}
