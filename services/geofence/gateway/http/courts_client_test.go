package gatewayhttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/hoopspot/hoopspot/internal/pkg/http"
	jwtpkg "github.com/hoopspot/hoopspot/internal/pkg/jwt"
	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/services/geofence"
)

type staticSession struct {
	token string
	err   error
}

func (s staticSession) Token(context.Context) (string, error) {
	return s.token, s.err
}

func quietLogger(t *testing.T) *logger.AppLogger {
	t.Helper()
	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "panic"})
	require.NoError(t, err)
	return appLogger
}

func TestCourtsClient_GetCourtsUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/courts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"id":"court-1","name":"Downtown Court","latitude":29.7604,"longitude":-95.3698}]}`))
	}))
	defer srv.Close()

	gw := NewCourtsClient(pkghttp.NewClient(srv.URL, time.Second), staticSession{}, quietLogger(t))

	courts, err := gw.GetCourts(context.Background())
	require.NoError(t, err)
	require.Len(t, courts, 1)
	assert.Equal(t, "court-1", courts[0].ID)
	assert.InDelta(t, 29.7604, courts[0].Latitude, 1e-9)
}

func TestCourtsClient_CheckInSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/courts/court-1/checkin", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"data":{"message":"Checked in","currentPlayers":4}}`))
	}))
	defer srv.Close()

	gw := NewCourtsClient(pkghttp.NewClient(srv.URL, time.Second), staticSession{token: "tok-123"}, quietLogger(t))

	require.NoError(t, gw.CheckIn(context.Background(), "court-1"))
}

func TestCourtsClient_CheckOutPropagatesMissingSession(t *testing.T) {
	gw := NewCourtsClient(pkghttp.NewClient("http://unused", time.Second),
		staticSession{err: geofence.ErrNoSession}, quietLogger(t))

	err := gw.CheckOut(context.Background(), "court-1")
	assert.ErrorIs(t, err, geofence.ErrNoSession)
}

func TestCourtsClient_RejectedTokenMapsToNoSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	gw := NewCourtsClient(pkghttp.NewClient(srv.URL, time.Second), staticSession{token: "stale"}, quietLogger(t))

	err := gw.CheckIn(context.Background(), "court-1")
	assert.ErrorIs(t, err, geofence.ErrNoSession)
}

func TestCourtsClient_ServerErrorIsNotNoSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gw := NewCourtsClient(pkghttp.NewClient(srv.URL, time.Second), staticSession{token: "tok"}, quietLogger(t))

	err := gw.CheckIn(context.Background(), "court-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, geofence.ErrNoSession)
}

func TestFileSessionProvider_MissingFile(t *testing.T) {
	p := NewFileSessionProvider(filepath.Join(t.TempDir(), "token"))

	_, err := p.Token(context.Background())
	assert.ErrorIs(t, err, geofence.ErrNoSession)
}

func TestFileSessionProvider_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	_, err := NewFileSessionProvider(path).Token(context.Background())
	assert.ErrorIs(t, err, geofence.ErrNoSession)
}

func TestFileSessionProvider_ValidToken(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "hoopspot"}
	token, _, err := jwtpkg.GenerateToken("user-1", cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte(token+"\n"), 0o600))

	got, err := NewFileSessionProvider(path).Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestFileSessionProvider_ExpiredToken(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "hoopspot"}
	token, _, err := jwtpkg.GenerateToken("user-1", cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte(token), 0o600))

	p := NewFileSessionProvider(path)
	p.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = p.Token(context.Background())
	assert.ErrorIs(t, err, geofence.ErrNoSession)
}

