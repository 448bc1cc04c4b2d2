package gatewayhttp

import (
	"context"
	"fmt"
	"io"
	"net/http"

	pkghttp "github.com/hoopspot/hoopspot/internal/pkg/http"
	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/internal/utils"
	"github.com/hoopspot/hoopspot/services/geofence"
)

// CourtsClient talks to the courts service. Catalog reads are public;
// check-in and check-out attach the stored session credential per call so a
// token refreshed mid-session is picked up without restarting the monitor.
type CourtsClient struct {
	client  *pkghttp.Client
	session geofence.SessionProvider
	logger  *logger.AppLogger
}

// NewCourtsClient creates a courts service gateway.
func NewCourtsClient(client *pkghttp.Client, session geofence.SessionProvider, appLogger *logger.AppLogger) *CourtsClient {
	return &CourtsClient{
		client:  client,
		session: session,
		logger:  appLogger,
	}
}

// GetCourts fetches the full court catalog.
func (g *CourtsClient) GetCourts(ctx context.Context) ([]models.Court, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.client.BaseURL+"/courts", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build courts request: %w", err)
	}

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("courts service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read courts response: %w", err)
	}

	var courts []models.Court
	if err := utils.ParseJSONResponse(body, &courts); err != nil {
		return nil, fmt.Errorf("failed to decode courts response: %w", err)
	}
	return courts, nil
}

// CheckIn records the authenticated user at the given court.
func (g *CourtsClient) CheckIn(ctx context.Context, courtID string) error {
	return g.postAuthenticated(ctx, fmt.Sprintf("/courts/%s/checkin", courtID))
}

// CheckOut removes the authenticated user from the given court.
func (g *CourtsClient) CheckOut(ctx context.Context, courtID string) error {
	return g.postAuthenticated(ctx, fmt.Sprintf("/courts/%s/checkout", courtID))
}

func (g *CourtsClient) postAuthenticated(ctx context.Context, path string) error {
	token, err := g.session.Token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.client.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		// Server no longer accepts the stored credential; treat the same
		// as having none.
		return geofence.ErrNoSession
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("courts service returned status %d for %s", resp.StatusCode, path)
	}
	return nil
}
