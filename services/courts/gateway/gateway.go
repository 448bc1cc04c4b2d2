package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hoopspot/hoopspot/internal/pkg/constants"
	pkghttp "github.com/hoopspot/hoopspot/internal/pkg/http"
	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/internal/pkg/nsq"
	"github.com/hoopspot/hoopspot/internal/utils"
)

// CourtGateway handles the courts service's outbound traffic: check-in
// events to NSQ and visibility lookups against the users service.
type CourtGateway struct {
	producer    *nsq.Producer
	usersClient *pkghttp.Client
	apiKey      string
	logger      *logger.AppLogger
}

// NewCourtGateway creates a new court gateway
func NewCourtGateway(producer *nsq.Producer, usersClient *pkghttp.Client, apiKey string, appLogger *logger.AppLogger) *CourtGateway {
	return &CourtGateway{
		producer:    producer,
		usersClient: usersClient,
		apiKey:      apiKey,
		logger:      appLogger,
	}
}

// PublishCheckinEvent publishes a check-in to the court.checkin topic
func (g *CourtGateway) PublishCheckinEvent(_ context.Context, event *models.CheckinEvent) error {
	if err := g.producer.Publish(constants.TopicCourtCheckin, event); err != nil {
		return fmt.Errorf("failed to publish checkin event: %w", err)
	}
	return nil
}

// PublishCheckoutEvent publishes a check-out to the court.checkout topic
func (g *CourtGateway) PublishCheckoutEvent(_ context.Context, event *models.CheckinEvent) error {
	if err := g.producer.Publish(constants.TopicCourtCheckout, event); err != nil {
		return fmt.Errorf("failed to publish checkout event: %w", err)
	}
	return nil
}

// GetUserVisibility asks the users service whether the user's activity is
// public. Uses the internal API key route.
func (g *CourtGateway) GetUserVisibility(ctx context.Context, userID string) (bool, error) {
	url := fmt.Sprintf("%s/internal/users/%s", g.usersClient.BaseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build user lookup request: %w", err)
	}
	req.Header.Set("X-API-Key", g.apiKey)

	resp, err := g.usersClient.HTTPClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to look up user %s: %w", userID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("users service returned status %d for user %s", resp.StatusCode, userID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read user lookup response: %w", err)
	}

	var user models.User
	if err := utils.ParseJSONResponse(body, &user); err != nil {
		return false, fmt.Errorf("failed to decode user lookup response: %w", err)
	}
	return user.IsPublic, nil
}
