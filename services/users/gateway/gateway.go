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

// UserGateway handles the users service's outbound traffic: privacy events
// to NSQ and roster lookups against the courts service.
type UserGateway struct {
	producer     *nsq.Producer
	courtsClient *pkghttp.Client
	apiKey       string
	logger       *logger.AppLogger
}

// NewUserGateway creates a new user gateway
func NewUserGateway(producer *nsq.Producer, courtsClient *pkghttp.Client, apiKey string, appLogger *logger.AppLogger) *UserGateway {
	return &UserGateway{
		producer:     producer,
		courtsClient: courtsClient,
		apiKey:       apiKey,
		logger:       appLogger,
	}
}

// PublishPrivacyEvent publishes a visibility toggle to the user.privacy topic
func (g *UserGateway) PublishPrivacyEvent(_ context.Context, event *models.PrivacyEvent) error {
	if err := g.producer.Publish(constants.TopicUserPrivacy, event); err != nil {
		return fmt.Errorf("failed to publish privacy event: %w", err)
	}
	return nil
}

// GetCourtPlayers asks the courts service for the public roster at a court.
// Uses the internal API key route.
func (g *UserGateway) GetCourtPlayers(ctx context.Context, courtID string) ([]string, error) {
	url := fmt.Sprintf("%s/internal/courts/%s/players", g.courtsClient.BaseURL, courtID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build court players request: %w", err)
	}
	req.Header.Set("X-API-Key", g.apiKey)

	resp, err := g.courtsClient.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get players at court %s: %w", courtID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("courts service returned status %d for court %s", resp.StatusCode, courtID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read court players response: %w", err)
	}

	var players []string
	if err := utils.ParseJSONResponse(body, &players); err != nil {
		return nil, fmt.Errorf("failed to decode court players response: %w", err)
	}
	return players, nil
}
