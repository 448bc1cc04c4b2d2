package users

import (
	"context"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// UserGW defines the interface for the users service's outbound calls
type UserGW interface {
	// Event publishing
	PublishPrivacyEvent(ctx context.Context, event *models.PrivacyEvent) error

	// Courts service lookups
	GetCourtPlayers(ctx context.Context, courtID string) ([]string, error)
}
