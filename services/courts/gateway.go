package courts

import (
	"context"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// CourtGW defines the interface for the courts service's outbound calls
type CourtGW interface {
	// Event publishing
	PublishCheckinEvent(ctx context.Context, event *models.CheckinEvent) error
	PublishCheckoutEvent(ctx context.Context, event *models.CheckinEvent) error

	// Users service lookups
	GetUserVisibility(ctx context.Context, userID string) (bool, error)
}
