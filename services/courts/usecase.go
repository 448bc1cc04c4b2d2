package courts

import (
	"context"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// CourtUC defines the interface for court business logic
type CourtUC interface {
	// Catalog operations
	GetCourts(ctx context.Context) ([]models.Court, error)
	CreateCourt(ctx context.Context, court *models.Court) error
	GetCourt(ctx context.Context, courtID string) (*models.Court, error)
	GetNearbyCourts(ctx context.Context, coord models.Coordinate, radiusKm float64) ([]models.NearbyCourt, error)

	// Check-in operations
	CheckIn(ctx context.Context, userID, courtID string) (*models.CheckinResult, error)
	CheckOut(ctx context.Context, userID, courtID string) (*models.CheckinResult, error)

	// Occupancy operations
	GetCourtPlayers(ctx context.Context, courtID string) ([]string, error)

	// Privacy event handling
	ApplyPrivacyChange(ctx context.Context, event *models.PrivacyEvent) error
}
