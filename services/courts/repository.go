package courts

import (
	"context"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// CourtRepo defines the interface for court catalog data access
type CourtRepo interface {
	GetCourts(ctx context.Context) ([]models.Court, error)
	GetCourt(ctx context.Context, courtID string) (*models.Court, error)
	CreateCourt(ctx context.Context, court *models.Court) error
}

// OccupancyRepo defines the interface for live court occupancy tracking
type OccupancyRepo interface {
	AddPlayer(ctx context.Context, courtID, userID string) error
	RemovePlayer(ctx context.Context, courtID, userID string) error
	CountPlayers(ctx context.Context, courtID string) (int, error)
	GetPlayers(ctx context.Context, courtID string) ([]string, error)
	GetUserCourt(ctx context.Context, userID string) (string, error)
	SetUserCourt(ctx context.Context, userID, courtID string) error
	ClearUserCourt(ctx context.Context, userID string) error
	IndexCourtLocation(ctx context.Context, court *models.Court) error
	NearbyCourtIDs(ctx context.Context, coord models.Coordinate, radiusKm float64) (map[string]float64, error)
}
