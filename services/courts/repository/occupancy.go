package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/hoopspot/hoopspot/internal/pkg/constants"
	"github.com/hoopspot/hoopspot/internal/pkg/database"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// OccupancyRepository tracks live court occupancy in Redis. Each court has a
// set of publicly visible player IDs, each user a pointer to their current
// court, and all courts live in one geo index for nearby queries.
type OccupancyRepository struct {
	redis *database.RedisClient
}

// NewOccupancyRepository creates a new occupancy repository
func NewOccupancyRepository(redisClient *database.RedisClient) *OccupancyRepository {
	return &OccupancyRepository{redis: redisClient}
}

// AddPlayer adds a user to a court's public occupancy set
func (r *OccupancyRepository) AddPlayer(ctx context.Context, courtID, userID string) error {
	key := fmt.Sprintf(constants.KeyCourtPlayers, courtID)
	if err := r.redis.SAdd(ctx, key, userID); err != nil {
		return fmt.Errorf("failed to add player to court %s: %w", courtID, err)
	}
	return nil
}

// RemovePlayer removes a user from a court's public occupancy set
func (r *OccupancyRepository) RemovePlayer(ctx context.Context, courtID, userID string) error {
	key := fmt.Sprintf(constants.KeyCourtPlayers, courtID)
	if err := r.redis.SRem(ctx, key, userID); err != nil {
		return fmt.Errorf("failed to remove player from court %s: %w", courtID, err)
	}
	return nil
}

// CountPlayers returns the number of publicly visible players at a court
func (r *OccupancyRepository) CountPlayers(ctx context.Context, courtID string) (int, error) {
	key := fmt.Sprintf(constants.KeyCourtPlayers, courtID)
	count, err := r.redis.SCard(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to count players at court %s: %w", courtID, err)
	}
	return int(count), nil
}

// GetPlayers returns the publicly visible player IDs at a court
func (r *OccupancyRepository) GetPlayers(ctx context.Context, courtID string) ([]string, error) {
	key := fmt.Sprintf(constants.KeyCourtPlayers, courtID)
	players, err := r.redis.SMembers(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get players at court %s: %w", courtID, err)
	}
	return players, nil
}

// GetUserCourt returns the court the user is currently checked in to, or
// empty when they are not checked in anywhere.
func (r *OccupancyRepository) GetUserCourt(ctx context.Context, userID string) (string, error) {
	key := fmt.Sprintf(constants.KeyUserCourt, userID)
	courtID, err := r.redis.Get(ctx, key)
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get current court for user %s: %w", userID, err)
	}
	return courtID, nil
}

// SetUserCourt records which court the user is checked in to
func (r *OccupancyRepository) SetUserCourt(ctx context.Context, userID, courtID string) error {
	key := fmt.Sprintf(constants.KeyUserCourt, userID)
	if err := r.redis.Set(ctx, key, courtID, 0); err != nil {
		return fmt.Errorf("failed to set current court for user %s: %w", userID, err)
	}
	return nil
}

// ClearUserCourt removes the user's current court pointer
func (r *OccupancyRepository) ClearUserCourt(ctx context.Context, userID string) error {
	key := fmt.Sprintf(constants.KeyUserCourt, userID)
	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear current court for user %s: %w", userID, err)
	}
	return nil
}

// IndexCourtLocation adds or refreshes a court in the geo index
func (r *OccupancyRepository) IndexCourtLocation(ctx context.Context, court *models.Court) error {
	if err := r.redis.GeoAdd(ctx, constants.KeyCourtGeo, court.Longitude, court.Latitude, court.ID); err != nil {
		return fmt.Errorf("failed to index court %s location: %w", court.ID, err)
	}
	return nil
}

// NearbyCourtIDs returns court IDs within radiusKm of the given position,
// mapped to their distance in kilometers.
func (r *OccupancyRepository) NearbyCourtIDs(ctx context.Context, coord models.Coordinate, radiusKm float64) (map[string]float64, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyCourtGeo, coord.Longitude, coord.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby courts: %w", err)
	}

	result := make(map[string]float64, len(locations))
	for _, loc := range locations {
		result[loc.Name] = loc.Dist
	}
	return result, nil
}
