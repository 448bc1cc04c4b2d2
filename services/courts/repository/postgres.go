package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hoopspot/hoopspot/internal/pkg/database"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/internal/utils"
)

// geohashPrecision gives ~150 m cells, tight enough to group courts by block.
const geohashPrecision = 7

// CourtRepository handles court catalog persistence in PostgreSQL
type CourtRepository struct {
	db *database.PostgresClient
}

// NewCourtRepository creates a new court repository
func NewCourtRepository(db *database.PostgresClient) *CourtRepository {
	return &CourtRepository{db: db}
}

// GetCourts retrieves the full court catalog ordered by name
func (r *CourtRepository) GetCourts(ctx context.Context) ([]models.Court, error) {
	query := `SELECT id, name, address, latitude, longitude, geohash, hours,
	                 phone_number, rating, average_players, image, created_at, updated_at
	          FROM courts
	          ORDER BY name`

	courts := []models.Court{}
	if err := r.db.GetDB().SelectContext(ctx, &courts, query); err != nil {
		return nil, fmt.Errorf("failed to get courts: %w", err)
	}
	return courts, nil
}

// GetCourt retrieves a single court by ID
func (r *CourtRepository) GetCourt(ctx context.Context, courtID string) (*models.Court, error) {
	query := `SELECT id, name, address, latitude, longitude, geohash, hours,
	                 phone_number, rating, average_players, image, created_at, updated_at
	          FROM courts
	          WHERE id = $1`

	var court models.Court
	err := r.db.GetDB().GetContext(ctx, &court, query, courtID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("court not found: %s", courtID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get court: %w", err)
	}
	return &court, nil
}

// CreateCourt inserts a new court, generating its ID and geohash
func (r *CourtRepository) CreateCourt(ctx context.Context, court *models.Court) error {
	if court.ID == "" {
		court.ID = uuid.New().String()
	}
	court.Geohash = utils.EncodeLocation(court.Coordinate(), geohashPrecision)

	now := time.Now()
	court.CreatedAt = now
	court.UpdatedAt = now

	query := `INSERT INTO courts (id, name, address, latitude, longitude, geohash, hours,
	                              phone_number, rating, average_players, image, created_at, updated_at)
	          VALUES (:id, :name, :address, :latitude, :longitude, :geohash, :hours,
	                  :phone_number, :rating, :average_players, :image, :created_at, :updated_at)`

	if _, err := r.db.GetDB().NamedExecContext(ctx, query, court); err != nil {
		return fmt.Errorf("failed to create court: %w", err)
	}
	return nil
}
