package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/internal/utils"
	"github.com/hoopspot/hoopspot/services/courts"
)

// CourtUC implements the court business logic
type CourtUC struct {
	courtRepo     courts.CourtRepo
	occupancyRepo courts.OccupancyRepo
	courtGW       courts.CourtGW
	logger        *logger.AppLogger
	now           func() time.Time
}

// NewCourtUC creates a new court usecase
func NewCourtUC(
	courtRepo courts.CourtRepo,
	occupancyRepo courts.OccupancyRepo,
	courtGW courts.CourtGW,
	appLogger *logger.AppLogger,
) *CourtUC {
	return &CourtUC{
		courtRepo:     courtRepo,
		occupancyRepo: occupancyRepo,
		courtGW:       courtGW,
		logger:        appLogger,
		now:           time.Now,
	}
}

// GetCourts returns the catalog with live occupancy counts
func (uc *CourtUC) GetCourts(ctx context.Context) ([]models.Court, error) {
	catalog, err := uc.courtRepo.GetCourts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range catalog {
		count, err := uc.occupancyRepo.CountPlayers(ctx, catalog[i].ID)
		if err != nil {
			// Occupancy is best effort; the catalog itself must still load.
			uc.logger.WithError(err).WithField("court_id", catalog[i].ID).
				Warn("failed to count players")
			continue
		}
		catalog[i].CurrentPlayers = count
	}
	return catalog, nil
}

// CreateCourt adds a court to the catalog and the geo index
func (uc *CourtUC) CreateCourt(ctx context.Context, court *models.Court) error {
	if court.Name == "" {
		return fmt.Errorf("court name is required")
	}
	if err := uc.courtRepo.CreateCourt(ctx, court); err != nil {
		return err
	}
	if err := uc.occupancyRepo.IndexCourtLocation(ctx, court); err != nil {
		uc.logger.WithError(err).WithField("court_id", court.ID).
			Warn("failed to index court location")
	}
	return nil
}

// GetCourt returns a single court with its live occupancy count
func (uc *CourtUC) GetCourt(ctx context.Context, courtID string) (*models.Court, error) {
	court, err := uc.courtRepo.GetCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	count, err := uc.occupancyRepo.CountPlayers(ctx, courtID)
	if err == nil {
		court.CurrentPlayers = count
	}
	return court, nil
}

// GetNearbyCourts returns courts within radiusKm of the given position,
// nearest first. The Redis geo index serves the query; when the index is
// empty the catalog is scanned directly.
func (uc *CourtUC) GetNearbyCourts(ctx context.Context, coord models.Coordinate, radiusKm float64) ([]models.NearbyCourt, error) {
	distances, err := uc.occupancyRepo.NearbyCourtIDs(ctx, coord, radiusKm)
	if err != nil {
		return nil, err
	}

	catalog, err := uc.courtRepo.GetCourts(ctx)
	if err != nil {
		return nil, err
	}

	nearby := []models.NearbyCourt{}
	for _, court := range catalog {
		dist, ok := distances[court.ID]
		if !ok {
			if len(distances) > 0 {
				continue
			}
			dist = utils.DistanceKm(coord, court.Coordinate())
			if dist > radiusKm {
				continue
			}
		}

		count, err := uc.occupancyRepo.CountPlayers(ctx, court.ID)
		if err == nil {
			court.CurrentPlayers = count
		}
		nearby = append(nearby, models.NearbyCourt{Court: court, DistanceKm: dist})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby, nil
}

// CheckIn records the user at a court. A check-in while already recorded at
// another court implicitly checks the user out of it first; a repeated
// check-in at the same court is a no-op, so retries are safe.
func (uc *CourtUC) CheckIn(ctx context.Context, userID, courtID string) (*models.CheckinResult, error) {
	court, err := uc.courtRepo.GetCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	current, err := uc.occupancyRepo.GetUserCourt(ctx, userID)
	if err != nil {
		return nil, err
	}

	if current == courtID {
		count, _ := uc.occupancyRepo.CountPlayers(ctx, courtID)
		return &models.CheckinResult{Message: "Already checked in", CurrentPlayers: count}, nil
	}

	if current != "" {
		if _, err := uc.CheckOut(ctx, userID, current); err != nil {
			return nil, fmt.Errorf("failed to check out of previous court: %w", err)
		}
	}

	isPublic, err := uc.courtGW.GetUserVisibility(ctx, userID)
	if err != nil {
		// Treat an unreachable users service as private: the check-in
		// still lands, the public roster just misses this user.
		uc.logger.WithError(err).WithField("user_id", userID).
			Warn("failed to resolve user visibility, treating as private")
		isPublic = false
	}

	if isPublic {
		if err := uc.occupancyRepo.AddPlayer(ctx, courtID, userID); err != nil {
			return nil, err
		}
	}

	if err := uc.occupancyRepo.SetUserCourt(ctx, userID, courtID); err != nil {
		return nil, err
	}

	event := &models.CheckinEvent{
		UserID:    userID,
		CourtID:   courtID,
		CheckedIn: true,
		Timestamp: uc.now(),
	}
	if err := uc.courtGW.PublishCheckinEvent(ctx, event); err != nil {
		uc.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  userID,
			"court_id": courtID,
		}).Warn("failed to publish checkin event")
	}

	count, _ := uc.occupancyRepo.CountPlayers(ctx, courtID)
	return &models.CheckinResult{
		Message:        fmt.Sprintf("Checked in at %s", court.Name),
		CurrentPlayers: count,
	}, nil
}

// CheckOut removes the user from a court. Checking out of a court the user
// is not recorded at is a no-op, so retries are safe.
func (uc *CourtUC) CheckOut(ctx context.Context, userID, courtID string) (*models.CheckinResult, error) {
	if _, err := uc.courtRepo.GetCourt(ctx, courtID); err != nil {
		return nil, err
	}

	if err := uc.occupancyRepo.RemovePlayer(ctx, courtID, userID); err != nil {
		return nil, err
	}

	current, err := uc.occupancyRepo.GetUserCourt(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == courtID {
		if err := uc.occupancyRepo.ClearUserCourt(ctx, userID); err != nil {
			return nil, err
		}

		event := &models.CheckinEvent{
			UserID:    userID,
			CourtID:   courtID,
			CheckedIn: false,
			Timestamp: uc.now(),
		}
		if err := uc.courtGW.PublishCheckoutEvent(ctx, event); err != nil {
			uc.logger.WithError(err).WithFields(logrus.Fields{
				"user_id":  userID,
				"court_id": courtID,
			}).Warn("failed to publish checkout event")
		}
	}

	count, _ := uc.occupancyRepo.CountPlayers(ctx, courtID)
	return &models.CheckinResult{Message: "Checked out", CurrentPlayers: count}, nil
}

// GetCourtPlayers returns the publicly visible player IDs at a court
func (uc *CourtUC) GetCourtPlayers(ctx context.Context, courtID string) ([]string, error) {
	return uc.occupancyRepo.GetPlayers(ctx, courtID)
}

// ApplyPrivacyChange reacts to a user toggling their visibility: going
// private removes them from their court's public roster, going public adds
// them back.
func (uc *CourtUC) ApplyPrivacyChange(ctx context.Context, event *models.PrivacyEvent) error {
	courtID := event.CourtID
	if courtID == "" {
		current, err := uc.occupancyRepo.GetUserCourt(ctx, event.UserID)
		if err != nil {
			return err
		}
		courtID = current
	}
	if courtID == "" {
		return nil
	}

	if event.IsPublic {
		return uc.occupancyRepo.AddPlayer(ctx, courtID, event.UserID)
	}
	return uc.occupancyRepo.RemovePlayer(ctx, courtID, event.UserID)
}

// SyncGeoIndex rebuilds the Redis geo index from the catalog. Called at
// startup so nearby queries work after a cache flush.
func (uc *CourtUC) SyncGeoIndex(ctx context.Context) error {
	catalog, err := uc.courtRepo.GetCourts(ctx)
	if err != nil {
		return err
	}
	for i := range catalog {
		if err := uc.occupancyRepo.IndexCourtLocation(ctx, &catalog[i]); err != nil {
			return err
		}
	}
	return nil
}
