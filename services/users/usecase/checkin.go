package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// ApplyCheckinEvent keeps users.current_court_id in sync with the courts
// service's check-in stream. A checkout only clears the association when it
// still points at the checked-out court: a newer check-in elsewhere wins
// over a late-arriving checkout event.
func (uc *UserUC) ApplyCheckinEvent(ctx context.Context, event *models.CheckinEvent) error {
	if event.CheckedIn {
		return uc.userRepo.SetCurrentCourt(ctx, event.UserID, event.CourtID)
	}

	user, err := uc.userRepo.GetUserByID(ctx, event.UserID)
	if err != nil {
		return err
	}
	if user.CurrentCourtID != event.CourtID {
		uc.logger.WithFields(logrus.Fields{
			"user_id":  event.UserID,
			"court_id": event.CourtID,
		}).Debug("ignoring stale checkout event")
		return nil
	}
	return uc.userRepo.ClearCurrentCourt(ctx, event.UserID)
}
