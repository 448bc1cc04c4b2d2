package nsq

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hoopspot/hoopspot/internal/pkg/constants"
	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	pkgnsq "github.com/hoopspot/hoopspot/internal/pkg/nsq"
	"github.com/hoopspot/hoopspot/services/courts"
)

// PrivacyConsumer consumes user.privacy events so the public occupancy
// rosters track visibility toggles made in the users service.
type PrivacyConsumer struct {
	courtUC  courts.CourtUC
	logger   *logger.AppLogger
	consumer *pkgnsq.Consumer
}

// NewPrivacyConsumer creates a new privacy event consumer
func NewPrivacyConsumer(courtUC courts.CourtUC, appLogger *logger.AppLogger) *PrivacyConsumer {
	return &PrivacyConsumer{
		courtUC: courtUC,
		logger:  appLogger,
	}
}

// Start begins consuming privacy events from NSQ
func (pc *PrivacyConsumer) Start(nsqAddress string) error {
	consumer, err := pkgnsq.NewConsumer(
		constants.TopicUserPrivacy,
		constants.ChannelCourtsService,
		nsqAddress,
		pc.handlePrivacyEvent,
	)
	if err != nil {
		return err
	}
	pc.consumer = consumer
	return nil
}

// Stop gracefully stops the consumer
func (pc *PrivacyConsumer) Stop() {
	if pc.consumer != nil {
		pc.consumer.Stop()
	}
}

func (pc *PrivacyConsumer) handlePrivacyEvent(body []byte) error {
	var event models.PrivacyEvent
	if err := pkgnsq.UnmarshalMessage(body, &event); err != nil {
		pc.logger.WithError(err).Warn("discarding malformed privacy event")
		return nil
	}

	if err := pc.courtUC.ApplyPrivacyChange(context.Background(), &event); err != nil {
		pc.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":   event.UserID,
			"is_public": event.IsPublic,
		}).Error("failed to apply privacy change")
		return err
	}
	return nil
}
