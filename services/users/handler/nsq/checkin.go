package nsq

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hoopspot/hoopspot/internal/pkg/constants"
	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	pkgnsq "github.com/hoopspot/hoopspot/internal/pkg/nsq"
	"github.com/hoopspot/hoopspot/services/users"
)

// CheckinConsumer consumes the courts service's check-in stream so
// users.current_court_id tracks where each user is playing.
type CheckinConsumer struct {
	userUC    users.UserUC
	logger    *logger.AppLogger
	consumers []*pkgnsq.Consumer
}

// NewCheckinConsumer creates a new check-in event consumer
func NewCheckinConsumer(userUC users.UserUC, appLogger *logger.AppLogger) *CheckinConsumer {
	return &CheckinConsumer{
		userUC: userUC,
		logger: appLogger,
	}
}

// Start begins consuming check-in and check-out events from NSQ
func (cc *CheckinConsumer) Start(nsqAddress string) error {
	for _, topic := range []string{constants.TopicCourtCheckin, constants.TopicCourtCheckout} {
		consumer, err := pkgnsq.NewConsumer(
			topic,
			constants.ChannelUsersService,
			nsqAddress,
			cc.handleCheckinEvent,
		)
		if err != nil {
			cc.Stop()
			return err
		}
		cc.consumers = append(cc.consumers, consumer)
	}
	return nil
}

// Stop gracefully stops the consumers
func (cc *CheckinConsumer) Stop() {
	for _, consumer := range cc.consumers {
		consumer.Stop()
	}
	cc.consumers = nil
}

func (cc *CheckinConsumer) handleCheckinEvent(body []byte) error {
	var event models.CheckinEvent
	if err := pkgnsq.UnmarshalMessage(body, &event); err != nil {
		cc.logger.WithError(err).Warn("discarding malformed checkin event")
		return nil
	}

	if err := cc.userUC.ApplyCheckinEvent(context.Background(), &event); err != nil {
		cc.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":    event.UserID,
			"court_id":   event.CourtID,
			"checked_in": event.CheckedIn,
		}).Error("failed to apply checkin event")
		return err
	}
	return nil
}
