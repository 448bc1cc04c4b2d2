package gatewaynsq

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/internal/pkg/nsq"
	"github.com/hoopspot/hoopspot/internal/utils"
)

// LocationSource delivers device position reports from the location topic.
// The configured distance and interval hints are applied here, before the
// monitor ever sees a sample, mirroring how a platform location API filters
// updates at the subscription level.
//
// Permission grants come from configuration: the agent host either has
// standing authority to track the device or it does not, and the control
// surface reports that as the foreground/background grant pair.
type LocationSource struct {
	cfg        models.GeofenceConfig
	nsqAddress string
	logger     *logger.AppLogger

	mu            sync.Mutex
	consumer      *nsq.Consumer
	lastDelivered *models.LocationSample
}

// NewLocationSource creates a location source reading from NSQ.
func NewLocationSource(cfg models.GeofenceConfig, nsqAddress string, appLogger *logger.AppLogger) *LocationSource {
	return &LocationSource{
		cfg:        cfg,
		nsqAddress: nsqAddress,
		logger:     appLogger,
	}
}

// RequestPermissions reports the configured grants. There is no interactive
// prompt on a headless agent; the grants are operator-provisioned.
func (s *LocationSource) RequestPermissions(_ context.Context) (models.PermissionStatus, error) {
	return s.permissionStatus(), nil
}

// Permissions reports the current grants without requesting anything.
func (s *LocationSource) Permissions(_ context.Context) (models.PermissionStatus, error) {
	return s.permissionStatus(), nil
}

func (s *LocationSource) permissionStatus() models.PermissionStatus {
	return models.PermissionStatus{
		ForegroundGranted: s.cfg.ForegroundGranted,
		BackgroundGranted: s.cfg.BackgroundGranted,
	}
}

// Subscribe starts consuming location events and invokes fn for every sample
// that passes the distance/interval filter. The subscription ends when ctx is
// cancelled or Stop is called.
func (s *LocationSource) Subscribe(ctx context.Context, fn func(models.LocationSample)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consumer != nil {
		return errors.New("location source already subscribed")
	}

	consumer, err := nsq.NewConsumer(s.cfg.LocationTopic, s.cfg.LocationChannel, s.nsqAddress, func(body []byte) error {
		var event models.LocationEvent
		if err := nsq.UnmarshalMessage(body, &event); err != nil {
			s.logger.WithError(err).Warn("discarding malformed location event")
			return nil
		}

		sample := event.Sample()
		if s.shouldDeliver(sample) {
			fn(sample)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.consumer = consumer
	s.lastDelivered = nil

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	s.logger.WithFields(logrus.Fields{
		"topic":   s.cfg.LocationTopic,
		"channel": s.cfg.LocationChannel,
	}).Info("subscribed to location updates")
	return nil
}

// shouldDeliver applies the subscription hints: a sample passes when the
// device moved far enough or enough time elapsed since the last delivery.
func (s *LocationSource) shouldDeliver(sample models.LocationSample) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	last := s.lastDelivered
	if last != nil {
		moved := utils.DistanceMeters(last.Coordinate, sample.Coordinate)
		elapsed := sample.Timestamp.Sub(last.Timestamp)
		if moved < s.cfg.MinSampleDistanceMeters && elapsed < s.cfg.MinSampleInterval {
			return false
		}
	}
	s.lastDelivered = &sample
	return true
}

// Stop ends the subscription. Safe to call repeatedly.
func (s *LocationSource) Stop() {
	s.mu.Lock()
	consumer := s.consumer
	s.consumer = nil
	s.mu.Unlock()

	if consumer != nil {
		consumer.Stop()
	}
}

