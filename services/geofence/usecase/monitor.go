package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/services/geofence"
)

// Monitor drives the auto check-in pipeline: it owns the location
// subscription and runs the evaluate→act→persist cycle for each sample.
//
// Cycles are strictly serialized: a single goroutine drains a single-slot
// sample buffer, so no two evaluations ever interleave and the persisted
// state is read and written by at most one cycle at a time. Samples that
// arrive while a cycle is in flight overwrite the pending slot; only the
// most recent position is worth evaluating.
type Monitor struct {
	store    geofence.StateRepo
	catalog  geofence.CatalogGW
	checkins geofence.CheckinGW
	source   geofence.LocationSource
	cfg      models.GeofenceConfig
	logger   *logger.AppLogger
	now      func() time.Time

	mu     sync.Mutex
	active bool
	cancel context.CancelFunc
	done   chan struct{}

	pending chan models.LocationSample
}

// NewMonitor creates a monitor wired to the given collaborators.
func NewMonitor(
	store geofence.StateRepo,
	catalog geofence.CatalogGW,
	checkins geofence.CheckinGW,
	source geofence.LocationSource,
	cfg models.GeofenceConfig,
	appLogger *logger.AppLogger,
) *Monitor {
	return &Monitor{
		store:    store,
		catalog:  catalog,
		checkins: checkins,
		source:   source,
		cfg:      cfg,
		logger:   appLogger,
		now:      time.Now,
		pending:  make(chan models.LocationSample, 1),
	}
}

// Start negotiates location permissions and begins monitoring. It returns
// false without error when permission is denied. Calling Start while
// already active is a no-op returning true.
func (m *Monitor) Start(ctx context.Context) (bool, error) {
	m.mu.Lock()
	if m.active {
		m.mu.Unlock()
		return true, nil
	}
	m.mu.Unlock()

	perms, err := m.source.RequestPermissions(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to request location permissions: %w", err)
	}
	if !perms.Granted() {
		m.logger.WithFields(logrus.Fields{
			"foreground": perms.ForegroundGranted,
			"background": perms.BackgroundGranted,
		}).Info("location permission not granted, monitor not started")
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active {
		return true, nil
	}

	runCtx, cancel := context.WithCancel(context.Background())
	if err := m.source.Subscribe(runCtx, m.HandleSample); err != nil {
		cancel()
		return false, fmt.Errorf("failed to subscribe to location updates: %w", err)
	}

	m.cancel = cancel
	m.done = make(chan struct{})
	m.active = true
	go m.run(runCtx, m.done)

	m.logger.Info("auto check-in monitor started")
	return true, nil
}

// Stop cancels the location subscription and waits for any in-flight
// evaluation cycle to complete so persisted state stays consistent with the
// last known position. Persisted state is not cleared. Calling Stop while
// inactive is a no-op.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.active {
		m.mu.Unlock()
		return
	}
	cancel := m.cancel
	done := m.done
	m.active = false
	m.cancel = nil
	m.done = nil
	m.mu.Unlock()

	m.source.Stop()
	cancel()
	<-done

	m.logger.Info("auto check-in monitor stopped")
}

// IsActive reports whether the monitor is currently running.
func (m *Monitor) IsActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Status returns the control surface view of the monitor.
func (m *Monitor) Status(ctx context.Context) models.MonitorStatus {
	state, err := m.store.Load(ctx)
	if err != nil {
		state = models.GeofenceState{}
	}
	return models.MonitorStatus{
		Active:         m.IsActive(),
		CurrentCourtID: state.CurrentCourtID,
		LastCheckTime:  state.LastCheckTime,
	}
}

// Permissions reports the current location permission grants.
func (m *Monitor) Permissions(ctx context.Context) (models.PermissionStatus, error) {
	return m.source.Permissions(ctx)
}

// Reset clears the persisted state back to its default. Used on logout.
func (m *Monitor) Reset(ctx context.Context) error {
	return m.store.Clear(ctx)
}

// HandleSample accepts a location sample for evaluation. If a cycle is in
// flight the pending slot is overwritten: coalescing, not queueing, so
// memory stays bounded and stale positions are never evaluated.
func (m *Monitor) HandleSample(sample models.LocationSample) {
	for {
		select {
		case m.pending <- sample:
			return
		default:
			select {
			case <-m.pending:
			default:
			}
		}
	}
}

func (m *Monitor) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case sample := <-m.pending:
			m.runCycle(sample)
		}
	}
}

// runCycle performs one full evaluation cycle. It deliberately uses a
// fresh background context: cancelling the monitor must not interrupt
// gateway calls already in flight.
func (m *Monitor) runCycle(sample models.LocationSample) {
	ctx := context.Background()
	now := m.now()

	state, err := m.store.Load(ctx)
	if err != nil {
		state = models.GeofenceState{}
	}

	// Application-level throttle, independent of how often the platform
	// delivers samples. Bounds API call volume.
	if m.cfg.EvaluationInterval > 0 && now.Sub(state.LastCheckTime) < m.cfg.EvaluationInterval {
		m.logger.Debug("sample dropped by evaluation throttle")
		return
	}

	courts, err := m.catalog.GetCourts(ctx)
	if err != nil {
		m.logger.WithError(err).Warn("court catalog fetch failed, skipping cycle")
		return
	}

	result := Evaluate(sample, courts, state, now)

	if !m.apply(ctx, result.Transition) {
		// Effects failed: keep the prior state so the next cycle
		// recomputes the same transition and retries.
		return
	}

	if result.NextState.CurrentCourtID == state.CurrentCourtID &&
		result.NextState.LastCheckTime.Equal(state.LastCheckTime) {
		return
	}
	if err := m.store.Save(ctx, result.NextState); err != nil {
		m.logger.WithError(err).Warn("failed to persist geofence state")
	}
}

// apply performs the transition's network effects in order and reports
// whether they all succeeded.
func (m *Monitor) apply(ctx context.Context, t models.Transition) bool {
	switch t.Kind {
	case models.TransitionEnter:
		if err := m.checkins.CheckIn(ctx, t.EnterCourtID); err != nil {
			m.logGatewayFailure("check-in", t.EnterCourtID, err)
			return false
		}
		m.logger.WithField("court_id", t.EnterCourtID).Info("auto checked in")

	case models.TransitionExit:
		if err := m.checkins.CheckOut(ctx, t.ExitCourtID); err != nil {
			m.logGatewayFailure("check-out", t.ExitCourtID, err)
			return false
		}
		m.logger.WithField("court_id", t.ExitCourtID).Info("auto checked out")

	case models.TransitionSwitch:
		// Checkout first; if it fails the whole switch is aborted so
		// state never records the new court while the old check-in may
		// still stand server-side.
		if err := m.checkins.CheckOut(ctx, t.ExitCourtID); err != nil {
			m.logGatewayFailure("check-out", t.ExitCourtID, err)
			return false
		}
		if err := m.checkins.CheckIn(ctx, t.EnterCourtID); err != nil {
			m.logGatewayFailure("check-in", t.EnterCourtID, err)
			return false
		}
		m.logger.WithFields(logrus.Fields{
			"from_court_id": t.ExitCourtID,
			"to_court_id":   t.EnterCourtID,
		}).Info("auto switched courts")
	}
	return true
}

func (m *Monitor) logGatewayFailure(op, courtID string, err error) {
	entry := m.logger.WithFields(logrus.Fields{"op": op, "court_id": courtID})
	if errors.Is(err, geofence.ErrNoSession) {
		entry.Debug("no session credential, cycle skipped")
		return
	}
	entry.WithError(err).Warn("gateway call failed, cycle skipped")
}
