package geofence

import (
	"context"
	"errors"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// ErrNoSession is returned by gateways when no usable session credential is
// available. Auto check-in is best effort: callers treat it as a skipped,
// non-fatal cycle rather than an error to surface.
var ErrNoSession = errors.New("no session credential available")

// StateRepo persists the single durable GeofenceState record across process
// restarts. Load degrades to the zero state instead of failing.
type StateRepo interface {
	Load(ctx context.Context) (models.GeofenceState, error)
	Save(ctx context.Context, state models.GeofenceState) error
	Clear(ctx context.Context) error
}

// CatalogGW fetches the current court catalog from the courts service. The
// catalog is re-fetched on every evaluation cycle so court edits take
// effect immediately; there is no local cache.
type CatalogGW interface {
	GetCourts(ctx context.Context) ([]models.Court, error)
}

// CheckinGW issues authenticated check-in and check-out calls against the
// courts service. Each call is a single attempt; failures are reported
// upward and the next evaluation cycle is the retry mechanism.
type CheckinGW interface {
	CheckIn(ctx context.Context, courtID string) error
	CheckOut(ctx context.Context, courtID string) error
}

// SessionProvider supplies the session credential for gateway calls. It is
// consulted per call; Token returns ErrNoSession when no usable credential
// is stored.
type SessionProvider interface {
	Token(ctx context.Context) (string, error)
}

// LocationSource abstracts the platform's continuous location capability:
// permission negotiation plus a subscription that delivers samples already
// filtered by the configured distance/time hints.
type LocationSource interface {
	RequestPermissions(ctx context.Context) (models.PermissionStatus, error)
	Permissions(ctx context.Context) (models.PermissionStatus, error)
	Subscribe(ctx context.Context, fn func(models.LocationSample)) error
	Stop()
}

// MonitorUC is the control surface of the auto check-in monitor. All
// operations are idempotent.
type MonitorUC interface {
	Start(ctx context.Context) (bool, error)
	Stop()
	IsActive() bool
	Status(ctx context.Context) models.MonitorStatus
	Permissions(ctx context.Context) (models.PermissionStatus, error)
	Reset(ctx context.Context) error
}
