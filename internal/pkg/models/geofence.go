package models

import "time"

// GeofenceRadiusMeters is the check-in radius around a court. It is
// deliberately tight, sized to a single court footprint, so that two
// adjacent courts cannot both satisfy the geofence at once.
const GeofenceRadiusMeters = 75.0

// Coordinate is an immutable latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationSample is a single position report from a device. Samples are
// ephemeral: produced by the location source, consumed once by the monitor.
type LocationSample struct {
	Coordinate Coordinate `json:"coordinate"`
	Timestamp  time.Time  `json:"timestamp"`
}

// PermissionStatus reports the device's location permission grants.
type PermissionStatus struct {
	ForegroundGranted bool `json:"foreground_granted"`
	BackgroundGranted bool `json:"background_granted"`
}

// Granted reports whether both foreground and background access are allowed.
func (p PermissionStatus) Granted() bool {
	return p.ForegroundGranted && p.BackgroundGranted
}

// GeofenceState is the single durable record owned by the auto check-in
// subsystem: which court (if any) the device is currently inside, and when
// the last successful evaluation ran. The zero value means "outside, never
// evaluated".
type GeofenceState struct {
	CurrentCourtID string
	LastCheckTime  time.Time
}

// Inside reports whether the state records the device inside a court.
func (s GeofenceState) Inside() bool {
	return s.CurrentCourtID != ""
}

// TransitionKind enumerates the geofence state machine transitions.
type TransitionKind string

const (
	TransitionNone   TransitionKind = "none"
	TransitionEnter  TransitionKind = "enter"
	TransitionExit   TransitionKind = "exit"
	TransitionSwitch TransitionKind = "switch"
)

// Transition is the tagged result of one geofence evaluation. For a switch,
// ExitCourtID is the court being left and EnterCourtID the court being
// entered; checkout must precede checkin.
type Transition struct {
	Kind         TransitionKind
	EnterCourtID string
	ExitCourtID  string
}

// EvaluationResult pairs the decided transition with the state to persist
// once the transition's network effects have succeeded. NextState must not
// be persisted if a gateway call fails.
type EvaluationResult struct {
	Transition Transition
	NextState  GeofenceState
}

// MonitorStatus is the control surface view of the monitor.
type MonitorStatus struct {
	Active         bool              `json:"active"`
	CurrentCourtID string            `json:"current_court_id,omitempty"`
	LastCheckTime  time.Time         `json:"last_check_time"`
	Permissions    *PermissionStatus `json:"permissions,omitempty"`
}
