package models

import "time"

// CheckinEvent is published by the courts service whenever a user checks in
// to or out of a court. The users service consumes it to keep
// users.current_court_id in sync.
type CheckinEvent struct {
	UserID    string    `json:"user_id"`
	CourtID   string    `json:"court_id"`
	CheckedIn bool      `json:"checked_in"`
	Timestamp time.Time `json:"timestamp"`
}

// PrivacyEvent is published by the users service when a user toggles their
// visibility. The courts service consumes it to add or remove the user from
// their current court's public occupancy.
type PrivacyEvent struct {
	UserID    string    `json:"user_id"`
	CourtID   string    `json:"court_id,omitempty"`
	IsPublic  bool      `json:"is_public"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationEvent is the device-side location report carried on the location
// topic and consumed by the auto check-in agent.
type LocationEvent struct {
	DeviceID  string    `json:"device_id,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// Sample converts the event into the monitor's input form.
func (e *LocationEvent) Sample() LocationSample {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return LocationSample{
		Coordinate: Coordinate{Latitude: e.Latitude, Longitude: e.Longitude},
		Timestamp:  ts,
	}
}
