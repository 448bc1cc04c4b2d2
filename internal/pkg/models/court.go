package models

import "time"

// Court represents a basketball court in the catalog
type Court struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Address        string    `json:"address" db:"address"`
	Latitude       float64   `json:"latitude" db:"latitude"`
	Longitude      float64   `json:"longitude" db:"longitude"`
	Geohash        string    `json:"-" db:"geohash"`
	Hours          string    `json:"hours" db:"hours"`
	PhoneNumber    string    `json:"phoneNumber" db:"phone_number"`
	Rating         float64   `json:"rating" db:"rating"`
	CurrentPlayers int       `json:"currentPlayers" db:"-"`
	AveragePlayers int       `json:"averagePlayers" db:"average_players"`
	Image          string    `json:"image,omitempty" db:"image"`
	CreatedAt      time.Time `json:"-" db:"created_at"`
	UpdatedAt      time.Time `json:"-" db:"updated_at"`
}

// Coordinate returns the court's position as a Coordinate value.
func (c *Court) Coordinate() Coordinate {
	return Coordinate{Latitude: c.Latitude, Longitude: c.Longitude}
}

// NearbyCourt is a catalog entry annotated with the distance from the
// queried position.
type NearbyCourt struct {
	Court
	DistanceKm float64 `json:"distanceKm"`
}

// CheckinResult is returned by check-in and check-out operations with the
// court's refreshed occupancy.
type CheckinResult struct {
	Message        string `json:"message"`
	CurrentPlayers int    `json:"currentPlayers"`
}
