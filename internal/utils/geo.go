package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// Earth's mean radius in meters
const earthRadiusMeters = 6371000.0

// DistanceMeters calculates the great-circle distance between two
// coordinates in meters using the Haversine formula. It is symmetric and
// returns zero for identical points.
func DistanceMeters(a, b models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// DistanceKm calculates the great-circle distance in kilometers.
func DistanceKm(a, b models.Coordinate) float64 {
	return DistanceMeters(a, b) / 1000.0
}

// EncodeLocation converts a coordinate to a geohash string
func EncodeLocation(coord models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(coord.Latitude, coord.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// GeohashNeighbors returns the neighboring geohashes of a given geohash
func GeohashNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}
