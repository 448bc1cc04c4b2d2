package utils

import (
	"testing"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	a := models.Coordinate{Latitude: 29.7604, Longitude: -95.3698}

	d := DistanceMeters(a, a)
	if d > 1e-6 {
		t.Errorf("expected ~0 for identical points, got %f", d)
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	cases := []struct {
		name string
		a, b models.Coordinate
	}{
		{"houston downtown", models.Coordinate{Latitude: 29.7604, Longitude: -95.3698}, models.Coordinate{Latitude: 29.7514, Longitude: -95.3585}},
		{"across equator", models.Coordinate{Latitude: -6.2088, Longitude: 106.8456}, models.Coordinate{Latitude: 1.3521, Longitude: 103.8198}},
		{"antimeridian", models.Coordinate{Latitude: 0, Longitude: 179.9}, models.Coordinate{Latitude: 0, Longitude: -179.9}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ab := DistanceMeters(tc.a, tc.b)
			ba := DistanceMeters(tc.b, tc.a)
			if ab != ba {
				t.Errorf("distance not symmetric: %f vs %f", ab, ba)
			}
			if ab < 0 {
				t.Errorf("distance must be non-negative, got %f", ab)
			}
		})
	}
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// Discovery Green to Market Square Park, roughly 1.3 km apart
	a := models.Coordinate{Latitude: 29.7514, Longitude: -95.3585}
	b := models.Coordinate{Latitude: 29.7621, Longitude: -95.3617}

	d := DistanceMeters(a, b)
	if d < 1100 || d > 1400 {
		t.Errorf("expected ~1200m, got %f", d)
	}
}

func TestDistanceMeters_SmallOffsets(t *testing.T) {
	// One degree of latitude is ~111.19 km at this radius, so 50m is
	// about 0.00045 degrees.
	base := models.Coordinate{Latitude: 29.7604, Longitude: -95.3698}
	near := models.Coordinate{Latitude: base.Latitude + 50.0/111194.9, Longitude: base.Longitude}

	d := DistanceMeters(base, near)
	if d < 49 || d > 51 {
		t.Errorf("expected ~50m, got %f", d)
	}
}

func TestEncodeDecodeGeohash(t *testing.T) {
	coord := models.Coordinate{Latitude: 29.7604, Longitude: -95.3698}

	hash := EncodeLocation(coord, 7)
	if len(hash) != 7 {
		t.Fatalf("expected 7-char geohash, got %q", hash)
	}

	lat, lon := DecodeGeohash(hash)
	if DistanceMeters(coord, models.Coordinate{Latitude: lat, Longitude: lon}) > 200 {
		t.Errorf("decoded point too far from original: %f %f", lat, lon)
	}
}
