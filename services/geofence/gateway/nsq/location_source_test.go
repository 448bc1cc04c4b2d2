package gatewaynsq

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

func newTestSource(t *testing.T, cfg models.GeofenceConfig) *LocationSource {
	t.Helper()
	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "panic"})
	require.NoError(t, err)
	return NewLocationSource(cfg, "127.0.0.1:4150", appLogger)
}

func sampleAt(lat, lng float64, ts time.Time) models.LocationSample {
	return models.LocationSample{
		Coordinate: models.Coordinate{Latitude: lat, Longitude: lng},
		Timestamp:  ts,
	}
}

func TestShouldDeliver_FirstSampleAlwaysPasses(t *testing.T) {
	s := newTestSource(t, models.GeofenceConfig{
		MinSampleDistanceMeters: 25,
		MinSampleInterval:       30 * time.Second,
	})

	assert.True(t, s.shouldDeliver(sampleAt(29.7604, -95.3698, time.Now())))
}

func TestShouldDeliver_NearbyRecentSampleIsDropped(t *testing.T) {
	s := newTestSource(t, models.GeofenceConfig{
		MinSampleDistanceMeters: 25,
		MinSampleInterval:       30 * time.Second,
	})

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.True(t, s.shouldDeliver(sampleAt(29.7604, -95.3698, base)))

	// ~5 m away, 5 s later: under both hints.
	close := sampleAt(29.7604+5.0/111194.9, -95.3698, base.Add(5*time.Second))
	assert.False(t, s.shouldDeliver(close))
}

func TestShouldDeliver_DistanceHintPasses(t *testing.T) {
	s := newTestSource(t, models.GeofenceConfig{
		MinSampleDistanceMeters: 25,
		MinSampleInterval:       30 * time.Second,
	})

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.True(t, s.shouldDeliver(sampleAt(29.7604, -95.3698, base)))

	// ~50 m away just 1 s later: distance hint alone is enough.
	far := sampleAt(29.7604+50.0/111194.9, -95.3698, base.Add(time.Second))
	assert.True(t, s.shouldDeliver(far))
}

func TestShouldDeliver_IntervalHintPasses(t *testing.T) {
	s := newTestSource(t, models.GeofenceConfig{
		MinSampleDistanceMeters: 25,
		MinSampleInterval:       30 * time.Second,
	})

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.True(t, s.shouldDeliver(sampleAt(29.7604, -95.3698, base)))

	// Same spot, 31 s later: interval hint alone is enough.
	later := sampleAt(29.7604, -95.3698, base.Add(31*time.Second))
	assert.True(t, s.shouldDeliver(later))
}

func TestPermissionsReflectConfiguredGrants(t *testing.T) {
	s := newTestSource(t, models.GeofenceConfig{
		ForegroundGranted: true,
		BackgroundGranted: false,
	})

	perms, err := s.Permissions(context.Background())
	require.NoError(t, err)
	assert.True(t, perms.ForegroundGranted)
	assert.False(t, perms.BackgroundGranted)
	assert.False(t, perms.Granted())
}
