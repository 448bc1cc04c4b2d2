package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/services/courts/mocks"
)

type courtFixture struct {
	courtRepo     *mocks.MockCourtRepo
	occupancyRepo *mocks.MockOccupancyRepo
	courtGW       *mocks.MockCourtGW
	uc            *CourtUC
}

func newCourtFixture(t *testing.T, ctrl *gomock.Controller) *courtFixture {
	t.Helper()
	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "panic"})
	require.NoError(t, err)

	f := &courtFixture{
		courtRepo:     mocks.NewMockCourtRepo(ctrl),
		occupancyRepo: mocks.NewMockOccupancyRepo(ctrl),
		courtGW:       mocks.NewMockCourtGW(ctrl),
	}
	f.uc = NewCourtUC(f.courtRepo, f.occupancyRepo, f.courtGW, appLogger)
	return f
}

var testCourt = models.Court{
	ID:        "court-1",
	Name:      "Downtown Court",
	Latitude:  29.7604,
	Longitude: -95.3698,
}

func TestCheckIn_PublicUserJoinsRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCourtFixture(t, ctrl)
	ctx := context.Background()

	f.courtRepo.EXPECT().GetCourt(ctx, "court-1").Return(&testCourt, nil)
	f.occupancyRepo.EXPECT().GetUserCourt(ctx, "user-1").Return("", nil)
	f.courtGW.EXPECT().GetUserVisibility(ctx, "user-1").Return(true, nil)
	f.occupancyRepo.EXPECT().AddPlayer(ctx, "court-1", "user-1").Return(nil)
	f.occupancyRepo.EXPECT().SetUserCourt(ctx, "user-1", "court-1").Return(nil)
	f.courtGW.EXPECT().PublishCheckinEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *models.CheckinEvent) error {
			assert.Equal(t, "user-1", e.UserID)
			assert.Equal(t, "court-1", e.CourtID)
			assert.True(t, e.CheckedIn)
			return nil
		})
	f.occupancyRepo.EXPECT().CountPlayers(ctx, "court-1").Return(3, nil)

	result, err := f.uc.CheckIn(ctx, "user-1", "court-1")
	require.NoError(t, err)
	assert.Equal(t, 3, result.CurrentPlayers)
	assert.Contains(t, result.Message, "Downtown Court")
}

func TestCheckIn_PrivateUserStaysOffRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCourtFixture(t, ctrl)
	ctx := context.Background()

	f.courtRepo.EXPECT().GetCourt(ctx, "court-1").Return(&testCourt, nil)
	f.occupancyRepo.EXPECT().GetUserCourt(ctx, "user-1").Return("", nil)
	f.courtGW.EXPECT().GetUserVisibility(ctx, "user-1").Return(false, nil)
	// No AddPlayer: private users are counted nowhere.
	f.occupancyRepo.EXPECT().SetUserCourt(ctx, "user-1", "court-1").Return(nil)
	f.courtGW.EXPECT().PublishCheckinEvent(ctx, gomock.Any()).Return(nil)
	f.occupancyRepo.EXPECT().CountPlayers(ctx, "court-1").Return(0, nil)

	_, err := f.uc.CheckIn(ctx, "user-1", "court-1")
	require.NoError(t, err)
}

func TestCheckIn_SameCourtIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCourtFixture(t, ctrl)
	ctx := context.Background()

	f.courtRepo.EXPECT().GetCourt(ctx, "court-1").Return(&testCourt, nil)
	f.occupancyRepo.EXPECT().GetUserCourt(ctx, "user-1").Return("court-1", nil)
	f.occupancyRepo.EXPECT().CountPlayers(ctx, "court-1").Return(2, nil)

	result, err := f.uc.CheckIn(ctx, "user-1", "court-1")
	require.NoError(t, err)
	assert.Equal(t, "Already checked in", result.Message)
}

func TestCheckIn_ImplicitCheckoutFromPreviousCourt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCourtFixture(t, ctrl)
	ctx := context.Background()

	previous := models.Court{ID: "court-0", Name: "Old Court"}

	f.courtRepo.EXPECT().GetCourt(ctx, "court-1").Return(&testCourt, nil)
	f.occupancyRepo.EXPECT().GetUserCourt(ctx, "user-1").Return("court-0", nil)

	// Implicit checkout of court-0.
	f.courtRepo.EXPECT().GetCourt(ctx, "court-0").Return(&previous, nil)
	f.occupancyRepo.EXPECT().RemovePlayer(ctx, "court-0", "user-1").Return(nil)
	f.occupancyRepo.EXPECT().GetUserCourt(ctx, "user-1").Return("court-0", nil)
	f.occupancyRepo.EXPECT().ClearUserCourt(ctx, "user-1").Return(nil)
	f.courtGW.EXPECT().PublishCheckoutEvent(ctx, gomock.Any()).Return(nil)
	f.occupancyRepo.EXPECT().CountPlayers(ctx, "court-0").Return(1, nil)

	// Then the new check-in.
	f.courtGW.EXPECT().GetUserVisibility(ctx, "user-1").Return(true, nil)
	f.occupancyRepo.EXPECT().AddPlayer(ctx, "court-1", "user-1").Return(nil)
	f.occupancyRepo.EXPECT().SetUserCourt(ctx, "user-1", "court-1").Return(nil)
	f.courtGW.EXPECT().PublishCheckinEvent(ctx, gomock.Any()).Return(nil)
	f.occupancyRepo.EXPECT().CountPlayers(ctx, "court-1").Return(4, nil)

	result, err := f.uc.CheckIn(ctx, "user-1", "court-1")
	require.NoError(t, err)
	assert.Equal(t, 4, result.CurrentPlayers)
}

func TestCheckIn_UnknownCourt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCourtFixture(t, ctrl)
	ctx := context.Background()

	f.courtRepo.EXPECT().GetCourt(ctx, "ghost").Return(nil, errors.New("court not found: ghost"))

	_, err := f.uc.CheckIn(ctx, "user-1", "ghost")
	assert.Error(t, err)
}

func TestCheckOut_NotCheckedInIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCourtFixture(t, ctrl)
	ctx := context.Background()

	f.courtRepo.EXPECT().GetCourt(ctx, "court-1").Return(&testCourt, nil)
	f.occupancyRepo.EXPECT().RemovePlayer(ctx, "court-1", "user-1").Return(nil)
	f.occupancyRepo.EXPECT().GetUserCourt(ctx, "user-1").Return("", nil)
	// No ClearUserCourt and no checkout event for a user who was not here.
	f.occupancyRepo.EXPECT().CountPlayers(ctx, "court-1").Return(0, nil)

	result, err := f.uc.CheckOut(ctx, "user-1", "court-1")
	require.NoError(t, err)
	assert.Equal(t, "Checked out", result.Message)
}

func TestGetCourts_AttachesOccupancy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCourtFixture(t, ctrl)
	ctx := context.Background()

	f.courtRepo.EXPECT().GetCourts(ctx).Return([]models.Court{testCourt}, nil)
	f.occupancyRepo.EXPECT().CountPlayers(ctx, "court-1").Return(5, nil)

	catalog, err := f.uc.GetCourts(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, 5, catalog[0].CurrentPlayers)
}

func TestGetNearbyCourts_SortsByDistance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCourtFixture(t, ctrl)
	ctx := context.Background()

	far := models.Court{ID: "court-2", Name: "Far Court"}
	coord := models.Coordinate{Latitude: 29.76, Longitude: -95.37}

	f.occupancyRepo.EXPECT().NearbyCourtIDs(ctx, coord, 5.0).Return(map[string]float64{
		"court-1": 0.4,
		"court-2": 2.1,
	}, nil)
	f.courtRepo.EXPECT().GetCourts(ctx).Return([]models.Court{far, testCourt}, nil)
	f.occupancyRepo.EXPECT().CountPlayers(ctx, "court-1").Return(2, nil)
	f.occupancyRepo.EXPECT().CountPlayers(ctx, "court-2").Return(0, nil)

	nearby, err := f.uc.GetNearbyCourts(ctx, coord, 5.0)
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "court-1", nearby[0].ID)
	assert.InDelta(t, 0.4, nearby[0].DistanceKm, 1e-9)
	assert.Equal(t, "court-2", nearby[1].ID)
}

func TestGetNearbyCourts_FallsBackToCatalogScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCourtFixture(t, ctrl)
	ctx := context.Background()

	coord := models.Coordinate{Latitude: testCourt.Latitude, Longitude: testCourt.Longitude}

	f.occupancyRepo.EXPECT().NearbyCourtIDs(ctx, coord, 5.0).Return(map[string]float64{}, nil)
	f.courtRepo.EXPECT().GetCourts(ctx).Return([]models.Court{testCourt}, nil)
	f.occupancyRepo.EXPECT().CountPlayers(ctx, "court-1").Return(0, nil)

	nearby, err := f.uc.GetNearbyCourts(ctx, coord, 5.0)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "court-1", nearby[0].ID)
	assert.InDelta(t, 0, nearby[0].DistanceKm, 1e-6)
}

func TestApplyPrivacyChange_GoingPrivateRemovesFromRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCourtFixture(t, ctrl)
	ctx := context.Background()

	f.occupancyRepo.EXPECT().GetUserCourt(ctx, "user-1").Return("court-1", nil)
	f.occupancyRepo.EXPECT().RemovePlayer(ctx, "court-1", "user-1").Return(nil)

	err := f.uc.ApplyPrivacyChange(ctx, &models.PrivacyEvent{
		UserID:    "user-1",
		IsPublic:  false,
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
}

func TestApplyPrivacyChange_NotCheckedInIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCourtFixture(t, ctrl)
	ctx := context.Background()

	f.occupancyRepo.EXPECT().GetUserCourt(ctx, "user-1").Return("", nil)

	err := f.uc.ApplyPrivacyChange(ctx, &models.PrivacyEvent{UserID: "user-1", IsPublic: true})
	require.NoError(t, err)
}
