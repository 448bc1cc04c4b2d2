package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/services/users/mocks"
	"github.com/hoopspot/hoopspot/services/users/repository"
)

var testJWTConfig = models.JWTConfig{
	Secret:     "test-secret",
	Expiration: 60,
	Issuer:     "hoopspot",
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type userFixture struct {
	userRepo    *mocks.MockUserRepo
	messageRepo *mocks.MockMessageRepo
	networkRepo *mocks.MockNetworkRepo
	userGW      *mocks.MockUserGW
	uc          *UserUC
}

func newUserFixture(t *testing.T, ctrl *gomock.Controller) *userFixture {
	t.Helper()
	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "panic"})
	require.NoError(t, err)

	f := &userFixture{
		userRepo:    mocks.NewMockUserRepo(ctrl),
		messageRepo: mocks.NewMockMessageRepo(ctrl),
		networkRepo: mocks.NewMockNetworkRepo(ctrl),
		userGW:      mocks.NewMockUserGW(ctrl),
	}
	f.uc = NewUserUC(f.userRepo, f.messageRepo, f.networkRepo, f.userGW, testJWTConfig, appLogger)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestRegister_CreatesPublicUserAndIssuesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "jordan@example.com").
		Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "jordan", user.Username)
			assert.Equal(t, "jordan@example.com", user.Email)
			assert.True(t, user.IsPublic)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hoops123")))
			user.ID = "user-1"
			return nil
		})

	resp, err := f.uc.Register(context.Background(), &models.RegisterRequest{
		Username: "jordan",
		Email:    "  Jordan@Example.com ",
		Password: "hoops123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "taken@example.com").
		Return(&models.User{ID: "user-9", Email: "taken@example.com"}, nil)

	_, err := f.uc.Register(context.Background(), &models.RegisterRequest{
		Username: "jordan",
		Email:    "taken@example.com",
		Password: "hoops123",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_RequiresAllFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	_, err := f.uc.Register(context.Background(), &models.RegisterRequest{
		Username: "jordan",
	})

	assert.Error(t, err)
}

func TestLogin_ReturnsTokenOnValidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "jordan@example.com").
		Return(&models.User{
			ID:       "user-1",
			Email:    "jordan@example.com",
			Password: hashPassword(t, "hoops123"),
		}, nil)

	resp, err := f.uc.Login(context.Background(), &models.LoginRequest{
		Email:    "Jordan@Example.com",
		Password: "hoops123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "jordan@example.com").
		Return(&models.User{
			ID:       "user-1",
			Password: hashPassword(t, "hoops123"),
		}, nil)

	_, err := f.uc.Login(context.Background(), &models.LoginRequest{
		Email:    "jordan@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := f.uc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hoops123",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_AppliesOnlyProvidedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), "user-1").
		Return(&models.User{ID: "user-1", Username: "jordan", ProfilePic: "old.png"}, nil)
	f.userRepo.EXPECT().
		UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "mj23", user.Username)
			assert.Equal(t, "old.png", user.ProfilePic)
			return nil
		})

	updated, err := f.uc.UpdateProfile(context.Background(), "user-1", &models.ProfileUpdateRequest{
		Username: "mj23",
	})

	require.NoError(t, err)
	assert.Equal(t, "mj23", updated.Username)
}

func TestTogglePrivacy_FlipsVisibilityAndPublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), "user-1").
		Return(&models.User{ID: "user-1", IsPublic: true, CurrentCourtID: "court-1"}, nil)
	f.userRepo.EXPECT().
		SetVisibility(gomock.Any(), "user-1", false).
		Return(nil)
	f.userGW.EXPECT().
		PublishPrivacyEvent(gomock.Any(), &models.PrivacyEvent{
			UserID:    "user-1",
			CourtID:   "court-1",
			IsPublic:  false,
			Timestamp: fixedNow,
		}).
		Return(nil)

	resp, err := f.uc.TogglePrivacy(context.Background(), "user-1")

	require.NoError(t, err)
	assert.False(t, resp.IsPublic)
}

func TestTogglePrivacy_PublishFailureDoesNotFailToggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), "user-1").
		Return(&models.User{ID: "user-1", IsPublic: false}, nil)
	f.userRepo.EXPECT().
		SetVisibility(gomock.Any(), "user-1", true).
		Return(nil)
	f.userGW.EXPECT().
		PublishPrivacyEvent(gomock.Any(), gomock.Any()).
		Return(errors.New("nsq down"))

	resp, err := f.uc.TogglePrivacy(context.Background(), "user-1")

	require.NoError(t, err)
	assert.True(t, resp.IsPublic)
}

func TestSendMessage_SavesWithTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), "user-2").
		Return(&models.User{ID: "user-2"}, nil)
	f.messageRepo.EXPECT().
		SaveMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.Message) error {
			assert.Equal(t, "user-1", msg.FromUserID)
			assert.Equal(t, "user-2", msg.ToUserID)
			assert.Equal(t, "run it back tomorrow?", msg.Message)
			assert.Equal(t, fixedNow, msg.Timestamp)
			return nil
		})

	msg, err := f.uc.SendMessage(context.Background(), "user-1", &models.SendMessageRequest{
		ToUserID: "user-2",
		Message:  "run it back tomorrow?",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-2", msg.ToUserID)
}

func TestSendMessage_RejectsSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	_, err := f.uc.SendMessage(context.Background(), "user-1", &models.SendMessageRequest{
		ToUserID: "user-1",
		Message:  "hi",
	})

	assert.Error(t, err)
}

func TestGetConversation_MarksThreadRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	thread := []models.Message{
		{ID: "msg-1", FromUserID: "user-2", ToUserID: "user-1", Message: "yo"},
	}
	f.messageRepo.EXPECT().
		GetMessagesBetween(gomock.Any(), "user-1", "user-2").
		Return(thread, nil)
	f.messageRepo.EXPECT().
		MarkRead(gomock.Any(), "user-1", "user-2").
		Return(nil)

	messages, err := f.uc.GetConversation(context.Background(), "user-1", "user-2")

	require.NoError(t, err)
	assert.Equal(t, thread, messages)
}

func TestSendFriendRequest_CreatesPendingRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), "user-2").
		Return(&models.User{ID: "user-2"}, nil)
	f.networkRepo.EXPECT().
		AreConnected(gomock.Any(), "user-1", "user-2").
		Return(false, nil)
	f.networkRepo.EXPECT().
		GetPendingRequestBetween(gomock.Any(), "user-1", "user-2").
		Return(nil, repository.ErrRequestNotFound)
	f.networkRepo.EXPECT().
		CreateFriendRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *models.FriendRequest) error {
			assert.Equal(t, "user-1", request.FromUserID)
			assert.Equal(t, "user-2", request.ToUserID)
			assert.Equal(t, models.FriendRequestPending, request.Status)
			return nil
		})

	result, err := f.uc.SendFriendRequest(context.Background(), "user-1", "user-2")

	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestPending, result.Status)
	assert.Equal(t, "Request sent", result.Message)
}

func TestSendFriendRequest_MutualInterestConnectsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), "user-2").
		Return(&models.User{ID: "user-2"}, nil)
	f.networkRepo.EXPECT().
		AreConnected(gomock.Any(), "user-1", "user-2").
		Return(false, nil)
	f.networkRepo.EXPECT().
		GetPendingRequestBetween(gomock.Any(), "user-1", "user-2").
		Return(&models.FriendRequest{
			ID:         "req-1",
			FromUserID: "user-2",
			ToUserID:   "user-1",
			Status:     models.FriendRequestPending,
		}, nil)
	f.networkRepo.EXPECT().
		AcceptFriendRequest(gomock.Any(), "req-1").
		Return(nil)

	result, err := f.uc.SendFriendRequest(context.Background(), "user-1", "user-2")

	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestAccepted, result.Status)
	assert.Equal(t, "Connected", result.Message)
}

func TestSendFriendRequest_AlreadyPendingIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), "user-2").
		Return(&models.User{ID: "user-2"}, nil)
	f.networkRepo.EXPECT().
		AreConnected(gomock.Any(), "user-1", "user-2").
		Return(false, nil)
	f.networkRepo.EXPECT().
		GetPendingRequestBetween(gomock.Any(), "user-1", "user-2").
		Return(&models.FriendRequest{
			ID:         "req-1",
			FromUserID: "user-1",
			ToUserID:   "user-2",
			Status:     models.FriendRequestPending,
		}, nil)

	result, err := f.uc.SendFriendRequest(context.Background(), "user-1", "user-2")

	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestPending, result.Status)
	assert.Equal(t, "Request already pending", result.Message)
}

func TestSendFriendRequest_AlreadyConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), "user-2").
		Return(&models.User{ID: "user-2"}, nil)
	f.networkRepo.EXPECT().
		AreConnected(gomock.Any(), "user-1", "user-2").
		Return(true, nil)

	result, err := f.uc.SendFriendRequest(context.Background(), "user-1", "user-2")

	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestAccepted, result.Status)
	assert.Equal(t, "Already connected", result.Message)
}

func TestAcceptFriendRequest_RejectsWrongAddressee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.networkRepo.EXPECT().
		GetFriendRequest(gomock.Any(), "req-1").
		Return(&models.FriendRequest{
			ID:         "req-1",
			FromUserID: "user-1",
			ToUserID:   "user-2",
			Status:     models.FriendRequestPending,
		}, nil)

	_, err := f.uc.AcceptFriendRequest(context.Background(), "user-3", "req-1")

	assert.Error(t, err)
}

func TestGetRecentPlayers_FlagsConnectionsAndExcludesSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), "user-1").
		Return(&models.User{ID: "user-1", CurrentCourtID: "court-1"}, nil)
	f.userGW.EXPECT().
		GetCourtPlayers(gomock.Any(), "court-1").
		Return([]string{"user-1", "user-2", "user-3"}, nil)
	f.userRepo.EXPECT().
		GetUsersByIDs(gomock.Any(), []string{"user-2", "user-3"}).
		Return([]models.User{
			{ID: "user-2", Username: "lebron"},
			{ID: "user-3", Username: "steph"},
		}, nil)
	f.networkRepo.EXPECT().
		GetConnectionIDs(gomock.Any(), "user-1").
		Return([]string{"user-3"}, nil)

	players, err := f.uc.GetRecentPlayers(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.False(t, players[0].IsConnected)
	assert.Equal(t, "user-3", players[1].ID)
	assert.True(t, players[1].IsConnected)
}

func TestGetRecentPlayers_NotCheckedInFallsBackToPublicUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), "user-1").
		Return(&models.User{ID: "user-1"}, nil)
	f.userRepo.EXPECT().
		ListPublicUsers(gomock.Any(), "user-1").
		Return([]models.User{
			{ID: "user-4", Username: "kd", IsPublic: true},
		}, nil)
	f.networkRepo.EXPECT().
		GetConnectionIDs(gomock.Any(), "user-1").
		Return([]string{}, nil)

	players, err := f.uc.GetRecentPlayers(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "user-4", players[0].ID)
	assert.False(t, players[0].IsConnected)
}

func TestGetUsers_ExcludesCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		ListUsers(gomock.Any(), "user-1").
		Return([]models.UserSummary{
			{ID: "user-2", Username: "lebron"},
		}, nil)

	userList, err := f.uc.GetUsers(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, userList, 1)
	assert.Equal(t, "user-2", userList[0].ID)
}

func TestApplyCheckinEvent_CheckinSetsCurrentCourt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		SetCurrentCourt(gomock.Any(), "user-1", "court-1").
		Return(nil)

	err := f.uc.ApplyCheckinEvent(context.Background(), &models.CheckinEvent{
		UserID:    "user-1",
		CourtID:   "court-1",
		CheckedIn: true,
	})

	assert.NoError(t, err)
}

func TestApplyCheckinEvent_CheckoutClearsMatchingCourt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), "user-1").
		Return(&models.User{ID: "user-1", CurrentCourtID: "court-1"}, nil)
	f.userRepo.EXPECT().
		ClearCurrentCourt(gomock.Any(), "user-1").
		Return(nil)

	err := f.uc.ApplyCheckinEvent(context.Background(), &models.CheckinEvent{
		UserID:    "user-1",
		CourtID:   "court-1",
		CheckedIn: false,
	})

	assert.NoError(t, err)
}

func TestApplyCheckinEvent_StaleCheckoutIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserFixture(t, ctrl)

	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), "user-1").
		Return(&models.User{ID: "user-1", CurrentCourtID: "court-2"}, nil)

	err := f.uc.ApplyCheckinEvent(context.Background(), &models.CheckinEvent{
		UserID:    "user-1",
		CourtID:   "court-1",
		CheckedIn: false,
	})

	assert.NoError(t, err)
}
