package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// GetUser returns a user by ID
func (uc *UserUC) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// GetUsers returns the listing view of every user except the caller
func (uc *UserUC) GetUsers(ctx context.Context, excludeUserID string) ([]models.UserSummary, error) {
	return uc.userRepo.ListUsers(ctx, excludeUserID)
}

// UpdateProfile applies non-empty profile field updates
func (uc *UserUC) UpdateProfile(ctx context.Context, userID string, req *models.ProfileUpdateRequest) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.ProfilePic != "" {
		user.ProfilePic = req.ProfilePic
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}

	if err := uc.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// TogglePrivacy flips the user's visibility and notifies the courts service
// so their court's public roster is updated immediately.
func (uc *UserUC) TogglePrivacy(ctx context.Context, userID string) (*models.PrivacyResponse, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	isPublic := !user.IsPublic
	if err := uc.userRepo.SetVisibility(ctx, userID, isPublic); err != nil {
		return nil, err
	}

	event := &models.PrivacyEvent{
		UserID:    userID,
		CourtID:   user.CurrentCourtID,
		IsPublic:  isPublic,
		Timestamp: uc.now(),
	}
	if err := uc.userGW.PublishPrivacyEvent(ctx, event); err != nil {
		uc.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":   userID,
			"is_public": isPublic,
		}).Warn("failed to publish privacy event")
	}

	return &models.PrivacyResponse{IsPublic: isPublic}, nil
}
