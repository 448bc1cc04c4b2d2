package usecase

import (
	"context"
	"fmt"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// SendMessage delivers a direct message to another user
func (uc *UserUC) SendMessage(ctx context.Context, fromUserID string, req *models.SendMessageRequest) (*models.Message, error) {
	if req.ToUserID == "" || req.Message == "" {
		return nil, fmt.Errorf("recipient and message are required")
	}
	if req.ToUserID == fromUserID {
		return nil, fmt.Errorf("cannot message yourself")
	}

	if _, err := uc.userRepo.GetUserByID(ctx, req.ToUserID); err != nil {
		return nil, err
	}

	message := &models.Message{
		FromUserID: fromUserID,
		ToUserID:   req.ToUserID,
		Message:    req.Message,
		Timestamp:  uc.now(),
	}
	if err := uc.messageRepo.SaveMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetConversations returns the user's message threads, most recent first
func (uc *UserUC) GetConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	return uc.messageRepo.GetConversations(ctx, userID)
}

// GetConversation returns the thread with one other user and marks their
// messages as read.
func (uc *UserUC) GetConversation(ctx context.Context, userID, otherUserID string) ([]models.Message, error) {
	messages, err := uc.messageRepo.GetMessagesBetween(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}

	if err := uc.messageRepo.MarkRead(ctx, userID, otherUserID); err != nil {
		uc.logger.WithError(err).WithField("user_id", userID).
			Warn("failed to mark conversation read")
	}
	return messages, nil
}
