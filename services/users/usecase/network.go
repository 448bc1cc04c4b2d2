package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/services/users/repository"
)

// SendFriendRequest creates a pending connection request. When the target
// already has a pending request toward the sender, the two are connected
// immediately instead of holding mirrored requests.
func (uc *UserUC) SendFriendRequest(ctx context.Context, fromUserID, toUserID string) (*models.FriendRequestResult, error) {
	if toUserID == "" {
		return nil, fmt.Errorf("recipient is required")
	}
	if toUserID == fromUserID {
		return nil, fmt.Errorf("cannot send a friend request to yourself")
	}

	if _, err := uc.userRepo.GetUserByID(ctx, toUserID); err != nil {
		return nil, err
	}

	connected, err := uc.networkRepo.AreConnected(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if connected {
		return &models.FriendRequestResult{
			Status:  models.FriendRequestAccepted,
			Message: "Already connected",
		}, nil
	}

	pending, err := uc.networkRepo.GetPendingRequestBetween(ctx, fromUserID, toUserID)
	if err != nil && !errors.Is(err, repository.ErrRequestNotFound) {
		return nil, err
	}
	if pending != nil {
		if pending.FromUserID == toUserID {
			// Mutual interest: accept their request instead of queueing ours.
			if err := uc.networkRepo.AcceptFriendRequest(ctx, pending.ID); err != nil {
				return nil, err
			}
			return &models.FriendRequestResult{
				Status:  models.FriendRequestAccepted,
				Message: "Connected",
			}, nil
		}
		return &models.FriendRequestResult{
			Status:  models.FriendRequestPending,
			Message: "Request already pending",
		}, nil
	}

	request := &models.FriendRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     models.FriendRequestPending,
		CreatedAt:  uc.now(),
	}
	if err := uc.networkRepo.CreateFriendRequest(ctx, request); err != nil {
		return nil, err
	}

	return &models.FriendRequestResult{
		Status:  models.FriendRequestPending,
		Message: "Request sent",
	}, nil
}

// AcceptFriendRequest accepts a pending request addressed to the user
func (uc *UserUC) AcceptFriendRequest(ctx context.Context, userID, requestID string) (*models.FriendRequestResult, error) {
	request, err := uc.networkRepo.GetFriendRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.ToUserID != userID {
		return nil, fmt.Errorf("request is not addressed to this user")
	}

	if err := uc.networkRepo.AcceptFriendRequest(ctx, requestID); err != nil {
		return nil, err
	}

	return &models.FriendRequestResult{
		Status:  models.FriendRequestAccepted,
		Message: "Connected",
	}, nil
}

// GetConnections returns the user's accepted connections
func (uc *UserUC) GetConnections(ctx context.Context, userID string) ([]models.Connection, error) {
	ids, err := uc.networkRepo.GetConnectionIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	connectedUsers, err := uc.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	connections := make([]models.Connection, 0, len(connectedUsers))
	for _, u := range connectedUsers {
		connections = append(connections, models.Connection{
			ID:          u.ID,
			Username:    u.Username,
			ProfilePic:  u.ProfilePic,
			IsConnected: true,
		})
	}
	return connections, nil
}

// GetRecentPlayers returns the public players at the user's current court,
// flagged with whether each one is already a connection. Players are how
// users discover people to connect with.
func (uc *UserUC) GetRecentPlayers(ctx context.Context, userID string) ([]models.Connection, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.CurrentCourtID == "" {
		// Not at a court: offer all public users as potential connections.
		public, err := uc.userRepo.ListPublicUsers(ctx, userID)
		if err != nil {
			return nil, err
		}
		return uc.annotateConnections(ctx, userID, public)
	}

	playerIDs, err := uc.userGW.GetCourtPlayers(ctx, user.CurrentCourtID)
	if err != nil {
		return nil, err
	}

	others := make([]string, 0, len(playerIDs))
	for _, id := range playerIDs {
		if id != userID {
			others = append(others, id)
		}
	}

	players, err := uc.userRepo.GetUsersByIDs(ctx, others)
	if err != nil {
		return nil, err
	}
	return uc.annotateConnections(ctx, userID, players)
}

// annotateConnections turns users into connection candidates flagged with
// whether each is already connected to the caller.
func (uc *UserUC) annotateConnections(ctx context.Context, userID string, candidates []models.User) ([]models.Connection, error) {
	connectionIDs, err := uc.networkRepo.GetConnectionIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	connected := make(map[string]bool, len(connectionIDs))
	for _, id := range connectionIDs {
		connected[id] = true
	}

	result := make([]models.Connection, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, models.Connection{
			ID:          c.ID,
			Username:    c.Username,
			ProfilePic:  c.ProfilePic,
			IsConnected: connected[c.ID],
		})
	}
	return result, nil
}
