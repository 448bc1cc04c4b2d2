package usecase

import (
	"time"

	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/services/users"
)

// UserUC implements the user business logic
type UserUC struct {
	userRepo    users.UserRepo
	messageRepo users.MessageRepo
	networkRepo users.NetworkRepo
	userGW      users.UserGW
	jwtCfg      models.JWTConfig
	logger      *logger.AppLogger
	now         func() time.Time
}

// NewUserUC creates a new user usecase
func NewUserUC(
	userRepo users.UserRepo,
	messageRepo users.MessageRepo,
	networkRepo users.NetworkRepo,
	userGW users.UserGW,
	jwtCfg models.JWTConfig,
	appLogger *logger.AppLogger,
) *UserUC {
	return &UserUC{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		networkRepo: networkRepo,
		userGW:      userGW,
		jwtCfg:      jwtCfg,
		logger:      appLogger,
		now:         time.Now,
	}
}
