package auth

import (
	"richcase_backend/internal/config"
	"richcase_backend/internal/repository"
	"richcase_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	lb        service.LeaderboardService
	jwtConfig config.JWTConfig
	gameCfg   config.GameConfig
}

// NewAuthService Сервис регистрации и сессий
func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	lb service.LeaderboardService,
	jwtConfig config.JWTConfig,
	gameCfg config.GameConfig,
) service.AuthService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		authRepo:  authRepo,
		lb:        lb,
		jwtConfig: jwtConfig,
		gameCfg:   gameCfg,
	}
}
