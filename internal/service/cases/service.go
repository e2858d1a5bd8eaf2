package cases

import (
	"richcase_backend/internal/config"
	"richcase_backend/internal/repository"
	"richcase_backend/internal/roulette"
	"richcase_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	gameCfg    config.GameConfig
	engine     *roulette.Engine
	userRepo   repository.UserRepository
	invRepo    repository.InventoryRepository
	lb         service.LeaderboardService
	houseStats repository.HouseStatsRepository
	txManager  trm.Manager
}

// NewCaseService Сервис открытия кейсов и операций с инвентарем
func NewCaseService(
	gameCfg config.GameConfig,
	engine *roulette.Engine,
	userRepo repository.UserRepository,
	invRepo repository.InventoryRepository,
	lb service.LeaderboardService,
	houseStats repository.HouseStatsRepository,
	txManager trm.Manager,
) service.CaseService {
	return &serv{
		gameCfg:    gameCfg,
		engine:     engine,
		userRepo:   userRepo,
		invRepo:    invRepo,
		lb:         lb,
		houseStats: houseStats,
		txManager:  txManager,
	}
}
