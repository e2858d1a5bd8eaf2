package app

import (
	"context"

	authAPI "richcase_backend/internal/api/auth"
	casesAPI "richcase_backend/internal/api/cases"
	houseAPI "richcase_backend/internal/api/house"
	leaderboardAPI "richcase_backend/internal/api/leaderboard"
	"richcase_backend/internal/config"
	"richcase_backend/internal/config/env"
	"richcase_backend/internal/middleware"
	"richcase_backend/internal/repository"
	"richcase_backend/internal/repository/auth_repo"
	"richcase_backend/internal/repository/house_stats_repo"
	"richcase_backend/internal/repository/inventory_repo"
	"richcase_backend/internal/repository/leaderboard_repo"
	"richcase_backend/internal/repository/user_repo"
	"richcase_backend/internal/roulette"
	"richcase_backend/internal/service"
	"richcase_backend/internal/service/auth"
	"richcase_backend/internal/service/cases"
	"richcase_backend/internal/service/leaderboard"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Case bits
	gameCfg    config.GameConfig
	engine     *roulette.Engine
	invRepo    repository.InventoryRepository
	houseStats repository.HouseStatsRepository
	caseServ   service.CaseService
	caseHand   *casesAPI.Handler
	houseHand  *houseAPI.Handler

	// Leaderboard bits
	lbRepo repository.LeaderboardRepository
	lbServ service.LeaderboardService
	lbHand *leaderboardAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) Engine() *roulette.Engine {
	if sp.engine == nil {
		sp.engine = roulette.NewEngine(roulette.Config{
			Probs:       sp.GameCfg().RarityProbs(),
			TrackLength: sp.GameCfg().TrackLength(),
			WinnerIndex: sp.GameCfg().WinnerIndex(),
		}, nil, nil)
	}
	return sp.engine
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.userRepo
}

func (sp *ServiceProvider) InventoryRepo(ctx context.Context) repository.InventoryRepository {
	if sp.invRepo == nil {
		sp.invRepo = inventory_repo.NewInventoryRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.invRepo
}

func (sp *ServiceProvider) LeaderboardRepo(ctx context.Context) repository.LeaderboardRepository {
	if sp.lbRepo == nil {
		sp.lbRepo = leaderboard_repo.NewLeaderboardRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.lbRepo
}

func (sp *ServiceProvider) HouseStatsRepo() repository.HouseStatsRepository {
	if sp.houseStats == nil {
		sp.houseStats = house_stats_repo.NewHouseStatsRepository()
	}
	return sp.houseStats
}

func (sp *ServiceProvider) CaseService(ctx context.Context) service.CaseService {
	if sp.caseServ == nil {
		sp.caseServ = cases.NewCaseService(
			sp.GameCfg(),
			sp.Engine(),
			sp.UserRepo(ctx),
			sp.InventoryRepo(ctx),
			sp.LeaderboardService(ctx),
			sp.HouseStatsRepo(),
			sp.TXManager(ctx),
		)
	}
	return sp.caseServ
}

func (sp *ServiceProvider) CaseHandler(ctx context.Context) *casesAPI.Handler {
	if sp.caseHand == nil {
		sp.caseHand = casesAPI.NewHandler(casesAPI.HandlerDeps{Serv: sp.CaseService(ctx)})
	}
	return sp.caseHand
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.LeaderboardService(ctx),
			sp.JWTCfg(),
			sp.GameCfg(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) LeaderboardService(ctx context.Context) service.LeaderboardService {
	if sp.lbServ == nil {
		sp.lbServ = leaderboard.NewLeaderboardService(sp.UserRepo(ctx), sp.LeaderboardRepo(ctx))
	}
	return sp.lbServ
}

func (sp *ServiceProvider) LeaderboardHandler(ctx context.Context) *leaderboardAPI.Handler {
	if sp.lbHand == nil {
		sp.lbHand = leaderboardAPI.NewHandler(leaderboardAPI.HandlerDeps{Serv: sp.LeaderboardService(ctx)})
	}
	return sp.lbHand
}

func (sp *ServiceProvider) HouseHandler() *houseAPI.Handler {
	if sp.houseHand == nil {
		sp.houseHand = houseAPI.NewHandler(houseAPI.HandlerDeps{Stats: sp.HouseStatsRepo()})
	}
	return sp.houseHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		authHandler := sp.AuthHandler(ctx)
		caseHandler := sp.CaseHandler(ctx)
		lbHandler := sp.LeaderboardHandler(ctx)
		houseHandler := sp.HouseHandler()

		// Публичные endpoints
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
		})
		r.Get("/cases", caseHandler.Catalog)
		r.Get("/leaderboard", lbHandler.Top)

		// Endpoints под авторизацией
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))

			rr.Post("/auth/logout", authHandler.Logout)
			rr.Post("/cases/open", caseHandler.Open)
			rr.Post("/cases/sell", caseHandler.Sell)
			rr.Post("/cases/sell-all", caseHandler.SellAll)
			rr.Post("/cases/deposit", caseHandler.Deposit)
			rr.Get("/cases/data", caseHandler.Data)
			rr.Get("/house/stats", houseHandler.Stats)
		})

		sp.router = r
	}

	return sp.router
}
