package repository

import (
	"context"

	"richcase_backend/internal/model"
	houseModel "richcase_backend/internal/repository/house_stats_repo/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)

	// GetLedgerForUpdate читает баланс и статистику с блокировкой строки.
	// Вызывается только внутри транзакции: блокировка сериализует
	// конкурентные открытия кейсов по одному аккаунту
	GetLedgerForUpdate(ctx context.Context, id int) (balance int64, stats model.Stats, err error)
	UpdateLedger(ctx context.Context, id int, balance int64, stats model.Stats) error
}

type InventoryRepository interface {
	AddItem(ctx context.Context, userID int, item model.DrawnItem) error
	GetItem(ctx context.Context, userID int, instanceID string) (*model.DrawnItem, error)
	DeleteItem(ctx context.Context, userID int, instanceID string) error
	DeleteAll(ctx context.Context, userID int) error
	ListItems(ctx context.Context, userID int) ([]model.DrawnItem, error)
}

type LeaderboardRepository interface {
	// Publish перезаписывает проекцию аккаунта в таблице лидеров
	Publish(ctx context.Context, entry model.LeaderboardEntry) error
	Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type HouseStatsRepository interface {
	Record(spent, itemValue int64)
	State() houseModel.HouseState
}
