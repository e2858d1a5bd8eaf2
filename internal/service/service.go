package service

import (
	"context"

	"richcase_backend/internal/model"
)

type CaseService interface {
	Open(ctx context.Context, caseID string) (*model.OpenResult, error)
	Sell(ctx context.Context, instanceID string) (*model.SellResult, error)
	SellAll(ctx context.Context) (*model.SellAllResult, error)
	Deposit(ctx context.Context, amount int64) (*model.DepositResult, error)
	Data(ctx context.Context) (*model.Data, error)
	Catalog() []model.Case
}

type LeaderboardService interface {
	Top(ctx context.Context) ([]model.LeaderboardEntry, error)

	// Sync перепубликует проекцию аккаунта в таблице лидеров.
	// Ошибки логируются и не возвращаются: проекция догонит аккаунт
	// на следующей мутации
	Sync(ctx context.Context, userID int)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
