package cases

import (
	"context"

	"richcase_backend/internal/middleware"
	"richcase_backend/internal/model"
)

// Deposit Пополнение баланса. Платежей здесь нет — это мок-зачисление,
// сумма должна совпадать с одним из пакетов из конфигурации. Статистика не меняется
func (s *serv) Deposit(ctx context.Context, amount int64) (*model.DepositResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	if amount <= 0 || !validPackage(s.gameCfg.DepositPackages(), amount) {
		return nil, ErrInvalidAmount
	}

	var res *model.DepositResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, stats, err := s.userRepo.GetLedgerForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		balance += amount

		if err := s.userRepo.UpdateLedger(txCtx, userID, balance, stats); err != nil {
			return err
		}

		res = &model.DepositResult{Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func validPackage(packages []int64, amount int64) bool {
	for _, p := range packages {
		if p == amount {
			return true
		}
	}
	return false
}
