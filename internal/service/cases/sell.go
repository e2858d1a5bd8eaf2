package cases

import (
	"context"
	"errors"

	"richcase_backend/internal/middleware"
	"richcase_backend/internal/model"
	"richcase_backend/internal/repository/inventory_repo"
)

// Sell Продать один предмет по instance ID.
// Удаление предмета и начисление звёзд — одна транзакция; состояние инвентаря
// читается внутри нее, продать уже проданный предмет нельзя
func (s *serv) Sell(ctx context.Context, instanceID string) (*model.SellResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	var res *model.SellResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, stats, err := s.userRepo.GetLedgerForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		// Предмет должен существовать в инвентаре на момент продажи
		item, err := s.invRepo.GetItem(txCtx, userID, instanceID)
		if err != nil {
			if errors.Is(err, inventory_repo.ErrItemNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		if err := s.invRepo.DeleteItem(txCtx, userID, instanceID); err != nil {
			if errors.Is(err, inventory_repo.ErrItemNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		// Начисление цены предмета
		balance += item.Price
		stats.Earned += item.Price

		if err := s.userRepo.UpdateLedger(txCtx, userID, balance, stats); err != nil {
			return err
		}

		res = &model.SellResult{
			SoldPrice: item.Price,
			Balance:   balance,
			Stats:     stats,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.lb.Sync(ctx, userID)

	return res, nil
}

// SellAll Продать весь инвентарь одной операцией.
// Пустой инвентарь — не ошибка: возвращается текущее состояние без мутаций
func (s *serv) SellAll(ctx context.Context) (*model.SellAllResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	var res *model.SellAllResult
	sold := false

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, stats, err := s.userRepo.GetLedgerForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		items, err := s.invRepo.ListItems(txCtx, userID)
		if err != nil {
			return err
		}

		// Нечего продавать — возвращаем состояние как есть
		if len(items) == 0 {
			res = &model.SellAllResult{
				Balance: balance,
				Stats:   stats,
			}
			return nil
		}

		var total int64
		for _, item := range items {
			total += item.Price
		}

		if err := s.invRepo.DeleteAll(txCtx, userID); err != nil {
			return err
		}

		balance += total
		stats.Earned += total

		if err := s.userRepo.UpdateLedger(txCtx, userID, balance, stats); err != nil {
			return err
		}

		sold = true
		res = &model.SellAllResult{
			Total:     total,
			SoldCount: len(items),
			Balance:   balance,
			Stats:     stats,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if sold {
		s.lb.Sync(ctx, userID)
	}

	return res, nil
}
