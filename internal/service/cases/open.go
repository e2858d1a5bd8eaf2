package cases

import (
	"context"
	"time"

	"richcase_backend/internal/middleware"
	"richcase_backend/internal/model"
)

// Open Открыть кейс: списать цену, разыграть ленту, зачислить выигрыш в инвентарь.
// Списание, статистика и зачисление предмета — одна транзакция: открытие либо
// коммитится целиком, либо не происходит вовсе
func (s *serv) Open(ctx context.Context, caseID string) (*model.OpenResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	// Кейс из каталога
	caseDef, ok := s.gameCfg.CaseByID(caseID)
	if !ok {
		return nil, ErrCaseNotFound
	}

	var res *model.OpenResult

	// Транзакция открытия. Блокировка строки пользователя сериализует
	// конкурентные открытия по одному аккаунту: второе ждет коммита первого
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, stats, err := s.userRepo.GetLedgerForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		// Проверка баланса до любых мутаций
		if balance < caseDef.Price {
			return ErrInsufficientBalance
		}

		// Розыгрыш ленты. Выигрыш — предмет на фиксированной позиции
		track := s.engine.Draw(caseDef)
		winner := s.engine.Winner(track)
		winner.AcquiredAt = time.Now()

		// Списание и статистика
		balance -= caseDef.Price
		stats.Opened++
		stats.Spent += caseDef.Price

		if err := s.userRepo.UpdateLedger(txCtx, userID, balance, stats); err != nil {
			return err
		}

		// Зачисление выигрыша в инвентарь
		if err := s.invRepo.AddItem(txCtx, userID, winner); err != nil {
			return err
		}

		res = &model.OpenResult{
			Track:       track,
			WinnerIndex: s.engine.WinnerIndex(),
			Winner:      winner,
			Balance:     balance,
			Stats:       stats,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Статистика дома и публикация в таблицу лидеров — после коммита
	s.houseStats.Record(caseDef.Price, res.Winner.Price)
	s.lb.Sync(ctx, userID)

	return res, nil
}
