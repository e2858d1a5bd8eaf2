package cases

import (
	"context"

	"richcase_backend/internal/middleware"
	"richcase_backend/internal/model"
)

// Data Профиль игрока: баланс, статистика и инвентарь
func (s *serv) Data(ctx context.Context) (*model.Data, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.invRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.Data{
		Username:  user.Name,
		Balance:   user.Balance,
		Stats:     user.Stats,
		Inventory: items,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Catalog Статический каталог кейсов из конфигурации
func (s *serv) Catalog() []model.Case {
	return s.gameCfg.Cases()
}
