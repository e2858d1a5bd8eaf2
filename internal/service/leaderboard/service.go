package leaderboard

import (
	"context"
	"fmt"
	"log"

	"richcase_backend/internal/model"
	"richcase_backend/internal/repository"
	"richcase_backend/internal/service"
)

// Размер публичного топа
const topLimit = 10

type serv struct {
	userRepo repository.UserRepository
	lbRepo   repository.LeaderboardRepository
}

// NewLeaderboardService Сервис таблицы лидеров: чтение топа и публикация проекций
func NewLeaderboardService(userRepo repository.UserRepository, lbRepo repository.LeaderboardRepository) service.LeaderboardService {
	return &serv{
		userRepo: userRepo,
		lbRepo:   lbRepo,
	}
}

// Top Топ игроков по заработанным звёздам
func (s *serv) Top(ctx context.Context) ([]model.LeaderboardEntry, error) {
	return s.lbRepo.Top(ctx, topLimit)
}

// Sync Публикация проекции аккаунта в таблицу лидеров.
// Ошибка публикации логируется и не влияет на вызвавшую операцию:
// проекция догонит аккаунт на следующей мутации
func (s *serv) Sync(ctx context.Context, userID int) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.Printf("leaderboard sync: failed to get user %d: %v", userID, err)
		return
	}

	err = s.lbRepo.Publish(ctx, model.LeaderboardEntry{
		UserID:   userID,
		Username: user.Name,
		Stats:    user.Stats,
		Avatar:   AvatarURL(userID),
	})
	if err != nil {
		log.Printf("leaderboard sync: publish failed for user %d: %v", userID, err)
	}
}

// AvatarURL Детерминированная аватарка по ID пользователя
func AvatarURL(userID int) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%d", userID)
}
