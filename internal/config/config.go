package config

import (
	"time"

	"richcase_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// GameConfig Игровая конфигурация: каталог кейсов, таблица вероятностей
// редкостей и константы рулетки. Загружается один раз при старте, в рантайме
// не меняется
type GameConfig interface {
	Cases() []model.Case
	CaseByID(id string) (model.Case, bool)
	RarityProbs() map[model.Rarity]float64
	TrackLength() int
	WinnerIndex() int
	StartBalance() int64
	DepositPackages() []int64
}
