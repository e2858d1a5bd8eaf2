package env

import (
	"fmt"
	"math"
	"os"

	"richcase_backend/internal/config"
	"richcase_backend/internal/model"

	"gopkg.in/yaml.v3"
)

// Допустимая погрешность суммы вероятностей редкостей
const probSumTolerance = 1e-9

type gameYAML struct {
	Roulette struct {
		TrackLength int `yaml:"track_length"`
		WinnerIndex int `yaml:"winner_index"`
	} `yaml:"roulette"`
	RarityProbs     map[string]float64 `yaml:"rarity_probs"`
	StartBalance    int64              `yaml:"start_balance"`
	DepositPackages []int64            `yaml:"deposit_packages"`
	Cases           []struct {
		ID    string `yaml:"id"`
		Name  string `yaml:"name"`
		Price int64  `yaml:"price"`
		Image string `yaml:"image"`
		Items []struct {
			Name   string `yaml:"name"`
			Rarity string `yaml:"rarity"`
			Price  int64  `yaml:"price"`
			Image  string `yaml:"image"`
		} `yaml:"items"`
	} `yaml:"cases"`
}

type gameConfig struct {
	cases           []model.Case
	byID            map[string]model.Case
	probs           map[model.Rarity]float64
	trackLength     int
	winnerIndex     int
	startBalance    int64
	depositPackages []int64
}

// NewGameConfigFromYAML Загрузка игровой конфигурации из yaml.
// Ошибки конфигурации (пустой пул, нет consumer-предметов, сумма вероятностей
// не равна 1) фатальны на старте — в рантайме движок им доверяет
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed gameYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	cfg := &gameConfig{
		byID:            make(map[string]model.Case),
		probs:           make(map[model.Rarity]float64),
		trackLength:     parsed.Roulette.TrackLength,
		winnerIndex:     parsed.Roulette.WinnerIndex,
		startBalance:    parsed.StartBalance,
		depositPackages: parsed.DepositPackages,
	}

	if cfg.trackLength <= 0 {
		return nil, fmt.Errorf("roulette: track_length must be positive, got %d", cfg.trackLength)
	}
	if cfg.winnerIndex < 0 || cfg.winnerIndex >= cfg.trackLength {
		return nil, fmt.Errorf("roulette: winner_index %d out of track [0, %d)", cfg.winnerIndex, cfg.trackLength)
	}
	if cfg.startBalance < 0 {
		return nil, fmt.Errorf("start_balance must be non-negative, got %d", cfg.startBalance)
	}
	for _, p := range cfg.depositPackages {
		if p <= 0 {
			return nil, fmt.Errorf("deposit_packages: package must be positive, got %d", p)
		}
	}

	// Таблица вероятностей: только известные редкости, сумма строго 1
	sum := 0.0
	for name, prob := range parsed.RarityProbs {
		rarity := model.Rarity(name)
		if !knownRarity(rarity) {
			return nil, fmt.Errorf("rarity_probs: unknown rarity %q", name)
		}
		if prob < 0 {
			return nil, fmt.Errorf("rarity_probs: negative probability for %q", name)
		}
		cfg.probs[rarity] = prob
		sum += prob
	}
	if math.Abs(sum-1.0) > probSumTolerance {
		return nil, fmt.Errorf("rarity_probs: probabilities sum to %v, want 1.0", sum)
	}

	if len(parsed.Cases) == 0 {
		return nil, fmt.Errorf("cases: catalog is empty")
	}

	for _, c := range parsed.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("cases: case %q has empty id", c.Name)
		}
		if c.Price < 0 {
			return nil, fmt.Errorf("case %q: negative price", c.ID)
		}
		if len(c.Items) == 0 {
			return nil, fmt.Errorf("case %q: item pool is empty", c.ID)
		}

		caseDef := model.Case{
			ID:    c.ID,
			Name:  c.Name,
			Price: c.Price,
			Image: c.Image,
		}

		hasConsumer := false
		for _, it := range c.Items {
			rarity := model.Rarity(it.Rarity)
			if !knownRarity(rarity) {
				return nil, fmt.Errorf("case %q: item %q has unknown rarity %q", c.ID, it.Name, it.Rarity)
			}
			if it.Price < 0 {
				return nil, fmt.Errorf("case %q: item %q has negative price", c.ID, it.Name)
			}
			if rarity == model.RarityConsumer {
				hasConsumer = true
			}
			caseDef.Items = append(caseDef.Items, model.Item{
				Name:   it.Name,
				Rarity: rarity,
				Price:  it.Price,
				Image:  it.Image,
			})
		}

		// Пул consumer — fallback розыгрыша, без него кейс невалиден
		if !hasConsumer {
			return nil, fmt.Errorf("case %q: no consumer items for fallback pool", c.ID)
		}

		if _, ok := cfg.byID[c.ID]; ok {
			return nil, fmt.Errorf("cases: duplicate case id %q", c.ID)
		}
		cfg.byID[c.ID] = caseDef
		cfg.cases = append(cfg.cases, caseDef)
	}

	return cfg, nil
}

func knownRarity(r model.Rarity) bool {
	for _, known := range model.RarityOrder {
		if r == known {
			return true
		}
	}
	return false
}

func (cfg *gameConfig) Cases() []model.Case {
	return cfg.cases
}

func (cfg *gameConfig) CaseByID(id string) (model.Case, bool) {
	c, ok := cfg.byID[id]
	return c, ok
}

func (cfg *gameConfig) RarityProbs() map[model.Rarity]float64 {
	return cfg.probs
}

func (cfg *gameConfig) TrackLength() int {
	return cfg.trackLength
}

func (cfg *gameConfig) WinnerIndex() int {
	return cfg.winnerIndex
}

func (cfg *gameConfig) StartBalance() int64 {
	return cfg.startBalance
}

func (cfg *gameConfig) DepositPackages() []int64 {
	return cfg.depositPackages
}
