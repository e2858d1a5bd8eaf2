package roulette

import (
	"richcase_backend/internal/model"
)

// Config Параметры розыгрыша.
// Probs — таблица вероятностей редкостей (валидируется при загрузке конфигурации),
// TrackLength и WinnerIndex — контракт с анимацией клиента: длина ленты и
// позиция, на которую визуально приземляется рулетка
type Config struct {
	Probs       map[model.Rarity]float64
	TrackLength int
	WinnerIndex int
}

// Engine Движок розыгрыша предметов из кейса
type Engine struct {
	cfg Config
	rng RandomSource
	ids IDGenerator
}

// NewEngine Создать движок. rng и ids могут быть nil — тогда берутся дефолтные
func NewEngine(cfg Config, rng RandomSource, ids IDGenerator) *Engine {
	if rng == nil {
		rng = DefaultRNG()
	}
	if ids == nil {
		ids = DefaultIDGenerator()
	}
	return &Engine{
		cfg: cfg,
		rng: rng,
		ids: ids,
	}
}

// Draw Сгенерировать ленту стандартной длины для открытия кейса
func (e *Engine) Draw(c model.Case) []model.DrawnItem {
	return e.DrawSequence(c, e.cfg.TrackLength)
}

// DrawSequence Сгенерировать ленту из length предметов.
// Каждая позиция разыгрывается независимо: сначала редкость по накопленной
// сумме вероятностей, затем равновероятный выбор предмета этой редкости из пула
func (e *Engine) DrawSequence(c model.Case, length int) []model.DrawnItem {
	track := make([]model.DrawnItem, 0, length)
	for i := 0; i < length; i++ {
		rarity := e.pickRarity()
		item := e.pickItem(c, rarity)
		track = append(track, model.DrawnItem{
			InstanceID: e.ids.NewID(),
			Item:       item,
		})
	}
	return track
}

// Winner Возвращает предмет на фиксированной позиции ленты.
// Выигрыш — всегда предмет с индексом WinnerIndex, не последний сгенерированный:
// случайность только в том, какой предмет занял позицию.
// Лента должна быть непустой; если она короче WinnerIndex, берется последний предмет
func (e *Engine) Winner(track []model.DrawnItem) model.DrawnItem {
	idx := e.cfg.WinnerIndex
	if idx >= len(track) {
		idx = len(track) - 1
	}
	return track[idx]
}

// WinnerIndex Позиция выигрыша на ленте
func (e *Engine) WinnerIndex() int {
	return e.cfg.WinnerIndex
}

// Выбор редкости обратным сэмплированием по накопленной сумме вероятностей.
// Обход строго в порядке model.RarityOrder. Если из-за погрешности float
// сумма не дотянула до r — берем последнюю редкость в порядке обхода
func (e *Engine) pickRarity() model.Rarity {
	r := e.rng.Float64()
	cumulative := 0.0

	for _, rarity := range model.RarityOrder {
		cumulative += e.cfg.Probs[rarity]
		if r <= cumulative {
			return rarity
		}
	}

	return model.RarityOrder[len(model.RarityOrder)-1]
}

// Равновероятный выбор предмета выпавшей редкости.
// Если предметов такой редкости в кейсе нет — fallback на пул consumer
// (конфигурация гарантирует, что он непустой)
func (e *Engine) pickItem(c model.Case, rarity model.Rarity) model.Item {
	pool := filterByRarity(c.Items, rarity)
	if len(pool) == 0 {
		pool = filterByRarity(c.Items, model.RarityConsumer)
	}
	return pool[int(e.rng.Float64()*float64(len(pool)))]
}

func filterByRarity(items []model.Item, rarity model.Rarity) []model.Item {
	var pool []model.Item
	for _, it := range items {
		if it.Rarity == rarity {
			pool = append(pool, it)
		}
	}
	return pool
}
