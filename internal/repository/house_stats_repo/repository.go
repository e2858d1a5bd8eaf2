package house_stats_repo

import (
	"log"
	"sync"

	repoModel "richcase_backend/internal/repository/house_stats_repo/model"
)

const (
	// Размер окна последних открытий для анализа доли выплат
	windowSize = 500
	// Порог доли выплат в окне, после которого пишем предупреждение в лог.
	// Выдача предметов дороже ставок на длинном окне — сигнал кривой
	// таблицы вероятностей или цен в каталоге
	warnWindowRatio = 1.5
	// Минимум открытий в окне, до которого доля не анализируется
	minOpeningsToCheck = 50
)

// Реализация репозитория для хранения статистики дома.
// Держится в памяти процесса, при рестарте обнуляется
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.HouseState
}

// NewHouseStatsRepository Конструктор репозитория с начальным состоянием
func NewHouseStatsRepository() *StatsRepo {
	return &StatsRepo{
		state: repoModel.HouseState{
			Window:     make([]repoModel.OpeningResult, 0),
			WindowSize: windowSize,
		},
	}
}

// State Получение текущего состояния дома.
// Возвращает копию структуры (окно копируется, чтобы не отдавать внутренний слайс)
func (r *StatsRepo) State() repoModel.HouseState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	state := r.state
	state.Window = append([]repoModel.OpeningResult(nil), r.state.Window...)
	return state
}

// Record Обновление состояния после открытия кейса
func (r *StatsRepo) Record(spent, itemValue int64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalOpenings++
	r.state.TotalSpent += spent
	r.state.TotalItemValue += itemValue
	if r.state.TotalSpent > 0 {
		r.state.PayoutRatio = float64(r.state.TotalItemValue) / float64(r.state.TotalSpent)
	}

	// Добавляем открытие в окно
	r.state.Window = append(r.state.Window, repoModel.OpeningResult{
		Spent:     spent,
		ItemValue: itemValue,
	})

	// Поддерживаем размер окна
	if len(r.state.Window) > r.state.WindowSize {
		r.state.Window = r.state.Window[1:]
	}

	// Пересчитываем долю выплат в окне
	var windowSpent, windowValue int64
	for _, opening := range r.state.Window {
		windowSpent += opening.Spent
		windowValue += opening.ItemValue
	}
	if windowSpent > 0 {
		r.state.WindowRatio = float64(windowValue) / float64(windowSpent)
	} else {
		r.state.WindowRatio = 0
	}

	if len(r.state.Window) >= minOpeningsToCheck && r.state.WindowRatio > warnWindowRatio {
		log.Printf("house stats: window payout ratio %.2f over %d openings", r.state.WindowRatio, len(r.state.Window))
	}
}
