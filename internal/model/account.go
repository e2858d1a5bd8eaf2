package model

import "time"

// Stats Накопленная статистика игрока
type Stats struct {
	Opened int   // Сколько кейсов открыто
	Spent  int64 // Сколько звёзд потрачено
	Earned int64 // Сколько звёзд получено с продаж
}

// OpenResult Результат открытия кейса.
// Track — вся сгенерированная лента для анимации, Winner — предмет на фиксированной позиции
type OpenResult struct {
	Track       []DrawnItem
	WinnerIndex int
	Winner      DrawnItem
	Balance     int64
	Stats       Stats
}

// SellResult Результат продажи одного предмета
type SellResult struct {
	SoldPrice int64
	Balance   int64
	Stats     Stats
}

// SellAllResult Результат продажи всего инвентаря
type SellAllResult struct {
	Total     int64
	SoldCount int
	Balance   int64
	Stats     Stats
}

// DepositResult Результат пополнения баланса
type DepositResult struct {
	Balance int64
}

// Data Данные профиля игрока
type Data struct {
	Username  string
	Balance   int64
	Stats     Stats
	Inventory []DrawnItem
	CreatedAt time.Time
}

// LeaderboardEntry Публичная проекция аккаунта для таблицы лидеров.
// Пересчитывается из аккаунта при каждом изменении, отдельно не мутируется
type LeaderboardEntry struct {
	UserID   int
	Username string
	Stats    Stats
	Avatar   string
}
