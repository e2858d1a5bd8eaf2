package model

// Состояние "дома": агрегаты по всем открытиям кейсов с момента старта
type HouseState struct {
	TotalOpenings  int   // Сколько всего кейсов открыто
	TotalSpent     int64 // Сумма списанных звёзд (цены кейсов)
	TotalItemValue int64 // Сумма стоимости выданных предметов

	PayoutRatio float64 // Доля выплат = TotalItemValue / TotalSpent

	Window      []OpeningResult // Окно последних открытий для анализа
	WindowRatio float64         // Доля выплат в окне
	WindowSize  int             // Размер окна
}

// Результат одного открытия для окна
type OpeningResult struct {
	Spent     int64
	ItemValue int64
}
