package cases

type OpenCaseRequest struct {
	CaseID string `json:"case_id"` // ID кейса из каталога
}

type DrawnItem struct {
	InstanceID string `json:"instance_id"` // Уникальный ID экземпляра (ключ для анимации и продажи)
	Name       string `json:"name"`
	Rarity     string `json:"rarity"`
	Price      int64  `json:"price"`
	Image      string `json:"image"`
	AcquiredAt int64  `json:"acquired_at,omitempty"` // Unix millis, только у зачисленных предметов
}

type Stats struct {
	Opened int   `json:"opened"` // Открыто кейсов
	Spent  int64 `json:"spent"`  // Потрачено звёзд
	Earned int64 `json:"earned"` // Заработано звёзд
}

type OpenCaseResponse struct {
	Track       []DrawnItem `json:"track"`        // Лента для анимации рулетки
	WinnerIndex int         `json:"winner_index"` // Позиция выигрыша на ленте
	Winner      DrawnItem   `json:"winner"`       // Выигранный предмет
	Balance     int64       `json:"balance"`      // Баланс после списания
	Stats       Stats       `json:"stats"`
}

type SellRequest struct {
	InstanceID string `json:"instance_id"` // ID экземпляра из инвентаря
}

type SellResponse struct {
	SoldPrice int64 `json:"sold_price"`
	Balance   int64 `json:"balance"`
	Stats     Stats `json:"stats"`
}

type SellAllResponse struct {
	Total     int64 `json:"total"`      // Сумма продажи
	SoldCount int   `json:"sold_count"` // Сколько предметов продано
	Balance   int64 `json:"balance"`
	Stats     Stats `json:"stats"`
}

type DepositRequest struct {
	Amount int64 `json:"amount"` // Сумма пополнения
}

type DepositResponse struct {
	Balance int64 `json:"balance"` // Баланс после зачисления
}

type DataResponse struct {
	Username  string      `json:"username"`
	Balance   int64       `json:"balance"`
	Stats     Stats       `json:"stats"`
	Inventory []DrawnItem `json:"inventory"` // Последние зачисления первыми
	CreatedAt int64       `json:"created_at"`
}

type CaseItem struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
	Price  int64  `json:"price"`
	Image  string `json:"image"`
}

type CaseResponse struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Price int64      `json:"price"`
	Image string     `json:"image"`
	Items []CaseItem `json:"items"`
}
