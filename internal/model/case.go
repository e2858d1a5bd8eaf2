package model

import "time"

// Rarity Редкость предмета в кейсе
type Rarity string

const (
	RarityConsumer   Rarity = "consumer"
	RarityIndustrial Rarity = "industrial"
	RarityMilSpec    Rarity = "mil-spec"
	RarityRestricted Rarity = "restricted"
	RarityClassified Rarity = "classified"
	RarityCovert     Rarity = "covert"
	RarityRare       Rarity = "rare"
)

// RarityOrder Фиксированный порядок обхода таблицы редкостей при розыгрыше.
// Порядок важен: розыгрыш идет по накопленной сумме вероятностей
var RarityOrder = []Rarity{
	RarityConsumer,
	RarityIndustrial,
	RarityMilSpec,
	RarityRestricted,
	RarityClassified,
	RarityCovert,
	RarityRare,
}

// Item Предмет из пула кейса. Загружается из конфигурации, неизменяемый
type Item struct {
	Name   string
	Rarity Rarity
	Price  int64
	Image  string
}

// Case Кейс: цена открытия и пул предметов
type Case struct {
	ID    string
	Name  string
	Price int64
	Image string
	Items []Item
}

// DrawnItem Разыгранный предмет: предмет из пула плюс уникальный ID экземпляра.
// AcquiredAt заполняется только у выигрышного предмета при зачислении в инвентарь
type DrawnItem struct {
	InstanceID string
	Item
	AcquiredAt time.Time
}
