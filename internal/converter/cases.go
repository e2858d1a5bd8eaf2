package converter

import (
	"richcase_backend/internal/api/dto/cases"
	"richcase_backend/internal/model"
)

func toDrawnItem(item model.DrawnItem) cases.DrawnItem {
	dto := cases.DrawnItem{
		InstanceID: item.InstanceID,
		Name:       item.Name,
		Rarity:     string(item.Rarity),
		Price:      item.Price,
		Image:      item.Image,
	}
	if !item.AcquiredAt.IsZero() {
		dto.AcquiredAt = item.AcquiredAt.UnixMilli()
	}
	return dto
}

func toDrawnItems(items []model.DrawnItem) []cases.DrawnItem {
	result := make([]cases.DrawnItem, len(items))
	for i, item := range items {
		result[i] = toDrawnItem(item)
	}
	return result
}

func toStats(stats model.Stats) cases.Stats {
	return cases.Stats{
		Opened: stats.Opened,
		Spent:  stats.Spent,
		Earned: stats.Earned,
	}
}

func ToOpenCaseResponse(res model.OpenResult) cases.OpenCaseResponse {
	return cases.OpenCaseResponse{
		Track:       toDrawnItems(res.Track),
		WinnerIndex: res.WinnerIndex,
		Winner:      toDrawnItem(res.Winner),
		Balance:     res.Balance,
		Stats:       toStats(res.Stats),
	}
}

func ToSellResponse(res model.SellResult) cases.SellResponse {
	return cases.SellResponse{
		SoldPrice: res.SoldPrice,
		Balance:   res.Balance,
		Stats:     toStats(res.Stats),
	}
}

func ToSellAllResponse(res model.SellAllResult) cases.SellAllResponse {
	return cases.SellAllResponse{
		Total:     res.Total,
		SoldCount: res.SoldCount,
		Balance:   res.Balance,
		Stats:     toStats(res.Stats),
	}
}

func ToDepositResponse(res model.DepositResult) cases.DepositResponse {
	return cases.DepositResponse{
		Balance: res.Balance,
	}
}

func ToDataResponse(data model.Data) cases.DataResponse {
	return cases.DataResponse{
		Username:  data.Username,
		Balance:   data.Balance,
		Stats:     toStats(data.Stats),
		Inventory: toDrawnItems(data.Inventory),
		CreatedAt: data.CreatedAt.UnixMilli(),
	}
}

func ToCaseResponses(list []model.Case) []cases.CaseResponse {
	result := make([]cases.CaseResponse, len(list))
	for i, c := range list {
		items := make([]cases.CaseItem, len(c.Items))
		for j, it := range c.Items {
			items[j] = cases.CaseItem{
				Name:   it.Name,
				Rarity: string(it.Rarity),
				Price:  it.Price,
				Image:  it.Image,
			}
		}
		result[i] = cases.CaseResponse{
			ID:    c.ID,
			Name:  c.Name,
			Price: c.Price,
			Image: c.Image,
			Items: items,
		}
	}
	return result
}
