package house

type StatsResponse struct {
	TotalOpenings  int     `json:"total_openings"`
	TotalSpent     int64   `json:"total_spent"`
	TotalItemValue int64   `json:"total_item_value"`
	PayoutRatio    float64 `json:"payout_ratio"`
	WindowRatio    float64 `json:"window_ratio"`
	WindowSize     int     `json:"window_size"`
}
