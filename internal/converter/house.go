package converter

import (
	dto "richcase_backend/internal/api/dto/house"
	houseModel "richcase_backend/internal/repository/house_stats_repo/model"
)

func ToHouseStatsResponse(state houseModel.HouseState) dto.StatsResponse {
	return dto.StatsResponse{
		TotalOpenings:  state.TotalOpenings,
		TotalSpent:     state.TotalSpent,
		TotalItemValue: state.TotalItemValue,
		PayoutRatio:    state.PayoutRatio,
		WindowRatio:    state.WindowRatio,
		WindowSize:     state.WindowSize,
	}
}
