package converter

import (
	dto "richcase_backend/internal/api/dto/leaderboard"
	"richcase_backend/internal/model"
)

func ToTopResponse(entries []model.LeaderboardEntry) dto.TopResponse {
	players := make([]dto.Entry, len(entries))
	for i, entry := range entries {
		players[i] = dto.Entry{
			Username: entry.Username,
			Stats:    toStats(entry.Stats),
			Avatar:   entry.Avatar,
		}
	}
	return dto.TopResponse{Players: players}
}
