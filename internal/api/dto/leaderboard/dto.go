package leaderboard

import "richcase_backend/internal/api/dto/cases"

type Entry struct {
	Username string      `json:"username"`
	Stats    cases.Stats `json:"stats"`
	Avatar   string      `json:"avatar"`
}

type TopResponse struct {
	Players []Entry `json:"players"` // По убыванию заработанного
}
