package leaderboard

import (
	"net/http"

	"richcase_backend/internal/converter"
	"richcase_backend/internal/service"
	"richcase_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.LeaderboardService
}

type Handler struct {
	serv service.LeaderboardService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	entries, err := h.serv.Top(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTopResponse(entries))
}
