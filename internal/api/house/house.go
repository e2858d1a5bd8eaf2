package house

import (
	"net/http"

	"richcase_backend/internal/converter"
	"richcase_backend/internal/repository"
	"richcase_backend/pkg/resp"
)

type HandlerDeps struct {
	Stats repository.HouseStatsRepository
}

type Handler struct {
	stats repository.HouseStatsRepository
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{stats: deps.Stats}
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHouseStatsResponse(h.stats.State()))
}
