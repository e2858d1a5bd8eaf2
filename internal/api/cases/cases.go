package cases

import (
	"errors"
	"net/http"

	dto "richcase_backend/internal/api/dto/cases"
	"richcase_backend/internal/converter"
	"richcase_backend/internal/service"
	casesServ "richcase_backend/internal/service/cases"
	"richcase_backend/pkg/req"
	"richcase_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.CaseService
}

type Handler struct {
	serv service.CaseService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.OpenCaseRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Open(r.Context(), payload.CaseID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOpenCaseResponse(*result))
}

func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SellRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Sell(r.Context(), payload.InstanceID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSellResponse(*result))
}

func (h *Handler) SellAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.SellAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSellAllResponse(*result))
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Deposit(r.Context(), payload.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDepositResponse(*result))
}

func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Data(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*result))
}

func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCaseResponses(h.serv.Catalog()))
}

// Маппинг ошибок сервиса в HTTP статусы
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, casesServ.ErrInsufficientBalance):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, casesServ.ErrCaseNotFound), errors.Is(err, casesServ.ErrItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, casesServ.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, casesServ.ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
