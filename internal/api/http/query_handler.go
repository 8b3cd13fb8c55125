package http

import (
	"net/http"
	"strconv"

	"bankledger-backend/internal/service"

	"github.com/gorilla/mux"
)

type QueryHandler struct {
	querySvc service.QueryService
}

func NewQueryHandler(querySvc service.QueryService) *QueryHandler {
	return &QueryHandler{querySvc: querySvc}
}

func parseLimit(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return limit
}

func (h *QueryHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	iban := mux.Vars(r)["iban"]
	balance, err := h.querySvc.GetBalance(r.Context(), iban)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"iban":          iban,
		"balance_cents": balance,
	})
}

func (h *QueryHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	iban := mux.Vars(r)["iban"]
	account, pkg, err := h.querySvc.GetAccount(r.Context(), iban)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"account": account,
		"package": pkg,
	})
}

func (h *QueryHandler) ListAccountTransactions(w http.ResponseWriter, r *http.Request) {
	iban := mux.Vars(r)["iban"]
	txs, err := h.querySvc.ListAccountTransactions(r.Context(), iban, parseLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": txs})
}

func (h *QueryHandler) ListCustomerTransactions(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid customer id"})
		return
	}
	txs, err := h.querySvc.ListCustomerTransactions(r.Context(), id, parseLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": txs})
}

func (h *QueryHandler) ListRecentTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.querySvc.ListRecentTransactions(r.Context(), parseLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": txs})
}

func (h *QueryHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.querySvc.GetStatistics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
