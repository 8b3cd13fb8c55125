package http

import (
	"encoding/json"
	"net/http"

	"bankledger-backend/internal/service"

	"github.com/gorilla/mux"
)

// LedgerHandler exposes the three balance-affecting operations plus the
// admin interest credit. Identifiers arrive already authenticated; this
// layer only parses, delegates and renders.
type LedgerHandler struct {
	ledgerSvc service.LedgerService
}

func NewLedgerHandler(ledgerSvc service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

type amountRequest struct {
	AmountCents int64 `json:"amount_cents"`
}

type transferRequest struct {
	FromIBAN    string `json:"from_iban"`
	ToIBAN      string `json:"to_iban"`
	AmountCents int64  `json:"amount_cents"`
}

type operationResponse struct {
	Message     string `json:"message"`
	Transaction any    `json:"transaction"`
}

func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	iban := mux.Vars(r)["iban"]
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	txn, err := h.ledgerSvc.Deposit(r.Context(), iban, req.AmountCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, operationResponse{Message: "deposit successful", Transaction: txn})
}

func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	iban := mux.Vars(r)["iban"]
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	txn, err := h.ledgerSvc.Withdraw(r.Context(), iban, req.AmountCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, operationResponse{Message: "withdrawal successful", Transaction: txn})
}

func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	txn, err := h.ledgerSvc.Transfer(r.Context(), req.FromIBAN, req.ToIBAN, req.AmountCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, operationResponse{Message: "transfer successful", Transaction: txn})
}

func (h *LedgerHandler) CreditInterest(w http.ResponseWriter, r *http.Request) {
	iban := mux.Vars(r)["iban"]
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	txn, err := h.ledgerSvc.CreditInterest(r.Context(), iban, req.AmountCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, operationResponse{Message: "interest credited", Transaction: txn})
}
