package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/service"

	"github.com/gorilla/mux"
)

// AdminHandler exposes the provisioning flows used by back-office tooling.
type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

type customerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
}

type openAccountRequest struct {
	IBAN        string `json:"iban"`
	CustomerID  int64  `json:"customer_id"`
	PackageName string `json:"package_name"`
	Fee         int64  `json:"fee"`
	BaseLimit   *int64 `json:"base_limit,omitempty"`
	DailyLimit  *int64 `json:"daily_limit,omitempty"`
}

func parseCustomerID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil
}

func (h *AdminHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "birth_date must be YYYY-MM-DD"})
		return
	}

	customer, err := h.adminSvc.CreateCustomer(r.Context(), req.FirstName, req.LastName, req.Address, birthDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *AdminHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCustomerID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid customer id"})
		return
	}
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "birth_date must be YYYY-MM-DD"})
		return
	}

	if err := h.adminSvc.UpdateCustomer(r.Context(), id, req.FirstName, req.LastName, req.Address, birthDate); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "customer updated"})
}

func (h *AdminHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCustomerID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid customer id"})
		return
	}
	customer, err := h.adminSvc.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *AdminHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.adminSvc.ListCustomerSummaries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"customers": summaries})
}

func (h *AdminHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCustomerID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid customer id"})
		return
	}
	if err := h.adminSvc.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "customer and all related data deleted"})
}

func (h *AdminHandler) OpenAccount(w http.ResponseWriter, r *http.Request) {
	var req openAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	pkg := &domain.Package{
		Name:       req.PackageName,
		Fee:        req.Fee,
		BaseLimit:  req.BaseLimit,
		DailyLimit: req.DailyLimit,
	}
	account, err := h.adminSvc.OpenAccount(r.Context(), req.IBAN, req.CustomerID, pkg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

func (h *AdminHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	iban := mux.Vars(r)["iban"]
	pkg, err := h.adminSvc.GetPackageForAccount(r.Context(), iban)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pkg)
}

func (h *AdminHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCustomerID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid customer id"})
		return
	}
	accounts, err := h.adminSvc.ListAccounts(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"accounts": accounts})
}
