package http

import (
	"net/http"

	"bankledger-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter builds the full API surface. Authentication lives in front of
// this service; handlers trust the identifiers they receive.
func NewRouter(ledgerSvc service.LedgerService, querySvc service.QueryService, adminSvc service.AdminService) *mux.Router {
	ledger := NewLedgerHandler(ledgerSvc)
	query := NewQueryHandler(querySvc)
	admin := NewAdminHandler(adminSvc)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Ledger operations
	api.HandleFunc("/accounts/{iban}/deposit", ledger.Deposit).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{iban}/withdrawal", ledger.Withdraw).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{iban}/interest", ledger.CreditInterest).Methods(http.MethodPost)
	api.HandleFunc("/transfers", ledger.Transfer).Methods(http.MethodPost)

	// Read projections
	api.HandleFunc("/accounts/{iban}", query.GetAccount).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{iban}/balance", query.GetBalance).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{iban}/transactions", query.ListAccountTransactions).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}/transactions", query.ListCustomerTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions", query.ListRecentTransactions).Methods(http.MethodGet)
	api.HandleFunc("/statistics", query.GetStatistics).Methods(http.MethodGet)

	// Provisioning
	api.HandleFunc("/customers", admin.CreateCustomer).Methods(http.MethodPost)
	api.HandleFunc("/customers", admin.ListCustomers).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", admin.GetCustomer).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", admin.UpdateCustomer).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id}", admin.DeleteCustomer).Methods(http.MethodDelete)
	api.HandleFunc("/customers/{id}/accounts", admin.ListAccounts).Methods(http.MethodGet)
	api.HandleFunc("/accounts", admin.OpenAccount).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{iban}/package", admin.GetPackage).Methods(http.MethodGet)

	return r
}
