package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"bankledger-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_CreateCustomer(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		router := newTestRouter(nil, nil, nil)

		rec := doRequest(t, router, http.MethodPost, "/api/v1/customers",
			`{"first_name": "Ana", "last_name": "Novak", "address": "Dunajska 5", "birth_date": "1990-04-12"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var c domain.Customer
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
		assert.Equal(t, int64(42), c.ID)
		assert.Equal(t, "Ana", c.FirstName)
	})

	t.Run("BadBirthDate", func(t *testing.T) {
		router := newTestRouter(nil, nil, nil)

		rec := doRequest(t, router, http.MethodPost, "/api/v1/customers",
			`{"first_name": "Ana", "last_name": "Novak", "address": "Dunajska 5", "birth_date": "12.4.1990"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "YYYY-MM-DD")
	})

	t.Run("ValidationError", func(t *testing.T) {
		admin := &fakeAdminService{err: domain.ErrConstraintViolation}
		router := newTestRouter(nil, nil, admin)

		rec := doRequest(t, router, http.MethodPost, "/api/v1/customers",
			`{"first_name": "", "last_name": "Novak", "address": "Dunajska 5", "birth_date": "1990-04-12"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminHandler_UpdateCustomer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router := newTestRouter(nil, nil, nil)

		rec := doRequest(t, router, http.MethodPut, "/api/v1/customers/42",
			`{"first_name": "Ana", "last_name": "Kovac", "address": "Trzaska 12", "birth_date": "1990-04-12"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		admin := &fakeAdminService{err: domain.ErrEntityNotFound}
		router := newTestRouter(nil, nil, admin)

		rec := doRequest(t, router, http.MethodPut, "/api/v1/customers/99",
			`{"first_name": "Ana", "last_name": "Kovac", "address": "Trzaska 12", "birth_date": "1990-04-12"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminHandler_GetCustomer(t *testing.T) {
	admin := &fakeAdminService{customer: &domain.Customer{ID: 42, FirstName: "Ana", LastName: "Novak"}}
	router := newTestRouter(nil, nil, admin)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/customers/42", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Novak")
}

func TestAdminHandler_ListCustomers(t *testing.T) {
	admin := &fakeAdminService{summaries: []domain.CustomerSummary{
		{Customer: domain.Customer{ID: 1, FirstName: "Ana", LastName: "Novak"}, AccountCount: 2, TotalBalance: 150000},
	}}
	router := newTestRouter(nil, nil, admin)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/customers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"customers"`)
	assert.Contains(t, rec.Body.String(), "150000")
}

func TestAdminHandler_DeleteCustomer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		admin := &fakeAdminService{}
		router := newTestRouter(nil, nil, admin)

		rec := doRequest(t, router, http.MethodDelete, "/api/v1/customers/42", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int64{42}, admin.deleted)
	})

	t.Run("BadID", func(t *testing.T) {
		router := newTestRouter(nil, nil, nil)

		rec := doRequest(t, router, http.MethodDelete, "/api/v1/customers/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		admin := &fakeAdminService{err: domain.ErrEntityNotFound}
		router := newTestRouter(nil, nil, admin)

		rec := doRequest(t, router, http.MethodDelete, "/api/v1/customers/99", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminHandler_OpenAccount(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		admin := &fakeAdminService{account: &domain.Account{IBAN: testIBAN, CustomerID: 42, PackageID: 3}}
		router := newTestRouter(nil, nil, admin)

		rec := doRequest(t, router, http.MethodPost, "/api/v1/accounts",
			`{"iban": "`+testIBAN+`", "customer_id": 42, "package_name": "standard", "fee": 299, "daily_limit": 1000000}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), testIBAN)
	})

	t.Run("UnknownCustomer", func(t *testing.T) {
		admin := &fakeAdminService{err: domain.ErrConstraintViolation}
		router := newTestRouter(nil, nil, admin)

		rec := doRequest(t, router, http.MethodPost, "/api/v1/accounts",
			`{"iban": "`+testIBAN+`", "customer_id": 99, "package_name": "standard"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminHandler_GetPackage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		dailyLimit := int64(1000000)
		admin := &fakeAdminService{pkg: &domain.Package{ID: 3, Name: "standard", Fee: 299, DailyLimit: &dailyLimit}}
		router := newTestRouter(nil, nil, admin)

		rec := doRequest(t, router, http.MethodGet, "/api/v1/accounts/"+testIBAN+"/package", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var pkg domain.Package
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pkg))
		assert.Equal(t, "standard", pkg.Name)
		require.NotNil(t, pkg.DailyLimit)
		assert.Equal(t, int64(1000000), *pkg.DailyLimit)
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		admin := &fakeAdminService{err: domain.ErrEntityNotFound}
		router := newTestRouter(nil, nil, admin)

		rec := doRequest(t, router, http.MethodGet, "/api/v1/accounts/"+testIBAN+"/package", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminHandler_ListAccounts(t *testing.T) {
	admin := &fakeAdminService{accounts: []domain.Account{
		{IBAN: testIBAN, CustomerID: 42, PackageID: 3, Balance: 150000},
	}}
	router := newTestRouter(nil, nil, admin)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/customers/42/accounts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), testIBAN)
}
