package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_StoresNothingButReturnsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "budi@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Login berhasil",
			"user":    map[string]string{"id": "user-1", "email": "budi@example.com"},
			"token":   "jwt-token",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), "budi@example.com", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestCreateInspection_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/inspections", r.URL.Path)

		var req InspectionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "car", req.VehicleType)
		assert.Equal(t, 25000, req.Mileage)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Pesanan inspeksi berhasil dibuat",
			"data": map[string]any{
				"order_code": "INS-XY12AB",
				"price":      "350000",
				"status":     "pending",
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Token = "jwt-token"

	ins, err := c.CreateInspection(context.Background(), InspectionRequest{
		VehicleType: "car",
		Brand:       "Honda",
		Model:       "Jazz RS",
		Year:        2021,
		Mileage:     25000,
	})
	require.NoError(t, err)
	assert.Equal(t, "INS-XY12AB", ins.OrderCode)
	assert.True(t, ins.Price.Equal(decimal.NewFromInt(350000)))
	assert.Equal(t, "pending", ins.Status)
}

func TestCreateInspection_ValidationErrorSurfacesFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Data pesanan tidak valid",
			"errors": map[string][]string{
				"contact_phone": {"Format no. telepon tidak valid"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateInspection(context.Background(), InspectionRequest{})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "Data pesanan tidak valid", apiErr.Message)
	assert.NotEmpty(t, apiErr.Errors["contact_phone"])
}

func TestListInspections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "OK",
			"data": map[string]any{
				"data": []map[string]any{
					{"order_code": "INS-AAAAAA", "status": "pending"},
					{"order_code": "INS-BBBBBB", "status": "completed"},
				},
				"current_page": 2,
				"per_page":     10,
				"total":        12,
				"last_page":    2,
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	page, err := c.ListInspections(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, "INS-AAAAAA", page.Items[0].OrderCode)
}

func TestUnauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthenticated."})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListInspections(context.Background(), 1)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Unauthenticated.", apiErr.Message)
}
