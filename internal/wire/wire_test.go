package wire

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"awami-saholat/internal/data/repository"
	"awami-saholat/pkg/database"
	"awami-saholat/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshot.db")
	db, err := database.InitDB(utils.SnapshotConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	config := &utils.Config{
		App:     utils.AppConfig{Name: "awami-saholat"},
		Catalog: utils.CatalogConfig{DefaultCity: "Islamabad"},
	}
	repo := repository.NewRepository(db, config.Catalog.DefaultCity, zap.NewNop())
	return Wiring(repo, config, zap.NewNop())
}

func do(t *testing.T, app *App, method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func loginAs(t *testing.T, app *App, userType string) {
	t.Helper()
	rec, _ := do(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":     "hassan@example.com",
		"password":  "secret123",
		"user_type": userType,
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestFullBookingFlow(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, "customer")

	// Step 1: service + location
	rec, env := do(t, app, http.MethodPost, "/api/booking/wizard/service", map[string]any{
		"service_id": 2, "city": "Islamabad", "area": "F-7",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var state struct {
		Step       int `json:"step"`
		Candidates []struct {
			ID   int    `json:"id"`
			City string `json:"city"`
		} `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Equal(t, 2, state.Step)
	require.NotEmpty(t, state.Candidates)
	for _, c := range state.Candidates {
		assert.Equal(t, "Islamabad", c.City)
	}

	// Step 2: pilih worker dari kandidat
	rec, _ = do(t, app, http.MethodPost, "/api/booking/wizard/worker", map[string]any{
		"worker_id": state.Candidates[0].ID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Step 3: confirm
	rec, env = do(t, app, http.MethodPost, "/api/booking/wizard/confirm", map[string]any{
		"date": "2026-09-10", "time": "14:00", "hours": 3,
		"address": "House 12, Street 4", "description": "UPS wiring repair",
		"customer_name": "Hassan", "customer_phone": "+92 300 1234567",
		"customer_email": "hassan@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var booking struct {
		ID           string  `json:"id"`
		OrderID      string  `json:"order_id"`
		PricePerHour float64 `json:"price_per_hour"`
		TotalPrice   float64 `json:"total_price"`
		Status       string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.NotEmpty(t, booking.ID)
	assert.Regexp(t, `^AS-\d{8}-\d{6}-\d{4}$`, booking.OrderID)
	assert.InDelta(t, booking.PricePerHour*3, booking.TotalPrice, 0.001)
	assert.Equal(t, "pending", booking.Status)

	// Wizard kembali ke step 1 setelah confirm
	rec, env = do(t, app, http.MethodGet, "/api/booking/wizard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var reset struct {
		Step int `json:"step"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reset))
	assert.Equal(t, 1, reset.Step)

	// Dashboard mencatat booking pending
	rec, env = do(t, app, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dash struct {
		Role       string   `json:"role"`
		Total      int      `json:"total"`
		Pending    int      `json:"pending"`
		TotalSpent *float64 `json:"total_spent"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	assert.Equal(t, "customer", dash.Role)
	assert.Equal(t, 1, dash.Total)
	assert.Equal(t, 1, dash.Pending)
	require.NotNil(t, dash.TotalSpent)
	assert.Zero(t, *dash.TotalSpent)

	// Status patch ke completed
	rec, _ = do(t, app, http.MethodPut, "/api/bookings/"+booking.ID, map[string]string{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	_, env = do(t, app, http.MethodGet, "/api/dashboard", nil)
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	assert.Equal(t, 0, dash.Pending)
	require.NotNil(t, dash.TotalSpent)
	assert.InDelta(t, booking.TotalPrice, *dash.TotalSpent, 0.001)
}

func TestConfirmWithoutLoginPreservesWizard(t *testing.T) {
	app := newTestApp(t)

	rec, _ := do(t, app, http.MethodPost, "/api/booking/wizard/service", map[string]any{
		"service_id": 2, "city": "Islamabad",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, app, http.MethodPost, "/api/booking/wizard/worker", map[string]any{
		"worker_id": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Gate, bukan fault: 401 dan wizard state tetap ada
	rec, _ = do(t, app, http.MethodPost, "/api/booking/wizard/confirm", map[string]any{
		"date": "2026-09-10", "time": "14:00", "hours": 3,
		"address": "House 12", "description": "Wiring",
		"customer_name": "Hassan", "customer_phone": "+92 300 1234567",
		"customer_email": "hassan@example.com",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, env := do(t, app, http.MethodGet, "/api/booking/wizard", nil)
	var state struct {
		Step     int `json:"step"`
		WorkerID int `json:"worker_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Equal(t, 3, state.Step)
	assert.Equal(t, 2, state.WorkerID)
}

func TestWorkerListWithQueryFilters(t *testing.T) {
	app := newTestApp(t)

	rec, env := do(t, app, http.MethodGet,
		"/api/workers?city=Islamabad&service=2&min_rating=4&max_price=2000", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Count   int `json:"count"`
		Workers []struct {
			City         string  `json:"city"`
			ServiceID    int     `json:"service_id"`
			Rating       float64 `json:"rating"`
			PricePerHour float64 `json:"price_per_hour"`
		} `json:"workers"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.NotZero(t, list.Count)
	for _, w := range list.Workers {
		assert.Equal(t, "Islamabad", w.City)
		assert.Equal(t, 2, w.ServiceID)
		assert.GreaterOrEqual(t, w.Rating, 4.0)
		assert.LessOrEqual(t, w.PricePerHour, 2000.0)
	}
}

func TestQuickBookRequiresCustomer(t *testing.T) {
	app := newTestApp(t)
	payload := map[string]any{
		"date": "2026-09-12", "time": "11:00", "hours": 2,
		"address": "45-B Gulberg III", "description": "Tripping breaker",
	}

	rec, _ := do(t, app, http.MethodPost, "/api/workers/3/book", payload)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	loginAs(t, app, "worker")
	rec, _ = do(t, app, http.MethodPost, "/api/workers/3/book", payload)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	loginAs(t, app, "customer")
	rec, _ = do(t, app, http.MethodPost, "/api/workers/3/book", payload)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDashboardAndBookingsAreGated(t *testing.T) {
	app := newTestApp(t)

	rec, _ := do(t, app, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = do(t, app, http.MethodPut,
		"/api/bookings/6b1e6a4e-0000-0000-0000-000000000000",
		map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutClearsDashboardAccess(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, "customer")

	rec, _ := do(t, app, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Idempotent: dua kali logout sama-sama sukses
	for i := 0; i < 2; i++ {
		rec, _ = do(t, app, http.MethodPost, "/api/auth/logout", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, _ = do(t, app, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPublicCatalogEndpoints(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{
		"/api/home", "/api/services", "/api/cities",
		"/api/content/about", "/api/content/contact",
		"/api/workers", "/api/workers/2", "/api/session/preferences",
	} {
		rec, env := do(t, app, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.True(t, env.Status, target)
	}

	rec, _ := do(t, app, http.MethodGet, "/api/workers/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
