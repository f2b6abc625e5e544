package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"walletwave.backend/internal/interfaces/http/handlers"
)

func testDeps() routeDeps {
	return routeDeps{
		merchantHandler:       &handlers.MerchantHandler{},
		paymentRequestHandler: &handlers.PaymentRequestHandler{},
		settlementHandler:     &handlers.SettlementHandler{},
		settingsHandler:       &handlers.SettingsHandler{},
		tokenHandler:          &handlers.TokenHandler{},
	}
}

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIV1Routes(r, testDeps())

	expects := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/merchants/status"},
		{"POST", "/api/v1/merchants/register"},
		{"POST", "/api/v1/requests"},
		{"GET", "/api/v1/requests"},
		{"POST", "/api/v1/requests/:id/copied"},
		{"GET", "/api/v1/pay"},
		{"GET", "/api/v1/pay/:id"},
		{"POST", "/api/v1/pay/:id"},
		{"GET", "/api/v1/settings"},
		{"PUT", "/api/v1/settings"},
		{"GET", "/api/v1/tokens"},
		{"GET", "/api/v1/tokens/:symbol/price"},
	}

	routes := r.Routes()
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRegisterMetricsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerMetricsRoute(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestApplyCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	applyCORSMiddleware(r)
	registerHealthRoute(r)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://walletwave.test")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("expected CORS headers on response")
	}
}
