package app

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/storefront-cart/config"
	"github.com/stretchr/testify/require"
)

const catalogSeed = `[
	{"id": 1, "category_id": 8, "name": "Pizza", "price": "20.00", "price_offer": null},
	{"id": 2, "category_id": 2, "name": "Refrigerante", "price": "7.00", "price_offer": "5.50"}
]`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Server: config.ServerConfig{
			Port:       "8080",
			RateLimit:  100,
			RateWindow: time.Minute,
		},
		Log:     config.LogConfig{Level: "error"},
		Cart:    config.CartConfig{StorageDir: t.TempDir(), StorageKey: "storefront:cart"},
		Catalog: config.CatalogConfig{SeedFile: writeSeed(t, catalogSeed), CacheSize: 10, CacheTTL: time.Minute},
		Database: config.DatabaseConfig{
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
	}
}

func serveApp(a *App, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}
