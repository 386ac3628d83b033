package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/guttosm/storefront-cart/internal/middleware"
	"github.com/guttosm/storefront-cart/internal/repository"
	"github.com/guttosm/storefront-cart/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "http-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// testCatalog holds a pizza, a drink on offer, two flavors (one special),
// a crust and two extras.
func testCatalog() []model.Product {
	cheddar := model.Product{ID: 32, CategoryID: 11, Name: "Cheddar", Price: dec("3.00"), PriceOffer: model.NewOffer(dec("2.50"))}
	soda := model.Product{ID: 2, CategoryID: 2, Name: "Refrigerante", Price: dec("7.00"), PriceOffer: model.NewOffer(dec("5.50"))}
	return []model.Product{
		{ID: 1, CategoryID: 8, Name: "Pizza", Price: dec("20.00")},
		soda,
		{ID: 20, CategoryID: 8, Name: "Calabresa", Price: dec("0")},
		{ID: 21, CategoryID: 9, Name: "Camarão", Price: dec("0")},
		{ID: 30, CategoryID: 10, Name: "Catupiry", Price: dec("8.00")},
		{ID: 31, CategoryID: 11, Name: "Bacon", Price: dec("4.00")},
		cheddar,
	}
}

type testAPI struct {
	router   *gin.Engine
	cart     *service.CartStore
	slots    *repository.MemorySlotStore
	sessions *service.SessionService
}

type apiOption func(*RouterConfig)

func newTestAPI(t *testing.T, opts ...apiOption) *testAPI {
	t.Helper()

	slots := repository.NewMemorySlotStore()
	cart := service.NewCartStore(service.NewSlotPersistence(slots, ""))
	sessions, err := service.NewSessionService(service.SessionConfig{Secret: testSessionSecret, Issuer: "storefront"})
	require.NoError(t, err)

	idempotency := middleware.NewIdempotencyCache(0, 0)
	t.Cleanup(idempotency.Stop)

	cfg := RouterConfig{
		EnableIdempotency: true,
		IdempotencyCache:  idempotency,
		Cart:              cart,
		Catalog:           service.NewCatalogService(repository.NewMemoryCatalogRepository(testCatalog()...)),
		Sessions:          sessions,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &testAPI{
		router:   NewRouter(NewHealthHandler(), cfg),
		cart:     cart,
		slots:    slots,
		sessions: sessions,
	}
}

func (a *testAPI) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var resp struct {
		Data      T      `json:"data"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	require.NotEmpty(t, resp.RequestID)
	return resp.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}
