package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogRepo "github.com/tair/storefront/internal/catalog/repository"
	"github.com/tair/storefront/internal/notify"
	"github.com/tair/storefront/internal/shop/repository"
	"github.com/tair/storefront/internal/shop/usecase/command"
	"github.com/tair/storefront/internal/shop/usecase/query"
	"github.com/tair/storefront/pkg/kv"
)

func newTestRouter() *mux.Router {
	shop := repository.NewSessionStore(kv.NewMemoryStore())
	catalog := catalogRepo.NewSampleCatalog()
	notifier := notify.NewLogNotifier()

	handler := NewShopHandlerWithDI(
		command.NewAddToCartHandler(shop, catalog, notifier),
		command.NewRemoveFromCartHandler(shop, notifier),
		command.NewUpdateQuantityHandler(shop, notifier),
		command.NewClearCartHandler(shop, notifier),
		command.NewToggleWishlistHandler(shop, catalog, notifier),
		command.NewRemoveFromWishlistHandler(shop, notifier),
		command.NewClearWishlistHandler(shop, notifier),
		query.NewGetCartHandler(shop, catalog),
		query.NewGetWishlistHandler(shop, catalog),
		query.NewProductStatusHandler(shop),
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

// Prometheus collectors register globally, so the handler is built once
// and the scenarios share it.
func TestShopHandler(t *testing.T) {
	router := newTestRouter()

	var sessionCookie *http.Cookie

	do := func(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
		t.Helper()
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		if sessionCookie != nil {
			req.AddCookie(sessionCookie)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	decode := func(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
		t.Helper()
		var resp struct {
			Success bool                   `json:"success"`
			Data    map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.True(t, resp.Success)
		return resp.Data
	}

	t.Run("first request issues a session cookie", func(t *testing.T) {
		rec := do(t, http.MethodGet, "/api/cart", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		res := rec.Result()
		defer res.Body.Close()
		for _, c := range res.Cookies() {
			if c.Name == SessionCookieName {
				sessionCookie = c
			}
		}
		require.NotNil(t, sessionCookie, "expected a session cookie")
	})

	t.Run("add to cart returns a notification", func(t *testing.T) {
		rec := do(t, http.MethodPost, "/api/cart/items", map[string]interface{}{
			"product_id": 1,
			"quantity":   2,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		data := decode(t, rec)
		notification, ok := data["notification"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Added to cart", notification["title"])
		assert.Equal(t, "Premium Wireless Headphones added to your cart.", notification["description"])
	})

	t.Run("cart reflects the addition", func(t *testing.T) {
		rec := do(t, http.MethodGet, "/api/cart", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		data := decode(t, rec)
		assert.Equal(t, float64(2), data["count"])
		assert.InDelta(t, 2*299.99, data["total"], 0.001)
	})

	t.Run("quantity change is silent", func(t *testing.T) {
		rec := do(t, http.MethodPut, "/api/cart/items/1", map[string]interface{}{
			"quantity": 5,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool                   `json:"success"`
			Data    map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.True(t, resp.Success)
		assert.Nil(t, resp.Data["notification"])
	})

	t.Run("unknown product is rejected", func(t *testing.T) {
		rec := do(t, http.MethodPost, "/api/cart/items", map[string]interface{}{
			"product_id": 999,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("wishlist toggle on and off", func(t *testing.T) {
		rec := do(t, http.MethodPost, "/api/wishlist/toggle", map[string]interface{}{
			"product_id": 4,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		data := decode(t, rec)
		notification := data["notification"].(map[string]interface{})
		assert.Equal(t, "Added to wishlist", notification["title"])

		rec = do(t, http.MethodPost, "/api/wishlist/toggle", map[string]interface{}{
			"product_id": 4,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		data = decode(t, rec)
		notification = data["notification"].(map[string]interface{})
		assert.Equal(t, "Removed from wishlist", notification["title"])
	})

	t.Run("product status", func(t *testing.T) {
		rec := do(t, http.MethodGet, "/api/products/1/status", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		data := decode(t, rec)
		assert.Equal(t, true, data["in_cart"])
		assert.Equal(t, false, data["in_wishlist"])
	})

	t.Run("another session sees an empty cart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		data := decode(t, rec)
		assert.Equal(t, float64(0), data["count"])
	})

	t.Run("clear cart", func(t *testing.T) {
		rec := do(t, http.MethodDelete, "/api/cart", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, http.MethodGet, "/api/cart", nil)
		data := decode(t, rec)
		assert.Equal(t, float64(0), data["count"])
	})
}
