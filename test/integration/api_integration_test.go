package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gosm1/pureperfumes/internal/cart"
	"github.com/gosm1/pureperfumes/internal/config"
	"github.com/gosm1/pureperfumes/internal/handler"
	"github.com/gosm1/pureperfumes/internal/model"
	"github.com/gosm1/pureperfumes/internal/notify"
	"github.com/gosm1/pureperfumes/internal/repository"
	"github.com/gosm1/pureperfumes/internal/router"
	"github.com/gosm1/pureperfumes/internal/service"
	"github.com/gosm1/pureperfumes/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminSecret = "test-admin-secret"

func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	offerRepo := repository.NewOfferRepository(testDB.Pool, logger)

	images := storage.NewDisabled(logger)
	// Unconfigured credentials keep checkout working; the failed notification
	// is only logged.
	notifier := notify.NewTelegramNotifier(config.TelegramConfig{}, logger)

	persister, err := cart.NewFilePersister(t.TempDir(), logger)
	require.NoError(t, err)
	carts := cart.NewStore(persister, cart.SystemClock(), logger)

	catalogService := service.NewCatalogService(productRepo, images, logger)
	orderService := service.NewOrderService(orderRepo, notifier, logger)
	offerService := service.NewOfferService(offerRepo, logger)

	handlers := router.Handlers{
		Product:      handler.NewProductHandler(catalogService, logger),
		Cart:         handler.NewCartHandler(carts, catalogService, orderService, logger),
		Offer:        handler.NewOfferHandler(offerService, logger),
		AdminProduct: handler.NewAdminProductHandler(catalogService, logger),
		AdminOrder:   handler.NewAdminOrderHandler(orderService, logger),
		AdminOffer:   handler.NewAdminOfferHandler(offerService, logger),
		Image:        handler.NewImageHandler(images, logger),
	}

	return router.New(handlers, testAdminSecret, logger)
}

func TestStorefrontAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("GET /api/products returns all products", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		assert.Len(t, products, 5)
	})

	t.Run("GET /api/products with search filter", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/products?q=oud", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		require.Len(t, products, 1)
		assert.Equal(t, "Oud Intense", products[0].Name)
	})

	t.Run("GET /api/products/{id} returns 404 for unknown product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/products/nope", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("cart flow and checkout", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		// Add a product to a fresh session cart.
		body, _ := json.Marshal(map[string]any{"productId": "P001", "quantity": 2})
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewReader(body))
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)
		session := cookies[0]

		// Submit the checkout with the same session cookie.
		body, _ = json.Marshal(service.CheckoutRequest{
			FirstName: "Yasmine",
			LastName:  "Benali",
			Phone:     "0612345678",
			City:      "Casablanca",
			Address:   "12 Rue des Fleurs",
		})
		req = httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(body))
		req.AddCookie(session)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var order model.Order
		require.NoError(t, json.NewDecoder(w.Body).Decode(&order))
		assert.Equal(t, model.OrderStatusPending, order.Status)
		assert.Equal(t, 598.0, order.TotalPrice)

		// The cart is now empty.
		req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.AddCookie(session)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var cartBody struct {
			TotalItems int `json:"totalItems"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&cartBody))
		assert.Equal(t, 0, cartBody.TotalItems)
	})

	t.Run("GET /api/offers/active returns only current offers", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		offerRepo := repository.NewOfferRepository(testDB.Pool, zerolog.Nop())
		now := time.Now().UTC()
		mk := func(title string, active bool, start, end time.Time) *model.SpecialOffer {
			return &model.SpecialOffer{
				ID:                 uuid.New(),
				CreatedAt:          now,
				UpdatedAt:          now,
				Title:              title,
				Summary:            "Seasonal promotion",
				IsActive:           active,
				StartDate:          start,
				EndDate:            end,
				ApplicableProducts: []string{},
			}
		}
		require.NoError(t, offerRepo.Create(context.Background(), mk("Current", true, now.Add(-time.Hour), now.Add(time.Hour))))
		require.NoError(t, offerRepo.Create(context.Background(), mk("Expired", true, now.Add(-2*time.Hour), now.Add(-time.Hour))))

		req := httptest.NewRequest(http.MethodGet, "/api/offers/active", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var offers []model.SpecialOffer
		require.NoError(t, json.NewDecoder(w.Body).Decode(&offers))
		require.Len(t, offers, 1)
		assert.Equal(t, "Current", offers[0].Title)
	})
}

func TestAdminAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	adminReq := func(method, target string, body []byte) *http.Request {
		var req *http.Request
		if body != nil {
			req = httptest.NewRequest(method, target, bytes.NewReader(body))
		} else {
			req = httptest.NewRequest(method, target, nil)
		}
		req.Header.Set("X-Admin-Secret", testAdminSecret)
		return req
	}

	t.Run("admin routes reject a missing secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GET /api/admin/products returns grouped catalogue", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		w := httptest.NewRecorder()
		server.ServeHTTP(w, adminReq(http.MethodGet, "/api/admin/products", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var groups service.ProductGroups
		require.NoError(t, json.NewDecoder(w.Body).Decode(&groups))
		assert.Len(t, groups.Standard, 4)
		assert.Len(t, groups.Packs, 1)
	})

	t.Run("product create, update, delete lifecycle", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		body, _ := json.Marshal(model.Product{
			Name:     "Cedar Dusk",
			Brand:    "Sillage",
			Price:    319,
			Category: model.CategoryMen,
		})
		w := httptest.NewRecorder()
		server.ServeHTTP(w, adminReq(http.MethodPost, "/api/admin/products", body))

		require.Equal(t, http.StatusCreated, w.Code)
		var created model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
		require.NotEmpty(t, created.ID)

		created.Price = 289
		body, _ = json.Marshal(created)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, adminReq(http.MethodPut, "/api/admin/products/"+created.ID, body))
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		server.ServeHTTP(w, adminReq(http.MethodDelete, "/api/admin/products/"+created.ID, nil))
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.NewRecorder()
		server.ServeHTTP(w, adminReq(http.MethodDelete, "/api/admin/products/"+created.ID, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("order status update returns reloaded list", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		orderRepo := repository.NewOrderRepository(testDB.Pool, zerolog.Nop())
		order := sampleOrder()
		require.NoError(t, orderRepo.Create(context.Background(), order))

		body, _ := json.Marshal(map[string]string{"status": "shipped"})
		w := httptest.NewRecorder()
		server.ServeHTTP(w, adminReq(http.MethodPatch, "/api/admin/orders/"+order.ID.String()+"/status", body))

		require.Equal(t, http.StatusOK, w.Code)

		var orders []model.Order
		require.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
		require.Len(t, orders, 1)
		assert.Equal(t, model.OrderStatusShipped, orders[0].Status)
	})

	t.Run("offer create rejects an over-long summary", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		long := make([]byte, model.MaxOfferSummaryLength+1)
		for i := range long {
			long[i] = 'x'
		}
		body, _ := json.Marshal(model.SpecialOffer{
			Title:     "Flash Sale",
			Summary:   string(long),
			StartDate: time.Now().UTC(),
			EndDate:   time.Now().UTC().Add(time.Hour),
		})

		w := httptest.NewRecorder()
		server.ServeHTTP(w, adminReq(http.MethodPost, "/api/admin/offers", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
