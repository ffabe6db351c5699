package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gosm1/pureperfumes/internal/model"
	"github.com/gosm1/pureperfumes/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, filter string) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) ListGrouped(ctx context.Context, filter string) (*service.ProductGroups, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProductGroups), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) Update(ctx context.Context, id string, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, id, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Oud Intense", Brand: "Aroma", Price: 299, Category: model.CategoryMen},
		{ID: "2", Name: "Rose Elixir", Brand: "Aroma", Price: 349, Category: model.CategoryWomen},
	}
}

func TestProductHandlerList(t *testing.T) {
	t.Run("returns products", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("List", mock.Anything, "").Return(testProducts(), nil)

		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()
		h.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var products []model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		assert.Len(t, products, 2)
	})

	t.Run("forwards the search filter", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("List", mock.Anything, "oud").Return(testProducts()[:1], nil)

		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/products?q=oud", nil)
		w := httptest.NewRecorder()
		h.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("filters by category", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("List", mock.Anything, "").Return(testProducts(), nil)

		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/products?category=women", nil)
		w := httptest.NewRecorder()
		h.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		require.Len(t, products, 1)
		assert.Equal(t, "2", products[0].ID)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("List", mock.Anything, "").Return(testProducts(), nil)

		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/products?category=shoes", nil)
		w := httptest.NewRecorder()
		h.List(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure degrades to empty catalogue", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("List", mock.Anything, "").Return(nil, errors.New("connection lost"))

		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()
		h.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestProductHandlerGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		p := testProducts()[0]
		svc := new(MockCatalogService)
		svc.On("Get", mock.Anything, "1").Return(&p, nil)

		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/products/1", nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		h.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var product model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
		assert.Equal(t, "Oud Intense", product.Name)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("Get", mock.Anything, "missing").Return(nil, model.ErrProductNotFound)

		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()
		h.Get(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeProductNotFound, resp.Code)
	})
}
