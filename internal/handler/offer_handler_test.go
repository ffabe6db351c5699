package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gosm1/pureperfumes/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOfferService is a mock implementation of OfferService.
type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) Active(ctx context.Context, now time.Time) []model.SpecialOffer {
	args := m.Called(ctx, now)
	return args.Get(0).([]model.SpecialOffer)
}

func (m *MockOfferService) List(ctx context.Context) ([]model.SpecialOffer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SpecialOffer), args.Error(1)
}

func (m *MockOfferService) Get(ctx context.Context, id uuid.UUID) (*model.SpecialOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SpecialOffer), args.Error(1)
}

func (m *MockOfferService) Create(ctx context.Context, offer *model.SpecialOffer) (*model.SpecialOffer, error) {
	args := m.Called(ctx, offer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SpecialOffer), args.Error(1)
}

func (m *MockOfferService) Update(ctx context.Context, id uuid.UUID, offer *model.SpecialOffer) (*model.SpecialOffer, error) {
	args := m.Called(ctx, id, offer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SpecialOffer), args.Error(1)
}

func (m *MockOfferService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestOfferHandlerActive(t *testing.T) {
	t.Run("returns active offers banner first", func(t *testing.T) {
		offers := []model.SpecialOffer{
			{ID: uuid.New(), Title: "Banner", Priority: 10},
			{ID: uuid.New(), Title: "Secondary", Priority: 5},
		}
		svc := new(MockOfferService)
		svc.On("Active", mock.Anything, mock.AnythingOfType("time.Time")).Return(offers)

		h := NewOfferHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/offers/active", nil)
		w := httptest.NewRecorder()
		h.Active(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []model.SpecialOffer
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Banner", got[0].Title)
	})

	t.Run("empty list stays a JSON array", func(t *testing.T) {
		svc := new(MockOfferService)
		svc.On("Active", mock.Anything, mock.AnythingOfType("time.Time")).Return([]model.SpecialOffer{})

		h := NewOfferHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/offers/active", nil)
		w := httptest.NewRecorder()
		h.Active(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}
