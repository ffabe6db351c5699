package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gosm1/pureperfumes/internal/cart"
	"github.com/gosm1/pureperfumes/internal/model"
	"github.com/gosm1/pureperfumes/internal/notify"
	"github.com/gosm1/pureperfumes/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService. The admin order list is cached and
// invalidated coarsely: any change event or local write marks it stale, and
// the next List performs a full reload.
type orderService struct {
	orderRepo repository.OrderRepository
	notifier  notify.Notifier
	logger    zerolog.Logger

	mu     sync.Mutex
	cached []model.Order
	stale  bool
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, notifier notify.Notifier, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		notifier:  notifier,
		logger:    logger.With().Str("service", "order").Logger(),
		stale:     true,
	}
}

// Checkout snapshots the session cart into a new pending order.
func (s *orderService) Checkout(ctx context.Context, c *cart.Cart, req *CheckoutRequest) (*model.Order, error) {
	if err := s.validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	items := c.Items()
	if len(items) == 0 {
		s.logger.Warn().Msg("checkout attempted with empty cart")
		return nil, model.ErrEmptyCart
	}

	for _, item := range items {
		if err := item.Customization.Validate(); err != nil {
			return nil, err
		}
	}

	city := req.City
	var otherCity *string
	if req.City == "other" {
		city = req.OtherCity
		otherCity = &req.OtherCity
	}

	order := &model.Order{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		City:       city,
		OtherCity:  otherCity,
		Address:    req.Address,
		CartItems:  items,
		TotalPrice: c.TotalPrice(),
		Status:     model.OrderStatusPending,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// The order is already persisted; a failed notification is logged and
	// never rolled back or retried.
	if err := s.notifier.NotifyOrder(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("order notification failed")
	}

	c.Clear()
	s.invalidate()

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("line_count", len(order.CartItems)).
		Float64("total_price", order.TotalPrice).
		Msg("order created successfully")

	return order, nil
}

// List retrieves all orders, reloading when the cache is stale.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.stale && s.cached != nil {
		return s.cached, nil
	}

	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}

	s.cached = orders
	s.stale = false

	s.logger.Debug().Int("count", len(orders)).Msg("order list reloaded")

	return orders, nil
}

// Get retrieves an order by its ID.
func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus sets the order status. Transitions are unrestricted within the
// fixed enum; any status may be set to any other.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	if !status.IsValid() {
		s.logger.Warn().Str("status", string(status)).Msg("invalid order status")
		return model.ErrInvalidStatus
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if err == model.ErrOrderNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	s.invalidate()

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", string(status)).
		Msg("order status updated")

	return nil
}

// Delete removes the order.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if err == model.ErrOrderNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.invalidate()

	s.logger.Info().Str("order_id", id.String()).Msg("order deleted")

	return nil
}

// Watch consumes change events until the channel closes, marking the cached
// list stale on every event. Reconciliation stays coarse: no diffing, just a
// full reload on next read.
func (s *orderService) Watch(events <-chan struct{}) {
	for range events {
		s.logger.Debug().Msg("order change event received, cache invalidated")
		s.invalidate()
	}
}

func (s *orderService) invalidate() {
	s.mu.Lock()
	s.stale = true
	s.mu.Unlock()
}

func (s *orderService) validateCheckoutRequest(req *CheckoutRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeMissingField, "checkout request is required")
	}
	if req.FirstName == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "first name is required")
	}
	if req.LastName == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "last name is required")
	}
	if req.Phone == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "phone is required")
	}
	if req.City == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "city is required")
	}
	if req.City == "other" && req.OtherCity == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "other city is required")
	}
	if req.Address == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "address is required")
	}
	return nil
}
