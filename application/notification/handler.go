// Package notification Delivers placement confirmations published on the event bus
package notification

import (
	"fmt"
	"sync/atomic"

	"bookshop/domain/order"
	"bookshop/domain/shared"

	"go.uber.org/zap"
)

// OrderPlacedHandler Logs every order.placed event it receives
type OrderPlacedHandler struct {
	logger    *zap.Logger
	delivered atomic.Int64
}

func NewOrderPlacedHandler(logger *zap.Logger) *OrderPlacedHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderPlacedHandler{logger: logger}
}

func (h *OrderPlacedHandler) Name() string {
	return "notification.order_placed"
}

func (h *OrderPlacedHandler) Handle(event shared.DomainEvent) error {
	placed, ok := event.(*order.PlacedEvent)
	if !ok {
		return fmt.Errorf("%s: unexpected event %T", h.Name(), event)
	}

	h.logger.Info("order confirmation sent",
		zap.String("event_id", placed.EventID()),
		zap.Int64("order_id", placed.OrderID()),
		zap.String("product", placed.ItemTitle()),
		zap.Int("quantity", placed.Quantity()),
		zap.String("total", placed.Total().String()),
	)
	h.delivered.Add(1)
	return nil
}

// Delivered Number of confirmations handled so far
func (h *OrderPlacedHandler) Delivered() int64 {
	return h.delivered.Load()
}

// Register Subscribe a new OrderPlacedHandler to bus
func Register(bus shared.DomainEventPublisher, logger *zap.Logger) (*OrderPlacedHandler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	handler := NewOrderPlacedHandler(logger.With(zap.String("module", "notification")))
	if err := bus.Subscribe(order.EventOrderPlaced, handler); err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", order.EventOrderPlaced, err)
	}
	return handler, nil
}

var _ shared.EventHandler = (*OrderPlacedHandler)(nil)
