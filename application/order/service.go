/*
Package order Application Layer - order placement orchestration

Responsibilities of Application Layer:
 1. Receive requests from the console shell
 2. Resolve the catalog item and pick the matching Order variant
 3. Call aggregate methods to price and place the order
 4. Forward the placement notification to the event bus and store the order
 5. Return results to caller

Placing an order never fails once the order is built: Place is total. A failing
event handler is reported as NotificationFailed after the order is stored.
*/
package order

import (
	"context"
	"fmt"
	"time"

	"bookshop/domain/catalog"
	"bookshop/domain/order"
	"bookshop/domain/shared"
	apperrors "bookshop/pkg/errors"
	"bookshop/pkg/logger"

	"go.uber.org/zap"
)

// ApplicationService Order application service
type ApplicationService struct {
	catalogRepo catalog.Repository
	orderRepo   order.Repository
	ids         *order.Sequence
	bus         shared.DomainEventPublisher
	policy      order.PricingPolicy
	clock       func() time.Time
}

// Option Configure ApplicationService
type Option func(*ApplicationService)

// WithClock Override the creation stamp clock of new orders
func WithClock(clock func() time.Time) Option {
	return func(s *ApplicationService) { s.clock = clock }
}

// NewApplicationService Create order application service.
// bus may be nil, in which case placements are not forwarded.
func NewApplicationService(
	catalogRepo catalog.Repository,
	orderRepo order.Repository,
	ids *order.Sequence,
	bus shared.DomainEventPublisher,
	policy order.PricingPolicy,
	opts ...Option,
) *ApplicationService {
	s := &ApplicationService{
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		ids:         ids,
		bus:         bus,
		policy:      policy,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder Build, place and store an order for the requested item.
// observers run after the bus forwarding observer, in the given order.
func (s *ApplicationService) PlaceOrder(ctx context.Context, req PlaceOrderRequest, observers ...order.Observer) (*OrderResponse, error) {
	item, err := s.catalogRepo.FindByISBN(ctx, req.ISBN)
	if err != nil {
		return nil, err
	}

	var publishErr error
	forward := func(event *order.PlacedEvent) {
		if s.bus == nil {
			return
		}
		if err := s.bus.Publish(event); err != nil {
			publishErr = err
		}
	}

	var (
		placed       order.Placed
		confirmation order.Confirmation
	)
	switch it := item.(type) {
	case *catalog.Publication:
		// Subscriptions only apply to periodicals
		placed, confirmation, err = place(s.ids, order.PostOptions[*catalog.Publication]{
			Item:         it,
			Quantity:     req.Quantity,
			Subscription: order.NoSubscription(),
			Policy:       s.policy,
			Clock:        s.clock,
		}, forward, observers)
	case *catalog.Periodical:
		placed, confirmation, err = place(s.ids, order.PostOptions[*catalog.Periodical]{
			Item:         it,
			Quantity:     req.Quantity,
			Subscription: toSubscription(req.SubscriptionMonths),
			Policy:       s.policy,
			Clock:        s.clock,
		}, forward, observers)
	default:
		panic(fmt.Sprintf("unexpected catalog item %T", item))
	}
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, placed); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("order placed",
		zap.Int64("order_id", placed.ID()),
		zap.String("isbn", confirmation.ItemISBN),
		zap.Int("quantity", confirmation.Quantity),
		zap.String("total", confirmation.Total.String()),
	)

	resp := toOrderResponse(placed, confirmation)
	if publishErr != nil {
		logger.FromContext(ctx).Warn("order placed event not delivered",
			zap.Int64("order_id", placed.ID()),
			zap.Error(publishErr),
		)
		return resp, apperrors.NotificationFailed(publishErr)
	}
	return resp, nil
}

func place[I catalog.Item](
	ids *order.Sequence,
	opts order.PostOptions[I],
	forward order.Observer,
	observers []order.Observer,
) (order.Placed, order.Confirmation, error) {
	o, err := order.New(ids, opts)
	if err != nil {
		return nil, order.Confirmation{}, err
	}

	o.OnPlaced(forward)
	for _, observer := range observers {
		o.OnPlaced(observer)
	}
	return o, o.Place(), nil
}

// GetOrder Get order information
func (s *ApplicationService) GetOrder(ctx context.Context, orderID int64) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toStoredOrderResponse(o), nil
}

// ListOrders Get all orders in placement order
func (s *ApplicationService) ListOrders(ctx context.Context) ([]*OrderResponse, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toStoredOrderResponse(o)
	}
	return responses, nil
}
