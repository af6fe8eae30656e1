package memory

import (
	"context"

	"bookshop/domain/order"
)

// OrderRepository In-memory implementation of order.Repository
type OrderRepository struct {
	orders *ledger[int64, order.Placed]
}

// NewOrderRepository Create order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: newLedger[int64, order.Placed]()}
}

func (r *OrderRepository) Save(ctx context.Context, o order.Placed) error {
	if o == nil {
		return order.NewMissingItemError()
	}
	r.orders.put(o)
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (order.Placed, error) {
	o, ok := r.orders.get(id)
	if !ok {
		return nil, order.NewOrderNotFoundError(id)
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]order.Placed, error) {
	return r.orders.all(), nil
}

// Compile-time interface implementation check
var _ order.Repository = (*OrderRepository)(nil)
