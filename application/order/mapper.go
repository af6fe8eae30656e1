package order

import (
	"bookshop/domain/order"
	"bookshop/domain/shared"
)

func toSubscription(months *int) order.Subscription {
	if months == nil {
		return order.NoSubscription()
	}
	return order.SubscriptionFor(*months)
}

func toMoneyResponse(m shared.Money) MoneyResponse {
	return MoneyResponse{
		Amount:   m.Amount(),
		Currency: m.Currency(),
		Display:  m.String(),
	}
}

func toConfirmationResponse(c order.Confirmation) ConfirmationResponse {
	return ConfirmationResponse{
		ItemISBN: c.ItemISBN,
		Quantity: c.Quantity,
		Total:    toMoneyResponse(c.Total),
	}
}

func toOrderResponse(o order.Placed, c order.Confirmation) *OrderResponse {
	item := o.CatalogItem()
	resp := &OrderResponse{
		ID:           o.ID(),
		ItemISBN:     item.ISBN(),
		ItemTitle:    item.Title(),
		ItemKind:     string(item.Kind()),
		Quantity:     o.Quantity(),
		Total:        toMoneyResponse(o.Total()),
		Confirmation: toConfirmationResponse(c),
		Description:  o.Describe(),
		CreatedAt:    o.CreatedAt(),
	}
	if months, ok := o.Subscription().Months(); ok {
		resp.SubscriptionMonths = &months
	}
	return resp
}

// toStoredOrderResponse Response for an order read back from the ledger; the
// confirmation reflects the current item price.
func toStoredOrderResponse(o order.Placed) *OrderResponse {
	return toOrderResponse(o, order.Confirmation{
		ItemISBN: o.CatalogItem().ISBN(),
		Quantity: o.Quantity(),
		Total:    o.Total(),
	})
}
