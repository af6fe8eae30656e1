package order

import (
	"fmt"
	"strings"

	"bookshop/domain/catalog"
	"bookshop/domain/shared"
)

// PricingPolicy How the quantity takes part in subscription pricing
type PricingPolicy string

const (
	// SubscriptionIgnoresQuantity price * issuesPerMonth * months, whatever the quantity.
	// This is the established behaviour and the default.
	SubscriptionIgnoresQuantity PricingPolicy = "ignore"

	// SubscriptionPerCopy price * issuesPerMonth * months * quantity
	SubscriptionPerCopy PricingPolicy = "per_copy"
)

// ParsePricingPolicy Empty text selects the default policy
func ParsePricingPolicy(text string) (PricingPolicy, error) {
	switch PricingPolicy(strings.ToLower(strings.TrimSpace(text))) {
	case "", SubscriptionIgnoresQuantity:
		return SubscriptionIgnoresQuantity, nil
	case SubscriptionPerCopy:
		return SubscriptionPerCopy, nil
	default:
		return "", fmt.Errorf("unknown subscription pricing policy %q", text)
	}
}

// TotalPrice Price of buying quantity units of item, or of subscribing to it.
//
// A subscription only applies to periodicals; for a publication the
// subscription is ignored and the one-off price is charged.
func TotalPrice(item catalog.Item, quantity int, subscription Subscription, policy PricingPolicy) shared.Money {
	base := item.Price().Times(int64(quantity))

	switch it := item.(type) {
	case *catalog.Publication:
		return base
	case *catalog.Periodical:
		months, ok := subscription.Months()
		if !ok {
			return base
		}
		total := it.Price().Times(it.IssuesPerMonth() * int64(months))
		if policy == SubscriptionPerCopy {
			total = total.Times(int64(quantity))
		}
		return total
	default:
		panic(fmt.Sprintf("order: unexpected catalog item type %T", item))
	}
}
