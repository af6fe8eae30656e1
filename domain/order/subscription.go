package order

import "strconv"

// MaxSubscriptionMonths Longest subscription an order may carry
const MaxSubscriptionMonths = 1200

// Subscription Optional subscription length in months
// The zero value means "no subscription".
type Subscription struct {
	months int
	set    bool
}

// NoSubscription One-off purchase
func NoSubscription() Subscription {
	return Subscription{}
}

// SubscriptionFor Subscription of the given number of months (validated by New)
func SubscriptionFor(months int) Subscription {
	return Subscription{months: months, set: true}
}

// Months Length in months and whether a subscription is present
func (s Subscription) Months() (int, bool) {
	return s.months, s.set
}

func (s Subscription) IsSet() bool { return s.set }

func (s Subscription) String() string {
	if !s.set {
		return "none"
	}
	return strconv.Itoa(s.months) + " months"
}
