/*
Package order Order subdomain - placing orders for catalog items

An Order is generic over the catalog variant it holds, so an Order[*catalog.Periodical]
can offer periodical-only behaviour while sharing the pricing and notification code
with Order[*catalog.Publication].

Lifecycle:
 1. New validates the request, takes the next id from the injected Sequence and stamps
    the creation time
 2. Observers are registered with OnPlaced
 3. Place prices the order, notifies every observer synchronously and returns the
    confirmation. Place never fails and never changes the order itself
*/
package order

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"bookshop/domain/catalog"
	"bookshop/domain/shared"
)

// MaxQuantity Largest number of copies a single order may request
const MaxQuantity = 100000

// DateLayout Creation date layout used by Describe
const DateLayout = "02/01/2006"

// Observer Callback invoked by Place. Observers run in registration order on the
// caller's goroutine; a panicking observer aborts Place.
type Observer func(event *PlacedEvent)

// Confirmation Result of placing an order
type Confirmation struct {
	ItemISBN string
	Quantity int
	Total    shared.Money
}

// PostOptions Create order options
type PostOptions[I catalog.Item] struct {
	Item         I
	Quantity     int
	Subscription Subscription
	Policy       PricingPolicy

	// Clock overrides time.Now for the creation stamp
	Clock func() time.Time
}

// Placed Item-type independent view of an order, used by collections of orders
type Placed interface {
	shared.Entity[int64]

	ID() int64
	CatalogItem() catalog.Item
	Quantity() int
	Subscription() Subscription
	CreatedAt() time.Time
	Total() shared.Money
	Describe() string
}

// Order A request to buy Quantity copies of, or subscribe to, one catalog item
type Order[I catalog.Item] struct {
	id           int64
	item         I
	createdAt    time.Time
	quantity     int
	subscription Subscription
	policy       PricingPolicy

	mu        sync.Mutex
	observers []Observer
}

// New Create an order and assign it the next id from ids.
// The id is only consumed when validation succeeds.
func New[I catalog.Item](ids *Sequence, opts PostOptions[I]) (*Order[I], error) {
	if ids == nil {
		return nil, ErrMissingSequence
	}
	if catalog.IsNil(opts.Item) {
		return nil, NewMissingItemError()
	}
	if opts.Quantity <= 0 || opts.Quantity > MaxQuantity {
		return nil, NewInvalidQuantityError(opts.Quantity)
	}
	if months, ok := opts.Subscription.Months(); ok && (months <= 0 || months > MaxSubscriptionMonths) {
		return nil, NewInvalidSubscriptionError(months)
	}

	policy := opts.Policy
	if policy == "" {
		policy = SubscriptionIgnoresQuantity
	}
	now := time.Now
	if opts.Clock != nil {
		now = opts.Clock
	}

	return &Order[I]{
		id:           ids.Next(),
		item:         opts.Item,
		createdAt:    now(),
		quantity:     opts.Quantity,
		subscription: opts.Subscription,
		policy:       policy,
	}, nil
}

// OnPlaced Register an observer for the next Place calls. Earlier placements are not
// replayed.
func (o *Order[I]) OnPlaced(observer Observer) {
	if observer == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.observers = append(o.observers, observer)
}

// Place Price the order, notify all observers and return the confirmation.
// Every observer has returned before Place returns.
func (o *Order[I]) Place() Confirmation {
	total := o.Total()
	confirmation := Confirmation{
		ItemISBN: o.item.ISBN(),
		Quantity: o.quantity,
		Total:    total,
	}

	o.mu.Lock()
	observers := slices.Clone(o.observers)
	o.mu.Unlock()

	event := NewPlacedEvent(o.id, o.item.ISBN(), o.item.Title(), o.quantity, total)
	for _, observe := range observers {
		observe(event)
	}

	return confirmation
}

// Total Current price of the order; follows later price changes of the item
func (o *Order[I]) Total() shared.Money {
	return TotalPrice(o.item, o.quantity, o.subscription, o.policy)
}

// Describe Multi-line summary: header, item description and, for periodical
// subscriptions, the subscription length
func (o *Order[I]) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order #%d of %s, %d copies of:\n%s",
		o.id, o.createdAt.Format(DateLayout), o.quantity, o.item.Describe())

	if months, ok := o.subscription.Months(); ok {
		if _, periodical := catalog.Item(o.item).(*catalog.Periodical); periodical {
			fmt.Fprintf(&b, "\nSubscription for %d months", months)
		}
	}
	return b.String()
}

// ============================================================================
// Getters
// ============================================================================

func (o *Order[I]) Identity() int64            { return o.id }
func (o *Order[I]) ID() int64                  { return o.id }
func (o *Order[I]) Item() I                    { return o.item }
func (o *Order[I]) CatalogItem() catalog.Item  { return o.item }
func (o *Order[I]) CreatedAt() time.Time       { return o.createdAt }
func (o *Order[I]) Quantity() int              { return o.quantity }
func (o *Order[I]) Subscription() Subscription { return o.subscription }
func (o *Order[I]) Policy() PricingPolicy      { return o.policy }

var (
	_ Placed = (*Order[*catalog.Publication])(nil)
	_ Placed = (*Order[*catalog.Periodical])(nil)
)
