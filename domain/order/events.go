package order

import (
	"strconv"
	"time"

	"bookshop/domain/shared"

	"github.com/google/uuid"
)

// EventOrderPlaced Event name of PlacedEvent
const EventOrderPlaced = "order.placed"

// PlacedEvent Notification payload delivered to order observers
type PlacedEvent struct {
	eventID    string
	orderID    int64
	itemISBN   string
	itemTitle  string
	quantity   int
	total      shared.Money
	occurredOn time.Time
}

func NewPlacedEvent(orderID int64, itemISBN, itemTitle string, quantity int, total shared.Money) *PlacedEvent {
	return &PlacedEvent{
		eventID:    uuid.NewString(),
		orderID:    orderID,
		itemISBN:   itemISBN,
		itemTitle:  itemTitle,
		quantity:   quantity,
		total:      total,
		occurredOn: time.Now(),
	}
}

func (e *PlacedEvent) EventID() string        { return e.eventID }
func (e *PlacedEvent) EventName() string      { return EventOrderPlaced }
func (e *PlacedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *PlacedEvent) GetAggregateID() string { return strconv.FormatInt(e.orderID, 10) }
func (e *PlacedEvent) OrderID() int64         { return e.orderID }
func (e *PlacedEvent) ItemISBN() string       { return e.itemISBN }
func (e *PlacedEvent) ItemTitle() string      { return e.itemTitle }
func (e *PlacedEvent) Quantity() int          { return e.quantity }
func (e *PlacedEvent) Total() shared.Money    { return e.total }

var _ shared.DomainEvent = (*PlacedEvent)(nil)
