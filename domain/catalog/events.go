package catalog

import (
	"time"

	"github.com/google/uuid"
)

// EventItemAdded Event name of ItemAddedEvent
const EventItemAdded = "catalog.item_added"

// ItemAddedEvent Raised when an item joins the catalog
type ItemAddedEvent struct {
	eventID    string
	isbn       string
	title      string
	kind       Kind
	occurredOn time.Time
}

func NewItemAddedEvent(item Item) *ItemAddedEvent {
	return &ItemAddedEvent{
		eventID:    uuid.NewString(),
		isbn:       item.ISBN(),
		title:      item.Title(),
		kind:       item.Kind(),
		occurredOn: time.Now(),
	}
}

func (e *ItemAddedEvent) EventID() string        { return e.eventID }
func (e *ItemAddedEvent) EventName() string      { return EventItemAdded }
func (e *ItemAddedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *ItemAddedEvent) GetAggregateID() string { return e.isbn }
func (e *ItemAddedEvent) ISBN() string           { return e.isbn }
func (e *ItemAddedEvent) Title() string          { return e.title }
func (e *ItemAddedEvent) Kind() Kind             { return e.kind }
