package shared

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	id          string
	name        string
	aggregateID string
	occurredOn  time.Time
}

func (e testEvent) EventID() string        { return e.id }
func (e testEvent) EventName() string      { return e.name }
func (e testEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e testEvent) GetAggregateID() string { return e.aggregateID }

func newTestEvent(name string) testEvent {
	return testEvent{id: "evt-1", name: name, aggregateID: "42", occurredOn: time.Now()}
}

func TestEventBusRunsHandlersInOrder(t *testing.T) {
	bus := NewEventBus()
	var calls []string

	require.NoError(t, bus.Subscribe("order.placed", NewFuncHandler("a", func(DomainEvent) error {
		calls = append(calls, "a")
		return nil
	})))
	require.NoError(t, bus.Subscribe("order.placed", NewFuncHandler("b", func(DomainEvent) error {
		calls = append(calls, "b")
		return nil
	})))

	require.NoError(t, bus.Publish(newTestEvent("order.placed")))
	assert.Equal(t, []string{"a", "b"}, calls)

	history := bus.GetPublishHistory()
	require.Len(t, history, 1)
	assert.True(t, history[0].Success)
	assert.Equal(t, "evt-1", history[0].EventID)
}

func TestEventBusJoinsHandlerErrors(t *testing.T) {
	bus := NewEventBus()
	boom := errors.New("boom")
	var reached bool

	require.NoError(t, bus.Subscribe("order.placed", NewFuncHandler("failing", func(DomainEvent) error {
		return boom
	})))
	require.NoError(t, bus.Subscribe("order.placed", NewFuncHandler("after", func(DomainEvent) error {
		reached = true
		return nil
	})))

	err := bus.Publish(newTestEvent("order.placed"))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, reached, "later handlers still run")
	assert.False(t, bus.GetPublishHistory()[0].Success)
}

func TestEventBusSubscribeRules(t *testing.T) {
	bus := NewEventBus()
	h := NewFuncHandler("dup", func(DomainEvent) error { return nil })

	require.NoError(t, bus.Subscribe("x", h))
	assert.Error(t, bus.Subscribe("x", h), "duplicate handler name")
	assert.NoError(t, bus.Subscribe("y", h), "same handler on another event")
	assert.Error(t, bus.Subscribe("", h))
	assert.Error(t, bus.Subscribe("x", nil))

	require.NoError(t, bus.Unsubscribe("x", h))
	assert.NoError(t, bus.Subscribe("x", h), "resubscribe after unsubscribe")
}

func TestEventBusValidatesEvents(t *testing.T) {
	bus := NewEventBus()

	assert.Error(t, bus.Publish(nil))
	assert.Error(t, bus.Publish(testEvent{name: "x", occurredOn: time.Now()}), "missing aggregate id")
	assert.Error(t, bus.Publish(testEvent{name: "x", aggregateID: "1"}), "zero time")

	require.NoError(t, bus.Publish(newTestEvent("nobody.listens")))
	assert.Equal(t, "no handlers registered for this event", bus.GetPublishHistory()[0].Message)
}

func TestEventBusHistoryIsBounded(t *testing.T) {
	bus := NewEventBus()
	for i := 0; i < maxPublishHistory+10; i++ {
		require.NoError(t, bus.Publish(newTestEvent("tick")))
	}
	assert.Len(t, bus.GetPublishHistory(), maxPublishHistory)
}
