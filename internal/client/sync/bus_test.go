package sync

import (
	"testing"

	"github.com/potluck/recipebook/internal/models"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPublishMulticasts(t *testing.T) {
	bus := NewBus()

	var first, second []Event
	bus.Subscribe(func(e Event) { first = append(first, e) })
	bus.Subscribe(func(e Event) { second = append(second, e) })

	event := Event{Added: true, Recipe: models.Recipe{ID: primitive.NewObjectID(), Title: "Beef Stew"}}
	bus.Publish(event)

	require.Equal(t, []Event{event}, first)
	require.Equal(t, []Event{event}, second)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()

	var got []Event
	unsubscribe := bus.Subscribe(func(e Event) { got = append(got, e) })

	bus.Publish(Event{Added: true})
	unsubscribe()
	bus.Publish(Event{Added: false})

	require.Len(t, got, 1)
	require.True(t, got[0].Added)
}

func TestLateSubscriberSeesNothing(t *testing.T) {
	bus := NewBus()
	bus.Publish(Event{Added: true})

	var got []Event
	bus.Subscribe(func(e Event) { got = append(got, e) })

	require.Empty(t, got)
}
