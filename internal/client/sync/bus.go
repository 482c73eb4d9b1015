// Package sync carries favorite-toggle events between simultaneously
// visible views so a toggle in one view updates the others without a
// network refetch.
package sync

import (
	"sync"

	"github.com/google/uuid"
	"github.com/potluck/recipebook/internal/models"
)

// Event is a single favorite toggle. Added reports whether the recipe
// was added to or removed from favorites.
type Event struct {
	Added  bool
	Recipe models.Recipe
}

// Bus is an in-process broadcast channel. Delivery is synchronous and
// there is no replay: a subscriber only sees events published while it
// is subscribed, and must rely on its own initial fetch for anything
// earlier.
type Bus struct {
	mu   sync.Mutex
	subs map[uuid.UUID]func(Event)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[uuid.UUID]func(Event))}
}

// Subscribe registers fn and returns the unsubscribe handle. Views call
// this on mount and must call the returned function on teardown.
func (b *Bus) Subscribe(fn func(Event)) func() {
	id := uuid.New()

	b.mu.Lock()
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish multicasts the event to every current subscriber.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
