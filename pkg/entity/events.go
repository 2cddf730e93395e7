package entity

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Broker fans entity events out to subscribers. Slow subscribers miss
// events instead of blocking the publisher.
type Broker struct {
	mu          sync.Mutex
	subscribers []chan Event
	buffer      int
}

// NewBroker creates a broker whose subscriber channels hold buffer events.
func NewBroker(buffer int) *Broker {
	if buffer <= 0 {
		buffer = 16
	}
	return &Broker{buffer: buffer}
}

// Subscribe returns a channel that receives future events.
func (b *Broker) Subscribe() chan Event {
	ch := make(chan Event, b.buffer)
	b.mu.Lock()
	b.subscribers = append(b.subscribers, ch)
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a subscription. Unknown channels are ignored.
func (b *Broker) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			close(ch)
			return
		}
	}
}

// Publish delivers ev to every subscriber with room in its buffer.
func (b *Broker) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subscribers {
		select {
		case ch <- ev:
		default:
			log.Warn().Str("type", ev.Type).Str("id", ev.ID).Msg("Dropping event for slow subscriber")
		}
	}
}

// Close closes all subscriptions.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subscribers {
		close(ch)
	}
	b.subscribers = nil
}
