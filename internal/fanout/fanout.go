// Package fanout delivers committed auction events to every subscriber of
// an auction. Delivery is best-effort: a slow subscriber drops events rather
// than blocking the publisher, and missed events are recoverable through the
// ledger's read path.
package fanout

import (
	"sync"

	model "playmarket/internal/models"
	"playmarket/utils"
)

// Subscription is one observer's view of a single auction's event stream.
// Events arrive on C in commit order; C is closed by Close.
type Subscription struct {
	C chan model.AuctionEvent

	auctionID string
	broker    *Broker
	closeOnce sync.Once
}

// Close detaches the subscription from the broker and closes C.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.broker.remove(s)
		close(s.C)
	})
}

// Broker fans committed auction events out to per-auction subscriber sets.
type Broker struct {
	mu     sync.RWMutex
	subs   map[string]map[*Subscription]struct{} // key: auctionID
	buffer int
}

// NewBroker creates a Broker whose subscriptions buffer up to buffer events.
func NewBroker(buffer int) *Broker {
	if buffer <= 0 {
		buffer = 1
	}
	return &Broker{
		subs:   make(map[string]map[*Subscription]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers an observer for one auction's events.
func (b *Broker) Subscribe(auctionID string) *Subscription {
	sub := &Subscription{
		C:         make(chan model.AuctionEvent, b.buffer),
		auctionID: auctionID,
		broker:    b,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[auctionID] == nil {
		b.subs[auctionID] = make(map[*Subscription]struct{})
	}
	b.subs[auctionID][sub] = struct{}{}
	return sub
}

func (b *Broker) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if set, ok := b.subs[sub.auctionID]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(b.subs, sub.auctionID)
		}
	}
}

// Publish delivers an event to every subscriber of its auction. Callers
// publish events for one auction in commit order (the bid processor holds
// the auction's write lock across commit and publish), so each subscriber
// observes that order. A subscriber whose buffer is full misses the event.
func (b *Broker) Publish(event model.AuctionEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs[event.AuctionID] {
		select {
		case sub.C <- event:
		default:
			utils.Warn("fanout: dropped event for slow subscriber", map[string]any{
				"auction_id": event.AuctionID,
				"type":       string(event.Type),
				"seq":        event.Seq,
			})
		}
	}
}

// SubscriberCount reports how many observers an auction currently has.
func (b *Broker) SubscriberCount(auctionID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[auctionID])
}
