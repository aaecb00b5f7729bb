// Package events provides the in-process notification channel the core uses
// to tell observers about auction state changes. Publishing is
// fire-and-forget: the core never blocks on, or depends on, delivery.
package events

import (
	"sync"
	"time"
)

// Event types published by the core
const (
	TypeAuctionTransitioned = "auction_transitioned"
	TypeProxyBidsExecuted   = "proxy_bids_executed"
	TypeAuctionEnded        = "auction_ended"
)

// ExecutedBid describes one bid the proxy engine placed during a run
type ExecutedBid struct {
	BidderID string `json:"bidder_id"`
	Amount   int64  `json:"amount"`
}

// Event is a single broadcast notification. Fields beyond Type and
// AuctionID are populated depending on the event type.
type Event struct {
	Type       string        `json:"type"`
	AuctionID  string        `json:"auction_id"`
	NewStatus  string        `json:"new_status,omitempty"`
	WinnerID   string        `json:"winner_id,omitempty"`
	WinningBid int64         `json:"winning_bid,omitempty"`
	Executed   []ExecutedBid `json:"executed,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

const subscriberBuffer = 64

// Broadcaster fans events out to all current subscribers. A subscriber
// whose buffer is full silently misses events rather than slowing the core.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

// NewBroadcaster creates an empty Broadcaster
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new observer and returns its event channel along
// with an unsubscribe function. The channel is closed on unsubscribe.
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber without blocking
func (b *Broadcaster) Publish(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- event:
		default: // subscriber too slow, drop
		}
	}
}
