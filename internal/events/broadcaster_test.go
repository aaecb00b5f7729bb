package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBroadcaster_DeliversToAllSubscribers(t *testing.T) {
	t.Parallel()

	b := NewBroadcaster()
	ch1, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel1()
	defer cancel2()

	b.Publish(Event{Type: TypeAuctionTransitioned, AuctionID: "auction1", NewStatus: "live"})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case got := <-ch:
			require.Equal(t, TypeAuctionTransitioned, got.Type)
			require.Equal(t, "auction1", got.AuctionID)
			require.False(t, got.OccurredAt.IsZero())
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestBroadcaster_UnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	cancel()
	cancel() // idempotent

	// channel is closed after unsubscribe
	_, open := <-ch
	require.False(t, open)

	// publishing after unsubscribe must not panic
	b.Publish(Event{Type: TypeAuctionEnded, AuctionID: "auction1"})
}

func TestBroadcaster_SlowSubscriberDoesNotBlock(t *testing.T) {
	t.Parallel()

	b := NewBroadcaster()
	_, cancel := b.Subscribe() // never drained
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			b.Publish(Event{Type: TypeProxyBidsExecuted, AuctionID: "auction1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
