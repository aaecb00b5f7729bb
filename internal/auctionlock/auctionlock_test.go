package auctionlock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Lock on the same key is mutually exclusive; counter increments stay exact
func TestKeyedMutex_SameKeyExcludes(t *testing.T) {
	t.Parallel()

	km := New()
	counter := 0

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := km.Lock("auction1")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	require.Equal(t, workers, counter)
}

// Locks on different keys do not block each other
func TestKeyedMutex_DifferentKeysIndependent(t *testing.T) {
	t.Parallel()

	km := New()
	unlockA := km.Lock("auctionA")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("auctionB")
		unlockB()
		close(done)
	}()

	<-done // would deadlock if auctionB shared auctionA's mutex
}
