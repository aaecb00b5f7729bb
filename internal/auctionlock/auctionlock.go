// Package auctionlock serializes the read-validate-write critical sections
// of bid acceptance, proxy execution and auction resolution, one mutex per
// auction so unrelated auctions never contend.
package auctionlock

import "sync"

// KeyedMutex hands out one mutex per key. Mutexes are created lazily and
// kept for the lifetime of the process; the number of auctions bounds the
// map size.
type KeyedMutex struct {
	locks sync.Map // key: auctionID -> *sync.Mutex
}

// New creates an empty KeyedMutex
func New() *KeyedMutex {
	return &KeyedMutex{}
}

// Lock acquires the mutex for the given key, blocking until it is free,
// and returns the unlock function.
func (k *KeyedMutex) Lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
