// Package keylock provides per-key mutual exclusion. The bid processor uses
// it to serialize the write path of a single auction, and the wallet service
// uses it to serialize balance mutations for a single user.
package keylock

import "sync"

// KeyLock hands out one mutex per string key. Locks are created on first
// use and kept for the lifetime of the KeyLock; the key space here (auction
// and user IDs) is bounded by the ledger's contents.
type KeyLock struct {
	locks sync.Map // map[string]*sync.Mutex
}

// New creates a new KeyLock instance.
func New() *KeyLock {
	return &KeyLock{}
}

func (kl *KeyLock) get(key string) *sync.Mutex {
	if v, ok := kl.locks.Load(key); ok {
		return v.(*sync.Mutex)
	}
	v, _ := kl.locks.LoadOrStore(key, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Lock acquires the mutex for key, blocking until it is available.
func (kl *KeyLock) Lock(key string) {
	kl.get(key).Lock()
}

// Unlock releases the mutex for key.
func (kl *KeyLock) Unlock(key string) {
	if v, ok := kl.locks.Load(key); ok {
		v.(*sync.Mutex).Unlock()
	}
}

// TryLock attempts to acquire the mutex for key without blocking.
func (kl *KeyLock) TryLock(key string) bool {
	return kl.get(key).TryLock()
}

// WithLock runs fn while holding the mutex for key.
func (kl *KeyLock) WithLock(key string, fn func() error) error {
	kl.Lock(key)
	defer kl.Unlock(key)
	return fn()
}

// WithOrderedLocks runs fn while holding the mutexes for both keys,
// acquired in lexicographic order so two concurrent calls with the same
// pair of keys in either order cannot deadlock.
func (kl *KeyLock) WithOrderedLocks(a, b string, fn func() error) error {
	first, second := a, b
	if second < first {
		first, second = second, first
	}
	kl.Lock(first)
	defer kl.Unlock(first)
	if second != first {
		kl.Lock(second)
		defer kl.Unlock(second)
	}
	return fn()
}
