package keylock

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test that locks on the same key exclude each other while locks on
// different keys do not interfere
func TestKeyLock_MutualExclusionPerKey(t *testing.T) {
	t.Parallel()

	kl := New()
	concurrentCount := 100
	numKeys := 4
	// One slot per key; same-key goroutines are serialized by that key's
	// lock, different keys write distinct slots.
	counters := make([]int, numKeys)
	var wg sync.WaitGroup

	for i := 0; i < concurrentCount; i++ {
		wg.Add(1)
		slot := i % numKeys
		key := fmt.Sprintf("key-%d", slot)
		go func() {
			defer wg.Done()
			kl.Lock(key)
			defer kl.Unlock(key)
			counters[slot]++
		}()
	}
	wg.Wait()

	for slot, n := range counters {
		require.Equal(t, concurrentCount/numKeys, n, "key-%d", slot)
	}
}

// Test TryLock
func TestKeyLock_TryLock(t *testing.T) {
	t.Parallel()

	kl := New()

	require.True(t, kl.TryLock("key1"))
	require.False(t, kl.TryLock("key1"))

	// A different key is unaffected
	require.True(t, kl.TryLock("key2"))

	kl.Unlock("key1")
	require.True(t, kl.TryLock("key1"))
}

// Test WithLock
func TestKeyLock_WithLock(t *testing.T) {
	t.Parallel()

	kl := New()

	wantErr := errors.New("boom")
	err := kl.WithLock("key1", func() error {
		require.False(t, kl.TryLock("key1"))
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	// The lock is released after fn returns, even on error
	require.True(t, kl.TryLock("key1"))
	kl.Unlock("key1")
}

// Test that WithOrderedLocks cannot deadlock when callers pass the same
// pair of keys in opposite orders
func TestKeyLock_WithOrderedLocks(t *testing.T) {
	t.Parallel()

	kl := New()
	concurrentCount := 100
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < concurrentCount; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			a, b := "alice", "bob"
			if i%2 == 1 {
				a, b = b, a
			}
			err := kl.WithOrderedLocks(a, b, func() error {
				counter++
				return nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, concurrentCount, counter)

	// Same key on both sides must not self-deadlock
	err := kl.WithOrderedLocks("alice", "alice", func() error { return nil })
	require.NoError(t, err)
}
