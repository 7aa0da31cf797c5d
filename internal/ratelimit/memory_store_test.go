package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_IncrementAndGet(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore(WithClock(func() time.Time { return now }))
	t.Cleanup(func() { _ = s.Close() })

	count, ttl, err := s.IncrementAndGet(context.Background(), "a", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, time.Minute, ttl)

	now = now.Add(20 * time.Second)
	count, ttl, err = s.IncrementAndGet(context.Background(), "a", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.Equal(t, 40*time.Second, ttl)
}

func TestMemoryStore_Cleanup(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore(WithClock(func() time.Time { return now }))
	t.Cleanup(func() { _ = s.Close() })

	_, _, err := s.IncrementAndGet(context.Background(), "short", time.Second)
	require.NoError(t, err)
	_, _, err = s.IncrementAndGet(context.Background(), "long", time.Hour)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	now = now.Add(time.Minute)
	s.cleanup()

	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_ConcurrentIncrements(t *testing.T) {
	s := NewMemoryStore(WithCleanupInterval(time.Hour))
	t.Cleanup(func() { _ = s.Close() })

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_, _, _ = s.IncrementAndGet(context.Background(), "same", time.Hour)
		}()
	}
	wg.Wait()

	count, _, err := s.IncrementAndGet(context.Background(), "same", time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, workers+1, count)
}

func TestMemoryStore_CloseTwice(t *testing.T) {
	s := NewMemoryStore()
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestMemoryStore_RunSweepsAndStops(t *testing.T) {
	var mu sync.Mutex
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	s := NewMemoryStore(WithClock(clock), WithCleanupInterval(5*time.Millisecond))
	_, _, err := s.IncrementAndGet(context.Background(), "k", time.Second)
	require.NoError(t, err)

	mu.Lock()
	now = now.Add(time.Minute)
	mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestMemoryStore_CloseStopsRun(t *testing.T) {
	s := NewMemoryStore(WithCleanupInterval(time.Hour))

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	require.NoError(t, s.Close())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Close")
	}
}
