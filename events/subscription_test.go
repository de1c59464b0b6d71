package events

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionManager_Emit(t *testing.T) {
	sm := NewSubscriptionManager()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	subscriberCount := 5
	received := make([]atomic.Bool, subscriberCount)

	for i := 0; i < subscriberCount; i++ {
		sub := sm.Subscribe()
		wg.Add(1)
		go func(sub ISubscription, idx int) {
			defer wg.Done()
			select {
			case <-sub.Chan():
				received[idx].Store(true)
			case <-time.After(time.Second):
			}
		}(sub, i)
	}

	sm.Emit(ctx)
	wg.Wait()

	for i := range received {
		require.Truef(t, received[i].Load(), "subscriber %d did not receive notification", i)
	}
	assert.Equal(t, subscriberCount, sm.Count())
}

func TestSubscriptionManager_MultipleEmitsCollapse(t *testing.T) {
	sm := NewSubscriptionManager()
	sub := sm.Subscribe()
	defer sub.Cancel()

	sm.Emit(context.Background())
	sm.Emit(context.Background())
	sm.Emit(context.Background())

	var received int
	for done := false; !done; {
		select {
		case <-sub.Chan():
			received++
		default:
			done = true
		}
	}
	assert.Equal(t, 1, received)
}

func TestSubscription_CancelIsIdempotent(t *testing.T) {
	sm := NewSubscriptionManager()
	sub := sm.Subscribe()

	sub.Cancel()
	sub.Cancel()

	_, ok := <-sub.Chan()
	assert.False(t, ok)
	assert.Equal(t, 0, sm.Count())

	// emitting with no subscribers must not panic
	sm.Emit(context.Background())
}

func TestSubscription_Watch(t *testing.T) {
	sm := NewSubscriptionManager()

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	sub := sm.Subscribe().Watch(ctx, func() { calls.Add(1) }, true)
	assert.Equal(t, int32(1), calls.Load())

	sm.Emit(context.Background())
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("watch goroutine did not exit")
	}
	assert.Equal(t, 0, sm.Count())
}

func TestSubscriptionManager_Close(t *testing.T) {
	sm := NewSubscriptionManager()

	sub := sm.Subscribe().Watch(context.Background(), func() {}, false)
	sm.Close()

	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("watch goroutine did not exit after Close")
	}

	late := sm.Subscribe()
	_, ok := <-late.Chan()
	assert.False(t, ok, "subscriptions after Close start closed")

	late.Cancel()
	sm.Close()
}
