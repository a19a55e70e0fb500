package moderation

import (
	"sync"
	"testing"
	"time"
)

func TestClockEnforcesCooldown(t *testing.T) {
	clock := NewClock()
	cooldown := 30 * time.Second
	base := time.Unix(1000, 0)

	// t=0: first warning fires and sets the clock
	if !clock.TryAcquire("chan", cooldown, base) {
		t.Fatal("first TryAcquire should succeed")
	}

	// t=10: inside the window, no warning, clock unchanged
	if clock.TryAcquire("chan", cooldown, base.Add(10*time.Second)) {
		t.Fatal("TryAcquire inside the cooldown window should fail")
	}
	if last, _ := clock.Last("chan"); !last.Equal(base) {
		t.Errorf("Last = %v, want %v (unchanged by blocked attempt)", last, base)
	}

	// t=31: window has elapsed, warning fires and resets the clock
	at31 := base.Add(31 * time.Second)
	if !clock.TryAcquire("chan", cooldown, at31) {
		t.Fatal("TryAcquire after the cooldown window should succeed")
	}
	if last, _ := clock.Last("chan"); !last.Equal(at31) {
		t.Errorf("Last = %v, want %v", last, at31)
	}
}

func TestClockChannelsAreIndependent(t *testing.T) {
	clock := NewClock()
	cooldown := 30 * time.Second
	now := time.Unix(1000, 0)

	if !clock.TryAcquire("chan-a", cooldown, now) {
		t.Fatal("chan-a should acquire")
	}

	// A warning in one channel never blocks another
	if !clock.TryAcquire("chan-b", cooldown, now) {
		t.Fatal("chan-b should acquire independently of chan-a")
	}
}

func TestClockConcurrentAcquireIsSingleWinner(t *testing.T) {
	clock := NewClock()
	cooldown := 30 * time.Second
	now := time.Unix(1000, 0)

	const attempts = 64
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if clock.TryAcquire("chan", cooldown, now) {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Near-simultaneous messages in the same channel produce one warning
	if winners != 1 {
		t.Errorf("winners = %d, want 1", winners)
	}
}
