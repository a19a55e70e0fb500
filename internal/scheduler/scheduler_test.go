package scheduler

import (
	"testing"
	"time"
)

func TestNextTick(t *testing.T) {
	tests := []struct {
		name string
		now  string
		next string
	}{
		{"mid hour", "2020-09-01T10:30:00Z", "2020-09-01T11:00:00Z"},
		{"top of hour rolls forward", "2020-09-01T10:00:00Z", "2020-09-01T11:00:00Z"},
		{"just before the hour", "2020-09-01T10:59:59Z", "2020-09-01T11:00:00Z"},
		{"day boundary", "2020-09-01T23:30:00Z", "2020-09-02T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now, err := time.Parse(time.RFC3339, tt.now)
			if err != nil {
				t.Fatalf("parsing now: %v", err)
			}
			want, err := time.Parse(time.RFC3339, tt.next)
			if err != nil {
				t.Fatalf("parsing next: %v", err)
			}

			if got := NextTick(now); !got.Equal(want) {
				t.Errorf("NextTick(%v) = %v, want %v", now, got, want)
			}
		})
	}
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	s := New(func(now time.Time) {})
	s.Start()

	// Stopping twice must not panic
	s.Stop()
	s.Stop()
}

func TestFireIsolatesPanics(t *testing.T) {
	s := New(func(now time.Time) {
		panic("job exploded")
	})

	// A panicking job must not take down the schedule
	s.fire(time.Now())
}
