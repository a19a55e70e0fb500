package commands

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"seconds only", 42 * time.Second, "0m 42s"},
		{"minutes", 5*time.Minute + 3*time.Second, "5m 3s"},
		{"hours", 2*time.Hour + 15*time.Minute, "2h 15m 0s"},
		{"days", 49*time.Hour + 30*time.Minute + 5*time.Second, "2d 1h 30m 5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDuration(tt.d); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
