package transport

import (
	"testing"
	"time"
)

func TestBackoffBounds(t *testing.T) {
	base := 100 * time.Millisecond
	max := 2 * time.Second

	for attempt := 0; attempt < 12; attempt++ {
		ceiling := base << attempt
		if ceiling <= 0 || ceiling > max {
			ceiling = max
		}
		for i := 0; i < 100; i++ {
			d := backoff(attempt, base, max)
			if d < 0 || d >= ceiling {
				t.Fatalf("attempt %d: backoff %s outside [0, %s)", attempt, d, ceiling)
			}
		}
	}
}

func TestBackoffNegativeAttempt(t *testing.T) {
	d := backoff(-5, 100*time.Millisecond, time.Second)
	if d < 0 || d >= 100*time.Millisecond {
		t.Fatalf("backoff %s outside [0, 100ms)", d)
	}
}

func TestBackoffLargeAttemptCapped(t *testing.T) {
	max := 5 * time.Second
	for i := 0; i < 100; i++ {
		if d := backoff(60, time.Second, max); d >= max {
			t.Fatalf("backoff %s not capped at %s", d, max)
		}
	}
}
