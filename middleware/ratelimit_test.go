package middleware

import (
	"testing"
	"time"
)

func TestIPRateLimiter(t *testing.T) {
	t.Run("allows up to the limit inside the window", func(t *testing.T) {
		rl := NewIPRateLimiter(3, time.Minute)
		for i := 0; i < 3; i++ {
			if !rl.Allow("1.2.3.4") {
				t.Fatalf("request %d should be allowed", i+1)
			}
		}
		if rl.Allow("1.2.3.4") {
			t.Error("request over the limit should be denied")
		}
	})

	t.Run("limits are per ip", func(t *testing.T) {
		rl := NewIPRateLimiter(1, time.Minute)
		if !rl.Allow("1.1.1.1") {
			t.Fatal("first ip should be allowed")
		}
		if !rl.Allow("2.2.2.2") {
			t.Error("a different ip has its own budget")
		}
	})

	t.Run("old requests age out of the window", func(t *testing.T) {
		rl := NewIPRateLimiter(1, 10*time.Millisecond)
		if !rl.Allow("3.3.3.3") {
			t.Fatal("first request should be allowed")
		}
		time.Sleep(20 * time.Millisecond)
		if !rl.Allow("3.3.3.3") {
			t.Error("request after the window should be allowed")
		}
	})
}
