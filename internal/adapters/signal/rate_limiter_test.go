package signal

import (
	"testing"
	"time"
)

func TestClientRateLimiterBlocksOverLimit(t *testing.T) {
	rl := NewClientRateLimiter(2, time.Minute)

	if !rl.Allow("tok") {
		t.Fatal("first frame should be allowed")
	}
	if !rl.Allow("tok") {
		t.Fatal("second frame should be allowed")
	}
	if rl.Allow("tok") {
		t.Fatal("third frame within the window should be blocked")
	}
	// Budgets are per token.
	if !rl.Allow("other") {
		t.Fatal("a different token should have its own budget")
	}
}

func TestClientRateLimiterWindowSlides(t *testing.T) {
	rl := NewClientRateLimiter(1, 50*time.Millisecond)

	if !rl.Allow("tok") {
		t.Fatal("first frame should be allowed")
	}
	if rl.Allow("tok") {
		t.Fatal("second frame inside the window should be blocked")
	}
	time.Sleep(80 * time.Millisecond)
	if !rl.Allow("tok") {
		t.Fatal("frame after the window elapsed should be allowed")
	}
}
