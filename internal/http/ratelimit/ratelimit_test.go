package ratelimit

import "testing"

func TestVisitorBurstThenDeny(t *testing.T) {
	t.Cleanup(Reset)

	limiter := Visitor("203.0.113.7")
	allowed := 0
	for i := 0; i < 20; i++ {
		if limiter.Allow() {
			allowed++
		}
	}
	if allowed < 10 || allowed >= 20 {
		t.Errorf("expected roughly the burst of 10 to pass, got %d", allowed)
	}
}

func TestVisitorIsPerAddress(t *testing.T) {
	t.Cleanup(Reset)

	a := Visitor("203.0.113.1")
	b := Visitor("203.0.113.2")
	if a == b {
		t.Error("expected distinct limiters per address")
	}
	if got := Visitor("203.0.113.1"); got != a {
		t.Error("expected the same limiter on repeat visits")
	}
}
