package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

// Visitor returns the limiter for the given remote address, creating
// one on first sight. 5 requests/sec, burst of 10.
func Visitor(addr string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, ok := visitors[addr]
	if !ok {
		limiter := rate.NewLimiter(5, 10)
		visitors[addr] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// StartCleanupLoop drops visitors idle for more than five minutes. It
// returns when ctx is done.
func StartCleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mu.Lock()
			for addr, v := range visitors {
				if time.Since(v.lastSeen) > 5*time.Minute {
					delete(visitors, addr)
				}
			}
			mu.Unlock()
		}
	}
}

// Reset clears all tracked visitors.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	visitors = make(map[string]*visitor)
}
