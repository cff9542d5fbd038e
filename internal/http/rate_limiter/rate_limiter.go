package rate_limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Visitors hands out one token bucket per client address.
type Visitors struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	visitors map[string]*clientLimiter
}

func NewVisitors(limit rate.Limit, burst int) *Visitors {
	return &Visitors{
		limit:    limit,
		burst:    burst,
		visitors: make(map[string]*clientLimiter),
	}
}

func (v *Visitors) Get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	c, exists := v.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(v.limit, v.burst)
		v.visitors[ip] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

// Allow reports whether ip may make a request now.
func (v *Visitors) Allow(ip string) bool {
	return v.Get(ip).Allow()
}

// Cleanup forgets visitors idle for longer than maxIdle.
func (v *Visitors) Cleanup(maxIdle time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for ip, c := range v.visitors {
		if time.Since(c.lastSeen) > maxIdle {
			delete(v.visitors, ip)
		}
	}
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (v *Visitors) RunCleanup(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.Cleanup(maxIdle)
		}
	}
}

func (v *Visitors) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visitors)
}

func (v *Visitors) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visitors = make(map[string]*clientLimiter)
}
