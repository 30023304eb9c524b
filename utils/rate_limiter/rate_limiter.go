package rate_limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type keyedEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter keeps one token bucket per key (client IP or viewer).
type KeyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*keyedEntry
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

func NewKeyedLimiter(r rate.Limit, burst int, idleTTL time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		limiters: make(map[string]*keyedEntry),
		rate:     r,
		burst:    burst,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// PerMinute builds a limit of n events per minute.
func PerMinute(n int) rate.Limit {
	return rate.Every(time.Minute / time.Duration(n))
}

func (k *KeyedLimiter) limiterFor(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	if e, ok := k.limiters[key]; ok {
		e.lastSeen = k.now()
		return e.limiter
	}

	l := rate.NewLimiter(k.rate, k.burst)
	k.limiters[key] = &keyedEntry{limiter: l, lastSeen: k.now()}
	return l
}

// Allow consumes a token for key. When none is left it returns false and the
// delay until the next token.
func (k *KeyedLimiter) Allow(key string) (bool, time.Duration) {
	l := k.limiterFor(key)
	now := k.now()
	r := l.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Second
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Sweep drops keys idle for longer than the TTL.
func (k *KeyedLimiter) Sweep() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	removed := 0
	cutoff := k.now().Add(-k.idleTTL)
	for key, e := range k.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(k.limiters, key)
			removed++
		}
	}
	return removed
}

// Len is the number of tracked keys.
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}

// Run sweeps on every interval until ctx is done.
func (k *KeyedLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			k.Sweep()
		}
	}
}
