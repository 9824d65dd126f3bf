package middleware

import (
	"context"
	"math"
	"strconv"
	"sync"
	"time"

	"carmarket/config"
	deliverycontext "carmarket/internal/delivery/context"
	domainerrors "carmarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultMessagesPerMinute = 20
	defaultMessageBurst      = 5

	limiterIdleTTL  = 10 * time.Minute
	janitorInterval = 5 * time.Minute
)

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-user token bucket. Callers without a user id share the "anonymous" bucket.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*userLimiter

	idleTTL time.Duration
	done    chan struct{}
	stopped sync.WaitGroup
	once    sync.Once
}

// RateLimiterParams holds dependencies for the message rate limiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
}

// NewMessageRateLimiter builds the posting limiter from marketplace config and stops it with the app.
func NewMessageRateLimiter(params RateLimiterParams) *RateLimiter {
	perMinute := defaultMessagesPerMinute
	burst := defaultMessageBurst
	if mp := params.Config.Marketplace; mp != nil {
		if mp.MessagesPerMinute > 0 {
			perMinute = mp.MessagesPerMinute
		}
		if mp.MessageBurst > 0 {
			burst = mp.MessageBurst
		}
	}

	limiter := NewRateLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst, limiterIdleTTL, janitorInterval)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			limiter.Stop()

			return nil
		},
	})

	return limiter
}

// NewRateLimiter starts a janitor that forgets users idle for longer than idleTTL.
func NewRateLimiter(limit rate.Limit, burst int, idleTTL, interval time.Duration) *RateLimiter {
	l := &RateLimiter{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*userLimiter),
		idleTTL:  idleTTL,
		done:     make(chan struct{}),
	}

	l.stopped.Add(1)
	go l.janitor(interval)

	return l
}

func (l *RateLimiter) janitor(interval time.Duration) {
	defer l.stopped.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case now := <-ticker.C:
			l.sweep(now)
		}
	}
}

func (l *RateLimiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > l.idleTTL {
			delete(l.limiters, key)
		}
	}
}

// Allow takes one token from key's bucket.
func (l *RateLimiter) Allow(key string) bool {
	_, ok := l.take(key)

	return ok
}

// take returns how long key must wait for its next token when the bucket is
// empty. A refused call leaves the bucket untouched.
func (l *RateLimiter) take(key string) (time.Duration, bool) {
	l.mu.Lock()
	entry, ok := l.limiters[key]
	if !ok {
		entry = &userLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	l.mu.Unlock()

	reservation := entry.limiter.Reserve()
	if !reservation.OK() {
		return l.refillInterval(), false
	}
	if delay := reservation.Delay(); delay > 0 {
		reservation.Cancel()

		return delay, false
	}

	return 0, true
}

func (l *RateLimiter) refillInterval() time.Duration {
	if l.limit <= 0 || l.limit == rate.Inf {
		return time.Second
	}

	return time.Duration(float64(time.Second) / float64(l.limit))
}

// retryAfter renders wait as whole seconds, rounded up and never below one.
func retryAfter(wait time.Duration) string {
	return strconv.Itoa(max(1, int(math.Ceil(wait.Seconds()))))
}

// Stop ends the janitor and waits for it to exit.
func (l *RateLimiter) Stop() {
	l.once.Do(func() {
		close(l.done)
	})
	l.stopped.Wait()
}

// Limit rejects the request with 429 once the caller's bucket is empty.
func (l *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key, ok := deliverycontext.GetUserID(c)
		if !ok {
			key = "anonymous"
		}

		if wait, ok := l.take(key); !ok {
			c.Response().Header().Set("Retry-After", retryAfter(wait))

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
