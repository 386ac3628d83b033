package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/metrics"
)

const defaultNumShards = 16

// DefaultRateLimitExemptPaths are never rate limited so probes and scrapes
// keep working while a client is throttled.
var DefaultRateLimitExemptPaths = []string{"/healthz", "/readyz", "/metrics"}

// visitor is the fixed window of one client.
type visitor struct {
	tokens      int
	windowStart time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiterOption configures a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithShards sets the number of lock shards.
func WithShards(n int) RateLimiterOption {
	return func(rl *RateLimiter) {
		if n > 0 {
			rl.numShards = n
		}
	}
}

// WithExemptPaths replaces the paths that bypass the limiter.
func WithExemptPaths(paths ...string) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.exempt = make(map[string]struct{}, len(paths))
		for _, p := range paths {
			rl.exempt[p] = struct{}{}
		}
	}
}

// RateLimiter is a fixed-window limiter keyed by client IP. Visitors are
// spread over shards to keep lock contention low.
type RateLimiter struct {
	shards    []*rateLimiterShard
	numShards int
	rate      int
	window    time.Duration
	exempt    map[string]struct{}
	now       func() time.Time
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// NewRateLimiter allows rate requests per window for each client and starts
// the visitor cleanup loop.
func NewRateLimiter(rate int, window time.Duration, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		numShards: defaultNumShards,
		rate:      rate,
		window:    window,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
	WithExemptPaths(DefaultRateLimitExemptPaths...)(rl)
	for _, opt := range opts {
		opt(rl)
	}

	rl.shards = make([]*rateLimiterShard, rl.numShards)
	for i := range rl.shards {
		rl.shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) shard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(rl.numShards)]
}

// take consumes one token for identifier and reports when its window resets.
func (rl *RateLimiter) take(identifier string) (allowed bool, remaining int, reset time.Time) {
	shard := rl.shard(identifier)
	now := rl.now()

	shard.mu.Lock()
	defer shard.mu.Unlock()

	v, exists := shard.visitors[identifier]
	if !exists || now.Sub(v.windowStart) >= rl.window {
		v = &visitor{tokens: rl.rate, windowStart: now}
		shard.visitors[identifier] = v
	}
	reset = v.windowStart.Add(rl.window)

	if v.tokens <= 0 {
		return false, 0, reset
	}
	v.tokens--
	return true, v.tokens, reset
}

// RateLimit returns a middleware that limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := rl.exempt[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		allowed, remaining, reset := rl.take(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !allowed {
			metrics.RecordRateLimited(c.Request.Method)
			retryAfter := int(math.Ceil(reset.Sub(rl.now()).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictExpired()
		case <-rl.stopCh:
			return
		}
	}
}

// evictExpired drops visitors idle for more than two windows.
func (rl *RateLimiter) evictExpired() {
	threshold := rl.window * 2
	now := rl.now()

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, v := range shard.visitors {
			if now.Sub(v.windowStart) > threshold {
				delete(shard.visitors, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked visitors overall and per shard.
func (rl *RateLimiter) Stats() (totalVisitors int, perShard []int) {
	perShard = make([]int, rl.numShards)
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.visitors)
		totalVisitors += perShard[i]
		shard.mu.Unlock()
	}
	return totalVisitors, perShard
}
