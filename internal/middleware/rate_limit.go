package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/domain/dto"
	"github.com/guttosm/pizzeria-service/internal/i18n"
	"github.com/guttosm/pizzeria-service/internal/logger"
	"github.com/guttosm/pizzeria-service/internal/metrics"
)

const (
	defaultNumShards = 16
	sweepInterval    = time.Minute
)

// Rate limit headers sent on every limited route.
const (
	HeaderRateLimit     = "X-RateLimit-Limit"
	HeaderRateRemaining = "X-RateLimit-Remaining"
	HeaderRateReset     = "X-RateLimit-Reset"
)

// window is the fixed-window budget of one caller.
type window struct {
	remaining int
	resetAt   time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	windows map[string]*window
}

// decision is the outcome of one take.
type decision struct {
	allowed   bool
	remaining int
	resetAt   time.Time
}

// RateLimiter is a fixed-window limiter keyed by caller. Callers are spread
// over shards by FNV hash so unrelated sessions do not share a lock.
type RateLimiter struct {
	shards   []*limiterShard
	rate     int
	window   time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows rate requests per caller in every window.
func NewRateLimiter(rate int, win time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, win, defaultNumShards)
}

// NewShardedRateLimiter is NewRateLimiter with an explicit shard count.
// Non-positive counts fall back to 16.
func NewShardedRateLimiter(rate int, win time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	rl := &RateLimiter{
		shards: make([]*limiterShard, numShards),
		rate:   rate,
		window: win,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{windows: make(map[string]*window)}
	}

	go rl.sweep()
	return rl
}

func (rl *RateLimiter) shard(key string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// take spends one request of key's budget, opening a new window when the
// previous one has elapsed.
func (rl *RateLimiter) take(key string) decision {
	s := rl.shard(key)
	now := rl.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{remaining: rl.rate, resetAt: now.Add(rl.window)}
		s.windows[key] = w
	}
	if w.remaining <= 0 {
		return decision{resetAt: w.resetAt}
	}
	w.remaining--
	return decision{allowed: true, remaining: w.remaining, resetAt: w.resetAt}
}

// RateLimit limits by client IP. Used where no session exists yet: admin
// login and the tracker stream.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return rl.limit(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	})
}

// SessionRateLimit limits admins by username and customers by session id,
// falling back to the client IP. It must run after Session or AdminAuth.
func (rl *RateLimiter) SessionRateLimit() gin.HandlerFunc {
	return rl.limit(callerIdentifier)
}

func (rl *RateLimiter) limit(identify func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := identify(c)
		d := rl.take(key)

		c.Header(HeaderRateLimit, strconv.Itoa(rl.rate))
		c.Header(HeaderRateRemaining, strconv.Itoa(d.remaining))
		c.Header(HeaderRateReset, strconv.FormatInt(d.resetAt.Unix(), 10))

		if d.allowed {
			c.Next()
			return
		}

		scope, _, _ := strings.Cut(key, ":")
		metrics.RecordRateLimited(scope)

		wait := d.resetAt.Sub(rl.now())
		c.Header("Retry-After", strconv.Itoa(int(math.Max(1, math.Ceil(wait.Seconds())))))

		l := logger.ForRequest(GetRequestID(c), GetSessionID(c))
		l.Warn().
			Str("scope", scope).
			Str("path", c.Request.URL.Path).
			Dur("retry_after", wait).
			Msg("Rate limit exceeded")

		locale := i18n.GetLocale(c)
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			dto.NewError(dto.ErrCodeRateLimit, i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, locale)).
				WithRequestID(GetRequestID(c)))
	}
}

// callerIdentifier prefers the admin, then the session, then the client IP.
func callerIdentifier(c *gin.Context) string {
	if admin := GetAdminUsername(c); admin != "" {
		return "admin:" + admin
	}
	if id := GetSessionID(c); id != "" {
		return "session:" + id
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropExpired()
		case <-rl.stopCh:
			return
		}
	}
}

// dropExpired forgets callers whose window ended.
func (rl *RateLimiter) dropExpired() {
	now := rl.now()
	for _, s := range rl.shards {
		s.mu.Lock()
		for key, w := range s.windows {
			if !now.Before(w.resetAt) {
				delete(s.windows, key)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Tracked returns the number of callers with an open window.
func (rl *RateLimiter) Tracked() int {
	n := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		n += len(s.windows)
		s.mu.Unlock()
	}
	return n
}
