package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

const defaultIdleTimeout = time.Minute * 5

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps a token bucket per client.
// Buckets of clients that have been quiet for longer than the idle timeout are dropped.
type Limiter struct {
	mutex       sync.Mutex
	visitors    map[string]*visitor
	limit       rate.Limit
	burst       int
	idleTimeout time.Duration
	prunedAt    time.Time
	clock       clockwork.Clock
	onLimit     func(*gin.Context)
}

type Option func(*Limiter)

func WithClock(clock clockwork.Clock) Option {
	return func(l *Limiter) {
		l.clock = clock
	}
}

func WithIdleTimeout(timeout time.Duration) Option {
	return func(l *Limiter) {
		l.idleTimeout = timeout
	}
}

// WithOnLimit sets a hook called for every rejected request.
func WithOnLimit(fn func(*gin.Context)) Option {
	return func(l *Limiter) {
		l.onLimit = fn
	}
}

// New creates a limiter allowing rps requests per second with the given burst.
// A non-positive rps disables limiting.
func New(rps float64, burst int, opts ...Option) *Limiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	l := &Limiter{
		visitors:    make(map[string]*visitor),
		limit:       limit,
		burst:       burst,
		idleTimeout: defaultIdleTimeout,
		clock:       clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.prunedAt = l.clock.Now()
	return l
}

func (l *Limiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mutex.Lock()
	defer l.mutex.Unlock()

	if now.Sub(l.prunedAt) >= l.idleTimeout {
		l.prune(now)
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

func (l *Limiter) prune(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.idleTimeout {
			delete(l.visitors, key)
		}
	}
	l.prunedAt = now
}

// Len reports the number of tracked clients.
func (l *Limiter) Len() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return len(l.visitors)
}

// Middleware rejects requests over the limit with 429, keyed by the client IP.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		if l.onLimit != nil {
			l.onLimit(c)
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
	}
}
