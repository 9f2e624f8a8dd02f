package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/appdotbuilder/pos-system-9aa7/internal/config"
	"github.com/appdotbuilder/pos-system-9aa7/internal/presentation/http/dto/response"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// userRateLimiter keeps one token bucket per authenticated user
type userRateLimiter struct {
	mu       sync.Mutex
	limiters map[uuid.UUID]*limiterEntry
	limit    rate.Limit
	burst    int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newUserRateLimiter(requests, durationSeconds int) *userRateLimiter {
	rl := &userRateLimiter{
		limiters: make(map[uuid.UUID]*limiterEntry),
		limit:    rate.Limit(float64(requests) / float64(durationSeconds)),
		burst:    requests,
	}
	go rl.cleanup()
	return rl
}

func (rl *userRateLimiter) get(userID uuid.UUID) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[userID]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[userID] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// cleanup evicts buckets idle for more than 10 minutes
func (rl *userRateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)

		rl.mu.Lock()
		for userID, entry := range rl.limiters {
			if time.Since(entry.lastSeen) > 10*time.Minute {
				delete(rl.limiters, userID)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimiter limits requests per authenticated user. Must run after
// AuthMiddleware so the user id is in the context.
func RateLimiter(cfg *config.RateLimitConfig) gin.HandlerFunc {
	rl := newUserRateLimiter(cfg.Requests, cfg.Duration)

	return func(c *gin.Context) {
		userID, ok := c.Get("user_id")
		if !ok {
			c.Next()
			return
		}

		id, ok := userID.(uuid.UUID)
		if !ok {
			c.Next()
			return
		}

		if !rl.get(id).Allow() {
			response.Error(c, apperror.NewAppError(http.StatusTooManyRequests, "Too many requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}
