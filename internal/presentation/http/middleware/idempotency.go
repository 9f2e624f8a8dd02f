package middleware

import (
	"bytes"
	"time"

	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/entity"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// idempotencyKeyTTL is how long a processed key replays its response
const idempotencyKeyTTL = 24 * time.Hour

type bodyCapture struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a repeated Idempotency-Key
// header from the same user. Requests without the header pass through.
// Must run after AuthMiddleware.
func Idempotency(repo repository.IdempotencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			c.Next()
			return
		}

		userID, ok := c.Get("user_id")
		if !ok {
			c.Next()
			return
		}
		uid, ok := userID.(uuid.UUID)
		if !ok {
			c.Next()
			return
		}

		existing, err := repo.GetByKey(c.Request.Context(), key, uid)
		if err == nil && existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotent-Replay", "true")
			c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = capture

		c.Next()

		// Only successful responses are cached; failures may be retried
		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			_ = repo.Create(c.Request.Context(), &entity.IdempotencyKey{
				Key:          key,
				UserID:       uid,
				Endpoint:     c.Request.Method + " " + c.FullPath(),
				ResponseCode: status,
				ResponseBody: capture.body.String(),
				ExpiresAt:    time.Now().Add(idempotencyKeyTTL),
			})
		}
	}
}
