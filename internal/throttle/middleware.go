package throttle

import (
	"log/slog"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/logging"
)

// Middleware rejects a caller with 429 once it used up its attempts on the
// route. Attempts are counted per client IP and route.
func Middleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := logging.FromContext(ctx)
		key := c.ClientIP() + ":" + c.FullPath()

		d, err := l.Allow(ctx, key)
		if err != nil {
			log.Warn("throttle unavailable, allowing request", slog.Any("error", err))
			c.Next()
			return
		}

		if !d.Allowed {
			retryAfter := int(math.Ceil(d.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			log.Warn("login attempts exceeded",
				slog.String("key", key),
				slog.Int("retry_after", retryAfter),
			)

			httperr.TooManyRequests(c, "too_many_attempts", "Muitas tentativas. Aguarde e tente novamente.")
			c.Abort()
			return
		}

		c.Next()
	}
}
