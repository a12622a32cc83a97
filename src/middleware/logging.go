package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"pokeforge/src/logx"
)

// RequestLogger logs one line per request, leveled by response status.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		event := logx.Logger().Info()
		if status >= 500 {
			event = logx.Logger().Error()
		} else if status >= 400 {
			event = logx.Logger().Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
