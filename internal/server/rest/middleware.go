package rest

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/userregistry/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	loggerKey       = "logger"
)

// requestLogger tags each request with an id (taken from X-Request-ID when
// the caller sends one) and writes an access log line once it completes.
func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		l := s.logger.With("request_id", id)
		c.Set(loggerKey, l)

		start := time.Now()
		c.Next()

		l.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

func (s *HTTPServer) recovery(c *gin.Context, recovered any) {
	logger(c).Error(c.Request.Context(), "panic in handler", "panic", recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgInternalServer})
}

func logger(c *gin.Context) logging.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(logging.Logger); ok {
			return l
		}
	}
	return logging.Nop{}
}
