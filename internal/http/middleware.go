package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// FaultResponse is the body returned for any unexpected internal fault. The
// details string stays short and generic; internals only reach the log.
type FaultResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Timestamp  string `json:"timestamp"`
}

func newFaultResponse(details string) FaultResponse {
	return FaultResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    "An unexpected error occurred",
		Details:    details,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware tags each request with an id, honoring one supplied by
// the caller so ids can be traced across hops.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString("request_id")
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"request_id": requestID(c),
		}).Info("request handled")
	}
}

// recoveryMiddleware is the outermost fault boundary: any panic escaping a
// handler is logged with its request id and converted into the generic 500
// body without leaking the panic value to the client.
func recoveryMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithFields(logrus.Fields{
					"request_id": requestID(c),
					"panic":      r,
				}).Error("recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, newFaultResponse("internal fault"))
			}
		}()
		c.Next()
	}
}
