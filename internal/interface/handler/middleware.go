package handler

import (
	"strconv"
	"time"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/usecase"
	"tourism-service/pkg/logger"
	"tourism-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	adminKey     = "admin"
	requestIDKey = "requestID"

	// RequestIDHeader carries the request id in and out
	RequestIDHeader = "X-Request-ID"
)

// AuthMiddleware guards admin routes with bearer tokens
type AuthMiddleware struct {
	auth      *usecase.AuthService
	responder *Responder
}

// NewAuthMiddleware creates an auth middleware
func NewAuthMiddleware(auth *usecase.AuthService, responder *Responder) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, responder: responder}
}

// Protect rejects requests without a valid token for an active admin.
// The resolved admin is stored on the context.
func (m *AuthMiddleware) Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := m.auth.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			m.responder.Fail(c, err)
			return
		}

		c.Set(adminKey, admin)
		c.Next()
	}
}

// RequestID reuses the caller's X-Request-ID or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog logs each request once and records request metrics
func AccessLog(log logger.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(elapsed.Seconds())
		if status >= 500 {
			m.ErrorsCount.WithLabelValues(route).Inc()
		}

		log.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", elapsed.String(),
			"requestID", c.GetString(requestIDKey))
	}
}

// currentAdmin returns the admin stored by Protect
func currentAdmin(c *gin.Context) *entity.Admin {
	if v, ok := c.Get(adminKey); ok {
		if admin, ok := v.(*entity.Admin); ok {
			return admin
		}
	}
	return nil
}

// actor identifies the authenticated admin for the audit trail
func actor(c *gin.Context) usecase.Actor {
	a := usecase.Actor{IP: c.ClientIP()}
	if admin := currentAdmin(c); admin != nil {
		a.AdminID = admin.ID.Hex()
	}
	return a
}
