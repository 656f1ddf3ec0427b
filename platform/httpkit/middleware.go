// Package httpkit provides HTTP middleware infrastructure.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	// HeaderRequestID carries the request correlation id.
	HeaderRequestID = "X-Request-ID"
	// ContextRequestIDKey is the gin context key for the request id.
	ContextRequestIDKey = "requestID"

	// MsgNoToken is returned when a protected route is called without a bearer token.
	MsgNoToken = "Access denied, no token provided"

	msgTooManyRequests = "Too many requests, please try again later"
)

// Authenticator resolves a raw bearer token into a principal. Errors should
// be *apperr.Error values so their message reaches the client.
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (Principal, error)
}

// RequestID assigns a request id (reusing an inbound X-Request-ID) and
// stores it on both the gin context and the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)
		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequestLogger logs HTTP requests with timing. Errors attached through
// HandleError are logged with their cause.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		requestID := c.GetString(ContextRequestIDKey)

		log.HTTPRequest(c.Request.Method, path, status, float64(latency.Milliseconds()), c.ClientIP(), requestID)

		if status >= http.StatusInternalServerError {
			for _, ginErr := range c.Errors {
				log.HTTPError(c.Request.Method, path, status, ginErr.Err, requestID)
			}
		}
	}
}

// SecurityHeaders adds security headers to responses.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}

// IPRateLimiter manages per-IP rate limiters.
type IPRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
	log      *logger.Logger
}

// NewIPRateLimiter creates a new IP-based rate limiter.
func NewIPRateLimiter(r rate.Limit, burst int, log *logger.Logger) *IPRateLimiter {
	return &IPRateLimiter{
		rate:  r,
		burst: burst,
		log:   log,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	limiter, _ := i.limiters.LoadOrStore(ip, rate.NewLimiter(i.rate, i.burst))
	return limiter.(*rate.Limiter)
}

// RateLimit returns a middleware that rate limits by IP.
func (i *IPRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !i.getLimiter(ip).Allow() {
			if i.log != nil {
				i.log.RateLimitExceeded(ip, c.Request.URL.Path)
			}
			AbortWithError(c, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}
		c.Next()
	}
}

// AuthRateLimiter is a stricter rate limiter for register and login.
type AuthRateLimiter struct {
	*IPRateLimiter
}

// NewAuthRateLimiter allows 10 requests per minute per IP with a burst of 10.
func NewAuthRateLimiter(log *logger.Logger) *AuthRateLimiter {
	return &AuthRateLimiter{
		IPRateLimiter: NewIPRateLimiter(rate.Limit(10.0/60.0), 10, log),
	}
}

// AuthRequired returns middleware that resolves the bearer token into a
// principal and stores it on the context.
func AuthRequired(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			AbortWithError(c, http.StatusUnauthorized, MsgNoToken)
			return
		}

		principal, err := authn.Authenticate(c.Request.Context(), rawToken)
		if err != nil {
			if domainErr, isDomain := apperr.As(err); isDomain {
				AbortWithError(c, domainErr.HTTPStatus(), domainErr.Message)
				return
			}
			_ = c.Error(err)
			AbortWithError(c, http.StatusInternalServerError, msgInternalError)
			return
		}

		SetIdentity(c, principal)
		ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, principal.UserID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <t>" header.
func BearerToken(authHeader string) (string, bool) {
	rawToken, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return "", false
	}
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return "", false
	}
	return rawToken, true
}
