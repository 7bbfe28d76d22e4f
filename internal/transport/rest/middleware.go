package rest

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"legalease/internal/domain"
)

const (
	authorizationHeader = "Authorization"
	principalCtx        = "principal"
)

func (h *Handler) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger := h.logger.With(
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
		)

		if status >= 500 {
			logger.Error("server error")
		} else if status >= 400 {
			logger.Warn("client error")
		} else {
			logger.Info("request processed")
		}
	}
}

func (h *Handler) errorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			h.logger.Error("request error", zap.String("path", c.FullPath()), zap.Error(err.Err))
		}
	}
}

// corsMiddleware allows credentialed requests from the configured origins so
// the browser sends the auth cookie.
func (h *Handler) corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     h.config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept", "Origin", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}

func (h *Handler) bodyLimitMiddleware() gin.HandlerFunc {
	limit := int64(h.config.HTTP.MaxBodyMB) << 20
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

// ipLimiter hands out one token bucket per client IP.
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newIPLimiter(requestsPerMinute, burst int) *ipLimiter {
	return &ipLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(requestsPerMinute) / 60),
		burst:    burst,
	}
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

func (h *Handler) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.limiter.get(c.ClientIP()).Allow() {
			errorResponse(c, http.StatusTooManyRequests, "too many requests")
			return
		}
		c.Next()
	}
}

// requireRole authenticates the request from the auth cookie or a Bearer
// header and rejects principals whose role is not in roles.
func (h *Handler) requireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := h.requestToken(c)
		if token == "" {
			unauthorizedResponse(c)
			return
		}

		principal, err := h.services.Auth.ParseToken(c.Request.Context(), token)
		if err != nil {
			h.handleError(c, err)
			return
		}

		allowed := false
		for _, role := range roles {
			if principal.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			forbiddenResponse(c)
			return
		}

		c.Set(principalCtx, principal)
		c.Next()
	}
}

func (h *Handler) requestToken(c *gin.Context) string {
	if cookie, err := c.Cookie(h.config.JWT.CookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader(authorizationHeader)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != "Bearer" {
		return ""
	}
	return strings.TrimSpace(token)
}

func getPrincipal(c *gin.Context) (domain.Principal, bool) {
	value, exists := c.Get(principalCtx)
	if !exists {
		return domain.Principal{}, false
	}

	principal, ok := value.(domain.Principal)
	return principal, ok
}
