package rest

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/recipesearch/recipesearch/internal/common"
	"github.com/recipesearch/recipesearch/internal/server/models"
)

const (
	ctxKeyRequestID = "request_id"
	ctxKeySession   = "session"
)

// recovery turns a panic into a 500 response.
func (s *HTTPServer) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.metrics.panics.Inc()
		s.logger.Error(c.Request.Context(), "panic recovered",
			"error", fmt.Sprint(recovered),
			"request_id", requestID(c),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": common.ErrorInternal.Error()})
	})
}

// requestIDMiddleware keeps a valid incoming X-Request-Id or generates one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIDHeaderName)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header(common.RequestIDHeaderName, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(ctxKeyRequestID)
}

func (s *HTTPServer) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", requestID(c),
		)
	}
}

// cors allows credentialed requests from the configured origins. A "*" entry
// reflects whatever origin the browser sent.
func (s *HTTPServer) cors() gin.HandlerFunc {
	allowAll := slices.Contains(s.allowedOrigins, "*")
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || slices.Contains(s.allowedOrigins, origin)) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, X-Requested-With, X-Request-Id")
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requireSession resolves the session cookie and aborts with 401 when there
// is none. Mutating endpoints answer with a {"success": false} body.
func (s *HTTPServer) requireSession(successShape bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := s.svc.Sessions.Resolve(c.Request.Context(), s.sessionToken(c))
		if err != nil {
			if !errors.Is(err, common.ErrorUnauthorized) {
				s.logger.Error(c.Request.Context(), "session lookup failed", "request_id", requestID(c), "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": common.ErrorInternal.Error()})
				return
			}
			body := gin.H{"error": msgNotLoggedIn}
			if successShape {
				body["success"] = false
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, body)
			return
		}
		c.Set(ctxKeySession, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(ctxKeySession)
	if !ok {
		return nil
	}
	sess, _ := v.(*models.Session)
	return sess
}
