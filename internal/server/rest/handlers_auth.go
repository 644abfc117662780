package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipesearch/recipesearch/internal/common"
)

func (s *HTTPServer) health(c *gin.Context) error {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
	return nil
}

// credentialsForm reads the username and password form fields. Both are
// required and must be non-empty.
func credentialsForm(c *gin.Context) (string, string, bool) {
	username, ok1 := c.GetPostForm("username")
	password, ok2 := c.GetPostForm("password")
	if !ok1 || !ok2 || username == "" || password == "" {
		return "", "", false
	}
	return username, password, true
}

func (s *HTTPServer) register(c *gin.Context) error {
	username, password, ok := credentialsForm(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgMissingFields})
		return nil
	}

	_, err := s.svc.Credentials.Register(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			s.metrics.authAttempt("register", "taken")
			c.JSON(http.StatusOK, gin.H{"success": false, "message": msgUsernameTaken})
			return nil
		}
		s.metrics.authAttempt("register", "error")
		return err
	}

	s.metrics.authAttempt("register", "ok")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msgRegistered})
	return nil
}

func (s *HTTPServer) login(c *gin.Context) error {
	username, password, ok := credentialsForm(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgMissingFields})
		return nil
	}

	ctx := c.Request.Context()
	user, err := s.svc.Credentials.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.metrics.authAttempt("login", "rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": msgBadCredentials})
			return nil
		}
		s.metrics.authAttempt("login", "error")
		return err
	}

	token, expiresAt, err := s.svc.Sessions.Open(ctx, user)
	if err != nil {
		s.metrics.authAttempt("login", "error")
		return err
	}

	s.metrics.authAttempt("login", "ok")
	s.setSessionCookie(c, token, expiresAt)
	c.JSON(http.StatusOK, gin.H{"success": true})
	return nil
}

// logout always succeeds; a revocation failure is only logged.
func (s *HTTPServer) logout(c *gin.Context) error {
	if err := s.svc.Sessions.Close(c.Request.Context(), s.sessionToken(c)); err != nil {
		s.logger.Warn(c.Request.Context(), "session revoke failed", "request_id", requestID(c), "error", err)
	}
	s.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
	return nil
}

func (s *HTTPServer) me(c *gin.Context) error {
	ctx := c.Request.Context()
	username := currentSession(c).UserName

	favourites, err := s.svc.Favourites.List(ctx, username)
	if err != nil {
		return err
	}
	received, err := s.svc.Shares.Received(ctx, username)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, gin.H{
		"username":   username,
		"favourites": favourites,
		"received":   received,
	})
	return nil
}
