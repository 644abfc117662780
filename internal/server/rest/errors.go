package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipesearch/recipesearch/internal/common"
)

// RequestError is returned by handlers for a client mistake that maps to a
// specific status code.
type RequestError struct {
	Code int
	Msg  string
}

func (e *RequestError) Error() string {
	return e.Msg
}

func badRequest(msg string) *RequestError {
	return &RequestError{Code: http.StatusBadRequest, Msg: msg}
}

type handlerFunc func(*gin.Context) error

// wrap adapts a handler returning an error to gin. Errors are turned into a
// JSON {"error": ...} body unless the handler already wrote a response.
func (s *HTTPServer) wrap(h handlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil || c.Writer.Written() {
			return
		}

		var re *RequestError
		switch {
		case errors.As(err, &re):
			c.JSON(re.Code, gin.H{"error": re.Msg})
		case errors.Is(err, common.ErrorUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgNotLoggedIn})
		case errors.Is(err, common.ErrorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		default:
			s.logger.Error(c.Request.Context(), "request failed",
				"path", c.FullPath(), "request_id", requestID(c), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrorInternal.Error()})
		}
	}
}
