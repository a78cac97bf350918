package server

import (
	"net/http"

	"market-indexes/src/helpers"

	"github.com/gin-gonic/gin"
)

// StatusClientClosedRequest is reported when the caller went away
const StatusClientClosedRequest = 499

// -----------------------------------------------------------------------------

// HTTPStatus maps an error kind to the response status.
func HTTPStatus(kind helpers.ErrorKind) int {
	switch kind {
	case helpers.KindInvalidRequest:
		return http.StatusBadRequest
	case helpers.KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case helpers.KindNotFound:
		return http.StatusNotFound
	case helpers.KindUpstreamUnavailable, helpers.KindSchemaMismatch:
		return http.StatusBadGateway
	case helpers.KindCanceled:
		return StatusClientClosedRequest
	case helpers.KindDeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) writeError(c *gin.Context, err error) {
	kind := helpers.NewErrorHandler(s.Logger).Handle(err, c.Request.Method+" "+c.Request.URL.Path)
	status := HTTPStatus(kind)
	if status == http.StatusMethodNotAllowed {
		c.Header("Allow", http.MethodGet)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error":   string(kind),
		"message": err.Error(),
	})
}
