package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legalease/internal/domain"
)

const msgInvalidBody = "invalid request body"

// handleError writes the response for an error returned by a service. Conflicts
// are reported as 400 to match the availability contract. Anything that is not
// a domain error is attached to the context for errorMiddleware to log.
func (h *Handler) handleError(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindConflict:
		badRequestResponse(c, err.Error())
	case domain.KindNotFound:
		errorResponse(c, http.StatusNotFound, err.Error())
	case domain.KindUnauthenticated:
		errorResponse(c, http.StatusUnauthorized, err.Error())
	case domain.KindForbidden:
		forbiddenResponse(c, err.Error())
	default:
		_ = c.Error(err)
		internalServerErrorResponse(c)
	}
}
