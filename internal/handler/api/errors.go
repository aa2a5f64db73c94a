package api

import (
	"net/http"

	"clubhouse/internal/handler/httperr"
	"clubhouse/internal/handler/middleware"
	"clubhouse/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// abortWithMapped answers with the first mapping whose sentinel err carries,
// falling back to a 500 so unexpected failures never leak details.
func abortWithMapped(c *gin.Context, err error, mappings []errorMapping) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return userID, true
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidIDParam), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
