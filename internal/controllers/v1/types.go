package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samiti-app/backend/internal/httputil"
)

// parseID parses the id path parameter as a UUID.
func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}

	return id, nil
}

// yearQuery returns the mandatory year query parameter.
func yearQuery(c *gin.Context) (string, error) {
	year := c.Query("year")
	if year == "" {
		return "", errYearNotSetInQuery
	}

	return year, nil
}
