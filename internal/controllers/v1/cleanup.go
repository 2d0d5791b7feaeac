package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DeleteAll permanently deletes all data and restores the default snapshot.
//
// @Summary		Delete everything
// @Description	Permanently deletes all resources and restores the defaults
// @Tags			v1
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			confirm	query	string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) DeleteAll(c *gin.Context) {
	if c.Query("confirm") != "yes-please-delete-everything" {
		e := errCleanupConfirmation.Error()
		c.JSON(http.StatusBadRequest, httpError{Error: e})
		return
	}

	if _, err := co.Ledger.Reset(); err != nil {
		e := err.Error()
		c.JSON(status(err), httpError{Error: e})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
