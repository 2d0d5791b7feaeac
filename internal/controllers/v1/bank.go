package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samiti-app/backend/internal/httputil"
	"github.com/samiti-app/backend/internal/models"
)

// RegisterBankDetailsRoutes registers the routes for the bank record with
// the RouterGroup that is passed.
func (co Controller) RegisterBankDetailsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPut)
	r.GET("", co.GetBankDetails)
	r.PUT("", co.UpdateBankDetails)
}

type BankDetailsResponse struct {
	Data  *models.BankDetails `json:"data"`
	Error *string             `json:"error"`
}

// @Summary		Get bank details
// @Description	Returns the organization's bank record
// @Tags			BankDetails
// @Produce		json
// @Success		200	{object}	BankDetailsResponse
// @Failure		500	{object}	BankDetailsResponse
// @Router			/v1/bank-details [get]
func (co Controller) GetBankDetails(c *gin.Context) {
	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankDetailsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BankDetailsResponse{Data: &snapshot.BankDetails})
}

// @Summary		Update bank details
// @Description	Replaces the organization's bank record
// @Tags			BankDetails
// @Accept			json
// @Produce		json
// @Success		200		{object}	BankDetailsResponse
// @Failure		400		{object}	BankDetailsResponse
// @Param			bank	body		models.BankDetails	true	"Bank details"
// @Router			/v1/bank-details [put]
func (co Controller) UpdateBankDetails(c *gin.Context) {
	var details models.BankDetails

	err := httputil.BindData(c, &details)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankDetailsResponse{Error: &e})
		return
	}

	details, err = co.Ledger.UpdateBankDetails(details)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankDetailsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BankDetailsResponse{Data: &details})
}
