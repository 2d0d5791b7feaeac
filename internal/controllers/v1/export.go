package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samiti-app/backend/internal/export"
	"github.com/samiti-app/backend/internal/httputil"
	"github.com/samiti-app/backend/internal/models"
)

// RegisterExportRoutes registers the routes for exports with the
// RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/csv", httputil.OptionsGet)
	r.GET("/csv", co.GetTransactionsCSV)
}

// @Summary		Export transactions
// @Description	Streams all transactions of a fiscal year as a CSV file
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Failure		400		{object}	TransactionListResponse
// @Param			year	query		string	true	"Fiscal year"
// @Router			/v1/export/csv [get]
func (co Controller) GetTransactionsCSV(c *gin.Context) {
	year, err := yearQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	transactions := make([]models.Transaction, 0)
	for _, transaction := range snapshot.Transactions {
		if transaction.Year == year {
			transactions = append(transactions, transaction)
		}
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=finance_report_%s.csv", year))
	c.Status(http.StatusOK)

	if err := export.TransactionsCSV(c.Writer, transactions); err != nil {
		// Headers are already out, all we can do is log
		_ = c.Error(err)
	}
}
