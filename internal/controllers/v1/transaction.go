package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"

	"github.com/samiti-app/backend/internal/httputil"
	"github.com/samiti-app/backend/internal/models"
)

// RegisterTransactionRoutes registers the routes for transactions with the
// RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetTransactions)
	r.POST("", co.CreateTransaction)
}

// @Summary		List transactions
// @Description	Returns transactions, optionally filtered
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Param			year		query		string	false	"Filter by fiscal year"
// @Param			type		query		string	false	"Filter by type (INCOME or EXPENSE)"
// @Param			category	query		string	false	"Filter by category"
// @Param			search		query		string	false	"Search for this text in category and description"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	transactions := make([]models.Transaction, 0, len(snapshot.Transactions))

	search := strings.ToLower(filter.Search)
	for _, transaction := range snapshot.Transactions {
		if filter.Year != "" && transaction.Year != filter.Year {
			continue
		}
		if filter.Type != "" && string(transaction.Type) != filter.Type {
			continue
		}
		if filter.Category != "" && transaction.Category != filter.Category {
			continue
		}
		if search != "" && !matchTransaction(transaction, search) {
			continue
		}

		transactions = append(transactions, transaction)
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// matchTransaction reports whether the transaction matches the lowercased
// search term.
func matchTransaction(transaction models.Transaction, search string) bool {
	pattern := "*" + search + "*"
	return glob.Glob(pattern, strings.ToLower(transaction.Category)) ||
		glob.Glob(pattern, strings.ToLower(transaction.Description))
}

// @Summary		Create transaction
// @Description	Records a transaction. An income linked to a member also updates that member's contribution ledger for the year.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	if editable.PaymentMode == "" {
		editable.PaymentMode = models.PaymentModeCash
	}
	if editable.Category == "" {
		editable.Category = "General"
	}

	transaction, err := co.Ledger.AddTransaction(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}
