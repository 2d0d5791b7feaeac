package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/samiti-app/backend/internal/models"
)

// TransactionEditable represents all user configurable parameters of a
// transaction.
type TransactionEditable struct {
	Year            string                 `json:"year" example:"2024"`
	Type            models.TransactionType `json:"type" example:"INCOME"`
	Category        string                 `json:"category" example:"Chanda"`
	Amount          decimal.Decimal        `json:"amount" example:"500"`
	Date            time.Time              `json:"date" example:"2024-01-20T18:30:00Z"`
	Description     string                 `json:"description" example:"Door-to-door collection"`
	PaymentMode     models.PaymentMode     `json:"paymentMode" example:"CASH" default:"CASH"`
	RelatedMemberID *uuid.UUID             `json:"relatedMemberId"`
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Year:            editable.Year,
		Type:            editable.Type,
		Category:        editable.Category,
		Amount:          editable.Amount,
		Date:            editable.Date,
		Description:     editable.Description,
		PaymentMode:     editable.PaymentMode,
		RelatedMemberID: editable.RelatedMemberID,
	}
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`
	Error *string             `json:"error"`
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`
	Error *string              `json:"error"`
}

// TransactionQueryFilter narrows the transaction list.
type TransactionQueryFilter struct {
	Year     string `form:"year"`     // By fiscal year
	Type     string `form:"type"`     // By transaction type
	Category string `form:"category"` // By category
	Search   string `form:"search"`   // By string in category and description
}
