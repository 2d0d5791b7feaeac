package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as money coming in or going out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether the transaction type is one of the known types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// PaymentMode is the way a transaction was settled.
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "CASH"
	PaymentModeBank PaymentMode = "BANK"
	PaymentModeQR   PaymentMode = "QR"
)

// Valid reports whether the payment mode is one of the known modes.
func (p PaymentMode) Valid() bool {
	return p == PaymentModeCash || p == PaymentModeBank || p == PaymentModeQR
}

// Transaction represents a single income or expense entry for a fiscal year.
//
// RelatedMemberID is a weak reference: it is expected to equal the ID of a
// member when set, but existence is not enforced and deleting the member does
// not cascade. A dangling reference is tolerated and treated as absent.
type Transaction struct {
	ID              uuid.UUID       `json:"id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Year            string          `json:"year" example:"2024"`
	Type            TransactionType `json:"type" example:"INCOME"`
	Category        string          `json:"category" example:"Chanda"`
	Amount          decimal.Decimal `json:"amount" example:"500"`
	Date            time.Time       `json:"date" example:"2024-01-20T18:30:00Z"`
	Description     string          `json:"description,omitempty"`
	PaymentMode     PaymentMode     `json:"paymentMode" example:"CASH"`
	RelatedMemberID *uuid.UUID      `json:"relatedMemberId,omitempty"`
}
