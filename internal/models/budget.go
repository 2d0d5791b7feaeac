package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents the planned spend for a category in a fiscal year.
//
// Multiple budgets may exist for the same (year, category) pair. They are
// never merged; variance is calculated for each row independently.
type Budget struct {
	ID       uuid.UUID       `json:"id" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Year     string          `json:"year" example:"2024"`
	Category string          `json:"category" example:"Decoration"`
	Amount   decimal.Decimal `json:"amount" example:"15000"`
}
