// Package aggregate derives financial summary views from a snapshot.
//
// All functions are pure: they take an immutable snapshot value and a fiscal
// year, never touch storage and never modify their input. Views are cheap to
// recompute after every mutation, so nothing here is cached.
package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/samiti-app/backend/internal/models"
)

// TotalIncome returns the sum of all income transactions in the given year.
func TotalIncome(s models.Snapshot, year string) decimal.Decimal {
	return sumByType(s, year, models.TransactionTypeIncome)
}

// TotalExpense returns the sum of all expense transactions in the given year.
func TotalExpense(s models.Snapshot, year string) decimal.Decimal {
	return sumByType(s, year, models.TransactionTypeExpense)
}

// Balance returns income minus expense for the given year.
func Balance(s models.Snapshot, year string) decimal.Decimal {
	return TotalIncome(s, year).Sub(TotalExpense(s, year))
}

// ExpenseByCategory returns the expense sum per category for the given year.
// Categories are whatever strings appear in the data.
func ExpenseByCategory(s models.Snapshot, year string) map[string]decimal.Decimal {
	breakdown := map[string]decimal.Decimal{}

	for _, transaction := range s.Transactions {
		if transaction.Year != year || transaction.Type != models.TransactionTypeExpense {
			continue
		}

		sum, ok := breakdown[transaction.Category]
		if !ok {
			sum = decimal.Zero
		}
		breakdown[transaction.Category] = sum.Add(transaction.Amount)
	}

	return breakdown
}

// MemberCount returns the number of registered members.
func MemberCount(s models.Snapshot) int {
	return len(s.Members)
}

// Summary is the dashboard overview for one fiscal year.
type Summary struct {
	Year              string                     `json:"year" example:"2024"`
	TotalIncome       decimal.Decimal            `json:"totalIncome" example:"42000"`
	TotalExpense      decimal.Decimal            `json:"totalExpense" example:"31000"`
	Balance           decimal.Decimal            `json:"balance" example:"11000"`
	ExpenseByCategory map[string]decimal.Decimal `json:"expenseByCategory"`
	MemberCount       int                        `json:"memberCount" example:"34"`
}

// Summarize computes the full overview for the given year.
func Summarize(s models.Snapshot, year string) Summary {
	return Summary{
		Year:              year,
		TotalIncome:       TotalIncome(s, year),
		TotalExpense:      TotalExpense(s, year),
		Balance:           Balance(s, year),
		ExpenseByCategory: ExpenseByCategory(s, year),
		MemberCount:       MemberCount(s),
	}
}

func sumByType(s models.Snapshot, year string, t models.TransactionType) decimal.Decimal {
	sum := decimal.Zero

	for _, transaction := range s.Transactions {
		if transaction.Year == year && transaction.Type == t {
			sum = sum.Add(transaction.Amount)
		}
	}

	return sum
}
