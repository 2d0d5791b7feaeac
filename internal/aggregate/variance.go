package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/samiti-app/backend/internal/models"
)

// VarianceRow is the budget-vs-actual result for one budget row.
type VarianceRow struct {
	Budget    models.Budget   `json:"budget"`
	Actual    decimal.Decimal `json:"actual" example:"17000"`    // Expense sum for the budget's category and year
	Remaining decimal.Decimal `json:"remaining" example:"-2000"` // Planned amount minus actual; negative when overspent
}

// BudgetVariance computes the variance for every budget row in the given
// year.
//
// When several budget rows share a (year, category) pair, each row is
// compared against the same actual total. The rows are not merged and the
// actual is not split between them.
func BudgetVariance(s models.Snapshot, year string) []VarianceRow {
	rows := make([]VarianceRow, 0)

	for _, budget := range s.Budgets {
		if budget.Year != year {
			continue
		}

		actual := decimal.Zero
		for _, transaction := range s.Transactions {
			if transaction.Year == year && transaction.Type == models.TransactionTypeExpense && transaction.Category == budget.Category {
				actual = actual.Add(transaction.Amount)
			}
		}

		rows = append(rows, VarianceRow{
			Budget:    budget,
			Actual:    actual,
			Remaining: budget.Amount.Sub(actual),
		})
	}

	return rows
}
