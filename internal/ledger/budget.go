package ledger

import (
	"strings"

	"github.com/google/uuid"

	"github.com/samiti-app/backend/internal/models"
)

// AddBudget appends a budget row.
//
// There is deliberately no uniqueness check on (year, category): several
// budget rows for the same pair are allowed and each is varianced
// independently.
func (l *Ledger) AddBudget(budget models.Budget) (models.Budget, error) {
	if budget.Year == "" {
		return models.Budget{}, models.ErrYearEmpty
	}
	if budget.Amount.IsNegative() {
		return models.Budget{}, models.ErrAmountNegative
	}
	if strings.TrimSpace(budget.Category) == "" {
		budget.Category = "General"
	}

	budget.ID = uuid.New()

	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		s.Budgets = append(s.Budgets, budget)
		return s, nil
	})
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}
