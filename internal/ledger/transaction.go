package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/samiti-app/backend/internal/models"
)

// AddTransaction appends a transaction.
//
// If the transaction is an income linked to a member, the member's
// contribution ledger for the transaction year is incremented in the same
// transform, so the two effects can never be torn apart. A RelatedMemberID
// that matches no member is accepted and has no effect on any ledger.
func (l *Ledger) AddTransaction(transaction models.Transaction) (models.Transaction, error) {
	if !transaction.Type.Valid() {
		return models.Transaction{}, models.ErrInvalidType
	}
	if !transaction.PaymentMode.Valid() {
		return models.Transaction{}, models.ErrInvalidMode
	}
	if transaction.Amount.IsNegative() {
		return models.Transaction{}, models.ErrAmountNegative
	}
	if transaction.Year == "" {
		return models.Transaction{}, models.ErrYearEmpty
	}

	transaction.ID = uuid.New()
	if transaction.Date.IsZero() {
		transaction.Date = time.Now().In(time.UTC)
	}

	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		s.Transactions = append(s.Transactions, transaction)

		if transaction.Type == models.TransactionTypeIncome && transaction.RelatedMemberID != nil {
			for i, member := range s.Members {
				if member.ID != *transaction.RelatedMemberID {
					continue
				}

				if s.Members[i].Contributions == nil {
					s.Members[i].Contributions = map[string]decimal.Decimal{}
				}
				s.Members[i].Contributions[transaction.Year] = member.Contribution(transaction.Year).Add(transaction.Amount)
				break
			}
		}

		return s, nil
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}
