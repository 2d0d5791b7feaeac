package aggregate

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"

	"github.com/samiti-app/backend/internal/models"
)

// Drift reports a member whose contribution ledger for a year does not match
// the sum of income transactions linked to them.
type Drift struct {
	MemberID uuid.UUID       `json:"memberId"`
	FullName string          `json:"fullName" example:"Saikat Saha"`
	Year     string          `json:"year" example:"2024"`
	Ledger   decimal.Decimal `json:"ledger" example:"700"`   // Amount recorded in the member's contribution ledger
	Computed decimal.Decimal `json:"computed" example:"500"` // Amount recomputed from the transactions
}

// ContributionDrift recomputes every member's per-year contribution from the
// transactions and reports all entries where the denormalized ledger
// disagrees.
//
// The ledger is maintained by construction when income transactions are
// recorded, so a healthy snapshot yields no drift. This is the verification
// routine for that convention.
func ContributionDrift(s models.Snapshot) []Drift {
	// member id -> year -> linked income sum
	computed := map[uuid.UUID]map[string]decimal.Decimal{}

	for _, transaction := range s.Transactions {
		if transaction.Type != models.TransactionTypeIncome || transaction.RelatedMemberID == nil {
			continue
		}

		years, ok := computed[*transaction.RelatedMemberID]
		if !ok {
			years = map[string]decimal.Decimal{}
			computed[*transaction.RelatedMemberID] = years
		}

		sum, ok := years[transaction.Year]
		if !ok {
			sum = decimal.Zero
		}
		years[transaction.Year] = sum.Add(transaction.Amount)
	}

	drifts := make([]Drift, 0)

	for _, member := range s.Members {
		yearSet := map[string]bool{}
		for year := range member.Contributions {
			yearSet[year] = true
		}
		for year := range computed[member.ID] {
			yearSet[year] = true
		}

		// Map iteration order is random, sort for a stable report
		years := maps.Keys(yearSet)
		sort.Strings(years)

		for _, year := range years {
			ledger := member.Contribution(year)

			sum := decimal.Zero
			if memberYears, ok := computed[member.ID]; ok {
				if s, ok := memberYears[year]; ok {
					sum = s
				}
			}

			if !ledger.Equal(sum) {
				drifts = append(drifts, Drift{
					MemberID: member.ID,
					FullName: member.FullName,
					Year:     year,
					Ledger:   ledger,
					Computed: sum,
				})
			}
		}
	}

	return drifts
}
