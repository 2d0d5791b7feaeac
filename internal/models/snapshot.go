package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SchemaVersion is the version of the persisted snapshot document. It is
// written with every save so that future schema changes can be migrated.
const SchemaVersion = 1

// Snapshot is the complete state of the system at a point in time.
//
// There is exactly one snapshot per deployment. It is loaded wholesale,
// transformed as a value and written back wholesale; no entity collection is
// ever mutated in place.
type Snapshot struct {
	SchemaVersion int               `json:"schemaVersion" example:"1"`
	Settings      AppSettings       `json:"settings"`
	Members       []Member          `json:"members"`
	Committee     []CommitteeMember `json:"committee"`
	Transactions  []Transaction     `json:"transactions"`
	Budgets       []Budget          `json:"budgets"`
	BankDetails   BankDetails       `json:"bankDetails"`
	Years         []string          `json:"years"`
}

// DefaultAdminPassword is the shared secret a fresh deployment starts with.
const DefaultAdminPassword = "admin"

// DefaultSnapshot returns the state a fresh deployment starts with: the
// default committee roster, settings, bank placeholder and fiscal years, with
// no members, transactions or budgets.
func DefaultSnapshot() Snapshot {
	now := time.Now().In(time.UTC)

	return Snapshot{
		SchemaVersion: SchemaVersion,
		Settings: AppSettings{
			ClubName:        "Annapurna Boys Saraswati Puja Committee",
			EstablishedYear: 2023,
			AdminPassword:   DefaultAdminPassword,
			Rules: []Rule{
				{ID: uuid.New(), Text: "All members must pay chanda before the puja week.", LastUpdated: now},
				{ID: uuid.New(), Text: "Committee meetings are mandatory for core members.", LastUpdated: now},
			},
		},
		Members: []Member{},
		Committee: []CommitteeMember{
			{ID: uuid.New(), Name: "Rajendranath Das", Role: "Secretary"},
			{ID: uuid.New(), Name: "Girish Chandra Ranu", Role: "President"},
			{ID: uuid.New(), Name: "Saikat Saha", Role: "Vice Secretary"},
			{ID: uuid.New(), Name: "Pinku Singha", Role: "Vice President"},
			{ID: uuid.New(), Name: "Sisir Hore", Role: "Cashier"},
		},
		Transactions: []Transaction{},
		Budgets:      []Budget{},
		BankDetails: BankDetails{
			HolderName:    "Annapurna Boys Club",
			AccountNumber: "1234567890",
			IFSC:          "SBIN0001234",
			Branch:        "Kolkata Main",
		},
		Years: []string{"2023", "2024", "2025", "2026"},
	}
}

// Clone returns a deep copy of the snapshot. Transforms passed to the
// mutation gateway operate on a clone so that a failed transform can never
// leave a partially modified snapshot behind.
func (s Snapshot) Clone() Snapshot {
	clone := s

	clone.Members = make([]Member, len(s.Members))
	for i, member := range s.Members {
		clone.Members[i] = member
		if member.Contributions != nil {
			contributions := make(map[string]decimal.Decimal, len(member.Contributions))
			for year, amount := range member.Contributions {
				contributions[year] = amount
			}
			clone.Members[i].Contributions = contributions
		}
	}

	clone.Committee = append([]CommitteeMember(nil), s.Committee...)
	clone.Transactions = make([]Transaction, len(s.Transactions))
	for i, transaction := range s.Transactions {
		clone.Transactions[i] = transaction
		if transaction.RelatedMemberID != nil {
			id := *transaction.RelatedMemberID
			clone.Transactions[i].RelatedMemberID = &id
		}
	}

	clone.Budgets = append([]Budget(nil), s.Budgets...)
	clone.Settings.Rules = append([]Rule(nil), s.Settings.Rules...)
	clone.Years = append([]string(nil), s.Years...)

	return clone
}
