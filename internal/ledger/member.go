package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/samiti-app/backend/internal/models"
)

// defaultCreditScore is assigned to new members without an explicit score.
const defaultCreditScore = 100

// AddMember appends a new member. The ID and creation timestamps are assigned
// here and are immutable afterwards.
func (l *Ledger) AddMember(member models.Member) (models.Member, error) {
	if strings.TrimSpace(member.FullName) == "" {
		return models.Member{}, models.ErrNameEmpty
	}

	if member.Role == "" {
		member.Role = models.MemberRoleMember
	}
	if !member.Role.Valid() {
		return models.Member{}, models.ErrInvalidRole
	}

	now := time.Now().In(time.UTC)

	member.ID = uuid.New()
	member.CreatedAt = now
	if member.JoinDate.IsZero() {
		member.JoinDate = now
	}
	if member.CreditScore == 0 {
		member.CreditScore = defaultCreditScore
	}
	if member.Contributions == nil {
		member.Contributions = map[string]decimal.Decimal{}
	}

	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		s.Members = append(s.Members, member)
		return s, nil
	})
	if err != nil {
		return models.Member{}, err
	}

	return member, nil
}

// UpdateMember replaces the member with the same ID. The creation timestamps
// and the contribution ledger are owned by the store and are preserved from
// the existing record.
func (l *Ledger) UpdateMember(member models.Member) (models.Member, error) {
	if strings.TrimSpace(member.FullName) == "" {
		return models.Member{}, models.ErrNameEmpty
	}
	if !member.Role.Valid() {
		return models.Member{}, models.ErrInvalidRole
	}

	var updated models.Member

	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		for i, existing := range s.Members {
			if existing.ID != member.ID {
				continue
			}

			member.CreatedAt = existing.CreatedAt
			member.JoinDate = existing.JoinDate
			member.Contributions = existing.Contributions

			s.Members[i] = member
			updated = member
			return s, nil
		}

		return models.Snapshot{}, fmt.Errorf("%w member matching your query", models.ErrResourceNotFound)
	})
	if err != nil {
		return models.Member{}, err
	}

	return updated, nil
}

// RemoveMember deletes the member with the given ID.
//
// Transactions referencing the member are left unchanged; their reference
// simply dangles from then on.
func (l *Ledger) RemoveMember(id uuid.UUID) error {
	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		members := make([]models.Member, 0, len(s.Members))
		for _, member := range s.Members {
			if member.ID != id {
				members = append(members, member)
			}
		}

		if len(members) == len(s.Members) {
			return models.Snapshot{}, fmt.Errorf("%w member matching your query", models.ErrResourceNotFound)
		}

		s.Members = members
		return s, nil
	})

	return err
}
