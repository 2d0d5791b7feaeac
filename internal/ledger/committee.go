package ledger

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/samiti-app/backend/internal/models"
)

// AddCommitteeMember appends a committee seat.
func (l *Ledger) AddCommitteeMember(member models.CommitteeMember) (models.CommitteeMember, error) {
	if strings.TrimSpace(member.Name) == "" {
		return models.CommitteeMember{}, models.ErrNameEmpty
	}

	member.ID = uuid.New()

	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		s.Committee = append(s.Committee, member)
		return s, nil
	})
	if err != nil {
		return models.CommitteeMember{}, err
	}

	return member, nil
}

// UpdateCommitteeMember replaces the committee seat with the same ID.
func (l *Ledger) UpdateCommitteeMember(member models.CommitteeMember) (models.CommitteeMember, error) {
	if strings.TrimSpace(member.Name) == "" {
		return models.CommitteeMember{}, models.ErrNameEmpty
	}

	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		for i, existing := range s.Committee {
			if existing.ID == member.ID {
				s.Committee[i] = member
				return s, nil
			}
		}

		return models.Snapshot{}, fmt.Errorf("%w committee member matching your query", models.ErrResourceNotFound)
	})
	if err != nil {
		return models.CommitteeMember{}, err
	}

	return member, nil
}

// RemoveCommitteeMember deletes the committee seat with the given ID.
func (l *Ledger) RemoveCommitteeMember(id uuid.UUID) error {
	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		committee := make([]models.CommitteeMember, 0, len(s.Committee))
		for _, member := range s.Committee {
			if member.ID != id {
				committee = append(committee, member)
			}
		}

		if len(committee) == len(s.Committee) {
			return models.Snapshot{}, fmt.Errorf("%w committee member matching your query", models.ErrResourceNotFound)
		}

		s.Committee = committee
		return s, nil
	})

	return err
}
