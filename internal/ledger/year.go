package ledger

import (
	"sort"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/samiti-app/backend/internal/models"
)

// AddYear adds a fiscal year label to the ordered year set. The set is kept
// sorted and free of duplicates.
func (l *Ledger) AddYear(year string) ([]string, error) {
	year = strings.TrimSpace(year)
	if year == "" {
		return nil, models.ErrYearEmpty
	}

	var years []string

	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		if slices.Contains(s.Years, year) {
			return models.Snapshot{}, models.ErrYearExists
		}

		s.Years = append(s.Years, year)
		sort.Strings(s.Years)

		years = s.Years
		return s, nil
	})
	if err != nil {
		return nil, err
	}

	return years, nil
}
