package aggregate

import (
	"sort"

	"github.com/samiti-app/backend/internal/models"
)

// DefaultTopContributors is the number of contributors shown when the caller
// does not ask for a specific count.
const DefaultTopContributors = 5

// TopContributors returns up to limit members ranked by their contribution in
// the given year, highest first. Members without a contribution for the year
// rank as zero. Ties keep the original member order.
func TopContributors(s models.Snapshot, year string, limit int) []models.Member {
	if limit <= 0 {
		limit = DefaultTopContributors
	}

	ranked := append([]models.Member(nil), s.Members...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Contribution(year).GreaterThan(ranked[j].Contribution(year))
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
