package reports

import (
	"time"

	"javabite-client/internal/domain"
)

// DateGroups partitions orders by how recently they were created. Every order
// lands in exactly one bucket.
type DateGroups struct {
	Today     []domain.Order
	Yesterday []domain.Order
	LastWeek  []domain.Order
	Older     []domain.Order
}

func (g DateGroups) Count() int {
	return len(g.Today) + len(g.Yesterday) + len(g.LastWeek) + len(g.Older)
}

// GroupByDate buckets relative to now: same calendar day, the day before,
// within the trailing seven days, and everything older.
func GroupByDate(orders []domain.Order, now time.Time) DateGroups {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)
	lastWeek := today.AddDate(0, 0, -7)

	var groups DateGroups
	for _, o := range orders {
		day := o.CreatedAt.Midnight()
		switch {
		case day.Equal(today):
			groups.Today = append(groups.Today, o)
		case day.Equal(yesterday):
			groups.Yesterday = append(groups.Yesterday, o)
		case !o.CreatedAt.Before(lastWeek):
			groups.LastWeek = append(groups.LastWeek, o)
		default:
			groups.Older = append(groups.Older, o)
		}
	}
	return groups
}
