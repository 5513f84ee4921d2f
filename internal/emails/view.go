package emails

import (
	"sort"
	"strings"
	"time"
)

// SortKey selects what a sort compares.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByPriority SortKey = "priority"
	SortByCategory SortKey = "category"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortCriteria pairs a key with a direction.
type SortCriteria struct {
	Key       SortKey
	Direction Direction
}

// FilterCriteria narrows the collection. Empty fields never exclude a
// record; a record passes iff it satisfies every non-empty criterion.
type FilterCriteria struct {
	// Category matches exactly when non-empty.
	Category string

	// Priority matches exactly when non-empty.
	Priority string

	// Search matches case-insensitively against subject, sender and
	// summary when non-empty.
	Search string

	// From and To bound received_at inclusively when set. From is the
	// exact instant; To covers the whole of its calendar day.
	From *time.Time
	To   *time.Time
}

// priorityRank orders the classifier's priority labels; anything
// unrecognized sorts below "low".
var priorityRank = map[string]int{
	"high":   3,
	"medium": 2,
	"low":    1,
}

func priorityOrdinal(priority string) int {
	return priorityRank[strings.ToLower(priority)]
}

// Filter returns the records passing every non-empty criterion, in their
// original order.
func Filter(records []Record, criteria FilterCriteria) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if matches(r, criteria) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r Record, criteria FilterCriteria) bool {
	if criteria.Category != "" && r.Category != criteria.Category {
		return false
	}
	if criteria.Priority != "" && r.Priority != criteria.Priority {
		return false
	}
	if criteria.Search != "" && !matchesSearch(r, criteria.Search) {
		return false
	}
	if criteria.From != nil && r.ReceivedAt.Before(*criteria.From) {
		return false
	}
	if criteria.To != nil {
		// Inclusive through the last instant of the To day
		end := startOfDay(*criteria.To).AddDate(0, 0, 1)
		if !r.ReceivedAt.Before(end) {
			return false
		}
	}
	return true
}

func matchesSearch(r Record, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Subject), term) ||
		strings.Contains(strings.ToLower(r.Sender), term) ||
		strings.Contains(strings.ToLower(r.Summary), term)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Sort returns a new slice ordered by the criteria. The sort is stable:
// records comparing equal keep their prior relative order, which keeps
// repeated direction toggles predictable.
func Sort(records []Record, criteria SortCriteria) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	less := lessFunc(criteria.Key)
	if less == nil {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if criteria.Direction == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})

	return out
}

func lessFunc(key SortKey) func(a, b Record) bool {
	switch key {
	case SortByDate:
		return func(a, b Record) bool { return a.ReceivedAt.Before(b.ReceivedAt) }
	case SortByPriority:
		return func(a, b Record) bool { return priorityOrdinal(a.Priority) < priorityOrdinal(b.Priority) }
	case SortByCategory:
		return func(a, b Record) bool {
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		}
	default:
		return nil
	}
}

// DefaultDirection is the direction a freshly selected sort key starts
// with: newest-first for dates, ascending for everything else.
func DefaultDirection(key SortKey) Direction {
	if key == SortByDate {
		return Descending
	}
	return Ascending
}

// Toggle returns the criteria after a click on key: selecting the current
// key flips the direction, selecting a new key resets to its default.
func Toggle(current SortCriteria, key SortKey) SortCriteria {
	if current.Key == key {
		direction := Ascending
		if current.Direction == Ascending {
			direction = Descending
		}
		return SortCriteria{Key: key, Direction: direction}
	}
	return SortCriteria{Key: key, Direction: DefaultDirection(key)}
}
