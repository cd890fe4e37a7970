// Package lookup materializes parsed business hours into a per-weekday,
// per-minute table so "who is open at T" is a constant time read.
package lookup

import (
	"time"

	"openhours-service/internal/pkg/hours"
)

const (
	daysPerWeek   = 7
	minutesPerDay = hours.MinutesPerDay
)

// Business pairs an identifier with its parsed hours.
type Business struct {
	ID    string
	Hours []hours.HourRange
}

// Index maps weekday then minute-of-day to the IDs open during that minute.
// Minutes nobody covers have no entry. An Index is never modified after
// Build or UnmarshalJSON returns, so any number of goroutines may query it.
type Index struct {
	days    [daysPerWeek]map[int][]string
	entries int
}

func newIndex() *Index {
	idx := &Index{}
	for day := range idx.days {
		idx.days[day] = make(map[int][]string)
	}
	return idx
}

// Build appends every business ID to each minute its ranges cover, start and
// end minutes included. IDs are not deduplicated here; OpenAt does that.
// Minute 1440 has no bucket of its own: the next day's minute 0 stands for it.
func Build(businesses []Business) *Index {
	idx := newIndex()
	for _, business := range businesses {
		for _, hourRange := range business.Hours {
			idx.add(business.ID, hourRange)
		}
	}
	return idx
}

func (idx *Index) add(id string, hourRange hours.HourRange) {
	first, last := hourRange.Start, hourRange.End
	if first < 0 {
		first = 0
	}
	if last >= minutesPerDay {
		last = minutesPerDay - 1
	}
	if last < first {
		return
	}

	for _, day := range hourRange.Days {
		if day < time.Sunday || day > time.Saturday {
			continue
		}
		buckets := idx.days[day]
		for minute := first; minute <= last; minute++ {
			buckets[minute] = append(buckets[minute], id)
		}
		idx.entries += last - first + 1
	}
}

// Bucket returns the IDs recorded for a weekday and minute, in insertion
// order and possibly repeated. The slice must not be modified.
func (idx *Index) Bucket(day time.Weekday, minute int) []string {
	if day < time.Sunday || day > time.Saturday {
		return nil
	}
	return idx.days[day][minute]
}

// Entries is the total number of IDs stored across all buckets.
func (idx *Index) Entries() int {
	return idx.entries
}

// CoveredMinutes is the number of weekday minutes with at least one ID.
func (idx *Index) CoveredMinutes() int {
	covered := 0
	for _, buckets := range idx.days {
		covered += len(buckets)
	}
	return covered
}
