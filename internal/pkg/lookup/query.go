package lookup

import (
	"time"
)

// OpenAt returns the IDs open at t, each once, in the order they were first
// added to t's minute.
//
// The index only knows whole minutes. When t carries seconds it falls between
// two minutes, and a business counts as open only if it covers both of them:
// one closing at 22:00 is open at 22:00:00 but not at 22:00:05.
func (idx *Index) OpenAt(t time.Time) []string {
	day := t.Weekday()
	minute := t.Hour()*60 + t.Minute()
	current := idx.Bucket(day, minute)

	if t.Second() == 0 && t.Nanosecond() == 0 {
		return unique(current)
	}

	nextMinute := (minute + 1) % minutesPerDay
	nextDay := day
	if nextMinute == 0 {
		nextDay = (day + 1) % daysPerWeek
	}
	return intersect(current, idx.Bucket(nextDay, nextMinute))
}

func unique(ids []string) []string {
	result := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func intersect(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, id := range b {
		inB[id] = struct{}{}
	}

	result := make([]string, 0)
	seen := make(map[string]struct{}, len(a))
	for _, id := range a {
		if _, ok := inB[id]; !ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
