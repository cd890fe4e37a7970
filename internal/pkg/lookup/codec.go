package lookup

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// SnapshotVersion identifies the encoding written by MarshalJSON.
const SnapshotVersion = 1

// Snapshot is an Index together with what it was built from, as stored in
// caches and archives.
type Snapshot struct {
	Version    int       `json:"version"`
	BuiltAt    time.Time `json:"built_at"`
	Businesses int       `json:"businesses"`
	Index      *Index    `json:"index"`
}

// NewSnapshot wraps idx for persistence.
func NewSnapshot(idx *Index, businesses int, builtAt time.Time) *Snapshot {
	return &Snapshot{
		Version:    SnapshotVersion,
		BuiltAt:    builtAt,
		Businesses: businesses,
		Index:      idx,
	}
}

// MarshalJSON encodes the index as 7 arrays of 1440 entries, one per minute,
// each either null or the list of IDs for that minute.
func (idx *Index) MarshalJSON() ([]byte, error) {
	table := make([][][]string, daysPerWeek)
	for day, buckets := range idx.days {
		table[day] = make([][]string, minutesPerDay)
		for minute, ids := range buckets {
			table[day][minute] = ids
		}
	}
	return json.Marshal(table)
}

// UnmarshalJSON decodes the format written by MarshalJSON. Shorter day or
// minute arrays are accepted and treated as trailing nulls.
func (idx *Index) UnmarshalJSON(data []byte) error {
	var table [][][]string
	if err := json.Unmarshal(data, &table); err != nil {
		return err
	}
	if len(table) > daysPerWeek {
		return fmt.Errorf("index has %d days, want at most %d", len(table), daysPerWeek)
	}

	decoded := newIndex()
	for day, minutes := range table {
		if len(minutes) > minutesPerDay {
			return fmt.Errorf("index day %d has %d minutes, want at most %d", day, len(minutes), minutesPerDay)
		}
		for minute, ids := range minutes {
			if len(ids) == 0 {
				continue
			}
			decoded.days[day][minute] = ids
			decoded.entries += len(ids)
		}
	}

	*idx = *decoded
	return nil
}
