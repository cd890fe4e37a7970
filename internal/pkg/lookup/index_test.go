package lookup

import (
	"testing"
	"time"

	"openhours-service/internal/pkg/hours"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdays(d ...time.Weekday) []time.Weekday {
	return d
}

func figulina() Business {
	return Business{
		ID: "Figulina",
		Hours: []hours.HourRange{
			{Days: weekdays(1, 2, 3, 6), Start: 12 * 60, End: 22 * 60},
			{Days: weekdays(0), Start: 12 * 60, End: 15*60 + 30},
		},
	}
}

func TestBuildExpandsRangesIntoMinutes(t *testing.T) {
	idx := Build([]Business{figulina()})

	assert.Empty(t, idx.Bucket(time.Sunday, 12*60-1))
	assert.Equal(t, []string{"Figulina"}, idx.Bucket(time.Sunday, 12*60))
	assert.Equal(t, []string{"Figulina"}, idx.Bucket(time.Sunday, 12*60+1))
	assert.Equal(t, []string{"Figulina"}, idx.Bucket(time.Sunday, 15*60+30))
	assert.Empty(t, idx.Bucket(time.Sunday, 15*60+31))
	// start and end minutes are both included
	assert.Len(t, idx.days[time.Sunday], 15*60+30-12*60+1)

	for _, day := range weekdays(1, 2, 3, 6) {
		assert.Equal(t, []string{"Figulina"}, idx.Bucket(day, 12*60))
		assert.Equal(t, []string{"Figulina"}, idx.Bucket(day, 22*60))
		assert.Empty(t, idx.Bucket(day, 22*60+1))
	}
	assert.Empty(t, idx.Bucket(time.Thursday, 12*60))
	assert.Empty(t, idx.Bucket(time.Friday, 12*60))
}

func TestBuildSingleDayBoundaries(t *testing.T) {
	idx := Build([]Business{{
		ID:    "Corner Cafe",
		Hours: []hours.HourRange{{Days: weekdays(1), Start: 720, End: 1320}},
	}})

	for minute := 720; minute <= 1320; minute++ {
		require.NotEmpty(t, idx.Bucket(time.Monday, minute), "minute %d", minute)
	}
	assert.Empty(t, idx.Bucket(time.Monday, 719))
	assert.Empty(t, idx.Bucket(time.Monday, 1321))
	assert.Equal(t, 601, idx.CoveredMinutes())
	assert.Equal(t, 601, idx.Entries())
}

func TestBuildOverlappingBusinessesKeepInputOrder(t *testing.T) {
	idx := Build([]Business{
		figulina(),
		{
			ID: "Standard",
			Hours: []hours.HourRange{
				{Days: weekdays(2, 3, 4, 5, 6), Start: 10 * 60, End: 21 * 60},
				{Days: weekdays(0), Start: 12*60 + 30, End: 17*60 + 30},
			},
		},
	})

	assert.Equal(t, []string{"Figulina"}, idx.Bucket(time.Sunday, 12*60))
	assert.Equal(t, []string{"Figulina", "Standard"}, idx.Bucket(time.Sunday, 15*60+30))
	assert.Equal(t, []string{"Standard"}, idx.Bucket(time.Sunday, 17*60+30))
	assert.Equal(t, []string{"Figulina"}, idx.Bucket(time.Monday, 12*60))
	assert.Equal(t, []string{"Figulina", "Standard"}, idx.Bucket(time.Tuesday, 12*60))
}

func TestBuildEndOfDayHasNoMinute1440Bucket(t *testing.T) {
	idx := Build([]Business{{
		ID:    "Late",
		Hours: []hours.HourRange{{Days: weekdays(0), Start: 22 * 60, End: hours.MinutesPerDay}},
	}})

	assert.Equal(t, []string{"Late"}, idx.Bucket(time.Sunday, hours.MinutesPerDay-1))
	assert.Empty(t, idx.Bucket(time.Sunday, hours.MinutesPerDay))
	assert.Equal(t, 120, idx.Entries())
}

func TestBuildKeepsDuplicateIDs(t *testing.T) {
	idx := Build([]Business{{
		ID: "Twice",
		Hours: []hours.HourRange{
			{Days: weekdays(1), Start: 600, End: 700},
			{Days: weekdays(1), Start: 650, End: 750},
		},
	}})

	assert.Equal(t, []string{"Twice", "Twice"}, idx.Bucket(time.Monday, 660))
	assert.Equal(t, []string{"Twice"}, idx.Bucket(time.Monday, 610))
}

func TestBuildFromParsedHours(t *testing.T) {
	parsed, err := hours.Parse("Mon-Sun 11 pm - 3 am")
	require.NoError(t, err)

	idx := Build([]Business{{ID: "Night Owl", Hours: parsed}})
	for day := time.Sunday; day <= time.Saturday; day++ {
		assert.Equal(t, []string{"Night Owl"}, idx.Bucket(day, 23*60))
		assert.Equal(t, []string{"Night Owl"}, idx.Bucket(day, 0))
		assert.Equal(t, []string{"Night Owl"}, idx.Bucket(day, 3*60))
		assert.Empty(t, idx.Bucket(day, 3*60+1))
	}
}

func TestBucketOutOfRangeDay(t *testing.T) {
	idx := Build([]Business{figulina()})
	assert.Nil(t, idx.Bucket(time.Weekday(9), 12*60))
}
