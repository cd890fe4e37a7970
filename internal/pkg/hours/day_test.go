package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDay(t *testing.T) {
	tests := []struct {
		token string
		want  time.Weekday
	}{
		{"Wed", time.Wednesday},
		{"Wednesday", time.Wednesday},
		{"Tues", time.Tuesday},
		{"tu", time.Tuesday},
		{"Thurs", time.Thursday},
		{"th", time.Thursday},
		{"SUN", time.Sunday},
		{"sa", time.Saturday},
		{"Mon", time.Monday},
		{"fri", time.Friday},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ResolveDay(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDayRejectsInvalidTokens(t *testing.T) {
	for _, token := range []string{"", "M", "w", "Mo1", "Mondays", "Wedn3sday", "Xyz", "s"} {
		t.Run(token, func(t *testing.T) {
			_, err := ResolveDay(token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDayToken)
		})
	}
}

func TestDayAbbreviationsDoNotCollide(t *testing.T) {
	// every name contributes len(name)-1 prefixes; a collision would shrink the map
	expected := 0
	for _, name := range dayNames {
		expected += len(name) - 1
	}
	assert.Len(t, dayAbbreviations, expected)
}

func TestExpandDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Weekday
		want       []time.Weekday
	}{
		{"plain range", time.Monday, time.Wednesday, []time.Weekday{1, 2, 3}},
		{"mid week", time.Wednesday, time.Friday, []time.Weekday{3, 4, 5}},
		{"single day", time.Wednesday, time.Wednesday, []time.Weekday{3}},
		{"wraps the weekend", time.Friday, time.Monday, []time.Weekday{5, 6, 0, 1}},
		{"ends on sunday", time.Wednesday, time.Sunday, []time.Weekday{3, 4, 5, 6, 0}},
		{"whole week from monday", time.Monday, time.Sunday, []time.Weekday{1, 2, 3, 4, 5, 6, 0}},
		{"sunday to monday", time.Sunday, time.Monday, []time.Weekday{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandDays(tt.start, tt.end))
		})
	}
}

func TestNextDay(t *testing.T) {
	assert.Equal(t, time.Sunday, NextDay(time.Saturday))
	assert.Equal(t, time.Tuesday, NextDay(time.Monday))
}
