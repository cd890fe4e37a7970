package hours

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(d ...time.Weekday) []time.Weekday {
	return d
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []HourRange
	}{
		{
			name:  "single group",
			input: "Mon-Wed 11:00 am - 10 pm",
			want: []HourRange{
				{Days: days(1, 2, 3), Start: 11 * 60, End: 22 * 60},
			},
		},
		{
			name:  "two groups with a day list",
			input: "Mon-Thu, Sun 11:30 am - 9 pm  / Fri-Sat 11:30 am - 10 pm",
			want: []HourRange{
				{Days: days(1, 2, 3, 4, 0), Start: 11*60 + 30, End: 21 * 60},
				{Days: days(5, 6), Start: 11*60 + 30, End: 22 * 60},
			},
		},
		{
			name:  "three groups",
			input: "Mon-Thu 11 am - 10 pm  / Fri-Sat 10 am - 10:30 pm  / Sun 11 am - 11 pm",
			want: []HourRange{
				{Days: days(1, 2, 3, 4), Start: 11 * 60, End: 22 * 60},
				{Days: days(5, 6), Start: 10 * 60, End: 22*60 + 30},
				{Days: days(0), Start: 11 * 60, End: 23 * 60},
			},
		},
		{
			name:  "each group wraps midnight independently",
			input: "Sat-Sun 11 pm - 3 am / Mon, Wed, Fri 7 pm - 1 am",
			want: []HourRange{
				{Days: days(6, 0), Start: 23 * 60, End: 24 * 60},
				{Days: days(0, 1), Start: 0, End: 3 * 60},
				{Days: days(1, 3, 5), Start: 19 * 60, End: 24 * 60},
				{Days: days(2, 4, 6), Start: 0, End: 1 * 60},
			},
		},
		{
			name:  "closing at midnight keeps the next minute zero",
			input: "Sun 10 pm - 12 am",
			want: []HourRange{
				{Days: days(0), Start: 22 * 60, End: MinutesPerDay},
				{Days: days(1), Start: 0, End: 0},
			},
		},
		{
			name:  "uppercase markers and no space before them",
			input: "Tues-Fri 9AM - 5:30PM",
			want: []HourRange{
				{Days: days(2, 3, 4, 5), Start: 9 * 60, End: 17*60 + 30},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseGroup(t *testing.T) {
	tests := []struct {
		input string
		want  []HourRange
	}{
		{
			input: "Mon-Sun 11 am - 10 pm",
			want: []HourRange{
				{Days: days(1, 2, 3, 4, 5, 6, 0), Start: 11 * 60, End: 22 * 60},
			},
		},
		{
			input: "Sun-Mon, Wed 5 pm - 10 pm",
			want: []HourRange{
				{Days: days(0, 1, 3), Start: 17 * 60, End: 22 * 60},
			},
		},
		{
			input: "Mon, Wed-Sun 11 am - 10 pm",
			want: []HourRange{
				{Days: days(1, 3, 4, 5, 6, 0), Start: 11 * 60, End: 22 * 60},
			},
		},
		{
			input: "Mon-Sun 11 pm - 3 am",
			want: []HourRange{
				{Days: days(1, 2, 3, 4, 5, 6, 0), Start: 23 * 60, End: 24 * 60},
				{Days: days(2, 3, 4, 5, 6, 0, 1), Start: 0, End: 3 * 60},
			},
		},
		{
			input: "Mon-Fri, Wed 8 am - 4 pm",
			want: []HourRange{
				{Days: days(1, 2, 3, 4, 5), Start: 8 * 60, End: 16 * 60},
			},
		},
		{
			input: "Thurs - Sat 9 am - 9 am",
			want: []HourRange{
				{Days: days(4, 5, 6), Start: 9 * 60, End: MinutesPerDay},
				{Days: days(5, 6, 0), Start: 0, End: 9 * 60},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGroup(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
		near  string
	}{
		{"", ErrMalformedDayList, ""},
		{"11 am - 10 pm", ErrMalformedDayList, "11 am - 10 pm"},
		{"Mon, 11 am - 10 pm", ErrMalformedDayList, "11 am - 10 pm"},
		{"Mon - 11 am - 10 pm", ErrMalformedDayList, "11 am - 10 pm"},
		{"Mon-Fri 11 am - 10 pm / ", ErrMalformedDayList, ""},
		{"Mox-Fri 11 am - 10 pm", ErrInvalidDayToken, "Mox-Fri 11 am - 10 pm"},
		{"M, W, F 7 pm - 1 am", ErrInvalidDayToken, "M, W, F 7 pm - 1 am"},
		{"Mon-Fri 11 - 10 pm", ErrMalformedTime, "11 - 10 pm"},
		{"Mon-Fri 11:00 am - 10", ErrMalformedTime, "10"},
		{"Mon-Fri 13 am - 10 pm", ErrMalformedTime, "13 am - 10 pm"},
		{"Mon-Fri 0 am - 10 pm", ErrMalformedTime, "0 am - 10 pm"},
		{"Mon-Fri 11:5 am - 10 pm", ErrMalformedTime, "11:5 am - 10 pm"},
		{"Mon-Fri 11:75 am - 10 pm", ErrMalformedTime, "11:75 am - 10 pm"},
		{"Mon-Fri 11 am 10 pm", ErrMalformedTimeRange, "10 pm"},
		{"Mon-Fri 11 am - 10 pm extra", ErrMalformedTimeRange, "extra"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.near, parseErr.Near())
		})
	}
}

func TestDayRanges(t *testing.T) {
	tests := []struct {
		input string
		want  [][2]time.Weekday
		rest  string
	}{
		{"Mon-Wed, Fri-Sun", [][2]time.Weekday{{1, 3}, {5, 0}}, ""},
		{"Mon-Fri, Sat", [][2]time.Weekday{{1, 5}, {6, 6}}, ""},
		{"Sun, Mon-Wed", [][2]time.Weekday{{0, 0}, {1, 3}}, ""},
		{"Wed-Sun", [][2]time.Weekday{{3, 0}}, ""},
		{"Thurs-Fri 11:30 pm", [][2]time.Weekday{{4, 5}}, "11:30 pm"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := &scanner{src: tt.input}
			got, err := s.dayRanges()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rest, s.src[s.pos:])
		})
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		input string
		want  int
		rest  string
	}{
		{"11:00 am", 11 * 60, ""},
		{"1:30 pm", 13*60 + 30, ""},
		{"1 am", 60, ""},
		{"2:30 pm - 3:30 pm", 14*60 + 30, " - 3:30 pm"},
		{"10 pm", 22 * 60, ""},
		{"12 am", 0, ""},
		{"12:30 am", 30, ""},
		{"12 pm", 12 * 60, ""},
		{"12:45pm", 12*60 + 45, ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := &scanner{src: tt.input}
			got, err := s.clock()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rest, s.src[s.pos:])
		})
	}
}

func TestNumber(t *testing.T) {
	s := &scanner{src: "11:00"}
	value, digits := s.number()
	assert.Equal(t, 11, value)
	assert.Equal(t, 2, digits)
	assert.Equal(t, ":00", s.src[s.pos:])

	s = &scanner{src: "am"}
	_, digits = s.number()
	assert.Zero(t, digits)
}

func TestToMinutes(t *testing.T) {
	assert.Equal(t, 0, ToMinutes(12, 0, false))
	assert.Equal(t, 720, ToMinutes(12, 0, true))
	assert.Equal(t, 30, ToMinutes(12, 30, false))
	assert.Equal(t, 60, ToMinutes(1, 0, false))
	assert.Equal(t, 1320, ToMinutes(10, 0, true))
}

func TestParseErrorMessageNamesTheOffendingText(t *testing.T) {
	_, err := Parse("Mon-Fri 11 am 10 pm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed time range")
	assert.Contains(t, err.Error(), `"10 pm"`)
}
