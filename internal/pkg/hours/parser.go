// Package hours parses free-text weekly opening hours such as
// "Mon-Thu, Sun 11:30 am - 9 pm / Fri-Sat 11:30 am - 10 pm" into
// minute-of-day ranges.
package hours

import (
	"strings"
	"time"
)

const (
	daysPerWeek    = 7
	minutesPerHour = 60

	// MinutesPerDay is also the end value of a range that runs through
	// midnight.
	MinutesPerDay = 24 * minutesPerHour

	groupSeparator = "/"
)

// HourRange is a span of minutes past midnight, Start through End inclusive,
// applying to each of Days. End is never less than Start: ranges that cross
// midnight are split in two at parse time.
type HourRange struct {
	Days  []time.Weekday `json:"days"`
	Start int            `json:"start_minute"`
	End   int            `json:"end_minute"`
}

// Parse parses a full hours string made of "/"-separated groups.
func Parse(hours string) ([]HourRange, error) {
	var ranges []HourRange
	for _, group := range strings.Split(hours, groupSeparator) {
		groupRanges, err := ParseGroup(strings.TrimSpace(group))
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, groupRanges...)
	}
	return ranges, nil
}

// ParseGroup parses one group, a day list followed by a single time range.
// It returns two ranges when the time range crosses midnight.
func ParseGroup(group string) ([]HourRange, error) {
	s := &scanner{src: group}

	dayRanges, err := s.dayRanges()
	if err != nil {
		return nil, err
	}
	start, end, err := s.timeRange()
	if err != nil {
		return nil, err
	}

	var days []time.Weekday
	seen := [daysPerWeek]bool{}
	for _, dayRange := range dayRanges {
		for _, day := range ExpandDays(dayRange[0], dayRange[1]) {
			if seen[day] {
				continue
			}
			seen[day] = true
			days = append(days, day)
		}
	}

	return splitAtMidnight(days, start, end), nil
}

func splitAtMidnight(days []time.Weekday, start, end int) []HourRange {
	if end > start {
		return []HourRange{{Days: days, Start: start, End: end}}
	}

	nextDays := make([]time.Weekday, len(days))
	for i, day := range days {
		nextDays[i] = NextDay(day)
	}
	return []HourRange{
		{Days: days, Start: start, End: MinutesPerDay},
		{Days: nextDays, Start: 0, End: end},
	}
}

// ToMinutes converts a 12-hour clock reading to minutes past midnight.
// 12 am is midnight and 12 pm is noon.
func ToMinutes(hour, minute int, pm bool) int {
	if hour == 12 {
		hour = 0
	}
	if pm {
		hour += 12
	}
	return hour*minutesPerHour + minute
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

func (s *scanner) failAt(kind error, offset int) error {
	return &ParseError{Kind: kind, Input: s.src, Offset: offset}
}

// dayRanges reads comma separated day tokens until the time portion.
func (s *scanner) dayRanges() ([][2]time.Weekday, error) {
	var ranges [][2]time.Weekday
	for {
		s.skipSpace()
		dayRange, err := s.dayRange()
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, dayRange)

		s.skipSpace()
		if s.peek() != ',' {
			return ranges, nil
		}
		s.pos++
	}
}

// dayRange reads "DAY" or "DAY - DAY". A single day is returned as a range
// starting and ending on that day.
func (s *scanner) dayRange() ([2]time.Weekday, error) {
	start, err := s.day()
	if err != nil {
		return [2]time.Weekday{}, err
	}

	s.skipSpace()
	if s.peek() != '-' {
		return [2]time.Weekday{start, start}, nil
	}
	s.pos++
	s.skipSpace()

	end, err := s.day()
	if err != nil {
		return [2]time.Weekday{}, err
	}
	return [2]time.Weekday{start, end}, nil
}

func (s *scanner) day() (time.Weekday, error) {
	begin := s.pos
	for !s.eof() && isLetter(s.src[s.pos]) {
		s.pos++
	}
	if begin == s.pos {
		return 0, s.failAt(ErrMalformedDayList, begin)
	}

	day, err := ResolveDay(s.src[begin:s.pos])
	if err != nil {
		return 0, s.failAt(ErrInvalidDayToken, begin)
	}
	return day, nil
}

// timeRange reads "TIME - TIME" and requires nothing but whitespace after it.
func (s *scanner) timeRange() (int, int, error) {
	start, err := s.clock()
	if err != nil {
		return 0, 0, err
	}

	s.skipSpace()
	if s.peek() != '-' {
		return 0, 0, s.failAt(ErrMalformedTimeRange, s.pos)
	}
	s.pos++
	s.skipSpace()

	end, err := s.clock()
	if err != nil {
		return 0, 0, err
	}

	s.skipSpace()
	if !s.eof() {
		return 0, 0, s.failAt(ErrMalformedTimeRange, s.pos)
	}
	return start, end, nil
}

// clock reads "H[:MM] am|pm" and returns minutes past midnight.
func (s *scanner) clock() (int, error) {
	begin := s.pos

	hour, digits := s.number()
	if digits == 0 || digits > 2 || hour < 1 || hour > 12 {
		return 0, s.failAt(ErrMalformedTime, begin)
	}

	minute := 0
	if s.peek() == ':' {
		s.pos++
		minute, digits = s.number()
		if digits != 2 || minute > 59 {
			return 0, s.failAt(ErrMalformedTime, begin)
		}
	}

	s.skipSpace()
	if len(s.src)-s.pos < 2 {
		return 0, s.failAt(ErrMalformedTime, begin)
	}
	var pm bool
	switch strings.ToLower(s.src[s.pos : s.pos+2]) {
	case "am":
	case "pm":
		pm = true
	default:
		return 0, s.failAt(ErrMalformedTime, begin)
	}
	s.pos += 2

	return ToMinutes(hour, minute, pm), nil
}

// number reads a run of decimal digits and returns its value and length.
func (s *scanner) number() (int, int) {
	value, begin := 0, s.pos
	for !s.eof() && isDigit(s.src[s.pos]) {
		if s.pos-begin < 4 {
			value = value*10 + int(s.src[s.pos]-'0')
		}
		s.pos++
	}
	return value, s.pos - begin
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
