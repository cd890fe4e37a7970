package hours

import (
	"strings"
	"time"
)

const minDayTokenLength = 2

var dayNames = [...]string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

// dayAbbreviations maps every prefix of every day name, from the full name
// down to two characters, to its weekday. Filled once at init and only read
// afterwards.
var dayAbbreviations = func() map[string]time.Weekday {
	abbreviations := make(map[string]time.Weekday, 48)
	for day, name := range dayNames {
		for n := len(name); n >= minDayTokenLength; n-- {
			abbreviations[name[:n]] = time.Weekday(day)
		}
	}
	return abbreviations
}()

// ResolveDay maps a case-insensitive day abbreviation such as "Mon", "tues"
// or "Wednesday" to its weekday.
func ResolveDay(token string) (time.Weekday, error) {
	if len(token) < minDayTokenLength {
		return 0, &ParseError{Kind: ErrInvalidDayToken, Input: token}
	}
	day, ok := dayAbbreviations[strings.ToLower(token)]
	if !ok {
		return 0, &ParseError{Kind: ErrInvalidDayToken, Input: token}
	}
	return day, nil
}

// ExpandDays returns every weekday from start through end inclusive, walking
// forward and wrapping from Saturday to Sunday.
func ExpandDays(start, end time.Weekday) []time.Weekday {
	count := int(end-start+daysPerWeek)%daysPerWeek + 1
	days := make([]time.Weekday, count)
	for i := range days {
		days[i] = (start + time.Weekday(i)) % daysPerWeek
	}
	return days
}

// NextDay returns the weekday following day.
func NextDay(day time.Weekday) time.Weekday {
	return (day + 1) % daysPerWeek
}
