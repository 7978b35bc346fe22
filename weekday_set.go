package calendars

import (
	"strings"
	"time"
)

// WeekdaySet is a set of weekdays stored as a bitmask, bit n for time.Weekday(n).
type WeekdaySet uint8

// NewWeekdaySet returns the set containing days. Out of range values are ignored.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var set WeekdaySet
	for _, day := range days {
		if day < time.Sunday || day > time.Saturday {
			continue
		}
		set |= 1 << uint(day)
	}
	return set
}

func (s WeekdaySet) Contains(day time.Weekday) bool {
	if day < time.Sunday || day > time.Saturday {
		return false
	}
	return s&(1<<uint(day)) != 0
}

// Len returns the number of days in the set.
func (s WeekdaySet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Days lists the members starting from Sunday.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, s.Len())
	for day := time.Sunday; day <= time.Saturday; day++ {
		if s.Contains(day) {
			days = append(days, day)
		}
	}
	return days
}

func (s WeekdaySet) String() string {
	days := s.Days()
	names := make([]string, len(days))
	for i, day := range days {
		names[i] = day.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}
