package pwrlib

import (
	"fmt"
	"strings"
	"time"
)

// DaySet is a 7-bit weekday set, one bit per weekday with Sunday as bit 0,
// matching time.Weekday numbering.
type DaySet uint8

// AllDays has every weekday bit set.
const AllDays DaySet = 0x7F

// Weekdays covers Monday through Friday.
const Weekdays DaySet = 0x3E

// Weekend covers Saturday and Sunday.
const Weekend DaySet = 0x41

var dayNames = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// Has reports whether the set contains the given weekday.
func (d DaySet) Has(w time.Weekday) bool {
	return d&(1<<uint(w)) != 0
}

// With returns the set with the given weekday added.
func (d DaySet) With(w time.Weekday) DaySet {
	return d | 1<<uint(w)
}

// Without returns the set with the given weekday removed.
func (d DaySet) Without(w time.Weekday) DaySet {
	return d &^ (1 << uint(w))
}

// Empty reports whether no weekday bit is set.
func (d DaySet) Empty() bool {
	return d&AllDays == 0
}

// String renders the set as a comma-separated day list, or "all" / "none"
// for the two degenerate values.
func (d DaySet) String() string {
	if d&AllDays == AllDays {
		return "all"
	}
	if d.Empty() {
		return "none"
	}
	var names []string
	for w := time.Sunday; w <= time.Saturday; w++ {
		if d.Has(w) {
			names = append(names, dayNames[w])
		}
	}
	return strings.Join(names, ",")
}

// ParseDaySet parses a day list such as "mon,tue,fri". The aliases "all",
// "weekdays" and "weekend" are accepted, as is "none" for the empty set.
func ParseDaySet(s string) (DaySet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "everyday", "daily":
		return AllDays, nil
	case "weekdays":
		return Weekdays, nil
	case "weekend":
		return Weekend, nil
	case "none", "":
		return 0, nil
	}
	var d DaySet
	for _, tok := range strings.Split(s, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		found := false
		for w, name := range dayNames {
			if tok == name {
				d = d.With(time.Weekday(w))
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown day %q", tok)
		}
	}
	return d, nil
}
