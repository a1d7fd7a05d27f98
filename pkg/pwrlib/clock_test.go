package pwrlib

import (
	"testing"
	"time"
)

func TestClockSecondOfDay(t *testing.T) {
	c := Clock{Hour: 1, Minute: 2, Second: 3}
	if got := c.SecondOfDay(); got != 3723 {
		t.Errorf("SecondOfDay = %d, want 3723", got)
	}
	if got := c.MinuteOfDay(); got != 62 {
		t.Errorf("MinuteOfDay = %d, want 62", got)
	}
}

func TestClockAddSecondsWraps(t *testing.T) {
	cases := []struct {
		in   Clock
		n    int
		want Clock
	}{
		{MakeClock(23, 58), 600, Clock{Hour: 0, Minute: 8}},
		{MakeClock(0, 5), -600, Clock{Hour: 23, Minute: 55}},
		{MakeClock(12, 0), 0, Clock{Hour: 12}},
		{MakeClock(0, 0), -1, Clock{Hour: 23, Minute: 59, Second: 59}},
		{Clock{Hour: 23, Minute: 59, Second: 59}, 1, Clock{}},
	}
	for _, tc := range cases {
		if got := tc.in.AddSeconds(tc.n); got != tc.want {
			t.Errorf("%v.AddSeconds(%d) = %v, want %v", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestClockOf(t *testing.T) {
	ts := time.Date(2025, time.March, 10, 14, 30, 45, 0, time.UTC)
	if got := ClockOf(ts); got != (Clock{Hour: 14, Minute: 30, Second: 45}) {
		t.Errorf("ClockOf = %v", got)
	}
}

func TestParseClock(t *testing.T) {
	good := map[string]Clock{
		"09:30":    {Hour: 9, Minute: 30},
		"0:05":     {Minute: 5},
		"23:59":    {Hour: 23, Minute: 59},
		"12:00:30": {Hour: 12, Second: 30},
	}
	for in, want := range good {
		got, err := ParseClock(in)
		if err != nil {
			t.Errorf("ParseClock(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseClock(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"", "9", "24:00", "12:60", "aa:bb", "1:2:3:4"} {
		if _, err := ParseClock(in); err == nil {
			t.Errorf("ParseClock(%q) should fail", in)
		}
	}
}

func TestClockString(t *testing.T) {
	if got := MakeClock(7, 5).String(); got != "07:05" {
		t.Errorf("String = %q, want 07:05", got)
	}
}
