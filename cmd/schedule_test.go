package cmd

import (
	"testing"

	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

func TestParseItemID(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"4096", 0x1000, false},
		{"0x1000", 0x1000, false},
		{"0x2001", 0x2001, false},
		{" 0x1001 ", 0x1001, false},
		{"banana", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := parseItemID(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseItemID(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseItemID(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseItemID(%q) = %#x; want %#x", tc.in, got, tc.want)
		}
	}
}

func TestCronExpr(t *testing.T) {
	tests := []struct {
		name string
		time pwrlib.Clock
		days pwrlib.DaySet
		want string
	}{
		{"all days", pwrlib.MakeClock(22, 30), pwrlib.AllDays, "30 22 * * *"},
		{"weekdays", pwrlib.MakeClock(9, 0), pwrlib.Weekdays, "0 9 * * 1,2,3,4,5"},
		{"weekend", pwrlib.MakeClock(0, 5), pwrlib.Weekend, "5 0 * * 0,6"},
		{"single day", pwrlib.MakeClock(12, 15), pwrlib.DaySet(0).With(3), "15 12 * * 3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cronExpr(tc.time, tc.days); got != tc.want {
				t.Errorf("cronExpr = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestNextRunDisabled(t *testing.T) {
	if got := nextRun(pwrlib.MakeClock(22, 0), pwrlib.AllDays, false); got != "-" {
		t.Errorf("nextRun disabled = %q; want -", got)
	}
	if got := nextRun(pwrlib.MakeClock(22, 0), 0, true); got != "-" {
		t.Errorf("nextRun empty days = %q; want -", got)
	}
}

func TestNextRunEnabled(t *testing.T) {
	got := nextRun(pwrlib.MakeClock(22, 0), pwrlib.AllDays, true)
	if got == "-" || got == "" {
		t.Errorf("nextRun = %q; want a formatted time", got)
	}
}
