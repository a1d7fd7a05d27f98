package pwrlib

import (
	"testing"
	"time"
)

func TestDaySetBits(t *testing.T) {
	var d DaySet
	d = d.With(time.Monday).With(time.Friday)
	if !d.Has(time.Monday) || !d.Has(time.Friday) {
		t.Error("set days missing")
	}
	if d.Has(time.Sunday) {
		t.Error("unset day present")
	}
	d = d.Without(time.Monday)
	if d.Has(time.Monday) {
		t.Error("removed day still present")
	}
}

func TestDaySetAliases(t *testing.T) {
	for w := time.Sunday; w <= time.Saturday; w++ {
		if !AllDays.Has(w) {
			t.Errorf("AllDays missing %s", w)
		}
	}
	if Weekdays.Has(time.Saturday) || Weekdays.Has(time.Sunday) {
		t.Error("Weekdays must exclude the weekend")
	}
	if !Weekend.Has(time.Saturday) || !Weekend.Has(time.Sunday) {
		t.Error("Weekend must contain both weekend days")
	}
	if Weekdays|Weekend != AllDays {
		t.Error("Weekdays and Weekend must partition AllDays")
	}
}

func TestParseDaySet(t *testing.T) {
	d, err := ParseDaySet("mon,wed,fri")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := DaySet(0).With(time.Monday).With(time.Wednesday).With(time.Friday)
	if d != want {
		t.Errorf("got %v, want %v", d, want)
	}

	for in, want := range map[string]DaySet{
		"all":      AllDays,
		"weekdays": Weekdays,
		"weekend":  Weekend,
		"none":     0,
	} {
		got, err := ParseDaySet(in)
		if err != nil || got != want {
			t.Errorf("ParseDaySet(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	if _, err := ParseDaySet("mon,funday"); err == nil {
		t.Error("unknown day must fail")
	}
}

func TestDaySetString(t *testing.T) {
	if got := AllDays.String(); got != "all" {
		t.Errorf("AllDays.String() = %q", got)
	}
	if got := DaySet(0).String(); got != "none" {
		t.Errorf("empty String() = %q", got)
	}
	d := DaySet(0).With(time.Tuesday).With(time.Thursday)
	if got := d.String(); got != "tue,thu" {
		t.Errorf("String() = %q, want tue,thu", got)
	}
}
