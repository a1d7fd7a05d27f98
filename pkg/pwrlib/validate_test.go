package pwrlib

import (
	"errors"
	"testing"
)

func TestNormalizeScheduleRepairsDays(t *testing.T) {
	it := ScheduleItem{ItemID: MinExtraScheduleID, Repeat: true}
	if !NormalizeSchedule(&it) {
		t.Fatal("normalize should report a change")
	}
	if it.ActiveDays != AllDays {
		t.Error("repeat with empty day set must auto-correct to all days")
	}
	if it.SnoozeInterval != DefaultSnoozeInterval {
		t.Error("zero snooze interval must auto-correct to the default")
	}
}

func TestNormalizeScheduleClampsInterval(t *testing.T) {
	it := ScheduleItem{ItemID: MinExtraScheduleID, SnoozeInterval: MaxSnoozeInterval + 1}
	NormalizeSchedule(&it)
	if it.SnoozeInterval != DefaultSnoozeInterval {
		t.Errorf("interval = %d, want %d", it.SnoozeInterval, DefaultSnoozeInterval)
	}
	ok := ScheduleItem{ItemID: MinExtraScheduleID, SnoozeInterval: MinSnoozeInterval}
	if NormalizeSchedule(&ok) {
		t.Error("in-range interval must not be touched")
	}
}

func TestValidateScheduleIDRange(t *testing.T) {
	bad := ScheduleItem{ItemID: 42, Action: ActionSleep}
	if err := ValidateSchedule(bad); !errors.Is(err, ErrItemIDOutOfRange) {
		t.Errorf("expected ErrItemIDOutOfRange, got %v", err)
	}
	def := ScheduleItem{ItemID: DefaultScheduleID, Action: ActionSleep}
	if err := ValidateSchedule(def); err != nil {
		t.Errorf("default id must validate: %v", err)
	}
}

func TestValidateScheduleAction(t *testing.T) {
	it := ScheduleItem{ItemID: MinExtraScheduleID, Action: Action(77)}
	if err := ValidateSchedule(it); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestValidateReminder(t *testing.T) {
	good := ReminderItem{
		ItemID:         MinReminderID,
		Message:        "ok",
		Event:          EventAtSetTime,
		Style:          StyleDialogBox,
		SnoozeInterval: DefaultSnoozeInterval,
	}
	if err := ValidateReminder(good); err != nil {
		t.Errorf("valid reminder rejected: %v", err)
	}

	bad := good
	bad.Style = Style(9)
	if err := ValidateReminder(bad); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("expected ErrUnknownStyle, got %v", err)
	}
}

func TestParseRoundTrips(t *testing.T) {
	for a := ActionNone; a <= ActionHibernate; a++ {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, err)
		}
	}
	for e := EventAtSetTime; e <= EventAtAppExit; e++ {
		got, err := ParseEvent(e.String())
		if err != nil || got != e {
			t.Errorf("ParseEvent(%q) = %v, %v", e.String(), got, err)
		}
	}
	for _, s := range []Style{StyleMessageBox, StyleDialogBox} {
		got, err := ParseStyle(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStyle(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseAction("explode"); err == nil {
		t.Error("unknown action must fail")
	}
}
