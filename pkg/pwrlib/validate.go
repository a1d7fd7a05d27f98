package pwrlib

import "fmt"

// NormalizeSchedule auto-corrects recoverable problems on a schedule item:
// a repeating item with an empty day set gets all days, and an out-of-range
// snooze interval is reset to the default. Returns true if anything changed.
func NormalizeSchedule(it *ScheduleItem) bool {
	changed := false
	if it.Repeat && it.ActiveDays.Empty() {
		it.ActiveDays = AllDays
		changed = true
	}
	if it.SnoozeInterval < MinSnoozeInterval || it.SnoozeInterval > MaxSnoozeInterval {
		it.SnoozeInterval = DefaultSnoozeInterval
		changed = true
	}
	return changed
}

// ValidateSchedule checks a schedule item for problems that cannot be
// auto-corrected. It is called at add/update time, never on the tick path.
func ValidateSchedule(it ScheduleItem) error {
	if it.ItemID != DefaultScheduleID &&
		(it.ItemID < MinExtraScheduleID || it.ItemID > MaxExtraScheduleID) {
		return fmt.Errorf("schedule item %#x: %w", it.ItemID, ErrItemIDOutOfRange)
	}
	if !it.Action.Valid() {
		return fmt.Errorf("schedule item %#x: %w (%d)", it.ItemID, ErrUnknownAction, int(it.Action))
	}
	return nil
}

// NormalizeReminder auto-corrects recoverable problems on a reminder item,
// mirroring NormalizeSchedule. Returns true if anything changed.
func NormalizeReminder(it *ReminderItem) bool {
	changed := false
	if it.Repeat && it.ActiveDays.Empty() {
		it.ActiveDays = AllDays
		changed = true
	}
	if it.SnoozeInterval < MinSnoozeInterval || it.SnoozeInterval > MaxSnoozeInterval {
		it.SnoozeInterval = DefaultSnoozeInterval
		changed = true
	}
	if it.Style == 0 {
		it.Style = StyleMessageBox
		changed = true
	}
	return changed
}

// ValidateReminder checks a reminder item for problems that cannot be
// auto-corrected.
func ValidateReminder(it ReminderItem) error {
	if it.ItemID < MinReminderID || it.ItemID > MaxReminderID {
		return fmt.Errorf("reminder item %#x: %w", it.ItemID, ErrItemIDOutOfRange)
	}
	if it.Message == "" {
		return fmt.Errorf("reminder item %#x: %w", it.ItemID, ErrEmptyMessage)
	}
	if !it.Event.Valid() {
		return fmt.Errorf("reminder item %#x: %w (%d)", it.ItemID, ErrUnknownEvent, int(it.Event))
	}
	if !it.Style.Valid() {
		return fmt.Errorf("reminder item %#x: %w (%d)", it.ItemID, ErrUnknownStyle, int(it.Style))
	}
	return nil
}
