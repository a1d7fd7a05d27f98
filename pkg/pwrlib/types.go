// Package pwrlib provides the core data model for pwrsched: configured
// power-action schedules, reminder definitions, and the persistent store
// that owns them.
package pwrlib

import "fmt"

// Category distinguishes the two configured item kinds.
type Category int

const (
	// CategorySchedule identifies power-action schedule items.
	CategorySchedule Category = iota + 1
	// CategoryReminder identifies reminder items.
	CategoryReminder
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case CategorySchedule:
		return "schedule"
	case CategoryReminder:
		return "reminder"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Action is the power operation a schedule item performs when it fires.
type Action int

const (
	// ActionNone performs no operation.
	ActionNone Action = iota
	// ActionDisplayOff turns the display off.
	ActionDisplayOff
	// ActionSleep suspends the system to RAM.
	ActionSleep
	// ActionShutdown powers the system off.
	ActionShutdown
	// ActionRestart reboots the system.
	ActionRestart
	// ActionSignOut ends the current user session.
	ActionSignOut
	// ActionHibernate suspends the system to disk.
	ActionHibernate
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionDisplayOff: "displayoff",
	ActionSleep:      "sleep",
	ActionShutdown:   "shutdown",
	ActionRestart:    "restart",
	ActionSignOut:    "signout",
	ActionHibernate:  "hibernate",
}

// String returns the lowercase action name.
func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	_, ok := actionNames[a]
	return ok
}

// ParseAction resolves an action name as used on the CLI and the wire.
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if s == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", s)
}

// Event is the life-cycle occasion a reminder item is bound to.
type Event int

const (
	// EventAtSetTime fires at a configured clock time, driven by the tick.
	EventAtSetTime Event = iota + 1
	// EventAtAppStartup fires once when the daemon starts.
	EventAtAppStartup
	// EventAtSysWakeUp fires when the system resumes from sleep or hibernate.
	EventAtSysWakeUp
	// EventBeforePwrAction fires immediately before a power action executes.
	EventBeforePwrAction
	// EventWakeAfterAction fires after the system wakes following an
	// executed power action.
	EventWakeAfterAction
	// EventAtAppExit fires once when the daemon shuts down.
	EventAtAppExit
)

var eventNames = map[Event]string{
	EventAtSetTime:       "at-set-time",
	EventAtAppStartup:    "at-startup",
	EventAtSysWakeUp:     "at-wakeup",
	EventBeforePwrAction: "before-action",
	EventWakeAfterAction: "wake-after-action",
	EventAtAppExit:       "at-exit",
}

// String returns the event's wire name.
func (e Event) String() string {
	if s, ok := eventNames[e]; ok {
		return s
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// Valid reports whether e is a known event.
func (e Event) Valid() bool {
	_, ok := eventNames[e]
	return ok
}

// ParseEvent resolves an event name as used on the CLI and the wire.
func ParseEvent(s string) (Event, error) {
	for e, name := range eventNames {
		if s == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown event %q", s)
}

// Style selects how a reminder message is presented.
type Style int

const (
	// StyleMessageBox presents the reminder as a plain message box.
	StyleMessageBox Style = iota + 1
	// StyleDialogBox presents the reminder as a modal dialog.
	StyleDialogBox
)

// String returns the style's wire name.
func (s Style) String() string {
	switch s {
	case StyleMessageBox:
		return "msgbox"
	case StyleDialogBox:
		return "dialog"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	return s == StyleMessageBox || s == StyleDialogBox
}

// ParseStyle resolves a style name as used on the CLI and the wire.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "msgbox":
		return StyleMessageBox, nil
	case "dialog":
		return StyleDialogBox, nil
	default:
		return 0, fmt.Errorf("unknown style %q", s)
	}
}

// Item ID pools. The default schedule item carries a reserved ID; extra
// schedule items and reminder items draw from two disjoint bounded ranges.
const (
	// DefaultScheduleID is the reserved ID of the always-present default
	// schedule item.
	DefaultScheduleID = 0x1000
	// MinExtraScheduleID is the first assignable extra schedule item ID.
	MinExtraScheduleID = 0x1001
	// MaxExtraScheduleID is the last assignable extra schedule item ID.
	MaxExtraScheduleID = 0x1064
	// MinReminderID is the first assignable reminder item ID.
	MinReminderID = 0x2000
	// MaxReminderID is the last assignable reminder item ID.
	MaxReminderID = 0x2064
)

// Snooze interval bounds in seconds.
const (
	MinSnoozeInterval     = 60
	MaxSnoozeInterval     = 1800
	DefaultSnoozeInterval = 600
)

// ScheduleItem represents one scheduled power action.
type ScheduleItem struct {
	// ItemID is the unique identifier of the item. The default item uses
	// DefaultScheduleID; extras draw from the extra-schedule pool.
	ItemID int `json:"item_id"`
	// Enabled gates all evaluation of the item.
	Enabled bool `json:"enabled"`
	// Repeat keeps the item enabled after it fires. A non-repeating item
	// is disabled after a single firing.
	Repeat bool `json:"repeat"`
	// ActiveDays restricts a repeating item to the set weekdays.
	ActiveDays DaySet `json:"active_days"`
	// Action is the power operation performed when the item fires.
	Action Action `json:"action"`
	// Time is the wall-clock firing time.
	Time Clock `json:"time"`
	// AllowSnooze permits snoozing from the pre-trigger notification.
	AllowSnooze bool `json:"allow_snooze"`
	// SnoozeInterval is the snooze delay in seconds.
	SnoozeInterval int `json:"snooze_interval"`
}

// IsDefault reports whether the item is the reserved default schedule entry.
func (it ScheduleItem) IsDefault() bool {
	return it.ItemID == DefaultScheduleID
}

// MsgStyle is an optional per-reminder presentation override.
type MsgStyle struct {
	// Background is the background color name or hex value.
	Background string `json:"background,omitempty"`
	// Foreground is the text color name or hex value.
	Foreground string `json:"foreground,omitempty"`
	// FontSize is the message font size in points; zero means default.
	FontSize int `json:"font_size,omitempty"`
}

// ReminderItem represents one reminder message definition.
type ReminderItem struct {
	// ItemID is the unique identifier, drawn from the reminder ID pool.
	ItemID int `json:"item_id"`
	// Enabled gates all evaluation of the item.
	Enabled bool `json:"enabled"`
	// Message is the reminder text shown to the user.
	Message string `json:"message"`
	// Event is the life-cycle occasion the reminder is bound to.
	Event Event `json:"event"`
	// Time is the firing time; only consulted when Event is EventAtSetTime.
	Time Clock `json:"time"`
	// Repeat keeps the item enabled after it fires.
	Repeat bool `json:"repeat"`
	// ActiveDays restricts a repeating at-set-time item to the set weekdays.
	ActiveDays DaySet `json:"active_days"`
	// Style selects the presentation kind.
	Style Style `json:"style"`
	// StyleOverride optionally customizes the presentation.
	StyleOverride *MsgStyle `json:"style_override,omitempty"`
	// AllowSnooze permits the user to snooze the reminder.
	AllowSnooze bool `json:"allow_snooze"`
	// SnoozeInterval is the snooze delay in seconds.
	SnoozeInterval int `json:"snooze_interval"`
}
