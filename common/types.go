package common

import "github.com/pwrsched/pwrsched/pkg/pwrlib"

type VersionResponse struct {
	Version string `json:"version"`
}

type StatusResponse struct {
	Clock            string `json:"clock"`
	ScheduleEnabled  bool   `json:"schedule_enabled"`
	NotifySchedule   bool   `json:"notify_schedule"`
	RemindersEnabled bool   `json:"reminders_enabled"`
	ConfirmAction    bool   `json:"confirm_action"`
	Schedules        int    `json:"schedules"`
	Reminders        int    `json:"reminders"`
}

type ItemIdParams struct {
	ItemId int `json:"item_id"`
}

type ScheduleAddParams struct {
	Item pwrlib.ScheduleItem `json:"item"`
}

type ScheduleAddResponse struct {
	ItemId int `json:"item_id"`
}

type ScheduleUpdateParams struct {
	Item pwrlib.ScheduleItem `json:"item"`
}

type ScheduleListResponse struct {
	Items []*pwrlib.ScheduleItem `json:"items"`
}

type ReminderAddParams struct {
	Item pwrlib.ReminderItem `json:"item"`
}

type ReminderAddResponse struct {
	ItemId int `json:"item_id"`
}

type ReminderUpdateParams struct {
	Item pwrlib.ReminderItem `json:"item"`
}

type ReminderListResponse struct {
	Items []*pwrlib.ReminderItem `json:"items"`
}

type EnableParams struct {
	ItemId  int  `json:"item_id"`
	Enabled bool `json:"enabled"`
}

type OptionsParams struct {
	Options pwrlib.Options `json:"options"`
}

type OptionsResponse struct {
	Options pwrlib.Options `json:"options"`
}

type ExecuteParams struct {
	Action string `json:"action"`
}

type HistoryListParams struct {
	Limit int `json:"limit,omitempty"`
}

type HistoryEntry struct {
	Id       string `json:"id"`
	At       string `json:"at"`
	Category string `json:"category"`
	ItemId   int    `json:"item_id"`
	Action   string `json:"action,omitempty"`
	Event    string `json:"event,omitempty"`
	Outcome  string `json:"outcome"`
	Detail   string `json:"detail,omitempty"`
}

type HistoryListResponse struct {
	Entries []HistoryEntry `json:"entries"`
}

// ChangeNotification is pushed to websocket subscribers whenever a
// category's persisted items change.
type ChangeNotification struct {
	Category string `json:"category"`
}
