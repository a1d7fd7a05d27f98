package pwrcli

import (
	"context"

	"github.com/pwrsched/pwrsched/common"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

// GetVersion reports the daemon's version.
func (c *Client) GetVersion(ctx context.Context) (*common.VersionResponse, error) {
	return invoke[common.VersionResponse](ctx, c, "system.getVersion", nil)
}

// Stop asks the daemon to shut down.
func (c *Client) Stop(ctx context.Context) error {
	_, err := c.call(ctx, "system.stop", nil)
	return err
}

// Status reports the engine's current state.
func (c *Client) Status(ctx context.Context) (*common.StatusResponse, error) {
	return invoke[common.StatusResponse](ctx, c, "engine.status", nil)
}

// GetOptions fetches the global options.
func (c *Client) GetOptions(ctx context.Context) (*pwrlib.Options, error) {
	resp, err := invoke[common.OptionsResponse](ctx, c, "engine.getOptions", nil)
	if err != nil {
		return nil, err
	}
	return &resp.Options, nil
}

// SetOptions replaces the global options.
func (c *Client) SetOptions(ctx context.Context, o pwrlib.Options) error {
	_, err := c.call(ctx, "engine.setOptions", common.OptionsParams{Options: o})
	return err
}

// AddSchedule creates a schedule item and returns its assigned id.
func (c *Client) AddSchedule(ctx context.Context, it pwrlib.ScheduleItem) (int, error) {
	resp, err := invoke[common.ScheduleAddResponse](ctx, c, "schedule.add", common.ScheduleAddParams{Item: it})
	if err != nil {
		return 0, err
	}
	return resp.ItemId, nil
}

// ListSchedules returns all schedule items, default first.
func (c *Client) ListSchedules(ctx context.Context) ([]*pwrlib.ScheduleItem, error) {
	resp, err := invoke[common.ScheduleListResponse](ctx, c, "schedule.list", nil)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// UpdateSchedule replaces an existing schedule item.
func (c *Client) UpdateSchedule(ctx context.Context, it pwrlib.ScheduleItem) error {
	_, err := c.call(ctx, "schedule.update", common.ScheduleUpdateParams{Item: it})
	return err
}

// RemoveSchedule deletes a schedule item; the default item is reset
// instead of deleted.
func (c *Client) RemoveSchedule(ctx context.Context, id int) error {
	_, err := c.call(ctx, "schedule.remove", common.ItemIdParams{ItemId: id})
	return err
}

// RemoveAllSchedules deletes every extra schedule item and resets the
// default one.
func (c *Client) RemoveAllSchedules(ctx context.Context) error {
	_, err := c.call(ctx, "schedule.removeAll", nil)
	return err
}

// EnableSchedule toggles a schedule item.
func (c *Client) EnableSchedule(ctx context.Context, id int, enabled bool) error {
	_, err := c.call(ctx, "schedule.enable", common.EnableParams{ItemId: id, Enabled: enabled})
	return err
}

// AddReminder creates a reminder item and returns its assigned id.
func (c *Client) AddReminder(ctx context.Context, it pwrlib.ReminderItem) (int, error) {
	resp, err := invoke[common.ReminderAddResponse](ctx, c, "reminder.add", common.ReminderAddParams{Item: it})
	if err != nil {
		return 0, err
	}
	return resp.ItemId, nil
}

// ListReminders returns all reminder items.
func (c *Client) ListReminders(ctx context.Context) ([]*pwrlib.ReminderItem, error) {
	resp, err := invoke[common.ReminderListResponse](ctx, c, "reminder.list", nil)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// UpdateReminder replaces an existing reminder item.
func (c *Client) UpdateReminder(ctx context.Context, it pwrlib.ReminderItem) error {
	_, err := c.call(ctx, "reminder.update", common.ReminderUpdateParams{Item: it})
	return err
}

// RemoveReminder deletes a reminder item.
func (c *Client) RemoveReminder(ctx context.Context, id int) error {
	_, err := c.call(ctx, "reminder.remove", common.ItemIdParams{ItemId: id})
	return err
}

// RemoveAllReminders deletes every reminder item.
func (c *Client) RemoveAllReminders(ctx context.Context) error {
	_, err := c.call(ctx, "reminder.removeAll", nil)
	return err
}

// EnableReminder toggles a reminder item.
func (c *Client) EnableReminder(ctx context.Context, id int, enabled bool) error {
	_, err := c.call(ctx, "reminder.enable", common.EnableParams{ItemId: id, Enabled: enabled})
	return err
}

// Execute runs a power action through the daemon.
func (c *Client) Execute(ctx context.Context, action string) error {
	_, err := c.call(ctx, "power.execute", common.ExecuteParams{Action: action})
	return err
}

// ListHistory returns recorded occurrences, newest first.
func (c *Client) ListHistory(ctx context.Context, limit int) ([]common.HistoryEntry, error) {
	resp, err := invoke[common.HistoryListResponse](ctx, c, "history.list", common.HistoryListParams{Limit: limit})
	if err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// FlushHistory clears the history log.
func (c *Client) FlushHistory(ctx context.Context) error {
	_, err := c.call(ctx, "history.flush", nil)
	return err
}
