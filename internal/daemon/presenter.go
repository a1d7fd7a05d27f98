package daemon

import (
	"github.com/pwrsched/pwrsched/internal/engine"
	"github.com/pwrsched/pwrsched/pkg/logger"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

// ConsolePresenter shows reminders through the daemon log. Desktop
// builds replace it with a toast or dialog presenter.
type ConsolePresenter struct {
	Log logger.Logger
}

var _ engine.Presenter = (*ConsolePresenter)(nil)

// Present logs the reminder. The console surface has no snooze button,
// so it never requests one.
func (p *ConsolePresenter) Present(it pwrlib.ReminderItem) (bool, error) {
	p.Log.Info("reminder [%s] %#x: %s", it.Style, it.ItemID, it.Message)
	return false, nil
}

// ConsoleNotifier announces imminent schedule actions through the log.
// It always lets the action proceed; interactive frontends return
// Cancel when the user intervenes.
type ConsoleNotifier struct {
	Log logger.Logger
}

var _ engine.Notifier = (*ConsoleNotifier)(nil)

// Notify logs the pre-trigger warning and proceeds.
func (n *ConsoleNotifier) Notify(it pwrlib.ScheduleItem) engine.Decision {
	n.Log.Info("schedule %#x: %s in 30 seconds", it.ItemID, it.Action)
	return engine.Proceed
}

// Confirm approves manual actions unattended.
func (n *ConsoleNotifier) Confirm(kind pwrlib.Action) bool {
	n.Log.Info("confirming %s", kind)
	return true
}
