package engine

import (
	"context"
	"time"

	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

// Decision is the outcome of a pre-trigger notification.
type Decision int

const (
	// Proceed lets the pending firing go ahead.
	Proceed Decision = iota
	// Cancel declines the pending firing; the item's skip flag is set.
	Cancel
)

// Executor performs the actual OS power operation. A failed execution is
// logged and recorded but never retried by the engine.
type Executor interface {
	Execute(ctx context.Context, kind pwrlib.Action) error
}

// Notifier handles the user-facing confirmation surfaces. Both calls block
// until the user answers. When the corresponding global option is off the
// engine never calls them and behaves as if the answer were Proceed/true.
type Notifier interface {
	// Notify shows the pre-trigger notification for a schedule item about
	// to fire.
	Notify(item pwrlib.ScheduleItem) Decision

	// Confirm asks whether a manually requested action should execute.
	Confirm(kind pwrlib.Action) bool
}

// Presenter renders a reminder message. It blocks until the user dismisses
// the message and reports whether snoozing was requested. At most one
// presentation runs at a time.
type Presenter interface {
	Present(item pwrlib.ReminderItem) (snoozeRequested bool, err error)
}

// Saver persists a configuration collection after a dirty evaluation pass.
type Saver interface {
	Save(cat pwrlib.Category) error
}

// Broadcaster posts a fire-and-forget data-changed notification after a
// successful save so other subscribers can re-read the collection.
type Broadcaster interface {
	Broadcast(cat pwrlib.Category)
}

// ClockSource is the engine's only time input. The engine reads it once
// per tick or event dispatch.
type ClockSource interface {
	Now() time.Time
}

// SystemClock reads the OS clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }

// SysState carries the process-wide indicators the engine reads but does
// not own. The hosting daemon sets and clears them around OS power
// transitions.
type SysState struct {
	// Suspended means the system was suspended and has just resumed.
	Suspended bool
	// SessionEnding means the user session is ending.
	SessionEnding bool
	// ActionExecuted means a power action was executed before the system
	// went down.
	ActionExecuted bool
}

// Outcome values recorded with history entries.
const (
	OutcomeExecuted   = "executed"
	OutcomeExecFailed = "exec-failed"
	OutcomeSkipped    = "skipped"
	OutcomeDisplayed  = "displayed"
	OutcomeSnoozed    = "snoozed"
)

// Record is one history entry emitted by the engine.
type Record struct {
	At       time.Time
	Category pwrlib.Category
	ItemID   int
	Action   pwrlib.Action
	Event    pwrlib.Event
	Outcome  string
	Detail   string
}

// Recorder receives history entries. Implementations must not block the
// tick for long; failures are the recorder's own concern.
type Recorder interface {
	Record(r Record)
}

// Default no-op collaborators used when the corresponding dependency is
// not wired.

type nopExecutor struct{}

func (nopExecutor) Execute(context.Context, pwrlib.Action) error { return nil }

type autoNotifier struct{}

func (autoNotifier) Notify(pwrlib.ScheduleItem) Decision { return Proceed }
func (autoNotifier) Confirm(pwrlib.Action) bool          { return true }

type nopPresenter struct{}

func (nopPresenter) Present(pwrlib.ReminderItem) (bool, error) { return false, nil }

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(pwrlib.Category) {}

type nopRecorder struct{}

func (nopRecorder) Record(Record) {}
