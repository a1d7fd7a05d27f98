package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pwrsched/pwrsched/pkg/logger"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

const (
	// preNotifySeconds is the pre-trigger notification window: the
	// notifier fires this many seconds ahead of the configured time.
	preNotifySeconds = 30

	// resumeDebounceTicks suppresses duplicate OS suspend/resume
	// notifications for this many ticks after the first one is handled.
	resumeDebounceTicks = 3
)

// ErrActionDeclined is returned by ExecuteAction when the user declines
// the confirmation prompt.
var ErrActionDeclined = errors.New("action declined by user")

// Config wires the engine's collaborators. Store is required; every other
// field falls back to an inert default when nil.
type Config struct {
	Store       *pwrlib.Store
	Executor    Executor
	Notifier    Notifier
	Presenter   Presenter
	Saver       Saver
	Broadcaster Broadcaster
	Clock       ClockSource
	Recorder    Recorder
	Log         logger.Logger
}

// Engine is the schedule/reminder runtime. See the package documentation
// for the concurrency contract.
type Engine struct {
	mu    sync.Mutex
	store *pwrlib.Store
	rt    *runtimeQueue

	exec      Executor
	notifier  Notifier
	presenter Presenter
	saver     Saver
	broadcast Broadcaster
	clock     ClockSource
	recorder  Recorder
	log       logger.Logger

	debounce     int
	wakeFollowUp bool
	ticks        int64
	lastTick     time.Time
}

// New builds an Engine and initializes a runtime record for every
// configured item.
func New(cfg Config) *Engine {
	e := &Engine{
		store:     cfg.Store,
		rt:        newRuntimeQueue(),
		exec:      cfg.Executor,
		notifier:  cfg.Notifier,
		presenter: cfg.Presenter,
		saver:     cfg.Saver,
		broadcast: cfg.Broadcaster,
		clock:     cfg.Clock,
		recorder:  cfg.Recorder,
		log:       cfg.Log,
	}
	if e.exec == nil {
		e.exec = nopExecutor{}
	}
	if e.notifier == nil {
		e.notifier = autoNotifier{}
	}
	if e.presenter == nil {
		e.presenter = nopPresenter{}
	}
	if e.saver == nil {
		e.saver = cfg.Store
	}
	if e.broadcast == nil {
		e.broadcast = nopBroadcaster{}
	}
	if e.clock == nil {
		e.clock = SystemClock{}
	}
	if e.recorder == nil {
		e.recorder = nopRecorder{}
	}
	if e.log == nil {
		e.log = logger.NewNopLogger()
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reconcile(pwrlib.CategorySchedule, ReconcileInit)
	e.reconcile(pwrlib.CategoryReminder, ReconcileInit)
	return e
}

// Tick runs one evaluation pass: the action schedule processor followed by
// the at-set-time branch of the reminder processor. Invoked once per
// second by the daemon run loop.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock.Now()
	e.ticks++
	e.lastTick = now
	if e.debounce > 0 {
		e.debounce--
	}
	opts := e.store.Options()
	if opts.EnableSchedule {
		e.processSchedules(now, opts)
	}
	if opts.EnableReminders {
		e.processReminders(now, pwrlib.EventAtSetTime, SysState{})
	}
}

// DispatchEvent runs the reminder processor for a life-cycle event fired
// by the hosting daemon. One physical resume is one debounce decision:
// the wake-up signal arms the window and duplicate wake-ups within it
// are dropped, while the wake-after-action event accompanying that same
// wake-up passes through once.
func (e *Engine) DispatchEvent(evt pwrlib.Event, sys SysState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.store.Options().EnableReminders {
		return
	}
	switch evt {
	case pwrlib.EventAtSysWakeUp:
		if e.debounce > 0 {
			e.log.Info("event %s suppressed by debounce window", evt)
			return
		}
		e.debounce = resumeDebounceTicks
		e.wakeFollowUp = true
	case pwrlib.EventWakeAfterAction:
		if e.debounce > 0 && !e.wakeFollowUp {
			e.log.Info("event %s suppressed by debounce window", evt)
			return
		}
		e.wakeFollowUp = false
	}
	e.processReminders(e.clock.Now(), evt, sys)
}

// ExecuteAction performs a user-requested power action: optional
// confirmation, before-action reminders, then the executor call. The
// result of the executor is returned but the action is never retried.
func (e *Engine) ExecuteAction(ctx context.Context, kind pwrlib.Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock.Now()
	opts := e.store.Options()
	if opts.ConfirmAction && !e.notifier.Confirm(kind) {
		return ErrActionDeclined
	}
	if opts.EnableReminders {
		e.processReminders(now, pwrlib.EventBeforePwrAction, SysState{})
	}
	e.log.Info("executing action %s", kind)
	if err := e.exec.Execute(ctx, kind); err != nil {
		e.log.Error("action %s failed: %v", kind, err)
		e.recorder.Record(Record{
			At: now, Category: pwrlib.CategorySchedule, Action: kind,
			Outcome: OutcomeExecFailed, Detail: err.Error(),
		})
		return err
	}
	e.recorder.Record(Record{
		At: now, Category: pwrlib.CategorySchedule, Action: kind,
		Outcome: OutcomeExecuted,
	})
	return nil
}

// Reconcile synchronizes the runtime queue with the configuration
// collection of one category. Call with ReconcileUpdate after every
// add/update/remove, and with ReconcileDisable when the feature is turned
// off globally.
func (e *Engine) Reconcile(cat pwrlib.Category, mode ReconcileMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reconcile(cat, mode)
}

func (e *Engine) reconcile(cat pwrlib.Category, mode ReconcileMode) {
	allow := make(map[int]bool)
	switch cat {
	case pwrlib.CategorySchedule:
		for _, it := range e.store.Schedules() {
			allow[it.ItemID] = it.AllowSnooze
		}
	case pwrlib.CategoryReminder:
		for _, it := range e.store.Reminders() {
			allow[it.ItemID] = it.AllowSnooze
		}
	}
	e.rt.reconcile(cat, mode, allow)
}

// Status is a point-in-time snapshot of the engine's counters.
type Status struct {
	Ticks          int64          `json:"ticks"`
	LastTick       time.Time      `json:"last_tick"`
	RuntimeRecords int            `json:"runtime_records"`
	Options        pwrlib.Options `json:"options"`
}

// CurrentStatus reports the engine's counters and active options.
func (e *Engine) CurrentStatus() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{
		Ticks:          e.ticks,
		LastTick:       e.lastTick,
		RuntimeRecords: e.rt.len(),
		Options:        e.store.Options(),
	}
}

// saveAndBroadcast persists a dirty collection and posts the data-changed
// notification. A save failure is logged once and not retried.
func (e *Engine) saveAndBroadcast(cat pwrlib.Category) {
	if err := e.saver.Save(cat); err != nil {
		e.log.Error("persist %s data: %v", cat, err)
	}
	e.broadcast.Broadcast(cat)
}
