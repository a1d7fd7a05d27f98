package daemon

import (
	"sync"

	"github.com/pwrsched/pwrsched/internal/engine"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

// WakeTracker tees engine records into the history store and remembers
// whether the last suspend-class action actually executed, so the next
// resume can raise the wake-after-action event.
type WakeTracker struct {
	next engine.Recorder

	mu    sync.Mutex
	armed bool
}

// NewWakeTracker wraps next; a nil next only tracks.
func NewWakeTracker(next engine.Recorder) *WakeTracker {
	return &WakeTracker{next: next}
}

var _ engine.Recorder = (*WakeTracker)(nil)

// Record forwards the entry and arms the tracker when a sleep or
// hibernate action executed.
func (t *WakeTracker) Record(r engine.Record) {
	if t.next != nil {
		t.next.Record(r)
	}
	if r.Outcome != engine.OutcomeExecuted {
		return
	}
	if r.Action != pwrlib.ActionSleep && r.Action != pwrlib.ActionHibernate {
		return
	}
	t.mu.Lock()
	t.armed = true
	t.mu.Unlock()
}

// Consume reports whether a tracked action executed since the last call
// and resets the flag.
func (t *WakeTracker) Consume() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	armed := t.armed
	t.armed = false
	return armed
}
