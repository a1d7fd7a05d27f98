package engine

import "github.com/pwrsched/pwrsched/pkg/pwrlib"

// ReconcileMode selects what a reconciliation pass does to the runtime
// queue.
type ReconcileMode int

const (
	// ReconcileInit creates a fresh record for every configured item.
	// Used once at startup so every item has well-defined runtime state
	// before the first tick.
	ReconcileInit ReconcileMode = iota
	// ReconcileUpdate drops records whose configuration item disappeared
	// and cancels pending snoozes on items whose snooze permission was
	// revoked. Run after every configuration change.
	ReconcileUpdate
	// ReconcileDisable forces skip and snooze flags false on every record
	// without deleting any, so re-enabling the feature resumes cleanly.
	ReconcileDisable
)

// runtimeKey identifies a runtime record by (feature-category, item-ID).
type runtimeKey struct {
	cat pwrlib.Category
	id  int
}

// runtimeRecord is the ephemeral per-item state the engine owns. It is
// never persisted; a process restart discards the whole queue.
type runtimeRecord struct {
	// display is true while the reminder is currently being presented.
	display bool
	// skip means the user declined the pre-trigger notification; the next
	// exact-minute evaluation consumes it without executing.
	skip bool
	// snooze arms a re-trigger at nextSnooze.
	snooze bool
	// nextSnooze is only meaningful while snooze is true.
	nextSnooze pwrlib.Clock
	// firedMinute is the absolute minute (unix time / 60) of the last
	// firing, used to collapse repeated ticks within one matched minute.
	// -1 means never fired.
	firedMinute int64
	// notifiedMinute is the absolute minute of the last pre-trigger
	// notification, -1 if none.
	notifiedMinute int64
}

func newRuntimeRecord() *runtimeRecord {
	return &runtimeRecord{firedMinute: -1, notifiedMinute: -1}
}

// runtimeQueue holds the runtime records, keyed by (category, item-ID).
// Records are created lazily on first state change.
type runtimeQueue struct {
	m map[runtimeKey]*runtimeRecord
}

func newRuntimeQueue() *runtimeQueue {
	return &runtimeQueue{m: make(map[runtimeKey]*runtimeRecord)}
}

// get returns the record for the item, or nil if none exists yet.
func (q *runtimeQueue) get(cat pwrlib.Category, id int) *runtimeRecord {
	return q.m[runtimeKey{cat, id}]
}

// upsert returns the record for the item, creating a fresh one on first
// use.
func (q *runtimeQueue) upsert(cat pwrlib.Category, id int) *runtimeRecord {
	k := runtimeKey{cat, id}
	rec := q.m[k]
	if rec == nil {
		rec = newRuntimeRecord()
		q.m[k] = rec
	}
	return rec
}

// len reports the number of records across both categories.
func (q *runtimeQueue) len() int {
	return len(q.m)
}

// reconcile applies the given mode to all records of one category.
// allowSnooze maps every currently configured item ID of that category to
// its snooze permission; IDs absent from the map no longer exist.
func (q *runtimeQueue) reconcile(cat pwrlib.Category, mode ReconcileMode, allowSnooze map[int]bool) {
	switch mode {
	case ReconcileInit:
		for k := range q.m {
			if k.cat == cat {
				delete(q.m, k)
			}
		}
		for id := range allowSnooze {
			q.m[runtimeKey{cat, id}] = newRuntimeRecord()
		}
	case ReconcileUpdate:
		for k, rec := range q.m {
			if k.cat != cat {
				continue
			}
			allowed, exists := allowSnooze[k.id]
			if !exists {
				delete(q.m, k)
				continue
			}
			if !allowed {
				rec.snooze = false
			}
		}
	case ReconcileDisable:
		for k, rec := range q.m {
			if k.cat != cat {
				continue
			}
			rec.skip = false
			rec.snooze = false
		}
	}
}
