package engine

import (
	"context"
	"time"

	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

// processSchedules walks the default schedule item and every extra item in
// list order, applying the per-item algorithm: pre-trigger notification,
// exact-minute trigger with skip consumption, and one-shot deactivation.
// One-shot disables are collected during the walk and applied afterwards so
// the iteration never mutates the collection it reads.
func (e *Engine) processSchedules(now time.Time, opts pwrlib.Options) {
	cur := pwrlib.ClockOf(now)
	curMin := now.Unix() / 60
	wd := now.Weekday()

	var disable []int
	dirty := false

	for _, it := range e.store.Schedules() {
		if !it.Enabled {
			continue
		}
		if it.Repeat && !it.ActiveDays.Has(wd) {
			continue
		}

		if opts.NotifySchedule && IsMatching(cur, it.Time, -preNotifySeconds) {
			rec := e.rt.upsert(pwrlib.CategorySchedule, it.ItemID)
			if rec.notifiedMinute != curMin {
				rec.notifiedMinute = curMin
				if e.notifier.Notify(it) == Cancel {
					rec.skip = true
					e.log.Info("schedule item %#x: upcoming %s declined", it.ItemID, it.Action)
					if !it.Repeat {
						disable = append(disable, it.ItemID)
						dirty = true
					}
					continue
				}
			}
		}

		if !IsMatching(cur, it.Time, 0) {
			continue
		}
		rec := e.rt.upsert(pwrlib.CategorySchedule, it.ItemID)
		if rec.skip {
			// Skip is consumed exactly once and covers the whole matched
			// minute, whether or not the action would have fired.
			rec.skip = false
			rec.firedMinute = curMin
			e.log.Info("schedule item %#x: firing skipped", it.ItemID)
			e.recorder.Record(Record{
				At: now, Category: pwrlib.CategorySchedule, ItemID: it.ItemID,
				Action: it.Action, Outcome: OutcomeSkipped,
			})
			continue
		}
		if rec.firedMinute == curMin {
			continue
		}
		rec.firedMinute = curMin
		rec.skip = false

		e.log.Info("schedule item %#x: triggering %s at %s", it.ItemID, it.Action, cur)
		if opts.EnableReminders {
			e.processReminders(now, pwrlib.EventBeforePwrAction, SysState{})
		}
		if err := e.exec.Execute(context.Background(), it.Action); err != nil {
			// Failure is surfaced once; the one-shot deactivation below
			// still proceeds and the action is not retried next tick.
			e.log.Error("schedule item %#x: action %s failed: %v", it.ItemID, it.Action, err)
			e.recorder.Record(Record{
				At: now, Category: pwrlib.CategorySchedule, ItemID: it.ItemID,
				Action: it.Action, Outcome: OutcomeExecFailed, Detail: err.Error(),
			})
		} else {
			e.recorder.Record(Record{
				At: now, Category: pwrlib.CategorySchedule, ItemID: it.ItemID,
				Action: it.Action, Outcome: OutcomeExecuted,
			})
		}
		if !it.Repeat {
			disable = append(disable, it.ItemID)
			dirty = true
		}
	}

	for _, id := range disable {
		e.store.SetItemEnabled(pwrlib.CategorySchedule, id, false)
	}
	if dirty {
		e.saveAndBroadcast(pwrlib.CategorySchedule)
	}
}
