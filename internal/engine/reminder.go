package engine

import (
	"time"

	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

// processReminders walks all reminder items bound to evt in list order and
// displays the eligible ones. For EventAtSetTime, eligibility comes from
// either the configured time or an armed snooze trigger; for the wake
// events it is gated by the process-wide indicators in sys; the remaining
// events fire unconditionally.
func (e *Engine) processReminders(now time.Time, evt pwrlib.Event, sys SysState) {
	cur := pwrlib.ClockOf(now)
	curMin := now.Unix() / 60
	wd := now.Weekday()

	var disable []int
	dirty := false

	for _, it := range e.store.Reminders() {
		if !it.Enabled || it.Event != evt {
			continue
		}

		eligible := false
		switch evt {
		case pwrlib.EventAtSetTime:
			if it.Repeat && !it.ActiveDays.Has(wd) {
				continue
			}
			rec := e.rt.get(pwrlib.CategoryReminder, it.ItemID)
			if rec != nil && rec.snooze && IsMatching(cur, rec.nextSnooze, 0) {
				// Snooze is cleared before display so a presenter failure
				// cannot re-arm the same trigger.
				rec.snooze = false
				eligible = true
			} else if IsMatching(cur, it.Time, 0) {
				if rec != nil && rec.firedMinute == curMin {
					continue
				}
				eligible = true
			}
		case pwrlib.EventAtSysWakeUp:
			eligible = sys.Suspended || sys.SessionEnding
		case pwrlib.EventWakeAfterAction:
			eligible = sys.ActionExecuted
		case pwrlib.EventAtAppStartup, pwrlib.EventBeforePwrAction, pwrlib.EventAtAppExit:
			eligible = true
		}
		if !eligible {
			continue
		}

		rec := e.rt.upsert(pwrlib.CategoryReminder, it.ItemID)
		if rec.display {
			continue
		}
		rec.display = true
		e.log.Info("reminder %#x: displaying (%s)", it.ItemID, evt)
		snoozeRequested, err := e.presenter.Present(it)
		if err != nil {
			// Treated as not displayed: the item stays enabled and becomes
			// eligible again on the next qualifying tick or event.
			rec.display = false
			e.log.Warning("reminder %#x: presenter unavailable: %v", it.ItemID, err)
			continue
		}
		if evt == pwrlib.EventAtSetTime {
			rec.firedMinute = curMin
		}
		if !it.AllowSnooze {
			snoozeRequested = false
		}
		rec.snooze = snoozeRequested
		outcome := OutcomeDisplayed
		if snoozeRequested {
			rec.nextSnooze = cur.AddSeconds(it.SnoozeInterval)
			outcome = OutcomeSnoozed
		}
		rec.display = false
		e.recorder.Record(Record{
			At: now, Category: pwrlib.CategoryReminder, ItemID: it.ItemID,
			Event: evt, Outcome: outcome,
		})
		if !it.Repeat {
			disable = append(disable, it.ItemID)
			dirty = true
		}
	}

	for _, id := range disable {
		e.store.SetItemEnabled(pwrlib.CategoryReminder, id, false)
	}
	if dirty {
		e.saveAndBroadcast(pwrlib.CategoryReminder)
	}
}
