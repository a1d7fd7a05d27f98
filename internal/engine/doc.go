// Package engine implements the recurring-schedule and event-reminder
// runtime for pwrsched. A 1-second tick drives the action schedule
// processor and the at-set-time branch of the reminder processor; the
// remaining reminder events are dispatched synchronously by the hosting
// daemon. The engine owns only ephemeral per-item runtime state (skip,
// snooze, currently-displayed); configured items live in the pwrlib store
// and are only mutated here for one-shot deactivation.
//
// All entry points serialize on a single mutex, so one tick, one event
// dispatch, or one manual execution runs at a time. Presenter and notifier
// calls are blocking by contract: no further evaluation happens while a
// reminder or notification is on screen.
package engine
