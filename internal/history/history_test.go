package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pwrsched/pwrsched/internal/engine"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	s.Record(engine.Record{
		At:       base,
		Category: pwrlib.CategorySchedule,
		ItemID:   pwrlib.DefaultScheduleID,
		Action:   pwrlib.ActionShutdown,
		Outcome:  engine.OutcomeExecuted,
	})
	s.Record(engine.Record{
		At:       base.Add(time.Minute),
		Category: pwrlib.CategoryReminder,
		ItemID:   pwrlib.MinReminderID,
		Event:    pwrlib.EventAtSetTime,
		Outcome:  engine.OutcomeDisplayed,
	})

	entries, err := s.List(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Category != "reminder" || entries[0].Event != "at-set-time" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Action != "shutdown" || entries[1].Outcome != engine.OutcomeExecuted {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
	if !entries[1].At.Equal(base) {
		t.Errorf("timestamp lost: %v", entries[1].At)
	}
}

func TestListLimit(t *testing.T) {
	s := openTestStore(t)
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		s.Record(engine.Record{
			At:       base.Add(time.Duration(i) * time.Second),
			Category: pwrlib.CategorySchedule,
			ItemID:   pwrlib.MinExtraScheduleID,
			Action:   pwrlib.ActionSleep,
			Outcome:  engine.OutcomeExecuted,
		})
	}
	entries, err := s.List(3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestFlush(t *testing.T) {
	s := openTestStore(t)
	s.Record(engine.Record{
		At:       time.Now(),
		Category: pwrlib.CategorySchedule,
		ItemID:   pwrlib.MinExtraScheduleID,
		Action:   pwrlib.ActionSleep,
		Outcome:  engine.OutcomeExecuted,
	})
	if err := s.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	entries, err := s.List(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(entries))
	}
}
