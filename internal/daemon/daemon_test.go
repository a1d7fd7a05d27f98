package daemon

import (
	"strings"
	"testing"
	"time"

	"github.com/pwrsched/pwrsched/common"
	"github.com/pwrsched/pwrsched/internal/engine"
	"github.com/pwrsched/pwrsched/pkg/logger"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

func TestDataDirPrecedence(t *testing.T) {
	t.Setenv(common.DataDirEnv, "/env/dir")

	dir, err := DataDir("/configured/dir")
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/configured/dir" {
		t.Errorf("configured dir ignored: got %q", dir)
	}

	dir, err = DataDir("")
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/env/dir" {
		t.Errorf("env dir ignored: got %q", dir)
	}
}

func TestResolveTokenEnvOverride(t *testing.T) {
	t.Setenv(common.AuthTokenEnv, "env-token")
	token, err := ResolveToken(logger.NewNopLogger(), t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if token != "env-token" {
		t.Errorf("token = %q; want env-token", token)
	}
}

type recordSink struct {
	records []engine.Record
}

func (s *recordSink) Record(r engine.Record) {
	s.records = append(s.records, r)
}

func TestWakeTrackerArming(t *testing.T) {
	sink := &recordSink{}
	tr := NewWakeTracker(sink)

	if tr.Consume() {
		t.Fatal("tracker armed before any record")
	}

	tr.Record(engine.Record{
		At:       time.Now(),
		Category: pwrlib.CategorySchedule,
		Action:   pwrlib.ActionSleep,
		Outcome:  engine.OutcomeExecuted,
	})
	if !tr.Consume() {
		t.Fatal("executed sleep action did not arm tracker")
	}
	if tr.Consume() {
		t.Fatal("Consume did not reset the flag")
	}
	if len(sink.records) != 1 {
		t.Errorf("forwarded %d records; want 1", len(sink.records))
	}
}

func TestWakeTrackerIgnoresNonSuspendActions(t *testing.T) {
	tr := NewWakeTracker(nil)

	tr.Record(engine.Record{Action: pwrlib.ActionDisplayOff, Outcome: engine.OutcomeExecuted})
	if tr.Consume() {
		t.Error("display-off armed tracker")
	}

	tr.Record(engine.Record{Action: pwrlib.ActionSleep, Outcome: engine.OutcomeExecFailed})
	if tr.Consume() {
		t.Error("failed execution armed tracker")
	}

	tr.Record(engine.Record{Action: pwrlib.ActionHibernate, Outcome: engine.OutcomeExecuted})
	if !tr.Consume() {
		t.Error("executed hibernate did not arm tracker")
	}
}

func TestInitComponents(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(common.AuthTokenEnv, "test-token")

	comps, err := InitComponents(&Config{
		Log:     logger.NewNopLogger(),
		Version: "0.0.0-test",
		DataDir: dir,
	})
	if err != nil {
		t.Fatalf("InitComponents: %v", err)
	}
	defer comps.Close()

	if len(comps.Store.Schedules()) != 1 {
		t.Errorf("fresh store has %d schedules; want 1 (default)", len(comps.Store.Schedules()))
	}
	comps.Engine.Tick()
	if comps.Engine.CurrentStatus().Ticks != 1 {
		t.Error("engine did not tick")
	}
}

func TestConsolePresenterNeverSnoozes(t *testing.T) {
	ml := logger.NewMockLogger()
	p := &ConsolePresenter{Log: ml}

	snooze, err := p.Present(pwrlib.ReminderItem{
		ItemID:  pwrlib.MinReminderID,
		Message: "stand up",
		Style:   pwrlib.StyleMessageBox,
	})
	if err != nil {
		t.Fatal(err)
	}
	if snooze {
		t.Error("console presenter requested a snooze")
	}
	if len(ml.InfoCalls) != 1 {
		t.Fatalf("logged %d messages; want 1", len(ml.InfoCalls))
	}
	if !strings.Contains(ml.InfoCalls[0], "stand up") {
		t.Errorf("log line %q does not mention the message", ml.InfoCalls[0])
	}
}

func TestConsoleNotifierProceeds(t *testing.T) {
	ml := logger.NewMockLogger()
	n := &ConsoleNotifier{Log: ml}

	if n.Notify(pwrlib.ScheduleItem{Action: pwrlib.ActionSleep}) != engine.Proceed {
		t.Error("unattended notifier declined the action")
	}
	if !n.Confirm(pwrlib.ActionShutdown) {
		t.Error("unattended notifier declined confirmation")
	}
	if len(ml.InfoCalls) != 2 {
		t.Errorf("logged %d messages; want 2", len(ml.InfoCalls))
	}
}
