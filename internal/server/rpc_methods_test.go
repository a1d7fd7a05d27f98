package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/pwrsched/pwrsched/common"
	"github.com/pwrsched/pwrsched/internal/engine"
	"github.com/pwrsched/pwrsched/internal/history"
	"github.com/pwrsched/pwrsched/pkg/logger"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

// rpcCall sends a JSON-RPC request to the handler and returns the parsed response.
func rpcCall(t *testing.T, handler http.Handler, method string, params any, authToken string) (int, map[string]any) {
	t.Helper()
	reqBody := map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"id":      1,
	}
	if params != nil {
		reqBody["params"] = params
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, common.RPCPath, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	resp := rr.Result()
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	var result map[string]any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("unmarshal response: %v (body: %s)", err, string(body))
		}
	}
	return rr.Code, result
}

func mustResult(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	if errObj, ok := resp["error"]; ok {
		t.Fatalf("unexpected rpc error: %v", errObj)
	}
	res, _ := resp["result"].(map[string]any)
	return res
}

func mustError(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	errObj, ok := resp["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected rpc error, got %v", resp)
	}
	return errObj
}

func newTestRPCHandler(t *testing.T) (http.Handler, string) {
	t.Helper()
	st, err := pwrlib.OpenStore(afero.NewMemMapFs(), "userdata.gob")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	hist, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	t.Cleanup(func() { hist.Close() })

	eng := engine.New(engine.Config{
		Store:    st,
		Recorder: hist,
		Log:      logger.NewNopLogger(),
	})

	secret := "test-rpc-secret"
	cfg := &Config{
		Log:     logger.NewNopLogger(),
		Secret:  secret,
		Version: "0.0.0-test",
		Store:   st,
		Engine:  eng,
		History: hist,
	}
	rs := NewRPCServer(cfg, NewHub(cfg.Log))
	t.Cleanup(rs.Close)
	return requireToken(secret, rs.Handler()), secret
}

func TestRPCGetVersion(t *testing.T) {
	h, secret := newTestRPCHandler(t)
	_, resp := rpcCall(t, h, "system.getVersion", nil, secret)
	res := mustResult(t, resp)
	if res["version"] != "0.0.0-test" {
		t.Errorf("version = %v; want 0.0.0-test", res["version"])
	}
}

func TestRPCUnauthorized(t *testing.T) {
	h, _ := newTestRPCHandler(t)
	code, _ := rpcCall(t, h, "system.getVersion", nil, "wrong-token")
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestRPCScheduleLifecycle(t *testing.T) {
	h, secret := newTestRPCHandler(t)

	// The default item is always present.
	_, resp := rpcCall(t, h, "schedule.list", nil, secret)
	res := mustResult(t, resp)
	items, _ := res["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("initial list: got %d items, want 1 (default)", len(items))
	}

	_, resp = rpcCall(t, h, "schedule.add", common.ScheduleAddParams{
		Item: pwrlib.ScheduleItem{
			Enabled: true,
			Repeat:  true,
			Action:  pwrlib.ActionSleep,
			Time:    pwrlib.MakeClock(22, 30),
		},
	}, secret)
	res = mustResult(t, resp)
	id := int(res["item_id"].(float64))
	if id < pwrlib.MinExtraScheduleID || id > pwrlib.MaxExtraScheduleID {
		t.Fatalf("assigned id %#x outside extra pool", id)
	}

	_, resp = rpcCall(t, h, "schedule.list", nil, secret)
	res = mustResult(t, resp)
	items, _ = res["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("after add: got %d items, want 2", len(items))
	}

	_, resp = rpcCall(t, h, "schedule.enable", common.EnableParams{ItemId: id, Enabled: false}, secret)
	mustResult(t, resp)

	_, resp = rpcCall(t, h, "schedule.remove", common.ItemIdParams{ItemId: id}, secret)
	mustResult(t, resp)

	_, resp = rpcCall(t, h, "schedule.list", nil, secret)
	res = mustResult(t, resp)
	items, _ = res["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("after remove: got %d items, want 1", len(items))
	}
}

func TestRPCScheduleRemoveDefaultResets(t *testing.T) {
	h, secret := newTestRPCHandler(t)

	_, resp := rpcCall(t, h, "schedule.remove", common.ItemIdParams{ItemId: pwrlib.DefaultScheduleID}, secret)
	mustResult(t, resp)

	// Still listed afterwards; removing the default resets it instead.
	_, resp = rpcCall(t, h, "schedule.list", nil, secret)
	res := mustResult(t, resp)
	items, _ := res["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("after default remove: got %d items, want 1", len(items))
	}
}

func TestRPCScheduleAddInvalidAction(t *testing.T) {
	h, secret := newTestRPCHandler(t)
	_, resp := rpcCall(t, h, "schedule.add", common.ScheduleAddParams{
		Item: pwrlib.ScheduleItem{Enabled: true, Action: pwrlib.Action(42)},
	}, secret)
	errObj := mustError(t, resp)
	if int(errObj["code"].(float64)) != int(codeInvalidParams) {
		t.Errorf("code = %v; want %d", errObj["code"], codeInvalidParams)
	}
}

func TestRPCReminderLifecycle(t *testing.T) {
	h, secret := newTestRPCHandler(t)

	_, resp := rpcCall(t, h, "reminder.add", common.ReminderAddParams{
		Item: pwrlib.ReminderItem{
			Enabled: true,
			Message: "stand up",
			Event:   pwrlib.EventAtSetTime,
			Time:    pwrlib.MakeClock(14, 0),
		},
	}, secret)
	res := mustResult(t, resp)
	id := int(res["item_id"].(float64))
	if id < pwrlib.MinReminderID || id > pwrlib.MaxReminderID {
		t.Fatalf("assigned id %#x outside reminder pool", id)
	}

	_, resp = rpcCall(t, h, "reminder.list", nil, secret)
	res = mustResult(t, resp)
	items, _ := res["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("after add: got %d items, want 1", len(items))
	}

	_, resp = rpcCall(t, h, "reminder.remove", common.ItemIdParams{ItemId: id}, secret)
	mustResult(t, resp)

	_, resp = rpcCall(t, h, "reminder.list", nil, secret)
	res = mustResult(t, resp)
	items, _ = res["items"].([]any)
	if len(items) != 0 {
		t.Fatalf("after remove: got %d items, want 0", len(items))
	}
}

func TestRPCReminderAddEmptyMessage(t *testing.T) {
	h, secret := newTestRPCHandler(t)
	_, resp := rpcCall(t, h, "reminder.add", common.ReminderAddParams{
		Item: pwrlib.ReminderItem{Enabled: true, Event: pwrlib.EventAtSetTime},
	}, secret)
	mustError(t, resp)
}

func TestRPCReminderRemoveMissing(t *testing.T) {
	h, secret := newTestRPCHandler(t)
	_, resp := rpcCall(t, h, "reminder.remove", common.ItemIdParams{ItemId: 0x2042}, secret)
	errObj := mustError(t, resp)
	if int(errObj["code"].(float64)) != int(codeItemNotFound) {
		t.Errorf("code = %v; want %d", errObj["code"], codeItemNotFound)
	}
}

func TestRPCEngineStatus(t *testing.T) {
	h, secret := newTestRPCHandler(t)
	_, resp := rpcCall(t, h, "engine.status", nil, secret)
	res := mustResult(t, resp)
	if res["schedule_enabled"] != true {
		t.Errorf("schedule_enabled = %v; want true", res["schedule_enabled"])
	}
	if int(res["schedules"].(float64)) != 1 {
		t.Errorf("schedules = %v; want 1", res["schedules"])
	}
}

func TestRPCSetOptions(t *testing.T) {
	h, secret := newTestRPCHandler(t)

	opts := pwrlib.DefaultOptions()
	opts.EnableReminders = false
	_, resp := rpcCall(t, h, "engine.setOptions", common.OptionsParams{Options: opts}, secret)
	mustResult(t, resp)

	_, resp = rpcCall(t, h, "engine.getOptions", nil, secret)
	res := mustResult(t, resp)
	got, _ := res["options"].(map[string]any)
	if got["enable_reminders"] != false {
		t.Errorf("enable_reminders = %v; want false", got["enable_reminders"])
	}
}

func TestRPCPowerExecuteInvalid(t *testing.T) {
	h, secret := newTestRPCHandler(t)
	_, resp := rpcCall(t, h, "power.execute", common.ExecuteParams{Action: "explode"}, secret)
	errObj := mustError(t, resp)
	if int(errObj["code"].(float64)) != int(codeInvalidParams) {
		t.Errorf("code = %v; want %d", errObj["code"], codeInvalidParams)
	}
}

func TestRPCPowerExecuteNone(t *testing.T) {
	h, secret := newTestRPCHandler(t)
	_, resp := rpcCall(t, h, "power.execute", common.ExecuteParams{Action: "none"}, secret)
	mustResult(t, resp)
}

func TestRPCHistoryListEmpty(t *testing.T) {
	h, secret := newTestRPCHandler(t)
	_, resp := rpcCall(t, h, "history.list", common.HistoryListParams{Limit: 10}, secret)
	res := mustResult(t, resp)
	entries, _ := res["entries"].([]any)
	if len(entries) != 0 {
		t.Errorf("entries = %d; want 0", len(entries))
	}
}

// stepClock is a manually advanced clock source.
type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time { return c.t }

// recordingPresenter counts displays and answers with a scripted snooze
// request.
type recordingPresenter struct {
	snooze    bool
	displayed int
}

func (p *recordingPresenter) Present(pwrlib.ReminderItem) (bool, error) {
	p.displayed++
	return p.snooze, nil
}

func TestRPCSetOptionsDisableClearsPendingSnooze(t *testing.T) {
	st, err := pwrlib.OpenStore(afero.NewMemMapFs(), "userdata.gob")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	clk := &stepClock{t: time.Date(2025, time.March, 10, 13, 59, 0, 0, time.UTC)}
	pres := &recordingPresenter{snooze: true}
	eng := engine.New(engine.Config{
		Store:     st,
		Presenter: pres,
		Clock:     clk,
		Log:       logger.NewNopLogger(),
	})

	secret := "test-rpc-secret"
	cfg := &Config{
		Log:    logger.NewNopLogger(),
		Secret: secret,
		Store:  st,
		Engine: eng,
	}
	rs := NewRPCServer(cfg, NewHub(cfg.Log))
	t.Cleanup(rs.Close)
	h := requireToken(secret, rs.Handler())

	_, resp := rpcCall(t, h, "reminder.add", common.ReminderAddParams{
		Item: pwrlib.ReminderItem{
			Enabled:        true,
			Message:        "stand up",
			Event:          pwrlib.EventAtSetTime,
			Time:           pwrlib.MakeClock(14, 0),
			Repeat:         true,
			ActiveDays:     pwrlib.AllDays,
			Style:          pwrlib.StyleMessageBox,
			AllowSnooze:    true,
			SnoozeInterval: 600,
		},
	}, secret)
	mustResult(t, resp)

	// 14:00 arms a snooze for 14:10.
	clk.t = time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC)
	eng.Tick()
	if pres.displayed != 1 {
		t.Fatalf("expected display at 14:00, got %d", pres.displayed)
	}
	pres.snooze = false

	// Global off and back on through the RPC surface.
	opts := pwrlib.DefaultOptions()
	opts.EnableReminders = false
	_, resp = rpcCall(t, h, "engine.setOptions", common.OptionsParams{Options: opts}, secret)
	mustResult(t, resp)
	opts.EnableReminders = true
	_, resp = rpcCall(t, h, "engine.setOptions", common.OptionsParams{Options: opts}, secret)
	mustResult(t, resp)

	// The disable dropped the pending snooze; 14:10 stays quiet.
	clk.t = time.Date(2025, time.March, 10, 14, 10, 0, 0, time.UTC)
	eng.Tick()
	if pres.displayed != 1 {
		t.Fatalf("stale snooze fired after a disable/enable cycle: displays = %d, want 1", pres.displayed)
	}
}
