package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/creachadair/jrpc2/jhttp"

	"github.com/pwrsched/pwrsched/common"
	"github.com/pwrsched/pwrsched/internal/engine"
	"github.com/pwrsched/pwrsched/internal/history"
	"github.com/pwrsched/pwrsched/pkg/logger"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

// Custom JSON-RPC error codes for scheduler operations.
const (
	codeItemNotFound   = jrpc2.Code(-32001)
	codeActionFailed   = jrpc2.Code(-32002)
	codeActionDeclined = jrpc2.Code(-32003)
	codeInvalidParams  = jrpc2.Code(-32602)
)

// RPCServer manages the JSON-RPC 2.0 bridge and method handlers.
type RPCServer struct {
	bridge  jhttp.Bridge
	log     logger.Logger
	version string
	store   *pwrlib.Store
	engine  *engine.Engine
	history *history.Store
	hub     *Hub
	stop    func()
}

// EmptyResult is a placeholder for methods that return no data.
type EmptyResult struct{}

// NewRPCServer creates an RPCServer with its method table and HTTP bridge.
func NewRPCServer(cfg *Config, hub *Hub) *RPCServer {
	l := cfg.Log
	if l == nil {
		l = logger.NewNopLogger()
	}
	rs := &RPCServer{
		log:     l,
		version: cfg.Version,
		store:   cfg.Store,
		engine:  cfg.Engine,
		history: cfg.History,
		hub:     hub,
		stop:    cfg.Stop,
	}

	methods := handler.Map{
		"system.getVersion": handler.New(rs.systemGetVersion),
		"system.stop":       handler.New(rs.systemStop),

		"engine.status":     handler.New(rs.engineStatus),
		"engine.getOptions": handler.New(rs.engineGetOptions),
		"engine.setOptions": handler.New(rs.engineSetOptions),

		"schedule.add":       handler.New(rs.scheduleAdd),
		"schedule.list":      handler.New(rs.scheduleList),
		"schedule.update":    handler.New(rs.scheduleUpdate),
		"schedule.remove":    handler.New(rs.scheduleRemove),
		"schedule.removeAll": handler.New(rs.scheduleRemoveAll),
		"schedule.enable":    handler.New(rs.scheduleEnable),

		"reminder.add":       handler.New(rs.reminderAdd),
		"reminder.list":      handler.New(rs.reminderList),
		"reminder.update":    handler.New(rs.reminderUpdate),
		"reminder.remove":    handler.New(rs.reminderRemove),
		"reminder.removeAll": handler.New(rs.reminderRemoveAll),
		"reminder.enable":    handler.New(rs.reminderEnable),

		"power.execute": handler.New(rs.powerExecute),

		"history.list":  handler.New(rs.historyList),
		"history.flush": handler.New(rs.historyFlush),
	}

	rs.bridge = jhttp.NewBridge(methods, nil)
	return rs
}

// Handler returns the HTTP handler serving the bridge.
func (rs *RPCServer) Handler() http.Handler {
	return rs.bridge
}

// Close shuts down the jrpc2 bridge, releasing internal goroutines.
func (rs *RPCServer) Close() {
	rs.bridge.Close()
}

// synced persists a mutated category, refreshes the engine's runtime
// view and notifies event subscribers. Every mutating handler funnels
// through here.
func (rs *RPCServer) synced(cat pwrlib.Category) {
	if err := rs.store.Save(cat); err != nil {
		rs.log.Error("rpc: persist %s data: %v", cat, err)
	}
	rs.engine.Reconcile(cat, engine.ReconcileUpdate)
	rs.hub.Broadcast(cat)
}

func storeError(err error) error {
	switch {
	case errors.Is(err, pwrlib.ErrItemNotFound):
		return &jrpc2.Error{Code: codeItemNotFound, Message: err.Error()}
	default:
		return &jrpc2.Error{Code: codeInvalidParams, Message: err.Error()}
	}
}

func (rs *RPCServer) systemGetVersion(_ context.Context) (*common.VersionResponse, error) {
	return &common.VersionResponse{Version: rs.version}, nil
}

func (rs *RPCServer) systemStop(_ context.Context) (*EmptyResult, error) {
	if rs.stop != nil {
		// Deferred so the response reaches the client before shutdown.
		go func() {
			time.Sleep(100 * time.Millisecond)
			rs.stop()
		}()
	}
	return &EmptyResult{}, nil
}

func (rs *RPCServer) engineStatus(_ context.Context) (*common.StatusResponse, error) {
	st := rs.engine.CurrentStatus()
	return &common.StatusResponse{
		Clock:            st.LastTick.Format(time.RFC3339),
		ScheduleEnabled:  st.Options.EnableSchedule,
		NotifySchedule:   st.Options.NotifySchedule,
		RemindersEnabled: st.Options.EnableReminders,
		ConfirmAction:    st.Options.ConfirmAction,
		Schedules:        len(rs.store.Schedules()),
		Reminders:        len(rs.store.Reminders()),
	}, nil
}

func (rs *RPCServer) engineGetOptions(_ context.Context) (*common.OptionsResponse, error) {
	return &common.OptionsResponse{Options: rs.store.Options()}, nil
}

func (rs *RPCServer) engineSetOptions(_ context.Context, p *common.OptionsParams) (*EmptyResult, error) {
	old := rs.store.Options()
	rs.store.SetOptions(p.Options)
	rs.synced(pwrlib.CategorySchedule)
	rs.engine.Reconcile(pwrlib.CategoryReminder, engine.ReconcileUpdate)
	rs.hub.Broadcast(pwrlib.CategoryReminder)
	// A feature switched off drops its pending skip/snooze flags, so
	// re-enabling resumes from a clean slate.
	if old.EnableSchedule && !p.Options.EnableSchedule {
		rs.engine.Reconcile(pwrlib.CategorySchedule, engine.ReconcileDisable)
	}
	if old.EnableReminders && !p.Options.EnableReminders {
		rs.engine.Reconcile(pwrlib.CategoryReminder, engine.ReconcileDisable)
	}
	return &EmptyResult{}, nil
}

func (rs *RPCServer) scheduleAdd(_ context.Context, p *common.ScheduleAddParams) (*common.ScheduleAddResponse, error) {
	it := p.Item
	pwrlib.NormalizeSchedule(&it)
	// The store assigns the id; validate the other fields against a
	// provisional in-pool id.
	check := it
	if check.ItemID == 0 {
		check.ItemID = pwrlib.MinExtraScheduleID
	}
	if err := pwrlib.ValidateSchedule(check); err != nil {
		return nil, storeError(err)
	}
	id, err := rs.store.AddSchedule(it)
	if err != nil {
		return nil, storeError(err)
	}
	rs.synced(pwrlib.CategorySchedule)
	return &common.ScheduleAddResponse{ItemId: id}, nil
}

func (rs *RPCServer) scheduleList(_ context.Context) (*common.ScheduleListResponse, error) {
	items := rs.store.Schedules()
	out := make([]*pwrlib.ScheduleItem, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return &common.ScheduleListResponse{Items: out}, nil
}

func (rs *RPCServer) scheduleUpdate(_ context.Context, p *common.ScheduleUpdateParams) (*EmptyResult, error) {
	it := p.Item
	pwrlib.NormalizeSchedule(&it)
	if err := pwrlib.ValidateSchedule(it); err != nil {
		return nil, storeError(err)
	}
	if err := rs.store.UpdateSchedule(it); err != nil {
		return nil, storeError(err)
	}
	rs.synced(pwrlib.CategorySchedule)
	return &EmptyResult{}, nil
}

func (rs *RPCServer) scheduleRemove(_ context.Context, p *common.ItemIdParams) (*EmptyResult, error) {
	if err := rs.store.RemoveSchedule(p.ItemId); err != nil {
		if errors.Is(err, pwrlib.ErrDefaultUndeletable) {
			rs.store.ResetDefaultSchedule()
			rs.synced(pwrlib.CategorySchedule)
			return &EmptyResult{}, nil
		}
		return nil, storeError(err)
	}
	rs.synced(pwrlib.CategorySchedule)
	return &EmptyResult{}, nil
}

func (rs *RPCServer) scheduleRemoveAll(_ context.Context) (*EmptyResult, error) {
	rs.store.RemoveAllSchedules()
	rs.synced(pwrlib.CategorySchedule)
	return &EmptyResult{}, nil
}

func (rs *RPCServer) scheduleEnable(_ context.Context, p *common.EnableParams) (*EmptyResult, error) {
	if !rs.store.SetItemEnabled(pwrlib.CategorySchedule, p.ItemId, p.Enabled) {
		return nil, &jrpc2.Error{Code: codeItemNotFound, Message: "item not found"}
	}
	rs.synced(pwrlib.CategorySchedule)
	return &EmptyResult{}, nil
}

func (rs *RPCServer) reminderAdd(_ context.Context, p *common.ReminderAddParams) (*common.ReminderAddResponse, error) {
	it := p.Item
	pwrlib.NormalizeReminder(&it)
	check := it
	if check.ItemID == 0 {
		check.ItemID = pwrlib.MinReminderID
	}
	if err := pwrlib.ValidateReminder(check); err != nil {
		return nil, storeError(err)
	}
	id, err := rs.store.AddReminder(it)
	if err != nil {
		return nil, storeError(err)
	}
	rs.synced(pwrlib.CategoryReminder)
	return &common.ReminderAddResponse{ItemId: id}, nil
}

func (rs *RPCServer) reminderList(_ context.Context) (*common.ReminderListResponse, error) {
	items := rs.store.Reminders()
	out := make([]*pwrlib.ReminderItem, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return &common.ReminderListResponse{Items: out}, nil
}

func (rs *RPCServer) reminderUpdate(_ context.Context, p *common.ReminderUpdateParams) (*EmptyResult, error) {
	it := p.Item
	pwrlib.NormalizeReminder(&it)
	if err := pwrlib.ValidateReminder(it); err != nil {
		return nil, storeError(err)
	}
	if err := rs.store.UpdateReminder(it); err != nil {
		return nil, storeError(err)
	}
	rs.synced(pwrlib.CategoryReminder)
	return &EmptyResult{}, nil
}

func (rs *RPCServer) reminderRemove(_ context.Context, p *common.ItemIdParams) (*EmptyResult, error) {
	if err := rs.store.RemoveReminder(p.ItemId); err != nil {
		return nil, storeError(err)
	}
	rs.synced(pwrlib.CategoryReminder)
	return &EmptyResult{}, nil
}

func (rs *RPCServer) reminderRemoveAll(_ context.Context) (*EmptyResult, error) {
	rs.store.RemoveAllReminders()
	rs.synced(pwrlib.CategoryReminder)
	return &EmptyResult{}, nil
}

func (rs *RPCServer) reminderEnable(_ context.Context, p *common.EnableParams) (*EmptyResult, error) {
	if !rs.store.SetItemEnabled(pwrlib.CategoryReminder, p.ItemId, p.Enabled) {
		return nil, &jrpc2.Error{Code: codeItemNotFound, Message: "item not found"}
	}
	rs.synced(pwrlib.CategoryReminder)
	return &EmptyResult{}, nil
}

func (rs *RPCServer) powerExecute(ctx context.Context, p *common.ExecuteParams) (*EmptyResult, error) {
	kind, err := pwrlib.ParseAction(p.Action)
	if err != nil {
		return nil, &jrpc2.Error{Code: codeInvalidParams, Message: err.Error()}
	}
	if err := rs.engine.ExecuteAction(ctx, kind); err != nil {
		if errors.Is(err, engine.ErrActionDeclined) {
			return nil, &jrpc2.Error{Code: codeActionDeclined, Message: err.Error()}
		}
		return nil, &jrpc2.Error{Code: codeActionFailed, Message: err.Error()}
	}
	return &EmptyResult{}, nil
}

func (rs *RPCServer) historyList(_ context.Context, p *common.HistoryListParams) (*common.HistoryListResponse, error) {
	entries, err := rs.history.List(p.Limit)
	if err != nil {
		return nil, &jrpc2.Error{Code: codeActionFailed, Message: err.Error()}
	}
	out := make([]common.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, common.HistoryEntry{
			Id:       e.ID,
			At:       e.At.Format(time.RFC3339),
			Category: e.Category,
			ItemId:   e.ItemID,
			Action:   e.Action,
			Event:    e.Event,
			Outcome:  e.Outcome,
			Detail:   e.Detail,
		})
	}
	return &common.HistoryListResponse{Entries: out}, nil
}

func (rs *RPCServer) historyFlush(_ context.Context) (*EmptyResult, error) {
	if err := rs.history.Flush(); err != nil {
		return nil, &jrpc2.Error{Code: codeActionFailed, Message: err.Error()}
	}
	return &EmptyResult{}, nil
}
