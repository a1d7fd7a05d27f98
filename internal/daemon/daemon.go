// Package daemon wires the scheduler engine, its persistence and the RPC
// server into a long-running process driven by a one-second tick.
package daemon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/pwrsched/pwrsched/common"
	"github.com/pwrsched/pwrsched/internal/engine"
	"github.com/pwrsched/pwrsched/internal/history"
	"github.com/pwrsched/pwrsched/internal/power"
	"github.com/pwrsched/pwrsched/internal/server"
	"github.com/pwrsched/pwrsched/pkg/credman/keyring"
	"github.com/pwrsched/pwrsched/pkg/logger"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

const (
	tickInterval = time.Second

	// wakeGapThreshold is the tick gap treated as a resume from sleep on
	// platforms without a native suspend signal.
	wakeGapThreshold = 30 * time.Second

	userDataFile = "userdata.gob"
	historyFile  = "history.db"
)

// Config holds the daemon's startup parameters.
type Config struct {
	Log     logger.Logger
	Version string
	Port    int    // TCP fallback port, 0 means the default
	DataDir string // empty means the platform default
}

// Components holds the initialized daemon parts so console mode and
// service mode share one setup and teardown path.
type Components struct {
	Store   *pwrlib.Store
	History *history.Store
	Engine  *engine.Engine
	Server  *server.Server
	Tracker *WakeTracker

	log logger.Logger
}

// DataDir resolves the directory holding the daemon's state files.
func DataDir(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if dir := os.Getenv(common.DataDirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, common.AppName), nil
}

// ResolveToken returns the RPC auth token, creating one if none exists.
// Resolution order: environment override, OS keyring, file fallback.
func ResolveToken(log logger.Logger, dataDir string) (string, error) {
	if token := os.Getenv(common.AuthTokenEnv); token != "" {
		return token, nil
	}

	kr := keyring.NewKeyring()
	if token, err := kr.GetToken(); err == nil && token != "" {
		return token, nil
	}
	if token, err := kr.SetToken(); err == nil {
		return token, nil
	} else {
		log.Warning("daemon: keyring unavailable: %v", err)
	}

	fs := keyring.NewFileTokenStore(dataDir)
	if token, err := fs.GetToken(); err == nil {
		return token, nil
	}
	return fs.SetToken()
}

// InitComponents builds the full daemon component graph. On error any
// partially initialized component is closed before returning.
func InitComponents(cfg *Config) (*Components, error) {
	log := cfg.Log
	if log == nil {
		log = logger.NewNopLogger()
	}

	dir, err := DataDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	store, err := pwrlib.OpenStore(afero.NewOsFs(), filepath.Join(dir, userDataFile))
	if err != nil {
		return nil, fmt.Errorf("open user data: %w", err)
	}

	hist, err := history.Open(filepath.Join(dir, historyFile))
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}

	tracker := NewWakeTracker(hist)
	hub := server.NewHub(log)

	eng := engine.New(engine.Config{
		Store:       store,
		Executor:    power.NewSystemExecutor(log),
		Notifier:    &ConsoleNotifier{Log: log},
		Presenter:   &ConsolePresenter{Log: log},
		Broadcaster: hub,
		Recorder:    tracker,
		Log:         log,
	})

	token, err := ResolveToken(log, dir)
	if err != nil {
		hist.Close()
		return nil, fmt.Errorf("resolve auth token: %w", err)
	}

	srv := server.NewServer(&server.Config{
		Log:     log,
		Secret:  token,
		Port:    cfg.Port,
		Version: cfg.Version,
		Store:   store,
		Engine:  eng,
		History: hist,
	}, hub)

	return &Components{
		Store:   store,
		History: hist,
		Engine:  eng,
		Server:  srv,
		Tracker: tracker,
		log:     log,
	}, nil
}

// Close releases component resources in reverse order of initialization.
func (c *Components) Close() {
	c.log.Info("daemon: shutting down")
	if c.Server != nil {
		_ = c.Server.Shutdown()
	}
	if c.History != nil {
		_ = c.History.Close()
	}
	c.log.Info("daemon: stopped")
}

// Run starts the daemon and blocks until ctx is cancelled. The
// system.stop RPC cancels the same context through the stop hook.
func Run(ctx context.Context, cfg *Config) error {
	comps, err := InitComponents(cfg)
	if err != nil {
		return err
	}
	defer comps.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	comps.Server.SetStop(cancel)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- comps.Server.Start(ctx)
	}()

	comps.Engine.DispatchEvent(pwrlib.EventAtAppStartup, engine.SysState{})

	sleepCh, err := power.WatchSleep(ctx)
	if err != nil {
		comps.log.Info("daemon: no native suspend signal, using tick-gap detection")
		sleepCh = nil
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	lastTick := time.Now()
	for {
		select {
		case <-ctx.Done():
			comps.Engine.DispatchEvent(pwrlib.EventAtAppExit, engine.SysState{SessionEnding: true})
			return nil

		case err := <-serveErr:
			if err != nil {
				return fmt.Errorf("server: %w", err)
			}
			return nil

		case entering, ok := <-sleepCh:
			if !ok {
				sleepCh = nil
				continue
			}
			if !entering {
				comps.dispatchWake()
			}

		case now := <-ticker.C:
			if sleepCh == nil && now.Sub(lastTick) > wakeGapThreshold {
				comps.dispatchWake()
			}
			lastTick = now
			comps.Engine.Tick()
		}
	}
}

// dispatchWake feeds the resume into the engine: the wake-up event
// always, and the wake-after-action event when the suspend was caused
// by an executed power action.
func (c *Components) dispatchWake() {
	c.log.Info("daemon: system resumed")
	c.Engine.DispatchEvent(pwrlib.EventAtSysWakeUp, engine.SysState{Suspended: true})
	if c.Tracker.Consume() {
		c.Engine.DispatchEvent(pwrlib.EventWakeAfterAction, engine.SysState{
			Suspended:      true,
			ActionExecuted: true,
		})
	}
}
