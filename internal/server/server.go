// Package server exposes the daemon's control surface: a JSON-RPC 2.0
// endpoint and a websocket event feed, served over a unix socket (named
// pipe on Windows) with TCP fallback.
package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pwrsched/pwrsched/common"
	"github.com/pwrsched/pwrsched/internal/engine"
	"github.com/pwrsched/pwrsched/internal/history"
	"github.com/pwrsched/pwrsched/pkg/logger"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

// Config carries the server's dependencies.
type Config struct {
	Log     logger.Logger
	Secret  string // auth token (required, empty means RPC rejects everything)
	Port    int    // TCP fallback port
	Version string

	Store   *pwrlib.Store
	Engine  *engine.Engine
	History *history.Store

	// Stop requests a daemon shutdown. Invoked by system.stop.
	Stop func()
}

// Server serves the RPC bridge and the event feed until its context is
// cancelled.
type Server struct {
	log      logger.Logger
	port     int
	secret   string
	rpc      *RPCServer
	hub      *Hub
	httpSrv  *http.Server
	listener net.Listener
	mu       sync.Mutex
}

// NewServer builds a Server and its RPC method table. A nil hub gets a
// fresh one; pass the hub that is wired as the engine's broadcaster.
func NewServer(cfg *Config, hub *Hub) *Server {
	l := cfg.Log
	if l == nil {
		l = logger.NewNopLogger()
	}
	if hub == nil {
		hub = NewHub(l)
	}
	s := &Server{
		log:    l,
		port:   cfg.Port,
		secret: cfg.Secret,
		hub:    hub,
	}
	s.rpc = NewRPCServer(cfg, hub)
	return s
}

// Hub returns the websocket broadcaster for wiring into the engine.
func (s *Server) Hub() *Hub {
	return s.hub
}

// SetStop installs the shutdown hook invoked by system.stop. Must be
// called before Start.
func (s *Server) SetStop(fn func()) {
	s.rpc.stop = fn
}

// Start listens and serves until ctx is cancelled. It blocks.
func (s *Server) Start(ctx context.Context) error {
	lis, err := s.createListener()
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(common.RPCPath, requireToken(s.secret, s.rpc.Handler()))
	mux.Handle(common.EventsPath, requireToken(s.secret, s.hub))

	s.mu.Lock()
	s.listener = lis
	s.httpSrv = &http.Server{Handler: mux}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.Shutdown()
	}()

	s.log.Info("server: listening on %s", lis.Addr())
	err = s.httpSrv.Serve(lis)
	if err == http.ErrServerClosed {
		return nil
	}
	select {
	case <-ctx.Done():
		return nil
	default:
	}
	return err
}

// Shutdown stops the HTTP server, closes the event feed and removes the
// socket file.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			s.log.Error("server: http shutdown: %v", err)
		}
		s.httpSrv = nil
	}
	s.listener = nil
	s.hub.Close()
	s.rpc.Close()
	cleanupSocket()
	return nil
}
