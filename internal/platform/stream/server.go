// Package stream serves the platformer over WebSocket. Every connection
// gets its own game; the client sends held actions as JSON and receives
// one snapshot per tick.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Default connection timings.
const (
	DefaultPingInterval   = 25 * time.Second
	DefaultReadTimeout    = 60 * time.Second
	DefaultWriteTimeout   = 10 * time.Second
	DefaultMaxMessageSize = 4096
)

// Config configures the stream server.
type Config struct {
	Runtime core.RuntimeConfig
	// NewGame builds the game for a connection. Defaults to platformer.New.
	NewGame func() *platformer.Game
	Store   *storage.Store // optional; finished runs are saved here
	Logger  *log.Logger

	PingInterval   time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxMessageSize int64
}

// Server upgrades HTTP requests to game sessions.
type Server struct {
	cfg      Config
	logger   *log.Logger
	upgrader websocket.Upgrader
	active   atomic.Int64
}

// NewServer creates a server, filling unset fields with defaults.
func NewServer(cfg Config) *Server {
	if cfg.NewGame == nil {
		cfg.NewGame = platformer.New
	}
	if cfg.Runtime.TickRate <= 0 {
		cfg.Runtime.TickRate = 60
	}
	if cfg.Runtime.ScreenW <= 0 || cfg.Runtime.ScreenH <= 0 {
		cfg.Runtime.ScreenW, cfg.Runtime.ScreenH = 80, 24
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = DefaultPingInterval
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.MaxMessageSize <= 0 {
		cfg.MaxMessageSize = DefaultMaxMessageSize
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Server{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Snapshots are public; any page may embed a viewer.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Active returns the number of open sessions.
func (s *Server) Active() int {
	return int(s.active.Load())
}

// ServeHTTP upgrades the request and plays one game until either side
// closes. The "name" query parameter names the player on the scoreboard.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	s.active.Add(1)
	defer s.active.Add(-1)

	player := r.URL.Query().Get("name")
	logger := s.logger.With("remote", r.RemoteAddr)
	logger.Info("session started", "player", player, "active", s.Active())

	sess := newSession(s.cfg, conn, player, logger)
	err = sess.run(r.Context())
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		logger.Info("session ended", "frames", sess.seq)
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
		logger.Info("session closed by client", "frames", sess.seq)
	default:
		logger.Warn("session failed", "frames", sess.seq, "error", err)
	}
}

// ListenAndServe serves sessions on addr under /ws until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", s)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck // Best-effort health response
		json.NewEncoder(w).Encode(map[string]int{"sessions": s.Active()})
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting stream server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("stopping stream server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
