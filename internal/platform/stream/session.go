package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// session owns one connection and its game. Only run writes to the
// connection and only run touches the game.
type session struct {
	cfg      Config
	conn     *websocket.Conn
	game     *platformer.Game
	recorder *storage.Recorder
	throttle *core.Throttle
	logger   *log.Logger

	messages chan ClientMessage
	readErr  chan error
	done     chan struct{}
	held     core.InputFrame
	seq      uint64
}

func newSession(cfg Config, conn *websocket.Conn, player string, logger *log.Logger) *session {
	game := cfg.NewGame()
	game.SetLogger(logger)

	if cfg.Runtime.Seed == 0 {
		cfg.Runtime.Seed = time.Now().UnixNano()
	}

	return &session{
		cfg:      cfg,
		conn:     conn,
		game:     game,
		recorder: storage.NewRecorder(cfg.Store, game.ID(), player),
		throttle: core.NewThrottle(cfg.Runtime.FrameSkip),
		logger:   logger,
		messages: make(chan ClientMessage, 16),
		readErr:  make(chan error, 1),
		done:     make(chan struct{}),
		held:     core.NewInputFrame(),
	}
}

func (s *session) run(ctx context.Context) error {
	s.game.Reset(s.cfg.Runtime)

	err := s.writeJSON(Hello{
		Type:     TypeHello,
		Game:     s.game.ID(),
		Title:    s.game.Title(),
		TickRate: s.cfg.Runtime.TickRate,
		Levels:   s.game.LevelCount(),
		Seed:     s.cfg.Runtime.Seed,
	})
	if err != nil {
		return err
	}

	defer close(s.done)
	go s.readLoop()

	tick := time.NewTicker(time.Second / time.Duration(s.cfg.Runtime.TickRate))
	defer tick.Stop()
	ping := time.NewTicker(s.cfg.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			s.close(websocket.CloseGoingAway, "server shutting down")
			return ctx.Err()

		case err := <-s.readErr:
			return err

		case msg := <-s.messages:
			if err := s.apply(msg); err != nil {
				return err
			}

		case <-tick.C:
			if !s.throttle.Allow() {
				continue
			}
			if err := s.step(); err != nil {
				return err
			}

		case <-ping.C:
			deadline := time.Now().Add(s.cfg.WriteTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
		}
	}
}

// readLoop decodes client messages until the connection fails.
func (s *session) readLoop() {
	s.conn.SetReadLimit(s.cfg.MaxMessageSize)
	//nolint:errcheck // A failed deadline surfaces on the next read
	s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	})

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			s.readErr <- err
			return
		}
		//nolint:errcheck // Any client traffic proves the peer alive
		s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))

		msg, err := decode(payload)
		if err != nil {
			s.logger.Debug("discarding message", "error", err)
			msg = ClientMessage{Type: TypeError}
		}
		select {
		case s.messages <- msg:
		case <-s.done:
			return
		}
	}
}

// apply handles one client message on the game goroutine.
func (s *session) apply(msg ClientMessage) error {
	switch msg.Type {
	case TypeInput:
		f, err := parseInput(msg)
		if err != nil {
			return s.reject(err.Error())
		}
		s.held = f
	case TypeRestart:
		s.game.Reset(s.cfg.Runtime)
		s.recorder.Restart()
		s.held = core.NewInputFrame()
	case TypeError:
		return s.reject("malformed message")
	default:
		return s.reject(fmt.Sprintf("unknown message type %q", msg.Type))
	}
	return nil
}

// step advances the game one tick and sends the frame.
func (s *session) step() error {
	res := s.game.Step(s.held)

	if saved, err := s.recorder.Observe(res); err != nil {
		s.logger.Warn("cannot save run", "error", err)
	} else {
		for _, run := range saved {
			s.logger.Info("run saved", "score", run.Score, "won", run.Won, "level", run.Level)
		}
	}

	s.seq++
	snap := s.game.Snapshot()
	return s.writeJSON(Frame{
		Type:     TypeFrame,
		Seq:      s.seq,
		Hash:     snap.Hash(),
		Snapshot: snap,
		Events:   res.Events,
	})
}

func (s *session) reject(reason string) error {
	return s.writeJSON(ErrorMessage{Type: TypeError, Reason: reason})
}

func (s *session) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %T: %w", v, err)
	}
	//nolint:errcheck // The write below reports a dead connection
	s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (s *session) close(code int, text string) {
	deadline := time.Now().Add(s.cfg.WriteTimeout)
	//nolint:errcheck // Best-effort close frame
	s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), deadline)
}
