package stream

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

type envelope struct {
	Type     string `json:"type"`
	Reason   string `json:"reason"`
	Game     string `json:"game"`
	Levels   int    `json:"levels"`
	Seq      uint64 `json:"seq"`
	Snapshot struct {
		State  string `json:"state"`
		Player struct {
			X float64 `json:"x"`
		} `json:"player"`
	} `json:"snapshot"`
	Events []struct {
		Kind string `json:"kind"`
	} `json:"events"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	lvl := levels.Template{ID: "flat", Name: "flat", WorldWidth: 4000, EndX: 3000}
	srv := NewServer(Config{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 200, Seed: 1},
		NewGame: func() *platformer.Game {
			return platformer.NewWithConfig(config.DefaultPlatformerConfig(), []levels.Template{lvl})
		},
		Logger: log.New(io.Discard),
	})
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?name=tester"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if resp != nil {
		resp.Body.Close()
	}
	require.NoError(t, err)
	t.Cleanup(func() {
		//nolint:errcheck
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	})
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func read(t *testing.T, conn *websocket.Conn) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, conn.ReadJSON(&env))
	return env
}

// readUntil reads messages until match accepts one, failing after limit.
func readUntil(t *testing.T, conn *websocket.Conn, limit int, match func(envelope) bool) envelope {
	t.Helper()
	for range limit {
		env := read(t, conn)
		if match(env) {
			return env
		}
	}
	t.Fatalf("no matching message in %d reads", limit)
	return envelope{}
}

func sendActions(t *testing.T, conn *websocket.Conn, actions ...string) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: TypeInput, Actions: actions}))
}

func TestSessionHelloThenFrames(t *testing.T) {
	conn := dial(t, newTestServer(t))

	hello := read(t, conn)
	assert.Equal(t, TypeHello, hello.Type)
	assert.Equal(t, "platformer", hello.Game)
	assert.Equal(t, 1, hello.Levels)

	frame := read(t, conn)
	assert.Equal(t, TypeFrame, frame.Type)
	assert.Equal(t, uint64(1), frame.Seq)
	assert.Equal(t, platformer.StateNotStarted, frame.Snapshot.State)
}

func TestSessionInputStartsAndMoves(t *testing.T) {
	conn := dial(t, newTestServer(t))
	read(t, conn)

	sendActions(t, conn, "confirm")
	started := readUntil(t, conn, 500, func(e envelope) bool {
		return e.Type == TypeFrame && e.Snapshot.State == platformer.StateRunning
	})
	x0 := started.Snapshot.Player.X

	sendActions(t, conn, "right")
	readUntil(t, conn, 500, func(e envelope) bool {
		return e.Type == TypeFrame && e.Snapshot.Player.X > x0+10
	})
}

func TestSessionPauseEvent(t *testing.T) {
	conn := dial(t, newTestServer(t))
	read(t, conn)

	sendActions(t, conn, "confirm")
	readUntil(t, conn, 500, func(e envelope) bool { return e.Snapshot.State == platformer.StateRunning })

	sendActions(t, conn, "pause")
	paused := readUntil(t, conn, 500, func(e envelope) bool { return e.Snapshot.State == platformer.StatePaused })
	require.NotEmpty(t, paused.Events)
	assert.Equal(t, "paused", paused.Events[0].Kind)
}

func TestSessionRejectsBadMessages(t *testing.T) {
	conn := dial(t, newTestServer(t))
	read(t, conn)

	sendActions(t, conn, "fly")
	rejected := readUntil(t, conn, 500, func(e envelope) bool { return e.Type == TypeError })
	assert.Contains(t, rejected.Reason, "fly")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	rejected = readUntil(t, conn, 500, func(e envelope) bool { return e.Type == TypeError })
	assert.Equal(t, "malformed message", rejected.Reason)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "teleport"}))
	rejected = readUntil(t, conn, 500, func(e envelope) bool { return e.Type == TypeError })
	assert.Contains(t, rejected.Reason, "teleport")

	// The session survives rejected messages.
	frame := readUntil(t, conn, 10, func(e envelope) bool { return e.Type == TypeFrame })
	assert.Equal(t, platformer.StateNotStarted, frame.Snapshot.State)
}

func TestSessionRestart(t *testing.T) {
	conn := dial(t, newTestServer(t))
	read(t, conn)

	sendActions(t, conn, "confirm")
	readUntil(t, conn, 500, func(e envelope) bool { return e.Snapshot.State == platformer.StateRunning })

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: TypeRestart}))
	readUntil(t, conn, 500, func(e envelope) bool {
		return e.Type == TypeFrame && e.Snapshot.State == platformer.StateNotStarted
	})
}

func TestSessionsOwnTheirGames(t *testing.T) {
	ts := newTestServer(t)
	a := dial(t, ts)
	b := dial(t, ts)
	read(t, a)
	read(t, b)

	sendActions(t, a, "confirm")
	readUntil(t, a, 500, func(e envelope) bool { return e.Snapshot.State == platformer.StateRunning })

	for range 20 {
		frame := read(t, b)
		assert.Equal(t, platformer.StateNotStarted, frame.Snapshot.State)
	}
}

func TestParseInput(t *testing.T) {
	f, err := parseInput(ClientMessage{Type: TypeInput, Actions: []string{"left", "jump", "quit"}})
	require.NoError(t, err)
	assert.True(t, f.Has(core.ActionLeft))
	assert.True(t, f.Has(core.ActionJump))
	assert.False(t, f.Has(core.ActionQuit))

	_, err = parseInput(ClientMessage{Type: TypeInput, Actions: []string{"none"}})
	assert.Error(t, err)
}
