package stream

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// Message types.
const (
	TypeInput   = "input"   // client: actions held from now on
	TypeRestart = "restart" // client: start a new run from the first level
	TypeHello   = "hello"   // server: sent once after the upgrade
	TypeFrame   = "frame"   // server: one simulated tick
	TypeError   = "error"   // server: the last client message was rejected
)

// ClientMessage is what a browser or bot sends. Actions use the names of
// core.Action ("left", "jump", ...). Input is level-triggered: the set
// stays held until the next input message replaces it.
type ClientMessage struct {
	Type    string   `json:"type"`
	Actions []string `json:"actions,omitempty"`
}

// Hello describes the session.
type Hello struct {
	Type     string `json:"type"`
	Game     string `json:"game"`
	Title    string `json:"title"`
	TickRate int    `json:"tickRate"`
	Levels   int    `json:"levels"`
	Seed     int64  `json:"seed"`
}

// Frame carries the world after one tick and what happened during it.
// Seq counts frames sent on this connection; the world tick in the
// snapshot stands still while paused.
type Frame struct {
	Type     string              `json:"type"`
	Seq      uint64              `json:"seq"`
	Hash     uint64              `json:"hash"`
	Snapshot platformer.Snapshot `json:"snapshot"`
	Events   []core.Event        `json:"events,omitempty"`
}

// ErrorMessage reports a rejected client message.
type ErrorMessage struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// parseInput decodes a client message into the frame it holds.
func parseInput(msg ClientMessage) (core.InputFrame, error) {
	f := core.NewInputFrame()
	for _, name := range msg.Actions {
		a, ok := core.ParseAction(name)
		if !ok {
			return f, fmt.Errorf("unknown action %q", name)
		}
		// Quitting is the client closing the socket.
		if a == core.ActionQuit {
			continue
		}
		f.Set(a)
	}
	return f, nil
}

func decode(payload []byte) (ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return msg, fmt.Errorf("malformed message: %w", err)
	}
	return msg, nil
}
