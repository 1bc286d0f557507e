package core

// EventKind identifies a discrete occurrence inside a tick that audio and
// HUD collaborators react to.
type EventKind int

const (
	EventCoin EventKind = iota + 1
	EventBlockStruck
	EventPowerup
	EventShot
	EventStomp
	EventDamage
	EventPlayerDefeated
	EventEnemyDefeated
	EventLevelComplete
	EventWon
	EventReset
	EventPaused
	EventResumed
)

var eventNames = map[EventKind]string{
	EventCoin:           "coin",
	EventBlockStruck:    "block_struck",
	EventPowerup:        "powerup",
	EventShot:           "shot",
	EventStomp:          "stomp",
	EventDamage:         "damage",
	EventPlayerDefeated: "player_defeated",
	EventEnemyDefeated:  "enemy_defeated",
	EventLevelComplete:  "level_complete",
	EventWon:            "won",
	EventReset:          "reset",
	EventPaused:         "paused",
	EventResumed:        "resumed",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the kind by name so JSON consumers see "coin", not 1.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event is one occurrence. Amount and Source are kind-specific: damage
// amount and its source, score bonus and enemy kind, final score on a win.
type Event struct {
	Kind   EventKind `json:"kind"`
	Amount int       `json:"amount,omitempty"`
	Source string    `json:"source,omitempty"`
	Level  int       `json:"level"`
}
