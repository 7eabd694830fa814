package app

import "gridlock/internal/domain"

// EventKind identifies emitted game events for transport dispatch.
type EventKind string

const (
	EventGameStarted    EventKind = "game_started"
	EventMovePlayed     EventKind = "move_played"
	EventJokerStarted   EventKind = "joker_started"
	EventJokerStepped   EventKind = "joker_stepped"
	EventJokerCancelled EventKind = "joker_cancelled"
	EventGameEnded      EventKind = "game_ended"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type GameStartedPayload struct {
	Snapshot     domain.Snapshot
	FirstTurnID  domain.PlayerID
	RedPlayerID  domain.PlayerID
	BluePlayerID domain.PlayerID
}

type MovePlayedPayload struct {
	Record   domain.MoveRecord
	NextTurn domain.PlayerID
	Snapshot domain.Snapshot
}

type JokerStartedPayload struct {
	PlayerID  domain.PlayerID
	Position  domain.Position
	Remaining int
}

type JokerSteppedPayload struct {
	PlayerID     domain.PlayerID
	Target       domain.Position
	Path         domain.MovePath
	Remaining    int
	MustComplete bool
}

type JokerCancelledPayload struct {
	PlayerID domain.PlayerID
}

type GameEndedPayload struct {
	Winner   domain.PlayerID
	Loser    domain.PlayerID
	Reason   string
	Snapshot domain.Snapshot
}

// End reasons carried by GameEndedPayload.
const (
	EndReasonNoMoves = "no_moves"
	EndReasonForfeit = "forfeit"
	EndReasonTimeout = "timeout"
)
