package nakama

import "gridlock/internal/domain"

// Wire messages exchanged with clients. All payloads are JSON.

// SubmitMoveRequest carries a complete fixed-distance move.
type SubmitMoveRequest struct {
	From domain.Position   `json:"from"`
	To   domain.Position   `json:"to"`
	Path []domain.Position `json:"path"`
	Card string            `json:"card"`
}

// JokerStepRequest extends an in-progress joker move by one cell.
type JokerStepRequest struct {
	Target domain.Position `json:"target"`
}

// MatchStateEvent describes the room to everyone in it.
type MatchStateEvent struct {
	Seats     []string       `json:"seats"`
	OwnerSeat int            `json:"owner_seat"`
	Phase     string         `json:"phase"`
	Players   []SeatedPlayer `json:"players"`
}

// SeatedPlayer is one occupied seat in a MatchStateEvent.
type SeatedPlayer struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	IsOwner     bool   `json:"is_owner"`
	DisplayName string `json:"display_name"`
}

// GameStartedEvent announces a dealt board.
type GameStartedEvent struct {
	Snapshot     domain.Snapshot `json:"snapshot"`
	FirstTurnID  string          `json:"first_turn_id"`
	RedPlayerID  string          `json:"red_player_id"`
	BluePlayerID string          `json:"blue_player_id"`
}

// MovePlayedEvent announces an executed move.
type MovePlayedEvent struct {
	Record   domain.MoveRecord `json:"record"`
	NextTurn string            `json:"next_turn"`
	Snapshot domain.Snapshot   `json:"snapshot"`
}

// JokerStartedEvent announces a joker move opening.
type JokerStartedEvent struct {
	PlayerID  string          `json:"player_id"`
	Position  domain.Position `json:"position"`
	Remaining int             `json:"remaining"`
}

// JokerSteppedEvent announces one step of an in-progress joker move.
type JokerSteppedEvent struct {
	PlayerID     string            `json:"player_id"`
	Target       domain.Position   `json:"target"`
	Path         []domain.Position `json:"path"`
	Remaining    int               `json:"remaining"`
	MustComplete bool              `json:"must_complete"`
}

// JokerCancelledEvent announces a discarded joker move.
type JokerCancelledEvent struct {
	PlayerID string `json:"player_id"`
}

// GameEndedEvent announces the result.
type GameEndedEvent struct {
	Winner   string          `json:"winner"`
	Loser    string          `json:"loser"`
	Reason   string          `json:"reason"`
	Snapshot domain.Snapshot `json:"snapshot"`
}

// GameErrorEvent tells the offending sender why their message was rejected.
type GameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MatchLabel is the JSON label advertised for matchmaking queries.
type MatchLabel struct {
	Open    int    `json:"open"`
	Game    string `json:"game"`
	Phase   string `json:"phase"`
	Private bool   `json:"private"`
}
