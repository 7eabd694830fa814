package domain

import "time"

// Status is the lifecycle stage of a game.
type Status string

const (
	// StatusSetup is the pre-game state before both players are seated.
	StatusSetup Status = "setup"
	// StatusPlaying is the active state where moves are accepted.
	StatusPlaying Status = "playing"
	// StatusEnded is the terminal state after a winner is decided.
	StatusEnded Status = "ended"
)

// Color is a player's side. Red always moves first.
type Color string

const (
	ColorRed  Color = "red"
	ColorBlue Color = "blue"
)

// Player holds the per-participant state inside a game.
type Player struct {
	ID           PlayerID  `json:"id"`
	Color        Color     `json:"color"`
	Position     Position  `json:"position"`
	StartingCard CardLabel `json:"starting_card"`
	Active       bool      `json:"active"`
}

// MoveRecord is the immutable log entry for one executed move.
type MoveRecord struct {
	PlayerID  PlayerID  `json:"player_id"`
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Path      MovePath  `json:"path"`
	Distance  int       `json:"distance"`
	Card      CardLabel `json:"card"`
	Timestamp time.Time `json:"timestamp"`
}

// Game is the authoritative state for one match. It is owned by a single
// caller at a time: the core does no locking and expects the transport layer
// to serialize all submissions per game instance.
type Game struct {
	Board   *Board          `json:"board"`
	Players [2]Player       `json:"players"`
	Current int             `json:"current_player"`
	History []MoveRecord    `json:"history"`
	Joker   *JokerMoveState `json:"-"`
	Status  Status          `json:"status"`
	Winner  PlayerID        `json:"winner,omitempty"`
}

// NewGame builds a board from the deck and seats two players: red on the red
// joker, blue on the black joker. Each player's starting card is the joker
// they begin on, so the opening move of each side is a flexible move.
func NewGame(redID, blueID PlayerID, deck []CardLabel) (*Game, error) {
	board, err := NewBoard(deck)
	if err != nil {
		return nil, err
	}

	redStart, _ := board.Find(CardRedJoker)
	blueStart, _ := board.Find(CardBlackJoker)

	g := &Game{
		Board: board,
		Players: [2]Player{
			{ID: redID, Color: ColorRed, Position: redStart, StartingCard: CardRedJoker, Active: true},
			{ID: blueID, Color: ColorBlue, Position: blueStart, StartingCard: CardBlackJoker, Active: true},
		},
		Current: 0,
		Status:  StatusPlaying,
	}
	board.At(redStart).Occupant = redID
	board.At(blueStart).Occupant = blueID
	return g, nil
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return &g.Players[g.Current]
}

// PlayerByID returns the player with the given id, or nil.
func (g *Game) PlayerByID(id PlayerID) *Player {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return &g.Players[i]
		}
	}
	return nil
}

// Opponent returns the other player relative to id, or nil when id is not a
// participant.
func (g *Game) Opponent(id PlayerID) *Player {
	for i := range g.Players {
		if g.Players[i].ID != id {
			return &g.Players[i]
		}
	}
	return nil
}

// ExecuteMove validates and applies a complete move for the given player.
// On success the board mutates atomically: the origin cell is vacated, the
// destination occupied, the origin collapsed, the record appended, and the
// turn passed to the opponent. Validation failures leave the game untouched.
//
// Collapse is irreversible, so it is applied only after the occupant has
// moved; every mutation from the first onward is infallible given a path
// that passed validation.
func (g *Game) ExecuteMove(id PlayerID, from, to Position, path MovePath, label CardLabel) (MoveRecord, error) {
	if g.Status != StatusPlaying {
		return MoveRecord{}, ErrGameOver
	}
	if g.Joker != nil {
		return MoveRecord{}, ErrJokerMoveInProgress
	}

	mover := g.CurrentPlayer()
	if mover.ID != id {
		return MoveRecord{}, ErrOutOfTurn
	}
	if len(path) == 0 || path[0] != from || path[len(path)-1] != to || from != mover.Position {
		return MoveRecord{}, ErrMalformedMove
	}
	if !from.InRange() {
		return MoveRecord{}, ErrPositionOutOfRange
	}
	if g.Board.At(from).Label != label {
		return MoveRecord{}, ErrCardMismatch
	}
	if err := ValidatePath(g.Board, path, label, id); err != nil {
		return MoveRecord{}, err
	}

	return g.applyMove(mover, from, to, path, label), nil
}

// applyMove performs the mutation sequence for an already validated path.
func (g *Game) applyMove(mover *Player, from, to Position, path MovePath, label CardLabel) MoveRecord {
	g.Board.At(from).Occupant = ""
	g.Board.At(to).Occupant = mover.ID
	mover.Position = to
	g.Board.Collapse(from)

	record := MoveRecord{
		PlayerID:  mover.ID,
		From:      from,
		To:        to,
		Path:      path.clone(),
		Distance:  path.Distance(),
		Card:      label,
		Timestamp: time.Now().UTC(),
	}
	g.History = append(g.History, record)

	g.Current = 1 - g.Current
	g.CheckWinCondition()
	return record
}

// CheckWinCondition ends the game when the player to move has no legal move
// left: the player who just moved wins. Calling it on a finished or not yet
// started game changes nothing.
func (g *Game) CheckWinCondition() {
	if g.Status != StatusPlaying {
		return
	}
	current := g.CurrentPlayer()
	if g.HasLegalMove(current.ID) {
		return
	}
	winner := g.Opponent(current.ID)
	g.Status = StatusEnded
	g.Winner = winner.ID
	current.Active = false
}

// Forfeit ends the game immediately with the opponent of id as winner. The
// transport layer uses it for disconnects and turn timeouts.
func (g *Game) Forfeit(id PlayerID) error {
	if g.Status != StatusPlaying {
		return ErrGameOver
	}
	loser := g.PlayerByID(id)
	if loser == nil {
		return ErrOutOfTurn
	}
	g.Joker = nil
	g.Status = StatusEnded
	g.Winner = g.Opponent(id).ID
	loser.Active = false
	return nil
}
