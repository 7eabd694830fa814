package app

import (
	"errors"
	"math/rand"
	"time"

	"gridlock/internal/domain"
)

// MinPlayersToStartGame is the seat count a gridlock duel requires. The game
// is strictly two-player; the constant exists so the transport layer and
// tests share one definition.
const MinPlayersToStartGame = 2

var (
	ErrTooFewPlayers  = errors.New("a game needs exactly two players")
	ErrUnknownPlayer  = errors.New("player is not part of this game")
	ErrNoActiveGame   = errors.New("no game in progress")
	ErrGameInProgress = errors.New("a game is already in progress")
)

// Service contains gridlock use-cases operating on domain state. It owns no
// game instances: callers pass the authoritative *domain.Game explicitly and
// are responsible for serializing access to it.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// StartGame deals a shuffled board and seats the two players: the first on
// the red joker, the second on the black joker. Seat order decides color;
// color assignment is the transport's contract, not the players' choice.
func (s *Service) StartGame(redID, blueID domain.PlayerID) (*domain.Game, []Event, error) {
	if redID == "" || blueID == "" || redID == blueID {
		return nil, nil, ErrTooFewPlayers
	}

	deck := domain.ShuffleDeck(s.rng, domain.NewDeck())
	game, err := domain.NewGame(redID, blueID, deck)
	if err != nil {
		return nil, nil, err
	}

	events := []Event{{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			Snapshot:     game.Snapshot(),
			FirstTurnID:  game.CurrentPlayer().ID,
			RedPlayerID:  redID,
			BluePlayerID: blueID,
		},
	}}
	return game, events, nil
}

// SubmitMove validates and executes a complete fixed-distance move.
func (s *Service) SubmitMove(game *domain.Game, actorID domain.PlayerID, from, to domain.Position, path domain.MovePath, label domain.CardLabel) ([]Event, error) {
	if game == nil {
		return nil, ErrNoActiveGame
	}
	if game.PlayerByID(actorID) == nil {
		return nil, ErrUnknownPlayer
	}

	record, err := game.ExecuteMove(actorID, from, to, path, label)
	if err != nil {
		return nil, err
	}
	return s.moveEvents(game, record), nil
}

// StartJokerMove begins a flexible move for the actor.
func (s *Service) StartJokerMove(game *domain.Game, actorID domain.PlayerID) ([]Event, error) {
	if game == nil {
		return nil, ErrNoActiveGame
	}
	if game.PlayerByID(actorID) == nil {
		return nil, ErrUnknownPlayer
	}

	state, err := game.StartJokerMove(actorID)
	if err != nil {
		return nil, err
	}
	return []Event{{
		Kind: EventJokerStarted,
		Payload: JokerStartedPayload{
			PlayerID:  state.PlayerID,
			Position:  state.Start,
			Remaining: state.Remaining,
		},
	}}, nil
}

// StepJokerMove extends the actor's in-progress flexible move by one cell.
// The step is broadcast so the opponent can watch the traversal in-flight.
func (s *Service) StepJokerMove(game *domain.Game, actorID domain.PlayerID, target domain.Position) ([]Event, error) {
	if game == nil {
		return nil, ErrNoActiveGame
	}
	state := game.Joker
	if state == nil || state.PlayerID != actorID {
		return nil, domain.ErrNoActiveJokerMove
	}

	if err := game.StepJokerMove(target); err != nil {
		return nil, err
	}
	return []Event{{
		Kind: EventJokerStepped,
		Payload: JokerSteppedPayload{
			PlayerID:     actorID,
			Target:       target,
			Path:         state.Path,
			Remaining:    state.Remaining,
			MustComplete: state.MustComplete(game.Board),
		},
	}}, nil
}

// CompleteJokerMove commits the actor's accumulated joker path as this
// turn's move.
func (s *Service) CompleteJokerMove(game *domain.Game, actorID domain.PlayerID) ([]Event, error) {
	if game == nil {
		return nil, ErrNoActiveGame
	}
	if state := game.Joker; state == nil || state.PlayerID != actorID {
		return nil, domain.ErrNoActiveJokerMove
	}

	record, err := game.CompleteJokerMove()
	if err != nil {
		return nil, err
	}
	return s.moveEvents(game, record), nil
}

// CancelJokerMove discards the actor's in-progress flexible move.
func (s *Service) CancelJokerMove(game *domain.Game, actorID domain.PlayerID) ([]Event, error) {
	if game == nil {
		return nil, ErrNoActiveGame
	}
	if state := game.Joker; state == nil || state.PlayerID != actorID {
		return nil, domain.ErrNoActiveJokerMove
	}

	if err := game.CancelJokerMove(); err != nil {
		return nil, err
	}
	return []Event{{
		Kind:    EventJokerCancelled,
		Payload: JokerCancelledPayload{PlayerID: actorID},
	}}, nil
}

// Forfeit ends the game against the given player. reason distinguishes an
// explicit resignation from a transport-enforced timeout in the emitted
// event.
func (s *Service) Forfeit(game *domain.Game, actorID domain.PlayerID, reason string) ([]Event, error) {
	if game == nil {
		return nil, ErrNoActiveGame
	}
	if game.PlayerByID(actorID) == nil {
		return nil, ErrUnknownPlayer
	}

	if err := game.Forfeit(actorID); err != nil {
		return nil, err
	}
	return []Event{{
		Kind: EventGameEnded,
		Payload: GameEndedPayload{
			Winner:   game.Winner,
			Loser:    actorID,
			Reason:   reason,
			Snapshot: game.Snapshot(),
		},
	}}, nil
}

// moveEvents builds the broadcast set for an executed move, appending the
// end-of-game event when the move decided the game.
func (s *Service) moveEvents(game *domain.Game, record domain.MoveRecord) []Event {
	events := []Event{{
		Kind: EventMovePlayed,
		Payload: MovePlayedPayload{
			Record:   record,
			NextTurn: game.CurrentPlayer().ID,
			Snapshot: game.Snapshot(),
		},
	}}

	if game.Status == domain.StatusEnded {
		events = append(events, Event{
			Kind: EventGameEnded,
			Payload: GameEndedPayload{
				Winner:   game.Winner,
				Loser:    game.Opponent(game.Winner).ID,
				Reason:   EndReasonNoMoves,
				Snapshot: game.Snapshot(),
			},
		})
	}
	return events
}
