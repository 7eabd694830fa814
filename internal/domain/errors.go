package domain

import "errors"

// Every rule violation surfaces as one of these sentinel errors. Callers
// branch with errors.Is; none of them corrupt game state and all are
// recoverable by retrying with a corrected move, except ErrGameOver.
var (
	ErrInvalidDeckSize         = errors.New("deck must contain exactly 16 cards")
	ErrInvalidCardDistribution = errors.New("deck does not match the required card distribution")
	ErrUnknownCardLabel        = errors.New("unknown card label")
	ErrPositionOutOfRange      = errors.New("position is outside the board")

	ErrDistanceMismatch    = errors.New("path length does not match the card distance")
	ErrNonOrthogonalStep   = errors.New("path contains a non-orthogonal step")
	ErrRevisitedCell       = errors.New("path revisits a cell")
	ErrEndsOnStartingCell  = errors.New("path ends on its starting cell")
	ErrEndsOnCollapsedCell = errors.New("path ends on a collapsed cell")
	ErrEndsOnOccupiedCell  = errors.New("path ends on an occupied cell")
	ErrPathBlocked         = errors.New("path passes through an impassable cell")

	ErrNotOnJoker          = errors.New("player is not standing on a joker")
	ErrNoActiveJokerMove   = errors.New("no joker move in progress")
	ErrJokerAtMaxDistance  = errors.New("joker move already at maximum distance")
	ErrJokerMoveInProgress = errors.New("a joker move is already in progress")
	ErrJokerNoSteps        = errors.New("joker move has no steps to complete")

	ErrGameOver        = errors.New("game is already over")
	ErrOutOfTurn       = errors.New("not this player's turn")
	ErrCardMismatch    = errors.New("declared card does not match the mover's cell")
	ErrMalformedMove   = errors.New("from/to do not match the submitted path")
	ErrCorruptSnapshot = errors.New("snapshot is missing board or players")
)
