package domain

// JokerMoveState is the transient state of an in-progress flexible move. It
// exists only between StartJokerMove and CompleteJokerMove or
// CancelJokerMove; it is never serialized into a snapshot.
//
// The board is not touched while the state is alive: the occupant marker
// moves only when the accumulated path is committed by Complete. Cancel can
// therefore discard the state without any rollback.
type JokerMoveState struct {
	PlayerID  PlayerID
	Start     Position
	Current   Position
	Path      MovePath
	Remaining int
	Active    bool
}

// SpacesMoved is the number of steps taken so far.
func (s *JokerMoveState) SpacesMoved() int {
	return s.Path.Distance()
}

// StartJokerMove begins a flexible move for the current player, who must be
// standing on an uncollapsed joker cell.
func (g *Game) StartJokerMove(id PlayerID) (*JokerMoveState, error) {
	if g.Status != StatusPlaying {
		return nil, ErrGameOver
	}
	if g.Joker != nil {
		return nil, ErrJokerMoveInProgress
	}

	mover := g.CurrentPlayer()
	if mover.ID != id {
		return nil, ErrOutOfTurn
	}

	cell := g.Board.At(mover.Position)
	if !cell.Label.IsJoker() || cell.Collapsed {
		return nil, ErrNotOnJoker
	}

	spec := movementSpecs[cell.Label]
	g.Joker = &JokerMoveState{
		PlayerID:  id,
		Start:     mover.Position,
		Current:   mover.Position,
		Path:      MovePath{mover.Position},
		Remaining: spec.Max,
		Active:    true,
	}
	return g.Joker, nil
}

// StepJokerMove extends the in-progress flexible move by one cell. The
// target must be an orthogonal wraparound neighbor of the current position,
// unvisited, uncollapsed, and not held by the opponent. When the step budget
// reaches zero the move must be completed.
func (g *Game) StepJokerMove(target Position) error {
	if g.Status != StatusPlaying {
		return ErrGameOver
	}
	state := g.Joker
	if state == nil || !state.Active {
		return ErrNoActiveJokerMove
	}
	if state.Remaining <= 0 {
		return ErrJokerAtMaxDistance
	}
	if !target.InRange() {
		return ErrPositionOutOfRange
	}
	if !IsStep(state.Current, target) {
		return ErrNonOrthogonalStep
	}
	if state.Path.Contains(target) {
		return ErrRevisitedCell
	}
	cell := g.Board.At(target)
	if cell.Collapsed {
		return ErrEndsOnCollapsedCell
	}
	if cell.Occupant != "" && cell.Occupant != state.PlayerID {
		return ErrEndsOnOccupiedCell
	}

	state.Path = append(state.Path, target)
	state.Current = target
	state.Remaining--
	return nil
}

// CanContinue reports whether the in-progress move may take a further step.
func (s *JokerMoveState) CanContinue(b *Board) bool {
	if s == nil || !s.Active || s.Remaining <= 0 {
		return false
	}
	return len(s.stepTargets(b)) > 0
}

// MustComplete reports whether the in-progress move can no longer be
// extended and has to be committed: either the step budget is spent, or at
// least one step was taken and no further valid step exists. A move with
// zero steps can neither complete nor be forced.
func (s *JokerMoveState) MustComplete(b *Board) bool {
	if s == nil || !s.Active {
		return false
	}
	if s.Remaining == 0 {
		return true
	}
	return s.SpacesMoved() >= 1 && len(s.stepTargets(b)) == 0
}

// stepTargets returns the neighbors of the current position that a further
// step could legally reach.
func (s *JokerMoveState) stepTargets(b *Board) []Position {
	var targets []Position
	for _, n := range s.Current.Neighbors() {
		if s.Path.Contains(n) {
			continue
		}
		if !b.passable(n, s.PlayerID) {
			continue
		}
		targets = append(targets, n)
	}
	return targets
}

// CompleteJokerMove commits the accumulated path as this turn's move. The
// whole path is re-validated through the rule engine against the traversed
// distance before any board mutation, then executed with the same collapse-
// last ordering as a fixed-distance move. The transient state is discarded.
func (g *Game) CompleteJokerMove() (MoveRecord, error) {
	if g.Status != StatusPlaying {
		return MoveRecord{}, ErrGameOver
	}
	state := g.Joker
	if state == nil || !state.Active {
		return MoveRecord{}, ErrNoActiveJokerMove
	}
	if state.SpacesMoved() < 1 {
		return MoveRecord{}, ErrJokerNoSteps
	}

	label := g.Board.At(state.Start).Label
	if err := ValidatePath(g.Board, state.Path, label, state.PlayerID); err != nil {
		return MoveRecord{}, err
	}

	mover := g.PlayerByID(state.PlayerID)
	path := state.Path
	g.Joker = nil
	state.Active = false
	return g.applyMove(mover, state.Start, state.Current, path, label), nil
}

// CancelJokerMove discards the in-progress flexible move. Nothing on the
// board was committed per step, so there is nothing to restore.
func (g *Game) CancelJokerMove() error {
	if g.Joker == nil || !g.Joker.Active {
		return ErrNoActiveJokerMove
	}
	g.Joker.Active = false
	g.Joker = nil
	return nil
}
