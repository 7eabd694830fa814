package domain

// MovePath is the ordered sequence of cells traversed in one turn. The first
// element is the mover's pre-turn position; all elements are distinct.
type MovePath []Position

// Distance is the number of steps the path covers.
func (p MovePath) Distance() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether pos appears anywhere in the path.
func (p MovePath) Contains(pos Position) bool {
	for _, q := range p {
		if q == pos {
			return true
		}
	}
	return false
}

// clone returns an independent copy of the path.
func (p MovePath) clone() MovePath {
	out := make(MovePath, len(p))
	copy(out, p)
	return out
}

// ValidateDistance checks a planned distance against a card's movement spec.
func ValidateDistance(label CardLabel, distance int) error {
	spec, err := MovementSpecFor(label)
	if err != nil {
		return err
	}
	if !spec.Allows(distance) {
		return ErrDistanceMismatch
	}
	return nil
}

// ValidatePath checks a complete candidate path for a move under the given
// card against the current board. It is pure: no mutation, no retained state.
// Checks run in a fixed order and the first failure wins:
//
//  1. the path distance matches the card's movement spec
//  2. every position lies on the board
//  3. every consecutive pair is an orthogonal wraparound step
//  4. no position repeats
//  5. the path does not end on its starting cell
//  6. the final cell is not collapsed
//  7. the final cell is not occupied by the opponent
//  8. no intermediate cell is collapsed or occupied by the opponent
//
// The mover's own start cell counts as vacated: occupation by the mover
// never rejects a path, because the start cell is cleared during execution.
func ValidatePath(board *Board, path MovePath, label CardLabel, mover PlayerID) error {
	if err := ValidateDistance(label, path.Distance()); err != nil {
		return err
	}

	for _, pos := range path {
		if !pos.InRange() {
			return ErrPositionOutOfRange
		}
	}

	for i := 1; i < len(path); i++ {
		if !IsStep(path[i-1], path[i]) {
			return ErrNonOrthogonalStep
		}
	}

	seen := make(map[Position]struct{}, len(path))
	for _, pos := range path {
		if _, dup := seen[pos]; dup {
			return ErrRevisitedCell
		}
		seen[pos] = struct{}{}
	}

	last := path[len(path)-1]
	if last == path[0] {
		return ErrEndsOnStartingCell
	}

	dest := board.At(last)
	if dest.Collapsed {
		return ErrEndsOnCollapsedCell
	}
	if dest.Occupant != "" && dest.Occupant != mover {
		return ErrEndsOnOccupiedCell
	}

	for i := 1; i < len(path)-1; i++ {
		if !board.passable(path[i], mover) {
			return ErrPathBlocked
		}
	}

	return nil
}
