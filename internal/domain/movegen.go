package domain

// EnumerateLegalMoves returns every complete path the player could submit
// this turn. The search is a depth-bounded walk over the four directions
// from the player's cell: branches are pruned as soon as they revisit a cell
// or step onto collapsed or opponent-held terrain, matching ValidatePath
// exactly. After the first step at most three directions remain per step
// (stepping back is a revisit), so the walk explores at most 3^4 paths.
//
// The enumeration is pure and safe to call speculatively, e.g. for a
// move preview.
func (g *Game) EnumerateLegalMoves(id PlayerID) []MovePath {
	player := g.PlayerByID(id)
	if player == nil || g.Status != StatusPlaying {
		return nil
	}

	spec, err := MovementSpecFor(g.Board.At(player.Position).Label)
	if err != nil {
		return nil
	}

	minDepth, maxDepth := spec.Distance, spec.Distance
	if spec.Flexible {
		minDepth, maxDepth = spec.Min, spec.Max
	}

	var moves []MovePath
	walk(g.Board, id, MovePath{player.Position}, minDepth, maxDepth, func(path MovePath) bool {
		moves = append(moves, path.clone())
		return false
	})
	return moves
}

// HasLegalMove reports whether at least one legal path exists for the
// player. It shares the walk with EnumerateLegalMoves but stops at the
// first hit, which keeps win detection cheap on every turn switch.
func (g *Game) HasLegalMove(id PlayerID) bool {
	player := g.PlayerByID(id)
	if player == nil || g.Status == StatusSetup {
		return false
	}

	spec, err := MovementSpecFor(g.Board.At(player.Position).Label)
	if err != nil {
		return false
	}

	minDepth, maxDepth := spec.Distance, spec.Distance
	if spec.Flexible {
		minDepth, maxDepth = spec.Min, spec.Max
	}

	found := false
	walk(g.Board, id, MovePath{player.Position}, minDepth, maxDepth, func(MovePath) bool {
		found = true
		return true
	})
	return found
}

// walk extends path one passable unvisited neighbor at a time and invokes
// visit for every prefix whose distance falls inside [minDepth, maxDepth].
// visit returning true aborts the walk early.
func walk(b *Board, mover PlayerID, path MovePath, minDepth, maxDepth int, visit func(MovePath) bool) bool {
	depth := path.Distance()
	if depth >= minDepth {
		if visit(path) {
			return true
		}
	}
	if depth == maxDepth {
		return false
	}

	for _, n := range path[len(path)-1].Neighbors() {
		if path.Contains(n) {
			continue
		}
		if !b.passable(n, mover) {
			continue
		}
		if walk(b, mover, append(path, n), minDepth, maxDepth, visit) {
			return true
		}
	}
	return false
}
