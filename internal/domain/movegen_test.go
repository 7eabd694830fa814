package domain

import "testing"

func TestEnumerateLegalMovesFixedCard(t *testing.T) {
	g := newTestGame(t)
	relocate(g, redID, Position{0, 1}) // an Ace: exactly the four neighbors

	moves := g.EnumerateLegalMoves(redID)
	if len(moves) != 4 {
		t.Fatalf("ace moves = %d, want 4", len(moves))
	}
	for _, m := range moves {
		if m.Distance() != 1 {
			t.Fatalf("ace move distance = %d, want 1", m.Distance())
		}
		if m[0] != (Position{0, 1}) {
			t.Fatalf("move starts at %v, want {0 1}", m[0])
		}
	}
}

func TestEnumerateLegalMovesPrunesBlockedBranches(t *testing.T) {
	g := newTestGame(t)
	relocate(g, redID, Position{0, 1})

	g.Board.Collapse(Position{0, 2})
	relocate(g, blueID, Position{1, 1})

	moves := g.EnumerateLegalMoves(redID)
	if len(moves) != 2 {
		t.Fatalf("moves = %d, want 2 after collapsing one neighbor and occupying another", len(moves))
	}
	for _, m := range moves {
		dest := m[len(m)-1]
		if dest == (Position{0, 2}) || dest == (Position{1, 1}) {
			t.Fatalf("enumeration produced blocked destination %v", dest)
		}
	}
}

func TestEnumerateLegalMovesJokerSpansAllDistances(t *testing.T) {
	g := newTestGame(t)

	moves := g.EnumerateLegalMoves(redID) // red sits on the red joker
	if len(moves) == 0 {
		t.Fatalf("joker enumeration returned no moves on an open board")
	}

	byDistance := make(map[int]int)
	for _, m := range moves {
		byDistance[m.Distance()]++
	}
	for d := 1; d <= 4; d++ {
		if byDistance[d] == 0 {
			t.Fatalf("no joker move of distance %d", d)
		}
	}
	if byDistance[0] != 0 || byDistance[5] != 0 {
		t.Fatalf("joker enumeration produced out-of-range distances: %v", byDistance)
	}
}

// Every enumerated path must pass the same validator a client submission
// would go through.
func TestEnumerationConsistentWithValidatePath(t *testing.T) {
	g := newTestGame(t)
	relocate(g, blueID, Position{1, 2})
	g.Board.Collapse(Position{2, 1})
	g.Board.Collapse(Position{0, 3})

	for _, id := range []PlayerID{redID, blueID} {
		player := g.PlayerByID(id)
		label := g.Board.At(player.Position).Label
		for _, m := range g.EnumerateLegalMoves(id) {
			if err := ValidatePath(g.Board, m, label, id); err != nil {
				t.Fatalf("enumerated path %v invalid for %s: %v", m, id, err)
			}
		}
	}
}

func TestHasLegalMove(t *testing.T) {
	g := newTestGame(t)
	if !g.HasLegalMove(redID) {
		t.Fatalf("HasLegalMove() = false on an open board")
	}

	// Strand blue: an Ace with all four neighbors collapsed.
	g.Board.At(Position{3, 3}).Label = CardAce
	for _, n := range (Position{3, 3}).Neighbors() {
		g.Board.Collapse(n)
	}
	if g.HasLegalMove(blueID) {
		t.Fatalf("HasLegalMove() = true for a stranded player")
	}
}

func TestEnumerationBoundedByBranchingFactor(t *testing.T) {
	g := newTestGame(t)
	relocate(g, redID, Position{1, 1})
	g.Board.At(Position{1, 1}).Label = CardFour

	moves := g.EnumerateLegalMoves(redID)
	// Four first steps, then at most three onward choices per step.
	if max := 4 * 3 * 3 * 3; len(moves) > max {
		t.Fatalf("distance-4 enumeration = %d paths, exceeds bound %d", len(moves), max)
	}
	for _, m := range moves {
		if m.Distance() != 4 {
			t.Fatalf("fixed-four enumeration produced distance %d", m.Distance())
		}
	}
}
