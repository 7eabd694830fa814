package domain

import (
	"errors"
	"testing"
)

func TestStartJokerMove(t *testing.T) {
	t.Run("starts on own joker", func(t *testing.T) {
		g := newTestGame(t)
		state, err := g.StartJokerMove(redID)
		if err != nil {
			t.Fatalf("StartJokerMove() error = %v", err)
		}
		if state.Remaining != 4 {
			t.Fatalf("remaining = %d, want 4", state.Remaining)
		}
		if len(state.Path) != 1 || state.Path[0] != (Position{0, 0}) {
			t.Fatalf("path = %v, want [{0 0}]", state.Path)
		}
		if !state.Active {
			t.Fatalf("state not active after start")
		}
	})

	t.Run("rejects non-joker cell", func(t *testing.T) {
		g := newTestGame(t)
		relocate(g, redID, Position{0, 1}) // an Ace
		if _, err := g.StartJokerMove(redID); !errors.Is(err, ErrNotOnJoker) {
			t.Fatalf("StartJokerMove() error = %v, want %v", err, ErrNotOnJoker)
		}
	})

	t.Run("rejects out of turn", func(t *testing.T) {
		g := newTestGame(t)
		if _, err := g.StartJokerMove(blueID); !errors.Is(err, ErrOutOfTurn) {
			t.Fatalf("StartJokerMove() error = %v, want %v", err, ErrOutOfTurn)
		}
	})

	t.Run("rejects double start", func(t *testing.T) {
		g := newTestGame(t)
		if _, err := g.StartJokerMove(redID); err != nil {
			t.Fatalf("first StartJokerMove() error = %v", err)
		}
		if _, err := g.StartJokerMove(redID); !errors.Is(err, ErrJokerMoveInProgress) {
			t.Fatalf("second StartJokerMove() error = %v, want %v", err, ErrJokerMoveInProgress)
		}
	})

	t.Run("rejects collapsed joker", func(t *testing.T) {
		g := newTestGame(t)
		g.Board.Collapse(Position{0, 0})
		if _, err := g.StartJokerMove(redID); !errors.Is(err, ErrNotOnJoker) {
			t.Fatalf("StartJokerMove() error = %v, want %v", err, ErrNotOnJoker)
		}
	})
}

func TestStepJokerMoveRules(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(g *Game)
		target  Position
		wantErr error
	}{
		{name: "valid neighbor", target: Position{0, 1}, wantErr: nil},
		{name: "valid wraparound neighbor", target: Position{3, 0}, wantErr: nil},
		{name: "diagonal", target: Position{1, 1}, wantErr: ErrNonOrthogonalStep},
		{name: "distant cell", target: Position{2, 2}, wantErr: ErrNonOrthogonalStep},
		{name: "out of range", target: Position{0, -1}, wantErr: ErrPositionOutOfRange},
		{name: "revisit start", target: Position{0, 0}, wantErr: ErrRevisitedCell},
		{
			name:    "collapsed target",
			prepare: func(g *Game) { g.Board.Collapse(Position{0, 1}) },
			target:  Position{0, 1},
			wantErr: ErrEndsOnCollapsedCell,
		},
		{
			name:    "opponent-held target",
			prepare: func(g *Game) { relocate(g, blueID, Position{0, 1}) },
			target:  Position{0, 1},
			wantErr: ErrEndsOnOccupiedCell,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			if tt.prepare != nil {
				tt.prepare(g)
			}
			if _, err := g.StartJokerMove(redID); err != nil {
				t.Fatalf("StartJokerMove() error = %v", err)
			}
			err := g.StepJokerMove(tt.target)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("StepJokerMove(%v) error = %v, want %v", tt.target, err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if g.Joker.Current != tt.target {
					t.Fatalf("current = %v, want %v", g.Joker.Current, tt.target)
				}
				if g.Joker.Remaining != 3 {
					t.Fatalf("remaining = %d, want 3", g.Joker.Remaining)
				}
			}
		})
	}
}

func TestStepJokerMoveRequiresActiveState(t *testing.T) {
	g := newTestGame(t)
	if err := g.StepJokerMove(Position{0, 1}); !errors.Is(err, ErrNoActiveJokerMove) {
		t.Fatalf("StepJokerMove() error = %v, want %v", err, ErrNoActiveJokerMove)
	}
}

func TestJokerForcedCompletionAtMaxDistance(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.StartJokerMove(redID); err != nil {
		t.Fatalf("StartJokerMove() error = %v", err)
	}

	steps := []Position{{0, 1}, {0, 2}, {0, 3}, {1, 3}}
	for i, target := range steps {
		if err := g.StepJokerMove(target); err != nil {
			t.Fatalf("step %d to %v error = %v", i+1, target, err)
		}
	}

	if g.Joker.Remaining != 0 {
		t.Fatalf("remaining = %d, want 0", g.Joker.Remaining)
	}
	if !g.Joker.MustComplete(g.Board) {
		t.Fatalf("MustComplete() = false at max distance")
	}
	if g.Joker.CanContinue(g.Board) {
		t.Fatalf("CanContinue() = true at max distance")
	}
	if err := g.StepJokerMove(Position{2, 3}); !errors.Is(err, ErrJokerAtMaxDistance) {
		t.Fatalf("fifth step error = %v, want %v", err, ErrJokerAtMaxDistance)
	}

	rec, err := g.CompleteJokerMove()
	if err != nil {
		t.Fatalf("CompleteJokerMove() error = %v", err)
	}
	if rec.Distance != 4 {
		t.Fatalf("record distance = %d, want 4", rec.Distance)
	}
	if rec.Card != CardRedJoker {
		t.Fatalf("record card = %s, want %s", rec.Card, CardRedJoker)
	}
	if g.Joker != nil {
		t.Fatalf("transient state survived completion")
	}
	if !g.Board.At(Position{0, 0}).Collapsed {
		t.Fatalf("vacated joker cell not collapsed")
	}
	if got := g.Board.At(Position{1, 3}).Occupant; got != redID {
		t.Fatalf("destination occupant = %q, want %q", got, redID)
	}
	if g.CurrentPlayer().ID != blueID {
		t.Fatalf("turn after completion = %s, want %s", g.CurrentPlayer().ID, blueID)
	}
}

func TestJokerPartialCompletion(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.StartJokerMove(redID); err != nil {
		t.Fatalf("StartJokerMove() error = %v", err)
	}
	if err := g.StepJokerMove(Position{0, 1}); err != nil {
		t.Fatalf("StepJokerMove() error = %v", err)
	}
	if err := g.StepJokerMove(Position{0, 2}); err != nil {
		t.Fatalf("StepJokerMove() error = %v", err)
	}

	if !g.Joker.CanContinue(g.Board) {
		t.Fatalf("CanContinue() = false with budget and open neighbors")
	}
	if g.Joker.MustComplete(g.Board) {
		t.Fatalf("MustComplete() = true with open neighbors")
	}

	rec, err := g.CompleteJokerMove()
	if err != nil {
		t.Fatalf("CompleteJokerMove() error = %v", err)
	}
	if rec.Distance != 2 {
		t.Fatalf("record distance = %d, want 2", rec.Distance)
	}
}

func TestJokerZeroStepsCannotComplete(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.StartJokerMove(redID); err != nil {
		t.Fatalf("StartJokerMove() error = %v", err)
	}
	if _, err := g.CompleteJokerMove(); !errors.Is(err, ErrJokerNoSteps) {
		t.Fatalf("CompleteJokerMove() error = %v, want %v", err, ErrJokerNoSteps)
	}
	if g.Joker == nil {
		t.Fatalf("failed completion discarded the state")
	}
}

func TestJokerMustCompleteWhenBoxedIn(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.StartJokerMove(redID); err != nil {
		t.Fatalf("StartJokerMove() error = %v", err)
	}
	if err := g.StepJokerMove(Position{0, 1}); err != nil {
		t.Fatalf("StepJokerMove() error = %v", err)
	}

	// Box the mover in at (0,1): the start cell is already on the path, and
	// the three remaining neighbors collapse.
	g.Board.Collapse(Position{0, 2})
	g.Board.Collapse(Position{1, 1})
	g.Board.Collapse(Position{3, 1})

	if g.Joker.CanContinue(g.Board) {
		t.Fatalf("CanContinue() = true with no open neighbor")
	}
	if !g.Joker.MustComplete(g.Board) {
		t.Fatalf("MustComplete() = false with steps taken and no open neighbor")
	}
}

func TestCancelJokerMoveRestoresNothingBecauseNothingMoved(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.StartJokerMove(redID); err != nil {
		t.Fatalf("StartJokerMove() error = %v", err)
	}
	if err := g.StepJokerMove(Position{0, 1}); err != nil {
		t.Fatalf("StepJokerMove() error = %v", err)
	}
	if err := g.StepJokerMove(Position{0, 2}); err != nil {
		t.Fatalf("StepJokerMove() error = %v", err)
	}

	if err := g.CancelJokerMove(); err != nil {
		t.Fatalf("CancelJokerMove() error = %v", err)
	}
	if g.Joker != nil {
		t.Fatalf("transient state survived cancel")
	}

	// The board never saw the steps: the occupant marker stayed put and no
	// cell collapsed.
	if got := g.Board.At(Position{0, 0}).Occupant; got != redID {
		t.Fatalf("occupant (0,0) = %q, want %q", got, redID)
	}
	if g.Board.At(Position{0, 1}).Occupant != "" || g.Board.At(Position{0, 2}).Occupant != "" {
		t.Fatalf("stepped cells acquired occupants before completion")
	}
	if g.CurrentPlayer().ID != redID {
		t.Fatalf("cancel advanced the turn")
	}

	if err := g.CancelJokerMove(); !errors.Is(err, ErrNoActiveJokerMove) {
		t.Fatalf("second CancelJokerMove() error = %v, want %v", err, ErrNoActiveJokerMove)
	}
}

func TestExecuteMoveRejectedDuringJokerMove(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.StartJokerMove(redID); err != nil {
		t.Fatalf("StartJokerMove() error = %v", err)
	}
	_, err := g.ExecuteMove(redID, Position{0, 0}, Position{0, 1},
		MovePath{{0, 0}, {0, 1}}, CardRedJoker)
	if !errors.Is(err, ErrJokerMoveInProgress) {
		t.Fatalf("ExecuteMove() error = %v, want %v", err, ErrJokerMoveInProgress)
	}
}
