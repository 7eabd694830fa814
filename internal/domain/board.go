package domain

// Board dimensions. The grid is a torus: row and column arithmetic wraps on
// both axes independently, so every cell has exactly four orthogonal
// neighbors and no cell is an edge case.
const (
	BoardSize = 4
	DeckSize  = BoardSize * BoardSize
)

// PlayerID identifies a participant. The transport layer supplies it; the
// core only ever compares it for equality.
type PlayerID string

// Position is a cell coordinate with row and col in [0, BoardSize).
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InRange reports whether the position lies on the board.
func (p Position) InRange() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Neighbors returns the four orthogonal wraparound neighbors, in the order
// up, right, down, left. Pure modulo arithmetic: row 0 wraps up to row 3,
// col 3 wraps right to col 0, and so on. No branch distinguishes a wrapping
// step from an interior one, which is what lets the rule engine treat both
// identically.
func (p Position) Neighbors() [4]Position {
	return [4]Position{
		{Row: (p.Row + BoardSize - 1) % BoardSize, Col: p.Col},
		{Row: p.Row, Col: (p.Col + 1) % BoardSize},
		{Row: (p.Row + 1) % BoardSize, Col: p.Col},
		{Row: p.Row, Col: (p.Col + BoardSize - 1) % BoardSize},
	}
}

// IsStep reports whether b is an orthogonal wraparound neighbor of a.
func IsStep(a, b Position) bool {
	for _, n := range a.Neighbors() {
		if n == b {
			return true
		}
	}
	return false
}

// Cell is one square of the board. Collapsed is monotonic: once a cell
// collapses it never becomes playable again. Occupant is empty when nobody
// stands on the cell.
type Cell struct {
	Label     CardLabel `json:"label"`
	Collapsed bool      `json:"collapsed"`
	Occupant  PlayerID  `json:"occupant,omitempty"`
}

// Board is the 4x4 toroidal grid of cells.
type Board struct {
	Cells [BoardSize][BoardSize]Cell `json:"cells"`
}

// NewBoard builds a board from exactly DeckSize labels laid out in row-major
// order. The label multiset must match requiredCounts.
func NewBoard(deck []CardLabel) (*Board, error) {
	if len(deck) != DeckSize {
		return nil, ErrInvalidDeckSize
	}

	counts := make(map[CardLabel]int, len(requiredCounts))
	for _, label := range deck {
		if _, ok := movementSpecs[label]; !ok {
			return nil, ErrUnknownCardLabel
		}
		counts[label]++
	}
	for label, want := range requiredCounts {
		if counts[label] != want {
			return nil, ErrInvalidCardDistribution
		}
	}

	b := &Board{}
	for i, label := range deck {
		b.Cells[i/BoardSize][i%BoardSize] = Cell{Label: label}
	}
	return b, nil
}

// At returns the cell at p. Callers must guarantee p.InRange().
func (b *Board) At(p Position) *Cell {
	return &b.Cells[p.Row][p.Col]
}

// Collapse marks the cell at p as collapsed and reports whether the call
// changed anything. Collapsing an already collapsed cell is a no-op.
func (b *Board) Collapse(p Position) bool {
	cell := b.At(p)
	if cell.Collapsed {
		return false
	}
	cell.Collapsed = true
	return true
}

// Find returns the position of the first cell carrying the given label in
// row-major order. The second return is false when no cell matches.
func (b *Board) Find(label CardLabel) (Position, bool) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.Cells[r][c].Label == label {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// passable reports whether the mover may step onto the cell at p: the cell
// must not be collapsed and must not hold the opponent.
func (b *Board) passable(p Position, mover PlayerID) bool {
	cell := b.At(p)
	if cell.Collapsed {
		return false
	}
	return cell.Occupant == "" || cell.Occupant == mover
}

// clone returns a deep copy of the board. Cells are value types, so the
// array copy is sufficient.
func (b *Board) clone() *Board {
	out := *b
	return &out
}
