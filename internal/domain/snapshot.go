package domain

// Snapshot is the plain serializable form of a game. It carries everything a
// persistence or transport layer needs to rebuild the state, minus the
// transient joker move, which never survives a snapshot boundary.
type Snapshot struct {
	Board   *Board       `json:"board"`
	Players []Player     `json:"players"`
	Current int          `json:"current_player"`
	History []MoveRecord `json:"history,omitempty"`
	Status  Status       `json:"status"`
	Winner  PlayerID     `json:"winner,omitempty"`
}

// Snapshot returns a deep copy of the game as a plain structure.
func (g *Game) Snapshot() Snapshot {
	players := make([]Player, len(g.Players))
	copy(players, g.Players[:])

	history := make([]MoveRecord, len(g.History))
	for i, rec := range g.History {
		rec.Path = rec.Path.clone()
		history[i] = rec
	}

	return Snapshot{
		Board:   g.Board.clone(),
		Players: players,
		Current: g.Current,
		History: history,
		Status:  g.Status,
		Winner:  g.Winner,
	}
}

// RestoreGame rebuilds a game from a snapshot. A snapshot missing its board
// or its two players is treated as corrupted input and rejected, never
// trusted. The restored game owns deep copies of the snapshot's data.
func RestoreGame(s Snapshot) (*Game, error) {
	if s.Board == nil || len(s.Players) != 2 {
		return nil, ErrCorruptSnapshot
	}
	if s.Current < 0 || s.Current > 1 {
		return nil, ErrCorruptSnapshot
	}

	g := &Game{
		Board:   s.Board.clone(),
		Current: s.Current,
		Status:  s.Status,
		Winner:  s.Winner,
	}
	copy(g.Players[:], s.Players)

	g.History = make([]MoveRecord, len(s.History))
	for i, rec := range s.History {
		rec.Path = rec.Path.clone()
		g.History[i] = rec
	}
	return g, nil
}
