package ports

import "context"

// PlayerStats is a user's lifetime match record.
type PlayerStats struct {
	Wins     int64 `json:"wins"`
	Losses   int64 `json:"losses"`
	Forfeits int64 `json:"forfeits"`
}

// MatchResult describes one finished game for the stats ledger.
type MatchResult struct {
	WinnerID string
	LoserID  string
	// Forfeit marks results decided by resignation or timeout rather than
	// by the board.
	Forfeit bool
}

// StatsPort defines the interface for the persistent win/loss ledger.
type StatsPort interface {
	// Stats retrieves the current record for a user. A user with no record
	// yet gets the zero value, not an error.
	Stats(ctx context.Context, userID string) (PlayerStats, error)

	// EnsureStats creates an empty record for a new user if none exists.
	EnsureStats(ctx context.Context, userID string) error

	// RecordResult applies a finished match to both players' records.
	RecordResult(ctx context.Context, result MatchResult) error
}
