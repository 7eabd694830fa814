package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"gridlock/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	statsCollection = "stats"
	statsKey        = "record_v1"
)

// NakamaStatsAdapter implements ports.StatsPort on Nakama storage. Records
// are per-user objects readable by their owner and written only by the
// server.
type NakamaStatsAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaStatsAdapter creates a new stats adapter.
func NewNakamaStatsAdapter(nk runtime.NakamaModule) *NakamaStatsAdapter {
	return &NakamaStatsAdapter{nk: nk}
}

// Stats retrieves the current record for a user, or the zero value when the
// user has no record yet.
func (a *NakamaStatsAdapter) Stats(ctx context.Context, userID string) (ports.PlayerStats, error) {
	stats, _, err := a.read(ctx, userID)
	return stats, err
}

// EnsureStats creates an empty record for a new user. An existing record is
// left alone.
func (a *NakamaStatsAdapter) EnsureStats(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("userID is required")
	}

	_, version, err := a.read(ctx, userID)
	if err != nil {
		return err
	}
	if version != "" {
		return nil
	}

	// Version "*" makes the write fail rather than clobber a record created
	// by a concurrent onboarding call.
	if err := a.write(ctx, userID, ports.PlayerStats{}, "*"); err != nil {
		return fmt.Errorf("failed to create stats record for user %s: %w", userID, err)
	}
	return nil
}

// RecordResult applies a finished match to both players' records.
func (a *NakamaStatsAdapter) RecordResult(ctx context.Context, result ports.MatchResult) error {
	if result.WinnerID == "" || result.LoserID == "" {
		return fmt.Errorf("both winner and loser are required")
	}

	winner, winnerVersion, err := a.read(ctx, result.WinnerID)
	if err != nil {
		return err
	}
	winner.Wins++
	if err := a.write(ctx, result.WinnerID, winner, winnerVersion); err != nil {
		return fmt.Errorf("failed to record win for user %s: %w", result.WinnerID, err)
	}

	loser, loserVersion, err := a.read(ctx, result.LoserID)
	if err != nil {
		return err
	}
	loser.Losses++
	if result.Forfeit {
		loser.Forfeits++
	}
	if err := a.write(ctx, result.LoserID, loser, loserVersion); err != nil {
		return fmt.Errorf("failed to record loss for user %s: %w", result.LoserID, err)
	}
	return nil
}

// read returns the stored record and its version, or zero values when no
// record exists.
func (a *NakamaStatsAdapter) read(ctx context.Context, userID string) (ports.PlayerStats, string, error) {
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{{
		Collection: statsCollection,
		Key:        statsKey,
		UserID:     userID,
	}})
	if err != nil {
		return ports.PlayerStats{}, "", fmt.Errorf("failed to read stats for user %s: %w", userID, err)
	}
	if len(objects) == 0 {
		return ports.PlayerStats{}, "", nil
	}

	var stats ports.PlayerStats
	if err := json.Unmarshal([]byte(objects[0].GetValue()), &stats); err != nil {
		return ports.PlayerStats{}, "", fmt.Errorf("failed to unmarshal stats for user %s: %w", userID, err)
	}
	return stats, objects[0].GetVersion(), nil
}

func (a *NakamaStatsAdapter) write(ctx context.Context, userID string, stats ports.PlayerStats, version string) error {
	value, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	_, err = a.nk.StorageWrite(ctx, []*runtime.StorageWrite{{
		Collection:      statsCollection,
		Key:             statsKey,
		UserID:          userID,
		Value:           string(value),
		Version:         version,
		PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
		PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
	}})
	return err
}

var _ ports.StatsPort = (*NakamaStatsAdapter)(nil)
