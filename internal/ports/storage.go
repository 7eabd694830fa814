package ports

import (
	"context"

	"gridlock/internal/domain"
)

// SnapshotStore persists in-progress game snapshots so a room can be
// inspected after the fact and debugged from its last known state.
type SnapshotStore interface {
	// SaveSnapshot writes the current snapshot for a match, replacing any
	// previous one.
	SaveSnapshot(ctx context.Context, matchID string, snapshot domain.Snapshot) error

	// LoadSnapshot reads the stored snapshot for a match. ok is false when
	// no snapshot exists.
	LoadSnapshot(ctx context.Context, matchID string) (snapshot domain.Snapshot, ok bool, err error)

	// DeleteSnapshot removes a finished match's snapshot.
	DeleteSnapshot(ctx context.Context, matchID string) error
}
