package onboarding

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"gridlock/internal/ports"
)

type fakeAccountPort struct {
	updateErr error
	applied   []string
}

func (f *fakeAccountPort) UpdateProfile(ctx context.Context, userID, username, displayName string) error {
	f.applied = append(f.applied, displayName)
	return f.updateErr
}

type fakeStatsPort struct {
	ensureErr error
	ensured   []string
}

func (f *fakeStatsPort) Stats(ctx context.Context, userID string) (ports.PlayerStats, error) {
	return ports.PlayerStats{}, nil
}

func (f *fakeStatsPort) EnsureStats(ctx context.Context, userID string) error {
	f.ensured = append(f.ensured, userID)
	return f.ensureErr
}

func (f *fakeStatsPort) RecordResult(ctx context.Context, result ports.MatchResult) error {
	return nil
}

func TestOnboardNewUser_CreatesStatsRecord(t *testing.T) {
	stats := &fakeStatsPort{}
	service := NewService(&fakeAccountPort{}, stats, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.ProfileUpdateErr != nil {
		t.Fatalf("Expected no profile update error, got %v", result.ProfileUpdateErr)
	}
	if result.DisplayName == "" {
		t.Fatal("Expected a generated display name")
	}

	if len(stats.ensured) != 1 || stats.ensured[0] != "user-1" {
		t.Fatalf("Expected stats record for user-1, got %v", stats.ensured)
	}
}

func TestOnboardNewUser_AccountUpdateFailureStillCreatesStats(t *testing.T) {
	stats := &fakeStatsPort{}
	service := NewService(&fakeAccountPort{updateErr: errors.New("update failed")}, stats, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.ProfileUpdateErr == nil {
		t.Fatal("Expected profile update error to be captured")
	}

	if len(stats.ensured) != 1 {
		t.Fatalf("Expected 1 stats record call, got %d", len(stats.ensured))
	}
}

func TestOnboardNewUser_StatsFailureReturnsError(t *testing.T) {
	service := NewService(&fakeAccountPort{}, &fakeStatsPort{ensureErr: errors.New("storage failed")}, rand.New(rand.NewSource(1)))

	if _, err := service.OnboardNewUser(context.Background(), "user-1"); err == nil {
		t.Fatal("Expected error when stats record creation fails")
	}
}

func TestOnboardNewUser_GeneratedNamesAreDeterministicPerSeed(t *testing.T) {
	accounts := &fakeAccountPort{}
	service := NewService(accounts, &fakeStatsPort{}, rand.New(rand.NewSource(7)))

	first, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}

	other := NewService(&fakeAccountPort{}, &fakeStatsPort{}, rand.New(rand.NewSource(7)))
	second, err := other.OnboardNewUser(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}

	if first.DisplayName != second.DisplayName {
		t.Fatalf("Same seed produced %q and %q", first.DisplayName, second.DisplayName)
	}
	if len(accounts.applied) != 1 || accounts.applied[0] != first.DisplayName {
		t.Fatalf("Profile update applied %v, want %q", accounts.applied, first.DisplayName)
	}
}
