package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// GameConfig holds server-side tunables loaded once at module init.
type GameConfig struct {
	// TurnDurationSeconds bounds how long a player may think before the
	// match forfeits them.
	TurnDurationSeconds int `yaml:"turn_duration_seconds"`

	// EmptyTimeoutSeconds is how long a room waits for players before
	// shutting down.
	EmptyTimeoutSeconds int `yaml:"empty_timeout_seconds"`

	Invite InviteConfig `yaml:"invite"`
}

// InviteConfig configures private-match invite tokens.
type InviteConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

const (
	defaultTurnDurationSeconds = 60
	defaultEmptyTimeoutSeconds = 120
	defaultInviteTTLMinutes    = 30
	defaultInviteIssuer        = "gridlock"
)

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path. Missing
// fields fall back to defaults; the call is a no-op after the first load.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c, err := parse(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or defaults when no
// config file was loaded.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return defaults()
	}
	return cfg
}

func parse(data []byte) (*GameConfig, error) {
	c := defaults()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	sanitize(c)
	return c, nil
}

func defaults() *GameConfig {
	return &GameConfig{
		TurnDurationSeconds: defaultTurnDurationSeconds,
		EmptyTimeoutSeconds: defaultEmptyTimeoutSeconds,
		Invite: InviteConfig{
			Issuer:     defaultInviteIssuer,
			TTLMinutes: defaultInviteTTLMinutes,
		},
	}
}

func sanitize(c *GameConfig) {
	if c.TurnDurationSeconds <= 0 {
		c.TurnDurationSeconds = defaultTurnDurationSeconds
	}
	if c.EmptyTimeoutSeconds <= 0 {
		c.EmptyTimeoutSeconds = defaultEmptyTimeoutSeconds
	}
	if c.Invite.TTLMinutes <= 0 {
		c.Invite.TTLMinutes = defaultInviteTTLMinutes
	}
	if c.Invite.Issuer == "" {
		c.Invite.Issuer = defaultInviteIssuer
	}
}
