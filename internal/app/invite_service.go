package app

import (
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// InviteService mints and verifies signed invite tokens for private matches.
// The token carries the match ID so a friend can join the exact room the
// host created, without the server storing pending invites anywhere.
type InviteService struct {
	secret string
	issuer string
	ttl    time.Duration
}

func NewInviteService(secret, issuer string, ttl time.Duration) *InviteService {
	return &InviteService{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
	}
}

// Invite is the verified content of an invite token.
type Invite struct {
	MatchID string
	HostID  string
}

func (s *InviteService) GenerateToken(matchID, hostID string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("invite service is nil")
	}
	if matchID == "" {
		return "", fmt.Errorf("match id is required")
	}
	if hostID == "" {
		return "", fmt.Errorf("host id is required")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("invite config is incomplete")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": hostID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
		"mid": matchID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// VerifyToken checks the signature, issuer and expiry of an invite token and
// returns its content.
func (s *InviteService) VerifyToken(tokenString string) (Invite, error) {
	if s == nil || s.secret == "" {
		return Invite{}, fmt.Errorf("invite config is incomplete")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return Invite{}, fmt.Errorf("parse invite token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Invite{}, fmt.Errorf("invalid invite token")
	}
	if iss, _ := claims["iss"].(string); iss != s.issuer {
		return Invite{}, fmt.Errorf("invite token issuer mismatch")
	}

	matchID, _ := claims["mid"].(string)
	hostID, _ := claims["sub"].(string)
	if matchID == "" || hostID == "" {
		return Invite{}, fmt.Errorf("invite token is missing claims")
	}
	return Invite{MatchID: matchID, HostID: hostID}, nil
}
