package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"gridlock/internal/app"
	"gridlock/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchResponse is the payload returned to clients requesting an open match.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// CreatePrivateMatchResponse carries the new unlisted match and its invite token.
type CreatePrivateMatchResponse struct {
	MatchID     string `json:"match_id"`
	InviteToken string `json:"invite_token"`
}

// RedeemInviteRequest carries the invite token to verify.
type RedeemInviteRequest struct {
	InviteToken string `json:"invite_token"`
}

// RedeemInviteResponse returns the match a verified invite points at.
type RedeemInviteResponse struct {
	MatchID string `json:"match_id"`
	HostID  string `json:"host_id"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcCreatePrivateMatch, rpcCreatePrivateMatch); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcRedeemInvite, rpcRedeemInvite)
}

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	// Find any listed gridlock lobby with an open seat.
	query := fmt.Sprintf("+label.open:>=1 +label.game:%s +label.phase:lobby +label.private:F", MatchLabelGame)

	limit := 10
	authoritative := true
	minSize := 0
	maxSize := 1 // one seat taken, one free

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("MatchList error: %v", err)
		return "", err
	}

	if len(matches) > 0 {
		b, _ := json.Marshal(QuickMatchResponse{MatchID: matches[0].MatchId, IsNew: false})
		return string(b), nil
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameGridlock, map[string]interface{}{})
	if err != nil {
		logger.Error("MatchCreate error: %v", err)
		return "", err
	}

	b, _ := json.Marshal(QuickMatchResponse{MatchID: matchID, IsNew: true})
	return string(b), nil
}

func rpcCreatePrivateMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("authentication required", 16) // UNAUTHENTICATED
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameGridlock, map[string]interface{}{"private": true})
	if err != nil {
		logger.Error("MatchCreate error: %v", err)
		return "", err
	}

	token, err := inviteServiceFromCtx(ctx).GenerateToken(matchID, userID)
	if err != nil {
		logger.Error("Invite token error for user %s: %v", userID, err)
		return "", runtime.NewError("failed to create invite token", 13) // INTERNAL
	}

	b, _ := json.Marshal(CreatePrivateMatchResponse{MatchID: matchID, InviteToken: token})
	return string(b), nil
}

func rpcRedeemInvite(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var request RedeemInviteRequest
	if err := json.Unmarshal([]byte(payload), &request); err != nil || request.InviteToken == "" {
		return "", runtime.NewError("invite_token is required", 3) // INVALID_ARGUMENT
	}

	invite, err := inviteServiceFromCtx(ctx).VerifyToken(request.InviteToken)
	if err != nil {
		logger.Warn("Invite verification failed: %v", err)
		return "", runtime.NewError("invalid or expired invite", 7) // PERMISSION_DENIED
	}

	b, _ := json.Marshal(RedeemInviteResponse{MatchID: invite.MatchID, HostID: invite.HostID})
	return string(b), nil
}

// inviteServiceFromCtx builds the invite token service from config, letting
// the runtime environment override the signing secret.
func inviteServiceFromCtx(ctx context.Context) *app.InviteService {
	cfg := config.GetGameConfig()

	secret := cfg.Invite.Secret
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if v := env["gridlock_invite_secret"]; v != "" {
			secret = v
		}
	}

	ttl := time.Duration(cfg.Invite.TTLMinutes) * time.Minute
	return app.NewInviteService(secret, cfg.Invite.Issuer, ttl)
}
