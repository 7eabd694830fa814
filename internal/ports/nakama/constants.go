package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create an open match.
	RpcQuickMatch = "quick_match"

	// RpcCreatePrivateMatch creates an unlisted match and returns an invite token.
	RpcCreatePrivateMatch = "create_private_match"

	// RpcRedeemInvite verifies an invite token and returns the match id inside it.
	RpcRedeemInvite = "redeem_invite"

	// MatchNameGridlock is the authoritative match handler name registered with Nakama.
	MatchNameGridlock = "gridlock_match"

	// MatchLabelGame is the label value identifying gridlock matches in list queries.
	MatchLabelGame = "gridlock"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame     int64 = 1
	OpSubmitMove    int64 = 2
	OpJokerStart    int64 = 3
	OpJokerStep     int64 = 4
	OpJokerComplete int64 = 5
	OpJokerCancel   int64 = 6
	OpForfeit       int64 = 7

	// Server -> Client events
	OpMatchState     int64 = 101
	OpGameStarted    int64 = 102
	OpMovePlayed     int64 = 103
	OpJokerStarted   int64 = 104
	OpJokerStepped   int64 = 105
	OpJokerCancelled int64 = 106
	OpGameEnded      int64 = 107
	OpGameError      int64 = 108
)
