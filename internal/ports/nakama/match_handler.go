package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"gridlock/internal/app"
	"gridlock/internal/config"
	"gridlock/internal/domain"
	"gridlock/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	// SeatCount is fixed: gridlock is strictly a duel.
	SeatCount = 2

	matchTickRate = 1 // ticks per second

	phaseLobby   = "lobby"
	phasePlaying = "playing"
	phaseEnded   = "ended"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats     [SeatCount]string `json:"seats"`      // user IDs, empty string means seat is empty
	OwnerSeat int               `json:"owner_seat"` // seat index of the match owner
	Private   bool              `json:"private"`    // unlisted, joinable by invite only
	Tick      int64             `json:"tick"`

	Presences map[string]runtime.Presence `json:"-"` // UserId -> Presence for targeted messaging
	App       *app.Service                `json:"-"`
	Game      *domain.Game                `json:"-"` // nil while in lobby

	TurnDeadlineTick int64  `json:"turn_deadline_tick"` // tick when the current turn forfeits
	TurnDuration     int64  `json:"turn_duration"`      // seconds per turn
	EmptySinceTick   int64  `json:"empty_since_tick"`   // tick when the lobby last went empty
	EmptyTimeout     int64  `json:"empty_timeout"`      // seconds an empty lobby survives
	MatchID          string `json:"match_id"`

	Snapshots ports.SnapshotStore `json:"-"`
	Stats     ports.StatsPort     `json:"-"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return SeatCount - ms.GetOpenSeatsCount()
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat != "" && seat == userID {
			return i
		}
	}
	return -1
}

func (ms *MatchState) phase() string {
	switch {
	case ms.Game == nil:
		return phaseLobby
	case ms.Game.Status == domain.StatusEnded:
		return phaseEnded
	default:
		return phasePlaying
	}
}

// findFirstOccupiedSeat returns the first seat index with an occupant or -1 if none.
func findFirstOccupiedSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" {
			return i
		}
	}
	return -1
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	cfg := config.GetGameConfig()

	state := &MatchState{
		OwnerSeat:    -1,
		Presences:    make(map[string]runtime.Presence),
		App:          app.NewService(nil),
		TurnDuration: int64(cfg.TurnDurationSeconds),
		EmptyTimeout: int64(cfg.EmptyTimeoutSeconds),
		Snapshots:    NewNakamaSnapshotStore(nk),
		Stats:        NewNakamaStatsAdapter(nk),
	}
	if v, ok := params["private"].(bool); ok {
		state.Private = v
	}
	if matchID, ok := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string); ok {
		state.MatchID = matchID
	}

	labelBytes, err := json.Marshal(MatchLabel{
		Open:    SeatCount,
		Game:    MatchLabelGame,
		Phase:   phaseLobby,
		Private: state.Private,
	})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	return state, matchTickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	if matchState.seatOf(presence.GetUserId()) >= 0 {
		// Rejoining an existing seat (reconnect) is always allowed.
		return state, true, ""
	}
	if matchState.GetOpenSeatsCount() <= 0 {
		return state, false, "Match full"
	}
	if matchState.Game != nil {
		return state, false, "Game already in progress"
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		if matchState.seatOf(p.GetUserId()) >= 0 {
			logger.Debug("MatchJoin: User %s rejoined their seat.", p.GetUserId())
			continue
		}

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
		}
	}

	if matchState.OwnerSeat < 0 || matchState.Seats[matchState.OwnerSeat] == "" {
		matchState.OwnerSeat = findFirstOccupiedSeat(matchState.Seats[:])
	}
	matchState.EmptySinceTick = 0

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher)

	return matchState
}

// MatchLeave is called when one or more players leave the match. Leaving
// mid-game forfeits; an empty lobby terminates after EmptyTimeout.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		seat := matchState.seatOf(p.GetUserId())
		if seat < 0 {
			continue
		}

		if matchState.Game != nil && matchState.Game.Status == domain.StatusPlaying {
			logger.Info("MatchLeave: User %s left mid-game, forfeiting.", p.GetUserId())
			events, err := matchState.App.Forfeit(matchState.Game, domain.PlayerID(p.GetUserId()), app.EndReasonForfeit)
			if err != nil {
				logger.Error("MatchLeave: Forfeit failed for %s: %v", p.GetUserId(), err)
			}
			for _, ev := range events {
				mh.broadcastEvent(ctx, matchState, dispatcher, logger, ev)
			}
		}

		matchState.Seats[seat] = ""
		logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), seat)
	}

	if matchState.OwnerSeat < 0 || matchState.Seats[matchState.OwnerSeat] == "" {
		matchState.OwnerSeat = findFirstOccupiedSeat(matchState.Seats[:])
	}

	if matchState.GetOccupiedSeatCount() == 0 {
		logger.Info("MatchLeave: Terminating empty match.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case OpSubmitMove:
			mh.handleSubmitMove(ctx, matchState, dispatcher, logger, msg)
		case OpJokerStart:
			mh.handleJokerStart(ctx, matchState, dispatcher, logger, msg)
		case OpJokerStep:
			mh.handleJokerStep(ctx, matchState, dispatcher, logger, msg)
		case OpJokerComplete:
			mh.handleJokerComplete(ctx, matchState, dispatcher, logger, msg)
		case OpJokerCancel:
			mh.handleJokerCancel(ctx, matchState, dispatcher, logger, msg)
		case OpForfeit:
			mh.handleForfeit(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.enforceTurnDeadline(ctx, matchState, dispatcher, logger)

	// An empty lobby eventually shuts the room down.
	if matchState.GetOccupiedSeatCount() == 0 {
		if matchState.EmptySinceTick == 0 {
			matchState.EmptySinceTick = tick
		}
		if tick-matchState.EmptySinceTick >= matchState.EmptyTimeout*matchTickRate {
			logger.Info("MatchLoop: Terminating match empty for %d ticks.", tick-matchState.EmptySinceTick)
			return nil
		}
	} else {
		matchState.EmptySinceTick = 0
	}

	return matchState
}

// enforceTurnDeadline forfeits the current player when their clock runs out.
func (mh *matchHandler) enforceTurnDeadline(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil || state.Game.Status != domain.StatusPlaying {
		state.TurnDeadlineTick = 0
		return
	}
	if state.TurnDeadlineTick == 0 {
		state.TurnDeadlineTick = state.Tick + state.TurnDuration*matchTickRate
		return
	}
	if state.Tick < state.TurnDeadlineTick {
		return
	}

	slowID := state.Game.CurrentPlayer().ID
	logger.Info("MatchLoop: Turn clock expired for %s, forfeiting.", slowID)
	events, err := state.App.Forfeit(state.Game, slowID, app.EndReasonTimeout)
	if err != nil {
		logger.Error("MatchLoop: Timeout forfeit failed for %s: %v", slowID, err)
		state.TurnDeadlineTick = 0
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

// resetTurnDeadline restarts the current player's clock.
func (mh *matchHandler) resetTurnDeadline(state *MatchState) {
	state.TurnDeadlineTick = state.Tick + state.TurnDuration*matchTickRate
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartGame: Request from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, senderID, 403, "only the match owner can start the game")
		return
	}
	if state.Game != nil && state.Game.Status == domain.StatusPlaying {
		mh.sendError(state, dispatcher, logger, senderID, 409, "a game is already in progress")
		return
	}
	if state.GetOccupiedSeatCount() < app.MinPlayersToStartGame {
		mh.sendError(state, dispatcher, logger, senderID, 400, "waiting for an opponent")
		return
	}

	// Seat 0 plays red and moves first.
	game, events, err := state.App.StartGame(domain.PlayerID(state.Seats[0]), domain.PlayerID(state.Seats[1]))
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 500, err.Error())
		return
	}

	state.Game = game
	mh.resetTurnDeadline(state)
	mh.saveSnapshot(ctx, state, logger)
	mh.updateLabel(state, dispatcher, logger)

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleSubmitMove(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, "game not started")
		return
	}

	var request SubmitMoveRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleSubmitMove: Malformed request from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed move request")
		return
	}

	events, err := state.App.SubmitMove(state.Game, domain.PlayerID(senderID), request.From, request.To, domain.MovePath(request.Path), domain.CardLabel(request.Card))
	if err != nil {
		logger.Warn("handleSubmitMove: User %s move rejected: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.resetTurnDeadline(state)
	mh.saveSnapshot(ctx, state, logger)

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleJokerStart(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, "game not started")
		return
	}

	events, err := state.App.StartJokerMove(state.Game, domain.PlayerID(senderID))
	if err != nil {
		logger.Warn("handleJokerStart: User %s rejected: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleJokerStep(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, "game not started")
		return
	}

	var request JokerStepRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleJokerStep: Malformed request from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed step request")
		return
	}

	events, err := state.App.StepJokerMove(state.Game, domain.PlayerID(senderID), request.Target)
	if err != nil {
		logger.Warn("handleJokerStep: User %s rejected: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleJokerComplete(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, "game not started")
		return
	}

	events, err := state.App.CompleteJokerMove(state.Game, domain.PlayerID(senderID))
	if err != nil {
		logger.Warn("handleJokerComplete: User %s rejected: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.resetTurnDeadline(state)
	mh.saveSnapshot(ctx, state, logger)

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleJokerCancel(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, "game not started")
		return
	}

	events, err := state.App.CancelJokerMove(state.Game, domain.PlayerID(senderID))
	if err != nil {
		logger.Warn("handleJokerCancel: User %s rejected: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleForfeit(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, "game not started")
		return
	}

	events, err := state.App.Forfeit(state.Game, domain.PlayerID(senderID), app.EndReasonForfeit)
	if err != nil {
		logger.Warn("handleForfeit: User %s rejected: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

// broadcastEvent converts an app event into its wire payload and dispatches it.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	var payload interface{}

	switch ev.Kind {
	case app.EventGameStarted:
		opCode = OpGameStarted
		p := ev.Payload.(app.GameStartedPayload)
		payload = GameStartedEvent{
			Snapshot:     p.Snapshot,
			FirstTurnID:  string(p.FirstTurnID),
			RedPlayerID:  string(p.RedPlayerID),
			BluePlayerID: string(p.BluePlayerID),
		}
	case app.EventMovePlayed:
		opCode = OpMovePlayed
		p := ev.Payload.(app.MovePlayedPayload)
		payload = MovePlayedEvent{
			Record:   p.Record,
			NextTurn: string(p.NextTurn),
			Snapshot: p.Snapshot,
		}
	case app.EventJokerStarted:
		opCode = OpJokerStarted
		p := ev.Payload.(app.JokerStartedPayload)
		payload = JokerStartedEvent{
			PlayerID:  string(p.PlayerID),
			Position:  p.Position,
			Remaining: p.Remaining,
		}
	case app.EventJokerStepped:
		opCode = OpJokerStepped
		p := ev.Payload.(app.JokerSteppedPayload)
		payload = JokerSteppedEvent{
			PlayerID:     string(p.PlayerID),
			Target:       p.Target,
			Path:         p.Path,
			Remaining:    p.Remaining,
			MustComplete: p.MustComplete,
		}
	case app.EventJokerCancelled:
		opCode = OpJokerCancelled
		p := ev.Payload.(app.JokerCancelledPayload)
		payload = JokerCancelledEvent{PlayerID: string(p.PlayerID)}
	case app.EventGameEnded:
		opCode = OpGameEnded
		p := ev.Payload.(app.GameEndedPayload)
		payload = GameEndedEvent{
			Winner:   string(p.Winner),
			Loser:    string(p.Loser),
			Reason:   p.Reason,
			Snapshot: p.Snapshot,
		}
		mh.recordResult(ctx, state, logger, p)
		state.TurnDeadlineTick = 0
		mh.updateLabel(state, dispatcher, logger)
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Determine recipients (default to broadcast).
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}
		// Intended recipients who are all disconnected must not widen to a broadcast.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// recordResult writes the finished game to both players' lifetime stats and
// drops the match snapshot.
func (mh *matchHandler) recordResult(ctx context.Context, state *MatchState, logger runtime.Logger, p app.GameEndedPayload) {
	if state.Stats != nil {
		result := ports.MatchResult{
			WinnerID: string(p.Winner),
			LoserID:  string(p.Loser),
			Forfeit:  p.Reason != app.EndReasonNoMoves,
		}
		if err := state.Stats.RecordResult(ctx, result); err != nil {
			logger.Error("Failed to record match result: %v", err)
		}
	}
	if state.Snapshots != nil && state.MatchID != "" {
		if err := state.Snapshots.DeleteSnapshot(ctx, state.MatchID); err != nil {
			logger.Warn("Failed to delete match snapshot: %v", err)
		}
	}
}

// saveSnapshot persists the current game state after a committed move.
func (mh *matchHandler) saveSnapshot(ctx context.Context, state *MatchState, logger runtime.Logger) {
	if state.Snapshots == nil || state.Game == nil || state.MatchID == "" {
		return
	}
	if err := state.Snapshots.SaveSnapshot(ctx, state.MatchID, state.Game.Snapshot()); err != nil {
		logger.Error("Failed to save match snapshot: %v", err)
	}
}

// sendError sends a GameErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(GameErrorEvent{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal GameErrorEvent: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher) {
	var players []SeatedPlayer
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}

		displayName := userID
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		}

		players = append(players, SeatedPlayer{
			UserID:      userID,
			Seat:        i,
			IsOwner:     i == state.OwnerSeat,
			DisplayName: displayName,
		})
	}

	bytes, err := json.Marshal(MatchStateEvent{
		Seats:     state.Seats[:],
		OwnerSeat: state.OwnerSeat,
		Phase:     state.phase(),
		Players:   players,
	})
	if err != nil {
		return
	}
	dispatcher.BroadcastMessage(OpMatchState, bytes, nil, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	labelBytes, err := json.Marshal(MatchLabel{
		Open:    state.GetOpenSeatsCount(),
		Game:    MatchLabelGame,
		Phase:   state.phase(),
		Private: state.Private,
	})
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)

	// Keep a final snapshot of an unfinished game for inspection.
	if matchState.Game != nil && matchState.Game.Status == domain.StatusPlaying {
		mh.saveSnapshot(ctx, matchState, logger)
	}
	return matchState
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
