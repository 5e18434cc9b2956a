package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wealthofnations/game-server-go/internal/catalog"
	"github.com/wealthofnations/game-server-go/internal/config"
	"github.com/wealthofnations/game-server-go/internal/game/resources"
	"github.com/wealthofnations/game-server-go/internal/game/rules"
)

// Engine owns every running game session and drives the turn state
// machine. All mutating operations take the engine lock; sessions are
// cheap enough that a single lock is not a bottleneck at this scale.
type Engine struct {
	mu sync.Mutex

	logger   *zap.Logger
	cfg      config.GameConfig
	provider catalog.Provider
	bus      *rules.EventBus
	resolver EffectResolver
	rng      *rand.Rand

	sessions map[string]*session
}

// session is the full mutable state of one player's game.
type session struct {
	id string
	// generation invalidates delayed work scheduled for an earlier
	// incarnation of this session ID.
	generation int

	ledger *resources.Ledger
	deck   *Deck
	hand   *Hand
	zones  *PlayZones
	turn   *rules.TurnManager

	undo      *undoCandidate
	startedAt time.Time
}

// undoCandidate remembers the single most recent play so it can be
// reversed. Overwritten by each play, cleared by any phase transition.
type undoCandidate struct {
	card      catalog.Card
	handIndex int
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithResolver installs a custom effect resolver.
func WithResolver(r EffectResolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// WithRand installs a seeded random source, used by tests for
// deterministic shuffles.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithEventBus installs a shared event bus instead of a private one.
func WithEventBus(bus *rules.EventBus) Option {
	return func(e *Engine) { e.bus = bus }
}

// NewEngine creates an engine over the given catalog.
func NewEngine(cfg config.GameConfig, provider catalog.Provider, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		logger:   logger,
		cfg:      cfg,
		provider: provider,
		bus:      rules.NewEventBus(),
		resolver: NoopResolver{},
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions: make(map[string]*session),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Events returns the engine's event bus for subscribers.
func (e *Engine) Events() *rules.EventBus {
	return e.bus
}

// StartSession creates (or restarts) the session with the given ID and
// returns its initial snapshot. The deck is a fresh shuffle of the
// catalog; the opening hand is drawn after the configured delay so the
// presentation layer can animate the deal. An empty ID gets a new UUID.
func (e *Engine) StartSession(sessionID string) (*Snapshot, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	e.mu.Lock()

	generation := 1
	if prev, ok := e.sessions[sessionID]; ok {
		generation = prev.generation + 1
	}

	sess := &session{
		id:         sessionID,
		generation: generation,
		ledger: resources.NewLedger(
			resourceAmounts(e.cfg.StartingResources),
			resourceAmounts(e.cfg.StartingRates),
			e.cfg.HistoryLimit,
		),
		deck:      NewShuffledDeck(e.provider.AllCards(), e.rng),
		hand:      NewHand(),
		zones:     NewPlayZones(),
		turn:      rules.NewTurnManager(e.cfg.MaxCardsPerTurn),
		startedAt: time.Now(),
	}
	e.sessions[sessionID] = sess

	e.logger.Info("session started",
		zap.String("session_id", sessionID),
		zap.Int("generation", generation),
		zap.Int("deck_size", sess.deck.Remaining()))

	snap := e.snapshotLocked(sess)
	e.mu.Unlock()

	e.bus.Publish(rules.Event{
		Type:      rules.EventGameStarted,
		SessionID: sessionID,
		Turn:      1,
		Phase:     rules.PhaseAction.String(),
		Message:   "Game started! Good luck building your nation.",
	})

	e.scheduleInitialDraw(sessionID, generation)

	return snap, nil
}

// scheduleInitialDraw deals the opening hand after the configured
// delay. The generation check makes a stale timer a no-op when the
// session was restarted or ended in the meantime.
func (e *Engine) scheduleInitialDraw(sessionID string, generation int) {
	deal := func() {
		e.mu.Lock()
		sess, ok := e.sessions[sessionID]
		if !ok || sess.generation != generation {
			e.mu.Unlock()
			e.logger.Debug("skipping stale initial draw",
				zap.String("session_id", sessionID),
				zap.Int("generation", generation))
			return
		}
		events := e.drawLocked(sess, e.cfg.InitialDrawCount)
		e.mu.Unlock()
		e.publishAll(events)
	}

	if e.cfg.InitialDrawDelay <= 0 {
		deal()
		return
	}
	time.AfterFunc(e.cfg.InitialDrawDelay, deal)
}

// EndSession removes the session. Pending delayed work for it becomes
// a no-op.
func (e *Engine) EndSession(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.sessions[sessionID]; ok {
		delete(e.sessions, sessionID)
		e.logger.Info("session ended", zap.String("session_id", sessionID))
	}
}

// SessionGeneration returns the current generation of a session, used
// by delayed work outside the engine to detect restarts.
func (e *Engine) SessionGeneration(sessionID string) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	sess, ok := e.sessions[sessionID]
	if !ok {
		return 0, false
	}
	return sess.generation, true
}

// PlayCard moves a card from the hand to its play zone, paying its
// cost. Checks run in a fixed order before any mutation: phase and
// play limit, card presence, resources, zone capacity. A rejection
// leaves the session untouched and is published as PLAY_REJECTED.
func (e *Engine) PlayCard(sessionID, cardID string) (*Snapshot, error) {
	e.mu.Lock()
	sess, ok := e.sessions[sessionID]
	if !ok {
		e.mu.Unlock()
		return nil, fmt.Errorf("unknown session %s", sessionID)
	}

	reject := func(cardName string, gameErr *rules.GameError) (*Snapshot, error) {
		event := e.rejectPlayLocked(sess, cardID, cardName, gameErr)
		e.mu.Unlock()
		e.bus.Publish(event)
		return nil, gameErr
	}

	if gameErr := sess.turn.CanPlay(); gameErr != nil {
		return reject("", gameErr)
	}

	card, found := findInHand(sess.hand, cardID)
	if !found {
		return reject("", rules.NewGameError(rules.ErrInvalidMove,
			fmt.Sprintf("card %s is not in hand", cardID)))
	}

	if gameErr := rules.ValidatePlay(card, sess.ledger.BalancePool(), sess.zones.Counts()); gameErr != nil {
		return reject(card.Name, gameErr)
	}

	if err := sess.ledger.Spend(card.Cost); err != nil {
		// ValidatePlay already checked balances under the engine
		// lock, so this only fires on a validation bug.
		return reject(card.Name, rules.NewGameError(rules.ErrResource, err.Error()))
	}

	removed, handIndex, _ := sess.hand.RemoveByID(cardID)
	sess.zones.Play(removed)
	sess.turn.RecordPlay()
	sess.undo = &undoCandidate{card: removed, handIndex: handIndex}

	e.logger.Info("card played",
		zap.String("session_id", sessionID),
		zap.String("card_id", cardID),
		zap.String("card_name", removed.Name),
		zap.Int("turn", sess.turn.TurnNumber()),
		zap.Int("cards_played", sess.turn.CardsPlayed()))

	snap := e.snapshotLocked(sess)
	event := rules.Event{
		Type:      rules.EventCardPlayed,
		SessionID: sessionID,
		CardID:    removed.ID,
		CardName:  removed.Name,
		Turn:      sess.turn.TurnNumber(),
		Phase:     sess.turn.CurrentPhase().String(),
		Message:   fmt.Sprintf("%s played.", removed.Name),
	}
	e.mu.Unlock()

	e.bus.Publish(event)
	return snap, nil
}

// rejectPlayLocked logs a rejected play and builds the PLAY_REJECTED
// event for the caller to publish after releasing e.mu.
func (e *Engine) rejectPlayLocked(sess *session, cardID, cardName string, gameErr *rules.GameError) rules.Event {
	e.logger.Debug("play rejected",
		zap.String("session_id", sess.id),
		zap.String("card_id", cardID),
		zap.String("kind", string(gameErr.Kind)),
		zap.String("reason", gameErr.Message))

	return rules.Event{
		Type:      rules.EventPlayRejected,
		SessionID: sess.id,
		CardID:    cardID,
		CardName:  cardName,
		Turn:      sess.turn.TurnNumber(),
		Phase:     sess.turn.CurrentPhase().String(),
		Message:   gameErr.Message,
		ErrorKind: string(gameErr.Kind),
	}
}

// EndPhase advances the turn state machine one step and invalidates
// any pending undo. Entering the production phase applies resource
// production; wrapping back to the action phase draws the per-turn
// cards and bumps the turn number.
func (e *Engine) EndPhase(sessionID string) (*Snapshot, error) {
	e.mu.Lock()
	sess, ok := e.sessions[sessionID]
	if !ok {
		e.mu.Unlock()
		return nil, fmt.Errorf("unknown session %s", sessionID)
	}

	phase, newTurn := sess.turn.Advance()
	turnNumber := sess.turn.TurnNumber()

	// Any phase transition invalidates the pending undo.
	sess.undo = nil

	events := []rules.Event{{
		Type:      rules.EventPhaseChanged,
		SessionID: sessionID,
		Phase:     phase.String(),
		Turn:      turnNumber,
		Message:   fmt.Sprintf("%s phase", phase),
	}}

	if phase == rules.PhaseProduction {
		rates := e.resolver.AdjustedRates(sess.zones, sess.ledger.Rates())
		applied := sess.ledger.ApplyProduction(rates)

		produced := 0
		for _, tx := range applied {
			produced += tx.Amount
		}
		events = append(events, rules.Event{
			Type:      rules.EventProductionApplied,
			SessionID: sessionID,
			Phase:     phase.String(),
			Turn:      turnNumber,
			Amount:    produced,
			Message:   fmt.Sprintf("Production applied: +%d resources.", produced),
		})
		e.logger.Info("production applied",
			zap.String("session_id", sessionID),
			zap.Int("turn", turnNumber),
			zap.Int("produced", produced))
	}

	if newTurn {
		events = append(events, rules.Event{
			Type:      rules.EventTurnStarted,
			SessionID: sessionID,
			Phase:     phase.String(),
			Turn:      turnNumber,
			Message:   fmt.Sprintf("Turn %d started.", turnNumber),
		})
		events = append(events, e.drawLocked(sess, e.cfg.CardsPerTurn)...)
		e.logger.Info("turn started",
			zap.String("session_id", sessionID),
			zap.Int("turn", turnNumber))
	}

	snap := e.snapshotLocked(sess)
	e.mu.Unlock()

	e.publishAll(events)
	return snap, nil
}

// DrawCards draws up to count cards into the hand, honoring the hand
// limit. Empty-deck and full-hand conditions are reported through
// events and the snapshot rather than errors.
func (e *Engine) DrawCards(sessionID string, count int) (*Snapshot, error) {
	e.mu.Lock()
	sess, ok := e.sessions[sessionID]
	if !ok {
		e.mu.Unlock()
		return nil, fmt.Errorf("unknown session %s", sessionID)
	}

	events := e.drawLocked(sess, count)
	snap := e.snapshotLocked(sess)
	e.mu.Unlock()

	e.publishAll(events)
	return snap, nil
}

// drawLocked performs the draw and collects the events to publish once
// the lock is released. Caller must hold e.mu.
func (e *Engine) drawLocked(sess *session, count int) []rules.Event {
	res := sess.deck.Draw(count, sess.hand.Len(), e.cfg.MaxHandSize, e.cfg.LowDeckThreshold)
	sess.hand.Add(res.Drawn...)

	turnNumber := sess.turn.TurnNumber()
	phase := sess.turn.CurrentPhase().String()

	var events []rules.Event
	if len(res.Drawn) > 0 {
		events = append(events, rules.Event{
			Type:      rules.EventCardsDrawn,
			SessionID: sess.id,
			Phase:     phase,
			Turn:      turnNumber,
			Amount:    len(res.Drawn),
			Message:   fmt.Sprintf("Drew %d cards.", len(res.Drawn)),
		})
	}
	if res.DeckEmpty {
		events = append(events, rules.Event{
			Type:      rules.EventDeckEmpty,
			SessionID: sess.id,
			Phase:     phase,
			Turn:      turnNumber,
			Message:   "The deck is empty. No more cards can be drawn.",
			ErrorKind: string(rules.ErrDeckExhausted),
		})
	}
	if res.HandFull {
		message := fmt.Sprintf("Hand is full. Maximum of %d cards.", e.cfg.MaxHandSize)
		if len(res.Drawn) > 0 {
			message = fmt.Sprintf("Could only draw %d cards - hand is full!", len(res.Drawn))
		}
		events = append(events, rules.Event{
			Type:      rules.EventHandFull,
			SessionID: sess.id,
			Phase:     phase,
			Turn:      turnNumber,
			Message:   message,
			ErrorKind: string(rules.ErrHandFull),
		})
	}
	if res.LowDeck && !res.DeckEmpty {
		events = append(events, rules.Event{
			Type:      rules.EventDeckLow,
			SessionID: sess.id,
			Phase:     phase,
			Turn:      turnNumber,
			Amount:    sess.deck.Remaining(),
			Message:   fmt.Sprintf("Only %d cards left in the deck.", sess.deck.Remaining()),
		})
	}

	e.logger.Debug("cards drawn",
		zap.String("session_id", sess.id),
		zap.Int("requested", res.Requested),
		zap.Int("drawn", len(res.Drawn)),
		zap.Int("deck_remaining", sess.deck.Remaining()))

	return events
}

// Undo reverses the single most recent card play: the card returns to
// the hand position it left, the zone sheds its last card, and the
// per-turn play counter steps back. Spent resources stay spent unless
// the refund policy is enabled. Only one level deep; a second undo in
// a row is rejected.
func (e *Engine) Undo(sessionID string) (*Snapshot, error) {
	e.mu.Lock()
	sess, ok := e.sessions[sessionID]
	if !ok {
		e.mu.Unlock()
		return nil, fmt.Errorf("unknown session %s", sessionID)
	}

	if sess.undo == nil {
		gameErr := rules.NewGameError(rules.ErrNothingToUndo, "Nothing to undo.")
		event := rules.Event{
			Type:      rules.EventUndoRejected,
			SessionID: sessionID,
			Turn:      sess.turn.TurnNumber(),
			Phase:     sess.turn.CurrentPhase().String(),
			Message:   gameErr.Message,
			ErrorKind: string(gameErr.Kind),
		}
		e.mu.Unlock()
		e.bus.Publish(event)
		return nil, gameErr
	}

	candidate := sess.undo
	sess.undo = nil

	if _, removed := sess.zones.RemoveLast(candidate.card.Type); !removed {
		e.mu.Unlock()
		return nil, fmt.Errorf("undo: %s zone unexpectedly empty", candidate.card.Type)
	}
	sess.hand.InsertAt(candidate.card, candidate.handIndex)
	sess.turn.UnrecordPlay()
	if e.cfg.RefundOnUndo {
		sess.ledger.Refund(candidate.card.Cost)
	}

	e.logger.Info("play undone",
		zap.String("session_id", sessionID),
		zap.String("card_id", candidate.card.ID),
		zap.Bool("refunded", e.cfg.RefundOnUndo))

	snap := e.snapshotLocked(sess)
	event := rules.Event{
		Type:      rules.EventUndoApplied,
		SessionID: sessionID,
		CardID:    candidate.card.ID,
		CardName:  candidate.card.Name,
		Turn:      sess.turn.TurnNumber(),
		Phase:     sess.turn.CurrentPhase().String(),
		Message:   fmt.Sprintf("%s returned to hand.", candidate.card.Name),
	}
	e.mu.Unlock()

	e.bus.Publish(event)
	return snap, nil
}

// Snapshot returns the current view of a session.
func (e *Engine) Snapshot(sessionID string) (*Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	sess, ok := e.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("unknown session %s", sessionID)
	}
	return e.snapshotLocked(sess), nil
}

func (e *Engine) publishAll(events []rules.Event) {
	for _, event := range events {
		e.bus.Publish(event)
	}
}

func findInHand(hand *Hand, cardID string) (catalog.Card, bool) {
	for _, c := range hand.Cards() {
		if c.ID == cardID {
			return c, true
		}
	}
	return catalog.Card{}, false
}

// resourceAmounts converts config string keys into resource types,
// dropping unknown keys.
func resourceAmounts(amounts map[string]int) map[resources.Type]int {
	out := make(map[resources.Type]int, len(amounts))
	for key, amount := range amounts {
		kind := resources.Type(key)
		if kind.Valid() {
			out[kind] = amount
		}
	}
	return out
}
