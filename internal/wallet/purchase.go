package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wealthofnations/game-server-go/internal/game/rules"
)

// PurchaseOption is a fixed diamond package. Prices are in cents; Bonus
// diamonds come on top of the base amount.
type PurchaseOption struct {
	ID         string `json:"id"`
	Diamonds   int    `json:"diamonds"`
	Bonus      int    `json:"bonus"`
	PriceCents int    `json:"price_cents"`
}

// Total returns the diamonds credited for this option.
func (o PurchaseOption) Total() int {
	return o.Diamonds + o.Bonus
}

// purchaseOptions is the fixed storefront.
var purchaseOptions = []PurchaseOption{
	{ID: "diamonds_100", Diamonds: 100, Bonus: 0, PriceCents: 99},
	{ID: "diamonds_200", Diamonds: 200, Bonus: 20, PriceCents: 199},
	{ID: "diamonds_500", Diamonds: 500, Bonus: 75, PriceCents: 499},
	{ID: "diamonds_1000", Diamonds: 1000, Bonus: 200, PriceCents: 999},
}

// Options returns the available purchase options in display order.
func Options() []PurchaseOption {
	out := make([]PurchaseOption, len(purchaseOptions))
	copy(out, purchaseOptions)
	return out
}

// FindOption returns the purchase option with the given ID.
func FindOption(id string) (PurchaseOption, bool) {
	for _, o := range purchaseOptions {
		if o.ID == id {
			return o, true
		}
	}
	return PurchaseOption{}, false
}

// SessionChecker reports the current generation of a session, letting
// the purchase service detect restarts that happened while a purchase
// was settling.
type SessionChecker func(sessionID string) (generation int, ok bool)

// Service settles diamond purchases. Settlement is asynchronous: the
// purchase is acknowledged immediately and the wallet is credited
// after the settle delay, standing in for an external payment
// provider round trip.
type Service struct {
	store       Store
	bus         *rules.EventBus
	logger      *zap.Logger
	checker     SessionChecker
	settleDelay time.Duration
}

// NewService creates a purchase service. checker may be nil, in which
// case settlements never go stale.
func NewService(store Store, bus *rules.EventBus, logger *zap.Logger, checker SessionChecker, settleDelay time.Duration) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:       store,
		bus:         bus,
		logger:      logger,
		checker:     checker,
		settleDelay: settleDelay,
	}
}

// Receipt acknowledges an initiated purchase before settlement.
type Receipt struct {
	PurchaseID  string         `json:"purchase_id"`
	Option      PurchaseOption `json:"option"`
	InitiatedAt time.Time      `json:"initiated_at"`
}

// Buy initiates a purchase of the given option for the session. The
// wallet is credited after the settle delay; the outcome arrives as a
// PURCHASE_SETTLED or PURCHASE_STALE event.
func (s *Service) Buy(ctx context.Context, sessionID, optionID string) (*Receipt, error) {
	option, ok := FindOption(optionID)
	if !ok {
		return nil, fmt.Errorf("unknown purchase option %s", optionID)
	}

	var generation int
	if s.checker != nil {
		gen, live := s.checker(sessionID)
		if !live {
			return nil, fmt.Errorf("unknown session %s", sessionID)
		}
		generation = gen
	}

	receipt := &Receipt{
		PurchaseID:  uuid.NewString(),
		Option:      option,
		InitiatedAt: time.Now(),
	}

	s.logger.Info("purchase initiated",
		zap.String("session_id", sessionID),
		zap.String("purchase_id", receipt.PurchaseID),
		zap.String("option", option.ID),
		zap.Int("diamonds", option.Total()))

	settle := func() { s.settle(sessionID, generation, receipt.PurchaseID, option) }
	if s.settleDelay <= 0 {
		settle()
	} else {
		time.AfterFunc(s.settleDelay, settle)
	}

	return receipt, nil
}

func (s *Service) settle(sessionID string, generation int, purchaseID string, option PurchaseOption) {
	if s.checker != nil {
		gen, live := s.checker(sessionID)
		if !live || gen != generation {
			s.logger.Info("purchase went stale",
				zap.String("session_id", sessionID),
				zap.String("purchase_id", purchaseID))
			s.bus.Publish(rules.Event{
				Type:      rules.EventPurchaseStale,
				SessionID: sessionID,
				Message:   "Purchase abandoned: the session ended before settlement.",
			})
			return
		}
	}

	balance, err := s.store.Credit(context.Background(), sessionID, option.Total())
	if err != nil {
		s.logger.Error("purchase credit failed",
			zap.String("session_id", sessionID),
			zap.String("purchase_id", purchaseID),
			zap.Error(err))
		return
	}

	s.logger.Info("purchase settled",
		zap.String("session_id", sessionID),
		zap.String("purchase_id", purchaseID),
		zap.Int("credited", option.Total()),
		zap.Int("balance", balance))

	s.bus.Publish(rules.Event{
		Type:      rules.EventPurchaseSettled,
		SessionID: sessionID,
		Amount:    option.Total(),
		Message:   fmt.Sprintf("Purchase complete! %d diamonds added.", option.Total()),
	})
}

// Balance returns the session's current diamond balance.
func (s *Service) Balance(ctx context.Context, sessionID string) (int, error) {
	return s.store.Balance(ctx, sessionID)
}
