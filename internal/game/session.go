package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/appengine-ltd/plushie-shop/internal/ledger"
)

const maxNotices = 6

const (
	hairStyles  = 4
	shirtStyles = 5
)

// Ledger is where the shop books its takings and penalties.
type Ledger interface {
	AddTransaction(ctx context.Context, kind ledger.Kind, description string, amount float64) error
	Clear(ctx context.Context) error
}

// SessionOptions carries the collaborators of a session. Every field is
// optional.
type SessionOptions struct {
	Palette *Palette
	Ledger  Ledger
	Logger  *slog.Logger
}

// Session is one game from day 1 to the end of the last day. All methods
// must be called from the same goroutine, normally the render loop.
type Session struct {
	id     string
	cfg    Config
	logger *slog.Logger
	ledger Ledger

	palette  *Palette
	rng      *rand.Rand
	shelfRNG *rand.Rand

	queue        *Queue
	orderTimer   OrderTimer
	overlayTimer OverlayTimer
	spawn        *Ticker
	animation    *Ticker

	scorer      Scorer
	day         int
	lives       int
	servedToday int
	sold        int
	overlay     Overlay
	finalScore  int
	nextID      int

	inbox    []Event
	draining bool

	notices        []Notice
	lastOutcome    Outcome
	ledgerRevision int
}

// NewSession validates cfg and opens day 1 with its intro overlay.
func NewSession(cfg Config, opts SessionOptions) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	palette := opts.Palette
	if palette == nil {
		palette = NewPalette()
	}
	if palette.Len() == 0 {
		return nil, fmt.Errorf("palette has no colors")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	id := uuid.NewString()

	s := &Session{
		id:        id,
		cfg:       cfg,
		logger:    logger.With("session_id", id),
		ledger:    opts.Ledger,
		palette:   palette,
		rng:       NewRNG(cfg.Seed),
		shelfRNG:  seededRNG(cfg.Seed, "shelf"),
		queue:     NewQueue(cfg.MaxQueue),
		spawn:     NewTicker(cfg.SpawnInterval),
		animation: NewTicker(cfg.AnimationInterval),
		day:       1,
		nextID:    1,
	}
	s.logger.Info("session_started", "seed", cfg.Seed, "max_day", cfg.MaxDay)
	s.enterDayIntro()
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Config() Config {
	return s.cfg
}

func (s *Session) Palette() *Palette {
	return s.palette
}

// Post queues an event for the next Update.
func (s *Session) Post(ev Event) {
	if ev == nil {
		return
	}
	s.inbox = append(s.inbox, ev)
}

// Dispatch handles ev, and anything already queued, right away.
func (s *Session) Dispatch(ev Event) {
	s.Post(ev)
	s.drain()
}

// SelectColor hands one plushie of c to the customer at the counter.
func (s *Session) SelectColor(c Color) {
	s.Dispatch(ColorSelected{Color: c})
}

// OnColorSelected is SelectColor by name. Names outside the palette are
// ignored.
func (s *Session) OnColorSelected(name string) {
	c, ok := s.palette.Lookup(name)
	if !ok {
		s.logger.Warn("unknown plushie color selected", "color", name)
		return
	}
	s.SelectColor(c)
}

// Restart throws the current game away and starts again at day 1.
func (s *Session) Restart() {
	s.Dispatch(RestartRequested{})
}

// Update advances every timer by delta, turns whatever fired into events
// and handles them in order.
func (s *Session) Update(delta time.Duration) {
	if delta < 0 {
		delta = 0
	}
	if s.overlayTimer.Advance(delta) {
		s.Post(OverlayElapsed{Overlay: s.overlay})
	}
	if s.overlay == OverlayNone {
		for range s.spawn.Advance(delta) {
			s.Post(SpawnTick{})
		}
		orderDelta := delta
		steps := s.animation.Advance(delta)
		for i := range steps {
			if c := s.queue.Step(); c != nil && s.customerArrived(c) {
				// The countdown only runs from the step the customer arrived on.
				orderDelta = s.animation.Since(steps, i)
			}
		}
		if s.orderTimer.Advance(orderDelta) {
			if c := s.queue.Active(); c != nil {
				s.Post(OrderExpired{CustomerID: c.ID})
			}
		}
	}
	s.drain()
}

func (s *Session) drain() {
	if s.draining {
		return
	}
	s.draining = true
	defer func() { s.draining = false }()

	for len(s.inbox) > 0 {
		ev := s.inbox[0]
		s.inbox[0] = nil
		s.inbox = s.inbox[1:]
		s.handle(ev)
	}
	s.inbox = nil
}

func (s *Session) handle(ev Event) {
	switch e := ev.(type) {
	case SpawnTick:
		s.handleSpawn()
	case ColorSelected:
		s.handleSelection(e.Color)
	case OrderExpired:
		s.handleExpired(e.CustomerID)
	case OverlayElapsed:
		s.handleOverlayElapsed(e.Overlay)
	case RestartRequested:
		s.restart()
	default:
		s.logger.Debug("ignoring unknown event", "event", fmt.Sprintf("%T", ev))
	}
}

func (s *Session) handleSpawn() {
	if s.overlay != OverlayNone || s.queue.Full() {
		return
	}
	s.admit(GenerateOrder(s.rng, s.palette.Colors()))
}

func (s *Session) admit(order Order) *Customer {
	if s.queue.Full() {
		return nil
	}
	c := &Customer{
		ID:    s.nextID,
		Order: order,
		X:     SpawnX,
		Speed: float64(2 + s.rng.IntN(2)),
		Hair:  s.rng.IntN(hairStyles),
		Shirt: s.rng.IntN(shirtStyles),
	}
	if !s.queue.Push(c) {
		return nil
	}
	s.nextID++
	s.logger.Debug("customer_spawned", "customer_id", c.ID, "plushies", order.Total(), "queue_len", s.queue.Len())
	return c
}

// customerArrived arms the order countdown for c and reports whether it did.
func (s *Session) customerArrived(c *Customer) bool {
	if c.Armed {
		return false
	}
	c.Armed = true
	s.orderTimer.Arm(s.cfg.OrderDuration(s.day))
	s.logger.Debug("customer_at_counter", "customer_id", c.ID, "seconds", s.orderTimer.Duration())
	return true
}

func (s *Session) handleSelection(color Color) {
	if s.overlay != OverlayNone {
		return
	}
	c := s.queue.Active()
	if c == nil {
		return
	}
	if !s.palette.Contains(color) {
		s.logger.Warn("selected color is not on the shelf", "color", color.Name())
		return
	}
	if !c.Order.Needs(color) {
		s.failCustomer(c, "Wrong plushie clicked - customer left", OutcomeWrongPick)
		return
	}

	s.record(ledger.KindIncome, "1 "+color.Name()+" plushie", s.cfg.PlushiePrice)
	c.Order.Fulfill(color)
	if !c.Order.IsComplete() {
		s.notify(OutcomePlushieHanded, fmt.Sprintf("Handed over a %s plushie", color.Name()))
		return
	}
	s.completeOrder(c)
}

func (s *Session) handleExpired(customerID int) {
	c := s.queue.Active()
	if c == nil || c.ID != customerID || s.overlay != OverlayNone {
		return
	}
	s.failCustomer(c, "lost customer", OutcomeOrderTimeout)
}

func (s *Session) handleOverlayElapsed(overlay Overlay) {
	// A re-armed timer means this event belongs to an overlay that was
	// replaced in the meantime, e.g. by a restart in the same frame.
	if overlay != s.overlay || s.overlayTimer.Active() {
		return
	}
	switch overlay {
	case OverlayDayIntro:
		s.overlay = OverlayNone
		s.spawn.Start()
		s.animation.Start()
		s.logger.Info("day_started", "day", s.day)
	case OverlayLevelFailed:
		s.enterDayIntro()
	}
}

func (s *Session) completeOrder(c *Customer) {
	maxTime := s.cfg.OrderDuration(s.day)
	left := s.orderTimer.Remaining()
	if !s.orderTimer.Active() {
		left = 0
	}
	points := s.scorer.AddScore(OrderPoints(left, maxTime))
	s.scorer.IncrementStreak()

	s.orderTimer.Cancel()
	s.queue.RemoveHead()
	s.sold += c.Order.Total()
	s.servedToday++
	s.notify(OutcomeOrderSuccess, fmt.Sprintf("Order complete! +%d points (streak %d)", points, s.scorer.Streak()))
	s.logger.Debug("order_complete", "customer_id", c.ID, "points", points, "served_today", s.servedToday)

	if s.servedToday >= s.cfg.CustomersPerDay && s.lives > 0 {
		if s.day >= s.cfg.MaxDay {
			s.enterGameComplete()
			return
		}
		s.notify(OutcomeDayComplete, fmt.Sprintf("Day %d complete!", s.day))
		s.logger.Info("day_complete", "day", s.day, "score", s.scorer.Score())
		s.day++
		s.servedToday = 0
		s.resetLedger()
		s.enterDayIntro()
		return
	}
	s.palette.Shuffle(s.shelfRNG)
}

func (s *Session) failCustomer(c *Customer, description string, outcome Outcome) {
	s.record(ledger.KindExpense, description, s.cfg.PenaltyAmount)
	s.orderTimer.Cancel()
	s.queue.RemoveHead()
	s.scorer.ResetStreak()
	s.palette.Shuffle(s.shelfRNG)

	msg := "Wrong plushie! The customer left."
	if outcome == OutcomeOrderTimeout {
		msg = "Too slow! The customer left."
	}
	s.notify(outcome, msg)
	s.logger.Debug("customer_lost", "customer_id", c.ID, "reason", description)
	s.loseLife()
}

func (s *Session) loseLife() {
	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.enterLevelFailed()
	}
}

// stopPlay pauses spawning and countdowns and sends everyone home.
func (s *Session) stopPlay() {
	s.spawn.Stop()
	s.animation.Stop()
	s.orderTimer.Cancel()
	s.queue.Clear()
}

func (s *Session) enterDayIntro() {
	s.overlay = OverlayDayIntro
	s.lives = s.cfg.LivesPerDay
	s.stopPlay()
	s.palette.Shuffle(s.shelfRNG)
	s.overlayTimer.Arm(s.cfg.OverlayDuration)
}

func (s *Session) enterLevelFailed() {
	s.overlay = OverlayLevelFailed
	s.stopPlay()
	s.servedToday = 0
	s.scorer.ResetStreak()
	s.resetLedger()
	s.overlayTimer.Arm(s.cfg.OverlayDuration)
	s.notify(OutcomeLevelFailed, fmt.Sprintf("Level failed! Restarting day %d", s.day))
	s.logger.Info("level_failed", "day", s.day)
}

func (s *Session) enterGameComplete() {
	s.overlay = OverlayGameComplete
	s.stopPlay()
	s.overlayTimer.Cancel()
	s.finalScore = s.scorer.Score()
	s.notify(OutcomeGameComplete, "All days complete!")
	s.logger.Info("game_complete", "score", s.finalScore, "rank", string(RankFor(s.finalScore)))
}

func (s *Session) restart() {
	s.day = 1
	s.servedToday = 0
	s.sold = 0
	s.finalScore = 0
	s.scorer.Reset()
	s.clearLedger()
	s.notices = nil
	s.notify(OutcomeRestarted, "New game")
	s.logger.Info("session_restarted")
	s.enterDayIntro()
}

func (s *Session) record(kind ledger.Kind, description string, amount float64) {
	if s.ledger == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.LedgerTimeout)
	defer cancel()
	if err := s.ledger.AddTransaction(ctx, kind, description, amount); err != nil {
		s.logger.Warn("ledger write failed", "kind", string(kind), "description", description, "error", err)
		return
	}
	s.ledgerRevision++
}

// resetLedger clears the books at a day boundary when the config asks for
// per-day books.
func (s *Session) resetLedger() {
	if !s.cfg.ResetLedgerEachDay {
		return
	}
	s.clearLedger()
}

func (s *Session) clearLedger() {
	if s.ledger == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.LedgerTimeout)
	defer cancel()
	if err := s.ledger.Clear(ctx); err != nil {
		s.logger.Warn("ledger clear failed", "error", err)
		return
	}
	s.ledgerRevision++
}

func (s *Session) notify(outcome Outcome, message string) {
	s.lastOutcome = outcome
	s.notices = append(s.notices, Notice{Outcome: outcome, Message: message})
	if len(s.notices) > maxNotices {
		s.notices = s.notices[len(s.notices)-maxNotices:]
	}
}
