package game

import "time"

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	SessionID string

	Day             int
	MaxDay          int
	Lives           int
	LivesPerDay     int
	ServedToday     int
	CustomersPerDay int
	Overlay         Overlay
	OverlayLeft     time.Duration

	TimerActive   bool
	TimeRemaining int
	OrderSeconds  int

	Score        int
	Streak       int
	Multiplier   float64
	Rank         Rank
	PlushiesSold int

	Customers []Customer
	Shelf     []Color
	Notices   []Notice
}

// Active returns the customer being served, if any.
func (s Snapshot) Active() (Customer, bool) {
	if len(s.Customers) == 0 || !s.Customers[0].AtCounter {
		return Customer{}, false
	}
	return s.Customers[0], true
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:       s.id,
		Day:             s.day,
		MaxDay:          s.cfg.MaxDay,
		Lives:           s.lives,
		LivesPerDay:     s.cfg.LivesPerDay,
		ServedToday:     s.servedToday,
		CustomersPerDay: s.cfg.CustomersPerDay,
		Overlay:         s.overlay,
		OverlayLeft:     s.overlayTimer.Left(),
		TimerActive:     s.orderTimer.Active(),
		TimeRemaining:   s.TimeRemaining(),
		OrderSeconds:    s.cfg.OrderDuration(s.day),
		Score:           s.Score(),
		Streak:          s.scorer.Streak(),
		Multiplier:      s.scorer.Multiplier(),
		Rank:            s.Rank(),
		PlushiesSold:    s.sold,
		Shelf:           s.palette.Shelf(),
		Notices:         append([]Notice(nil), s.notices...),
	}
	for _, c := range s.queue.Customers() {
		cp := *c
		cp.Order = c.Order.clone()
		snap.Customers = append(snap.Customers, cp)
	}
	return snap
}

func (s *Session) Day() int {
	return s.day
}

func (s *Session) Lives() int {
	return s.lives
}

func (s *Session) ServedToday() int {
	return s.servedToday
}

func (s *Session) Overlay() Overlay {
	return s.overlay
}

func (s *Session) PlushiesSold() int {
	return s.sold
}

// TimeRemaining is the countdown of the customer at the counter, or the
// full allowance for today when nobody is being served.
func (s *Session) TimeRemaining() int {
	if s.orderTimer.Active() {
		return s.orderTimer.Remaining()
	}
	return s.cfg.OrderDuration(s.day)
}

// Score is frozen once the game is complete.
func (s *Session) Score() int {
	if s.overlay == OverlayGameComplete {
		return s.finalScore
	}
	return s.scorer.Score()
}

func (s *Session) Streak() int {
	return s.scorer.Streak()
}

func (s *Session) Rank() Rank {
	return RankFor(s.Score())
}

func (s *Session) QueueLen() int {
	return s.queue.Len()
}

// ActiveCustomer returns a copy of the customer at the counter.
func (s *Session) ActiveCustomer() (Customer, bool) {
	c := s.queue.Active()
	if c == nil {
		return Customer{}, false
	}
	cp := *c
	cp.Order = c.Order.clone()
	return cp, true
}

func (s *Session) LastOutcome() Outcome {
	return s.lastOutcome
}

// LedgerRevision changes whenever the session wrote to or cleared the
// ledger, so readers know when to refresh.
func (s *Session) LedgerRevision() int {
	return s.ledgerRevision
}
