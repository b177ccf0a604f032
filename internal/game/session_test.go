package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/appengine-ltd/plushie-shop/internal/ledger"
)

func newTestSession(t *testing.T) (*Session, *ledger.MemoryStore) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	store := ledger.NewMemoryStore()
	s, err := NewSession(cfg, SessionOptions{Ledger: store})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, store
}

func skipIntro(t *testing.T, s *Session) {
	t.Helper()
	if s.Overlay() != OverlayDayIntro {
		t.Fatalf("overlay = %s, want day_intro", s.Overlay())
	}
	s.Update(s.cfg.OverlayDuration)
	if s.Overlay() != OverlayNone {
		t.Fatalf("overlay after intro = %s, want none", s.Overlay())
	}
}

// serveAtCounter puts a customer with order into the queue and walks them
// to the counter.
func serveAtCounter(t *testing.T, s *Session, order Order) *Customer {
	t.Helper()
	s.queue.Clear()
	c := s.admit(order)
	if c == nil {
		t.Fatal("could not admit customer")
	}
	for i := 0; i < 2000 && s.queue.Active() != c; i++ {
		s.Update(s.cfg.AnimationInterval)
	}
	if s.queue.Active() != c {
		t.Fatal("customer never reached the counter")
	}
	if !s.orderTimer.Active() {
		t.Fatal("order timer should be armed on arrival")
	}
	return c
}

func transactions(t *testing.T, store ledger.Store) []ledger.Transaction {
	t.Helper()
	txs, err := store.Transactions(context.Background())
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	return txs
}

func TestNewSessionStartsWithDayIntro(t *testing.T) {
	s, _ := newTestSession(t)
	if s.Day() != 1 || s.Lives() != 3 || s.ServedToday() != 0 {
		t.Fatalf("day=%d lives=%d served=%d", s.Day(), s.Lives(), s.ServedToday())
	}
	if s.Overlay() != OverlayDayIntro {
		t.Fatalf("overlay = %s", s.Overlay())
	}
	if s.ID() == "" {
		t.Fatal("expected a session id")
	}
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDay = 0
	if _, err := NewSession(cfg, SessionOptions{}); err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestNoSpawnsDuringOverlay(t *testing.T) {
	s, _ := newTestSession(t)
	s.Update(4 * time.Second)
	if s.QueueLen() != 0 {
		t.Fatalf("queue = %d during day intro", s.QueueLen())
	}
	s.Update(time.Second)
	if s.Overlay() != OverlayNone {
		t.Fatalf("overlay = %s", s.Overlay())
	}
	s.Update(4 * time.Second)
	if s.QueueLen() != 1 {
		t.Fatalf("queue = %d after one spawn interval, want 1", s.QueueLen())
	}
}

func TestSpawnRespectsQueueCap(t *testing.T) {
	s, _ := newTestSession(t)
	skipIntro(t, s)
	for i := 0; i < 20; i++ {
		s.Dispatch(SpawnTick{})
	}
	if s.QueueLen() != s.cfg.MaxQueue {
		t.Fatalf("queue = %d, want %d", s.QueueLen(), s.cfg.MaxQueue)
	}
}

func TestCorrectPicksCompleteOrder(t *testing.T) {
	s, store := newTestSession(t)
	skipIntro(t, s)
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorRed, Requested: 2}))

	s.SelectColor(ColorRed)
	if s.ServedToday() != 0 || s.QueueLen() == 0 {
		t.Fatal("order should still be open after one red")
	}
	if s.LastOutcome() != OutcomePlushieHanded {
		t.Fatalf("outcome = %v", s.LastOutcome())
	}
	s.SelectColor(ColorRed)

	if s.ServedToday() != 1 {
		t.Fatalf("served = %d, want 1", s.ServedToday())
	}
	if s.Streak() != 1 {
		t.Fatalf("streak = %d, want 1", s.Streak())
	}
	if s.Score() < 10 || s.Score() > 30 {
		t.Fatalf("score = %d, want 10..30", s.Score())
	}
	if _, ok := s.ActiveCustomer(); ok {
		t.Fatal("served customer should have left")
	}
	if s.PlushiesSold() != 2 {
		t.Fatalf("sold = %d, want 2", s.PlushiesSold())
	}
	if s.orderTimer.Active() {
		t.Fatal("order timer should be cancelled")
	}

	txs := transactions(t, store)
	if len(txs) != 2 {
		t.Fatalf("ledger has %d entries, want 2", len(txs))
	}
	for _, tx := range txs {
		if tx.Kind != ledger.KindIncome || tx.Description != "1 red plushie" || tx.Amount != 10 {
			t.Fatalf("unexpected entry %+v", tx)
		}
	}
}

func TestFastCompletionScoresMore(t *testing.T) {
	s, _ := newTestSession(t)
	skipIntro(t, s)
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorBlue, Requested: 1}))
	s.SelectColor(ColorBlue)
	fast := s.Score()

	slow, _ := newTestSession(t)
	skipIntro(t, slow)
	serveAtCounter(t, slow, NewOrder(OrderLine{Color: ColorBlue, Requested: 1}))
	for i := 0; i < 15; i++ {
		slow.Update(time.Second)
	}
	slow.SelectColor(ColorBlue)

	if fast != 30 {
		t.Fatalf("instant completion scored %d, want 30", fast)
	}
	if slow.Score() != 15 {
		t.Fatalf("completion with 5s of 20 left scored %d, want 15", slow.Score())
	}
}

func TestWrongPickLosesCustomerAndLife(t *testing.T) {
	s, store := newTestSession(t)
	skipIntro(t, s)
	s.scorer.IncrementStreak()
	s.scorer.IncrementStreak()
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorBlue, Requested: 1}))

	s.SelectColor(ColorGreen)

	if s.Lives() != 2 {
		t.Fatalf("lives = %d, want 2", s.Lives())
	}
	if s.Streak() != 0 {
		t.Fatalf("streak = %d, want 0", s.Streak())
	}
	if _, ok := s.ActiveCustomer(); ok {
		t.Fatal("customer should have left")
	}
	if s.LastOutcome() != OutcomeWrongPick {
		t.Fatalf("outcome = %v", s.LastOutcome())
	}
	txs := transactions(t, store)
	if len(txs) != 1 {
		t.Fatalf("ledger entries = %d, want 1", len(txs))
	}
	if txs[0].Kind != ledger.KindExpense || txs[0].Description != "Wrong plushie clicked - customer left" || txs[0].Amount != 10 {
		t.Fatalf("unexpected entry %+v", txs[0])
	}
}

func TestTimeoutLosesCustomer(t *testing.T) {
	s, store := newTestSession(t)
	skipIntro(t, s)
	c := serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorCyan, Requested: 3}))

	for i := 0; i < 19; i++ {
		s.Update(time.Second)
	}
	if active, ok := s.ActiveCustomer(); !ok || active.ID != c.ID {
		t.Fatal("customer should still wait with one second left")
	}
	if s.TimeRemaining() != 1 {
		t.Fatalf("time remaining = %d, want 1", s.TimeRemaining())
	}
	s.Update(time.Second)

	if active, ok := s.ActiveCustomer(); ok && active.ID == c.ID {
		t.Fatal("customer should have left on timeout")
	}
	if s.Lives() != 2 {
		t.Fatalf("lives = %d, want 2", s.Lives())
	}
	if s.LastOutcome() != OutcomeOrderTimeout {
		t.Fatalf("outcome = %v", s.LastOutcome())
	}
	txs := transactions(t, store)
	if len(txs) != 1 || txs[0].Description != "lost customer" || txs[0].Kind != ledger.KindExpense {
		t.Fatalf("ledger = %+v", txs)
	}
}

func TestStaleExpiryIsIgnored(t *testing.T) {
	s, store := newTestSession(t)
	skipIntro(t, s)
	c := serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorRed, Requested: 1}))

	s.Dispatch(OrderExpired{CustomerID: c.ID + 100})
	if s.Lives() != 3 || len(transactions(t, store)) != 0 {
		t.Fatal("expiry for another customer must be a no-op")
	}
}

func TestSelectionIgnoredBeforeArrivalAndDuringOverlay(t *testing.T) {
	s, store := newTestSession(t)
	s.SelectColor(ColorRed)
	skipIntro(t, s)
	s.admit(NewOrder(OrderLine{Color: ColorRed, Requested: 1}))
	s.SelectColor(ColorGreen)

	if s.Lives() != 3 || s.QueueLen() != 1 {
		t.Fatalf("lives=%d queue=%d, selection should have been ignored", s.Lives(), s.QueueLen())
	}
	if len(transactions(t, store)) != 0 {
		t.Fatal("no ledger entries expected")
	}
}

func TestOnColorSelectedByName(t *testing.T) {
	s, _ := newTestSession(t)
	skipIntro(t, s)
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorLimeGreen, Requested: 1}))

	s.OnColorSelected("magenta")
	if s.Lives() != 3 {
		t.Fatal("unknown names must be ignored")
	}
	s.OnColorSelected("lime green")
	if s.ServedToday() != 1 {
		t.Fatalf("served = %d, want 1", s.ServedToday())
	}
}

func TestLosingLastLifeFailsLevelThenRestartsDay(t *testing.T) {
	s, store := newTestSession(t)
	skipIntro(t, s)
	s.day = 3
	s.servedToday = 4
	s.lives = 1
	s.scorer.score = 500
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorRed, Requested: 1}))

	s.SelectColor(ColorPurple)

	if s.Overlay() != OverlayLevelFailed {
		t.Fatalf("overlay = %s, want level_failed", s.Overlay())
	}
	if s.QueueLen() != 0 || s.ServedToday() != 0 || s.Streak() != 0 {
		t.Fatalf("queue=%d served=%d streak=%d", s.QueueLen(), s.ServedToday(), s.Streak())
	}
	if len(transactions(t, store)) != 0 {
		t.Fatal("ledger should be reset for the restarted day")
	}

	s.Update(s.cfg.OverlayDuration)
	if s.Overlay() != OverlayDayIntro {
		t.Fatalf("overlay = %s, want day_intro", s.Overlay())
	}
	if s.Lives() != 3 || s.Day() != 3 {
		t.Fatalf("lives=%d day=%d, want 3/3", s.Lives(), s.Day())
	}
	if s.Score() != 500 {
		t.Fatalf("score = %d, want 500 kept across failure", s.Score())
	}

	s.Update(s.cfg.OverlayDuration)
	if s.Overlay() != OverlayNone {
		t.Fatalf("overlay = %s, want none", s.Overlay())
	}
}

func TestTenthCustomerAdvancesDay(t *testing.T) {
	s, store := newTestSession(t)
	skipIntro(t, s)
	s.servedToday = 9
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorOrange, Requested: 1}))
	s.SelectColor(ColorOrange)

	if s.Day() != 2 || s.ServedToday() != 0 || s.Lives() != 3 {
		t.Fatalf("day=%d served=%d lives=%d", s.Day(), s.ServedToday(), s.Lives())
	}
	if s.Overlay() != OverlayDayIntro {
		t.Fatalf("overlay = %s", s.Overlay())
	}
	if s.Streak() != 1 || s.Score() == 0 {
		t.Fatalf("score %d and streak %d should carry into the next day", s.Score(), s.Streak())
	}
	if len(transactions(t, store)) != 0 {
		t.Fatal("ledger should be cleared for the new day")
	}

	skipIntro(t, s)
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorOrange, Requested: 1}))
	if s.orderTimer.Duration() != 18 {
		t.Fatalf("day 2 countdown = %d, want 18", s.orderTimer.Duration())
	}
}

func TestDaySevenCompletionEndsGame(t *testing.T) {
	s, _ := newTestSession(t)
	skipIntro(t, s)
	s.day = 7
	s.servedToday = 9
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorWhite, Requested: 1}))
	s.SelectColor(ColorWhite)

	if s.Overlay() != OverlayGameComplete {
		t.Fatalf("overlay = %s, want game_complete", s.Overlay())
	}
	score := s.Score()
	rank := s.Rank()

	for i := 0; i < 5; i++ {
		s.Update(10 * time.Second)
		s.Dispatch(SpawnTick{})
		s.SelectColor(ColorWhite)
	}
	if s.Overlay() != OverlayGameComplete || s.Score() != score || s.Rank() != rank {
		t.Fatal("game complete must be terminal with a frozen score")
	}
	if s.QueueLen() != 0 {
		t.Fatal("no customers after the game is complete")
	}

	s.Restart()
	if s.Day() != 1 || s.Score() != 0 || s.Streak() != 0 || s.Overlay() != OverlayDayIntro {
		t.Fatalf("restart: day=%d score=%d streak=%d overlay=%s", s.Day(), s.Score(), s.Streak(), s.Overlay())
	}
}

func TestLevelFailedOnDaySevenDoesNotCompleteGame(t *testing.T) {
	s, _ := newTestSession(t)
	skipIntro(t, s)
	s.day = 7
	s.lives = 1
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorWhite, Requested: 1}))
	s.SelectColor(ColorRed)
	if s.Overlay() != OverlayLevelFailed || s.Day() != 7 {
		t.Fatalf("overlay=%s day=%d", s.Overlay(), s.Day())
	}
}

type failingLedger struct {
	calls int
}

func (f *failingLedger) AddTransaction(context.Context, ledger.Kind, string, float64) error {
	f.calls++
	return errors.New("disk full")
}

func (f *failingLedger) Clear(context.Context) error {
	return errors.New("disk full")
}

func TestLedgerFailureDoesNotBlockPlay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 9
	fl := &failingLedger{}
	s, err := NewSession(cfg, SessionOptions{Ledger: fl})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	skipIntro(t, s)
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorPink, Requested: 1}))
	s.SelectColor(ColorPink)

	if fl.calls != 1 {
		t.Fatalf("ledger calls = %d, want 1", fl.calls)
	}
	if s.ServedToday() != 1 || s.Score() == 0 {
		t.Fatal("session should advance even when the ledger fails")
	}
	if s.LedgerRevision() != 0 {
		t.Fatalf("revision = %d, failed writes must not bump it", s.LedgerRevision())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newTestSession(t)
	skipIntro(t, s)
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorRed, Requested: 2}))

	snap := s.Snapshot()
	active, ok := snap.Active()
	if !ok {
		t.Fatal("snapshot should show the active customer")
	}
	snap.Customers[0].Order.Fulfill(ColorRed)
	if got, _ := s.ActiveCustomer(); got.Order.Remaining(ColorRed) != 2 {
		t.Fatal("mutating a snapshot must not touch the session")
	}
	if active.Order.Text() != "2 red plushies, please!" {
		t.Fatalf("text = %q", active.Order.Text())
	}
	if snap.OrderSeconds != 20 || !snap.TimerActive || len(snap.Shelf) != 9 {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestSameSeedReplaysOrders(t *testing.T) {
	a, _ := newTestSession(t)
	b, _ := newTestSession(t)
	skipIntro(t, a)
	skipIntro(t, b)
	for i := 0; i < 5; i++ {
		a.Dispatch(SpawnTick{})
		b.Dispatch(SpawnTick{})
	}
	ca, cb := a.queue.Customers(), b.queue.Customers()
	for i := range ca {
		if ca[i].Order.Text() != cb[i].Order.Text() {
			t.Fatalf("customer %d order differs: %q vs %q", i, ca[i].Order.Text(), cb[i].Order.Text())
		}
	}
}

func TestRestartResetsEverything(t *testing.T) {
	s, store := newTestSession(t)
	skipIntro(t, s)
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorRed, Requested: 1}))
	s.SelectColor(ColorRed)
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorBlue, Requested: 1}))
	s.SelectColor(ColorRed)
	if s.Score() == 0 || s.PlushiesSold() != 1 || s.Lives() != 2 {
		t.Fatalf("setup: score=%d sold=%d lives=%d", s.Score(), s.PlushiesSold(), s.Lives())
	}

	s.Restart()
	if s.Day() != 1 || s.ServedToday() != 0 || s.Lives() != 3 || s.PlushiesSold() != 0 {
		t.Fatalf("after restart day=%d served=%d lives=%d sold=%d", s.Day(), s.ServedToday(), s.Lives(), s.PlushiesSold())
	}
	if s.Score() != 0 || s.Streak() != 0 {
		t.Fatalf("after restart score=%d streak=%d", s.Score(), s.Streak())
	}
	if s.Overlay() != OverlayDayIntro || s.QueueLen() != 0 {
		t.Fatalf("after restart overlay=%s queue=%d", s.Overlay(), s.QueueLen())
	}
	if got := transactions(t, store); len(got) != 0 {
		t.Fatalf("expected ledger cleared on restart, got %d", len(got))
	}
	if s.LastOutcome() != OutcomeRestarted {
		t.Fatalf("last outcome = %v", s.LastOutcome())
	}
}

func TestRestartClearsLedgerEvenWithoutDailyReset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	cfg.ResetLedgerEachDay = false
	store := ledger.NewMemoryStore()
	s, err := NewSession(cfg, SessionOptions{Ledger: store})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	skipIntro(t, s)
	serveAtCounter(t, s, NewOrder(OrderLine{Color: ColorPink, Requested: 2}))
	s.SelectColor(ColorPink)
	if len(transactions(t, store)) != 1 {
		t.Fatalf("expected one sale booked")
	}
	s.Restart()
	if got := transactions(t, store); len(got) != 0 {
		t.Fatalf("expected ledger cleared on restart, got %d", len(got))
	}
}

func TestRestartOnIntroExpiryFrameKeepsNewIntro(t *testing.T) {
	s, _ := newTestSession(t)
	s.Post(RestartRequested{})
	s.Update(s.cfg.OverlayDuration)
	if s.Overlay() != OverlayDayIntro {
		t.Fatalf("overlay = %s, want day_intro", s.Overlay())
	}
	if !s.overlayTimer.Active() || s.spawn.Running() || s.animation.Running() {
		t.Fatalf("intro timer=%v spawn=%v animation=%v", s.overlayTimer.Active(), s.spawn.Running(), s.animation.Running())
	}
	skipIntro(t, s)
}

func TestOrderTimerStartsOnArrivalStep(t *testing.T) {
	s, _ := newTestSession(t)
	skipIntro(t, s)
	s.queue.Clear()
	c := s.admit(NewOrder(OrderLine{Color: ColorRed, Requested: 1}))
	if c == nil {
		t.Fatal("could not admit customer")
	}
	c.X = ServiceX + c.Speed

	// The first animation step brings the customer to the counter; less
	// than a second of the frame remains after it.
	s.Update(s.cfg.AnimationInterval + 999*time.Millisecond)
	if s.queue.Active() != c || !s.orderTimer.Active() {
		t.Fatal("customer should be at the counter with the timer armed")
	}
	if got, want := s.TimeRemaining(), s.cfg.OrderDuration(1); got != want {
		t.Fatalf("time remaining = %d, want %d", got, want)
	}
	s.Update(time.Millisecond)
	if got, want := s.TimeRemaining(), s.cfg.OrderDuration(1)-1; got != want {
		t.Fatalf("time remaining after a full second = %d, want %d", got, want)
	}
}
