package game

import "time"

// OrderTimer counts whole seconds down while a customer waits at the
// counter. Only one order countdown exists per session.
type OrderTimer struct {
	active    bool
	duration  int
	remaining int
	carry     time.Duration
}

// Arm starts a fresh countdown, replacing any countdown already running.
func (t *OrderTimer) Arm(seconds int) {
	if seconds < 1 {
		seconds = 1
	}
	t.active = true
	t.duration = seconds
	t.remaining = seconds
	t.carry = 0
}

// Cancel stops the countdown. Cancelling an idle timer does nothing.
func (t *OrderTimer) Cancel() {
	if !t.active {
		return
	}
	t.active = false
	t.carry = 0
}

// Tick applies one second. It reports true exactly once, on the tick that
// reaches zero, and the timer is idle afterwards.
func (t *OrderTimer) Tick() bool {
	if !t.active {
		return false
	}
	t.remaining--
	if t.remaining <= 0 {
		t.remaining = 0
		t.active = false
		t.carry = 0
		return true
	}
	return false
}

// Advance feeds wall time into the countdown in one-second ticks.
func (t *OrderTimer) Advance(delta time.Duration) bool {
	if !t.active || delta <= 0 {
		return false
	}
	t.carry += delta
	for t.carry >= time.Second {
		t.carry -= time.Second
		if t.Tick() {
			return true
		}
	}
	return false
}

func (t *OrderTimer) Active() bool {
	return t.active
}

func (t *OrderTimer) Remaining() int {
	return t.remaining
}

func (t *OrderTimer) Duration() int {
	return t.duration
}

// OverlayTimer is a one-shot delay for the day intro and level failed
// screens.
type OverlayTimer struct {
	active bool
	left   time.Duration
}

func (t *OverlayTimer) Arm(d time.Duration) {
	t.active = true
	t.left = d
}

func (t *OverlayTimer) Cancel() {
	t.active = false
	t.left = 0
}

// Advance reports true once, when the delay has fully elapsed.
func (t *OverlayTimer) Advance(delta time.Duration) bool {
	if !t.active {
		return false
	}
	t.left -= delta
	if t.left <= 0 {
		t.active = false
		t.left = 0
		return true
	}
	return false
}

func (t *OverlayTimer) Active() bool {
	return t.active
}

func (t *OverlayTimer) Left() time.Duration {
	return t.left
}

// Ticker fires every interval while running.
type Ticker struct {
	interval time.Duration
	running  bool
	acc      time.Duration
}

func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval}
}

// Start resumes the ticker from a full interval.
func (t *Ticker) Start() {
	t.running = true
	t.acc = 0
}

// Since reports how long before the end of the last Advance the i-th of
// the n intervals it returned elapsed.
func (t *Ticker) Since(n, i int) time.Duration {
	if i < 0 || i >= n {
		return 0
	}
	return t.acc + time.Duration(n-1-i)*t.interval
}

func (t *Ticker) Stop() {
	t.running = false
	t.acc = 0
}

func (t *Ticker) Running() bool {
	return t.running
}

// Advance returns how many intervals elapsed.
func (t *Ticker) Advance(delta time.Duration) int {
	if !t.running || delta <= 0 {
		return 0
	}
	t.acc += delta
	n := int(t.acc / t.interval)
	t.acc -= time.Duration(n) * t.interval
	return n
}
