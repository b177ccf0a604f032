package game

// Event is something the session reacts to. Timers and player input both
// post events; the session consumes them one at a time on the caller's
// goroutine.
type Event interface {
	event()
}

// SpawnTick asks for a new customer.
type SpawnTick struct{}

// OrderExpired reports that the countdown for CustomerID ran out.
type OrderExpired struct {
	CustomerID int
}

// OverlayElapsed reports that the display time of Overlay is over.
type OverlayElapsed struct {
	Overlay Overlay
}

// ColorSelected is the player handing over one plushie.
type ColorSelected struct {
	Color Color
}

// RestartRequested starts a brand new game from day 1.
type RestartRequested struct{}

func (SpawnTick) event()        {}
func (OrderExpired) event()     {}
func (OverlayElapsed) event()   {}
func (ColorSelected) event()    {}
func (RestartRequested) event() {}

// Overlay is the session-wide mode shown over the shop. While any overlay
// is up, spawning and countdowns are paused.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayDayIntro
	OverlayLevelFailed
	OverlayGameComplete
)

func (o Overlay) String() string {
	switch o {
	case OverlayNone:
		return "none"
	case OverlayDayIntro:
		return "day_intro"
	case OverlayLevelFailed:
		return "level_failed"
	case OverlayGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// Outcome labels what the last handled event did, for player feedback.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlushieHanded
	OutcomeOrderSuccess
	OutcomeWrongPick
	OutcomeOrderTimeout
	OutcomeDayComplete
	OutcomeLevelFailed
	OutcomeGameComplete
	OutcomeRestarted
)

// Notice is one line of in-game feedback.
type Notice struct {
	Outcome Outcome
	Message string
}
