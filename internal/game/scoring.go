package game

const (
	basePoints     = 10
	speedBonusMax  = 20
	streakBonusPer = 0.1
)

type Rank string

const (
	RankNoob   Rank = "Noob"
	RankPro    Rank = "Pro"
	RankHacker Rank = "Hacker"
	RankGod    Rank = "God"
)

const (
	rankProThreshold    = 1000
	rankHackerThreshold = 3000
	rankGodThreshold    = 5000
)

// RankFor maps a final score to its rank.
func RankFor(score int) Rank {
	switch {
	case score >= rankGodThreshold:
		return RankGod
	case score >= rankHackerThreshold:
		return RankHacker
	case score >= rankProThreshold:
		return RankPro
	default:
		return RankNoob
	}
}

// OrderPoints rewards speed: 10 points for a last-second finish, up to 30
// with the whole countdown left.
func OrderPoints(timeRemaining, maxTime int) int {
	if maxTime <= 0 {
		return basePoints
	}
	timeRemaining = max(0, min(timeRemaining, maxTime))
	return basePoints + int(float64(timeRemaining)/float64(maxTime)*speedBonusMax)
}

// Scorer accumulates score with a streak multiplier. It outlives days and
// failed levels; only Reset clears it.
type Scorer struct {
	score  int
	streak int
}

// AddScore applies the current streak multiplier to base and returns the
// points actually added.
func (s *Scorer) AddScore(base int) int {
	if base <= 0 {
		return 0
	}
	// Integer form of floor(base * (1 + streak*0.1)), free of float drift.
	delta := base * (10 + s.streak) / 10
	s.score += delta
	return delta
}

// Multiplier is 1.0 plus 0.1 per streak step.
func (s *Scorer) Multiplier() float64 {
	return 1.0 + float64(s.streak)*streakBonusPer
}

func (s *Scorer) IncrementStreak() {
	s.streak++
}

func (s *Scorer) ResetStreak() {
	s.streak = 0
}

func (s *Scorer) Reset() {
	s.score = 0
	s.streak = 0
}

func (s *Scorer) Score() int {
	return s.score
}

func (s *Scorer) Streak() int {
	return s.streak
}
