package game

import (
	"fmt"
	"time"
)

// Config holds the shop rules. DefaultConfig matches the shipped game.
type Config struct {
	Seed int64

	MaxDay          int
	CustomersPerDay int
	LivesPerDay     int
	MaxQueue        int

	BaseOrderSeconds int
	MinOrderSeconds  int
	DecreasePerDay   int

	SpawnInterval     time.Duration
	AnimationInterval time.Duration
	OverlayDuration   time.Duration

	PlushiePrice  float64
	PenaltyAmount float64

	// ResetLedgerEachDay clears the ledger whenever a day (re)starts so the
	// finance panel only shows the current day.
	ResetLedgerEachDay bool
	LedgerTimeout      time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxDay:             7,
		CustomersPerDay:    10,
		LivesPerDay:        3,
		MaxQueue:           5,
		BaseOrderSeconds:   20,
		MinOrderSeconds:    10,
		DecreasePerDay:     2,
		SpawnInterval:      4 * time.Second,
		AnimationInterval:  50 * time.Millisecond,
		OverlayDuration:    5 * time.Second,
		PlushiePrice:       10.0,
		PenaltyAmount:      10.0,
		ResetLedgerEachDay: true,
		LedgerTimeout:      2 * time.Second,
	}
}

func (c Config) Validate() error {
	if c.MaxDay < 1 {
		return fmt.Errorf("max day must be at least 1, got %d", c.MaxDay)
	}
	if c.CustomersPerDay < 1 {
		return fmt.Errorf("customers per day must be at least 1, got %d", c.CustomersPerDay)
	}
	if c.LivesPerDay < 1 {
		return fmt.Errorf("lives per day must be at least 1, got %d", c.LivesPerDay)
	}
	if c.MaxQueue < 1 {
		return fmt.Errorf("max queue must be at least 1, got %d", c.MaxQueue)
	}
	if c.MinOrderSeconds < 1 || c.BaseOrderSeconds < c.MinOrderSeconds {
		return fmt.Errorf("order seconds must satisfy 1 <= min (%d) <= base (%d)", c.MinOrderSeconds, c.BaseOrderSeconds)
	}
	if c.DecreasePerDay < 0 {
		return fmt.Errorf("decrease per day must not be negative, got %d", c.DecreasePerDay)
	}
	if c.SpawnInterval <= 0 || c.AnimationInterval <= 0 || c.OverlayDuration <= 0 {
		return fmt.Errorf("spawn, animation and overlay intervals must be positive")
	}
	if c.LedgerTimeout <= 0 {
		return fmt.Errorf("ledger timeout must be positive")
	}
	if c.PlushiePrice < 0 || c.PenaltyAmount < 0 {
		return fmt.Errorf("prices must not be negative")
	}
	return nil
}

// OrderDuration is the countdown for a customer on the given day.
func (c Config) OrderDuration(day int) int {
	if day < 1 {
		day = 1
	}
	return max(c.MinOrderSeconds, c.BaseOrderSeconds-(day-1)*c.DecreasePerDay)
}
