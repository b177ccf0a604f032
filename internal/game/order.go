package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	maxOrderColors     = 3
	maxOrderPlushies   = 10
	maxPlushiesPerLine = 5
)

// OrderLine is one color of an order.
type OrderLine struct {
	Color     Color
	Requested int
	Remaining int
}

// Order is a customer's request, one line per distinct color.
type Order struct {
	Lines []OrderLine
}

// GenerateOrder picks 1-3 distinct colors and spreads 1-10 plushies over
// them. Every line starts with at least one plushie; the last color takes
// whatever is left.
func GenerateOrder(rng *rand.Rand, colors []Color) Order {
	if len(colors) == 0 {
		return Order{}
	}
	numColors := 1 + rng.IntN(maxOrderColors)
	total := 1 + rng.IntN(maxOrderPlushies)

	available := append([]Color(nil), colors...)
	remaining := total
	var order Order
	for i := 0; i < numColors && len(available) > 0 && remaining > 0; i++ {
		idx := rng.IntN(len(available))
		color := available[idx]
		available = append(available[:idx], available[idx+1:]...)

		qty := remaining
		if i < numColors-1 && len(available) > 0 {
			qty = 1 + rng.IntN(min(remaining, maxPlushiesPerLine))
		}
		remaining -= qty
		order.Lines = append(order.Lines, OrderLine{Color: color, Requested: qty, Remaining: qty})
	}
	return order
}

// NewOrder builds an order from explicit quantities. Non-positive
// quantities are skipped and repeated colors are merged.
func NewOrder(lines ...OrderLine) Order {
	var o Order
	for _, l := range lines {
		qty := l.Requested
		if qty <= 0 {
			qty = l.Remaining
		}
		if qty <= 0 || !l.Color.Valid() {
			continue
		}
		merged := false
		for i := range o.Lines {
			if o.Lines[i].Color == l.Color {
				o.Lines[i].Requested += qty
				o.Lines[i].Remaining += qty
				merged = true
				break
			}
		}
		if !merged {
			o.Lines = append(o.Lines, OrderLine{Color: l.Color, Requested: qty, Remaining: qty})
		}
	}
	return o
}

// Needs reports whether at least one plushie of c is still owed.
func (o *Order) Needs(c Color) bool {
	for _, l := range o.Lines {
		if l.Color == c && l.Remaining > 0 {
			return true
		}
	}
	return false
}

// Fulfill hands over one plushie of c. It returns false, leaving the order
// untouched, when c is not owed.
func (o *Order) Fulfill(c Color) bool {
	for i := range o.Lines {
		if o.Lines[i].Color == c && o.Lines[i].Remaining > 0 {
			o.Lines[i].Remaining--
			return true
		}
	}
	return false
}

func (o *Order) IsComplete() bool {
	for _, l := range o.Lines {
		if l.Remaining > 0 {
			return false
		}
	}
	return true
}

// Total is the number of plushies originally requested.
func (o *Order) Total() int {
	n := 0
	for _, l := range o.Lines {
		n += l.Requested
	}
	return n
}

// Outstanding is the number of plushies still owed.
func (o *Order) Outstanding() int {
	n := 0
	for _, l := range o.Lines {
		n += l.Remaining
	}
	return n
}

func (o *Order) Remaining(c Color) int {
	for _, l := range o.Lines {
		if l.Color == c {
			return l.Remaining
		}
	}
	return 0
}

// Text is what the customer says at the counter, e.g.
// "2 red plushies and 1 blue plushie, please!".
func (o *Order) Text() string {
	parts := make([]string, 0, len(o.Lines))
	for _, l := range o.Lines {
		if l.Remaining <= 0 {
			continue
		}
		noun := "plushies"
		if l.Remaining == 1 {
			noun = "plushie"
		}
		parts = append(parts, fmt.Sprintf("%d %s %s", l.Remaining, l.Color.Name(), noun))
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0] + ", please!"
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1] + ", please!"
	}
}

func (o Order) clone() Order {
	return Order{Lines: append([]OrderLine(nil), o.Lines...)}
}
