package game

import "testing"

func TestGenerateOrderBounds(t *testing.T) {
	rng := NewRNG(2024)
	colors := AllColors()
	for i := 0; i < 2000; i++ {
		order := GenerateOrder(rng, colors)
		if len(order.Lines) < 1 || len(order.Lines) > 3 {
			t.Fatalf("order %d has %d colors", i, len(order.Lines))
		}
		total := order.Total()
		if total < 1 || total > 10 {
			t.Fatalf("order %d total = %d", i, total)
		}
		seen := map[Color]bool{}
		for _, l := range order.Lines {
			if seen[l.Color] {
				t.Fatalf("order %d repeats color %s", i, l.Color)
			}
			seen[l.Color] = true
			if l.Requested < 1 || l.Remaining != l.Requested {
				t.Fatalf("order %d line %+v has invalid quantity", i, l)
			}
		}
		if order.IsComplete() {
			t.Fatalf("fresh order %d should not be complete", i)
		}
	}
}

func TestGenerateOrderSmallPaletteKeepsTotal(t *testing.T) {
	rng := NewRNG(5)
	for i := 0; i < 200; i++ {
		order := GenerateOrder(rng, []Color{ColorRed})
		if len(order.Lines) != 1 || order.Lines[0].Color != ColorRed {
			t.Fatalf("expected single red line, got %+v", order.Lines)
		}
		if order.Total() < 1 || order.Total() > 10 {
			t.Fatalf("total = %d", order.Total())
		}
	}
}

func TestGenerateOrderEmptyPalette(t *testing.T) {
	order := GenerateOrder(NewRNG(1), nil)
	if len(order.Lines) != 0 {
		t.Fatalf("expected empty order, got %+v", order)
	}
}

func TestFulfillLastUnitCompletesOrder(t *testing.T) {
	order := NewOrder(OrderLine{Color: ColorRed, Requested: 1}, OrderLine{Color: ColorBlue, Requested: 1})
	if !order.Fulfill(ColorBlue) {
		t.Fatal("expected blue to be fulfilled")
	}
	if order.IsComplete() {
		t.Fatal("order should still need red")
	}
	if !order.Fulfill(ColorRed) {
		t.Fatal("expected red to be fulfilled")
	}
	if !order.IsComplete() {
		t.Fatal("expected order complete after last unit")
	}
}

func TestFulfillExhaustedColorIsNoop(t *testing.T) {
	order := NewOrder(OrderLine{Color: ColorRed, Requested: 1}, OrderLine{Color: ColorPink, Requested: 2})
	order.Fulfill(ColorRed)
	if order.Fulfill(ColorRed) {
		t.Fatal("fulfilling an exhausted color should report false")
	}
	if order.Remaining(ColorRed) != 0 {
		t.Fatalf("red remaining = %d, want 0", order.Remaining(ColorRed))
	}
	if order.Fulfill(ColorOrange) {
		t.Fatal("fulfilling a color not in the order should report false")
	}
	if order.Outstanding() != 2 {
		t.Fatalf("outstanding = %d, want 2", order.Outstanding())
	}
}

func TestNewOrderMergesAndSkips(t *testing.T) {
	order := NewOrder(
		OrderLine{Color: ColorCyan, Requested: 2},
		OrderLine{Color: ColorCyan, Requested: 1},
		OrderLine{Color: ColorWhite, Requested: 0},
	)
	if len(order.Lines) != 1 || order.Lines[0].Requested != 3 {
		t.Fatalf("lines = %+v", order.Lines)
	}
}

func TestOrderText(t *testing.T) {
	tests := []struct {
		order Order
		want  string
	}{
		{NewOrder(OrderLine{Color: ColorRed, Requested: 1}), "1 red plushie, please!"},
		{NewOrder(OrderLine{Color: ColorRed, Requested: 2}, OrderLine{Color: ColorBlue, Requested: 1}), "2 red plushies and 1 blue plushie, please!"},
		{NewOrder(
			OrderLine{Color: ColorLimeGreen, Requested: 3},
			OrderLine{Color: ColorPink, Requested: 1},
			OrderLine{Color: ColorPurple, Requested: 2},
		), "3 lime green plushies, 1 pink plushie and 2 purple plushies, please!"},
		{Order{}, ""},
	}
	for _, tc := range tests {
		if got := tc.order.Text(); got != tc.want {
			t.Fatalf("Text() = %q, want %q", got, tc.want)
		}
	}
}
