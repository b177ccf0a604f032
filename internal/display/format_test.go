package display

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{5230, "5,230"},
		{1234567, "1,234,567"},
	}
	for _, tc := range tests {
		if got := Score(tc.in); got != tc.want {
			t.Fatalf("Score(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10, "$10.00"},
		{1250.5, "$1,250.50"},
		{-30, "-$30.00"},
	}
	for _, tc := range tests {
		if got := Amount(tc.in); got != tc.want {
			t.Fatalf("Amount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
