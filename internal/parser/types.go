package parser

import "github.com/appengine-ltd/plushie-shop/internal/game"

type IntentKind int

const (
	Pick IntentKind = iota
	Restart
	Help
	Unknown
)

// Intent is one parsed line from the command box.
type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Color      game.Color
	Count      int
	Confidence float64
	// Candidates lists the colors that matched almost equally well when the
	// input was ambiguous; Color is the best of them.
	Candidates []game.Color
}

// Ambiguous reports whether the player should be asked which color they meant.
func (i Intent) Ambiguous() bool {
	return len(i.Candidates) > 1
}
