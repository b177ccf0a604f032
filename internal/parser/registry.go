package parser

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/plushie-shop/internal/game"
)

type colorPhrase struct {
	color game.Color
	alias string
	exact bool
}

// Registry maps spoken names to colors.
type Registry struct {
	phrases []colorPhrase
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds the canonical name of c plus any aliases.
func (r *Registry) Register(c game.Color, aliases ...string) {
	if !c.Valid() {
		return
	}
	r.phrases = append(r.phrases, colorPhrase{color: c, alias: normaliseInput(c.Name()), exact: true})
	for _, a := range aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, colorPhrase{color: c, alias: n})
	}
}

type colorCandidate struct {
	color game.Color
	score float64
}

// match scores every registered phrase against text and keeps the best
// score per color.
func (r *Registry) match(text string, allowed map[game.Color]bool) []colorCandidate {
	if text == "" {
		return nil
	}
	compact := strings.ReplaceAll(text, " ", "")
	best := make(map[game.Color]float64)
	for _, p := range r.phrases {
		if allowed != nil && !allowed[p.color] {
			continue
		}
		score := 0.0
		switch {
		case text == p.alias && p.exact:
			score = 1.0
		case text == p.alias || compact == strings.ReplaceAll(p.alias, " ", ""):
			score = 0.97
		case strings.HasPrefix(p.alias, text) && len(text) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(text, p.alias)
			if dist > levenshteinLimit(len(p.alias)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		if score > best[p.color] {
			best[p.color] = score
		}
	}
	out := make([]colorCandidate, 0, len(best))
	for c, s := range best {
		out = append(out, colorCandidate{color: c, score: s})
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// DefaultRegistry knows every palette color and a few common aliases.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(game.ColorGreen, "grn", "forest")
	r.Register(game.ColorBlue, "navy")
	r.Register(game.ColorRed, "crimson")
	r.Register(game.ColorLimeGreen, "lime", "light green", "lime grn")
	r.Register(game.ColorPink, "rose", "magenta")
	r.Register(game.ColorWhite, "snow")
	r.Register(game.ColorOrange, "amber")
	r.Register(game.ColorCyan, "aqua", "teal", "turquoise")
	r.Register(game.ColorPurple, "violet", "lilac")
	return r
}
