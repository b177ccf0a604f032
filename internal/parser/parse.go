package parser

import (
	"sort"
	"strings"

	"github.com/appengine-ltd/plushie-shop/internal/game"
)

const (
	minConfidence = 0.55
	tieMargin     = 0.05
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func NewWithRegistry(r *Registry) *Parser {
	if r == nil {
		r = DefaultRegistry()
	}
	return &Parser{registry: r}
}

// ParseContext narrows matching to what is actually on the shelf.
type ParseContext struct {
	Shelf []game.Color
}

// Parse reads lines such as "2 red", "lime gren x3" or "restart".
func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	n := normaliseInput(raw)
	intent := Intent{Raw: raw, Normalised: n, Kind: Unknown}
	tokens := tokenise(n)
	if len(tokens) == 0 {
		return intent
	}
	switch n {
	case "restart", "new game", "again":
		intent.Kind = Restart
		intent.Confidence = 1
		return intent
	case "help", "h":
		intent.Kind = Help
		intent.Confidence = 1
		return intent
	}

	count := 0
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if c, ok := parseCount(tok); ok && count == 0 {
			count = c
			continue
		}
		if isFiller(tok) {
			continue
		}
		words = append(words, tok)
	}
	if count == 0 {
		count = 1
	}

	var allowed map[game.Color]bool
	if len(ctx.Shelf) > 0 {
		allowed = make(map[game.Color]bool, len(ctx.Shelf))
		for _, c := range ctx.Shelf {
			allowed[c] = true
		}
	}

	text := joinWords(words)
	cands := p.registry.match(text, allowed)
	if len(cands) == 0 {
		return intent
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score == cands[j].score {
			return cands[i].color < cands[j].color
		}
		return cands[i].score > cands[j].score
	})
	best := cands[0]
	if best.score < minConfidence {
		return intent
	}

	intent.Kind = Pick
	intent.Color = best.color
	intent.Count = count
	intent.Confidence = best.score
	if len(cands) > 1 && best.score-cands[1].score < tieMargin && cands[1].score > 0.6 {
		intent.Candidates = []game.Color{best.color, cands[1].color}
	}
	return intent
}

func joinWords(words []string) string {
	return strings.Join(words, " ")
}
