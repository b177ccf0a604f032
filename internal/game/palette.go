package game

import (
	"math/rand/v2"
	"strings"
)

// Color is one of the plushie colors on the shelf.
type Color int

const (
	ColorGreen Color = iota
	ColorBlue
	ColorRed
	ColorLimeGreen
	ColorPink
	ColorWhite
	ColorOrange
	ColorCyan
	ColorPurple
)

// RGB is the render value of a Color.
type RGB struct {
	R, G, B uint8
}

type colorInfo struct {
	name string
	rgb  RGB
}

var colorTable = [...]colorInfo{
	ColorGreen:     {name: "green", rgb: RGB{46, 204, 113}},
	ColorBlue:      {name: "blue", rgb: RGB{52, 152, 219}},
	ColorRed:       {name: "red", rgb: RGB{231, 76, 60}},
	ColorLimeGreen: {name: "lime green", rgb: RGB{50, 205, 50}},
	ColorPink:      {name: "pink", rgb: RGB{255, 105, 180}},
	ColorWhite:     {name: "white", rgb: RGB{236, 240, 241}},
	ColorOrange:    {name: "orange", rgb: RGB{255, 165, 0}},
	ColorCyan:      {name: "cyan", rgb: RGB{52, 211, 235}},
	ColorPurple:    {name: "purple", rgb: RGB{155, 89, 182}},
}

// AllColors returns every color in palette order.
func AllColors() []Color {
	out := make([]Color, len(colorTable))
	for i := range colorTable {
		out[i] = Color(i)
	}
	return out
}

func (c Color) Valid() bool {
	return c >= 0 && int(c) < len(colorTable)
}

func (c Color) Name() string {
	if !c.Valid() {
		return ""
	}
	return colorTable[c].name
}

func (c Color) RGB() RGB {
	if !c.Valid() {
		return RGB{}
	}
	return colorTable[c].rgb
}

func (c Color) String() string {
	return c.Name()
}

// AssetName is the file-safe form of the color name ("lime green" -> "lime_green").
func (c Color) AssetName() string {
	return strings.ReplaceAll(c.Name(), " ", "_")
}

// ColorByName resolves an exact (case-insensitive) color name.
func ColorByName(name string) (Color, bool) {
	name = strings.TrimSpace(strings.ToLower(name))
	for i, info := range colorTable {
		if info.name == name {
			return Color(i), true
		}
	}
	return 0, false
}

// Palette is the set of colors a session sells plus the order in which
// they currently sit on the shelf. It is built once per session and shared
// with the generator and the renderer; only the session reshuffles it.
type Palette struct {
	colors []Color
	shelf  []Color
}

// NewPalette builds a palette from the given colors. Duplicates and
// invalid values are dropped; an empty list yields the full palette.
func NewPalette(colors ...Color) *Palette {
	if len(colors) == 0 {
		colors = AllColors()
	}
	seen := make(map[Color]bool, len(colors))
	p := &Palette{}
	for _, c := range colors {
		if !c.Valid() || seen[c] {
			continue
		}
		seen[c] = true
		p.colors = append(p.colors, c)
	}
	p.shelf = append([]Color(nil), p.colors...)
	return p
}

// Colors returns the palette in canonical order.
func (p *Palette) Colors() []Color {
	return append([]Color(nil), p.colors...)
}

// Shelf returns the current shelf order.
func (p *Palette) Shelf() []Color {
	return append([]Color(nil), p.shelf...)
}

func (p *Palette) Len() int {
	return len(p.colors)
}

func (p *Palette) Contains(c Color) bool {
	for _, have := range p.colors {
		if have == c {
			return true
		}
	}
	return false
}

// Lookup resolves a color name that belongs to this palette.
func (p *Palette) Lookup(name string) (Color, bool) {
	c, ok := ColorByName(name)
	if !ok || !p.Contains(c) {
		return 0, false
	}
	return c, true
}

// Shuffle reorders the shelf.
func (p *Palette) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(p.shelf), func(i, j int) {
		p.shelf[i], p.shelf[j] = p.shelf[j], p.shelf[i]
	})
}
