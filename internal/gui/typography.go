package gui

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/plushie-shop/internal/gui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type typographyState struct {
	base       rl.Font
	ownsBase   bool
	lineFactor float32
}

var uiType = typographyState{lineFactor: 1.3}

func initTypography(assetsDir string) {
	uiType.base = rl.GetFontDefault()

	fontCandidates := []string{
		filepath.Join(assetsDir, "fonts", "Inter-SemiBold.ttf"),
		filepath.Join(assetsDir, "fonts", "Inter-Regular.ttf"),
		filepath.Join(assetsDir, "fonts", "NotoSans-Regular.ttf"),
	}
	if f, ok := loadFontFromCandidates(fontCandidates, 40); ok {
		uiType.base = f
		uiType.ownsBase = true
	}

	rl.SetTextureFilter(uiType.base.Texture, rl.FilterBilinear)
	theme.SetTextRenderer(drawText, measureText)
}

func shutdownTypography() {
	if uiType.ownsBase && uiType.base.Texture.ID != 0 {
		rl.UnloadFont(uiType.base)
	}
	uiType = typographyState{lineFactor: 1.3}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	if uiType.base.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(uiType.base, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	if uiType.base.Texture.ID == 0 {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiType.base, text, float32(fontSize), 1).X)))
}

func textLineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(math.Round(float64(size) * float64(uiType.lineFactor)))
}

// wrapText breaks text into lines no wider than maxWidth.
func wrapText(text string, size int32, maxWidth int32, measure func(string, int32) int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := make([]string, 0, 4)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate, size) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
