package theme

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Skin holds optional panel art. Zero-value slices fall back to flat
// rounded rectangles in the component helpers.
var Skin skinAssets

type skinAssets struct {
	Panel  NineSlice
	Bubble NineSlice

	loaded bool
}

const (
	panelInset  = int32(8)
	bubbleInset = int32(10)
)

// InitSkin loads <assetsDir>/ui textures. Call once after rl.InitWindow.
func InitSkin(assetsDir string) {
	if Skin.loaded {
		return
	}
	Skin.loaded = true
	Skin.Panel = loadNineSlice(filepath.Join(assetsDir, "ui", "panel_9slice.png"), panelInset)
	Skin.Bubble = loadNineSlice(filepath.Join(assetsDir, "ui", "bubble_9slice.png"), bubbleInset)
}

// UnloadSkin releases GPU textures. Call before rl.CloseWindow.
func UnloadSkin() {
	unloadTex(&Skin.Panel.Tex)
	unloadTex(&Skin.Bubble.Tex)
	Skin.loaded = false
}

func loadNineSlice(path string, inset int32) NineSlice {
	if _, err := os.Stat(path); err != nil {
		return NineSlice{Inset: inset}
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return NineSlice{Inset: inset}
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return NineSlice{Tex: tex, Inset: inset}
}

func unloadTex(t *rl.Texture2D) {
	if t != nil && t.ID != 0 {
		rl.UnloadTexture(*t)
		*t = rl.Texture2D{}
	}
}
