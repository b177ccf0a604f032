package gui

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/plushie-shop/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ImageCache loads plushie sprites on first use and remembers misses so a
// missing file is only looked for once.
type ImageCache struct {
	dir      string
	logger   *slog.Logger
	textures map[game.Color]rl.Texture2D
	missing  map[game.Color]bool
}

func NewImageCache(assetsDir string, logger *slog.Logger) *ImageCache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ImageCache{
		dir:      assetsDir,
		logger:   logger,
		textures: make(map[game.Color]rl.Texture2D),
		missing:  make(map[game.Color]bool),
	}
}

// PlushiePath is where the sprite for c lives under assetsDir.
func PlushiePath(assetsDir string, c game.Color) string {
	return filepath.Join(assetsDir, "plushies", "plushie_"+c.AssetName()+".png")
}

// Plushie returns the sprite for c. ok is false when no usable file exists;
// callers then draw the plushie from shapes.
func (c *ImageCache) Plushie(color game.Color) (rl.Texture2D, bool) {
	if tex, ok := c.textures[color]; ok {
		return tex, true
	}
	if c.missing[color] {
		return rl.Texture2D{}, false
	}
	path := PlushiePath(c.dir, color)
	if _, err := os.Stat(path); err != nil {
		c.logger.Debug("plushie sprite missing", "color", color.Name(), "path", path)
		c.missing[color] = true
		return rl.Texture2D{}, false
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		c.logger.Warn("plushie sprite failed to load", "color", color.Name(), "path", path)
		c.missing[color] = true
		return rl.Texture2D{}, false
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	c.textures[color] = tex
	return tex, true
}

// Unload releases every texture. Call before rl.CloseWindow.
func (c *ImageCache) Unload() {
	for color, tex := range c.textures {
		rl.UnloadTexture(tex)
		delete(c.textures, color)
	}
	clear(c.missing)
}
