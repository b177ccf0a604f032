package gui

import (
	"github.com/appengine-ltd/plushie-shop/internal/game"
	"github.com/appengine-ltd/plushie-shop/internal/gui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	outerMargin   = float32(14)
	sidebarMin    = float32(260)
	sidebarMax    = float32(380)
	bottomHeight  = float32(150)
	inputHeight   = float32(36)
	slotGap       = float32(10)
	sectionGutter = float32(12)
)

// layout splits the window into the scaled shop scene, the shelf strip and
// command line below it, and the finance sidebar on the right.
type layout struct {
	scene   rl.Rectangle
	scale   float32
	shelf   rl.Rectangle
	input   rl.Rectangle
	finance rl.Rectangle
}

func computeLayout(width, height int32) layout {
	w, h := float32(width), float32(height)
	sidebar := max(sidebarMin, min(w*0.27, sidebarMax))

	leftW := w - sidebar - 2*outerMargin - sectionGutter
	sceneH := h - bottomHeight - 2*outerMargin - sectionGutter
	scale := min(leftW/game.SceneWidth, sceneH/game.SceneHeight)
	if scale <= 0 {
		scale = 0.1
	}
	sceneW := game.SceneWidth * scale
	sceneHScaled := game.SceneHeight * scale

	var l layout
	l.scale = scale
	l.scene = rl.NewRectangle(outerMargin+(leftW-sceneW)/2, outerMargin+(sceneH-sceneHScaled)/2, sceneW, sceneHScaled)

	bottomY := outerMargin + sceneH + sectionGutter
	l.shelf = rl.NewRectangle(outerMargin, bottomY, leftW, bottomHeight-inputHeight-theme.PaddingXS)
	l.input = rl.NewRectangle(outerMargin, bottomY+l.shelf.Height+theme.PaddingXS, leftW, inputHeight)
	l.finance = rl.NewRectangle(w-outerMargin-sidebar, outerMargin, sidebar, h-2*outerMargin)
	return l
}

// toScreen maps scene coordinates onto the window.
func (l layout) toScreen(x, y float64) rl.Vector2 {
	return rl.NewVector2(l.scene.X+float32(x)*l.scale, l.scene.Y+float32(y)*l.scale)
}

// sceneRect maps a scene-space rectangle onto the window.
func (l layout) sceneRect(x, y, w, h float64) rl.Rectangle {
	p := l.toScreen(x, y)
	return rl.NewRectangle(p.X, p.Y, float32(w)*l.scale, float32(h)*l.scale)
}

// shelfSlots lays n square slots out in a centred row inside rect.
func shelfSlots(rect rl.Rectangle, n int) []rl.Rectangle {
	if n <= 0 {
		return nil
	}
	size := min(theme.SlotSize, rect.Height-2*theme.PaddingXS)
	fit := (rect.Width - 2*theme.PaddingS - slotGap*float32(n-1)) / float32(n)
	size = min(size, fit)
	if size <= 0 {
		return nil
	}
	total := size*float32(n) + slotGap*float32(n-1)
	x := rect.X + (rect.Width-total)/2
	y := rect.Y + (rect.Height-size)/2

	slots := make([]rl.Rectangle, n)
	for i := range slots {
		slots[i] = rl.NewRectangle(x+float32(i)*(size+slotGap), y, size, size)
	}
	return slots
}

// slotAt returns the index of the slot under p, or -1.
func slotAt(slots []rl.Rectangle, p rl.Vector2) int {
	for i, r := range slots {
		if contains(r, p) {
			return i
		}
	}
	return -1
}

func contains(r rl.Rectangle, p rl.Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
