package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// NineSlice is a 9-patch texture. Insets are in source pixels; corners are
// drawn as-is, edges stretch along one axis and the centre stretches both.
type NineSlice struct {
	Tex   rl.Texture2D
	Inset int32
}

func (ns NineSlice) Loaded() bool {
	return ns.Tex.ID != 0
}

// DrawNineSlice renders ns into dest. An unloaded slice draws nothing and
// reports false so the caller can fall back to flat shapes.
func DrawNineSlice(ns NineSlice, dest rl.Rectangle, tint rl.Color) bool {
	if !ns.Loaded() {
		return false
	}
	sw, sh := float32(ns.Tex.Width), float32(ns.Tex.Height)
	in := float32(ns.Inset)
	d := in
	if d*2 > dest.Width {
		d = dest.Width / 2
	}
	if d*2 > dest.Height {
		d = dest.Height / 2
	}

	srcCols := [3][2]float32{{0, in}, {in, sw - 2*in}, {sw - in, in}}
	srcRows := [3][2]float32{{0, in}, {in, sh - 2*in}, {sh - in, in}}
	dstCols := [3][2]float32{{dest.X, d}, {dest.X + d, dest.Width - 2*d}, {dest.X + dest.Width - d, d}}
	dstRows := [3][2]float32{{dest.Y, d}, {dest.Y + d, dest.Height - 2*d}, {dest.Y + dest.Height - d, d}}

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			dst := rl.NewRectangle(dstCols[c][0], dstRows[r][0], dstCols[c][1], dstRows[r][1])
			if dst.Width <= 0 || dst.Height <= 0 {
				continue
			}
			src := rl.NewRectangle(srcCols[c][0], srcRows[r][0], srcCols[c][1], srcRows[r][1])
			rl.DrawTexturePro(ns.Tex, src, dst, rl.Vector2{}, 0, tint)
		}
	}
	return true
}
