//go:build ignore

// gen_placeholders.go writes placeholder art for the shop:
//
//	go run scripts/gen_placeholders.go [-assets assets]
//
// It creates assets/ui/*_9slice.png panel skins and one
// assets/plushies/plushie_<color>.png crewmate sprite per palette color.
// Replace any of them with real art; the slice insets live in
// internal/gui/theme/skin.go.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/plushie-shop/internal/game"
	"github.com/appengine-ltd/plushie-shop/internal/gui"
)

func main() {
	assets := flag.String("assets", "assets", "assets directory")
	flag.Parse()

	for _, dir := range []string{"ui", "plushies"} {
		if err := os.MkdirAll(filepath.Join(*assets, dir), 0o755); err != nil {
			log.Fatal(err)
		}
	}

	// panel_9slice.png: 48x48, inset 8.
	writePNG(filepath.Join(*assets, "ui", "panel_9slice.png"), slice(48, 8,
		color.RGBA{0x35, 0x3D, 0x5C, 0xFF},
		color.RGBA{0x1A, 0x1F, 0x33, 0xFF},
	))
	// bubble_9slice.png: 40x40, inset 10. Solid so the tint shows through.
	writePNG(filepath.Join(*assets, "ui", "bubble_9slice.png"), slice(40, 10,
		color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	))

	for _, c := range game.AllColors() {
		writePNG(gui.PlushiePath(*assets, c), crewmate(64, c.RGB()))
	}
	log.Printf("placeholder art written to %s", *assets)
}

// slice fills the outer inset pixels with border and the rest with centre.
func slice(size, inset int, border, centre color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x < inset || y < inset || x >= size-inset || y >= size-inset {
				img.SetRGBA(x, y, border)
			} else {
				img.SetRGBA(x, y, centre)
			}
		}
	}
	return img
}

// crewmate draws a flat bean-shaped body with a visor on a transparent
// square.
func crewmate(size int, rgb game.RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	body := color.RGBA{rgb.R, rgb.G, rgb.B, 0xFF}
	shade := color.RGBA{rgb.R * 2 / 3, rgb.G * 2 / 3, rgb.B * 2 / 3, 0xFF}
	visor := color.RGBA{0x8F, 0xD3, 0xF0, 0xFF}

	s := float64(size)
	inEllipse := func(x, y, cx, cy, rx, ry float64) bool {
		dx, dy := (x-cx)/rx, (y-cy)/ry
		return dx*dx+dy*dy <= 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			switch {
			case inEllipse(fx, fy, s*0.36, s*0.38, s*0.15, s*0.09):
				img.SetRGBA(x, y, visor)
			case inEllipse(fx, fy, s*0.5, s*0.45, s*0.26, s*0.36):
				img.SetRGBA(x, y, body)
			case inEllipse(fx, fy, s*0.78, s*0.5, s*0.08, s*0.18):
				img.SetRGBA(x, y, shade)
			case fy > s*0.7 && fy < s*0.92 && ((fx > s*0.28 && fx < s*0.46) || (fx > s*0.54 && fx < s*0.72)):
				img.SetRGBA(x, y, body)
			}
		}
	}
	return img
}

func writePNG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	log.Printf("  wrote %s", path)
}
