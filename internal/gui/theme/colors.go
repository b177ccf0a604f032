package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Night-shift palette for the shop floor and its side panels.
var (
	BG             = rl.NewColor(0x10, 0x13, 0x1F, 255) // #10131F
	Panel          = rl.NewColor(0x1A, 0x1F, 0x33, 255) // #1A1F33
	PanelRaised    = rl.NewColor(0x23, 0x29, 0x42, 255) // #232942
	Border         = rl.NewColor(0x35, 0x3D, 0x5C, 255) // #353D5C
	Divider        = rl.NewColor(0x2A, 0x31, 0x4D, 255) // #2A314D
	TextPrimary    = rl.NewColor(0xEE, 0xF0, 0xF6, 255) // #EEF0F6
	TextSecondary  = rl.NewColor(0xA9, 0xB1, 0xC9, 255) // #A9B1C9
	TextMuted      = rl.NewColor(0x73, 0x7B, 0x97, 255) // #737B97
	AccentVisor    = rl.NewColor(0x8F, 0xD3, 0xF0, 255) // #8FD3F0
	AccentImpostor = rl.NewColor(0xC5, 0x1E, 0x2E, 255) // #C51E2E
	Income         = rl.NewColor(0x4C, 0xC3, 0x7A, 255) // #4CC37A
	WarningAmber   = rl.NewColor(0xE8, 0xB0, 0x3A, 255) // #E8B03A
	Danger         = rl.NewColor(0xE0, 0x4F, 0x4F, 255) // #E04F4F
	DisabledPanel  = rl.NewColor(0x15, 0x18, 0x27, 255)
	DisabledText   = TextMuted
)

// Shop floor.
var (
	Floor      = rl.NewColor(0x3B, 0x41, 0x5E, 255)
	Wall       = rl.NewColor(0x24, 0x2A, 0x45, 255)
	Counter    = rl.NewColor(0x8A, 0x5A, 0x3C, 255)
	CounterTop = rl.NewColor(0xA8, 0x73, 0x4F, 255)
)
