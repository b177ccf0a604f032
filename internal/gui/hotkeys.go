package gui

import rl "github.com/gen2brain/raylib-go/raylib"

var slotKeys = [...]int32{
	rl.KeyOne, rl.KeyTwo, rl.KeyThree,
	rl.KeyFour, rl.KeyFive, rl.KeySix,
	rl.KeySeven, rl.KeyEight, rl.KeyNine,
}

// HotkeysEnabled reports whether single-key shortcuts should fire. They are
// off while the command line has focus so typing "2 red" does not also pick
// shelf slot 2.
func HotkeysEnabled(uiState *gameUI) bool {
	if uiState == nil {
		return true
	}
	if uiState.screen != screenShop {
		return false
	}
	return !uiState.inputFocus
}

// pressedSlot returns the zero-based shelf slot whose number key went down
// this frame, or -1.
func pressedSlot() int {
	for i, key := range slotKeys {
		if rl.IsKeyPressed(key) || rl.IsKeyPressed(rl.KeyKp1+int32(i)) {
			return i
		}
	}
	return -1
}

func ShiftKeyPressed(key int32) bool {
	if shiftDown() && rl.IsKeyPressed(key) {
		return true
	}
	// Accept either key order: Shift then key, or key then Shift.
	return rl.IsKeyDown(key) && (rl.IsKeyPressed(rl.KeyLeftShift) || rl.IsKeyPressed(rl.KeyRightShift))
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}
