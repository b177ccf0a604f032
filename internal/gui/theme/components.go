package theme

import rl "github.com/gen2brain/raylib-go/raylib"

func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	fill := Panel
	stroke := Border
	strokeWidth := BorderWidth
	tint := rl.White

	switch variant {
	case PanelLifted:
		fill = PanelRaised
		stroke = mix(Border, AccentVisor, 0.3)
		strokeWidth = 1.4
	case PanelMuted:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
		tint = rl.LightGray
	}

	if DrawNineSlice(Skin.Panel, rect, tint) {
		if variant == PanelLifted {
			rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
		}
		return
	}
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
}

// DrawTitledPanel draws a panel with a header and divider and returns the
// content area below them.
func DrawTitledPanel(rect rl.Rectangle, title string, variant PanelVariant) rl.Rectangle {
	DrawPanel(rect, variant)
	if title == "" {
		return rl.NewRectangle(rect.X+PaddingS, rect.Y+PaddingS, rect.Width-2*PaddingS, rect.Height-2*PaddingS)
	}
	DrawHeader(title, int32(rect.X+PaddingM), int32(rect.Y+PaddingS))
	top := rect.Y + PaddingS + float32(Type.Header) + 12
	DrawDivider(rect.X+PaddingM, top, rect.X+rect.Width-PaddingM, top)
	return rl.NewRectangle(rect.X+PaddingM, top+PaddingXS, rect.Width-2*PaddingM, rect.Y+rect.Height-top-PaddingS)
}

// DrawSlot draws one shelf slot frame. The plushie itself is drawn by the
// caller inside the returned inner rectangle.
func DrawSlot(rect rl.Rectangle, state SlotState, hotkey string) rl.Rectangle {
	fill := rl.Fade(PanelRaised, 0.6)
	stroke := Border
	strokeWidth := BorderWidth

	switch state {
	case SlotHovered:
		fill = PanelRaised
		stroke = AccentVisor
		strokeWidth = BorderWidthFocus
	case SlotWanted:
		stroke = WarningAmber
		strokeWidth = BorderWidthFocus
	case SlotDisabled:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.6)
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
	if hotkey != "" {
		drawText(hotkey, int32(rect.X+5), int32(rect.Y+3), Type.Small, TextMuted)
	}
	return rl.NewRectangle(rect.X+PaddingXS, rect.Y+PaddingXS+6, rect.Width-2*PaddingXS, rect.Height-2*PaddingXS-6)
}

// DrawLedgerRow draws a transaction row with the amount right-aligned and
// tinted by tone.
func DrawLedgerRow(rect rl.Rectangle, tone RowTone, leftText, rightText string) {
	right := TextSecondary
	switch tone {
	case RowIncome:
		right = Income
	case RowExpense:
		right = Danger
	}
	rl.DrawRectangleRec(rect, rl.Fade(PanelRaised, 0.35))
	if tone != RowNeutral {
		rl.DrawRectangleRec(rl.NewRectangle(rect.X, rect.Y+2, AccentStripWidth, rect.Height-4), right)
	}
	textY := int32(rect.Y + (rect.Height-float32(Type.Small))/2)
	if leftText != "" {
		drawText(leftText, int32(rect.X+PaddingS), textY, Type.Small, TextPrimary)
	}
	if rightText != "" {
		w := measureText(rightText, Type.Small)
		drawText(rightText, int32(rect.X+rect.Width-PaddingS)-w, textY, Type.Small, right)
	}
}

// DrawBubble draws a speech bubble with a tail pointing down at tail.
func DrawBubble(rect rl.Rectangle, tail rl.Vector2) {
	fill := TextPrimary
	if !DrawNineSlice(Skin.Bubble, rect, fill) {
		rl.DrawRectangleRounded(rect, 0.3, CornerSegments, fill)
	}
	base := rect.Y + rect.Height
	rl.DrawTriangle(
		rl.NewVector2(tail.X-8, base-1),
		tail,
		rl.NewVector2(tail.X+8, base-1),
		fill,
	)
}

func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Header, TextPrimary)
	w := measureText(text, Type.Header)
	lineW := max(int32(float32(w)*0.6), 36)
	drawLine(float32(x), float32(y+Type.Header+5), float32(x+lineW), float32(y+Type.Header+5), 2.0, AccentVisor)
}

func DrawDivider(x1, y1, x2, y2 float32) {
	drawLine(x1, y1, x2, y2, 1.0, rl.Fade(Divider, 0.95))
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Small, TextMuted)
}

// DrawCentered draws text horizontally centred in rect at the given y.
func DrawCentered(text string, rect rl.Rectangle, y, size int32, clr rl.Color) {
	w := measureText(text, size)
	drawText(text, int32(rect.X+(rect.Width-float32(w))/2), y, size, clr)
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

func mix(a, b rl.Color, t float32) rl.Color {
	t = max(0, min(t, 1))
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}

// Mix blends two colors; t=0 yields a, t=1 yields b.
func Mix(a, b rl.Color, t float32) rl.Color {
	return mix(a, b, t)
}
