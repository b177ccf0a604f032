package gui

import (
	"fmt"
	"math"
	"strings"

	"github.com/appengine-ltd/plushie-shop/internal/display"
	"github.com/appengine-ltd/plushie-shop/internal/game"
	"github.com/appengine-ltd/plushie-shop/internal/gui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	customerHeight = 84.0
	floorY         = game.CounterY + 96.0
)

var shirtColors = [...]rl.Color{
	rl.NewColor(0xC5, 0x11, 0x11, 255),
	rl.NewColor(0x13, 0x2E, 0xD1, 255),
	rl.NewColor(0x11, 0x7F, 0x2D, 255),
	rl.NewColor(0xED, 0x54, 0xBA, 255),
	rl.NewColor(0xEF, 0x7D, 0x0D, 255),
}

var hairColors = [...]rl.Color{
	rl.NewColor(0x3B, 0x2A, 0x20, 255),
	rl.NewColor(0xE3, 0xC1, 0x6F, 255),
	rl.NewColor(0x1B, 0x1B, 0x1B, 255),
	rl.NewColor(0xA8, 0x3D, 0x1E, 255),
}

func colorRGBA(c game.Color) rl.Color {
	v := c.RGB()
	return rl.NewColor(v.R, v.G, v.B, 255)
}

func (ui *gameUI) drawScene(l layout, snap game.Snapshot) {
	rl.BeginScissorMode(int32(l.scene.X), int32(l.scene.Y), int32(l.scene.Width), int32(l.scene.Height))
	defer rl.EndScissorMode()

	rl.DrawRectangleRec(l.sceneRect(0, 0, game.SceneWidth, floorY), theme.Wall)
	rl.DrawRectangleRec(l.sceneRect(0, floorY, game.SceneWidth, game.SceneHeight-floorY), theme.Floor)
	for x := 0.0; x < game.SceneWidth; x += 60 {
		a := l.toScreen(x, floorY)
		b := l.toScreen(x-40, game.SceneHeight)
		rl.DrawLineEx(a, b, 1, rl.Fade(theme.Wall, 0.5))
	}

	// Customers stand behind the counter's right edge; draw the queue back
	// to front so the head is on top.
	for i := len(snap.Customers) - 1; i >= 0; i-- {
		ui.drawCustomer(l, snap.Customers[i])
	}
	ui.drawCounter(l)

	if c, ok := snap.Active(); ok && snap.Overlay == game.OverlayNone {
		ui.drawBubble(l, c)
	}
	ui.drawHUD(l, snap)
	ui.drawNotices(l, snap)
	ui.drawOverlay(l, snap)
}

func (ui *gameUI) drawCounter(l layout) {
	top := l.sceneRect(game.CounterX-260, game.CounterY, 300, 16)
	body := l.sceneRect(game.CounterX-250, game.CounterY+16, 280, floorY-game.CounterY-16+30)
	rl.DrawRectangleRec(body, theme.Counter)
	rl.DrawRectangleRec(top, theme.CounterTop)
	size := int32(18 * l.scale)
	theme.DrawCentered("PLUSHIES", body, int32(body.Y+12*l.scale), size, rl.Fade(theme.TextPrimary, 0.55))
}

// drawCustomer draws a crewmate with its feet on the floor at c.X.
func (ui *gameUI) drawCustomer(l layout, c game.Customer) {
	x := c.X
	y := floorY - customerHeight
	bob := 0.0
	if !c.AtCounter {
		bob = math.Abs(math.Sin(x/14)) * 3
	}
	y -= bob

	shirt := shirtColors[c.Shirt%len(shirtColors)]
	hair := hairColors[c.Hair%len(hairColors)]
	shade := theme.Mix(shirt, rl.Black, 0.35)

	pack := l.sceneRect(x+game.CustomerWidth-8, y+26, 16, 36)
	rl.DrawRectangleRounded(pack, 0.5, 6, shade)

	body := l.sceneRect(x, y, game.CustomerWidth, customerHeight-16)
	rl.DrawRectangleRounded(body, 0.55, 10, shirt)
	leftLeg := l.sceneRect(x+4, y+customerHeight-24, 22, 24)
	rightLeg := l.sceneRect(x+game.CustomerWidth-26, y+customerHeight-24, 22, 24)
	rl.DrawRectangleRounded(leftLeg, 0.4, 6, shirt)
	rl.DrawRectangleRounded(rightLeg, 0.4, 6, shade)

	visor := l.sceneRect(x-6, y+14, 40, 22)
	rl.DrawRectangleRounded(visor, 0.8, 8, theme.AccentVisor)
	glint := l.sceneRect(x+2, y+18, 14, 6)
	rl.DrawRectangleRounded(glint, 0.8, 6, rl.Fade(rl.White, 0.8))

	switch c.Hair % len(hairColors) {
	case 0:
		// bare
	case 1:
		hat := l.sceneRect(x+6, y-8, game.CustomerWidth-12, 12)
		rl.DrawRectangleRounded(hat, 0.6, 6, hair)
	case 2:
		rl.DrawCircleV(l.toScreen(x+game.CustomerWidth/2, y-4), 9*l.scale, hair)
	case 3:
		a := l.toScreen(x+game.CustomerWidth/2, y-14)
		b := l.toScreen(x+game.CustomerWidth/2-10, y+2)
		d := l.toScreen(x+game.CustomerWidth/2+10, y+2)
		rl.DrawTriangle(a, b, d, hair)
	}
}

func (ui *gameUI) drawBubble(l layout, c game.Customer) {
	text := c.Order.Text()
	if text == "" {
		return
	}
	size := theme.Type.Bubble
	maxW := int32(260 * l.scale)
	lines := wrapText(text, size, maxW, measureText)
	lineH := textLineHeight(size)
	w := int32(0)
	for _, line := range lines {
		w = max(w, measureText(line, size))
	}
	head := l.toScreen(c.X+game.CustomerWidth/2, floorY-customerHeight-12)
	rect := rl.NewRectangle(head.X-float32(w)/2-theme.PaddingS, head.Y-float32(lineH*int32(len(lines)))-2*theme.PaddingS, float32(w)+2*theme.PaddingS, float32(lineH*int32(len(lines)))+theme.PaddingS)
	rect.X = max(l.scene.X+4, min(rect.X, l.scene.X+l.scene.Width-rect.Width-4))
	theme.DrawBubble(rect, rl.NewVector2(head.X, head.Y-theme.PaddingXS))
	for i, line := range lines {
		drawText(line, int32(rect.X+theme.PaddingS), int32(rect.Y+theme.PaddingXS)+int32(i)*lineH, size, theme.BG)
	}
}

func (ui *gameUI) drawHUD(l layout, snap game.Snapshot) {
	x := int32(l.scene.X + theme.PaddingS)
	y := int32(l.scene.Y + theme.PaddingS)
	size := theme.Type.Body

	drawText(fmt.Sprintf("Day %d/%d", snap.Day, snap.MaxDay), x, y, theme.Type.Header, theme.TextPrimary)
	y += textLineHeight(theme.Type.Header)
	drawText(fmt.Sprintf("Served %d/%d", snap.ServedToday, snap.CustomersPerDay), x, y, size, theme.TextSecondary)
	y += textLineHeight(size)
	drawText(fmt.Sprintf("Sold %d", snap.PlushiesSold), x, y, size, theme.TextSecondary)
	y += textLineHeight(size) + 4
	for i := 0; i < snap.LivesPerDay; i++ {
		clr := theme.Danger
		if i >= snap.Lives {
			clr = rl.Fade(theme.TextMuted, 0.5)
		}
		drawHeart(rl.NewVector2(float32(x)+10+float32(i)*26, float32(y)+9), 9, clr)
	}

	right := l.scene.X + l.scene.Width - theme.PaddingS
	score := "Score " + display.Score(snap.Score)
	drawText(score, int32(right)-measureText(score, theme.Type.Header), int32(l.scene.Y+theme.PaddingS), theme.Type.Header, theme.TextPrimary)
	streak := fmt.Sprintf("Streak %d  x%.1f", snap.Streak, snap.Multiplier)
	streakColor := theme.TextSecondary
	if snap.Streak >= 3 {
		streakColor = theme.WarningAmber
	}
	sy := int32(l.scene.Y+theme.PaddingS) + textLineHeight(theme.Type.Header)
	drawText(streak, int32(right)-measureText(streak, size), sy, size, streakColor)

	if snap.TimerActive {
		ui.drawTimer(l, snap)
	}
}

func (ui *gameUI) drawTimer(l layout, snap game.Snapshot) {
	track := rl.NewRectangle(l.scene.X+l.scene.Width/2-120, l.scene.Y+theme.PaddingS, 240, 14)
	frac := float32(0)
	if snap.OrderSeconds > 0 {
		frac = float32(snap.TimeRemaining) / float32(snap.OrderSeconds)
	}
	fill := theme.Income
	switch {
	case snap.TimeRemaining <= 3:
		fill = theme.Danger
	case frac <= 0.4:
		fill = theme.WarningAmber
	}
	rl.DrawRectangleRounded(track, 0.6, 6, rl.Fade(theme.PanelRaised, 0.9))
	if frac > 0 {
		rl.DrawRectangleRounded(rl.NewRectangle(track.X, track.Y, track.Width*frac, track.Height), 0.6, 6, fill)
	}
	label := fmt.Sprintf("%ds", snap.TimeRemaining)
	theme.DrawCentered(label, track, int32(track.Y+track.Height+4), theme.Type.Body, fill)
}

func (ui *gameUI) drawNotices(l layout, snap game.Snapshot) {
	size := theme.Type.Small
	lineH := textLineHeight(size)
	y := int32(l.scene.Y+l.scene.Height-theme.PaddingS) - lineH*int32(len(snap.Notices))
	for i, n := range snap.Notices {
		alpha := 0.45 + 0.55*float32(i+1)/float32(len(snap.Notices))
		drawText(n.Message, int32(l.scene.X+theme.PaddingS), y+int32(i)*lineH, size, rl.Fade(noticeColor(n.Outcome), alpha))
	}
}

func noticeColor(o game.Outcome) rl.Color {
	switch o {
	case game.OutcomeOrderSuccess, game.OutcomeDayComplete, game.OutcomeGameComplete:
		return theme.Income
	case game.OutcomeWrongPick, game.OutcomeOrderTimeout, game.OutcomeLevelFailed:
		return theme.Danger
	default:
		return theme.TextSecondary
	}
}

func (ui *gameUI) drawOverlay(l layout, snap game.Snapshot) {
	if snap.Overlay == game.OverlayNone {
		return
	}
	rl.DrawRectangleRec(l.scene, rl.Fade(theme.BG, 0.78))
	mid := int32(l.scene.Y + l.scene.Height*0.32)
	secs := int(math.Ceil(snap.OverlayLeft.Seconds()))

	switch snap.Overlay {
	case game.OverlayDayIntro:
		theme.DrawCentered(fmt.Sprintf("Day %d", snap.Day), l.scene, mid, theme.Type.Title, theme.TextPrimary)
		theme.DrawCentered(fmt.Sprintf("Serve %d customers. You have %d lives.", snap.CustomersPerDay, snap.LivesPerDay), l.scene, mid+60, theme.Type.Header, theme.TextSecondary)
		theme.DrawCentered(fmt.Sprintf("Each order: %d seconds", snap.OrderSeconds), l.scene, mid+96, theme.Type.Body, theme.AccentVisor)
		theme.DrawCentered(fmt.Sprintf("Opening in %d...", secs), l.scene, mid+140, theme.Type.Body, theme.TextMuted)
	case game.OverlayLevelFailed:
		theme.DrawCentered("Ejected!", l.scene, mid, theme.Type.Title, theme.AccentImpostor)
		theme.DrawCentered(fmt.Sprintf("Too many unhappy customers on day %d.", snap.Day), l.scene, mid+60, theme.Type.Header, theme.TextSecondary)
		theme.DrawCentered(fmt.Sprintf("Retrying in %d...", secs), l.scene, mid+100, theme.Type.Body, theme.TextMuted)
	case game.OverlayGameComplete:
		theme.DrawCentered("Shop closed. Great work!", l.scene, mid, theme.Type.Title, theme.Income)
		theme.DrawCentered("Final score "+display.Score(snap.Score), l.scene, mid+60, theme.Type.Header, theme.TextPrimary)
		theme.DrawCentered("Rank: "+strings.ToUpper(string(snap.Rank)), l.scene, mid+96, theme.Type.Header, theme.WarningAmber)
		theme.DrawCentered(fmt.Sprintf("%d plushies sold. Press R to play again.", snap.PlushiesSold), l.scene, mid+140, theme.Type.Body, theme.TextMuted)
	}
}

func drawHeart(center rl.Vector2, r float32, clr rl.Color) {
	rl.DrawCircleV(rl.NewVector2(center.X-r/2, center.Y-r/3), r/1.6, clr)
	rl.DrawCircleV(rl.NewVector2(center.X+r/2, center.Y-r/3), r/1.6, clr)
	rl.DrawTriangle(
		rl.NewVector2(center.X-r*1.1, center.Y-r/6),
		rl.NewVector2(center.X, center.Y+r),
		rl.NewVector2(center.X+r*1.1, center.Y-r/6),
		clr,
	)
}
