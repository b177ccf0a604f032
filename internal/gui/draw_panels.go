package gui

import (
	"fmt"
	"strconv"

	"github.com/appengine-ltd/plushie-shop/internal/display"
	"github.com/appengine-ltd/plushie-shop/internal/game"
	"github.com/appengine-ltd/plushie-shop/internal/gui/theme"
	"github.com/appengine-ltd/plushie-shop/internal/ledger"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func (ui *gameUI) drawShelf(l layout, snap game.Snapshot) {
	theme.DrawPanel(l.shelf, theme.PanelStandard)
	active, hasActive := snap.Active()
	playing := snap.Overlay == game.OverlayNone

	for i, rect := range shelfSlots(l.shelf, len(snap.Shelf)) {
		c := snap.Shelf[i]
		state := theme.SlotNormal
		switch {
		case !playing:
			state = theme.SlotDisabled
		case i == ui.hoverSlot:
			state = theme.SlotHovered
		case hasActive && active.Order.Needs(c):
			state = theme.SlotWanted
		}
		hotkey := ""
		if i < len(slotKeys) {
			hotkey = strconv.Itoa(i + 1)
		}
		inner := theme.DrawSlot(rect, state, hotkey)
		ui.drawPlushie(inner, c)
	}
}

// drawPlushie draws the sprite for c inside rect, or a tiny crewmate in
// that color when there is no sprite.
func (ui *gameUI) drawPlushie(rect rl.Rectangle, c game.Color) {
	if tex, ok := ui.images.Plushie(c); ok {
		scale := min(rect.Width/float32(tex.Width), rect.Height/float32(tex.Height))
		w, h := float32(tex.Width)*scale, float32(tex.Height)*scale
		dst := rl.NewRectangle(rect.X+(rect.Width-w)/2, rect.Y+(rect.Height-h)/2, w, h)
		src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
		rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
		return
	}
	body := colorRGBA(c)
	shade := theme.Mix(body, rl.Black, 0.35)
	bw := rect.Width * 0.6
	bh := rect.Height * 0.8
	bx := rect.X + (rect.Width-bw)/2
	by := rect.Y + (rect.Height-bh)/2
	rl.DrawRectangleRounded(rl.NewRectangle(bx+bw*0.8, by+bh*0.3, bw*0.3, bh*0.45), 0.5, 6, shade)
	rl.DrawRectangleRounded(rl.NewRectangle(bx, by, bw, bh), 0.6, 8, body)
	rl.DrawRectangleRounded(rl.NewRectangle(bx-bw*0.1, by+bh*0.18, bw*0.65, bh*0.3), 0.8, 8, theme.AccentVisor)
}

func (ui *gameUI) drawInput(l layout) {
	variant := theme.PanelStandard
	if ui.inputFocus {
		variant = theme.PanelLifted
	}
	theme.DrawPanel(l.input, variant)
	size := theme.Type.Body
	y := int32(l.input.Y + (l.input.Height-float32(size))/2)
	x := int32(l.input.X + theme.PaddingS)

	switch {
	case ui.inputFocus:
		text := "> " + ui.input
		drawText(text, x, y, size, theme.TextPrimary)
		if (rl.GetTime()*2)-float64(int(rl.GetTime()*2)) < 0.5 {
			cx := x + measureText(text, size) + 2
			rl.DrawRectangle(cx, y, 2, size, theme.AccentVisor)
		}
	case ui.status != "":
		drawText(ui.status, x, y, size, theme.TextSecondary)
	default:
		theme.DrawHintText("Enter: type an order (\"2 red\")   1-9: shelf   R: restart   F1: help   Esc: quit", x, y+1)
	}
}

func (ui *gameUI) drawFinance(l layout) {
	content := theme.DrawTitledPanel(l.finance, "Shop ledger", theme.PanelStandard)
	if !ui.finance.visible {
		theme.DrawHintText("Opens with your first customer.", int32(content.X), int32(content.Y))
		return
	}
	p := ui.finance
	size := theme.Type.Small
	lineH := textLineHeight(size)

	footerH := float32(3*lineH) + theme.PaddingS*2
	listH := content.Height - footerH
	rows := int(listH / (theme.RowHeight + 2))

	if p.err != nil {
		drawText("Ledger unavailable", int32(content.X), int32(content.Y), size, theme.Danger)
	} else if len(p.txs) == 0 {
		theme.DrawHintText("No transactions yet today.", int32(content.X), int32(content.Y))
	}
	for i, tx := range p.recent(rows) {
		row := rl.NewRectangle(content.X, content.Y+float32(i)*(theme.RowHeight+2), content.Width, theme.RowHeight)
		tone, amount := theme.RowIncome, "+"+display.Amount(tx.Amount)
		if tx.Kind == ledger.KindExpense {
			tone, amount = theme.RowExpense, "-"+display.Amount(tx.Amount)
		}
		theme.DrawLedgerRow(row, tone, truncate(tx.Description, size, int32(content.Width*0.62)), amount)
	}

	fy := content.Y + listH + theme.PaddingS
	theme.DrawDivider(content.X, fy-theme.PaddingXS, content.X+content.Width, fy-theme.PaddingXS)
	drawSummaryLine(content, int32(fy), "Income", display.Amount(p.summary.Income), theme.Income)
	drawSummaryLine(content, int32(fy)+lineH, "Expenses", display.Amount(p.summary.Expense), theme.Danger)
	balanceColor := theme.TextPrimary
	if p.summary.Balance() < 0 {
		balanceColor = theme.Danger
	}
	drawSummaryLine(content, int32(fy)+2*lineH, fmt.Sprintf("Balance (%d)", p.summary.Count), display.Amount(p.summary.Balance()), balanceColor)
}

func drawSummaryLine(rect rl.Rectangle, y int32, label, value string, clr rl.Color) {
	size := theme.Type.Small
	drawText(label, int32(rect.X), y, size, theme.TextSecondary)
	drawText(value, int32(rect.X+rect.Width)-measureText(value, size), y, size, clr)
}

func truncate(text string, size, maxWidth int32) string {
	if measureText(text, size) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && measureText(string(runes)+"...", size) > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

var helpLines = []string{
	"Customers walk up to the counter and say what they want.",
	"Hand over each plushie before their timer runs out.",
	"",
	"Click a plushie, or press its number (1-9), to hand it over.",
	"Press Enter to type an order: \"red\", \"2 blue\", \"lime gren\".",
	"A wrong plushie or an empty timer costs a life and $10.",
	"Lose all 3 lives and the day starts over.",
	"",
	"Fast service scores more. Streaks multiply your points.",
	"Survive 7 days to close the shop.",
	"",
	"R: restart    F1 / Esc: close help    Esc: quit",
}

func (ui *gameUI) drawHelp() {
	screen := rl.NewRectangle(0, 0, float32(ui.width), float32(ui.height))
	rl.DrawRectangleRec(screen, rl.Fade(theme.BG, 0.7))
	w := min(float32(ui.width)-80, 720)
	h := float32(len(helpLines))*float32(textLineHeight(theme.Type.Body)) + 90
	rect := rl.NewRectangle((float32(ui.width)-w)/2, (float32(ui.height)-h)/2, w, h)
	content := theme.DrawTitledPanel(rect, "How to play", theme.PanelLifted)
	for i, line := range helpLines {
		drawText(line, int32(content.X), int32(content.Y)+int32(i)*textLineHeight(theme.Type.Body), theme.Type.Body, theme.TextPrimary)
	}
}
