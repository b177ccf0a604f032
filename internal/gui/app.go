package gui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/appengine-ltd/plushie-shop/internal/game"
	"github.com/appengine-ltd/plushie-shop/internal/gui/theme"
	"github.com/appengine-ltd/plushie-shop/internal/ledger"
	"github.com/appengine-ltd/plushie-shop/internal/parser"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version   string
	AssetsDir string
	Width     int32
	Height    int32
}

type App struct {
	cfg     AppConfig
	session *game.Session
	store   ledger.Store
	logger  *slog.Logger
}

// NewApp wires a session and its ledger to a window. store may be nil, in
// which case the finance panel stays empty.
func NewApp(cfg AppConfig, session *game.Session, store ledger.Store, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{cfg: cfg, session: session, store: store, logger: logger}
}

type screen int

const (
	screenShop screen = iota
	screenHelp
)

const maxInputLen = 40

type gameUI struct {
	cfg     AppConfig
	session *game.Session
	parser  *parser.Parser
	logger  *slog.Logger

	finance *financePanel
	images  *ImageCache
	events  *eventQueue

	width  int32
	height int32
	quit   bool
	screen screen

	input      string
	inputFocus bool
	status     string
	hoverSlot  int

	lastTick time.Time
}

func (a *App) Run() error {
	if a.session == nil {
		return fmt.Errorf("gui: session is required")
	}
	ui := newGameUI(a.cfg, a.session, a.store, a.logger)
	return ui.Run()
}

func newGameUI(cfg AppConfig, session *game.Session, store ledger.Store, logger *slog.Logger) *gameUI {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = "assets"
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &gameUI{
		cfg:       cfg,
		session:   session,
		parser:    parser.New(),
		logger:    logger,
		finance:   newFinancePanel(store, logger),
		images:    NewImageCache(cfg.AssetsDir, logger),
		events:    newEventQueue(32),
		width:     cfg.Width,
		height:    cfg.Height,
		screen:    screenShop,
		hoverSlot: -1,
		lastTick:  time.Now(),
	}
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "Plushie Shop")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography(ui.cfg.AssetsDir)
	theme.InitSkin(ui.cfg.AssetsDir)
	ui.logger.Info("window_opened", "width", ui.width, "height", ui.height)

	defer func() {
		ui.images.Unload()
		theme.UnloadSkin()
		shutdownTypography()
		rl.CloseWindow()
	}()

	ui.lastTick = time.Now()
	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		// A dragged or minimised window can stall for seconds; do not let
		// that expire a countdown in one frame.
		delta = min(delta, 250*time.Millisecond)
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(theme.BG)
		ui.draw()
		rl.EndDrawing()
	}
	return nil
}

func (ui *gameUI) update(delta time.Duration) {
	switch ui.screen {
	case screenShop:
		ui.updateShop()
	case screenHelp:
		ui.updateHelp()
	}
	ui.step(delta)
}

// step flushes buffered input into the session, advances it and refreshes
// the finance panel. It holds no raylib calls so tests can drive it.
func (ui *gameUI) step(delta time.Duration) {
	ui.events.flushInto(ui.session)
	if ui.screen == screenShop {
		ui.session.Update(delta)
	} else {
		// Help pauses the shop; still handle queued input.
		ui.session.Update(0)
	}
	if !ui.finance.visible {
		if _, ok := ui.session.ActiveCustomer(); ok {
			ui.finance.visible = true
		}
	}
	ui.finance.sync(ui.session.LedgerRevision())
}

func (ui *gameUI) draw() {
	l := computeLayout(ui.width, ui.height)
	snap := ui.session.Snapshot()
	ui.drawScene(l, snap)
	ui.drawShelf(l, snap)
	ui.drawInput(l)
	ui.drawFinance(l)
	if ui.screen == screenHelp {
		ui.drawHelp()
	}
}

func (ui *gameUI) updateShop() {
	if ui.inputFocus {
		captureTextInput(&ui.input, maxInputLen)
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
			ui.submitInput()
		}
		if rl.IsKeyPressed(rl.KeyEscape) {
			ui.input = ""
			ui.inputFocus = false
		}
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyF1) || ShiftKeyPressed(rl.KeySlash) {
		ui.screen = screenHelp
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySlash) || rl.IsKeyPressed(rl.KeyT) {
		ui.inputFocus = true
		// Drain the char that opened the box.
		for rl.GetCharPressed() > 0 {
		}
		return
	}

	l := computeLayout(ui.width, ui.height)
	shelf := ui.session.Palette().Shelf()
	slots := shelfSlots(l.shelf, len(shelf))
	mouse := rl.GetMousePosition()
	ui.hoverSlot = slotAt(slots, mouse)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if contains(l.input, mouse) {
			ui.inputFocus = true
			return
		}
		if ui.hoverSlot >= 0 {
			ui.session.OnColorSelected(shelf[ui.hoverSlot].Name())
		}
	}

	if !HotkeysEnabled(ui) {
		return
	}
	if slot := pressedSlot(); slot >= 0 {
		ui.pickSlot(slot)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		ui.events.Enqueue(game.RestartRequested{})
		ui.status = "Starting over from day 1."
	}
}

func (ui *gameUI) updateHelp() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyF1) || rl.IsKeyPressed(rl.KeyEnter) {
		ui.screen = screenShop
	}
}

// pickSlot hands over the plushie in shelf slot i, counted from zero.
func (ui *gameUI) pickSlot(i int) {
	shelf := ui.session.Palette().Shelf()
	if i < 0 || i >= len(shelf) {
		return
	}
	ui.events.Enqueue(game.ColorSelected{Color: shelf[i]})
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
	if strings.TrimSpace(*target) == "" {
		*target = strings.TrimLeft(*target, " ")
	}
}
