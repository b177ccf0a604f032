package gui

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/plushie-shop/internal/game"
	"github.com/appengine-ltd/plushie-shop/internal/parser"
)

// submitInput resolves the command line and queues what it asked for.
func (ui *gameUI) submitInput() {
	raw := strings.TrimSpace(ui.input)
	ui.input = ""
	ui.inputFocus = false
	if raw == "" {
		ui.status = ""
		return
	}

	intent := ui.parser.Parse(parser.ParseContext{Shelf: ui.session.Palette().Shelf()}, raw)
	switch intent.Kind {
	case parser.Restart:
		ui.events.Enqueue(game.RestartRequested{})
		ui.status = "Starting over from day 1."
	case parser.Help:
		ui.screen = screenHelp
		ui.status = ""
	case parser.Pick:
		if intent.Ambiguous() {
			ui.status = "Did you mean " + candidateList(intent.Candidates) + "?"
			return
		}
		for range intent.Count {
			ui.events.Enqueue(game.ColorSelected{Color: intent.Color})
		}
		ui.status = fmt.Sprintf("Handed over %d %s.", intent.Count, plural(intent.Count, intent.Color.Name()+" plushie"))
		ui.logger.Debug("command_pick", "raw", raw, "color", intent.Color.Name(), "count", intent.Count, "confidence", intent.Confidence)
	default:
		ui.status = fmt.Sprintf("No plushie called %q on the shelf.", raw)
	}
}

func candidateList(colors []game.Color) string {
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.Name()
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
