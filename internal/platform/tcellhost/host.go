// Package tcellhost runs a game directly on a tcell screen, without the
// Bubble Tea event loop.
package tcellhost

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

type host struct {
	game   registry.Game
	screen tcell.Screen
	buf    *core.Screen
	logger *log.Logger
	frame  core.InputFrame
	rate   int
}

func newHost(game registry.Game, screen tcell.Screen, cfg core.RuntimeConfig, logger *log.Logger) *host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	w, h := screen.Size()
	cfg.ScreenW, cfg.ScreenH = w, h
	game.Reset(cfg)

	return &host{
		game:   game,
		screen: screen,
		buf:    core.NewScreen(w, h),
		logger: logger,
		frame:  core.NewInputFrame(),
		rate:   max(cfg.TickRate, 1),
	}
}

// Run plays game on an initialized screen until a quit key is pressed or
// ctx is done. The caller owns screen and finalizes it.
func Run(ctx context.Context, game registry.Game, screen tcell.Screen, cfg core.RuntimeConfig, logger *log.Logger) error {
	h := newHost(game, screen, cfg, logger)
	h.logger.Info("game started", "game", game.ID(), "backend", "tcell")

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(interval(h.rate))
	defer ticker.Stop()

	h.draw()
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("context done", "game", game.ID())
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if h.handleKey(ev) {
					h.logger.Info("quit requested", "game", game.ID(), "length", game.State().Length)
					return nil
				}
			case *tcell.EventResize:
				w, ht := screen.Size()
				h.buf.Resize(w, ht)
				screen.Sync()
				h.draw()
			}

		case <-ticker.C:
			if h.tick() {
				ticker.Reset(interval(h.rate))
			}
			h.draw()
		}
	}
}

// handleKey latches a key into the frame. It reports whether the key quits.
func (h *host) handleKey(ev *tcell.EventKey) bool {
	action := mapKey(ev)
	if action == core.ActionQuit {
		return true
	}
	if action != core.ActionNone {
		h.frame.Set(action)
	}
	return false
}

// tick steps the game once and reports whether the tick rate changed.
func (h *host) tick() bool {
	res := h.game.Step(h.frame)
	h.frame.Clear()

	for _, e := range res.Events {
		if e.Name == "reset" || e.Name == "boost" {
			h.logger.Info(e.Name, "game", h.game.ID(), "detail", e.Detail)
		} else {
			h.logger.Debug(e.Name, "game", h.game.ID(), "detail", e.Detail)
		}
	}

	if res.TickRate > 0 && res.TickRate != h.rate {
		h.rate = res.TickRate
		return true
	}
	return false
}

// draw renders the game into the buffer and copies it to the screen.
func (h *host) draw() {
	h.game.Render(h.buf)
	for y := range h.buf.Height() {
		for x := range h.buf.Width() {
			cell := h.buf.GetCell(x, y)
			h.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	h.screen.Show()
}

func interval(rate int) time.Duration {
	if rate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(rate)
}

func styleFor(c core.Color) tcell.Style {
	n := c.ANSI()
	if n < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(n))
}

// mapKey translates a tcell key event to a game action.
func mapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return core.ActionQuit
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case ' ':
			return core.ActionBoost
		case 'p':
			return core.ActionPause
		}
	}
	return core.ActionNone
}
