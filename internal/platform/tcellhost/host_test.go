package tcellhost

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)
	return s
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{TickRate: 10, Seed: 1}
}

func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := range w {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestDrawCopiesGameScreen(t *testing.T) {
	s := newTestScreen(t)
	h := newHost(snake.NewClassic(), s, testConfig(), nil)

	h.draw()

	if !strings.Contains(row(s, 0), "Snake: Classic") {
		t.Errorf("title row = %q", row(s, 0))
	}
	r, _, style, _ := s.GetContent(40, 14)
	if r != '█' {
		t.Errorf("head rune = %q, want '█'", r)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.PaletteColor(core.ColorBrightGreen.ANSI()) {
		t.Errorf("head color = %v", fg)
	}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want core.Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionUp},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), core.ActionLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), core.ActionDown},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.ActionRight},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.ActionBoost},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), core.ActionPause},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.ActionNone},
	}

	for _, tc := range tests {
		if got := mapKey(tc.ev); got != tc.want {
			t.Errorf("mapKey(%s) = %v, want %v", tc.ev.Name(), got, tc.want)
		}
	}
}

func TestTickFollowsBoostRate(t *testing.T) {
	s := newTestScreen(t)
	h := newHost(snake.NewStone(), s, testConfig(), nil)

	h.handleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !h.tick() {
		t.Fatal("boost did not change the tick rate")
	}
	if h.rate != 30 {
		t.Errorf("rate = %d, want 30", h.rate)
	}
	if h.frame.Has(core.ActionBoost) {
		t.Error("frame not cleared after tick")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	s := newTestScreen(t)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	errc := make(chan error, 1)
	go func() {
		errc <- Run(context.Background(), snake.NewClassic(), s, testConfig(), nil)
	}()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after q")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	s := newTestScreen(t)
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() {
		errc <- Run(ctx, snake.NewClassic(), s, testConfig(), nil)
	}()
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
