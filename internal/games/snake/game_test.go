package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func newTestGame(t *testing.T, id string) *Game {
	t.Helper()
	g, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", id, err)
	}
	game := g.(*Game)
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 10, Seed: 1})
	return game
}

func withConfig(t *testing.T, cfg config.SnakeConfig) {
	t.Helper()
	prev := currentConfig()
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(prev) })
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"classic", "stone"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
			continue
		}
		g := newTestGame(t, id)
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestGameStepMapsDirections(t *testing.T) {
	g := newTestGame(t, "classic")

	res := g.Step(frame(core.ActionLeft, core.ActionUp))

	st := g.Snapshot()
	if st.Direction != DirUp {
		t.Errorf("direction = %v, want up", st.Direction)
	}
	if st.Tick != 1 {
		t.Errorf("tick = %d, want 1", st.Tick)
	}
	if res.TickRate != 10 {
		t.Errorf("TickRate = %d, want 10", res.TickRate)
	}
	if len(res.Events) == 0 || res.Events[0].Name != "turned" || res.Events[0].Detail != "up" {
		t.Errorf("events = %+v, want a turn up", res.Events)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, "classic")

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("game not paused")
	}
	g.Step(frame(core.ActionUp))
	if st := g.Snapshot(); st.Tick != 0 || st.Pending != DirNone {
		t.Errorf("paused game advanced: tick=%d pending=%v", st.Tick, st.Pending)
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused || g.Snapshot().Tick != 1 {
		t.Errorf("unpause did not resume: paused=%v tick=%d", res.State.Paused, g.Snapshot().Tick)
	}
}

func TestGameBoostHold(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Boost.HoldTicks = 3
	withConfig(t, cfg)

	g := newTestGame(t, "stone")

	res := g.Step(frame(core.ActionBoost))
	if !res.State.Boosted || res.TickRate != 30 {
		t.Fatalf("boosted = %v rate = %d, want on at 30", res.State.Boosted, res.TickRate)
	}
	if res.Events[0].Name != "boost" || res.Events[0].Detail != "on" {
		t.Errorf("events = %+v, want boost on first", res.Events)
	}

	for i := range 2 {
		res = g.Step(frame())
		if !res.State.Boosted {
			t.Fatalf("boost released after %d empty frames", i+1)
		}
	}

	res = g.Step(frame())
	if res.State.Boosted || res.TickRate != 10 {
		t.Errorf("boosted = %v rate = %d, want off at 10", res.State.Boosted, res.TickRate)
	}
}

func TestGameBoostIgnoredInClassic(t *testing.T) {
	g := newTestGame(t, "classic")

	res := g.Step(frame(core.ActionBoost))

	if res.State.Boosted || res.TickRate != 10 {
		t.Errorf("classic boosted = %v rate = %d", res.State.Boosted, res.TickRate)
	}
	for _, e := range res.Events {
		if e.Name == "boost" {
			t.Errorf("unexpected boost event %+v", e)
		}
	}
}

func TestGameUsesConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Screen = config.ScreenConfig{Width: 400, Height: 300, CellSize: 20}
	cfg.Speed.BaseRate = 8
	cfg.Rules.DoubleStepOnTurn = true
	withConfig(t, cfg)

	g := newTestGame(t, "classic")
	rules := g.sim.Rules()

	if rules.Board.Cols() != 20 || rules.Board.Rows() != 15 {
		t.Errorf("board = %dx%d, want 20x15", rules.Board.Cols(), rules.Board.Rows())
	}
	if !rules.DoubleStepOnTurn || rules.BaseRate != 8 {
		t.Errorf("rules = %+v", rules)
	}
}

func TestGameInvalidConfigFallsBack(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Screen.CellSize = 30
	withConfig(t, cfg)

	g := newTestGame(t, "stone")
	if g.sim.Rules().Board != DefaultBoard() {
		t.Errorf("board = %+v, want default", g.sim.Rules().Board)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, "classic")
	dst := core.NewScreen(80, 30)

	g.Render(dst)

	if !strings.Contains(dst.Row(0), "Snake: Classic") {
		t.Errorf("title row = %q", dst.Row(0))
	}
	// 66-column board centred in 80 columns
	if got := dst.Get(7, 1); got != '┌' {
		t.Errorf("box corner = %q, want '┌'", got)
	}
	head := dst.GetCell(40, 14)
	if head.Rune != '█' || head.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", head)
	}
	if dst.Get(41, 14) != '█' {
		t.Error("head should be two columns wide")
	}
}

func TestGameRenderPaused(t *testing.T) {
	g := newTestGame(t, "classic")
	g.Step(frame(core.ActionPause))
	dst := core.NewScreen(80, 30)

	g.Render(dst)

	if !strings.Contains(dst.String(), "Paused") {
		t.Error("paused overlay missing")
	}
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, "classic")
	dst := core.NewScreen(40, 12)

	g.Render(dst)
	if !strings.Contains(dst.String(), "Window too small") {
		t.Fatal("too small overlay missing")
	}

	g.Step(frame())
	if g.Snapshot().Tick != 0 {
		t.Error("game advanced while the window was too small")
	}

	g.Render(core.NewScreen(80, 30))
	g.Step(frame())
	if g.Snapshot().Tick != 1 {
		t.Error("game did not resume after the window grew")
	}
}

func TestSquaresDrawHeadLast(t *testing.T) {
	st := State{
		Segments:    []Cell{{X: 20, Y: 0}, {X: 0, Y: 0}},
		Food:        Cell{X: 40, Y: 0},
		Obstacle:    Cell{X: 60, Y: 0},
		HasObstacle: true,
	}

	sq := st.Squares()

	if len(sq) != 4 {
		t.Fatalf("got %d squares, want 4", len(sq))
	}
	last := sq[len(sq)-1]
	if last.At != st.Head() || last.Fill != core.ColorBrightGreen {
		t.Errorf("last square = %+v, want the head", last)
	}
}
