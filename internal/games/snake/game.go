package snake

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Package-level configuration shared by every game the registry creates.
var (
	configMu     sync.RWMutex
	activeConfig = config.DefaultSnakeConfig()
)

// SetConfig replaces the configuration used by games reset after the call.
func SetConfig(cfg config.SnakeConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	activeConfig = cfg
}

func currentConfig() config.SnakeConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return activeConfig
}

// RulesFromConfig builds the rules of a variant from a loaded configuration.
func RulesFromConfig(v Variant, cfg config.SnakeConfig) Rules {
	return Rules{
		Variant: v,
		Board: Board{
			Width:    cfg.Screen.Width,
			Height:   cfg.Screen.Height,
			CellSize: cfg.Screen.CellSize,
		},
		BaseRate:         cfg.Speed.BaseRate,
		BoostBonus:       cfg.Speed.BoostBonus,
		DoubleStepOnTurn: cfg.Rules.DoubleStepOnTurn,
	}
}

// Game adapts a Simulation to the registry.Game interface.
type Game struct {
	variant   Variant
	sim       *Simulation
	holdTicks int
	boostLeft int // frames the boost stays on without another boost action

	paused   bool
	tooSmall bool
}

// NewClassic creates a Classic variant game.
func NewClassic() *Game {
	return &Game{variant: Classic}
}

// NewStone creates a Stone variant game.
func NewStone() *Game {
	return &Game{variant: Stone}
}

func init() {
	registry.Register(string(Classic), func() registry.Game {
		return NewClassic()
	})
	registry.Register(string(Stone), func() registry.Game {
		return NewStone()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == Stone {
		return "Snake: Stone"
	}
	return "Snake: Classic"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.variant == Stone {
		return "Snake with a stone to avoid and a space-bar speed boost"
	}
	return "Eat, grow, and don't bite yourself"
}

// Reset starts a new simulation seeded from cfg.Seed. An invalid
// configuration falls back to the stock rules.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	sc := currentConfig()
	rng := rand.New(rand.NewSource(cfg.Seed))

	sim, err := NewSimulation(RulesFromConfig(g.variant, sc), rng)
	if err != nil {
		sim, _ = NewSimulation(DefaultRules(g.variant), rng)
	}

	g.sim = sim
	g.holdTicks = max(sc.Boost.HoldTicks, 1)
	g.boostLeft = 0
	g.paused = false
	g.tooSmall = !fits(sim.Rules().Board, cfg.ScreenW, cfg.ScreenH)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State(), TickRate: g.sim.TickRate()}
	}

	var events []core.Event

	wasBoosted := g.sim.Boosted()
	if in.Has(core.ActionBoost) {
		g.boostLeft = g.holdTicks
	} else if g.boostLeft > 0 {
		g.boostLeft--
	}
	g.sim.SetBoost(g.boostLeft > 0)
	if b := g.sim.Boosted(); b != wasBoosted {
		events = append(events, core.Event{Name: "boost", Detail: onOff(b)})
	}

	res := g.sim.Tick(TickInput{Direction: directionOf(in.LastDirection)})
	for _, e := range res.Events {
		events = append(events, coreEvent(e, res.State))
	}

	return core.StepResult{
		State:    g.State(),
		TickRate: g.sim.TickRate(),
		Events:   events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Length:  g.sim.Len(),
		Paused:  g.paused,
		Boosted: g.sim.Boosted(),
	}
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() State {
	return g.sim.State()
}

// directionOf maps a movement action to a direction.
func directionOf(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

func coreEvent(e Event, st State) core.Event {
	switch e.Kind {
	case EventReset:
		return core.Event{Name: string(e.Kind), Detail: fmt.Sprintf("cause=%s at=%s", e.Cause, e.At)}
	case EventGrew:
		return core.Event{Name: string(e.Kind), Detail: fmt.Sprintf("length=%d", st.Len())}
	default:
		return core.Event{Name: string(e.Kind), Detail: e.Dir.String()}
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
