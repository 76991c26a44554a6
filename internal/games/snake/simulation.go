package snake

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

// Rules configures a simulation.
type Rules struct {
	Variant    Variant
	Board      Board
	BaseRate   int // ticks per second
	BoostBonus int // extra ticks per second while boosted

	// DoubleStepOnTurn moves the snake once before and once after applying
	// a queued direction, so a turn costs two cells in one tick.
	DoubleStepOnTurn bool
}

// DefaultRules returns the stock rules for a variant.
func DefaultRules(v Variant) Rules {
	return Rules{
		Variant:    v,
		Board:      DefaultBoard(),
		BaseRate:   BaseTickRate,
		BoostBonus: BoostBonus,
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	switch r.Variant {
	case Classic, Stone:
	default:
		return fmt.Errorf("unknown variant %q", r.Variant)
	}
	if err := r.Board.Validate(); err != nil {
		return err
	}
	if r.BaseRate <= 0 {
		return errors.New("base rate must be positive")
	}
	if r.BoostBonus < 0 {
		return errors.New("boost bonus must not be negative")
	}
	return nil
}

// Simulation owns the snake, the food, the optional stone and the movement
// rules. It is not safe for concurrent use; one game loop owns it.
type Simulation struct {
	rules Rules
	rng   *rand.Rand

	segments  []Cell // head at index 0
	direction Direction
	pending   Direction

	food        Cell
	obstacle    Cell
	hasObstacle bool

	boost bool

	lastTail Cell // tail dropped by the most recent step
	stepped  bool // a step ran since the last growth check

	tick   uint64
	resets int
}

// NewSimulation creates a simulation with the snake at the centre heading
// right, and food (and the stone, in the Stone variant) on free cells.
func NewSimulation(rules Rules, rng *rand.Rand) (*Simulation, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("snake: invalid rules: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	s := &Simulation{
		rules:     rules,
		rng:       rng,
		segments:  initialSegments(rules.Board),
		direction: DirRight,
	}

	if err := s.placeFood(); err != nil {
		return nil, err
	}
	if rules.Variant.HasObstacle() {
		s.placeObstacle()
	}
	return s, nil
}

// initialSegments returns a fresh one-segment snake at the board centre.
func initialSegments(b Board) []Cell {
	return []Cell{b.Center()}
}

// Rules returns the rules the simulation was built with.
func (s *Simulation) Rules() Rules {
	return s.rules
}

// Head returns the head cell.
func (s *Simulation) Head() Cell {
	return s.segments[0]
}

// Len returns the snake length.
func (s *Simulation) Len() int {
	return len(s.segments)
}

// Direction returns the current movement direction.
func (s *Simulation) Direction() Direction {
	return s.direction
}

// Pending returns the queued direction, or DirNone.
func (s *Simulation) Pending() Direction {
	return s.pending
}

// Food returns the food cell.
func (s *Simulation) Food() Cell {
	return s.food
}

// Obstacle returns the stone cell and whether a stone is on the board.
func (s *Simulation) Obstacle() (Cell, bool) {
	return s.obstacle, s.hasObstacle
}

// SetPendingDirection queues d for the next direction change. A direction
// opposite to the current one is ignored. A later valid call before the
// next tick replaces the earlier one.
func (s *Simulation) SetPendingDirection(d Direction) bool {
	if d == DirNone || d == s.direction.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// AdvanceDirection makes the pending direction current and clears the slot.
// It returns false when nothing was pending.
func (s *Simulation) AdvanceDirection() bool {
	if s.pending == DirNone {
		return false
	}
	s.direction = s.pending
	s.pending = DirNone
	return true
}

// Step moves the snake one cell in the current direction. The new head is
// wrapped around the board edges and the tail cell is dropped, so the
// length is unchanged.
func (s *Simulation) Step() {
	b := s.rules.Board
	head := s.segments[0]
	dx, dy := s.direction.Delta()
	next := b.Wrap(Cell{X: head.X + dx*b.CellSize, Y: head.Y + dy*b.CellSize})

	last := len(s.segments) - 1
	tail := s.segments[last]
	copy(s.segments[1:], s.segments[:last])
	s.segments[0] = next

	s.lastTail = tail
	s.stepped = true
}

// MaybeGrow handles the head reaching the food. The tail dropped by the last
// step is put back, so the snake is one cell longer, and the food moves to a
// free cell. In the Stone variant the stone moves too. It returns
// ErrBoardFull when the snake now covers the whole board.
func (s *Simulation) MaybeGrow() (bool, error) {
	if !s.stepped || s.segments[0] != s.food {
		return false, nil
	}
	s.stepped = false

	s.segments = append(s.segments, s.lastTail)

	if err := s.placeFood(); err != nil {
		return true, err
	}
	if s.rules.Variant.HasObstacle() {
		s.placeObstacle()
	}
	return true, nil
}

// Relocate returns a random free cell not in forbidden.
func (s *Simulation) Relocate(forbidden map[Cell]struct{}) (Cell, error) {
	return relocate(s.rules.Board, s.rng, forbidden)
}

// CheckSelfCollision reports whether the head overlaps the body. The first
// two segments are skipped: the neck is always adjacent to the head.
func (s *Simulation) CheckSelfCollision() bool {
	head := s.segments[0]
	for _, c := range s.segments[min(2, len(s.segments)):] {
		if c == head {
			return true
		}
	}
	return false
}

// CheckObstacleCollision reports whether the head sits on the stone.
func (s *Simulation) CheckObstacleCollision() bool {
	return s.hasObstacle && s.segments[0] == s.obstacle
}

// Reset puts a one-segment snake back at the board centre. Food and stone
// keep their positions; so does the current direction.
func (s *Simulation) Reset() {
	s.segments = initialSegments(s.rules.Board)
	s.pending = DirNone
	s.stepped = false
	s.resets++
}

// SetBoost turns the speed modifier on or off. Only the Stone variant has
// a boost; other variants ignore it.
func (s *Simulation) SetBoost(on bool) {
	s.boost = on && s.rules.Variant.HasBoost()
}

// Boosted reports whether the speed modifier is active.
func (s *Simulation) Boosted() bool {
	return s.boost
}

// TickRate returns the ticks per second the host should run at.
func (s *Simulation) TickRate() int {
	if s.boost {
		return s.rules.BaseRate + s.rules.BoostBonus
	}
	return s.rules.BaseRate
}

// Tick runs one frame of the game.
func (s *Simulation) Tick(in TickInput) TickResult {
	s.tick++
	s.stepped = false
	before := s.occupied()

	var events []Event

	if in.Direction != DirNone {
		s.SetPendingDirection(in.Direction)
	}

	// A stone left under the snake or the food by a reset is moved before
	// anything can run into it.
	if s.rules.Variant.HasObstacle() && !s.obstacleClear() {
		s.placeObstacle()
	}

	var growErr error
	eat := func() {
		grew, err := s.MaybeGrow()
		if grew {
			events = append(events, Event{Kind: EventGrew, At: s.Head()})
		}
		growErr = err
	}

	if s.rules.DoubleStepOnTurn {
		s.Step()
		if s.AdvanceDirection() {
			events = append(events, Event{Kind: EventTurned, At: s.Head(), Dir: s.direction})
			// Food, stone or body under the first move counts before the
			// second.
			eat()
			if growErr == nil && !s.CheckObstacleCollision() && !s.CheckSelfCollision() {
				s.Step()
			}
		}
	} else {
		if s.AdvanceDirection() {
			events = append(events, Event{Kind: EventTurned, At: s.Head(), Dir: s.direction})
		}
		s.Step()
	}
	if growErr == nil {
		eat()
	}

	var cause ResetCause
	switch {
	case errors.Is(growErr, ErrBoardFull):
		cause = CauseBoardFull
	case s.CheckObstacleCollision():
		cause = CauseObstacleCollision
	case s.CheckSelfCollision():
		cause = CauseSelfCollision
	}

	if cause != "" {
		at := s.Head()
		s.Reset()
		if cause == CauseBoardFull {
			// A one-segment snake always leaves free cells on a valid board.
			_ = s.placeFood()
		}
		s.clearSpawns()
		events = append(events, Event{Kind: EventReset, At: at, Cause: cause})
	}

	after := s.occupied()
	var vacated []Cell
	for c := range before {
		if !after.has(c) {
			vacated = append(vacated, c)
		}
	}
	sortCells(vacated)

	return TickResult{
		State:   s.State(),
		Vacated: vacated,
		Events:  events,
	}
}

// State returns a copy of the current state.
func (s *Simulation) State() State {
	segments := make([]Cell, len(s.segments))
	copy(segments, s.segments)

	return State{
		Tick:        s.tick,
		Variant:     s.rules.Variant,
		Board:       s.rules.Board,
		Segments:    segments,
		Direction:   s.direction,
		Pending:     s.pending,
		Food:        s.food,
		Obstacle:    s.obstacle,
		HasObstacle: s.hasObstacle,
		Boosted:     s.boost,
		Resets:      s.resets,
	}
}

// occupied returns the set of snake cells.
func (s *Simulation) occupied() occupancy {
	o := make(occupancy, len(s.segments)+1)
	for _, c := range s.segments {
		o[c] = struct{}{}
	}
	return o
}

// placeFood moves the food to a cell not covered by the snake.
func (s *Simulation) placeFood() error {
	c, err := s.Relocate(s.occupied())
	if err != nil {
		return err
	}
	s.food = c
	return nil
}

// placeObstacle moves the stone to a cell not covered by the snake or the
// food. When no such cell exists the stone is taken off the board until a
// later placement succeeds.
func (s *Simulation) placeObstacle() {
	forbidden := s.occupied()
	forbidden[s.food] = struct{}{}

	c, err := s.Relocate(forbidden)
	if err != nil {
		s.hasObstacle = false
		return
	}
	s.obstacle = c
	s.hasObstacle = true
}

func (s *Simulation) obstacleClear() bool {
	if !s.hasObstacle || s.obstacle == s.food {
		return false
	}
	for _, c := range s.segments {
		if c == s.obstacle {
			return false
		}
	}
	return true
}

// sortCells orders cells row by row so results do not depend on map order.
func sortCells(cells []Cell) {
	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
}

// clearSpawns moves food or stone off the freshly reset snake.
func (s *Simulation) clearSpawns() {
	if s.food == s.Head() {
		// A one-segment snake always leaves free cells on a valid board.
		_ = s.placeFood()
	}
	if s.rules.Variant.HasObstacle() && !s.obstacleClear() {
		s.placeObstacle()
	}
}
