package snake

import (
	"errors"
	"fmt"
)

// Default board geometry and pacing.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	CellSize     = 20

	BaseTickRate = 10 // ticks per second
	BoostBonus   = 20 // extra ticks per second while boosted
)

// Cell is a position on the board in screen units. X and Y are always
// multiples of the board's cell size.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four movement directions. The zero value means
// "no direction" and is used for an empty pending slot.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit vector of the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Board describes the playing field: a Width x Height screen divided into
// square cells of CellSize.
type Board struct {
	Width    int
	Height   int
	CellSize int
}

// DefaultBoard returns the 640x480 board with 20-unit cells (32x24 grid).
func DefaultBoard() Board {
	return Board{Width: ScreenWidth, Height: ScreenHeight, CellSize: CellSize}
}

// Validate reports whether the board can host a game.
func (b Board) Validate() error {
	if b.CellSize <= 0 {
		return errors.New("cell size must be positive")
	}
	if b.Width <= 0 || b.Height <= 0 {
		return errors.New("screen dimensions must be positive")
	}
	if b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0 {
		return fmt.Errorf("cell size %d does not divide screen %dx%d", b.CellSize, b.Width, b.Height)
	}
	if b.Cols() < 2 || b.Rows() < 2 {
		return fmt.Errorf("board %dx%d cells is too small", b.Cols(), b.Rows())
	}
	return nil
}

// Cols returns the number of cells per row.
func (b Board) Cols() int {
	return b.Width / b.CellSize
}

// Rows returns the number of cells per column.
func (b Board) Rows() int {
	return b.Height / b.CellSize
}

// Area returns the total number of cells.
func (b Board) Area() int {
	return b.Cols() * b.Rows()
}

// CellAt converts grid coordinates to a board cell.
func (b Board) CellAt(col, row int) Cell {
	return Cell{X: col * b.CellSize, Y: row * b.CellSize}
}

// GridPos converts a board cell to grid coordinates.
func (b Board) GridPos(c Cell) (col, row int) {
	return c.X / b.CellSize, c.Y / b.CellSize
}

// Center returns the cell at the middle of the screen.
func (b Board) Center() Cell {
	return b.CellAt(b.Cols()/2, b.Rows()/2)
}

// Contains reports whether the cell lies on the board.
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Wrap maps a cell that left the board back in from the opposite edge.
// A head past the right or bottom edge re-enters at 0; a head past the left
// or top edge re-enters on the last column or row.
func (b Board) Wrap(c Cell) Cell {
	switch {
	case c.X >= b.Width:
		c.X = 0
	case c.X < 0:
		c.X = b.Width - b.CellSize
	}
	switch {
	case c.Y >= b.Height:
		c.Y = 0
	case c.Y < 0:
		c.Y = b.Height - b.CellSize
	}
	return c
}

// Variant selects the rule set.
type Variant string

const (
	// Classic is the original game: snake and food only.
	Classic Variant = "classic"
	// Stone adds an obstacle that resets the snake and a speed boost.
	Stone Variant = "stone"
)

// HasObstacle reports whether the variant places a stone.
func (v Variant) HasObstacle() bool {
	return v == Stone
}

// HasBoost reports whether the variant honors the speed modifier.
func (v Variant) HasBoost() bool {
	return v == Stone
}
