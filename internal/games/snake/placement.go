package snake

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned when every cell of the board is forbidden and
// nothing can be placed.
var ErrBoardFull = errors.New("snake: no free cell on board")

// maxSamples bounds the rejection sampling phase of Relocate.
const maxSamples = 32

// occupancy is a set of cells that a placement must avoid.
type occupancy map[Cell]struct{}

func (o occupancy) has(c Cell) bool {
	_, ok := o[c]
	return ok
}

// relocate picks a uniformly random cell of the board that is not in
// forbidden. While the board is mostly free it samples a bounded number of
// random cells; otherwise, or when sampling keeps hitting forbidden cells,
// it enumerates the exact free cells and picks one of them.
func relocate(b Board, rng *rand.Rand, forbidden occupancy) (Cell, error) {
	cols, rows := b.Cols(), b.Rows()
	area := cols * rows

	if len(forbidden)*2 < area {
		for range maxSamples {
			c := b.CellAt(rng.Intn(cols), rng.Intn(rows))
			if !forbidden.has(c) {
				return c, nil
			}
		}
	}

	free := make([]Cell, 0, max(area-len(forbidden), 0))
	for row := range rows {
		for col := range cols {
			c := b.CellAt(col, row)
			if !forbidden.has(c) {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return Cell{}, ErrBoardFull
	}
	return free[rng.Intn(len(free))], nil
}
