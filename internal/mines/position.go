package mines

import "fmt"

// Position addresses a cell by row and column, both zero-based.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// MaxCells bounds Width*Height so that board grids stay allocatable and the
// product never overflows.
const MaxCells = 1 << 24

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf(
			"%w: %dx%d", ErrInvalidDimensions, p.Width, p.Height,
		)
	}
	if p.Width > MaxCells/p.Height {
		return fmt.Errorf(
			"%w: %dx%d exceeds %d cells",
			ErrInvalidDimensions, p.Width, p.Height, MaxCells,
		)
	}
	if p.MineCount < 0 || p.MineCount > p.Width*p.Height {
		return fmt.Errorf(
			"%w: %d mines do not fit on a %dx%d board",
			ErrInvalidMineCount, p.MineCount, p.Width, p.Height,
		)
	}
	return nil
}

func (p GameParams) Contains(pos Position) bool {
	return 0 <= pos.Row && pos.Row < p.Height &&
		0 <= pos.Col && pos.Col < p.Width
}

/*
Neighbors returns the in-bounds cells adjacent to pos, at most eight of
them, in row-major order. The bounds are clamped explicitly so that a
position on the top or left edge never yields negative coordinates.
*/
func Neighbors(pos Position, width, height int) []Position {
	ret := make([]Position, 0, 8)
	for r := max(pos.Row-1, 0); r <= min(pos.Row+1, height-1); r++ {
		for c := max(pos.Col-1, 0); c <= min(pos.Col+1, width-1); c++ {
			if r == pos.Row && c == pos.Col {
				continue
			}
			ret = append(ret, Position{Row: r, Col: c})
		}
	}
	return ret
}
