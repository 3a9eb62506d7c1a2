package mines

import (
	"strconv"
	"strings"
)

// CellState is what the player can see of a single cell.
type CellState int8

const (
	Unknown      CellState = -2
	Flagged      CellState = -1
	ExplodedMine CellState = 65
	// 0-8 for an opened cell with that many mined neighbours
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "#"
	case s == Flagged:
		return "F"
	case s == ExplodedMine:
		return "*"
	case s == 0:
		return "."
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Cell reports the player's view of pos. Unopened mines look like any
// other unknown cell.
func (b *Board) Cell(pos Position) (CellState, error) {
	if err := b.checkBounds(pos); err != nil {
		return Unknown, err
	}
	return b.cellState(b.index(pos)), nil
}

func (b *Board) cellState(i int) CellState {
	switch {
	case b.flagged[i]:
		return Flagged
	case !b.opened[i]:
		return Unknown
	case b.mines[i]:
		return ExplodedMine
	default:
		return CellState(b.adjacentMines(b.position(i)))
	}
}

type Grid []CellState

func (b *Board) PlayerGrid() Grid {
	g := make(Grid, len(b.opened))
	for i := range g {
		g[i] = b.cellState(i)
	}
	return g
}

func (g Grid) ToString(width int) string {
	var sb strings.Builder
	for y := range len(g) / width {
		for x := range width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g[y*width+x].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
