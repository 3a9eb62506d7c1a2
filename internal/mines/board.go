package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

/*
Board holds the mine layout and what the player has done to it. The three
grids are indexed row-major (row*Width + col). Mines never move once the
board is built; opened only grows; flagged and opened are disjoint.

Dimensions and mine count are fixed at construction and only readable
through accessors. A Board does no locking. Callers sharing one across
goroutines must serialize access themselves.
*/
type Board struct {
	params  GameParams
	mines   []bool
	opened  []bool
	flagged []bool
}

func newBoard(width, height int) *Board {
	n := width * height
	return &Board{
		params:  GameParams{Width: width, Height: height},
		mines:   make([]bool, n),
		opened:  make([]bool, n),
		flagged: make([]bool, n),
	}
}

func (b *Board) Params() GameParams { return b.params }
func (b *Board) Width() int { return b.params.Width }
func (b *Board) Height() int { return b.params.Height }
func (b *Board) MineCount() int { return b.params.MineCount }

// NewRandom places params.MineCount mines uniformly at random. Duplicate
// draws are retried, so the call always terminates for valid params.
func NewRandom(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(params.Width, params.Height)
	b.placeMines(params.MineCount, nil, r)
	return b, nil
}

/*
NewGame builds a random board on which start is guaranteed mine-free and
opens it. The returned outcome is the result of that first open.
*/
func NewGame(params GameParams, start Position, r *rand.Rand) (*Board, Outcome, error) {
	if err := params.Validate(); err != nil {
		return nil, Outcome{}, err
	}
	if !params.Contains(start) {
		return nil, Outcome{}, outOfBounds(start, params.Width, params.Height)
	}
	if params.MineCount == params.Width*params.Height {
		return nil, Outcome{}, fmt.Errorf(
			"%w: no room left for a safe starting cell", ErrInvalidMineCount,
		)
	}

	b := newBoard(params.Width, params.Height)
	b.placeMines(params.MineCount, &start, r)

	outcome, err := b.Open(start)
	if err != nil {
		return nil, Outcome{}, err
	}
	return b, outcome, nil
}

func (b *Board) placeMines(count int, avoid *Position, r *rand.Rand) {
	placed, draws := 0, 0
	for placed < count {
		pos := randomPosition(r, b.params.Width, b.params.Height)
		draws++
		if avoid != nil && pos == *avoid {
			continue
		}
		i := b.index(pos)
		if b.mines[i] {
			continue
		}
		b.mines[i] = true
		placed++
	}
	b.params.MineCount = count
	Log.WithFields(logrus.Fields{
		"width":  b.params.Width,
		"height": b.params.Height,
		"mines":  count,
		"draws":  draws,
	}).Debug("placed mines")
}

func (b *Board) index(pos Position) int {
	return pos.Row*b.params.Width + pos.Col
}

func (b *Board) position(i int) Position {
	return Position{Row: i / b.params.Width, Col: i % b.params.Width}
}

func (b *Board) checkBounds(pos Position) error {
	if !b.params.Contains(pos) {
		return outOfBounds(pos, b.params.Width, b.params.Height)
	}
	return nil
}

// Flag marks pos as a suspected mine. Flagging a flagged cell is a no-op.
func (b *Board) Flag(pos Position) error {
	if err := b.checkBounds(pos); err != nil {
		return err
	}
	i := b.index(pos)
	if b.opened[i] {
		return fmt.Errorf("%w: cannot flag %s", ErrCellOpen, pos)
	}
	b.flagged[i] = true
	return nil
}

// Unflag clears a flag. Unflagging a cell without one is a no-op.
func (b *Board) Unflag(pos Position) error {
	if err := b.checkBounds(pos); err != nil {
		return err
	}
	i := b.index(pos)
	if b.opened[i] {
		return fmt.Errorf("%w: cannot unflag %s", ErrCellOpen, pos)
	}
	b.flagged[i] = false
	return nil
}

// ToggleFlag flips the flag on pos and reports whether it is now flagged.
func (b *Board) ToggleFlag(pos Position) (bool, error) {
	if err := b.checkBounds(pos); err != nil {
		return false, err
	}
	if b.flagged[b.index(pos)] {
		return false, b.Unflag(pos)
	}
	return true, b.Flag(pos)
}

// State is a snapshot of everything a renderer may know about a board.
// Positions are listed in row-major order.
type State struct {
	Width, Height, MineCount int
	Opened                   []Position
	Flagged                  []Position
}

func (b *Board) State() State {
	s := State{
		Width:     b.params.Width,
		Height:    b.params.Height,
		MineCount: b.params.MineCount,
	}
	for i := range b.opened {
		if b.opened[i] {
			s.Opened = append(s.Opened, b.position(i))
		}
		if b.flagged[i] {
			s.Flagged = append(s.Flagged, b.position(i))
		}
	}
	return s
}

func (b *Board) adjacentMines(pos Position) int {
	c := 0
	for _, n := range Neighbors(pos, b.params.Width, b.params.Height) {
		if b.mines[b.index(n)] {
			c++
		}
	}
	return c
}
