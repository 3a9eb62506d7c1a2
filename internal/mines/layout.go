package mines

import (
	"fmt"
	"strings"
)

// MineGlyph marks a mine in a text layout. Any other character is an
// empty cell.
const MineGlyph = 'B'

/*
Parse builds a board from a text layout, one row per line:

	##BB#
	B####
	####B

Every line is trimmed of surrounding whitespace and lines that end up empty
are dropped, wherever they occur. All remaining rows must have the same
number of characters. Nothing is opened or flagged on the new board.
*/
func Parse(layout string) (*Board, error) {
	var rows [][]rune
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := []rune(line)
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, &LayoutError{
				Row: len(rows), Length: len(row), Width: len(rows[0]),
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: layout has no rows", ErrMalformedLayout)
	}

	b := newBoard(len(rows[0]), len(rows))
	for i, row := range rows {
		for j, c := range row {
			if c == MineGlyph {
				b.mines[i*b.params.Width+j] = true
				b.params.MineCount++
			}
		}
	}
	return b, nil
}
