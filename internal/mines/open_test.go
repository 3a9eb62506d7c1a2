package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, layout string) *Board {
	t.Helper()
	b, err := Parse(layout)
	require.NoError(t, err)
	return b
}

func TestOpenMine(t *testing.T) {
	b := mustParse(t, "B#\n##")

	outcome, err := b.Open(Position{0, 0})
	require.NoError(t, err)
	assert.Equal(t, OutcomeHitMine, outcome.Kind)
	assert.Empty(t, outcome.Cascaded)
	assert.Equal(t, []Position{{0, 0}}, b.State().Opened)

	c, err := b.Cell(Position{0, 0})
	require.NoError(t, err)
	assert.Equal(t, ExplodedMine, c)

	outcome, err = b.Open(Position{0, 0})
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyOpen, outcome.Kind)
	assert.Equal(t, []Position{{0, 0}}, b.State().Opened)
}

func TestOpenCountsAdjacentMines(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		pos    Position
		want   int
	}{
		{"one", "B#\n##", Position{1, 1}, 1},
		{"three", "BB#\n#B#\n###", Position{1, 0}, 3},
		{"edge", "#B#\nB#B\n###", Position{0, 0}, 2},
		{"eight", "BBB\nB#B\nBBB", Position{1, 1}, 8},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := mustParse(t, test.layout)

			outcome, err := b.Open(test.pos)
			require.NoError(t, err)
			assert.Equal(t, Outcome{Kind: OutcomeRevealed, Count: test.want}, outcome)
			assert.Equal(t, []Position{test.pos}, b.State().Opened)

			c, err := b.Cell(test.pos)
			require.NoError(t, err)
			assert.Equal(t, CellState(test.want), c)
		})
	}
}

func TestOpenCascade(t *testing.T) {
	b := mustParse(t, `
		##B##
		##B##
		##B##
	`)

	outcome, err := b.Open(Position{0, 0})
	require.NoError(t, err)
	assert.Equal(t, OutcomeRevealed, outcome.Kind)
	assert.Equal(t, 0, outcome.Count)
	assert.ElementsMatch(t, []Position{
		{1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1},
	}, outcome.Cascaded)

	assert.Equal(t, []Position{
		{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1},
	}, b.State().Opened)

	assert.Equal(t, ". 2 # # #\n. 3 # # #\n. 2 # # #\n", b.PlayerGrid().ToString(b.Width()))
}

func TestOpenCascadeWholeBoard(t *testing.T) {
	b := mustParse(t, "####\n####\n####")

	outcome, err := b.Open(Position{1, 2})
	require.NoError(t, err)
	assert.Equal(t, OutcomeRevealed, outcome.Kind)
	assert.Len(t, outcome.Cascaded, 11)
	assert.NotContains(t, outcome.Cascaded, Position{1, 2})
	assert.Len(t, b.State().Opened, 12)
}

func TestOpenCascadeStopsAtNumbers(t *testing.T) {
	b := mustParse(t, `
		#########
		#########
		##BBBBB##
		##B###B##
		##B###B##
		##BBBBB##
		#########
		#########
	`)

	// Every cell inside the ring touches a mine, so nothing cascades.
	outcome, err := b.Open(Position{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.Count)
	assert.Empty(t, outcome.Cascaded)

	outcome, err = b.Open(Position{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Count)

	// Only the area outside the ring is reachable from the corner.
	assert.Len(t, outcome.Cascaded, 9*8-5*4-1)
	for _, pos := range outcome.Cascaded {
		inside := 2 <= pos.Row && pos.Row <= 5 && 2 <= pos.Col && pos.Col <= 6
		assert.False(t, inside, "cascade crossed the mines at %s", pos)
	}
	assert.Len(t, b.State().Opened, 9*8-5*4+1)
}

func TestOpenIdempotent(t *testing.T) {
	b := mustParse(t, "##B##\n##B##\n##B##")

	_, err := b.Open(Position{0, 0})
	require.NoError(t, err)
	require.NoError(t, b.Flag(Position{0, 4}))

	var (
		mines = mineSet(b)
		state = b.State()
		grid  = b.PlayerGrid()
	)
	for _, pos := range state.Opened {
		outcome, err := b.Open(pos)
		require.NoError(t, err)
		assert.Equal(t, OutcomeAlreadyOpen, outcome.Kind)
	}
	assert.Equal(t, mines, mineSet(b))
	assert.Equal(t, state, b.State())
	assert.Equal(t, grid, b.PlayerGrid())
}

func TestOpenFlagged(t *testing.T) {
	b := mustParse(t, "##B##\n##B##\n##B##")
	require.NoError(t, b.Flag(Position{0, 0}))

	before := b.State()
	outcome, err := b.Open(Position{0, 0})
	require.NoError(t, err)
	assert.Equal(t, OutcomeFlagged, outcome.Kind)
	assert.Equal(t, before, b.State())

	require.NoError(t, b.Unflag(Position{0, 0}))
	outcome, err = b.Open(Position{0, 0})
	require.NoError(t, err)
	assert.Equal(t, OutcomeRevealed, outcome.Kind)
	assert.Len(t, outcome.Cascaded, 5)
}

func TestOpenCascadeSkipsFlags(t *testing.T) {
	b := mustParse(t, "###\n###\n###")
	require.NoError(t, b.Flag(Position{2, 2}))

	outcome, err := b.Open(Position{0, 0})
	require.NoError(t, err)
	assert.Len(t, outcome.Cascaded, 7)
	assert.NotContains(t, outcome.Cascaded, Position{2, 2})

	s := b.State()
	assert.Equal(t, []Position{{2, 2}}, s.Flagged)
	assert.NotContains(t, s.Opened, Position{2, 2})
}

func TestOpenOutOfBounds(t *testing.T) {
	b := mustParse(t, "B#\n##")

	for _, pos := range []Position{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := b.Open(pos)
		assert.ErrorIs(t, err, ErrOutOfBounds, "pos %s", pos)
	}
	assert.Empty(t, b.State().Opened)
}

func TestChord(t *testing.T) {
	b := mustParse(t, "B#\n##")
	_, err := b.Open(Position{1, 1})
	require.NoError(t, err)

	outcome, err := b.Chord(Position{1, 1})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, outcome.Kind)

	require.NoError(t, b.Flag(Position{0, 0}))
	outcome, err = b.Chord(Position{1, 1})
	require.NoError(t, err)
	assert.Equal(t, Outcome{
		Kind:     OutcomeRevealed,
		Count:    1,
		Cascaded: []Position{{0, 1}, {1, 0}},
	}, outcome)
	assert.Len(t, b.State().Opened, 3)

	outcome, err = b.Chord(Position{1, 1})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, outcome.Kind)
}

func TestChordWrongFlag(t *testing.T) {
	b := mustParse(t, "B#\n##")
	_, err := b.Open(Position{1, 1})
	require.NoError(t, err)
	require.NoError(t, b.Flag(Position{0, 1}))

	outcome, err := b.Chord(Position{1, 1})
	require.NoError(t, err)
	assert.Equal(t, OutcomeHitMine, outcome.Kind)
	assert.Equal(t, []Position{{0, 0}}, outcome.Cascaded)
	assert.NotContains(t, b.State().Opened, Position{1, 0})
}

func TestChordCascades(t *testing.T) {
	b := mustParse(t, "B###\n####\n####")
	_, err := b.Open(Position{0, 1})
	require.NoError(t, err)
	require.NoError(t, b.Flag(Position{0, 0}))

	outcome, err := b.Chord(Position{0, 1})
	require.NoError(t, err)
	assert.Equal(t, OutcomeRevealed, outcome.Kind)
	assert.Len(t, outcome.Cascaded, 10)
	assert.Len(t, b.State().Opened, 11)
}

func TestChordNotApplicable(t *testing.T) {
	b := mustParse(t, "B#\n##")

	outcome, err := b.Chord(Position{1, 1})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, outcome.Kind)

	_, err = b.Chord(Position{5, 5})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
