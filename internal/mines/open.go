package mines

import "github.com/sirupsen/logrus"

type OutcomeKind int8

const (
	OutcomeRevealed OutcomeKind = iota
	OutcomeHitMine
	OutcomeAlreadyOpen
	OutcomeFlagged
	OutcomeUnchanged // chord had nothing to do
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRevealed:
		return "revealed"
	case OutcomeHitMine:
		return "hit mine"
	case OutcomeAlreadyOpen:
		return "already open"
	case OutcomeFlagged:
		return "flagged"
	case OutcomeUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

/*
Outcome describes what an Open or Chord did. Count is the adjacent-mine
count of the opened cell and is only meaningful for OutcomeRevealed.
Cascaded lists cells opened on top of the requested one, in the order
they were opened.
*/
type Outcome struct {
	Kind     OutcomeKind
	Count    int
	Cascaded []Position
}

/*
Open reveals pos. Flagged and already opened cells are left alone and
reported through the outcome kind. A mine is opened and reported as
OutcomeHitMine; nothing else happens. A safe cell with no adjacent mines
floods outward through connected zero cells, opening their numbered
border as well. Flagged cells are never opened by the flood.
*/
func (b *Board) Open(pos Position) (Outcome, error) {
	if err := b.checkBounds(pos); err != nil {
		return Outcome{}, err
	}
	i := b.index(pos)

	switch {
	case b.flagged[i]:
		return Outcome{Kind: OutcomeFlagged}, nil
	case b.opened[i]:
		return Outcome{Kind: OutcomeAlreadyOpen}, nil
	case b.mines[i]:
		b.opened[i] = true
		Log.WithField("pos", pos).Debug("mine hit")
		return Outcome{Kind: OutcomeHitMine}, nil
	}

	b.opened[i] = true
	count := b.adjacentMines(pos)
	if count > 0 {
		return Outcome{Kind: OutcomeRevealed, Count: count}, nil
	}

	cascaded := b.flood(pos)
	if len(cascaded) > 0 {
		Log.WithFields(logrus.Fields{
			"pos":      pos,
			"cascaded": len(cascaded),
		}).Debug("flood fill")
	}
	return Outcome{Kind: OutcomeRevealed, Cascaded: cascaded}, nil
}

/*
flood opens everything reachable from the already opened zero cell origin
through zero cells. The opened grid doubles as the visited set, so every
cell is pushed at most once per zero neighbour and the walk terminates.
*/
func (b *Board) flood(origin Position) (ret []Position) {
	todo := Neighbors(origin, b.params.Width, b.params.Height)
	for len(todo) > 0 {
		pos := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		i := b.index(pos)
		if b.opened[i] || b.mines[i] || b.flagged[i] {
			continue
		}
		b.opened[i] = true
		ret = append(ret, pos)

		if b.adjacentMines(pos) == 0 {
			for _, n := range Neighbors(pos, b.params.Width, b.params.Height) {
				if !b.opened[b.index(n)] {
					todo = append(todo, n)
				}
			}
		}
	}
	return ret
}

/*
Chord opens every unflagged neighbour of an opened numbered cell once the
player has placed as many flags around it as its number. It stops at the
first mine. If pos is not an opened cell or the flags do not add up, the
board is left untouched and OutcomeUnchanged is returned.
*/
func (b *Board) Chord(pos Position) (Outcome, error) {
	if err := b.checkBounds(pos); err != nil {
		return Outcome{}, err
	}
	i := b.index(pos)
	if !b.opened[i] || b.mines[i] {
		return Outcome{Kind: OutcomeUnchanged}, nil
	}

	count := b.adjacentMines(pos)
	var (
		todo  = make([]Position, 0, 8)
		flags = 0
	)
	for _, n := range Neighbors(pos, b.params.Width, b.params.Height) {
		j := b.index(n)
		if b.flagged[j] {
			flags++
		} else if !b.opened[j] {
			todo = append(todo, n)
		}
	}
	if count == 0 || flags != count || len(todo) == 0 {
		return Outcome{Kind: OutcomeUnchanged}, nil
	}

	ret := Outcome{Kind: OutcomeRevealed, Count: count}
	for _, n := range todo {
		o, err := b.Open(n)
		if err != nil {
			return Outcome{}, err
		}
		switch o.Kind {
		case OutcomeHitMine:
			ret.Kind = OutcomeHitMine
			ret.Cascaded = append(ret.Cascaded, n)
			return ret, nil
		case OutcomeRevealed:
			ret.Cascaded = append(ret.Cascaded, n)
			ret.Cascaded = append(ret.Cascaded, o.Cascaded...)
		}
	}
	return ret, nil
}
