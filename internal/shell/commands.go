package shell

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var (
	ErrQuit     = errors.New("quit")
	ErrGameOver = errors.New("game is over, start a new one with n")
	ErrNoGame   = errors.New("no game in progress, start one with n")
)

// Maps known commands to number of arguments, -1 for any
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"c": 2,
	"p": 0,
	"n": -1,
	"q": 0,
}

func parsePosition(twoStrings []string) (pos mines.Position, err error) {
	if pos.Row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if pos.Col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

/*
Shell drives a single board from one-line text commands. The board
itself knows nothing about winning or losing; the shell works that out
from the outcomes and the board state after every move.
*/
type Shell struct {
	board *mines.Board
	dead  bool
	rnd   *rand.Rand
	out   io.Writer
	log   *logrus.Logger
}

func New(board *mines.Board, rnd *rand.Rand, out io.Writer, log *logrus.Logger) *Shell {
	return &Shell{
		board: board,
		rnd:   rnd,
		out:   out,
		log:   log,
	}
}

func (s *Shell) Board() *mines.Board {
	return s.board
}

func (s *Shell) Dead() bool {
	return s.dead
}

// Won reports whether every safe cell has been opened.
func (s *Shell) Won() bool {
	if s.board == nil || s.dead {
		return false
	}
	st := s.board.State()
	return len(st.Opened) == st.Width*st.Height-st.MineCount
}

func (s *Shell) over() bool {
	return s.dead || s.Won()
}

func (s *Shell) Execute(c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs >= 0 && nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}

	switch parts[0] {
	case "q":
		return ErrQuit
	case "n":
		return s.newGame(parts[1:])
	case "p":
		if s.board == nil {
			return ErrNoGame
		}
		s.print()
		return nil
	}

	if s.board == nil {
		return ErrNoGame
	}
	if s.over() {
		return ErrGameOver
	}
	pos, err := parsePosition(parts[1:])
	if err != nil {
		return err
	}

	switch parts[0] {
	case "o":
		outcome, err := s.board.Open(pos)
		if err != nil {
			return err
		}
		s.report(pos, outcome)
	case "f":
		flagged, err := s.board.ToggleFlag(pos)
		if err != nil {
			return err
		}
		s.log.WithFields(logrus.Fields{"pos": pos, "flagged": flagged}).Debug("flag")
		s.print()
	case "c":
		outcome, err := s.board.Chord(pos)
		if err != nil {
			return err
		}
		s.report(pos, outcome)
	}
	return nil
}

func (s *Shell) newGame(args []string) error {
	dto, err := ParseNewGameDTO(args)
	if err != nil {
		return err
	}

	var board *mines.Board
	if start, ok := dto.Start(); ok {
		var outcome mines.Outcome
		board, outcome, err = mines.NewGame(dto.Params(), start, s.rnd)
		if err != nil {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"start":    start,
			"cascaded": len(outcome.Cascaded),
		}).Debug("opened starting cell")
	} else {
		board, err = mines.NewRandom(dto.Params(), s.rnd)
		if err != nil {
			return err
		}
	}

	s.board, s.dead = board, false
	s.log.WithFields(logrus.Fields{
		"width":  board.Width(),
		"height": board.Height(),
		"mines":  board.MineCount(),
	}).Info("new game")
	s.print()
	s.announce()
	return nil
}

func (s *Shell) report(pos mines.Position, outcome mines.Outcome) {
	s.log.WithFields(logrus.Fields{
		"pos":      pos,
		"outcome":  outcome.Kind,
		"count":    outcome.Count,
		"cascaded": len(outcome.Cascaded),
	}).Debug("move")

	switch outcome.Kind {
	case mines.OutcomeHitMine:
		s.dead = true
	case mines.OutcomeAlreadyOpen, mines.OutcomeFlagged, mines.OutcomeUnchanged:
		fmt.Fprintf(s.out, "%s: %s\n", pos, outcome.Kind)
		return
	}

	s.print()
	s.announce()
}

// announce prints the result once the game is decided.
func (s *Shell) announce() {
	switch {
	case s.dead:
		fmt.Fprintln(s.out, "boom, you lose")
	case s.Won():
		fmt.Fprintln(s.out, "all clear, you win")
	}
}

func (s *Shell) print() {
	st := s.board.State()
	fmt.Fprintf(s.out, "%dx%d, %d mines, %d flagged\n",
		st.Width, st.Height, st.MineCount, len(st.Flagged))
	fmt.Fprint(s.out, s.board.PlayerGrid().ToString(s.board.Width()))
}
