package shell

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type NewGameDTO struct {
	Width     int  `schema:"width,required"`
	Height    int  `schema:"height,required"`
	MineCount int  `schema:"mines,required"`
	Row       *int `schema:"row"`
	Col       *int `schema:"col"`
}

func (dto NewGameDTO) Params() mines.GameParams {
	return mines.GameParams{
		Width:     dto.Width,
		Height:    dto.Height,
		MineCount: dto.MineCount,
	}
}

// Start returns the safe starting cell, if both row and col were given.
func (dto NewGameDTO) Start() (mines.Position, bool) {
	if dto.Row == nil || dto.Col == nil {
		return mines.Position{}, false
	}
	return mines.Position{Row: *dto.Row, Col: *dto.Col}, true
}

// ParseNewGameDTO decodes key=value arguments, e.g. "width=9 height=9 mines=10".
func ParseNewGameDTO(args []string) (NewGameDTO, error) {
	src := make(map[string][]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return NewGameDTO{}, fmt.Errorf(`malformed argument "%s", want key=value`, arg)
		}
		src[k] = append(src[k], v)
	}

	var dto NewGameDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}
