package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Development bool
	Width       int
	Height      int
	MineCount   int
	LayoutFile  string
	LogFile     string
	Seed        *[2]uint64
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

func parseSeed(s string) (*[2]uint64, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf(`invalid MINES_SEED "%s": want two integers separated by ':'`, s)
	}
	var (
		seed [2]uint64
		err  error
	)
	if seed[0], err = strconv.ParseUint(a, 10, 64); err != nil {
		return nil, fmt.Errorf("invalid MINES_SEED: %w", err)
	}
	if seed[1], err = strconv.ParseUint(b, 10, 64); err != nil {
		return nil, fmt.Errorf("invalid MINES_SEED: %w", err)
	}
	return &seed, nil
}

func New() (*Config, error) {
	width, err := lookupInt("MINES_WIDTH", 9)
	if err != nil {
		return nil, err
	}

	height, err := lookupInt("MINES_HEIGHT", 9)
	if err != nil {
		return nil, err
	}

	mineCount, err := lookupInt("MINES_COUNT", 10)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Development: Development(),
		Width:       width,
		Height:      height,
		MineCount:   mineCount,
		LayoutFile:  os.Getenv("MINES_LAYOUT_FILE"),
		LogFile:     os.Getenv("MINES_LOG_FILE"),
	}

	if s, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := parseSeed(s)
		if err != nil {
			return nil, err
		}
		config.Seed = seed
	}

	return config, nil
}
