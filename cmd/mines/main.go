package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/shell"
)

var log = logrus.New()

func setupLogging(cfg *config.Config) {
	logLevel := logrus.InfoLevel
	if cfg.Development {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Development})

	mines.Log.SetLevel(logLevel)
	mines.Log.SetFormatter(log.Formatter)

	if cfg.LogFile == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to open log file: ", err)
	}
	log.AddHook(hook)
	mines.Log.AddHook(hook)
}

func createRand(cfg *config.Config) *rand.Rand {
	if cfg.Seed != nil {
		return rand.New(rand.NewPCG(cfg.Seed[0], cfg.Seed[1]))
	}
	return mines.NewRand()
}

func loadBoard(cfg *config.Config, r *rand.Rand) (*mines.Board, error) {
	if cfg.LayoutFile == "" {
		return mines.NewRandom(mines.GameParams{
			Width:     cfg.Width,
			Height:    cfg.Height,
			MineCount: cfg.MineCount,
		}, r)
	}
	layout, err := os.ReadFile(cfg.LayoutFile)
	if err != nil {
		return nil, err
	}
	return mines.Parse(string(layout))
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		log.Fatal("unable to read config: ", err)
	}

	setupLogging(cfg)
	log.WithFields(logrus.Fields{
		"width":       cfg.Width,
		"height":      cfg.Height,
		"mines":       cfg.MineCount,
		"layout_file": cfg.LayoutFile,
		"log_file":    cfg.LogFile,
		"seeded":      cfg.Seed != nil,
	}).Debug("config")

	rnd := createRand(cfg)
	board, err := loadBoard(cfg, rnd)
	if err != nil {
		log.Fatal("unable to build board: ", err)
	}

	sh := shell.New(board, rnd, os.Stdout, log)
	if err := sh.Execute("p"); err != nil {
		log.Fatal(err)
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return sh.Run(gCtx, os.Stdin)
	})
	g.Go(func() error {
		<-gCtx.Done()
		return gCtx.Err()
	})

	err = g.Wait()
	switch {
	case errors.Is(err, shell.ErrQuit):
		log.Debug("bye")
	case errors.Is(err, context.Canceled):
		log.Info("interrupted")
	case err != nil:
		log.Error("exit reason: ", err)
		os.Exit(1)
	}
}
