package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/stackfall/internal/audio"
	"github.com/plus3/stackfall/internal/config"
	"github.com/plus3/stackfall/internal/logging"
	"github.com/plus3/stackfall/tetris"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logPath := flag.String("log", "stackfall-term.log", "File to write logs to. The terminal is owned by the game.")
	flag.Parse()

	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging, *logPath)
	if err != nil {
		return err
	}
	defer log.Sync()

	player, err := audio.New(cfg.Audio, log.Named("audio"))
	if err != nil {
		log.Warn("audio disabled", zap.Error(err))
		cfg.Audio.Enabled = false
		player, _ = audio.New(cfg.Audio, log.Named("audio"))
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	opts := cfg.GameOptions()
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	opts.Logger = log.Named("game")
	game := tetris.NewGame(opts)
	game.Subscribe(player.Listener())

	log.Info("terminal frontend started",
		zap.String("config", cfg.Source),
		zap.Uint64("seed", opts.Seed),
		zap.Stringer("mode", opts.ClearMode),
	)

	t := &term{screen: screen, game: game}
	t.loop(cfg.FrameInterval())

	log.Info("terminal frontend stopped", zap.Uint64("frames", game.Scheduler().Frames()))
	return nil
}
