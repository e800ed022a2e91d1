package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/plus3/stackfall/internal/audio"
	"github.com/plus3/stackfall/internal/config"
	"github.com/plus3/stackfall/internal/logging"
	"github.com/plus3/stackfall/tetris"
	debugui_ebiten "github.com/plus3/stackfall/tetris/debugui/ebiten"
	"github.com/plus3/stackfall/tetris/drawbuf"
)

const windowTitle = "stackfall"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging)
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

	opts := cfg.GameOptions()
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	opts.Logger = log.Named("game")
	game := tetris.NewGame(opts)
	game.Subscribe(player.Listener())

	app := &App{
		game:     game,
		buf:      drawbuf.New(drawbuf.Capacity),
		cellSize: float32(cfg.Window.CellSize),
		clock:    newFrameClock(),
		log:      log,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}

	if cfg.Window.DebugUI {
		app.overlay = debugui_ebiten.NewOverlay(windowTitle, cfg.Window.Width, cfg.Window.Height, game)
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(windowTitle)
	}
	ebiten.SetTPS(cfg.Timing.FrameRate)

	log.Info("window frontend started",
		zap.String("config", cfg.Source),
		zap.Uint64("seed", opts.Seed),
		zap.Stringer("mode", opts.ClearMode),
		zap.Bool("debug_ui", cfg.Window.DebugUI),
	)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	log.Info("window frontend stopped", zap.Uint64("frames", game.Scheduler().Frames()))
	return nil
}
