package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/stackfall/internal/config"
	"github.com/plus3/stackfall/internal/logging"
	"github.com/plus3/stackfall/tetris"
	"github.com/plus3/stackfall/tetris/drawbuf"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Seed for the piece queue and the input bot.")
	mode := flag.String("mode", "", "Clear mode override: classic or wipe.")
	dt := flag.Duration("dt", 0, "Simulated frame time. Defaults to the configured frame interval.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	if *mode != "" {
		cfg.Game.ClearMode = *mode
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if *dt <= 0 {
		*dt = cfg.FrameInterval()
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	opts := cfg.GameOptions()
	opts.Seed = *seed
	opts.Logger = log.Named("game")
	game := tetris.NewGame(opts)

	report := &Report{
		Duration:       *duration,
		FrameTime:      *dt,
		Seed:           *seed,
		Mode:           opts.ClearMode.String(),
		GCPauseMetrics: *gcPauseMetrics,
	}
	game.Subscribe(report.Observe)

	buf := drawbuf.New(drawbuf.Capacity)
	bot := newBot(*seed)

	log.Info("starting stress run",
		zap.Duration("duration", *duration),
		zap.Uint64("seed", *seed),
		zap.Stringer("mode", opts.ClearMode),
		zap.String("config", cfg.Source),
	)

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	step := dt.Seconds()
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			in := bot.NextInput()
			if game.Over() {
				in = tetris.InputReset
			}

			updateStart := time.Now()
			snap := game.Step(step, in)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))

			if err := buf.Sync(snap); err != nil {
				return err
			}
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Systems = game.Scheduler().Stats().Systems
	report.Store = game.State().Store.Stats()
	report.Buffer = buf.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("stress run finished",
		zap.Int64("updates", report.TotalUpdates),
		zap.Int("games", report.Games),
		zap.Int("lines", report.Lines),
	)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Println("--- End of Report ---")
	return nil
}
